// layout.go centralizes terminal layout calculations.
//
// The screen is a header row (title and tab bar), a bordered pane holding
// either the active calculator's form or its help panel, and a footer row.
// The pane's usable area depends on which border style is active because the
// form and help panes use different styles.
package app

// LayoutDimensions holds the calculated sizes for the current terminal.
type LayoutDimensions struct {
	PaneWidth   int // outer width of the bordered pane
	PaneHeight  int // outer height of the bordered pane
	InnerWidth  int // usable width inside the pane
	InnerHeight int // usable height inside the pane
	InputWidth  int // width available to a text input next to its label
}

// calculateLayout derives every dimension from the terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	paneHeight := max(0, m.height-HeaderRows-FooterRows)
	paneStyle := m.styles.pane
	if m.showHelp {
		paneStyle = m.styles.helpPane
	}

	innerWidth := max(0, m.width-paneStyle.GetHorizontalFrameSize())
	innerHeight := max(0, paneHeight-paneStyle.GetVerticalFrameSize())

	return LayoutDimensions{
		PaneWidth:   m.width,
		PaneHeight:  paneHeight,
		InnerWidth:  innerWidth,
		InnerHeight: innerHeight,
		InputWidth:  max(MinInputWidth, innerWidth-LabelWidth-2),
	}
}

// applyLayout resizes the widgets to the calculated layout.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.help.Width = layout.InnerWidth
	// One row is taken by the help panel title.
	m.help.Height = max(0, layout.InnerHeight-1)
	for i := range m.tabs {
		for j := range m.tabs[i].inputs {
			m.tabs[i].inputs[j].Width = layout.InputWidth
		}
	}
}
