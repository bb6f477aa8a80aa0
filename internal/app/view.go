package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-calc/internal/calc"
)

// View draws the full UI (tab bar + active pane + status footer).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	header := padBlock(m.renderTabBar(m.width), m.width, HeaderRows)

	var pane string
	if m.showHelp {
		pane = m.renderHelpPane(layout)
	} else {
		pane = m.renderForm(layout)
	}
	pane = padBlock(pane, m.width, layout.PaneHeight)

	view := header + "\n" + pane + "\n" + m.renderStatus(m.width)
	return padBlock(view, m.width, m.height)
}

// renderTabBar draws the application title followed by one tab per tool.
func (m *Model) renderTabBar(width int) string {
	parts := []string{m.styles.title.Render("cli-calc")}
	for i, tab := range m.tabs {
		style := m.styles.tab
		if i == m.active {
			style = m.styles.activeTab
		}
		parts = append(parts, style.Render(tab.tool.Entry.Name))
	}
	return truncate(lipgloss.JoinHorizontal(lipgloss.Top, parts...), width)
}

// renderForm draws the active tool's fields and its last result.
func (m *Model) renderForm(layout LayoutDimensions) string {
	tab := m.activeTab()
	if tab == nil {
		return m.paneBox(m.styles.pane, layout, "No calculators available")
	}

	fields := tab.tool.Widget.Fields()
	lines := []string{m.styles.result.Render(tab.tool.Entry.Name), ""}
	for i, f := range fields {
		labelStyle := m.styles.label
		if i == tab.focus {
			labelStyle = m.styles.focusedLabel
		}
		label := labelStyle.Width(LabelWidth).Render(f.Label)
		lines = append(lines, label+" "+tab.inputs[i].View())
	}
	lines = append(lines, "", m.renderResult(tab))

	return m.paneBox(m.styles.pane, layout, strings.Join(lines, "\n"))
}

// renderResult shows the last outcome of a tab, colored by direction.
func (m *Model) renderResult(tab *tabState) string {
	label := m.styles.label.Width(LabelWidth).Render("result")
	if tab.outcome == nil {
		return label + " " + m.styles.muted.Render("press "+m.primaryActionKey(actionCalculate, "Enter")+" to calculate")
	}
	out := tab.outcome
	if out.Err != nil {
		return label + " " + m.styles.invalid.Render(out.Display) + "  " + m.styles.muted.Render(out.Err.Error())
	}

	style := m.styles.result
	switch out.Direction {
	case calc.Increase:
		style = m.styles.increase
	case calc.Decrease:
		style = m.styles.decrease
	}
	line := label + " " + style.Render(out.Display)
	if out.Direction != calc.NoChange {
		line += "  " + m.styles.muted.Render(out.Direction.String())
	}
	return line
}

func (m *Model) renderHelpPane(layout LayoutDimensions) string {
	title := "Help"
	if tab := m.activeTab(); tab != nil {
		title = "Help: " + tab.tool.Entry.Name
	}
	content := m.styles.result.Render(title) + "\n" + m.help.View()
	return m.paneBox(m.styles.helpPane, layout, content)
}

// paneBox renders content inside style so the box fills the layout pane.
func (m *Model) paneBox(style lipgloss.Style, layout LayoutDimensions, content string) string {
	content = padBlock(content, layout.InnerWidth, layout.InnerHeight)
	return style.
		Width(max(0, layout.PaneWidth-style.GetHorizontalBorderSize())).
		Height(max(0, layout.PaneHeight-style.GetVerticalBorderSize())).
		Render(content)
}

// renderStatus draws the one-row footer: the status message, then key hints.
func (m *Model) renderStatus(width int) string {
	hints := []string{
		m.primaryActionKey(actionToolNext, "Ctrl+N") + "/" + m.primaryActionKey(actionToolPrev, "Ctrl+P") + " tool",
		m.primaryActionKey(actionFieldNext, "Tab") + " field",
		m.primaryActionKey(actionCalculate, "Enter") + " calc",
		m.primaryActionKey(actionClear, "Ctrl+X") + " clear",
		m.primaryActionKey(actionCopy, "Ctrl+Y") + " copy",
		m.primaryActionKey(actionTheme, "Ctrl+T") + " theme",
		m.primaryActionKey(actionHelp, "F1") + " help",
		m.primaryActionKey(actionQuit, "Ctrl+C") + " quit",
	}
	line := " " + strings.Join(hints, "  ")
	if m.status != "" {
		line = " " + m.status + " |" + line
	}
	return m.styles.status.Render(padBlock(truncateWithEllipsis(line, width), width, FooterRows))
}
