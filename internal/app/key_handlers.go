package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-calc/internal/config"
)

// handleKey routes a key press to its bound action. Unbound keys go to the
// focused field, or scroll the help panel while it is open.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.actionForKey(msg.String())

	if m.showHelp {
		switch action {
		case actionQuit:
			return m, tea.Quit
		case actionHelp, actionClose:
			m.closeHelp()
			return m, nil
		case actionTheme:
			m.toggleTheme()
			return m, nil
		case actionToolNext:
			m.switchTab(1)
			return m, nil
		case actionToolPrev:
			m.switchTab(-1)
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	switch action {
	case actionQuit:
		return m, tea.Quit
	case actionToolNext:
		m.switchTab(1)
		return m, nil
	case actionToolPrev:
		m.switchTab(-1)
		return m, nil
	case actionFieldNext:
		return m, m.moveFocus(1)
	case actionFieldPrev:
		return m, m.moveFocus(-1)
	case actionCalculate:
		m.calculate()
		return m, nil
	case actionClear:
		m.clearActive()
		return m, nil
	case actionCopy:
		m.copyResultToClipboard()
		return m, nil
	case actionTheme:
		m.toggleTheme()
		return m, nil
	case actionHelp:
		m.openHelp()
		return m, nil
	case actionClose:
		m.status = ""
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

// switchTab moves to the neighbouring tab, wrapping at both ends. Field
// values and the last result of every tab are kept.
func (m *Model) switchTab(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.blurActive()
	m.active = wrapIndex(m.active, delta, len(m.tabs))
	m.focusActive()
	m.status = m.tabs[m.active].tool.Entry.Name
	if m.showHelp {
		m.refreshHelp()
	}
}

// moveFocus cycles focus through the active tab's fields.
func (m *Model) moveFocus(delta int) tea.Cmd {
	tab := m.activeTab()
	if tab == nil || len(tab.inputs) == 0 {
		return nil
	}
	tab.inputs[tab.focus].Blur()
	tab.focus = wrapIndex(tab.focus, delta, len(tab.inputs))
	return tab.inputs[tab.focus].Focus()
}

func (m *Model) focusActive() {
	tab := m.activeTab()
	if tab == nil || len(tab.inputs) == 0 {
		return
	}
	tab.inputs[tab.focus].Focus()
}

func (m *Model) blurActive() {
	tab := m.activeTab()
	if tab == nil || len(tab.inputs) == 0 {
		return
	}
	tab.inputs[tab.focus].Blur()
}

// fieldValues returns the raw text of every field in the active tab.
func (m *Model) fieldValues() []string {
	tab := m.activeTab()
	if tab == nil {
		return nil
	}
	values := make([]string, len(tab.inputs))
	for i, input := range tab.inputs {
		values[i] = input.Value()
	}
	return values
}

// calculate evaluates the active tab with the current field values.
func (m *Model) calculate() {
	tab := m.activeTab()
	if tab == nil {
		return
	}
	out := tab.tool.Widget.Evaluate(m.fieldValues(), m.opts)
	tab.outcome = &out
	if out.Err != nil {
		m.status = out.Err.Error()
		appLog.Debug("calculation rejected", "tool", tab.tool.Entry.ID, "reason", out.Err)
		return
	}
	m.status = "Calculated"
}

// clearActive empties the active tab and focuses its first field.
func (m *Model) clearActive() {
	tab := m.activeTab()
	if tab == nil {
		return
	}
	for i := range tab.inputs {
		tab.inputs[i].Reset()
		tab.inputs[i].Blur()
	}
	tab.focus = 0
	tab.outcome = nil
	m.focusActive()
	m.status = "Cleared"
}

// toggleTheme flips between dark and light and saves the choice.
func (m *Model) toggleTheme() {
	next := config.ThemeLight
	if m.theme == config.ThemeLight {
		next = config.ThemeDark
	}
	m.theme = next
	m.styles = newStyles(next)
	for i := range m.tabs {
		for j := range m.tabs[i].inputs {
			applyInputTheme(&m.tabs[i].inputs[j], next)
		}
	}
	if m.width > 0 {
		m.applyLayout(m.calculateLayout())
	}
	if m.showHelp {
		m.refreshHelp()
	}

	m.cfg.Theme = next
	m.persisted.Theme = next
	if err := m.saveConfig(m.persisted); err != nil {
		m.setStatusError("Theme changed but could not be saved", err, "theme", next)
		return
	}
	m.status = "Theme: " + next
}

func (m *Model) openHelp() {
	m.showHelp = true
	if m.width > 0 {
		m.applyLayout(m.calculateLayout())
	}
	m.refreshHelp()
	m.status = "Help: Esc to close"
}

func (m *Model) closeHelp() {
	m.showHelp = false
	if m.width > 0 {
		m.applyLayout(m.calculateLayout())
	}
	m.status = ""
}

// refreshHelp renders the active tool's doc into the help viewport.
func (m *Model) refreshHelp() {
	tab := m.activeTab()
	if tab == nil || m.docs == nil {
		m.help.SetContent("No help available")
		return
	}
	doc, err := m.docs.Doc(tab.tool.Entry)
	if err != nil {
		m.setStatusError("Could not load help", err, "tool", tab.tool.Entry.ID)
		m.help.SetContent("No help available")
		return
	}
	m.help.SetContent(renderMarkdown(doc, m.theme, m.help.Width))
	m.help.GotoTop()
}
