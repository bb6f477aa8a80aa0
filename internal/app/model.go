package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-calc/internal/calc"
	"github.com/treykane/cli-calc/internal/catalog"
	"github.com/treykane/cli-calc/internal/config"
	"github.com/treykane/cli-calc/internal/widget"
)

// tabState is everything one calculator tab remembers while the user works
// in other tabs.
type tabState struct {
	tool    widget.Tool
	inputs  []textinput.Model
	focus   int
	outcome *widget.Outcome
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	cfg config.Config
	// persisted is the config as stored on disk. UI changes are saved onto
	// it so command-line overrides in cfg never leak into config.json.
	persisted config.Config
	opts calc.FormatOptions
	docs *catalog.Catalog

	// Calculator tabs
	tabs   []tabState
	active int

	// Chrome
	theme    string
	styles   styles
	showHelp bool
	help     viewport.Model
	status   string

	// Layout sizing
	width  int
	height int

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string

	// saveConfig persists settings changed from the UI (theme).
	saveConfig func(config.Config) error
}

// Options configures New.
type Options struct {
	// Config holds the effective settings, flags applied.
	Config config.Config
	// Persisted is the config as loaded from disk; nil means Config.
	Persisted *config.Config
	Registry *widget.Registry
	Catalog  *catalog.Catalog
	// Tool selects the initial tab by catalog ID; empty falls back to
	// Config.DefaultTool, then to the first tab.
	Tool string
	// SaveConfig defaults to config.Save.
	SaveConfig func(config.Config) error
}

// New prepares the initial UI model with one tab per registered tool.
func New(opts Options) (*Model, error) {
	theme, err := config.NormalizeTheme(opts.Config.Theme)
	if err != nil {
		return nil, err
	}
	save := opts.SaveConfig
	if save == nil {
		save = config.Save
	}

	m := &Model{
		cfg:        opts.Config,
		opts:       opts.Config.FormatOptions(),
		docs:       opts.Catalog,
		theme:      theme,
		styles:     newStyles(theme),
		help:       viewport.New(0, 0),
		status:     "Ready",
		saveConfig: save,
	}
	m.cfg.Theme = theme
	m.persisted = m.cfg
	if opts.Persisted != nil {
		m.persisted = *opts.Persisted
	}

	for _, tool := range opts.Registry.Tools() {
		m.tabs = append(m.tabs, newTabState(tool, theme))
	}

	initial := opts.Tool
	if initial == "" {
		initial = opts.Config.DefaultTool
	}
	if initial != "" {
		m.active = m.tabIndex(initial)
		if m.active < 0 {
			appLog.Warn("unknown initial tool, using first tab", "tool", initial)
			m.active = 0
		}
	}

	m.loadKeybindings(opts.Config)
	m.focusActive()
	return m, nil
}

func newTabState(tool widget.Tool, theme string) tabState {
	fields := tool.Widget.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		input := textinput.New()
		input.Prompt = "› "
		input.Placeholder = f.Placeholder
		input.CharLimit = InputCharLimit
		applyInputTheme(&input, theme)
		inputs[i] = input
	}
	return tabState{tool: tool, inputs: inputs}
}

// Init starts the cursor blink of the focused field.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyLayout(m.calculateLayout())
		if m.showHelp {
			m.refreshHelp()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateFocusedInput(msg)
}

// tabIndex finds the tab of a catalog ID, or -1. Tabs follow catalog
// order, so the catalog index is the tab index.
func (m *Model) tabIndex(id string) int {
	if m.docs != nil {
		if i := m.docs.Index(id); i >= 0 && i < len(m.tabs) && m.tabs[i].tool.Entry.ID == id {
			return i
		}
		return -1
	}
	for i, tab := range m.tabs {
		if tab.tool.Entry.ID == id {
			return i
		}
	}
	return -1
}

func (m *Model) activeTab() *tabState {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return &m.tabs[m.active]
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	tab := m.activeTab()
	if tab == nil || len(tab.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	tab.inputs[tab.focus], cmd = tab.inputs[tab.focus].Update(msg)
	return cmd
}

// ActiveTool returns the catalog ID of the selected tab.
func (m *Model) ActiveTool() string {
	if tab := m.activeTab(); tab != nil {
		return tab.tool.Entry.ID
	}
	return ""
}
