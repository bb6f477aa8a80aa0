package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-calc/internal/config"
)

// palette is the set of colors a theme assigns.
type palette struct {
	text     lipgloss.Color
	muted    lipgloss.Color
	accent   lipgloss.Color
	border   lipgloss.Color
	tabBg    lipgloss.Color
	positive lipgloss.Color
	negative lipgloss.Color
	warning  lipgloss.Color
}

var palettes = map[string]palette{
	config.ThemeDark: {
		text:     lipgloss.Color("252"),
		muted:    lipgloss.Color("244"),
		accent:   lipgloss.Color("204"),
		border:   lipgloss.Color("62"),
		tabBg:    lipgloss.Color("236"),
		positive: lipgloss.Color("78"),
		negative: lipgloss.Color("203"),
		warning:  lipgloss.Color("214"),
	},
	config.ThemeLight: {
		text:     lipgloss.Color("235"),
		muted:    lipgloss.Color("243"),
		accent:   lipgloss.Color("161"),
		border:   lipgloss.Color("25"),
		tabBg:    lipgloss.Color("254"),
		positive: lipgloss.Color("28"),
		negative: lipgloss.Color("160"),
		warning:  lipgloss.Color("130"),
	},
}

// styles holds every lipgloss style the views use. It is rebuilt whenever
// the theme changes.
type styles struct {
	pane         lipgloss.Style
	helpPane     lipgloss.Style
	title        lipgloss.Style
	tab          lipgloss.Style
	activeTab    lipgloss.Style
	label        lipgloss.Style
	focusedLabel lipgloss.Style
	result       lipgloss.Style
	increase     lipgloss.Style
	decrease     lipgloss.Style
	invalid      lipgloss.Style
	status       lipgloss.Style
	muted        lipgloss.Style
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[config.ThemeDark]
	}
	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.border).Padding(0, 1)
	return styles{
		pane:         pane,
		helpPane:     pane.BorderForeground(p.accent),
		title:        lipgloss.NewStyle().Bold(true).Foreground(p.accent).Padding(0, 1),
		tab:          lipgloss.NewStyle().Foreground(p.muted).Padding(0, 1),
		activeTab:    lipgloss.NewStyle().Bold(true).Foreground(p.text).Background(p.tabBg).Padding(0, 1),
		label:        lipgloss.NewStyle().Foreground(p.muted),
		focusedLabel: lipgloss.NewStyle().Bold(true).Foreground(p.accent),
		result:       lipgloss.NewStyle().Bold(true).Foreground(p.text),
		increase:     lipgloss.NewStyle().Bold(true).Foreground(p.positive),
		decrease:     lipgloss.NewStyle().Bold(true).Foreground(p.negative),
		invalid:      lipgloss.NewStyle().Foreground(p.warning),
		status:       lipgloss.NewStyle().Foreground(p.muted),
		muted:        lipgloss.NewStyle().Foreground(p.muted),
	}
}

func applyInputTheme(input *textinput.Model, theme string) {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[config.ThemeDark]
	}
	input.PromptStyle = lipgloss.NewStyle().Foreground(p.accent)
	input.TextStyle = lipgloss.NewStyle().Foreground(p.text)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.muted)
}
