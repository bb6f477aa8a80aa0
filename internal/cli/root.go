// Package cli is the cobra command tree of cli-calc: the interactive TUI
// plus one-shot commands that evaluate a single calculator and print the
// result.
package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treykane/cli-calc/internal/calc"
	"github.com/treykane/cli-calc/internal/catalog"
	"github.com/treykane/cli-calc/internal/config"
	"github.com/treykane/cli-calc/internal/logging"
	"github.com/treykane/cli-calc/internal/widget"
)

var cliLog = logging.New("cli")

// runProgram starts a Bubble Tea program; tests replace it.
type runProgram func(tea.Model) error

// env is shared by every command of one tree.
type env struct {
	precision int
	locale    string
	logLevel  string

	loadConfig func() (config.Config, error)
	saveConfig func(config.Config) error
	run        runProgram
}

// Execute runs the command tree against os.Args and prints any error to
// stderr.
func Execute() error {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&env{
		loadConfig: config.LoadOrDefault,
		saveConfig: config.Save,
		run:        runTeaProgram,
	})
}

func newRootCommand(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "cli-calc",
		Short: "Percentage and arithmetic calculators for the terminal",
		Long: `cli-calc is a small collection of number calculators.

Without a subcommand it opens the interactive TUI. The one-shot commands
evaluate a single calculator and print the formatted result; operands that
cannot be used print "—" and exit non-zero.

Negative operands are read as numbers, e.g. cli-calc change -50 25.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cmd.Flags().Changed("log-level") {
				logging.SetLevel(e.logLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.startTUI(cmd, "")
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&e.precision, "precision", calc.DefaultFractionDigits, "maximum fraction digits (0-15)")
	flags.StringVar(&e.locale, "locale", "", "BCP 47 locale for digit grouping, e.g. en, de, fr")
	flags.StringVar(&e.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newTUICommand(e),
		newChangeCommand(e),
		newOfCommand(e),
		newValueCommand(e),
		newArithCommand(e),
		newListCommand(e),
		newDocCommand(),
		newVersionCommand(),
	)
	return root
}

// settings loads config.json and applies the persistent flags on top. It
// returns the effective settings and the config as stored, which is what
// the TUI saves back.
func (e *env) settings(cmd *cobra.Command) (effective, stored config.Config, err error) {
	stored, err = e.loadConfig()
	if err != nil {
		return config.Config{}, config.Config{}, err
	}
	effective = stored
	if cmd.Flags().Changed("precision") {
		if e.precision < 0 || e.precision > calc.MaxFractionDigits {
			return config.Config{}, config.Config{}, fmt.Errorf("invalid precision: %d is outside 0-%d", e.precision, calc.MaxFractionDigits)
		}
		effective.Precision = e.precision
	}
	if cmd.Flags().Changed("locale") {
		tag, err := config.ParseLocale(e.locale)
		if err != nil {
			return config.Config{}, config.Config{}, fmt.Errorf("invalid locale: %w", err)
		}
		effective.Locale = tag.String()
	}
	return effective, stored, nil
}

func registry() (*catalog.Catalog, *widget.Registry, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, err
	}
	reg, err := widget.NewRegistry(cat)
	if err != nil {
		return nil, nil, err
	}
	return cat, reg, nil
}

func runTeaProgram(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
