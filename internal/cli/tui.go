package cli

import (
	"github.com/spf13/cobra"

	"github.com/treykane/cli-calc/internal/app"
)

func newTUICommand(e *env) *cobra.Command {
	var tool string
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive calculator",
		Long: `Open the interactive calculator with one tab per calculator.

Navigation:
  Ctrl+N/Ctrl+P  switch calculator
  Tab/Shift+Tab  move between fields
  Enter          calculate
  Ctrl+Y         copy the result
  Ctrl+T         toggle theme
  F1             help
  Ctrl+C         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.startTUI(cmd, tool)
		},
	}
	cmd.Flags().StringVar(&tool, "tool", "", "calculator to open first (see 'cli-calc list')")
	return cmd
}

func (e *env) startTUI(cmd *cobra.Command, tool string) error {
	cfg, stored, err := e.settings(cmd)
	if err != nil {
		return err
	}
	cat, reg, err := registry()
	if err != nil {
		return err
	}
	m, err := app.New(app.Options{
		Config:     cfg,
		Persisted:  &stored,
		Registry:   reg,
		Catalog:    cat,
		Tool:       tool,
		SaveConfig: e.saveConfig,
	})
	if err != nil {
		return err
	}
	cliLog.Debug("starting tui", "tool", m.ActiveTool(), "locale", cfg.Locale, "precision", cfg.Precision)
	return e.run(m)
}
