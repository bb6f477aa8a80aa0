package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available calculators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, tool := range reg.Tools() {
				fmt.Fprintf(out, "%-18s %s\n", tool.Entry.ID, tool.Entry.Name)
			}
			return nil
		},
	}
}
