package cli

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var docMarkdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func newDocCommand() *cobra.Command {
	var (
		asHTML bool
		raw    bool
		width  int
	)
	cmd := &cobra.Command{
		Use:   "doc ID",
		Short: "Show the documentation of a calculator",
		Long: `Show the documentation of a calculator, rendered for the terminal.

--html converts it to an HTML fragment instead, --raw prints the markdown
source.`,
		Example: `  cli-calc doc percent-change
  cli-calc doc arithmetic --html > arithmetic.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asHTML && raw {
				return fmt.Errorf("--html and --raw cannot be combined")
			}
			cat, _, err := registry()
			if err != nil {
				return err
			}
			entry, err := cat.Lookup(args[0])
			if err != nil {
				return err
			}
			doc, err := cat.Doc(entry)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case raw:
				_, err = fmt.Fprint(out, doc)
				return err
			case asHTML:
				var buf bytes.Buffer
				if err := docMarkdown.Convert([]byte(doc), &buf); err != nil {
					return fmt.Errorf("convert %s to html: %w", entry.ID, err)
				}
				_, err = out.Write(buf.Bytes())
				return err
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("create markdown renderer: %w", err)
			}
			rendered, err := renderer.Render(doc)
			if err != nil {
				return fmt.Errorf("render %s: %w", entry.ID, err)
			}
			_, err = fmt.Fprint(out, rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&asHTML, "html", false, "print HTML instead of terminal output")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width for terminal output")
	return cmd
}
