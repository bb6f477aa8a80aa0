package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treykane/cli-calc/internal/logging"
)

func newChangeCommand(e *env) *cobra.Command {
	return operandCommand(&cobra.Command{
		Use:   "change START END",
		Short: "Percentage change from START to END",
		Example: `  cli-calc change 100 150    # +50%
  cli-calc change 80 60      # -25%
  cli-calc change -50 25     # -150%`,
		RunE: e.evaluate("percent-change", 2),
	})
}

func newOfCommand(e *env) *cobra.Command {
	return operandCommand(&cobra.Command{
		Use:     "of PART WHOLE",
		Short:   "What percent PART is of WHOLE",
		Example: `  cli-calc of 25 200         # 12.5%`,
		RunE:    e.evaluate("percent-of", 2),
	})
}

func newValueCommand(e *env) *cobra.Command {
	return operandCommand(&cobra.Command{
		Use:     "value PERCENT WHOLE",
		Short:   "PERCENT percent of WHOLE",
		Example: `  cli-calc value 15 80       # 12`,
		RunE:    e.evaluate("percent-of-value", 2),
	})
}

func newArithCommand(e *env) *cobra.Command {
	return operandCommand(&cobra.Command{
		Use:   "arith A OP B",
		Short: "Add, subtract, multiply or divide two numbers",
		Long: `Apply OP to A and B. OP is one of + - * / (x and ÷ are accepted too).
Quote * so the shell does not expand it.`,
		Example: `  cli-calc arith 6 '*' 7     # 42
  cli-calc arith 1 / 3 --precision 4`,
		RunE: e.evaluate("arithmetic", 3),
	})
}

// operandCommand turns off cobra's flag parsing for a command whose
// positional args may be negative numbers; evaluate parses the flags itself.
func operandCommand(cmd *cobra.Command) *cobra.Command {
	cmd.DisableFlagParsing = true
	return cmd
}

// negativeOperand matches numbers such as "-50", "-.5" or "-1e3" that pflag
// would otherwise read as shorthand flags.
var negativeOperand = regexp.MustCompile(`^-(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// operandMark stands in for the minus sign of a negative operand while the
// flags are parsed. No flag or shell word starts with it.
const operandMark = "\x00"

// parseOperands parses the flags in raw and returns the positional operands
// in order, negative numbers included.
func parseOperands(cmd *cobra.Command, raw []string) ([]string, error) {
	masked := make([]string, len(raw))
	for i, arg := range raw {
		if negativeOperand.MatchString(arg) {
			arg = operandMark + arg[1:]
		}
		masked[i] = arg
	}

	// Flag parsing is disabled on the command, so the inherited flags are
	// merged here.
	cmd.InheritedFlags()
	flags := cmd.Flags()
	if err := flags.Parse(masked); err != nil {
		return nil, err
	}

	args := flags.Args()
	for i, arg := range args {
		if strings.HasPrefix(arg, operandMark) {
			args[i] = "-" + strings.TrimPrefix(arg, operandMark)
		}
	}
	return args, nil
}

// evaluate returns a RunE that feeds n positional operands to one
// calculator. The display string always goes to stdout, the placeholder
// included; an invalid outcome is then reported as the command error.
func (e *env) evaluate(id string, n int) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, raw []string) error {
		args, err := parseOperands(cmd, raw)
		if err != nil {
			return err
		}
		if help, _ := cmd.Flags().GetBool("help"); help {
			return cmd.Help()
		}
		if cmd.Flags().Changed("log-level") {
			logging.SetLevel(e.logLevel)
		}
		if len(args) != n {
			return fmt.Errorf("accepts %d arg(s), received %d", n, len(args))
		}

		cfg, _, err := e.settings(cmd)
		if err != nil {
			return err
		}
		_, reg, err := registry()
		if err != nil {
			return err
		}
		out, err := reg.Evaluate(id, args, cfg.FormatOptions())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Display)
		if out.Err != nil {
			cliLog.Debug("calculation rejected", "tool", id, "args", args, "reason", out.Err)
			return out.Err
		}
		return nil
	}
}
