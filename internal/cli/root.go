// Package cli implements the boolmin command-line interface: parse a
// boolean expression from text, minimize it, evaluate it, or tabulate
// its truth table, with the algebraic core staying silent and pure
// throughout. Logging, configuration, and flag handling all live here.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pborges/boolmin/internal/formatter"
)

type ctxConfigKey int

const configKey ctxConfigKey = 0

func withFormatDefaults(ctx context.Context, opts formatter.Options) context.Context {
	return context.WithValue(ctx, configKey, opts)
}

func formatDefaultsFromContext(ctx context.Context) formatter.Options {
	if opts, ok := ctx.Value(configKey).(formatter.Options); ok {
		return opts
	}
	return formatter.Options{Operators: formatter.Symbolic, Parentheses: formatter.Minimal}
}

// Execute builds and runs the boolmin command tree.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "boolmin",
		Short:        "boolmin minimizes boolean expressions",
		Long:         "boolmin parses a boolean expression, reduces it to a minimal sum-of-products form (recognizing XOR shapes), and can evaluate it or print its truth table.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			ctx = withFormatDefaults(ctx, formatDefaults(cfg))
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging with per-stage timing")

	root.AddCommand(newSimplifyCmd())
	root.AddCommand(newEvalCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newTraceCmd())
	root.AddCommand(newVersionCmd())

	return root.ExecuteContext(context.Background())
}

// parseFormatFlags overrides defaults with any explicitly-set --op/--parens
// flag values on cmd.
func parseFormatFlags(cmd *cobra.Command, defaults formatter.Options) (formatter.Options, error) {
	opts := defaults
	if cmd.Flags().Changed("op") {
		op, _ := cmd.Flags().GetString("op")
		switch op {
		case "symbolic":
			opts.Operators = formatter.Symbolic
		case "word":
			opts.Operators = formatter.Word
		default:
			return opts, fmt.Errorf("unknown --op %q, want symbolic or word", op)
		}
	}
	if cmd.Flags().Changed("parens") {
		parens, _ := cmd.Flags().GetString("parens")
		switch parens {
		case "minimal":
			opts.Parentheses = formatter.Minimal
		case "full":
			opts.Parentheses = formatter.Full
		default:
			return opts, fmt.Errorf("unknown --parens %q, want minimal or full", parens)
		}
	}
	return opts, nil
}
