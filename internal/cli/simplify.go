package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	boolmin "github.com/pborges/boolmin"
)

func newSimplifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simplify <expr>",
		Short: "Print the minimized form of a boolean expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			opts, err := parseFormatFlags(cmd, formatDefaultsFromContext(cmd.Context()))
			if err != nil {
				return err
			}

			p := newProgress(logger)
			result, err := boolmin.Process(args[0], boolmin.ProcessOptions{Format: opts})
			if err != nil {
				return err
			}
			p.done("simplified")
			logger.Debugf("run %s: %d prime implicant(s), %d minimal cover(s) considered",
				result.Diagnostics.RunID, len(result.Diagnostics.Primes), len(result.Diagnostics.Covers))

			fmt.Println(result.Simplified)
			return nil
		},
	}
	cmd.Flags().String("op", "symbolic", "operator style: symbolic or word")
	cmd.Flags().String("parens", "minimal", "parenthesization: minimal or full")
	return cmd
}
