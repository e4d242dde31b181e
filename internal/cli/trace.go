package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	boolmin "github.com/pborges/boolmin"
	"github.com/pborges/boolmin/internal/convert"
	"github.com/pborges/boolmin/internal/formatter"
	"github.com/pborges/boolmin/internal/parser"
	"github.com/pborges/boolmin/internal/petrick"
	"github.com/pborges/boolmin/internal/qmc"
)

func newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <expr>",
		Short: "Print the Quine-McCluskey pass-by-pass trace and the minimal covers considered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			tree, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			vars := boolmin.Variables(tree)

			p := newProgress(logger)
			simplified, diag := boolmin.Simplify(tree)
			p.done("minimized")

			if len(diag.Primes) == 0 {
				// No minterms to minimize: QMC never ran, and the
				// result is a bare constant.
				fmt.Println("no minterms: result is constant")
				fmt.Printf("selected: %s\n", formatter.Format(simplified, formatter.Options{Operators: formatter.Symbolic, Parentheses: formatter.Minimal}))
				return nil
			}

			for i, step := range diag.Trace {
				fmt.Printf("pass %d (%s):\n", i, step.Kind)
				for _, k := range sortedGroupKeys(step.GroupsAfter) {
					for _, imp := range step.GroupsAfter[k] {
						fmt.Printf("  group %d: %s\n", k, renderImplicant(imp, vars))
					}
				}
			}

			fmt.Println("prime implicants:")
			for _, imp := range diag.Primes {
				fmt.Printf("  %s\n", renderImplicant(imp, vars))
			}

			fmt.Println("minimal covers considered:")
			for _, cover := range diag.Covers {
				fmt.Printf("  %s\n", renderCover(cover, vars))
			}
			fmt.Printf("selected: %s\n", renderCover(diag.Selected, vars))
			return nil
		},
	}
}

func sortedGroupKeys(groups map[int][]qmc.Implicant) []int {
	keys := make([]int, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j-1] > keys[j]; j-- {
			keys[j-1], keys[j] = keys[j], keys[j-1]
		}
	}
	return keys
}

func renderImplicant(imp qmc.Implicant, vars []string) string {
	return formatter.Format(convert.ImplicantToTerm(imp, vars), formatter.Options{Operators: formatter.Symbolic, Parentheses: formatter.Minimal})
}

func renderCover(cover petrick.Cover, vars []string) string {
	return formatter.Format(convert.CoverToTree(cover, vars), formatter.Options{Operators: formatter.Symbolic, Parentheses: formatter.Minimal})
}
