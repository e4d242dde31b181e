package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	boolmin "github.com/pborges/boolmin"
	"github.com/pborges/boolmin/internal/parser"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table <expr>",
		Short: "Print the truth table of a boolean expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			tree, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			vars := boolmin.Variables(tree)

			p := newProgress(logger)
			rows := boolmin.TruthTable(tree)
			p.done("built truth table")

			header := append(append([]string(nil), vars...), "result")
			fmt.Println(strings.Join(header, "\t"))
			for _, row := range rows {
				cells := make([]string, 0, len(vars)+1)
				for _, name := range vars {
					cells = append(cells, boolToCell(row.Assignment[name]))
				}
				cells = append(cells, boolToCell(row.Result))
				fmt.Println(strings.Join(cells, "\t"))
			}
			return nil
		},
	}
}

func boolToCell(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
