package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	boolmin "github.com/pborges/boolmin"
)

func newEvalCmd() *cobra.Command {
	var assignments []string

	cmd := &cobra.Command{
		Use:   "eval <expr>",
		Short: "Evaluate a boolean expression under a variable assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			assignment, err := parseAssignments(assignments)
			if err != nil {
				return err
			}

			p := newProgress(logger)
			result, err := boolmin.EvalText(args[0], assignment)
			if err != nil {
				return err
			}
			p.done("evaluated")

			fmt.Println(result)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&assignments, "set", nil, "variable assignment in NAME=0|1 form, repeatable")
	return cmd
}

func parseAssignments(raw []string) (map[string]bool, error) {
	assignment := make(map[string]bool, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, want NAME=0|1", entry)
		}
		switch value {
		case "1", "true", "TRUE", "True":
			assignment[name] = true
		case "0", "false", "FALSE", "False":
			assignment[name] = false
		default:
			return nil, fmt.Errorf("invalid --set %q: value must be 0/1 or true/false", entry)
		}
	}
	return assignment, nil
}
