package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	boolmin "github.com/pborges/boolmin"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the boolmin version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(boolmin.Version())
			return nil
		},
	}
}
