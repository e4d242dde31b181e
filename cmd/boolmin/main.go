// Command boolmin is the CLI entry point for the minimizer.
package main

import (
	"fmt"
	"os"

	"github.com/pborges/boolmin/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
