// Package boolmin minimizes boolean expressions: parse or build a tree,
// reduce it to a minimal sum-of-products (with XOR recognized where it
// applies), evaluate it, or tabulate its truth table. The algorithmic
// core lives in internal/ packages; this file is the public facade.
package boolmin

import (
	"fmt"

	"github.com/pborges/boolmin/internal/expr"
	"github.com/pborges/boolmin/internal/formatter"
	"github.com/pborges/boolmin/internal/minimize"
	"github.com/pborges/boolmin/internal/parser"
	"github.com/pborges/boolmin/internal/truthtable"
)

// Diagnostics is the observable record of one Simplify call: the QMC
// trace, the prime implicants found, every minimal cover Petrick
// reported, the one selected, and a correlation RunID.
type Diagnostics = minimize.Diagnostics

// FormatOptions controls how Process renders its simplified result.
type FormatOptions = formatter.Options

// Re-exported formatter option values, so callers need not import
// internal/formatter to configure Process.
const (
	Symbolic = formatter.Symbolic
	Word     = formatter.Word
	Minimal  = formatter.Minimal
	Full     = formatter.Full
)

// ProcessOptions configures Process.
type ProcessOptions struct {
	Format FormatOptions
}

// ProcessResult bundles Process's output: the simplified formula as
// text, the input formula's truth table, and the simplification's
// diagnostics.
type ProcessResult struct {
	Simplified  string
	Table       []truthtable.Row
	Diagnostics Diagnostics
}

// Simplify reduces tree to a minimal sum-of-products tree, recognizing
// XOR shape where it applies. It panics if the minimizer observes
// Petrick's method reporting no cover for a non-empty minterm set — an
// implementation-bug invariant violation, not a condition callers are
// expected to recover from.
func Simplify(tree expr.Tree) (expr.Tree, Diagnostics) {
	result, diag, err := minimize.Simplify(tree)
	if err != nil {
		panic(fmt.Sprintf("boolmin: %v", err))
	}
	return result, diag
}

// Eval evaluates tree under assignment, returning an error if tree
// references a variable assignment does not bind.
func Eval(tree expr.Tree, assignment map[string]bool) (bool, error) {
	return expr.Eval(tree, assignment)
}

// TruthTable enumerates every row of tree's truth table, one row per
// assignment over tree's variables in first-occurrence order.
func TruthTable(tree expr.Tree) []truthtable.Row {
	rows, err := truthtable.FromTree(tree)
	if err != nil {
		panic(fmt.Sprintf("boolmin: %v", err))
	}
	return rows
}

// Variables lists tree's free variables in first-occurrence order.
func Variables(tree expr.Tree) []string {
	return expr.Variables(tree)
}

// SimplifyText parses s, simplifies it, and renders the result with
// default formatting (symbolic operators, minimal parentheses).
func SimplifyText(s string) (string, Diagnostics, error) {
	tree, err := parser.Parse(s)
	if err != nil {
		return "", Diagnostics{}, err
	}
	result, diag, err := minimize.Simplify(tree)
	if err != nil {
		return "", diag, err
	}
	return formatter.Format(result, formatter.Options{Operators: formatter.Symbolic, Parentheses: formatter.Minimal}), diag, nil
}

// EvalText parses s and evaluates it under assignment.
func EvalText(s string, assignment map[string]bool) (bool, error) {
	tree, err := parser.Parse(s)
	if err != nil {
		return false, err
	}
	return expr.Eval(tree, assignment)
}

// TruthTableText parses s and returns its truth table.
func TruthTableText(s string) ([]truthtable.Row, error) {
	tree, err := parser.Parse(s)
	if err != nil {
		return nil, err
	}
	return truthtable.FromTree(tree)
}

// Process parses, simplifies, formats, and tabulates s in one call —
// the entry point the CLI's simplify subcommand uses.
func Process(s string, opts ProcessOptions) (ProcessResult, error) {
	tree, err := parser.Parse(s)
	if err != nil {
		return ProcessResult{}, err
	}
	simplified, diag, err := minimize.Simplify(tree)
	if err != nil {
		return ProcessResult{}, err
	}
	table, err := truthtable.FromTree(tree)
	if err != nil {
		return ProcessResult{}, err
	}
	return ProcessResult{
		Simplified:  formatter.Format(simplified, opts.Format),
		Table:       table,
		Diagnostics: diag,
	}, nil
}
