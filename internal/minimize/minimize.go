// Package minimize composes the truth table, QMC, coverage, Petrick,
// conversion, and rewrite stages into the single facade operation the
// rest of the module calls: tree in, minimized tree plus diagnostics out.
package minimize

import (
	"github.com/google/uuid"

	"github.com/pborges/boolmin/internal/convert"
	"github.com/pborges/boolmin/internal/coverage"
	"github.com/pborges/boolmin/internal/expr"
	"github.com/pborges/boolmin/internal/petrick"
	"github.com/pborges/boolmin/internal/qmc"
	"github.com/pborges/boolmin/internal/rewrite"
	"github.com/pborges/boolmin/internal/truthtable"
)

// NoMinimalCoverError is returned when Petrick's method reports no
// minimal cover while minterms exist. The coverage table handed to
// Petrick is built directly from QMC's primes, which are always a
// complete cover of their input minterms, so this signals a bug in this
// package rather than a condition callers can recover from.
type NoMinimalCoverError struct{}

func (NoMinimalCoverError) Error() string {
	return "minimize: no minimal cover found despite non-empty minterm set"
}

// Diagnostics is the observable record of one minimization call: the
// full QMC trace, every prime implicant found, every minimal cover
// Petrick reported, and the one selected. RunID is a correlation handle
// for embedders logging multiple calls; the core never interprets it.
type Diagnostics struct {
	RunID    uuid.UUID
	Trace    []qmc.TraceStep
	Primes   []qmc.Implicant
	Covers   []petrick.Cover
	Selected petrick.Cover
}

// Simplify runs the full minimization pipeline: variable list, truth
// table, QMC prime implicants, coverage table, Petrick minimal covers,
// lowest-literal-count selection, cover-to-tree conversion, and the XOR
// rewrite pass.
func Simplify(tree expr.Tree) (expr.Tree, Diagnostics, error) {
	diag := Diagnostics{RunID: uuid.New()}

	vars := expr.Variables(tree)
	n := len(vars)

	rows, err := truthtable.FromTree(tree)
	if err != nil {
		return nil, diag, err
	}
	minterms := truthtable.TrueMinterms(rows)

	if len(minterms) == 0 {
		return expr.Const{Value: false}, diag, nil
	}

	primes, trace := qmc.Run(minterms, n)
	diag.Trace = trace
	diag.Primes = primes

	table := coverage.Build(primes, minterms)
	covers := petrick.Run(table)
	if len(covers) == 0 {
		return nil, diag, NoMinimalCoverError{}
	}
	diag.Covers = covers

	selected := covers[0]
	bestCount := literalCount(selected, n)
	for _, c := range covers[1:] {
		count := literalCount(c, n)
		if count < bestCount {
			selected = c
			bestCount = count
		}
	}
	diag.Selected = selected

	result := convert.CoverToTree(selected, vars)
	result = rewrite.Rewrite(result)
	return result, diag, nil
}

func literalCount(cover petrick.Cover, n int) int {
	total := 0
	for _, imp := range cover {
		total += imp.LiteralCount(n)
	}
	return total
}
