// Package convert turns a chosen prime-implicant cover back into an
// expression tree: each implicant becomes an AND-of-literals term, and
// the terms are combined with OR.
package convert

import (
	"sort"

	"github.com/pborges/boolmin/internal/expr"
	"github.com/pborges/boolmin/internal/petrick"
	"github.com/pborges/boolmin/internal/qmc"
)

// ImplicantToTerm converts one implicant over n variables (named, in
// canonical order, by vars) to a term. A don't-care position contributes
// no literal; a true position contributes Var(name); a false position
// contributes Not(Var(name)). Literals are folded right-leaning:
// [x, y, z] becomes And(x, And(y, z)). An implicant with no literals
// (all don't-care) becomes Const(true); this is how a full-minterm cover
// ultimately surfaces as Const(true) with no further wrapping.
func ImplicantToTerm(imp qmc.Implicant, vars []string) expr.Tree {
	n := len(vars)
	var literals []expr.Tree
	for i, name := range vars {
		bit := uint64(1) << uint(n-1-i)
		if imp.Mask&bit == 0 {
			continue
		}
		if imp.Value&bit != 0 {
			literals = append(literals, expr.Var{Name: name})
		} else {
			literals = append(literals, expr.Not{X: expr.Var{Name: name}})
		}
	}
	if len(literals) == 0 {
		return expr.Const{Value: true}
	}
	if len(literals) == 1 {
		return literals[0]
	}
	acc := literals[len(literals)-1]
	for i := len(literals) - 2; i >= 0; i-- {
		acc = expr.And{L: literals[i], R: acc}
	}
	return acc
}

// activeIndices returns, in ascending canonical-variable-index order,
// the positions of imp's care bits — the index sequence ImplicantToTerm
// would turn into a literal list. It is the sort key CoverToTree orders
// terms by.
func activeIndices(imp qmc.Implicant, n int) []int {
	var idx []int
	for i := 0; i < n; i++ {
		bit := uint64(1) << uint(n-1-i)
		if imp.Mask&bit != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

func lessIndexList(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// CoverToTree converts a chosen cover to an OR-of-AND expression tree.
// Terms are ordered by the canonical variable list of each resulting
// term before folding, so the output is deterministic across runs.
// Association of the outer OR is left-leaning: [t1, t2, t3] becomes
// Or(Or(t1, t2), t3).
func CoverToTree(cover petrick.Cover, vars []string) expr.Tree {
	n := len(vars)
	ordered := make([]qmc.Implicant, len(cover))
	copy(ordered, cover)
	sort.Slice(ordered, func(i, j int) bool {
		return lessIndexList(activeIndices(ordered[i], n), activeIndices(ordered[j], n))
	})

	terms := make([]expr.Tree, len(ordered))
	for i, imp := range ordered {
		terms[i] = ImplicantToTerm(imp, vars)
	}

	acc := terms[0]
	for _, t := range terms[1:] {
		acc = expr.Or{L: acc, R: t}
	}
	return acc
}
