// Package petrick turns a coverage table into every minimal cover via
// Petrick's method: read the table as a product of sums, one factor per
// minterm, and distribute it into a sum of products with aggressive
// mid-expansion superset pruning.
package petrick

import (
	"fmt"
	"sort"

	"github.com/pborges/boolmin/internal/coverage"
	"github.com/pborges/boolmin/internal/qmc"
)

// Cover is a set of prime implicants, stored sorted in the same
// (Mask desc, Value asc) canonical order qmc.Run returns primes in, with
// no duplicates. That canonical order is what makes signature and
// isSubset work as simple linear scans.
type Cover []qmc.Implicant

func sortCover(c Cover) {
	sort.Slice(c, func(i, j int) bool {
		if c[i].Mask != c[j].Mask {
			return c[i].Mask > c[j].Mask
		}
		return c[i].Value < c[j].Value
	})
}

func signature(c Cover) string {
	s := ""
	for _, imp := range c {
		s += fmt.Sprintf("%d:%d;", imp.Mask, imp.Value)
	}
	return s
}

// isSubset reports whether every implicant in a is also in b. Both must
// be in canonical sorted order.
func isSubset(a, b Cover) bool {
	if len(a) > len(b) {
		return false
	}
	i := 0
	for j := 0; i < len(a) && j < len(b); j++ {
		if a[i] == b[j] {
			i++
		}
	}
	return i == len(a)
}

func union(a Cover, p qmc.Implicant) Cover {
	for _, imp := range a {
		if imp == p {
			return a
		}
	}
	out := make(Cover, len(a), len(a)+1)
	copy(out, a)
	out = append(out, p)
	sortCover(out)
	return out
}

// pruneSupersets removes every partial product that strictly contains
// another partial product in the list. Pruning runs after every fold
// step, not only at the end, to keep the intermediate state bounded.
func pruneSupersets(covers []Cover) []Cover {
	dedup := make(map[string]Cover, len(covers))
	for _, c := range covers {
		dedup[signature(c)] = c
	}
	uniq := make([]Cover, 0, len(dedup))
	for _, c := range dedup {
		uniq = append(uniq, c)
	}

	dominated := make([]bool, len(uniq))
	for i := range uniq {
		for j := range uniq {
			if i == j || dominated[i] {
				continue
			}
			if len(uniq[j]) < len(uniq[i]) && isSubset(uniq[j], uniq[i]) {
				dominated[i] = true
				break
			}
		}
	}
	out := make([]Cover, 0, len(uniq))
	for i, c := range uniq {
		if !dominated[i] {
			out = append(out, c)
		}
	}
	return out
}

// Run enumerates every minimal cover implied by table. An empty table
// yields an empty, non-nil-error list of covers. If table is non-empty
// but some minterm maps to no covering implicant, Run returns an empty
// list: no cover exists, which internal/minimize treats as the fatal
// NoMinimalCover invariant violation (the coverage table it is ever
// handed is expected to have already ruled this out).
func Run(table coverage.Table) []Cover {
	if len(table) == 0 {
		return nil
	}

	minterms := make([]int, 0, len(table))
	for m := range table {
		minterms = append(minterms, m)
	}
	sort.Ints(minterms)

	factors := make([][]qmc.Implicant, len(minterms))
	for i, m := range minterms {
		factors[i] = table[m]
		if len(factors[i]) == 0 {
			return nil
		}
	}

	var partials []Cover
	for _, p := range factors[0] {
		partials = append(partials, union(nil, p))
	}
	partials = pruneSupersets(partials)

	for _, factor := range factors[1:] {
		var next []Cover
		for _, pp := range partials {
			for _, p := range factor {
				next = append(next, union(pp, p))
			}
		}
		partials = pruneSupersets(next)
	}

	sort.Slice(partials, func(i, j int) bool {
		if len(partials[i]) != len(partials[j]) {
			return len(partials[i]) < len(partials[j])
		}
		return signature(partials[i]) < signature(partials[j])
	})
	return partials
}
