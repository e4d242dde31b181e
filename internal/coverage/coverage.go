// Package coverage builds the minterm-to-covering-prime-implicants map
// that internal/petrick consumes.
package coverage

import "github.com/pborges/boolmin/internal/qmc"

// Table maps each original minterm to the prime implicants that cover it.
// Every minterm has a key; an empty list means no prime covers it — a structural
// invariant violation that internal/minimize treats as fatal, since the
// primes qmc.Run returns are always a complete cover of their input.
type Table map[int][]qmc.Implicant

// Build constructs the coverage table for primes against minterms.
func Build(primes []qmc.Implicant, minterms []int) Table {
	table := make(Table, len(minterms))
	for _, m := range minterms {
		var covering []qmc.Implicant
		for _, p := range primes {
			if p.Covers(uint64(m)) {
				covering = append(covering, p)
			}
		}
		table[m] = covering
	}
	return table
}
