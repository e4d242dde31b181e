// Package truthtable enumerates every assignment of a tree's variables
// and evaluates the tree against each one.
package truthtable

import "github.com/pborges/boolmin/internal/expr"

// Row is one line of a truth table: the assignment for every variable in
// the tree's canonical order, the minterm index that assignment encodes,
// and the tree's result under it.
type Row struct {
	Minterm    int
	Assignment map[string]bool
	Result     bool
}

// FromTree enumerates all 2^n rows of tree in strict ascending minterm
// order, n being the number of distinct variables in tree. Bit i of a
// minterm index (counted from the most-significant side) corresponds to
// the i-th variable in Variables(tree); this MSB-first convention is
// shared with internal/qmc and internal/convert and must not drift.
//
// A tree with no variables (built only from constants) yields a single
// row with an empty assignment.
func FromTree(tree expr.Tree) ([]Row, error) {
	vars := expr.Variables(tree)
	n := len(vars)
	size := 1 << uint(n)

	rows := make([]Row, 0, size)
	for m := 0; m < size; m++ {
		assignment := make(map[string]bool, n)
		for k, name := range vars {
			bit := (m >> uint(n-1-k)) & 1
			assignment[name] = bit == 1
		}
		result, err := expr.Eval(tree, assignment)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{Minterm: m, Assignment: assignment, Result: result})
	}
	return rows, nil
}

// TrueMinterms returns the minterm indices among rows whose Result is
// true, in ascending order. This is the direct input to internal/qmc.
func TrueMinterms(rows []Row) []int {
	var out []int
	for _, r := range rows {
		if r.Result {
			out = append(out, r.Minterm)
		}
	}
	return out
}
