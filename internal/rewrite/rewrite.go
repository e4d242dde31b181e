// Package rewrite applies a single post-minimization pass that recognizes
// the XOR idiom QMC and Petrick leave as a disjunction of two
// complementary AND terms, and restores it to a literal Xor node. This is
// the only rewrite this package performs: QMC already yields
// absorption-free sum-of-products output, so no further algebraic
// rewriting is needed for absorption, consensus, or De Morgan.
package rewrite

import "github.com/pborges/boolmin/internal/expr"

// Rewrite walks tree bottom-up, recursing into children first, then
// matching the XOR pattern at the current node. It is idempotent and
// never increases literal count; if no pattern matches anywhere, tree
// comes back unchanged in shape.
func Rewrite(tree expr.Tree) expr.Tree {
	switch t := tree.(type) {
	case expr.Const:
		return t
	case expr.Var:
		return t
	case expr.Not:
		return expr.Not{X: Rewrite(t.X)}
	case expr.And:
		return expr.And{L: Rewrite(t.L), R: Rewrite(t.R)}
	case expr.Xor:
		return expr.Xor{L: Rewrite(t.L), R: Rewrite(t.R)}
	case expr.Or:
		l := Rewrite(t.L)
		r := Rewrite(t.R)
		if a, b, ok := matchXor(l, r); ok {
			return expr.Xor{L: expr.Var{Name: a}, R: expr.Var{Name: b}}
		}
		return expr.Or{L: l, R: r}
	default:
		panic("rewrite: unhandled node type")
	}
}

type literal struct {
	name string
	neg  bool
}

func asLiteral(t expr.Tree) (literal, bool) {
	switch n := t.(type) {
	case expr.Var:
		return literal{name: n.Name}, true
	case expr.Not:
		if v, ok := n.X.(expr.Var); ok {
			return literal{name: v.Name, neg: true}, true
		}
	}
	return literal{}, false
}

// andLiteralPair reports the two literals of t if t is an And of exactly
// two distinct-variable literals, regardless of which operand holds
// which — the caller doesn't care about inner-And operand order, only
// about the unordered pair of (variable, polarity).
func andLiteralPair(t expr.Tree) (literal, literal, bool) {
	and, ok := t.(expr.And)
	if !ok {
		return literal{}, literal{}, false
	}
	l1, ok1 := asLiteral(and.L)
	l2, ok2 := asLiteral(and.R)
	if !ok1 || !ok2 || l1.name == l2.name {
		return literal{}, literal{}, false
	}
	return l1, l2, true
}

// matchXor reports whether l and r, the two disjuncts of an Or node
// (in either order — Or's commutativity is handled by this check being
// symmetric in l and r), are the two complementary AND terms of an XOR
// over the same two variables: (¬a∧b)∨(a∧¬b) or, equivalently,
// (¬a∧b)∨(¬b∧a). The two variable names come back in ascending name
// order, so the result does not depend on operand order.
func matchXor(l, r expr.Tree) (a, b string, ok bool) {
	la1, lb1, ok1 := andLiteralPair(l)
	ra1, rb1, ok2 := andLiteralPair(r)
	if !ok1 || !ok2 {
		return "", "", false
	}

	var raForA1, rbForB1 literal
	switch {
	case la1.name == ra1.name && lb1.name == rb1.name:
		raForA1, rbForB1 = ra1, rb1
	case la1.name == rb1.name && lb1.name == ra1.name:
		raForA1, rbForB1 = rb1, ra1
	default:
		return "", "", false
	}

	if la1.neg == lb1.neg {
		// Each AND term must itself mix a positive and a negated
		// literal, or the pattern is (a∧b)∨(¬a∧¬b) — XNOR, not XOR.
		return "", "", false
	}
	if la1.neg == raForA1.neg || lb1.neg == rbForB1.neg {
		return "", "", false
	}
	if la1.name > lb1.name {
		return lb1.name, la1.name, true
	}
	return la1.name, lb1.name, true
}
