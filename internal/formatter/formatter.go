// Package formatter renders an expression tree back to infix text,
// mirroring the parser's grammar so that Format and Parse round-trip.
package formatter

import (
	"strings"

	"github.com/pborges/boolmin/internal/expr"
)

// OperatorStyle selects the operator spelling Format emits.
type OperatorStyle int

const (
	// Symbolic renders operators as !, &, |, ^.
	Symbolic OperatorStyle = iota
	// Word renders operators as NOT, AND, OR, XOR.
	Word
)

// ParenStyle selects how liberally Format parenthesizes binary nodes.
type ParenStyle int

const (
	// Minimal omits parentheses wherever the grammar's precedence
	// already disambiguates the result.
	Minimal ParenStyle = iota
	// Full parenthesizes every binary node, regardless of precedence.
	Full
)

// Options controls Format's output.
type Options struct {
	Operators   OperatorStyle
	Parentheses ParenStyle
}

// precedence levels, lowest to highest, matching the parser's grammar:
// or < xor < and < not.
const (
	precOr = iota
	precXor
	precAnd
	precNot
	precAtom
)

// Format renders tree as infix text under opts.
func Format(tree expr.Tree, opts Options) string {
	var b strings.Builder
	writeNode(&b, tree, opts, precOr)
	return b.String()
}

func writeNode(b *strings.Builder, tree expr.Tree, opts Options, parentPrec int) {
	switch t := tree.(type) {
	case expr.Const:
		b.WriteString(constText(t.Value, opts.Operators))
	case expr.Var:
		b.WriteString(t.Name)
	case expr.Not:
		b.WriteString(notText(opts.Operators))
		writeNode(b, t.X, opts, precNot)
	case expr.And:
		writeBinary(b, t.L, t.R, andText(opts.Operators), precAnd, opts, parentPrec)
	case expr.Xor:
		writeBinary(b, t.L, t.R, xorText(opts.Operators), precXor, opts, parentPrec)
	case expr.Or:
		writeBinary(b, t.L, t.R, orText(opts.Operators), precOr, opts, parentPrec)
	}
}

func writeBinary(b *strings.Builder, l, r expr.Tree, op string, prec int, opts Options, parentPrec int) {
	needParens := opts.Parentheses == Full || prec < parentPrec
	if needParens {
		b.WriteByte('(')
	}
	writeNode(b, l, opts, prec)
	b.WriteByte(' ')
	b.WriteString(op)
	b.WriteByte(' ')
	// The right operand of a binary op never needs a tighter precedence
	// guard beyond its own node's, because the grammar's repetition
	// (a OP b OP c) is left-associative and the left branch above
	// already carries that structure.
	writeNode(b, r, opts, prec)
	if needParens {
		b.WriteByte(')')
	}
}

func constText(v bool, style OperatorStyle) string {
	switch {
	case style == Word && v:
		return "TRUE"
	case style == Word && !v:
		return "FALSE"
	case v:
		return "1"
	default:
		return "0"
	}
}

func notText(style OperatorStyle) string {
	if style == Word {
		return "NOT "
	}
	return "!"
}

func andText(style OperatorStyle) string {
	if style == Word {
		return "AND"
	}
	return "&"
}

func orText(style OperatorStyle) string {
	if style == Word {
		return "OR"
	}
	return "|"
}

func xorText(style OperatorStyle) string {
	if style == Word {
		return "XOR"
	}
	return "^"
}
