package formatter

import (
	"testing"

	"github.com/pborges/boolmin/internal/expr"
)

func v(name string) expr.Tree { return expr.Var{Name: name} }

func TestFormatSymbolicMinimal(t *testing.T) {
	// a | b & !c  --  precedence already disambiguates: no parens needed
	tree := expr.Or{L: v("a"), R: expr.And{L: v("b"), R: expr.Not{X: v("c")}}}
	got := Format(tree, Options{Operators: Symbolic, Parentheses: Minimal})
	want := "a | b & !c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatWordMinimal(t *testing.T) {
	tree := expr.Or{L: v("a"), R: expr.And{L: v("b"), R: expr.Not{X: v("c")}}}
	got := Format(tree, Options{Operators: Word, Parentheses: Minimal})
	want := "a OR b AND NOT c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatMinimalAddsParensWhenPrecedenceRequires(t *testing.T) {
	// (a | b) & c -- and binds tighter than or, so parens are required
	tree := expr.And{L: expr.Or{L: v("a"), R: v("b")}, R: v("c")}
	got := Format(tree, Options{Operators: Symbolic, Parentheses: Minimal})
	want := "(a | b) & c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFullParenthesizesEveryBinaryNode(t *testing.T) {
	tree := expr.Or{L: v("a"), R: expr.And{L: v("b"), R: expr.Not{X: v("c")}}}
	got := Format(tree, Options{Operators: Symbolic, Parentheses: Full})
	want := "(a | (b & !c))"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatNotOperandNeedsNoParensOnVar(t *testing.T) {
	got := Format(expr.Not{X: v("a")}, Options{Operators: Symbolic, Parentheses: Minimal})
	if got != "!a" {
		t.Errorf("got %q, want !a", got)
	}
}

func TestFormatNotOperandParenthesizedWhenBinary(t *testing.T) {
	tree := expr.Not{X: expr.And{L: v("a"), R: v("b")}}
	got := Format(tree, Options{Operators: Symbolic, Parentheses: Minimal})
	if got != "!(a & b)" {
		t.Errorf("got %q, want !(a & b)", got)
	}
}

func TestFormatConstSymbolic(t *testing.T) {
	if got := Format(expr.Const{Value: true}, Options{Operators: Symbolic}); got != "1" {
		t.Errorf("got %q, want 1", got)
	}
	if got := Format(expr.Const{Value: false}, Options{Operators: Symbolic}); got != "0" {
		t.Errorf("got %q, want 0", got)
	}
}

func TestFormatConstWord(t *testing.T) {
	if got := Format(expr.Const{Value: true}, Options{Operators: Word}); got != "TRUE" {
		t.Errorf("got %q, want TRUE", got)
	}
	if got := Format(expr.Const{Value: false}, Options{Operators: Word}); got != "FALSE" {
		t.Errorf("got %q, want FALSE", got)
	}
}

func TestFormatXor(t *testing.T) {
	tree := expr.Xor{L: v("a"), R: v("b")}
	if got := Format(tree, Options{Operators: Symbolic, Parentheses: Minimal}); got != "a ^ b" {
		t.Errorf("got %q, want a ^ b", got)
	}
	if got := Format(tree, Options{Operators: Word, Parentheses: Minimal}); got != "a XOR b" {
		t.Errorf("got %q, want a XOR b", got)
	}
}
