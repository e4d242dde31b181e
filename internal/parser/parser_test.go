package parser

import (
	"testing"

	"github.com/pborges/boolmin/internal/expr"
)

func TestParsePrecedence(t *testing.T) {
	// a | b ^ c & !d  parses as  a | (b ^ (c & (!d)))
	got, err := Parse("a | b ^ c & !d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := expr.Or{
		L: expr.Var{Name: "a"},
		R: expr.Xor{
			L: expr.Var{Name: "b"},
			R: expr.And{
				L: expr.Var{Name: "c"},
				R: expr.Not{X: expr.Var{Name: "d"}},
			},
		},
	}
	if !expr.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseLeftAssociativeOr(t *testing.T) {
	// a | b | c parses as (a | b) | c
	got, err := Parse("a | b | c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := expr.Or{
		L: expr.Or{L: expr.Var{Name: "a"}, R: expr.Var{Name: "b"}},
		R: expr.Var{Name: "c"},
	}
	if !expr.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseParenOverridesPrecedence(t *testing.T) {
	got, err := Parse("(a | b) & c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := expr.And{
		L: expr.Or{L: expr.Var{Name: "a"}, R: expr.Var{Name: "b"}},
		R: expr.Var{Name: "c"},
	}
	if !expr.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseDoubleNegation(t *testing.T) {
	got, err := Parse("!!a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := expr.Not{X: expr.Not{X: expr.Var{Name: "a"}}}
	if !expr.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseConstants(t *testing.T) {
	got, err := Parse("1 & a | 0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := expr.Or{
		L: expr.And{L: expr.Const{Value: true}, R: expr.Var{Name: "a"}},
		R: expr.Const{Value: false},
	}
	if !expr.Equal(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestParseMissingClosingParen(t *testing.T) {
	_, err := Parse("(a & b")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	perr, ok := err.(Error)
	if !ok {
		t.Fatalf("got %T, want Error", err)
	}
	if perr.Kind != MissingClosingParen {
		t.Errorf("got kind %v, want MissingClosingParen", perr.Kind)
	}
}

func TestParseUnexpectedEnd(t *testing.T) {
	_, err := Parse("a &")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	perr, ok := err.(Error)
	if !ok {
		t.Fatalf("got %T, want Error", err)
	}
	if perr.Kind != UnexpectedEnd {
		t.Errorf("got kind %v, want UnexpectedEnd", perr.Kind)
	}
}

func TestParseUnexpectedTrailingTokens(t *testing.T) {
	_, err := Parse("a)")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	perr, ok := err.(Error)
	if !ok {
		t.Fatalf("got %T, want Error", err)
	}
	if perr.Kind != UnexpectedTrailingTokens {
		t.Errorf("got kind %v, want UnexpectedTrailingTokens", perr.Kind)
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, err := Parse("")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	perr, ok := err.(Error)
	if !ok {
		t.Fatalf("got %T, want Error", err)
	}
	if perr.Kind != UnexpectedEnd {
		t.Errorf("got kind %v, want UnexpectedEnd", perr.Kind)
	}
}
