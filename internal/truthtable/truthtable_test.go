package truthtable

import (
	"testing"

	"github.com/pborges/boolmin/internal/expr"
)

func TestFromTreeBitLayoutMSBFirst(t *testing.T) {
	// Variables in order a, b. Formula: a & !b.
	// minterm 0 = a=0,b=0 ; 1 = a=0,b=1 ; 2 = a=1,b=0 ; 3 = a=1,b=1
	tree := expr.And{L: expr.Var{"a"}, R: expr.Not{expr.Var{"b"}}}
	rows, err := FromTree(tree)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want 4", len(rows))
	}
	want := []bool{false, false, true, false}
	for i, row := range rows {
		if row.Minterm != i {
			t.Errorf("row %d: minterm = %d, want %d", i, row.Minterm, i)
		}
		if row.Result != want[i] {
			t.Errorf("row %d: result = %v, want %v", i, row.Result, want[i])
		}
	}
	if rows[2].Assignment["a"] != true || rows[2].Assignment["b"] != false {
		t.Errorf("row 2 assignment = %v, want a=true,b=false", rows[2].Assignment)
	}
}

func TestFromTreeZeroVariables(t *testing.T) {
	rows, err := FromTree(expr.Const{true})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if len(rows[0].Assignment) != 0 {
		t.Errorf("got assignment %v, want empty", rows[0].Assignment)
	}
	if !rows[0].Result {
		t.Errorf("got result false, want true")
	}
}

func TestTrueMinterms(t *testing.T) {
	tree := expr.And{L: expr.Var{"a"}, R: expr.Var{"b"}}
	rows, err := FromTree(tree)
	if err != nil {
		t.Fatal(err)
	}
	got := TrueMinterms(rows)
	want := []int{3}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, want %v", got, want)
	}
}
