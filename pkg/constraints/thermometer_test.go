package constraints

import (
	"testing"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

func TestLessThanPropagateNarrowsBothSides(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	a := sudoku.CellIndex(n, 0, 0)
	bulb := sudoku.CellIndex(n, 0, 1)
	b.KeepMask(0, 1, sudoku.MaskOfValues(1, 2, 3))

	lt := NewLessThan(n, a, bulb)
	if res := lt.InitCandidates(b); res != sudoku.Changed {
		t.Fatalf("InitCandidates = %v, want Changed", res)
	}
	if got := b.Candidates(0, 0); got != sudoku.MaskOfValues(1, 2) {
		t.Fatalf("a candidates = %v, want {1,2}", got.ValueSlice())
	}
	if got := b.Candidates(0, 1); got != sudoku.MaskOfValues(2, 3) {
		t.Fatalf("b candidates = %v, want {2,3}", got.ValueSlice())
	}
}

func TestLessThanEnforceOnCommit(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	a := sudoku.CellIndex(n, 0, 0)
	c := sudoku.CellIndex(n, 0, 1)
	lt := NewLessThan(n, a, c)

	if ok := lt.Enforce(b, 0, 0, 5); !ok {
		t.Fatal("Enforce should accept committing a=5")
	}
	if b.Candidates(0, 1).Has(5) || b.Candidates(0, 1).Has(3) {
		t.Fatal("b must lose every digit <= 5")
	}
	if !b.Candidates(0, 1).Has(6) {
		t.Fatal("b should keep digits > 5")
	}
}

func TestThermometerSplitsIntoPairwiseChain(t *testing.T) {
	n := 9
	cells := []int{
		sudoku.CellIndex(n, 0, 0),
		sudoku.CellIndex(n, 0, 1),
		sudoku.CellIndex(n, 0, 2),
		sudoku.CellIndex(n, 0, 3),
	}
	therm, err := NewThermometer(n, cells)
	if err != nil {
		t.Fatalf("NewThermometer: %v", err)
	}
	prims := therm.SplitToPrimitives()
	if len(prims) != 3 {
		t.Fatalf("len(SplitToPrimitives()) = %d, want 3", len(prims))
	}
	for _, p := range prims {
		if p.SpecificName() != "less-than" {
			t.Fatalf("primitive kind = %q, want less-than", p.SpecificName())
		}
	}
}
