package constraints

import (
	"testing"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

func TestArrowPrunesBulbToShaftSumRange(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	bulb := sudoku.CellIndex(n, 0, 0)
	s1 := sudoku.CellIndex(n, 0, 1)
	s2 := sudoku.CellIndex(n, 0, 2)

	b.KeepMask(0, 1, sudoku.MaskOfValues(1, 2))
	b.KeepMask(0, 2, sudoku.MaskOfValues(1, 2))

	arrow, err := NewArrow(n, bulb, []int{s1, s2})
	if err != nil {
		t.Fatalf("NewArrow: %v", err)
	}
	if res := arrow.InitCandidates(b); res != sudoku.Changed {
		t.Fatalf("InitCandidates = %v, want Changed", res)
	}
	// Shaft sum ranges over [1+1, 2+2] = [2,4].
	bulbMask := b.Candidates(0, 0)
	if bulbMask.MinValue() < 2 || bulbMask.MaxValue() > 4 {
		t.Fatalf("bulb candidates = %v, want within [2,4]", bulbMask.ValueSlice())
	}
}

func TestArrowRejectsImpossibleRange(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	bulb := sudoku.CellIndex(n, 0, 0)
	s1 := sudoku.CellIndex(n, 0, 1)

	b.KeepMask(0, 0, sudoku.MaskOfValues(1))
	b.KeepMask(0, 1, sudoku.MaskOfValues(9))

	arrow, err := NewArrow(n, bulb, []int{s1})
	if err != nil {
		t.Fatalf("NewArrow: %v", err)
	}
	if res := arrow.InitCandidates(b); res != sudoku.Invalid {
		t.Fatalf("InitCandidates = %v, want Invalid (bulb=1 can't equal shaft=9)", res)
	}
}
