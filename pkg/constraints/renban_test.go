package constraints

import (
	"testing"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

func TestRenbanPrunesToAchievableRuns(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	cells := []int{sudoku.CellIndex(n, 0, 0), sudoku.CellIndex(n, 0, 1)}
	// Force one cell to 8, so the only viable consecutive run of length 2
	// containing 8 is {7,8} or {8,9}.
	b.KeepMask(0, 0, sudoku.MaskOfValues(8))

	line, err := NewRenban(n, cells)
	if err != nil {
		t.Fatalf("NewRenban: %v", err)
	}
	if res := line.InitCandidates(b); res != sudoku.Changed {
		t.Fatalf("InitCandidates = %v, want Changed", res)
	}
	other := b.Candidates(0, 1)
	if other.Has(1) || other.Has(5) {
		t.Fatalf("the partner cell should be limited to {7,9}, got %v", other.ValueSlice())
	}
	if !other.Has(7) || !other.Has(9) {
		t.Fatalf("the partner cell should allow both 7 and 9, got %v", other.ValueSlice())
	}
}

func TestRenbanRejectsWhenNoRunFits(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	cells := []int{sudoku.CellIndex(n, 0, 0), sudoku.CellIndex(n, 0, 1)}
	b.KeepMask(0, 0, sudoku.MaskOfValues(1))
	b.KeepMask(0, 1, sudoku.MaskOfValues(9))

	line, err := NewRenban(n, cells)
	if err != nil {
		t.Fatalf("NewRenban: %v", err)
	}
	if res := line.InitCandidates(b); res != sudoku.Invalid {
		t.Fatalf("InitCandidates = %v, want Invalid", res)
	}
}
