package constraints

import (
	"testing"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

func TestDifferByLinksForbidCloseValues(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	links := sudoku.NewLinkGraph(n)
	a := sudoku.CellIndex(n, 0, 0)
	c := sudoku.CellIndex(n, 0, 1)

	d := NewDifferBy(n, a, c, 5)
	if res := d.InitLinks(b, links, nil, true); res != sudoku.None {
		t.Fatalf("InitLinks = %v, want None", res)
	}

	cand5 := sudoku.CandidateIndexOfCell(n, a, 5)
	tooClose := sudoku.CandidateIndexOfCell(n, c, 7) // |5-7|=2 < 5
	stillClose := sudoku.CandidateIndexOfCell(n, c, 1) // |5-1|=4 < 5

	if !links.IsWeak(cand5, tooClose) {
		t.Fatal("values closer than minDiff must be weakly linked")
	}
	if !links.IsWeak(cand5, stillClose) {
		t.Fatal("values closer than minDiff must be weakly linked")
	}
}

func TestDifferBySeenCellsByValueMask(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	links := sudoku.NewLinkGraph(n)
	a := sudoku.CellIndex(n, 0, 0)
	c := sudoku.CellIndex(n, 0, 1)

	d := NewDifferBy(n, a, c, 5)
	if res := d.InitLinks(b, links, nil, true); res != sudoku.None {
		t.Fatalf("InitLinks = %v, want None", res)
	}

	seen := d.SeenCells(a)
	if len(seen) != 1 || seen[0] != c {
		t.Fatalf("SeenCells(a) = %v, want [%d]", seen, c)
	}

	if got := d.SeenCellsByValueMask(a, sudoku.MaskOfValues(5)); len(got) != 1 || got[0] != c {
		t.Fatalf("SeenCellsByValueMask(a, {5}) = %v, want [%d]", got, c)
	}
}

func TestWhisperThresholdAndSplit(t *testing.T) {
	n := 9
	cells := []int{
		sudoku.CellIndex(n, 0, 0),
		sudoku.CellIndex(n, 0, 1),
		sudoku.CellIndex(n, 0, 2),
	}
	w, err := NewWhisper(n, cells)
	if err != nil {
		t.Fatalf("NewWhisper: %v", err)
	}
	if w.minDiff != 5 {
		t.Fatalf("minDiff = %d, want 5 for n=9", w.minDiff)
	}
	prims := w.SplitToPrimitives()
	if len(prims) != 2 {
		t.Fatalf("len(SplitToPrimitives()) = %d, want 2", len(prims))
	}
	for _, p := range prims {
		if p.SpecificName() != "differ-by" {
			t.Fatalf("primitive kind = %q, want differ-by", p.SpecificName())
		}
	}
}
