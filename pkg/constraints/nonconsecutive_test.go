package constraints

import (
	"testing"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

func TestNonConsecutivePairDeclaresLinks(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	links := sudoku.NewLinkGraph(n)
	a := sudoku.CellIndex(n, 0, 0)
	c := sudoku.CellIndex(n, 0, 1)

	p := NewNonConsecutivePair(n, a, c)
	if res := p.InitLinks(b, links, nil, true); res != sudoku.None {
		t.Fatalf("InitLinks = %v, want None", res)
	}

	cand5 := sudoku.CandidateIndexOfCell(n, a, 5)
	cand4 := sudoku.CandidateIndexOfCell(n, c, 4)
	cand6 := sudoku.CandidateIndexOfCell(n, c, 6)
	cand5c := sudoku.CandidateIndexOfCell(n, c, 5)

	if !links.IsWeak(cand5, cand4) {
		t.Fatal("5 and 4 are consecutive and must be weakly linked")
	}
	if !links.IsWeak(cand5, cand6) {
		t.Fatal("5 and 6 are consecutive and must be weakly linked")
	}
	if links.IsWeak(cand5, cand5c) {
		t.Fatal("5 and 5 are not consecutive and must not be linked by this constraint")
	}
}

func TestNonConsecutivePairSeenCellsByValueMask(t *testing.T) {
	n := 9
	b := sudoku.NewBoard(n)
	links := sudoku.NewLinkGraph(n)
	a := sudoku.CellIndex(n, 0, 0)
	c := sudoku.CellIndex(n, 0, 1)

	p := NewNonConsecutivePair(n, a, c)
	if res := p.InitLinks(b, links, nil, true); res != sudoku.None {
		t.Fatalf("InitLinks = %v, want None", res)
	}

	seen := p.SeenCells(a)
	if len(seen) != 1 || seen[0] != c {
		t.Fatalf("SeenCells(a) = %v, want [%d]", seen, c)
	}

	restricted := p.SeenCellsByValueMask(a, sudoku.MaskOfValues(5))
	if len(restricted) != 1 || restricted[0] != c {
		t.Fatalf("SeenCellsByValueMask(a, {5}) = %v, want [%d]", restricted, c)
	}

	if got := p.SeenCells(sudoku.CellIndex(n, 5, 5)); got != nil {
		t.Fatalf("SeenCells of an untouched cell = %v, want nil", got)
	}
}
