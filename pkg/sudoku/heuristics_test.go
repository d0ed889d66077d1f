package sudoku

import "testing"

func TestPickCellFewestCandidates(t *testing.T) {
	b := NewBoard(9)
	gr, _ := NewGroupRegistry(9, classicRegions(9, 3))
	b.KeepMask(3, 3, MaskOfValues(1, 2))
	got := pickCell(b, gr, HeuristicFewestCandidates)
	want := CellIndex(9, 3, 3)
	if got != want {
		t.Fatalf("pickCell = %d, want %d", got, want)
	}
}

func TestPickCellReturnsMinusOneWhenSolved(t *testing.T) {
	b := NewBoard(1)
	gr, _ := NewGroupRegistry(1, [][]int{{0}})
	b.setValueRaw(0, 0, 1)
	if got := pickCell(b, gr, HeuristicFewestCandidates); got != -1 {
		t.Fatalf("pickCell = %d, want -1", got)
	}
}

func TestOrderedCandidatesDirection(t *testing.T) {
	m := MaskOfValues(2, 4, 6)
	asc := orderedCandidates(m, ValueAscending)
	if asc[0] != 2 || asc[2] != 6 {
		t.Fatalf("ascending order = %v", asc)
	}
	desc := orderedCandidates(m, ValueDescending)
	if desc[0] != 6 || desc[2] != 2 {
		t.Fatalf("descending order = %v", desc)
	}
}
