package sudoku

import "testing"

func TestLogicalSolveStallsWithoutGuessing(t *testing.T) {
	// A single given on an otherwise empty 9x9 board: kernel deductions
	// alone can't solve it, so LogicalSolve must report "stalled", not
	// Invalid or PuzzleComplete.
	n, box := 9, 3
	b := NewBoard(n)
	gr, err := NewGroupRegistry(n, classicRegions(n, box))
	if err != nil {
		t.Fatalf("NewGroupRegistry: %v", err)
	}
	reg := NewConstraintRegistry()
	links := NewLinkGraph(n)
	b.setValueRaw(0, 0, 5)

	search := NewSearch(n, gr, reg, links, nil, nil)
	trace := NewStepTrace()
	res := search.LogicalSolve(b, trace)
	if res != None {
		t.Fatalf("LogicalSolve = %v, want None (stalled)", res)
	}
	if isComplete(b) {
		t.Fatal("the board should not be complete")
	}
}

func TestSearchSolveAnyTinyBoard(t *testing.T) {
	n, box := 4, 2
	gr, err := NewGroupRegistry(n, classicRegions(n, box))
	if err != nil {
		t.Fatalf("NewGroupRegistry: %v", err)
	}
	reg := NewConstraintRegistry()
	links := NewLinkGraph(n)
	b := NewBoard(n)

	search := NewSearch(n, gr, reg, links, nil, nil)
	solution, res := search.SolveAny(b)
	if res != PuzzleComplete {
		t.Fatalf("SolveAny res = %v, want PuzzleComplete", res)
	}
	if !isComplete(solution) {
		t.Fatal("solution must be fully assigned")
	}
}

func TestSearchCountSolutionsRespectsLimit(t *testing.T) {
	n, box := 4, 2
	gr, err := NewGroupRegistry(n, classicRegions(n, box))
	if err != nil {
		t.Fatalf("NewGroupRegistry: %v", err)
	}
	reg := NewConstraintRegistry()
	links := NewLinkGraph(n)
	b := NewBoard(n)

	search := NewSearch(n, gr, reg, links, nil, nil)
	count, res := search.CountSolutions(b, 1)
	if res != PuzzleComplete {
		t.Fatalf("CountSolutions res = %v", res)
	}
	if count != 1 {
		t.Fatalf("CountSolutions with limit 1 = %d, want 1", count)
	}
}
