package batch

import (
	"context"
	"testing"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

var classicPuzzle = [81]int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

func classicRegions(n, box int) [][]int {
	regions := make([][]int, 0, n)
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			region := make([]int, 0, n)
			for r := br; r < br+box; r++ {
				for c := bc; c < bc+box; c++ {
					region = append(region, sudoku.CellIndex(n, r, c))
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

func newFinalizedClassicSolver(t *testing.T) *sudoku.Solver {
	t.Helper()
	s, err := sudoku.NewSolver(9, classicRegions(9, 3), nil)
	if err != nil {
		t.Fatalf("NewSolver: %v", err)
	}
	for i, v := range classicPuzzle {
		if v == 0 {
			continue
		}
		co := sudoku.CoordOf(9, i)
		if err := s.AddGiven(co.Row, co.Col, v); err != nil {
			t.Fatalf("AddGiven: %v", err)
		}
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	return s
}

func TestSolveClonesRunsIndependently(t *testing.T) {
	base := newFinalizedClassicSolver(t)

	const n = 4
	clones := make([]*sudoku.Solver, n)
	for i := range clones {
		c, err := base.Clone()
		if err != nil {
			t.Fatalf("Clone: %v", err)
		}
		clones[i] = c
	}

	boards, errs := SolveClones(context.Background(), clones, 2)
	for i := range clones {
		if errs[i] != nil {
			t.Fatalf("solver %d: %v", i, errs[i])
		}
		if boards[i] == nil {
			t.Fatalf("solver %d: expected a solved board", i)
		}
	}
}

func TestCountClonesRespectsLimit(t *testing.T) {
	base := newFinalizedClassicSolver(t)
	clones := []*sudoku.Solver{}
	for i := 0; i < 3; i++ {
		c, err := base.Clone()
		if err != nil {
			t.Fatalf("Clone: %v", err)
		}
		clones = append(clones, c)
	}

	counts, errs := CountClones(context.Background(), clones, 5, 2)
	for i := range clones {
		if errs[i] != nil {
			t.Fatalf("solver %d: %v", i, errs[i])
		}
		if counts[i] != 1 {
			t.Fatalf("solver %d: count = %d, want 1 (unique puzzle)", i, counts[i])
		}
	}
}
