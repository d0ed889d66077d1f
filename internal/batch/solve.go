package batch

import (
	"context"
	"sync"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

// SolveClones runs SolveAny on each of the given solvers concurrently,
// bounded by a Pool of the given width, and returns one board/error per
// input solver in the same order. Each solver must already be finalized
// and must not be shared with any other goroutine (use Solver.Clone to
// obtain independent copies before calling this).
func SolveClones(ctx context.Context, solvers []*sudoku.Solver, workers int) ([]*sudoku.Board, []error) {
	boards := make([]*sudoku.Board, len(solvers))
	errs := make([]error, len(solvers))

	pool := NewPool(workers)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i, s := range solvers {
		i, s := i, s
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			boards[i], errs[i] = s.SolveAny()
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()
	return boards, errs
}

// CountClones runs CountSolutions(limit) on each solver concurrently and
// returns one count/error per input solver in the same order.
func CountClones(ctx context.Context, solvers []*sudoku.Solver, limit, workers int) ([]int, []error) {
	counts := make([]int, len(solvers))
	errs := make([]error, len(solvers))

	pool := NewPool(workers)
	defer pool.Shutdown()

	var wg sync.WaitGroup
	for i, s := range solvers {
		i, s := i, s
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			counts[i], errs[i] = s.CountSolutions(limit)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()
	return counts, errs
}
