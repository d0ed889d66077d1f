package constraints

import "github.com/gitrdm/sudokernel/pkg/sudoku"

// parseCells decodes the "cells" option, a cell-range expression (see
// sudoku.ParseCellRange), into flat board indices in path order.
func parseCells(n int, opts map[string]string) ([]int, error) {
	expr, ok := opts["cells"]
	if !ok || expr == "" {
		return nil, sudoku.ErrParseCellRange
	}
	coords, err := sudoku.ParseCellRange(expr, n)
	if err != nil {
		return nil, err
	}
	cells := make([]int, len(coords))
	for i, co := range coords {
		cells[i] = sudoku.CellIndex(n, co.Row, co.Col)
	}
	return cells, nil
}

// combinations returns every degree-sized, strictly ascending subset of
// the integers in [lo,hi].
func combinations(lo, hi, degree int) [][]int {
	var out [][]int
	if degree <= 0 || degree > hi-lo+1 {
		return out
	}
	idxs := make([]int, degree)
	for i := range idxs {
		idxs[i] = lo + i
	}
	for {
		combo := append([]int(nil), idxs...)
		out = append(out, combo)

		i := degree - 1
		for i >= 0 && idxs[i] == hi-degree+1+i {
			i--
		}
		if i < 0 {
			break
		}
		idxs[i]++
		for j := i + 1; j < degree; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
	return out
}

// canAssignDistinct reports whether the cells (given by their candidate
// masks, in order) can be assigned a bijection onto vals respecting each
// cell's mask. Plain backtracking; vals and masks are expected to be
// small (cage/line sizes rarely exceed N).
func canAssignDistinct(masks []sudoku.Mask, vals []int) bool {
	used := make([]bool, len(vals))
	var rec func(ci int) bool
	rec = func(ci int) bool {
		if ci == len(masks) {
			return true
		}
		for vi, v := range vals {
			if used[vi] || !masks[ci].Has(v) {
				continue
			}
			used[vi] = true
			if rec(ci + 1) {
				return true
			}
			used[vi] = false
		}
		return false
	}
	return rec(0)
}

// feasibleDigitsPerCell returns, for each cell, the subset of vals it can
// take in some distinct bijection of vals onto the cells (given their
// current candidate masks). A cell's result is empty if no assignment
// exists at all.
func feasibleDigitsPerCell(masks []sudoku.Mask, vals []int) []sudoku.Mask {
	out := make([]sudoku.Mask, len(masks))
	if !canAssignDistinct(masks, vals) {
		return out
	}
	trial := append([]sudoku.Mask(nil), masks...)
	for ci := range masks {
		for _, v := range vals {
			if !masks[ci].Has(v) {
				continue
			}
			trial[ci] = sudoku.MaskOfValues(v)
			if canAssignDistinct(trial, vals) {
				out[ci] |= sudoku.MaskOfValues(v)
			}
		}
		trial[ci] = masks[ci]
	}
	return out
}

// weakSeenCells answers SeenCellsByValueMask for a constraint whose entire
// relation is declared as weak links (nonconsecutive, whisper/differ-by):
// for every digit v in m that cell could hold, the weak-link closure one
// hop out names every candidate directly forbidden by that placement, and
// the cells those candidates belong to are what the constraint "sees".
func weakSeenCells(n int, links *sudoku.LinkGraph, cell int, m sudoku.Mask) []int {
	if links == nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for v := 1; v <= n; v++ {
		if !m.Has(v) {
			continue
		}
		cand := sudoku.CandidateIndexOfCell(n, cell, v)
		for _, other := range links.WeakClosure(cand, 1) {
			oc := sudoku.CellOfCandidate(n, other)
			if oc == cell || seen[oc] {
				continue
			}
			seen[oc] = true
			out = append(out, oc)
		}
	}
	return out
}

func cellMasks(b *sudoku.Board, cells []int) []sudoku.Mask {
	masks := make([]sudoku.Mask, len(cells))
	for i, idx := range cells {
		co := sudoku.CoordOf(b.N(), idx)
		masks[i] = b.Candidates(co.Row, co.Col)
	}
	return masks
}

func keepMaskAt(b *sudoku.Board, idx int, m sudoku.Mask) sudoku.LogicResult {
	co := sudoku.CoordOf(b.N(), idx)
	return b.KeepMask(co.Row, co.Col, m)
}

func clearMaskAt(b *sudoku.Board, idx int, m sudoku.Mask) sudoku.LogicResult {
	co := sudoku.CoordOf(b.N(), idx)
	return b.ClearMask(co.Row, co.Col, m)
}

// combine folds a secondary result into an accumulator, preserving
// precedence Invalid > Cancelled > Changed > None (mirrors the kernel's
// own combine in pkg/sudoku, unexported there).
func combine(acc, next sudoku.LogicResult) sudoku.LogicResult {
	rank := func(r sudoku.LogicResult) int {
		switch r {
		case sudoku.Invalid:
			return 3
		case sudoku.Cancelled:
			return 2
		case sudoku.Changed:
			return 1
		default:
			return 0
		}
	}
	if rank(next) > rank(acc) {
		return next
	}
	return acc
}
