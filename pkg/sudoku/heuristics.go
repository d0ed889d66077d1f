package sudoku

import "sort"

// pickCell selects the next branching cell per the configured
// VariableHeuristic (spec §4.5 "pick the cell with the fewest candidates
// (>1), ties broken by scan order"). Returns -1 if every cell is set.
func pickCell(b *Board, groups *GroupRegistry, h VariableHeuristic) int {
	best := -1
	bestScore := -1.0
	for idx, mask := range b.cells {
		if mask.IsSet() {
			continue
		}
		count := mask.Count()
		if count <= 1 {
			continue
		}
		var score float64
		switch h {
		case HeuristicDomDegree:
			degree := len(groups.GroupsContaining(idx))
			score = float64(count) / float64(1+degree)
		default:
			score = float64(count)
		}
		if best == -1 || score < bestScore {
			best = idx
			bestScore = score
		}
	}
	return best
}

// orderedCandidates returns the digits to try for a cell, in the order the
// configured ValueHeuristic specifies (spec §5: "search explores
// candidates in ascending value order" by default).
func orderedCandidates(mask Mask, h ValueHeuristic) []int {
	vals := mask.ValueSlice()
	if h == ValueDescending {
		sort.Sort(sort.Reverse(sort.IntSlice(vals)))
	}
	return vals
}
