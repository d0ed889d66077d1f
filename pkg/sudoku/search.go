package sudoku

// Search implements the DFS fallback (spec §2 component 9, §4.5): once the
// deduction/constraint fixed point stalls without solving the board, pick
// the cell with the fewest remaining candidates (>1) and branch over its
// values, cloning the board so each branch's state is independent. An
// Invalid branch eliminates that value from the *original* board before
// moving to the next candidate, so search makes forward progress even when
// the caller only wants a single solution and stops early.
type Search struct {
	n        int
	groups   *GroupRegistry
	registry *ConstraintRegistry
	links    *LinkGraph
	cfg      *SolverConfig
	cancel   func() bool
}

// NewSearch wires the search component to the shared board shape, group and
// constraint registries, link graph, and solver configuration. cancel may
// be nil.
func NewSearch(n int, groups *GroupRegistry, registry *ConstraintRegistry, links *LinkGraph, cfg *SolverConfig, cancel func() bool) *Search {
	if cfg == nil {
		cfg = DefaultSolverConfig()
	}
	return &Search{n: n, groups: groups, registry: registry, links: links, cfg: cfg, cancel: cancel}
}

func isComplete(b *Board) bool {
	for _, m := range b.cells {
		if !m.IsSet() {
			return false
		}
	}
	return true
}

func (s *Search) isCancelled() bool {
	return s.cancel != nil && s.cancel()
}

// SolveAny returns the first solution found, or ErrUnsatisfiableAtConstruction-
// style Invalid if the puzzle has none.
func (s *Search) SolveAny(b *Board) (*Board, LogicResult) {
	var trace *StepTrace
	var out []*Board
	res := s.collectSolutions(b, trace, 1, &out)
	if res == Cancelled {
		return nil, Cancelled
	}
	if len(out) == 0 {
		return nil, Invalid
	}
	return out[0], PuzzleComplete
}

// SolveUnique searches for up to two solutions and reports whether exactly
// one exists (spec §4.5 "If exactly one branch survives, the parent cell
// must be v" generalizes to: a puzzle is unique iff search finds no second
// solution).
func (s *Search) SolveUnique(b *Board) (solution *Board, unique bool, res LogicResult) {
	var trace *StepTrace
	var out []*Board
	r := s.collectSolutions(b, trace, 2, &out)
	if r == Cancelled {
		return nil, false, Cancelled
	}
	switch len(out) {
	case 0:
		return nil, false, Invalid
	case 1:
		return out[0], true, PuzzleComplete
	default:
		return out[0], false, PuzzleComplete
	}
}

// CountSolutions counts distinct solutions up to limit, returning early once
// the limit is reached.
func (s *Search) CountSolutions(b *Board, limit int) (int, LogicResult) {
	var trace *StepTrace
	var out []*Board
	res := s.collectSolutions(b, trace, limit, &out)
	if res == Cancelled {
		return len(out), Cancelled
	}
	return len(out), PuzzleComplete
}

// LogicalSolve drives the constraint/deduction fixed point without ever
// branching (spec §4.5 "no-guessing" mode), appending every logical step to
// trace. It reports PuzzleComplete if the board ends up fully assigned,
// Invalid on contradiction, and None if it stalled short of a solution.
func (s *Search) LogicalSolve(b *Board, trace *StepTrace) LogicResult {
	res := fixedPointDeductionsOnly(b, s.groups, s.registry, s.links, trace, s.cfg)
	if res == Invalid {
		return Invalid
	}
	if isComplete(b) {
		return PuzzleComplete
	}
	if s.isCancelled() {
		return Cancelled
	}
	return None
}

// collectSolutions drives b to a fixed point, then either records it as a
// solution or branches on the most constrained cell, appending every
// solution it finds to out until len(*out) reaches limit.
func (s *Search) collectSolutions(b *Board, trace *StepTrace, limit int, out *[]*Board) LogicResult {
	if s.isCancelled() {
		return Cancelled
	}
	if res := fixedPointDeductionsOnly(b, s.groups, s.registry, s.links, trace, s.cfg); res == Invalid {
		return None
	}
	if isComplete(b) {
		*out = append(*out, b.Clone())
		return None
	}

	cell := pickCell(b, s.groups, s.cfg.VariableHeuristic)
	if cell == -1 {
		return None
	}
	coord := CoordOf(s.n, cell)
	mask := b.GetFlat(cell)

	for _, v := range orderedCandidates(mask, s.cfg.ValueHeuristic) {
		if len(*out) >= limit {
			return None
		}
		if s.isCancelled() {
			return Cancelled
		}

		clone := b.Clone()
		prop := NewPropagator(s.n, s.groups, s.registry, s.links, trace, s.cancel)
		setRes := prop.SetValue(clone, coord.Row, coord.Col, v)
		if setRes == Cancelled {
			return Cancelled
		}
		if setRes == Invalid {
			b.ClearMask(coord.Row, coord.Col, bitFor(v))
			continue
		}

		if sub := s.collectSolutions(clone, trace, limit, out); sub == Cancelled {
			return Cancelled
		}
	}
	return None
}
