package sudoku

// DeductionEngine performs the elementary kernel deductions (spec §4.4)
// after the propagator reaches a fixed point: hidden/naked singles, locked
// candidates, and naked/hidden tuples up to a configurable degree. It is
// re-run to a fixed point by the initializer and before each search
// branch.
type DeductionEngine struct {
	n        int
	groups   *GroupRegistry
	prop     *Propagator
	maxTuple int
}

// NewDeductionEngine wires the engine to the board shape, group registry,
// the propagator it commits singles through, and the configured tuple
// degree bound.
func NewDeductionEngine(n int, groups *GroupRegistry, prop *Propagator, maxTuple int) *DeductionEngine {
	return &DeductionEngine{n: n, groups: groups, prop: prop, maxTuple: maxTuple}
}

// Step performs one round of every elementary deduction and returns the
// strongest LogicResult observed. Callers fixed-point this alongside
// constraint StepLogic calls.
func (d *DeductionEngine) Step(b *Board, trace *StepTrace) LogicResult {
	acc := None
	acc = combine(acc, d.nakedSingles(b, trace))
	if acc == Invalid {
		return acc
	}
	acc = combine(acc, d.hiddenSingles(b, trace))
	if acc == Invalid {
		return acc
	}
	acc = combine(acc, d.lockedCandidates(b, trace))
	if acc == Invalid {
		return acc
	}
	if d.maxTuple >= 2 {
		acc = combine(acc, d.tuples(b, trace))
	}
	return acc
}

// nakedSingles commits any cell with exactly one candidate left. Normally
// the propagator already handles this; this is the safety net the spec
// calls for "after link-graph updates" (§4.4).
func (d *DeductionEngine) nakedSingles(b *Board, trace *StepTrace) LogicResult {
	acc := None
	for idx, mask := range b.cells {
		if mask.IsSet() || !mask.IsSingleton() {
			continue
		}
		coord := CoordOf(d.n, idx)
		v := mask.SingleValue()
		res := d.prop.SetValue(b, coord.Row, coord.Col, v)
		if res == Invalid || res == Cancelled {
			return res
		}
		if res == Changed {
			trace.Append("naked single", []int{CandidateIndexOfCell(d.n, idx, v)}, nil)
			acc = Changed
		}
	}
	return acc
}

// hiddenSingles commits a cell when it is the only candidate holder of a
// value within one of its groups.
func (d *DeductionEngine) hiddenSingles(b *Board, trace *StepTrace) LogicResult {
	acc := None
	for _, g := range d.groups.Groups() {
		for v := 1; v <= d.n; v++ {
			holder := -1
			count := 0
			for _, idx := range g.Cells {
				m := b.GetFlat(idx)
				if m.IsSet() {
					continue
				}
				if m.Has(v) {
					count++
					holder = idx
				}
			}
			if count == 1 {
				coord := CoordOf(d.n, holder)
				res := d.prop.SetValue(b, coord.Row, coord.Col, v)
				if res == Invalid || res == Cancelled {
					return res
				}
				if res == Changed {
					trace.Append("hidden single in "+g.Kind.String(), []int{CandidateIndexOfCell(d.n, holder, v)}, nil)
					acc = Changed
				}
			}
		}
	}
	return acc
}

// lockedCandidates implements pointing/claiming: if a value's candidates
// in group A all lie within group B, remove that value from the rest of
// group B (spec §4.4 "Locked candidates").
func (d *DeductionEngine) lockedCandidates(b *Board, trace *StepTrace) LogicResult {
	acc := None
	groups := d.groups.Groups()
	for _, a := range groups {
		for v := 1; v <= d.n; v++ {
			var cellsWithV []int
			for _, idx := range a.Cells {
				m := b.GetFlat(idx)
				if !m.IsSet() && m.Has(v) {
					cellsWithV = append(cellsWithV, idx)
				}
			}
			if len(cellsWithV) == 0 {
				continue
			}
			for _, bGroup := range groups {
				if bGroup == a {
					continue
				}
				if !allMembersOf(cellsWithV, bGroup) {
					continue
				}
				var eliminated []int
				localAcc := None
				for _, idx := range bGroup.Cells {
					if containsInt(cellsWithV, idx) {
						continue
					}
					coord := CoordOf(d.n, idx)
					res := b.ClearMask(coord.Row, coord.Col, bitFor(v))
					if res == Invalid {
						return Invalid
					}
					if res == Changed {
						localAcc = Changed
						eliminated = append(eliminated, CandidateIndexOfCell(d.n, idx, v))
					}
				}
				if localAcc == Changed {
					source := make([]int, len(cellsWithV))
					for i, idx := range cellsWithV {
						source[i] = CandidateIndexOfCell(d.n, idx, v)
					}
					trace.Append("locked candidates: "+a.Kind.String()+" -> "+bGroup.Kind.String(), source, eliminated)
					acc = Changed
				}
			}
		}
	}
	return acc
}

func allMembersOf(cells []int, g *Group) bool {
	set := make(map[int]bool, len(g.Cells))
	for _, idx := range g.Cells {
		set[idx] = true
	}
	for _, c := range cells {
		if !set[c] {
			return false
		}
	}
	return true
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// tuples finds naked and hidden tuples up to maxTuple degree within every
// group, eliminating candidates they justify (spec §4.4 "Naked/hidden
// tuples up to some configurable degree").
func (d *DeductionEngine) tuples(b *Board, trace *StepTrace) LogicResult {
	acc := None
	for _, g := range d.groups.Groups() {
		var unset []int
		for _, idx := range g.Cells {
			if !b.GetFlat(idx).IsSet() {
				unset = append(unset, idx)
			}
		}
		for degree := 2; degree <= d.maxTuple && degree < len(unset); degree++ {
			res := d.findNakedTuple(b, g, unset, degree, trace)
			if res == Invalid {
				return Invalid
			}
			acc = combine(acc, res)
			res = d.findHiddenTuple(b, g, unset, degree, trace)
			if res == Invalid {
				return Invalid
			}
			acc = combine(acc, res)
		}
	}
	return acc
}

// findNakedTuple looks for `degree` cells in group g whose union of
// candidates has exactly `degree` values, and strips those values from
// every other cell in the group.
func (d *DeductionEngine) findNakedTuple(b *Board, g *Group, unset []int, degree int, trace *StepTrace) LogicResult {
	acc := None
	combos := combinations(unset, degree)
	for _, combo := range combos {
		var union Mask
		for _, idx := range combo {
			union = union.Or(b.GetFlat(idx).Candidates())
		}
		if union.Count() != degree {
			continue
		}
		var eliminated []int
		for _, idx := range g.Cells {
			if containsInt(combo, idx) {
				continue
			}
			coord := CoordOf(d.n, idx)
			before := b.GetFlat(idx).Candidates()
			res := b.ClearMask(coord.Row, coord.Col, union)
			if res == Invalid {
				return Invalid
			}
			if res == Changed {
				acc = Changed
				before.And(union).Values(func(v int) { eliminated = append(eliminated, CandidateIndexOfCell(d.n, idx, v)) })
			}
		}
		if len(eliminated) > 0 {
			var source []int
			for _, idx := range combo {
				b.GetFlat(idx).Candidates().Values(func(v int) { source = append(source, CandidateIndexOfCell(d.n, idx, v)) })
			}
			trace.Append("naked tuple", source, eliminated)
		}
	}
	return acc
}

// findHiddenTuple looks for `degree` values, each still a candidate of some
// unset cell in g, whose candidate cells within g are confined to exactly
// `degree` cells, and strips every other value from those cells.
func (d *DeductionEngine) findHiddenTuple(b *Board, g *Group, unset []int, degree int, trace *StepTrace) LogicResult {
	acc := None
	values := make([]int, 0, d.n)
	for v := 1; v <= d.n; v++ {
		values = append(values, v)
	}
	combos := combinations(values, degree)
	for _, combo := range combos {
		valMask := MaskOfValues(combo...)
		var cells []int
		var covered Mask
		for _, idx := range unset {
			if hit := b.GetFlat(idx).Candidates() & valMask; hit != 0 {
				cells = append(cells, idx)
				covered |= hit
			}
		}
		if len(cells) != degree || covered != valMask {
			continue
		}
		var eliminated []int
		for _, idx := range cells {
			coord := CoordOf(d.n, idx)
			before := b.GetFlat(idx).Candidates()
			res := b.KeepMask(coord.Row, coord.Col, valMask)
			if res == Invalid {
				return Invalid
			}
			if res == Changed {
				acc = Changed
				before.Without(valMask).Values(func(v int) { eliminated = append(eliminated, CandidateIndexOfCell(d.n, idx, v)) })
			}
		}
		if len(eliminated) > 0 {
			var source []int
			for _, idx := range cells {
				b.GetFlat(idx).Candidates().Values(func(v int) { source = append(source, CandidateIndexOfCell(d.n, idx, v)) })
			}
			trace.Append("hidden tuple", source, eliminated)
		}
	}
	return acc
}

// combinations returns every degree-sized subset of xs, in input order.
func combinations(xs []int, degree int) [][]int {
	var out [][]int
	n := len(xs)
	if degree > n {
		return out
	}
	idxs := make([]int, degree)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		combo := make([]int, degree)
		for i, ix := range idxs {
			combo[i] = xs[ix]
		}
		out = append(out, combo)

		i := degree - 1
		for i >= 0 && idxs[i] == n-degree+i {
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
