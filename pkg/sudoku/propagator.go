package sudoku

// Propagator implements the single-cell commit primitive (spec §4.3). It
// is recursive but single-threaded; recursion depth is bounded by N^2
// (every recursive call commits a previously-uncommitted cell). A
// contradiction at any depth invalidates the entire enclosing mutation.
type Propagator struct {
	n         int
	groups    *GroupRegistry
	registry  *ConstraintRegistry
	links     *LinkGraph
	trace     *StepTrace
	cancelled func() bool
}

// NewPropagator wires the propagator to the board-shape-independent,
// logically-immutable-after-finalization structures it reads on every
// commit: the group registry, the constraint registry, and the link
// graph. trace may be nil (spec §9: brute-force mode allocates no
// descriptions).
func NewPropagator(n int, groups *GroupRegistry, registry *ConstraintRegistry, links *LinkGraph, trace *StepTrace, cancelled func() bool) *Propagator {
	if cancelled == nil {
		cancelled = func() bool { return false }
	}
	return &Propagator{n: n, groups: groups, registry: registry, links: links, trace: trace, cancelled: cancelled}
}

// SetValue is the atomic commit: collapse (r,c) to v and cascade every
// forced consequence (spec §4.3 steps 1-6).
func (p *Propagator) SetValue(b *Board, r, c, v int) LogicResult {
	if p.cancelled() {
		return Cancelled
	}

	cur := b.Get(r, c)
	if cur.IsSet() {
		if cur.SingleValue() == v {
			return None
		}
		return Invalid
	}
	// Step 1: verify v is a candidate.
	if !cur.Has(v) {
		return Invalid
	}

	// Step 2: narrow to the singleton and set the committed bit.
	idx := CellIndex(p.n, r, c)
	b.cells[idx] = bitFor(v).WithSet()
	debugTracef("commit r%dc%d=%d", r, c, v)

	// Step 3: distinctness cascade across row/column/region/constraint
	// groups, recursively committing any cell reduced to a singleton.
	if res := p.cascadeDistinctness(b, idx, v); res == Invalid {
		return Invalid
	} else if res == Cancelled {
		return Cancelled
	}

	// Step 4: constraint enforce, in registration order.
	for _, cons := range p.registry.Touching(idx) {
		if p.registry.IsSubsumed(cons) || cons.EnforcedByLinksAlone() {
			continue
		}
		if !cons.Enforce(b, r, c, v) {
			return Invalid
		}
	}

	// Step 5: weak-link cascade, plus clone value-copy.
	cand := CandidateIndexOfCell(p.n, idx, v)
	for _, target := range p.links.WeakNeighbors(cand) {
		tr, tc, tv := DecodeCandidate(p.n, target)
		if res := b.ClearMask(tr, tc, bitFor(tv)); res == Invalid {
			return Invalid
		} else if res == Changed {
			if b.Get(tr, tc).IsSingleton() && !b.Get(tr, tc).IsSet() {
				if res2 := p.SetValue(b, tr, tc, b.Candidates(tr, tc).SingleValue()); res2 == Invalid || res2 == Cancelled {
					return res2
				}
			}
		}
	}
	if partner, ok := p.links.CloneOf(cand); ok {
		pr, pc, pv := DecodeCandidate(p.n, partner)
		if res := p.SetValue(b, pr, pc, pv); res == Invalid || res == Cancelled {
			return res
		}
	}

	// Step 6: cells-must-contain sweep.
	if res := p.sweepMustContain(b); res == Invalid || res == Cancelled {
		return res
	}

	return Changed
}

// cascadeDistinctness removes v from every cell sharing a group with idx,
// recursively committing any cell reduced to a singleton (spec §4.3
// step 3).
func (p *Propagator) cascadeDistinctness(b *Board, idx, v int) LogicResult {
	m := bitFor(v)
	for _, g := range p.groups.GroupsContaining(idx) {
		for _, other := range g.Cells {
			if other == idx {
				continue
			}
			res := b.clearMaskAt(other, m)
			if res == Invalid {
				return Invalid
			}
			if res == Changed {
				mask := b.cells[other]
				if mask.IsSingleton() && !mask.IsSet() {
					coord := CoordOf(p.n, other)
					if res2 := p.SetValue(b, coord.Row, coord.Col, mask.SingleValue()); res2 == Invalid || res2 == Cancelled {
						return res2
					}
				}
			}
		}
	}
	return None
}

// sweepMustContain asks every active constraint's CellsMustContain for
// each value; if exactly one reported cell can still hold that value, it
// commits it (spec §4.3 step 6).
func (p *Propagator) sweepMustContain(b *Board) LogicResult {
	for _, cons := range p.registry.Active() {
		for v := 1; v <= p.n; v++ {
			cells := cons.CellsMustContain(b, v)
			if len(cells) == 0 {
				continue
			}
			holder := -1
			count := 0
			for _, cellIdx := range cells {
				mask := b.GetFlat(cellIdx)
				if mask.IsSet() {
					if mask.SingleValue() == v {
						holder = -2 // already satisfied
					}
					continue
				}
				if mask.Has(v) {
					count++
					holder = cellIdx
				}
			}
			if holder >= 0 && count == 1 {
				coord := CoordOf(p.n, holder)
				if res := p.SetValue(b, coord.Row, coord.Col, v); res == Invalid || res == Cancelled {
					return res
				}
			}
		}
	}
	return None
}
