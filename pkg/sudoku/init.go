package sudoku

// initializationPipeline runs every constraint's InitCandidates and
// InitLinks to a fixed point (spec §2 component 8, GLOSSARY
// "Initialization pipeline"), then runs same-kind subsumption detection
// (ConstraintRegistry.DetectSubsumption).
func initializationPipeline(b *Board, groups *GroupRegistry, registry *ConstraintRegistry, links *LinkGraph, trace *StepTrace, cfg *SolverConfig) LogicResult {
	// Constraints that decompose (spec §4.2 "split-to-primitives") are
	// expanded into the registry before the fixed point runs; the
	// original stays registered alongside its primitives.
	for _, c := range append([]Constraint(nil), registry.All()...) {
		for _, prim := range c.SplitToPrimitives() {
			registry.Add(prim)
		}
	}

	for {
		changedThisRound := false
		for _, c := range registry.Active() {
			res := c.InitCandidates(b)
			if res == Invalid {
				return Invalid
			}
			if res == Changed {
				changedThisRound = true
			}
		}
		if !changedThisRound {
			break
		}
	}

	for _, c := range registry.Active() {
		if g := c.Group(); len(g) > 0 {
			_ = groups.AddGroup(&Group{Kind: GroupOther, Cells: g, Name: c.SpecificName()})
		}
	}

	for _, c := range registry.Active() {
		res := c.InitLinks(b, links, trace, true)
		if res == Invalid {
			return Invalid
		}
	}

	registry.DetectSubsumption()

	// Givens (and any cell a constraint's InitCandidates has already
	// narrowed to a singleton) are committed through the propagator here,
	// so the distinctness cascade, constraint Enforce, weak-link cascade,
	// and cells-must-contain sweep (spec §4.3 steps 3-6) run for them
	// exactly as they would for a singleton discovered during search.
	// AddGiven deliberately leaves its cell as a non-set singleton mask
	// (solver.go) rather than committing it directly, precisely so this
	// step is the one place that cascade happens.
	prop := NewPropagator(b.N(), groups, registry, links, trace, nil)
	if res := commitSingletons(b, prop); res == Invalid {
		return Invalid
	}

	return fixedPointDeductionsOnly(b, groups, registry, links, trace, cfg)
}

// commitSingletons walks the board and runs every already-narrowed-to-one-
// candidate, not-yet-set cell through Propagator.SetValue. Committing one
// cell can cascade and narrow or commit others, including ones this loop
// hasn't reached yet or has already passed (SetValue is idempotent on a
// cell already set to the same value, and Invalid on one set to a
// different value), so a single left-to-right pass is sufficient.
func commitSingletons(b *Board, prop *Propagator) LogicResult {
	n := b.N()
	for idx := 0; idx < n*n; idx++ {
		mask := b.GetFlat(idx)
		if mask.IsSet() || !mask.IsSingleton() {
			continue
		}
		coord := CoordOf(n, idx)
		if res := prop.SetValue(b, coord.Row, coord.Col, mask.SingleValue()); res == Invalid {
			return Invalid
		}
	}
	return None
}

// fixedPointDeductionsOnly drives kernel deductions and constraint
// StepLogic to quiescence without invoking search, used both at the end of
// initialization and before every search branch (spec §2 data flow:
// "initialization -> constraint fixed-point -> kernel deduction
// fixed-point -> search").
func fixedPointDeductionsOnly(b *Board, groups *GroupRegistry, registry *ConstraintRegistry, links *LinkGraph, trace *StepTrace, cfg *SolverConfig) LogicResult {
	if cfg == nil {
		cfg = DefaultSolverConfig()
	}
	prop := NewPropagator(b.N(), groups, registry, links, trace, nil)
	dedup := NewDeductionEngine(b.N(), groups, prop, cfg.MaxTupleDegree)
	aic := NewAICEngine(b.N(), links, cfg.AICMaxDepth)

	for {
		changed := false
		for _, c := range registry.Active() {
			res := c.StepLogic(b, trace, false)
			if res == Invalid {
				return Invalid
			}
			if res == Changed {
				changed = true
			}
		}
		res := dedup.Step(b, trace)
		if res == Invalid {
			return Invalid
		}
		if res == Changed {
			changed = true
		}
		res = aic.Step(b, trace)
		if res == Invalid {
			return Invalid
		}
		if res == Changed {
			changed = true
		}
		if !changed {
			break
		}
	}
	return None
}
