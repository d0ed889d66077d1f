// Package constraints is a representative set of variant-Sudoku rules
// built on top of pkg/sudoku's Constraint interface: killer cages,
// thermometers, arrows, non-consecutive pairs, renban lines, and German
// whisper lines. None of these are part of the kernel itself; they exist
// to exercise every hook the Constraint interface exposes (distinctness
// groups, link-graph declarations, split-to-primitives decomposition,
// bound-consistency pruning) against a concrete, recognizable rule set.
//
// Each rule file's init() registers a ConstraintFactory under a string name
// via sudoku.RegisterConstraintFactory ("killer-cage", "thermometer",
// "arrow", "nonconsecutive", "renban", "whisper"; the LessThan and DifferBy
// primitives have none), so a caller building a puzzle through
// Solver.AddConstraint only needs this package imported for its init()
// side effects.
package constraints
