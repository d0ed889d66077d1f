package sudoku

import (
	"fmt"
	"sync/atomic"
)

// ConstraintFactory builds a Constraint from its declared cells and a
// string-keyed option bag parsed from whatever representation the caller
// used (spec §6 "add-constraint(name, options)"). Cell-range style options
// are typically decoded with ParseCellRange before being handed to the
// factory.
type ConstraintFactory func(n int, opts map[string]string) (Constraint, error)

var constraintFactories = make(map[string]ConstraintFactory)

// RegisterConstraintFactory makes a named constraint kind available to
// Solver.AddConstraint. Variant-rule packages call this from an init()
// function; see pkg/constraints.
func RegisterConstraintFactory(name string, f ConstraintFactory) {
	constraintFactories[name] = f
}

// Solver is the external facade over the kernel (spec §6): a single N x N
// puzzle instance progressing through add-given/add-constraint calls,
// Finalize, and finally one of the solve/count queries. Mirrors the
// teacher's FD solver's build-then-label lifecycle, narrowed to this
// kernel's two-phase (construct, then query) contract.
type Solver struct {
	n         int
	board     *Board
	groups    *GroupRegistry
	registry  *ConstraintRegistry
	links     *LinkGraph
	cfg       *SolverConfig
	finalized bool
	cancelled atomic.Bool
}

// NewSolver returns an unfinalized solver for an n x n board with the
// given region partition (spec §6 "region membership supplied as a list of
// cell lists, each of size exactly N"). cfg may be nil, in which case
// DefaultSolverConfig is used.
func NewSolver(n int, regions [][]int, cfg *SolverConfig) (*Solver, error) {
	if n <= 0 || n > MaxN {
		return nil, ErrInvalidShape
	}
	groups, err := NewGroupRegistry(n, regions)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultSolverConfig()
	}
	if cfg.Trace {
		enableDebugTrace()
	}
	return &Solver{
		n:        n,
		board:    NewBoard(n),
		groups:   groups,
		registry: NewConstraintRegistry(),
		links:    NewLinkGraph(n),
		cfg:      cfg,
	}, nil
}

// AddGiven fixes (r,c) to v before Finalize (spec §6 "add-given(r,c,v)").
// It narrows the cell's mask to the singleton v but deliberately leaves
// the committed bit off and runs no cascade: every given is committed
// through the full propagator protocol uniformly, during Finalize's
// initialization pipeline, so row/column/region/constraint distinctness
// is enforced against it exactly as for any other commit.
func (s *Solver) AddGiven(r, c, v int) error {
	if s.finalized {
		return ErrAlreadyFinalized
	}
	if r < 0 || r >= s.n || c < 0 || c >= s.n {
		return ErrInvalidCoordinate
	}
	if v < 1 || v > s.n {
		return ErrInvalidValue
	}
	if res := s.board.KeepMask(r, c, MaskOfValues(v)); res == Invalid {
		return fmt.Errorf("sudoku: given r%dc%d=%d conflicts with an earlier given at the same cell: %w", r, c, v, ErrUnsatisfiableAtConstruction)
	}
	return nil
}

// AddConstraint instantiates and registers a named constraint kind before
// Finalize (spec §6 "add-constraint(name, options)"). name must have been
// registered via RegisterConstraintFactory.
func (s *Solver) AddConstraint(name string, opts map[string]string) error {
	if s.finalized {
		return ErrAlreadyFinalized
	}
	factory, ok := constraintFactories[name]
	if !ok {
		return fmt.Errorf("sudoku: unknown constraint kind %q", name)
	}
	c, err := factory(s.n, opts)
	if err != nil {
		return err
	}
	s.registry.Add(c)
	return nil
}

// Finalize runs the initialization pipeline to a fixed point: expanding
// split-to-primitives constraints, narrowing candidates, declaring links,
// detecting subsumption, and driving kernel deductions to quiescence
// (spec §2 component 8, §6 "finalize()"). After Finalize, AddGiven and
// AddConstraint are no longer permitted and the solve/count queries become
// available.
func (s *Solver) Finalize() error {
	if s.finalized {
		return ErrAlreadyFinalized
	}
	trace := NewStepTrace()
	res := initializationPipeline(s.board, s.groups, s.registry, s.links, trace, s.cfg)
	s.finalized = true
	if res == Invalid {
		return ErrUnsatisfiableAtConstruction
	}
	return nil
}

func (s *Solver) requireFinalized() error {
	if !s.finalized {
		return ErrNotFinalized
	}
	return nil
}

func (s *Solver) newSearch() *Search {
	return NewSearch(s.n, s.groups, s.registry, s.links, s.cfg, s.cancelled.Load)
}

// SolveAny returns any one solution board, or ErrUnsatisfiableAtConstruction
// if none exists (spec §6 "solve-any()").
func (s *Solver) SolveAny() (*Board, error) {
	if err := s.requireFinalized(); err != nil {
		return nil, err
	}
	solution, res := s.newSearch().SolveAny(s.board.Clone())
	switch res {
	case Cancelled:
		return nil, ErrSolveCancelled
	case Invalid:
		return nil, ErrUnsatisfiableAtConstruction
	default:
		return solution, nil
	}
}

// SolveUnique returns the solution and reports whether it is the only one
// (spec §6 "solve-unique()").
func (s *Solver) SolveUnique() (solution *Board, unique bool, err error) {
	if err := s.requireFinalized(); err != nil {
		return nil, false, err
	}
	solution, unique, res := s.newSearch().SolveUnique(s.board.Clone())
	switch res {
	case Cancelled:
		return nil, false, ErrSolveCancelled
	case Invalid:
		return nil, false, ErrUnsatisfiableAtConstruction
	default:
		return solution, unique, nil
	}
}

// CountSolutions counts distinct solutions up to limit (spec §6
// "count-solutions(limit)").
func (s *Solver) CountSolutions(limit int) (int, error) {
	if err := s.requireFinalized(); err != nil {
		return 0, err
	}
	count, res := s.newSearch().CountSolutions(s.board.Clone(), limit)
	if res == Cancelled {
		return count, ErrSolveCancelled
	}
	return count, nil
}

// LogicalSolve drives only the constraint/deduction fixed point, never
// branching, and returns the recorded trace plus whether it completed the
// puzzle (spec §6 "logical-solve(trace)"). The solver's own board is left
// as the fixed point reaches it, so a caller who wants "how far can we get
// without guessing" can inspect Board() afterward.
func (s *Solver) LogicalSolve() (*StepTrace, bool, error) {
	if err := s.requireFinalized(); err != nil {
		return nil, false, err
	}
	trace := NewStepTrace()
	res := s.newSearch().LogicalSolve(s.board, trace)
	switch res {
	case Cancelled:
		return trace, false, ErrSolveCancelled
	case Invalid:
		return trace, false, ErrUnsatisfiableAtConstruction
	case PuzzleComplete:
		return trace, true, nil
	default:
		return trace, false, nil
	}
}

// Cancel requests that any in-flight solve/count query stop at its next
// checkpoint (spec §6 "cancel()"). Safe to call from another goroutine.
func (s *Solver) Cancel() {
	s.cancelled.Store(true)
}

// Board returns the solver's own board, reflecting whatever the most
// recent finalize/logical-solve pass narrowed it to. Mutating the returned
// board directly bypasses the propagator and is the caller's
// responsibility.
func (s *Solver) Board() *Board { return s.board }

// N returns the board dimension.
func (s *Solver) N() int { return s.n }

// Clone returns an independent solver sharing this one's (logically
// immutable after finalize) group registry, constraint registry, and link
// graph, but with its own deep-copied board (spec §5 "Multiple queries may
// run in parallel only on independent Solver clones", §9 "Cloning").
// Clone requires the solver to already be finalized.
func (s *Solver) Clone() (*Solver, error) {
	if err := s.requireFinalized(); err != nil {
		return nil, err
	}
	clone := &Solver{
		n:         s.n,
		board:     s.board.Clone(),
		groups:    s.groups,
		registry:  s.registry,
		links:     s.links,
		cfg:       s.cfg,
		finalized: true,
	}
	return clone, nil
}
