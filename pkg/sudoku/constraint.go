package sudoku

// Constraint is the fixed capability set every variant rule implements
// (spec §4.2). Implementations may no-op any hook whose behavior doesn't
// apply to them; BaseConstraint supplies no-op defaults so a concrete
// constraint only has to override what it actually does.
type Constraint interface {
	// InitCandidates removes candidates that are impossible at
	// initialization. Called repeatedly until every constraint returns
	// None.
	InitCandidates(b *Board) LogicResult

	// Enforce is invoked after (r,c) has just been committed to v, after
	// row/column/region distinctness has already been propagated. It
	// must cascade any direct eliminations the constraint implies.
	// Returning false rejects the assignment (equivalent to Invalid).
	Enforce(b *Board, r, c, v int) bool

	// EnforcedByLinksAlone reports whether this constraint's entire
	// contribution is expressed through declared weak/strong links, so
	// the propagator may skip calling Enforce for it entirely.
	EnforcedByLinksAlone() bool

	// StepLogic makes at most one non-trivial logical deduction: it may
	// batch a set of related eliminations into a single step, but must
	// return Changed the moment at least one cell mask narrows. trace
	// may be nil (step descriptions should not be allocated in that
	// case). The kernel's fixed-point loop (fixedPointDeductionsOnly)
	// passes bruteForcing=false on every call, during search as well.
	StepLogic(b *Board, trace *StepTrace, bruteForcing bool) LogicResult

	// InitLinks declares weak/strong/clone links into the link graph.
	// initializing is true exactly once, during the finalize fixed
	// point; later opportunistic calls pass false (spec §9 Open
	// Question i).
	InitLinks(b *Board, g *LinkGraph, trace *StepTrace, initializing bool) LogicResult

	// SeenCells returns the cells that may not share a digit with cell
	// (beyond row/column/region), or nil if none.
	SeenCells(cell int) []int

	// SeenCellsByValueMask restricts SeenCells to cells whose relevance
	// is limited to digits in m (e.g., a thermometer only forbids a
	// repeat of specific digits between non-adjacent cells). Returning
	// the same result as SeenCells(cell) for every mask is always a
	// sound (if imprecise) default.
	SeenCellsByValueMask(cell int, m Mask) []int

	// Group returns the set of cells this constraint renders pairwise
	// distinct, or nil.
	Group() []int

	// CellsMustContain reports cells at least one of which must hold v,
	// or nil if the constraint makes no such claim.
	CellsMustContain(b *Board, v int) []int

	// SplitToPrimitives decomposes this constraint into smaller,
	// equivalent constraints (e.g. a thermometer of length k splits into
	// k-1 pairwise constraints), used by the initializer for redundancy
	// elimination. Returns nil if the constraint is already primitive.
	SplitToPrimitives() []Constraint

	// SpecificName is a human-readable identifier used in step
	// descriptions and subsumption hashing.
	SpecificName() string

	// Cells returns every board cell this constraint touches, used by
	// the propagator to decide which constraints to Enforce after a
	// commit, and by the initializer for subsumption hashing.
	Cells() []int
}

// BaseConstraint supplies no-op implementations of every Constraint hook.
// Concrete constraints embed it and override only what they need, exactly
// as the spec intends ("a constraint may no-op any of them").
type BaseConstraint struct{}

func (BaseConstraint) InitCandidates(*Board) LogicResult { return None }
func (BaseConstraint) Enforce(*Board, int, int, int) bool { return true }
func (BaseConstraint) EnforcedByLinksAlone() bool          { return false }
func (BaseConstraint) StepLogic(*Board, *StepTrace, bool) LogicResult {
	return None
}
func (BaseConstraint) InitLinks(*Board, *LinkGraph, *StepTrace, bool) LogicResult {
	return None
}
func (BaseConstraint) SeenCells(int) []int                    { return nil }
func (BaseConstraint) SeenCellsByValueMask(cell int, _ Mask) []int {
	return nil
}
func (BaseConstraint) Group() []int                     { return nil }
func (BaseConstraint) CellsMustContain(*Board, int) []int { return nil }
func (BaseConstraint) SplitToPrimitives() []Constraint  { return nil }
func (BaseConstraint) SpecificName() string             { return "constraint" }
func (BaseConstraint) Cells() []int                     { return nil }
