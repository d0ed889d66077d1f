package sudoku

// VariableHeuristic selects which undetermined cell the search explores
// next. Mirrors the dom/deg family of orderings.
type VariableHeuristic int

const (
	// HeuristicFewestCandidates picks the cell with the fewest remaining
	// candidates (>1), ties broken by row-major scan order. This is the
	// spec's default (§4.5).
	HeuristicFewestCandidates VariableHeuristic = iota
	// HeuristicDomDegree picks the lowest candidate-count / (1 + degree)
	// ratio, where degree is the number of distinctness groups containing
	// the cell.
	HeuristicDomDegree
)

// ValueHeuristic orders the candidates tried for the chosen cell.
type ValueHeuristic int

const (
	// ValueAscending tries candidates in ascending digit order (spec
	// §5: "search explores candidates in ascending value order").
	ValueAscending ValueHeuristic = iota
	// ValueDescending tries candidates in descending digit order.
	ValueDescending
)

// SolverConfig holds kernel configuration: search heuristics and the depth
// bounds used by the bounded kernel deductions (§4.4). Analogous to the
// teacher's FD SolverConfig, narrowed to what this kernel needs.
type SolverConfig struct {
	// VariableHeuristic selects the next branching cell.
	VariableHeuristic VariableHeuristic

	// ValueHeuristic orders candidate trials within a cell.
	ValueHeuristic ValueHeuristic

	// MaxTupleDegree bounds naked/hidden tuple search (§4.4); degree 2
	// finds pairs, 3 finds triples, and so on. 0 disables tuple search.
	MaxTupleDegree int

	// AICMaxDepth bounds the AIC engine's chain traversal (§4.4, §9).
	AICMaxDepth int

	// Trace enables the ambient debug trace (see debuglog.go). This is
	// distinct from the public StepTrace, which records user-facing
	// deduction steps regardless of this flag.
	Trace bool
}

// DefaultSolverConfig returns the kernel's deterministic defaults: fewest-
// candidates cell selection, ascending value order, tuples up to degree 3,
// and an AIC depth bound generous enough for typical hard puzzles.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{
		VariableHeuristic: HeuristicFewestCandidates,
		ValueHeuristic:    ValueAscending,
		MaxTupleDegree:    3,
		AICMaxDepth:       8,
		Trace:             false,
	}
}
