package sudoku

// LogicResult is the tri-plus-valued outcome of every board mutator (spec
// §4.1, §6 "Logical result taxonomy").
type LogicResult int

const (
	// None means the mutation changed nothing (value already excluded,
	// or cell already committed).
	None LogicResult = iota
	// Changed means at least one candidate was removed.
	Changed
	// Invalid means the mutation would make some cell's candidate set
	// empty: the board is unsatisfiable down this path.
	Invalid
	// PuzzleComplete is reserved for the top-level search/solve entry
	// points; it is never returned by a board mutator directly.
	PuzzleComplete
	// Cancelled means an externally requested cancellation was observed.
	Cancelled
)

func (r LogicResult) String() string {
	switch r {
	case None:
		return "None"
	case Changed:
		return "Changed"
	case Invalid:
		return "Invalid"
	case PuzzleComplete:
		return "PuzzleComplete"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// combine folds a secondary result into an accumulator, preserving the
// precedence Invalid > Cancelled > Changed > None. Used throughout the
// propagator and deduction fixed-point loops to merge per-cell/per-
// constraint outcomes without short-circuiting prematurely.
func combine(acc, next LogicResult) LogicResult {
	rank := func(r LogicResult) int {
		switch r {
		case Invalid:
			return 3
		case Cancelled:
			return 2
		case Changed:
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
