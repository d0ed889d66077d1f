package constraints

import "github.com/gitrdm/sudokernel/pkg/sudoku"

// NonConsecutivePair forbids an orthogonally adjacent pair of cells from
// holding consecutive digits. Unlike Cage or Thermometer, it needs no
// candidate pruning of its own: it declares every (digit, digit+-1) weak
// link between the pair once, and the propagator's existing weak-link
// cascade (spec §4.3 step 5) does the rest whenever either cell commits.
type NonConsecutivePair struct {
	sudoku.BaseConstraint
	n     int
	a, b  int
	links *sudoku.LinkGraph
}

// NewNonConsecutivePair forbids cells a and b from both holding digits
// that differ by exactly one.
func NewNonConsecutivePair(n, a, b int) *NonConsecutivePair {
	return &NonConsecutivePair{n: n, a: a, b: b}
}

func (p *NonConsecutivePair) Cells() []int        { return []int{p.a, p.b} }
func (p *NonConsecutivePair) SpecificName() string { return "non-consecutive-pair" }

// InitLinks declares the weak links once; initializing gates nothing here
// since AddWeak is idempotent and safe to repeat.
func (p *NonConsecutivePair) InitLinks(b *sudoku.Board, g *sudoku.LinkGraph, _ *sudoku.StepTrace, _ bool) sudoku.LogicResult {
	p.links = g
	for v := 1; v <= p.n; v++ {
		ca := sudoku.CandidateIndexOfCell(p.n, p.a, v)
		if v+1 <= p.n {
			g.AddWeak(ca, sudoku.CandidateIndexOfCell(p.n, p.b, v+1))
		}
		if v-1 >= 1 {
			g.AddWeak(ca, sudoku.CandidateIndexOfCell(p.n, p.b, v-1))
		}
	}
	return sudoku.None
}

func (p *NonConsecutivePair) EnforcedByLinksAlone() bool { return true }

// SeenCells reports every cell one weak link away from a candidate of cell
// in the shared link graph; when no other constraint links cell's
// candidates, that is just the other cell of the pair.
func (p *NonConsecutivePair) SeenCells(cell int) []int {
	return p.SeenCellsByValueMask(cell, sudoku.FullMask(p.n))
}

// SeenCellsByValueMask answers via the weak-link closure declared in
// InitLinks rather than a hardcoded "the other cell": restricting m to a
// subset of digits correctly narrows which of the pair's consecutive
// values are actually in play.
func (p *NonConsecutivePair) SeenCellsByValueMask(cell int, m sudoku.Mask) []int {
	if cell != p.a && cell != p.b {
		return nil
	}
	return weakSeenCells(p.n, p.links, cell, m)
}

func init() {
	sudoku.RegisterConstraintFactory("nonconsecutive", func(n int, opts map[string]string) (sudoku.Constraint, error) {
		cells, err := parseCells(n, opts)
		if err != nil {
			return nil, err
		}
		if len(cells) != 2 {
			return nil, sudoku.ErrInvalidShape
		}
		return NewNonConsecutivePair(n, cells[0], cells[1]), nil
	})
}
