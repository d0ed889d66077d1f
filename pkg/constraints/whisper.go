package constraints

import "github.com/gitrdm/sudokernel/pkg/sudoku"

// DifferBy is the primitive "|a - b| >= minDiff" constraint between two
// cells, declared entirely as weak links (every pair of values closer
// than minDiff is mutually exclusive) so the propagator's existing
// weak-link cascade enforces it without any dedicated Enforce/StepLogic.
type DifferBy struct {
	sudoku.BaseConstraint
	n       int
	a, b    int
	minDiff int
	links   *sudoku.LinkGraph
}

// NewDifferBy requires the eventual digits at a and b to differ by at
// least minDiff.
func NewDifferBy(n, a, b, minDiff int) *DifferBy {
	return &DifferBy{n: n, a: a, b: b, minDiff: minDiff}
}

func (d *DifferBy) Cells() []int        { return []int{d.a, d.b} }
func (d *DifferBy) SpecificName() string { return "differ-by" }
func (d *DifferBy) EnforcedByLinksAlone() bool { return true }

func (d *DifferBy) InitLinks(b *sudoku.Board, g *sudoku.LinkGraph, _ *sudoku.StepTrace, _ bool) sudoku.LogicResult {
	d.links = g
	for v := 1; v <= d.n; v++ {
		ca := sudoku.CandidateIndexOfCell(d.n, d.a, v)
		for w := 1; w <= d.n; w++ {
			diff := v - w
			if diff < 0 {
				diff = -diff
			}
			if diff < d.minDiff {
				g.AddWeak(ca, sudoku.CandidateIndexOfCell(d.n, d.b, w))
			}
		}
	}
	return sudoku.None
}

// SeenCells reports every cell one weak link away from a candidate of cell
// in the shared link graph; when no other constraint links cell's
// candidates, that is just the other cell of the pair.
func (d *DifferBy) SeenCells(cell int) []int {
	return d.SeenCellsByValueMask(cell, sudoku.FullMask(d.n))
}

// SeenCellsByValueMask answers via the weak-link closure declared in
// InitLinks, so restricting m to a subset of digits correctly narrows
// which values the minimum-difference rule actually rules out.
func (d *DifferBy) SeenCellsByValueMask(cell int, m sudoku.Mask) []int {
	if cell != d.a && cell != d.b {
		return nil
	}
	return weakSeenCells(d.n, d.links, cell, m)
}

// Whisper is a German-whisper-style line: every orthogonally adjacent pair
// along the path must differ by at least half the board's value range.
type Whisper struct {
	sudoku.BaseConstraint
	n       int
	cells   []int
	minDiff int
}

// NewWhisper builds a whisper line over cells with the conventional
// threshold ceil(n/2).
func NewWhisper(n int, cells []int) (*Whisper, error) {
	if len(cells) < 2 {
		return nil, sudoku.ErrInvalidShape
	}
	minDiff := (n + 1) / 2
	return &Whisper{n: n, cells: cells, minDiff: minDiff}, nil
}

func (w *Whisper) Cells() []int        { return w.cells }
func (w *Whisper) SpecificName() string { return "whisper" }

func (w *Whisper) SplitToPrimitives() []sudoku.Constraint {
	prims := make([]sudoku.Constraint, 0, len(w.cells)-1)
	for i := 0; i+1 < len(w.cells); i++ {
		prims = append(prims, NewDifferBy(w.n, w.cells[i], w.cells[i+1], w.minDiff))
	}
	return prims
}

func init() {
	sudoku.RegisterConstraintFactory("whisper", func(n int, opts map[string]string) (sudoku.Constraint, error) {
		cells, err := parseCells(n, opts)
		if err != nil {
			return nil, err
		}
		return NewWhisper(n, cells)
	})
}
