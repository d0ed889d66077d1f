package constraints

import "github.com/gitrdm/sudokernel/pkg/sudoku"

// Renban is a line whose cells hold a set of consecutive digits, each
// exactly once, in any order. Unlike Cage, the target digit set isn't
// declared up front; it's "some run of len(cells) consecutive values",
// so pruning tries every run start in turn.
type Renban struct {
	sudoku.BaseConstraint
	n     int
	cells []int
}

// NewRenban requires cells to hold some run of len(cells) consecutive
// digits, each used exactly once.
func NewRenban(n int, cells []int) (*Renban, error) {
	if len(cells) == 0 || len(cells) > n {
		return nil, sudoku.ErrInvalidShape
	}
	return &Renban{n: n, cells: cells}, nil
}

func (r *Renban) Cells() []int        { return r.cells }
func (r *Renban) Group() []int        { return r.cells }
func (r *Renban) SpecificName() string { return "renban" }

func (r *Renban) InitCandidates(b *sudoku.Board) sudoku.LogicResult {
	return r.prune(b)
}

func (r *Renban) StepLogic(b *sudoku.Board, _ *sudoku.StepTrace, _ bool) sudoku.LogicResult {
	return r.prune(b)
}

func (r *Renban) prune(b *sudoku.Board) sudoku.LogicResult {
	k := len(r.cells)
	masks := cellMasks(b, r.cells)
	for _, m := range masks {
		if m.IsEmpty() {
			return sudoku.Invalid
		}
	}

	allowed := make([]sudoku.Mask, k)
	any := false
	for start := 1; start+k-1 <= r.n; start++ {
		vals := make([]int, k)
		for i := range vals {
			vals[i] = start + i
		}
		per := feasibleDigitsPerCell(masks, vals)
		feasible := false
		for _, m := range per {
			if !m.IsEmpty() {
				feasible = true
				break
			}
		}
		if !feasible {
			continue
		}
		any = true
		for i, m := range per {
			allowed[i] |= m
		}
	}
	if !any {
		return sudoku.Invalid
	}

	acc := sudoku.None
	for i, idx := range r.cells {
		res := keepMaskAt(b, idx, allowed[i])
		if res == sudoku.Invalid {
			return sudoku.Invalid
		}
		acc = combine(acc, res)
	}
	return acc
}

func init() {
	sudoku.RegisterConstraintFactory("renban", func(n int, opts map[string]string) (sudoku.Constraint, error) {
		cells, err := parseCells(n, opts)
		if err != nil {
			return nil, err
		}
		return NewRenban(n, cells)
	})
}
