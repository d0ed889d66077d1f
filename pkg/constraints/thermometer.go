package constraints

import "github.com/gitrdm/sudokernel/pkg/sudoku"

// LessThan is the primitive "a < b" order constraint between two cells. A
// Thermometer decomposes into a chain of these via SplitToPrimitives; it
// is also usable standalone.
type LessThan struct {
	sudoku.BaseConstraint
	n    int
	a, b int
}

// NewLessThan requires the digit eventually placed at a to be strictly
// less than the digit placed at b.
func NewLessThan(n, a, b int) *LessThan {
	return &LessThan{n: n, a: a, b: b}
}

func (lt *LessThan) Cells() []int        { return []int{lt.a, lt.b} }
func (lt *LessThan) SpecificName() string { return "less-than" }

func (lt *LessThan) InitCandidates(b *sudoku.Board) sudoku.LogicResult {
	return lt.propagate(b)
}

func (lt *LessThan) StepLogic(b *sudoku.Board, _ *sudoku.StepTrace, _ bool) sudoku.LogicResult {
	return lt.propagate(b)
}

// Enforce reacts the instant either endpoint commits, trimming the other
// side immediately rather than waiting for the next StepLogic sweep.
func (lt *LessThan) Enforce(b *sudoku.Board, r, c, v int) bool {
	idx := sudoku.CellIndex(lt.n, r, c)
	switch idx {
	case lt.a:
		return clearMaskAt(b, lt.b, sudoku.StrictlyLower(v+1)) != sudoku.Invalid
	case lt.b:
		return clearMaskAt(b, lt.a, sudoku.AndHigher(v, lt.n)) != sudoku.Invalid
	}
	return true
}

// propagate is bound-consistency forward checking: a's candidates can
// never exceed b's current maximum minus one, and b's can never fall
// below a's current minimum plus one.
func (lt *LessThan) propagate(b *sudoku.Board) sudoku.LogicResult {
	masks := cellMasks(b, []int{lt.a, lt.b})
	aMask, bMask := masks[0], masks[1]
	if aMask.IsEmpty() || bMask.IsEmpty() {
		return sudoku.Invalid
	}

	acc := sudoku.None
	if res := keepMaskAt(b, lt.a, sudoku.StrictlyLower(bMask.MaxValue())); res != sudoku.None {
		if res == sudoku.Invalid {
			return sudoku.Invalid
		}
		acc = combine(acc, res)
	}
	if res := keepMaskAt(b, lt.b, sudoku.AndHigher(aMask.MinValue()+1, lt.n)); res != sudoku.None {
		if res == sudoku.Invalid {
			return sudoku.Invalid
		}
		acc = combine(acc, res)
	}
	return acc
}

// Thermometer requires a strictly increasing sequence of digits walking
// from the bulb (cells[0]) to the tip (cells[len-1]).
type Thermometer struct {
	sudoku.BaseConstraint
	n     int
	cells []int
}

// NewThermometer requires strictly increasing digits along cells, bulb
// first.
func NewThermometer(n int, cells []int) (*Thermometer, error) {
	if len(cells) < 2 {
		return nil, sudoku.ErrInvalidShape
	}
	return &Thermometer{n: n, cells: cells}, nil
}

func (t *Thermometer) Cells() []int        { return t.cells }
func (t *Thermometer) SpecificName() string { return "thermometer" }

// SplitToPrimitives decomposes the path into len(cells)-1 pairwise
// LessThan constraints, which do the actual propagation.
func (t *Thermometer) SplitToPrimitives() []sudoku.Constraint {
	prims := make([]sudoku.Constraint, 0, len(t.cells)-1)
	for i := 0; i+1 < len(t.cells); i++ {
		prims = append(prims, NewLessThan(t.n, t.cells[i], t.cells[i+1]))
	}
	return prims
}

func init() {
	sudoku.RegisterConstraintFactory("thermometer", func(n int, opts map[string]string) (sudoku.Constraint, error) {
		cells, err := parseCells(n, opts)
		if err != nil {
			return nil, err
		}
		return NewThermometer(n, cells)
	})
}
