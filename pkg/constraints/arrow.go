package constraints

import "github.com/gitrdm/sudokernel/pkg/sudoku"

// Arrow requires the bulb cell's digit to equal the sum of the shaft
// cells' digits. Shaft digits may repeat (unlike a cage); propagation is
// classic bound consistency over the sum.
type Arrow struct {
	sudoku.BaseConstraint
	n     int
	bulb  int
	shaft []int
}

// NewArrow builds an arrow with the given bulb and shaft cells (flat board
// indices).
func NewArrow(n, bulb int, shaft []int) (*Arrow, error) {
	if len(shaft) == 0 {
		return nil, sudoku.ErrInvalidShape
	}
	return &Arrow{n: n, bulb: bulb, shaft: shaft}, nil
}

func (a *Arrow) Cells() []int {
	return append([]int{a.bulb}, a.shaft...)
}

func (a *Arrow) SpecificName() string { return "arrow" }

func (a *Arrow) InitCandidates(b *sudoku.Board) sudoku.LogicResult {
	return a.prune(b)
}

func (a *Arrow) StepLogic(b *sudoku.Board, _ *sudoku.StepTrace, _ bool) sudoku.LogicResult {
	return a.prune(b)
}

// prune bounds the bulb by the shaft's achievable sum range, then bounds
// each shaft cell by what the bulb and the other shaft cells' ranges
// leave for it.
func (a *Arrow) prune(b *sudoku.Board) sudoku.LogicResult {
	bulbMask := cellMasks(b, []int{a.bulb})[0]
	shaftMasks := cellMasks(b, a.shaft)
	if bulbMask.IsEmpty() {
		return sudoku.Invalid
	}
	for _, m := range shaftMasks {
		if m.IsEmpty() {
			return sudoku.Invalid
		}
	}

	totalMin, totalMax := 0, 0
	for _, m := range shaftMasks {
		totalMin += m.MinValue()
		totalMax += m.MaxValue()
	}

	acc := sudoku.None
	bulbAllowed := sudoku.BetweenInclusive(max(1, totalMin), min(a.n, totalMax))
	if res := keepMaskAt(b, a.bulb, bulbAllowed); res != sudoku.None {
		if res == sudoku.Invalid {
			return sudoku.Invalid
		}
		acc = combine(acc, res)
	}

	bulbMask = cellMasks(b, []int{a.bulb})[0]
	if bulbMask.IsEmpty() {
		return sudoku.Invalid
	}
	bulbMin, bulbMax := bulbMask.MinValue(), bulbMask.MaxValue()

	for i, idx := range a.shaft {
		othersMin := totalMin - shaftMasks[i].MinValue()
		othersMax := totalMax - shaftMasks[i].MaxValue()
		cellMax := bulbMax - othersMin
		cellMin := bulbMin - othersMax
		res := keepMaskAt(b, idx, sudoku.BetweenInclusive(max(1, cellMin), min(a.n, cellMax)))
		if res == sudoku.Invalid {
			return sudoku.Invalid
		}
		acc = combine(acc, res)
	}
	return acc
}

func init() {
	sudoku.RegisterConstraintFactory("arrow", func(n int, opts map[string]string) (sudoku.Constraint, error) {
		expr, ok := opts["cells"]
		if !ok || expr == "" {
			return nil, sudoku.ErrParseCellRange
		}
		coords, err := sudoku.ParseCellRange(expr, n)
		if err != nil {
			return nil, err
		}
		if len(coords) < 2 {
			return nil, sudoku.ErrInvalidShape
		}
		cells := make([]int, len(coords))
		for i, co := range coords {
			cells[i] = sudoku.CellIndex(n, co.Row, co.Col)
		}
		return NewArrow(n, cells[0], cells[1:])
	})
}
