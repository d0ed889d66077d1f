package constraints

import (
	"fmt"
	"strconv"

	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

// Cage is a killer cage: its cells hold pairwise distinct digits summing
// to a fixed total. Distinctness is declared through Group() and enforced
// by the kernel's own group machinery; Cage itself only prunes candidates
// that cannot participate in any digit combination meeting the sum.
type Cage struct {
	sudoku.BaseConstraint
	n     int
	cells []int
	sum   int
}

// NewCage constructs a cage over cells (flat board indices) requiring them
// to sum to sum.
func NewCage(n int, cells []int, sum int) (*Cage, error) {
	if len(cells) == 0 {
		return nil, sudoku.ErrInvalidShape
	}
	return &Cage{n: n, cells: cells, sum: sum}, nil
}

func (c *Cage) Cells() []int        { return c.cells }
func (c *Cage) Group() []int        { return c.cells }
func (c *Cage) SpecificName() string { return "killer-cage" }

func (c *Cage) InitCandidates(b *sudoku.Board) sudoku.LogicResult {
	return c.prune(b)
}

func (c *Cage) StepLogic(b *sudoku.Board, _ *sudoku.StepTrace, _ bool) sudoku.LogicResult {
	return c.prune(b)
}

// prune enumerates every k-subset of 1..n summing to c.sum (k = cage
// size), keeps the subsets for which the cage's current masks admit a
// distinct assignment, and restricts each cell to the union of digits it
// can take across those feasible subsets.
func (c *Cage) prune(b *sudoku.Board) sudoku.LogicResult {
	k := len(c.cells)
	masks := cellMasks(b, c.cells)
	for _, m := range masks {
		if m.IsEmpty() {
			return sudoku.Invalid
		}
	}

	allowed := make([]sudoku.Mask, k)
	any := false
	for _, subset := range combinations(1, c.n, k) {
		total := 0
		for _, v := range subset {
			total += v
		}
		if total != c.sum {
			continue
		}
		per := feasibleDigitsPerCell(masks, subset)
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
	for i, idx := range c.cells {
		res := keepMaskAt(b, idx, allowed[i])
		if res == sudoku.Invalid {
			return sudoku.Invalid
		}
		acc = combine(acc, res)
	}
	return acc
}

func init() {
	sudoku.RegisterConstraintFactory("killer-cage", func(n int, opts map[string]string) (sudoku.Constraint, error) {
		cells, err := parseCells(n, opts)
		if err != nil {
			return nil, err
		}
		sumStr, ok := opts["sum"]
		if !ok {
			return nil, fmt.Errorf("constraints: killer-cage requires a \"sum\" option")
		}
		sum, err := strconv.Atoi(sumStr)
		if err != nil {
			return nil, fmt.Errorf("constraints: killer-cage sum %q is not an integer", sumStr)
		}
		return NewCage(n, cells, sum)
	})
}
