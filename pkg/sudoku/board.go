package sudoku

// Board is a dense N x N array of candidate masks, addressable by (row,col)
// or flat index, clonable in O(N^2) (spec §3 "Board"). It is the sole
// mutable state of a Solver instance; a Solver owns exactly one Board.
type Board struct {
	n     int
	cells []Mask
}

// NewBoard returns a Board of size n x n with every cell holding the full
// candidate set 1..n.
func NewBoard(n int) *Board {
	cells := make([]Mask, n*n)
	full := FullMask(n)
	for i := range cells {
		cells[i] = full
	}
	return &Board{n: n, cells: cells}
}

// N returns the board's dimension.
func (b *Board) N() int { return b.n }

// Clone returns an independent deep copy of the board. O(N^2).
func (b *Board) Clone() *Board {
	cells := make([]Mask, len(b.cells))
	copy(cells, b.cells)
	return &Board{n: b.n, cells: cells}
}

func (b *Board) inBounds(r, c int) bool {
	return r >= 0 && r < b.n && c >= 0 && c < b.n
}

// Get returns the cell's full mask, including the set bit. Pure.
func (b *Board) Get(r, c int) Mask {
	return b.cells[CellIndex(b.n, r, c)]
}

// GetFlat is Get addressed by flat index.
func (b *Board) GetFlat(idx int) Mask {
	return b.cells[idx]
}

// Candidates returns the cell's mask with the set bit stripped. Pure.
func (b *Board) Candidates(r, c int) Mask {
	return b.Get(r, c).Candidates()
}

// IsSet reports whether the cell at (r,c) is committed.
func (b *Board) IsSet(r, c int) bool {
	return b.Get(r, c).IsSet()
}

// Value returns the cell's sole digit. Defined only when IsSet(r,c).
func (b *Board) Value(r, c int) int {
	return b.Get(r, c).SingleValue()
}

// ClearMask removes the bits in m from the cell at (r,c). If the cell is
// already set, it is left unchanged (spec §4.1). Returns None/Changed/
// Invalid; never mutates on Invalid.
func (b *Board) ClearMask(r, c int, m Mask) LogicResult {
	idx := CellIndex(b.n, r, c)
	return b.clearMaskAt(idx, m)
}

func (b *Board) clearMaskAt(idx int, m Mask) LogicResult {
	cur := b.cells[idx]
	if cur.IsSet() {
		return None
	}
	next := cur.Without(m)
	if next.Candidates() == cur.Candidates() {
		return None
	}
	if next.IsEmpty() {
		return Invalid
	}
	b.cells[idx] = next
	return Changed
}

// KeepMask restricts the cell's candidates to m (equivalent to ClearMask
// with the complement of m).
func (b *Board) KeepMask(r, c int, m Mask) LogicResult {
	idx := CellIndex(b.n, r, c)
	cur := b.cells[idx]
	complement := cur.Candidates().Without(m)
	return b.clearMaskAt(idx, complement)
}

// SetMask replaces the cell's candidates with m intersected with the
// current mask, reporting Invalid if the result is empty. Does not set the
// committed bit even if the result is a singleton; callers wanting commit
// semantics use SetValue.
func (b *Board) SetMask(r, c int, m Mask) LogicResult {
	idx := CellIndex(b.n, r, c)
	cur := b.cells[idx]
	if cur.IsSet() {
		return None
	}
	next := cur.Candidates().And(m.Candidates())
	if next == cur.Candidates() {
		return None
	}
	if next == 0 {
		return Invalid
	}
	b.cells[idx] = next
	return Changed
}

// setValueRaw collapses the cell to the singleton v and turns on the set
// bit, without running any cascade. Returns Invalid if v is not currently
// a candidate. This is the primitive the Propagator builds its commit
// protocol (spec §4.3) on top of; callers wanting the full commit protocol
// should use Propagator.SetValue instead.
func (b *Board) setValueRaw(r, c, v int) LogicResult {
	idx := CellIndex(b.n, r, c)
	cur := b.cells[idx]
	if cur.IsSet() {
		if cur.SingleValue() == v {
			return None
		}
		return Invalid
	}
	if !cur.Has(v) {
		return Invalid
	}
	b.cells[idx] = bitFor(v).WithSet()
	return Changed
}
