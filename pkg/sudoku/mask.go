// Package sudoku implements the constraint-satisfaction kernel shared by
// every variant-Sudoku rule: the candidate board, the propagator, the
// elementary kernel deductions, the candidate link graph, and the
// depth-first search fallback. Individual variant rules (killer cages,
// thermometers, arrows, ...) are pluggable Constraint implementations that
// live outside this package; see pkg/constraints for a representative set.
package sudoku

import "math/bits"

// Mask is a bit-set of candidate digits 1..N packed into a single machine
// word, plus one reserved high bit marking a cell as committed ("set").
// Bit (v-1) represents digit v. A single uint32 suffices for every grid
// size this kernel supports (N <= 30); see spec §9 "Masks".
type Mask uint32

// setBit is the reserved flag marking a cell as committed to its sole
// remaining candidate. It never participates in digit arithmetic.
const setBit Mask = 1 << 31

// MaxN is the largest board dimension a single Mask word can address while
// keeping setBit clear of the digit bits.
const MaxN = 30

// bitFor returns the single-bit mask for digit v (1-indexed).
func bitFor(v int) Mask {
	return 1 << uint(v-1)
}

// FullMask returns a mask with all digits 1..n present and no set bit.
func FullMask(n int) Mask {
	if n <= 0 {
		return 0
	}
	return Mask(1<<uint(n)) - 1
}

// EmptyMask is the mask with no candidates and no set bit.
const EmptyMask Mask = 0

// Candidates strips the set bit, returning only the digit bits.
func (m Mask) Candidates() Mask {
	return m &^ setBit
}

// IsSet reports whether the set bit is on.
func (m Mask) IsSet() bool {
	return m&setBit != 0
}

// WithSet returns m with the set bit turned on.
func (m Mask) WithSet() Mask {
	return m | setBit
}

// Has reports whether digit v is a candidate (ignoring the set bit).
func (m Mask) Has(v int) bool {
	return m.Candidates()&bitFor(v) != 0
}

// Count returns the number of candidate digits, excluding the set bit.
func (m Mask) Count() int {
	return bits.OnesCount32(uint32(m.Candidates()))
}

// IsEmpty reports whether no candidate digits remain.
func (m Mask) IsEmpty() bool {
	return m.Candidates() == 0
}

// IsSingleton reports whether exactly one candidate digit remains.
func (m Mask) IsSingleton() bool {
	return m.Count() == 1
}

// MinValue returns the smallest candidate digit, or 0 if none remain.
func (m Mask) MinValue() int {
	c := m.Candidates()
	if c == 0 {
		return 0
	}
	return bits.TrailingZeros32(uint32(c)) + 1
}

// MaxValue returns the largest candidate digit, or 0 if none remain.
func (m Mask) MaxValue() int {
	c := m.Candidates()
	if c == 0 {
		return 0
	}
	return 32 - bits.LeadingZeros32(uint32(c))
}

// SingleValue returns the sole candidate digit. Behavior is undefined if
// IsSingleton is false.
func (m Mask) SingleValue() int {
	return m.MinValue()
}

// Without returns m with the bits in other removed (the set bit, if any,
// is preserved from m, never from other).
func (m Mask) Without(other Mask) Mask {
	return (m &^ other.Candidates()) | (m & setBit)
}

// And returns the intersection of the candidate bits of m and other,
// preserving m's set bit.
func (m Mask) And(other Mask) Mask {
	return (m.Candidates() & other.Candidates()) | (m & setBit)
}

// Or returns the union of the candidate bits of m and other, preserving
// m's set bit.
func (m Mask) Or(other Mask) Mask {
	return (m.Candidates() | other.Candidates()) | (m & setBit)
}

// Values calls f for every candidate digit in ascending order.
func (m Mask) Values(f func(v int)) {
	c := uint32(m.Candidates())
	for c != 0 {
		lowest := c & -c
		v := bits.TrailingZeros32(c) + 1
		f(v)
		c &^= lowest
	}
}

// ValueSlice returns the candidate digits as a sorted slice. Intended for
// tests and step-trace rendering, not hot propagation paths.
func (m Mask) ValueSlice() []int {
	vals := make([]int, 0, m.Count())
	m.Values(func(v int) { vals = append(vals, v) })
	return vals
}

// MaskOfValues builds a mask containing exactly the given digits.
func MaskOfValues(vs ...int) Mask {
	var m Mask
	for _, v := range vs {
		m |= bitFor(v)
	}
	return m
}

// StrictlyLower returns a mask of all digits < v.
func StrictlyLower(v int) Mask {
	if v <= 1 {
		return 0
	}
	return Mask(1<<uint(v-1)) - 1
}

// AndHigher returns a mask of all digits >= v, within [1,n].
func AndHigher(v, n int) Mask {
	return FullMask(n).Without(StrictlyLower(v))
}

// BetweenInclusive returns a mask of all digits in [lo,hi].
func BetweenInclusive(lo, hi int) Mask {
	if hi < lo {
		return 0
	}
	return StrictlyLower(hi+1).Without(StrictlyLower(lo))
}

// BetweenExclusive returns a mask of all digits strictly between lo and hi.
func BetweenExclusive(lo, hi int) Mask {
	if hi-lo <= 1 {
		return 0
	}
	return BetweenInclusive(lo+1, hi-1)
}
