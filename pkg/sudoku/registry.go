package sudoku

import (
	"fmt"
	"sort"
)

// ConstraintRegistry is the authoritative, ranked list of live constraints,
// indexed for fast lookup by kind and by cell (spec §2 component 5, §9
// "Back-references among constraints ... resolve through the constraint
// registry"). Constraints never hold pointers to one another; any
// constraint that needs to ask "does some other constraint of kind K cover
// this cell pair?" goes through ByKind / Touching instead.
type ConstraintRegistry struct {
	ordered  []Constraint         // registration order (spec §5 determinism)
	byKind   map[string][]Constraint
	byCell   map[int][]Constraint
	subsumed map[Constraint]bool
}

// NewConstraintRegistry returns an empty registry.
func NewConstraintRegistry() *ConstraintRegistry {
	return &ConstraintRegistry{
		byKind:   make(map[string][]Constraint),
		byCell:   make(map[int][]Constraint),
		subsumed: make(map[Constraint]bool),
	}
}

// Add registers c, preserving insertion order.
func (cr *ConstraintRegistry) Add(c Constraint) {
	cr.ordered = append(cr.ordered, c)
	cr.byKind[c.SpecificName()] = append(cr.byKind[c.SpecificName()], c)
	for _, cell := range c.Cells() {
		cr.byCell[cell] = append(cr.byCell[cell], c)
	}
}

// All returns every registered constraint in registration order, including
// those later marked subsumed (callers that care must check IsSubsumed).
func (cr *ConstraintRegistry) All() []Constraint {
	return cr.ordered
}

// Active returns every registered constraint that has not been marked
// subsumed, in registration order. This is the list the propagator and
// step-logic fixed point iterate.
func (cr *ConstraintRegistry) Active() []Constraint {
	out := make([]Constraint, 0, len(cr.ordered))
	for _, c := range cr.ordered {
		if !cr.subsumed[c] {
			out = append(out, c)
		}
	}
	return out
}

// ByKind returns every constraint registered under the given
// SpecificName(), in registration order.
func (cr *ConstraintRegistry) ByKind(name string) []Constraint {
	return cr.byKind[name]
}

// Touching returns every constraint that declares the given cell among its
// Cells(), in registration order.
func (cr *ConstraintRegistry) Touching(cellIdx int) []Constraint {
	return cr.byCell[cellIdx]
}

// MarkSubsumed excludes c from Active() without removing it from the
// registry (spec §9 Open Question ii): subsumed constraints are kept
// around as reference but no longer enforced or stepped.
func (cr *ConstraintRegistry) MarkSubsumed(c Constraint) {
	cr.subsumed[c] = true
}

// IsSubsumed reports whether c has been marked subsumed.
func (cr *ConstraintRegistry) IsSubsumed(c Constraint) bool {
	return cr.subsumed[c]
}

// SubsumptionHash computes a stable, order-independent key for a
// constraint's declared cells and kind (spec §9 Open Question ii: "a
// stable hash string ... over sorted cell indices, never over map
// iteration order"). Only the kind and the cells enter the key, not a
// constraint's other parameters. DetectSubsumption does not consult it.
func SubsumptionHash(c Constraint) string {
	cells := append([]int(nil), c.Cells()...)
	sort.Ints(cells)
	return fmt.Sprintf("%s:%v", c.SpecificName(), cells)
}

// DetectSubsumption marks a constraint subsumed when its cell set is a
// strict subset of the cell set of another active constraint with the same
// SpecificName(). Constraints with equal cell sets are all kept, and a
// constraint is never compared with its SplitToPrimitives output, whose
// SpecificName() differs. This runs once at finalization (spec §9 Open
// Question ii).
func (cr *ConstraintRegistry) DetectSubsumption() {
	for kind, group := range cr.byKind {
		_ = kind
		for i, a := range group {
			if cr.subsumed[a] {
				continue
			}
			aCells := cellSet(a.Cells())
			for j, b := range group {
				if i == j || cr.subsumed[b] {
					continue
				}
				bCells := cellSet(b.Cells())
				if len(aCells) < len(bCells) && isSubsetOf(aCells, bCells) {
					cr.MarkSubsumed(a)
					break
				}
			}
		}
	}
}

func cellSet(cells []int) map[int]bool {
	m := make(map[int]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}
	return m
}

func isSubsetOf(small, big map[int]bool) bool {
	for c := range small {
		if !big[c] {
			return false
		}
	}
	return true
}
