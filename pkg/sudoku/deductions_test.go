package sudoku

import "testing"

func TestHiddenSingleCommits(t *testing.T) {
	n, box := 9, 3
	b, p := newClassicPropagator(n, box)
	// Remove digit 7 from every cell of row 0 except (0,4), making it a
	// hidden single there even though (0,4) still has several candidates.
	for c := 0; c < n; c++ {
		if c == 4 {
			continue
		}
		b.ClearMask(0, c, MaskOfValues(7))
	}
	dedup := NewDeductionEngine(n, p.groups, p, 3)
	trace := NewStepTrace()
	if res := dedup.hiddenSingles(b, trace); res != Changed {
		t.Fatalf("hiddenSingles = %v, want Changed", res)
	}
	if !b.IsSet(0, 4) || b.Value(0, 4) != 7 {
		t.Fatal("(0,4) should have committed to the hidden single 7")
	}
}

func TestLockedCandidatesPointing(t *testing.T) {
	n, box := 9, 3
	b, p := newClassicPropagator(n, box)
	// Confine digit 3's candidates within region 0 to row 0 (columns 0-2),
	// which should strip 3 from the rest of row 0 outside the region.
	for r := 1; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b.ClearMask(r, c, MaskOfValues(3))
		}
	}
	dedup := NewDeductionEngine(n, p.groups, p, 3)
	trace := NewStepTrace()
	if res := dedup.lockedCandidates(b, trace); res != Changed {
		t.Fatalf("lockedCandidates = %v, want Changed", res)
	}
	for c := 3; c < n; c++ {
		if b.Candidates(0, c).Has(3) {
			t.Fatalf("digit 3 should have been removed from (0,%d)", c)
		}
	}
}

func TestNakedPairEliminates(t *testing.T) {
	n, box := 9, 3
	b, p := newClassicPropagator(n, box)
	b.KeepMask(0, 0, MaskOfValues(1, 2))
	b.KeepMask(0, 1, MaskOfValues(1, 2))
	dedup := NewDeductionEngine(n, p.groups, p, 3)
	trace := NewStepTrace()
	if res := dedup.tuples(b, trace); res != Changed {
		t.Fatalf("tuples = %v, want Changed", res)
	}
	if b.Candidates(0, 2).Has(1) || b.Candidates(0, 2).Has(2) {
		t.Fatal("naked pair {1,2} should be removed from the rest of the row")
	}
}
