package sudoku

import "testing"

func TestCellIndexRoundTrip(t *testing.T) {
	n := 9
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			idx := CellIndex(n, r, c)
			co := CoordOf(n, idx)
			if co.Row != r || co.Col != c {
				t.Fatalf("CoordOf(CellIndex(%d,%d)) = %+v", r, c, co)
			}
		}
	}
}

func TestCandidateIndexRoundTrip(t *testing.T) {
	n := 9
	for idx := 0; idx < n*n; idx++ {
		for v := 1; v <= n; v++ {
			cand := CandidateIndexOfCell(n, idx, v)
			r, c, val := DecodeCandidate(n, cand)
			wantCoord := CoordOf(n, idx)
			if r != wantCoord.Row || c != wantCoord.Col || val != v {
				t.Fatalf("DecodeCandidate round trip failed for idx=%d v=%d: got r=%d c=%d v=%d", idx, v, r, c, val)
			}
		}
	}
}
