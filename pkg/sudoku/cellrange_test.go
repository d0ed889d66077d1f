package sudoku

import "testing"

func TestParseCellRangeSingleCell(t *testing.T) {
	got, err := ParseCellRange("r1c1", 9)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := []Coord{{Row: 0, Col: 0}}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseCellRangeColumnRange(t *testing.T) {
	got, err := ParseCellRange("r1c2-4", 9)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := []Coord{{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestParseCellRangeCartesianProduct(t *testing.T) {
	got, err := ParseCellRange("r1,3c2,4", 9)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	want := []Coord{{0, 1}, {0, 3}, {2, 1}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseCellRangeDirectionWalk(t *testing.T) {
	got, err := ParseCellRange("r1c1d2683", 9)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	// r1c1 -> down(2) -> right(6) -> up(8) -> down-right(3), each step
	// walking from wherever the previous step landed.
	if got[0] != (Coord{0, 0}) {
		t.Fatalf("base cell wrong: %v", got[0])
	}
	if got[1] != (Coord{1, 0}) {
		t.Fatalf("down step wrong: %v", got[1])
	}
	if got[2] != (Coord{1, 1}) {
		t.Fatalf("right step wrong: %v", got[2])
	}
	if got[3] != (Coord{0, 1}) {
		t.Fatalf("up step wrong: %v", got[3])
	}
}

func TestParseCellRangeMalformed(t *testing.T) {
	cases := []string{"", "r", "r1", "r0c1", "r10c1", "r1c1-", "r1c1,"}
	for _, s := range cases {
		if _, err := ParseCellRange(s, 9); err != ErrParseCellRange {
			t.Fatalf("ParseCellRange(%q) err = %v, want ErrParseCellRange", s, err)
		}
	}
}
