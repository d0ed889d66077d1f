package sudoku

import (
	"strconv"
	"strings"
)

// ParseCellRange parses the terse cell-range language used throughout
// constraint option strings (spec §4.6): `r<rows>c<cols>` where <rows> and
// <cols> are comma-separated lists of 1-indexed numbers or inclusive
// ranges (`1-3`), optionally followed by a `d<dir-digits>` suffix that
// extends the last cell of the row/column expansion by walking numpad
// compass directions (8=up, 2=down, 4=left, 6=right, 7/9/1/3=diagonals).
//
// The row and column lists are combined as a Cartesian product in
// row-major order, giving rectangular cell blocks from a single compact
// expression (e.g. "r1c2-4" -> r1c2, r1c3, r1c4); irregular, non-
// rectangular shapes (a thermometer's path, an arrow's shaft) are
// expressed by giving a single base cell and a direction-walk suffix
// instead (e.g. "r1c1d2" -> r1c1, r2c1).
//
// Returned coordinates are 0-indexed. Invalid strings return
// ErrParseCellRange (spec §8 boundary cases): empty input, a missing `c`
// section, a 0 or out-of-range row/column for the given board size n, or a
// dangling range/enumeration separator.
func ParseCellRange(s string, n int) ([]Coord, error) {
	if s == "" || s[0] != 'r' {
		return nil, ErrParseCellRange
	}
	rest := s[1:]
	cIdx := strings.IndexByte(rest, 'c')
	if cIdx < 0 {
		return nil, ErrParseCellRange
	}
	rowPart := rest[:cIdx]
	rest = rest[cIdx+1:]

	var dirPart string
	if dIdx := strings.IndexByte(rest, 'd'); dIdx >= 0 {
		dirPart = rest[dIdx+1:]
		rest = rest[:dIdx]
	}
	colPart := rest

	if rowPart == "" || colPart == "" {
		return nil, ErrParseCellRange
	}

	rows, err := parseNumberList(rowPart, n)
	if err != nil {
		return nil, err
	}
	cols, err := parseNumberList(colPart, n)
	if err != nil {
		return nil, err
	}

	var coords []Coord
	for _, r := range rows {
		for _, c := range cols {
			coords = append(coords, Coord{Row: r - 1, Col: c - 1})
		}
	}
	if len(coords) == 0 {
		return nil, ErrParseCellRange
	}

	if dirPart != "" {
		walked, err := walkDirections(coords[len(coords)-1], dirPart, n)
		if err != nil {
			return nil, err
		}
		coords = append(coords, walked...)
	}

	return coords, nil
}

// parseNumberList parses a comma-separated list of numbers or inclusive
// ranges ("1-3"), validating each value against [1,n]. Repetitions are
// preserved, not deduplicated, per spec §4.6 ("repetitions").
func parseNumberList(s string, n int) ([]int, error) {
	parts := strings.Split(s, ",")
	var out []int
	for _, part := range parts {
		if part == "" {
			return nil, ErrParseCellRange
		}
		if dash := strings.IndexByte(part, '-'); dash >= 0 {
			loStr, hiStr := part[:dash], part[dash+1:]
			if loStr == "" || hiStr == "" {
				return nil, ErrParseCellRange
			}
			lo, err := parseBoundedInt(loStr, n)
			if err != nil {
				return nil, err
			}
			hi, err := parseBoundedInt(hiStr, n)
			if err != nil {
				return nil, err
			}
			if hi < lo {
				return nil, ErrParseCellRange
			}
			for v := lo; v <= hi; v++ {
				out = append(out, v)
			}
			continue
		}
		v, err := parseBoundedInt(part, n)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseBoundedInt(s string, n int) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrParseCellRange
	}
	if v < 1 || v > n {
		return 0, ErrParseCellRange
	}
	return v, nil
}

// numpadDeltas maps a numpad compass digit to a (drow, dcol) step.
var numpadDeltas = map[byte][2]int{
	'1': {1, -1},
	'2': {1, 0},
	'3': {1, 1},
	'4': {0, -1},
	'6': {0, 1},
	'7': {-1, -1},
	'8': {-1, 0},
	'9': {-1, 1},
}

// walkDirections extends from last by one cell per digit in dirs, each
// within [0,n) board bounds.
func walkDirections(last Coord, dirs string, n int) ([]Coord, error) {
	var out []Coord
	cur := last
	for i := 0; i < len(dirs); i++ {
		delta, ok := numpadDeltas[dirs[i]]
		if !ok {
			return nil, ErrParseCellRange
		}
		cur = Coord{Row: cur.Row + delta[0], Col: cur.Col + delta[1]}
		if cur.Row < 0 || cur.Row >= n || cur.Col < 0 || cur.Col >= n {
			return nil, ErrParseCellRange
		}
		out = append(out, cur)
	}
	return out, nil
}
