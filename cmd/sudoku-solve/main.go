// Command sudoku-solve solves a classic 9x9 puzzle using the sudoku
// kernel, optionally adding one or more variant constraints.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/gitrdm/sudokernel/pkg/constraints"
	"github.com/gitrdm/sudokernel/pkg/sudoku"
)

// classicPuzzle is the standard newspaper puzzle; 0 marks an empty cell.
var classicPuzzle = [81]int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

func classicRegions(n, box int) [][]int {
	regions := make([][]int, 0, n)
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			region := make([]int, 0, n)
			for r := br; r < br+box; r++ {
				for c := bc; c < bc+box; c++ {
					region = append(region, sudoku.CellIndex(n, r, c))
				}
			}
			regions = append(regions, region)
		}
	}
	return regions
}

// constraintFlag is one parsed -constraint "name:opt=val,opt=val" flag;
// multiFlag collects the repeated raw values.
type constraintFlag struct {
	name string
	opts map[string]string
}

func parseConstraintFlag(s string) (constraintFlag, error) {
	name, rest, _ := strings.Cut(s, ":")
	opts := make(map[string]string)
	if rest != "" {
		for _, kv := range strings.Split(rest, ",") {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return constraintFlag{}, fmt.Errorf("malformed constraint option %q", kv)
			}
			opts[k] = v
		}
	}
	return constraintFlag{name: name, opts: opts}, nil
}

func main() {
	timeout := flag.Duration("timeout", 10*time.Second, "solve timeout")
	unique := flag.Bool("unique", false, "verify the solution is unique instead of finding the first")
	var rawConstraints multiFlag
	flag.Var(&rawConstraints, "constraint", `variant constraint, e.g. -constraint "thermometer:cells=r1c1d6663"`)
	flag.Parse()

	solver, err := sudoku.NewSolver(9, classicRegions(9, 3), sudoku.DefaultSolverConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, "new solver:", err)
		os.Exit(1)
	}

	for i, v := range classicPuzzle {
		if v == 0 {
			continue
		}
		co := sudoku.CoordOf(9, i)
		if err := solver.AddGiven(co.Row, co.Col, v); err != nil {
			fmt.Fprintln(os.Stderr, "add given:", err)
			os.Exit(1)
		}
	}

	for _, raw := range rawConstraints {
		cf, err := parseConstraintFlag(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, "parse constraint:", err)
			os.Exit(1)
		}
		if err := solver.AddConstraint(cf.name, cf.opts); err != nil {
			fmt.Fprintln(os.Stderr, "add constraint:", err)
			os.Exit(1)
		}
	}

	if err := solver.Finalize(); err != nil {
		fmt.Fprintln(os.Stderr, "finalize:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	go func() {
		<-ctx.Done()
		solver.Cancel()
	}()

	start := time.Now()
	if *unique {
		solution, isUnique, err := solver.SolveUnique()
		dur := time.Since(start)
		if err != nil {
			fmt.Fprintln(os.Stderr, "solve:", err)
			os.Exit(1)
		}
		fmt.Printf("solved in %s, unique=%v\n", dur, isUnique)
		printBoard(solution)
		return
	}

	solution, err := solver.SolveAny()
	dur := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(1)
	}
	fmt.Printf("solved in %s\n", dur)
	printBoard(solution)
}

func printBoard(b *sudoku.Board) {
	n := b.N()
	for r := 0; r < n; r++ {
		row := make([]string, n)
		for c := 0; c < n; c++ {
			if b.IsSet(r, c) {
				row[c] = strconv.Itoa(b.Value(r, c))
			} else {
				row[c] = "."
			}
		}
		fmt.Println(strings.Join(row, " "))
	}
}

// multiFlag collects repeated occurrences of a flag.Value flag.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ";") }
func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}
