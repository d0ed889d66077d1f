package sudoku

import "testing"

func TestAICEliminatesViaStrongWeakStrongChain(t *testing.T) {
	n := 9
	b := NewBoard(n)
	links := NewLinkGraph(n)

	// Build a minimal chain: cand0 =strong= cand1 -weak- cand2 =strong= cand3,
	// where cand0 and cand3 both weak-link to target. If either cand0 or
	// cand3 is true, target must be false.
	cand0 := CandidateIndexOfCell(n, CellIndex(n, 0, 0), 1)
	cand1 := CandidateIndexOfCell(n, CellIndex(n, 1, 0), 1)
	cand2 := CandidateIndexOfCell(n, CellIndex(n, 1, 0), 2)
	cand3 := CandidateIndexOfCell(n, CellIndex(n, 2, 0), 2)
	target := CandidateIndexOfCell(n, CellIndex(n, 5, 5), 1)

	links.AddStrong(cand0, cand1)
	links.AddWeak(cand1, cand2)
	links.AddStrong(cand2, cand3)
	links.AddWeak(cand0, target)
	links.AddWeak(cand3, target)

	aic := NewAICEngine(n, links, 8)
	trace := NewStepTrace()
	res := aic.Step(b, trace)
	if res != Changed {
		t.Fatalf("Step = %v, want Changed", res)
	}
	if b.Candidates(5, 5).Has(1) {
		t.Fatal("target candidate should have been eliminated by the AIC")
	}
	if trace.Len() == 0 {
		t.Fatal("a successful elimination should record a trace step")
	}
}

func TestAICStepNoneWhenNoChain(t *testing.T) {
	n := 9
	b := NewBoard(n)
	links := NewLinkGraph(n)
	aic := NewAICEngine(n, links, 8)
	if res := aic.Step(b, NewStepTrace()); res != None {
		t.Fatalf("Step with an empty link graph = %v, want None", res)
	}
}
