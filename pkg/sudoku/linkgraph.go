package sudoku

import (
	"strconv"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
)

// LinkGraph holds the two undirected candidate-vs-candidate relations
// (weak and strong) plus clone equivalences over the fixed universe of N^3
// candidate nodes (spec §3 "Link graph", §9 "Link graph growth").
//
// Storage is delegated to lvlath/core.Graph: its mutex-guarded, append-
// friendly adjacency structure is exactly the "logically immutable after
// finalization, appended to (never mutated in place)" contract the spec
// asks for, and its thread safety means a solver clone can legitimately
// share the *LinkGraph pointer with its parent instead of deep-copying it
// (spec §5, §9 "Cloning": "clones deep-copy the board but share the
// (append-only) link graph"). The weak graph additionally backs a
// bounded-depth "weak-link closure" query built on lvlath/bfs, used by
// constraints whose SeenCellsByValueMask is naturally expressed as
// link-graph reachability rather than a direct cell list.
type LinkGraph struct {
	n      int
	weak   *core.Graph
	strong *core.Graph
	clones map[int]int // candidate -> its clone partner (symmetric)
}

// NewLinkGraph returns an empty link graph over an n x n board's N^3
// candidate universe.
func NewLinkGraph(n int) *LinkGraph {
	return &LinkGraph{
		n:      n,
		weak:   core.NewGraph(),
		strong: core.NewGraph(),
		clones: make(map[int]int),
	}
}

func vid(cand int) string {
	return strconv.Itoa(cand)
}

// AddWeak declares "not both true": if a is true then b is false. The
// relation is symmetric and append-only; adding an edge that already
// exists is a no-op error from the backing graph, which this method
// swallows (spec §9: links are global soundness properties, safe to
// re-declare from multiple constraints without double effect).
func (g *LinkGraph) AddWeak(a, b int) {
	if a == b {
		return
	}
	_, _ = g.weak.AddEdge(vid(a), vid(b), 0)
}

// AddStrong declares "at least one true".
func (g *LinkGraph) AddStrong(a, b int) {
	if a == b {
		return
	}
	_, _ = g.strong.AddEdge(vid(a), vid(b), 0)
}

// AddClone declares a <-> b: a is true iff b is true. Implemented as
// mutual strong-and-weak links (spec §3 "Link graph") plus the explicit
// equivalence map the propagator consults for bidirectional value-copy.
func (g *LinkGraph) AddClone(a, b int) {
	g.AddWeak(a, b)
	g.AddStrong(a, b)
	g.clones[a] = b
	g.clones[b] = a
}

// CloneOf returns the candidate cloned with cand, and whether one exists.
func (g *LinkGraph) CloneOf(cand int) (int, bool) {
	partner, ok := g.clones[cand]
	return partner, ok
}

// WeakNeighbors returns every candidate weak-linked to cand.
func (g *LinkGraph) WeakNeighbors(cand int) []int {
	return neighborCandidates(g.weak, cand)
}

// StrongNeighbors returns every candidate strong-linked to cand.
func (g *LinkGraph) StrongNeighbors(cand int) []int {
	return neighborCandidates(g.strong, cand)
}

func neighborCandidates(graph *core.Graph, cand int) []int {
	id := vid(cand)
	if !graph.HasVertex(id) {
		return nil
	}
	ids, err := graph.NeighborIDs(id)
	if err != nil {
		return nil
	}
	out := make([]int, 0, len(ids))
	for _, s := range ids {
		v, err := strconv.Atoi(s)
		if err == nil {
			out = append(out, v)
		}
	}
	return out
}

// IsWeak reports whether (a,b) is a declared weak link.
func (g *LinkGraph) IsWeak(a, b int) bool {
	return g.weak.HasEdge(vid(a), vid(b))
}

// IsStrong reports whether (a,b) is a declared strong link.
func (g *LinkGraph) IsStrong(a, b int) bool {
	return g.strong.HasEdge(vid(a), vid(b))
}

// WeakClosure returns every candidate reachable from cand by following
// weak links up to maxDepth hops, excluding cand itself. A maxDepth of 0
// means unlimited. Used by constraints that define SeenCellsByValueMask in
// terms of weak-link reachability instead of an explicit cell list.
func (g *LinkGraph) WeakClosure(cand int, maxDepth int) []int {
	id := vid(cand)
	if !g.weak.HasVertex(id) {
		return nil
	}
	opts := []bfs.Option{}
	if maxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(maxDepth))
	}
	result, err := bfs.BFS(g.weak, id, opts...)
	if err != nil {
		return nil
	}
	out := make([]int, 0, len(result.Order))
	for _, s := range result.Order {
		if s == id {
			continue
		}
		if v, err := strconv.Atoi(s); err == nil {
			out = append(out, v)
		}
	}
	return out
}
