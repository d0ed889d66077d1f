package sudoku

// AICEngine performs bounded traversal of the link graph to discover
// Alternating Inference Chains: paths of candidates connected by
// alternating strong and weak links, starting and ending with a strong
// link (spec §2 component 4, §4.4, §9 Open Question, GLOSSARY "Link
// graph"). A chain of this shape proves "the first candidate or the last
// candidate is true", which is itself a (possibly new) strong link
// between the endpoints, and which licenses eliminating any candidate
// weakly linked to both endpoints.
type AICEngine struct {
	n        int
	links    *LinkGraph
	maxDepth int
}

// NewAICEngine wires the engine to the board shape, the link graph it
// traverses, and the configured depth bound (spec §4.4 "The depth bound is
// a configuration parameter").
func NewAICEngine(n int, links *LinkGraph, maxDepth int) *AICEngine {
	if maxDepth <= 0 {
		maxDepth = 1
	}
	return &AICEngine{n: n, links: links, maxDepth: maxDepth}
}

// Step performs one bounded sweep over every candidate with at least one
// strong link, searching for AICs that license a new elimination. It
// returns the moment it finds one sweep's worth of eliminations (the
// constraint/deduction contract's "must return Changed the moment at
// least one cell mask narrows").
func (e *AICEngine) Step(b *Board, trace *StepTrace) LogicResult {
	for idx, mask := range b.cells {
		if mask.IsSet() {
			continue
		}
		for v := 1; v <= e.n; v++ {
			if !mask.Has(v) {
				continue
			}
			start := CandidateIndexOfCell(e.n, idx, v)
			if res := e.searchFrom(b, start, trace); res != None {
				return res
			}
		}
	}
	return None
}

// searchFrom explores alternating chains rooted at start, applying the
// first elimination found.
func (e *AICEngine) searchFrom(b *Board, start int, trace *StepTrace) LogicResult {
	visited := map[int]bool{start: true}
	path := []int{start}
	return e.extend(b, path, visited, true, trace)
}

// extend grows path by one hop. wantStrong selects which relation the next
// hop must use (alternating strong/weak). Returns as soon as a usable AIC
// (path length >= 3, last hop strong) yields an elimination.
func (e *AICEngine) extend(b *Board, path []int, visited map[int]bool, wantStrong bool, trace *StepTrace) LogicResult {
	if len(path) > e.maxDepth+1 {
		return None
	}
	current := path[len(path)-1]

	var neighbors []int
	if wantStrong {
		neighbors = e.links.StrongNeighbors(current)
	} else {
		neighbors = e.links.WeakNeighbors(current)
	}

	for _, next := range neighbors {
		if visited[next] {
			continue
		}
		if !e.candidateAlive(b, next) {
			continue
		}
		newPath := append(append([]int(nil), path...), next)

		if wantStrong && len(newPath) >= 3 {
			if res := e.tryEliminate(b, path[0], next, newPath, trace); res == Changed || res == Invalid {
				return res
			}
		}

		visited[next] = true
		if res := e.extend(b, newPath, visited, !wantStrong, trace); res != None {
			return res
		}
		delete(visited, next)
	}
	return None
}

func (e *AICEngine) candidateAlive(b *Board, cand int) bool {
	r, c, v := DecodeCandidate(e.n, cand)
	mask := b.Get(r, c)
	return !mask.IsSet() && mask.Has(v)
}

// tryEliminate checks whether the AIC formed by start..end (start or end
// is true) licenses removing any candidate weakly linked to both
// endpoints, excluding chain members. It also records the discovered
// strong relationship between the endpoints in the link graph, since an
// AIC of this shape is itself a sound (possibly new) strong link (spec §9
// "A link learned in one branch... can legitimately remain visible").
func (e *AICEngine) tryEliminate(b *Board, start, end int, path []int, trace *StepTrace) LogicResult {
	if start == end {
		return None
	}
	e.links.AddStrong(start, end)

	inPath := make(map[int]bool, len(path))
	for _, c := range path {
		inPath[c] = true
	}

	startWeak := setOf(e.links.WeakNeighbors(start))
	acc := None
	var eliminated []int
	for _, cand := range e.links.WeakNeighbors(end) {
		if inPath[cand] || !startWeak[cand] {
			continue
		}
		if !e.candidateAlive(b, cand) {
			continue
		}
		cr, cc, cv := DecodeCandidate(e.n, cand)
		res := b.ClearMask(cr, cc, bitFor(cv))
		if res == Invalid {
			return Invalid
		}
		if res == Changed {
			acc = Changed
			eliminated = append(eliminated, cand)
		}
	}
	if acc == Changed {
		trace.Append("AIC chain", append([]int(nil), path...), eliminated)
	}
	return acc
}

func setOf(xs []int) map[int]bool {
	m := make(map[int]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}
	return m
}
