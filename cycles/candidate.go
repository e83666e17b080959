package cycles

import (
	"sort"

	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// CandidateManager turns a pool of candidate cycles (all produced by the
// same growth round, hence all the same length) into a disjoint subset to
// enact simultaneously, and emits the concrete swaps for the selection.
type CandidateManager struct {
	opts Options
}

// NewCandidateManager returns a CandidateManager tuned by opts.
func NewCandidateManager(opts Options) *CandidateManager {
	return &CandidateManager{opts: opts}
}

// canonicalRotation rotates vertices so its minimum element is first,
// giving every cyclic rotation of the same cycle the same representation.
func canonicalRotation(vertices []swap.Vertex) []swap.Vertex {
	minIdx := 0
	for i, v := range vertices {
		if v < vertices[minIdx] {
			minIdx = i
		}
	}
	if minIdx == 0 {
		return vertices
	}
	out := make([]swap.Vertex, len(vertices))
	copy(out, vertices[minIdx:])
	copy(out[len(vertices)-minIdx:], vertices[:minIdx])

	return out
}

type canonicalKey struct {
	decrease int
	first    swap.Vertex
	length   int
}

func dedupeRotations(cycles []Cycle) []Cycle {
	seen := make(map[canonicalKey][][]swap.Vertex)
	out := make([]Cycle, 0, len(cycles))
	for _, c := range cycles {
		rot := canonicalRotation(c.Vertices)
		key := canonicalKey{decrease: c.Decrease, first: rot[0], length: len(rot)}
		dup := false
		for _, existing := range seen[key] {
			if equalVertices(existing, rot) {
				dup = true

				break
			}
		}
		if dup {
			continue
		}
		seen[key] = append(seen[key], rot)
		out = append(out, c)
	}

	return out
}

func equalVertices(a, b []swap.Vertex) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// filterToMaxDecrease discards every cycle whose decrease is below the
// maximum decrease present in cycles.
func filterToMaxDecrease(cycles []Cycle) []Cycle {
	if len(cycles) == 0 {
		return cycles
	}
	best := cycles[0].Decrease
	for _, c := range cycles[1:] {
		if c.Decrease > best {
			best = c.Decrease
		}
	}
	out := cycles[:0]
	for _, c := range cycles {
		if c.Decrease == best {
			out = append(out, c)
		}
	}

	return out
}

// Select runs the full selection pipeline over cycles (assumed all of the
// same NumMoves, as produced by one growth round) and returns the disjoint
// subset chosen to enact, in selection order.
func (cm *CandidateManager) Select(cycles []Cycle) []Cycle {
	deduped := dedupeRotations(cycles)
	if len(deduped) == 0 {
		return nil
	}

	singleSwap := deduped[0].NumMoves() == 1
	if (singleSwap && !cm.opts.ReturnAllGoodSingleSwaps) ||
		(!singleSwap && !cm.opts.ReturnLowerPowerSolutionsForMultiswapCandidates) {
		deduped = filterToMaxDecrease(deduped)
	}

	touch := make([]int, len(deduped))
	vsets := make([]map[swap.Vertex]bool, len(deduped))
	for i, c := range deduped {
		vs := make(map[swap.Vertex]bool, len(c.Vertices))
		for _, v := range c.Vertices {
			vs[v] = true
		}
		vsets[i] = vs
	}
	for i := range deduped {
		for j := range deduped {
			if i == j {
				continue
			}
			if sharesVertex(vsets[i], vsets[j]) {
				touch[i]++
			}
		}
	}

	order := make([]int, len(deduped))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if touch[order[a]] != touch[order[b]] {
			return touch[order[a]] < touch[order[b]]
		}

		return order[a] < order[b]
	})

	var selected []Cycle
	used := make(map[swap.Vertex]bool)
	for _, idx := range order {
		if overlaps(used, vsets[idx]) {
			continue
		}
		selected = append(selected, deduped[idx])
		for v := range vsets[idx] {
			used[v] = true
		}
	}

	return selected
}

func sharesVertex(a, b map[swap.Vertex]bool) bool {
	small, big := a, b
	if len(big) < len(small) {
		small, big = big, small
	}
	for v := range small {
		if big[v] {
			return true
		}
	}

	return false
}

func overlaps(used, candidate map[swap.Vertex]bool) bool {
	for v := range candidate {
		if used[v] {
			return true
		}
	}

	return false
}

// Emit appends the swaps realising cycle (vn,vn-1),(vn-1,vn-2),...,(v1,v0)
// to list and applies each to m in lockstep, returning the emitted swaps in
// order (callers use this to register them with RiverFlow).
func Emit(list *swaplist.List, m swap.VertexMapping, cycle Cycle) []swap.Swap {
	vs := cycle.Vertices
	emitted := make([]swap.Swap, 0, len(vs)-1)
	for i := len(vs) - 1; i > 0; i-- {
		s := swap.MustSwap(vs[i], vs[i-1])
		swap.ApplyOne(m, s)
		list.PushBack(s)
		emitted = append(emitted, s)
	}

	return emitted
}
