package lookup

import (
	"sort"

	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// Resizer grows or shrinks a mapping toward a target vertex count (normally
// MaxTableVertices) so it fits the precomputed table's domain.
type Resizer struct {
	neigh  oracle.Neighbours
	target int
}

// NewResizer returns a Resizer that grows/shrinks toward target vertices.
func NewResizer(neigh oracle.Neighbours, target int) *Resizer {
	return &Resizer{neigh: neigh, target: target}
}

// Resize returns a copy of m grown or shrunk toward the target size.
// Shrinking repeatedly drops the fixed (already-home) vertex whose removal
// deletes the fewest edges from the remaining window; it fails (false) if
// the window still exceeds target and no fixed vertex remains to drop (every
// vertex is part of a live cycle). Growing repeatedly adds the neighbouring
// vertex (not yet in the window) that introduces the most new edges, as a
// new fixed point; running out of neighbouring candidates before reaching
// target is still success; only the shrink side can fail.
func (r *Resizer) Resize(m swap.VertexMapping) (swap.VertexMapping, bool) {
	out := make(swap.VertexMapping, len(m))
	for k, v := range m {
		out[k] = v
	}

	for len(out) > r.target {
		victim, ok := r.pickShrinkVictim(out)
		if !ok {
			return out, false
		}
		delete(out, victim)
	}

	for len(out) < r.target {
		candidate, ok := r.pickGrowthCandidate(out)
		if !ok {
			break
		}
		out[candidate] = candidate
	}

	return out, true
}

// FixedVertices returns, in ascending order, every vertex of m already
// sitting on its own target (v == m[v]) — the ones a lookup query is free to
// treat as transient parking spots.
func FixedVertices(m swap.VertexMapping) []swap.Vertex {
	var out []swap.Vertex
	for v, t := range m {
		if v == t {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func (r *Resizer) edgeCountInto(window map[swap.Vertex]bool, v swap.Vertex) int {
	count := 0
	for _, u := range r.neigh.Neighbours(v) {
		if window[u] {
			count++
		}
	}

	return count
}

func (r *Resizer) pickShrinkVictim(m swap.VertexMapping) (swap.Vertex, bool) {
	fixed := FixedVertices(m)
	if len(fixed) == 0 {
		return 0, false
	}

	window := make(map[swap.Vertex]bool, len(m))
	for v := range m {
		window[v] = true
	}

	best := fixed[0]
	bestCount := -1
	for _, v := range fixed {
		delete(window, v)
		count := r.edgeCountInto(window, v)
		window[v] = true
		if bestCount == -1 || count < bestCount {
			best, bestCount = v, count
		}
	}

	return best, true
}

func (r *Resizer) pickGrowthCandidate(m swap.VertexMapping) (swap.Vertex, bool) {
	window := make(map[swap.Vertex]bool, len(m))
	for v := range m {
		window[v] = true
	}

	candidateSeen := make(map[swap.Vertex]bool)
	var candidates []swap.Vertex
	for v := range m {
		for _, u := range r.neigh.Neighbours(v) {
			if window[u] || candidateSeen[u] {
				continue
			}
			candidateSeen[u] = true
			candidates = append(candidates, u)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	best := candidates[0]
	bestCount := -1
	for _, c := range candidates {
		count := r.edgeCountInto(window, c)
		if count > bestCount {
			best, bestCount = c, count
		}
	}

	return best, true
}
