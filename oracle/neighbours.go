package oracle

import (
	"sort"

	"github.com/katalvlaran/tokswap/swap"
)

// CachingNeighbours implements Neighbours on top of a NeighbourSource,
// memoising the sorted adjacency list of each vertex on first query.
//
// Not safe for concurrent use.
type CachingNeighbours struct {
	src   NeighbourSource
	cache map[swap.Vertex][]swap.Vertex
}

// NewCachingNeighbours wraps src with a per-vertex adjacency cache.
func NewCachingNeighbours(src NeighbourSource) *CachingNeighbours {
	return &CachingNeighbours{src: src, cache: make(map[swap.Vertex][]swap.Vertex)}
}

// Neighbours implements Neighbours.
func (n *CachingNeighbours) Neighbours(v swap.Vertex) []swap.Vertex {
	if cached, ok := n.cache[v]; ok {
		return cached
	}

	raw := n.src.RawNeighbours(v)
	out := make([]swap.Vertex, len(raw))
	copy(out, raw)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	n.cache[v] = out

	return out
}

var _ Neighbours = (*CachingNeighbours)(nil)
