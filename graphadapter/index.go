package graphadapter

import (
	"errors"
	"sort"

	"github.com/katalvlaran/tokswap/swap"
)

// ErrDuplicateID indicates the same Graph vertex ID was added twice.
var ErrDuplicateID = errors.New("graphadapter: duplicate vertex ID")

// VertexIndex is a bijection between Graph string vertex IDs and the
// dense swap.Vertex integers the solver works with. It is built once, from
// the graph's vertex set, in sorted order, so it is fully deterministic
// given the same set of IDs.
type VertexIndex struct {
	idOf map[swap.Vertex]string
	vOf  map[string]swap.Vertex
}

// NewVertexIndex builds a VertexIndex over g's current vertex set.
func NewVertexIndex(g *Graph) *VertexIndex {
	ids := g.Vertices()
	sort.Strings(ids)

	idx := &VertexIndex{
		idOf: make(map[swap.Vertex]string, len(ids)),
		vOf:  make(map[string]swap.Vertex, len(ids)),
	}
	for i, id := range ids {
		v := swap.Vertex(i)
		idx.idOf[v] = id
		idx.vOf[id] = v
	}

	return idx
}

// ID returns the Graph vertex ID for v.
func (idx *VertexIndex) ID(v swap.Vertex) string { return idx.idOf[v] }

// Vertex returns the swap.Vertex assigned to Graph vertex ID id, and
// whether id was known to the index.
func (idx *VertexIndex) Vertex(id string) (swap.Vertex, bool) {
	v, ok := idx.vOf[id]

	return v, ok
}

// Len returns the number of indexed vertices.
func (idx *VertexIndex) Len() int { return len(idx.idOf) }
