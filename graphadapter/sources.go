package graphadapter

import (
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// BFSSource implements oracle.ShortestPathSource and oracle.NeighbourSource
// over a *Graph.
type BFSSource struct {
	g   *Graph
	idx *VertexIndex
}

// NewBFSSource returns a BFSSource over g, indexed by idx.
func NewBFSSource(g *Graph, idx *VertexIndex) *BFSSource {
	return &BFSSource{g: g, idx: idx}
}

// ShortestPath implements oracle.ShortestPathSource.
func (s *BFSSource) ShortestPath(a, b swap.Vertex) ([]swap.Vertex, error) {
	if a == b {
		return []swap.Vertex{a}, nil
	}

	idPath, ok := bfsPath(s.g, s.idx.ID(a), s.idx.ID(b))
	if !ok {
		return nil, oracle.ErrDisconnectedGraph
	}

	out := make([]swap.Vertex, len(idPath))
	for i, id := range idPath {
		v, ok := s.idx.Vertex(id)
		if !ok {
			return nil, oracle.ErrDisconnectedGraph
		}
		out[i] = v
	}

	return out, nil
}

// RawNeighbours implements oracle.NeighbourSource.
func (s *BFSSource) RawNeighbours(v swap.Vertex) []swap.Vertex {
	ids := s.g.Neighbors(s.idx.ID(v))
	out := make([]swap.Vertex, 0, len(ids))
	for _, id := range ids {
		if w, ok := s.idx.Vertex(id); ok {
			out = append(out, w)
		}
	}

	return out
}

var (
	_ oracle.ShortestPathSource = (*BFSSource)(nil)
	_ oracle.NeighbourSource    = (*BFSSource)(nil)
)
