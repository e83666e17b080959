package oracle

import (
	"errors"

	"github.com/katalvlaran/tokswap/swap"
)

// ErrDisconnectedGraph indicates a Distances query spanned two vertices with
// no path between them.
var ErrDisconnectedGraph = errors.New("oracle: disconnected graph")

// Distances answers pairwise shortest-path-length queries and accepts
// registration hooks that let callers seed its cache from paths or edges
// they have already discovered (RiverFlow and the Cycles engine both do this
// so repeated queries over the same region stay cheap).
type Distances interface {
	// Distance returns the shortest-path length between a and b; 0 iff a == b.
	// Errors: ErrDisconnectedGraph if a and b lie in different components.
	Distance(a, b swap.Vertex) (uint64, error)

	// RegisterShortestPath seeds the cache with every pairwise distance
	// implied by path being a shortest path (shortest paths have optimal
	// substructure: every sub-path of a shortest path is itself shortest).
	RegisterShortestPath(path []swap.Vertex)

	// RegisterEdge seeds the cache with Distance(u, v) == 1.
	RegisterEdge(u, v swap.Vertex)
}

// Neighbours answers adjacency queries, returning a sorted, memoised slice of
// a vertex's neighbours.
type Neighbours interface {
	// Neighbours returns v's adjacent vertices in ascending order.
	Neighbours(v swap.Vertex) []swap.Vertex
}

// ShortestPathSource is the minimal capability a concrete graph must expose
// for CachingDistances to compute (not just cache) a shortest path on a
// cache miss.
type ShortestPathSource interface {
	// ShortestPath returns a shortest path from a to b, inclusive of both
	// endpoints. Errors: ErrDisconnectedGraph if none exists.
	ShortestPath(a, b swap.Vertex) ([]swap.Vertex, error)
}

// NeighbourSource is the minimal capability a concrete graph must expose for
// CachingNeighbours to answer an adjacency query on a cache miss.
type NeighbourSource interface {
	// RawNeighbours returns v's neighbours in any order; CachingNeighbours
	// sorts and memoises the result.
	RawNeighbours(v swap.Vertex) []swap.Vertex
}
