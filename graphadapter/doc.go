// Package graphadapter provides the concrete graph the token-swapping
// solver runs over: a small undirected adjacency-list Graph addressed by
// string vertex IDs, a VertexIndex bijecting those IDs to the dense
// swap.Vertex integers the solver works with, and a BFSSource that answers
// oracle.ShortestPathSource/oracle.NeighbourSource queries against it.
//
// Token-swapping vertices are opaque integers (swap.Vertex); Graph addresses
// vertices by string ID. VertexIndex is the small bijection that keeps the
// two worlds apart: solver.Graph only ever sees the oracle interfaces
// BFSSource implements, never Graph's string-keyed storage.
package graphadapter
