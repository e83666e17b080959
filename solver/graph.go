package solver

import "github.com/katalvlaran/tokswap/oracle"

// Graph is the polymorphic surface Solve needs: pairwise shortest-path
// lengths plus adjacency. oracle.CachingDistances/oracle.CachingNeighbours
// wrapping a graphadapter source satisfy it directly.
type Graph interface {
	oracle.Distances
	oracle.Neighbours
}
