package solver

import (
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// edgesAmong builds the edge-membership predicate tableopt's lookup queries
// need, backed by a Neighbours oracle.
func edgesAmong(neigh oracle.Neighbours) func(a, b swap.Vertex) bool {
	return func(a, b swap.Vertex) bool {
		if a == b {
			return false
		}
		for _, n := range neigh.Neighbours(a) {
			if n == b {
				return true
			}
		}

		return false
	}
}
