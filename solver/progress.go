package solver

import (
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/trivialtsa"
)

// ProgressL computes the progress metric L(M): the sum, over every vertex
// currently holding a token, of its distance to its target. It is the
// quantity every heuristic iteration is required to monotonically decrease.
func ProgressL(m swap.VertexMapping, dist oracle.Distances) (uint64, error) {
	return trivialtsa.ProgressL(m, dist)
}
