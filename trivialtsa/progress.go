package trivialtsa

import (
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// ProgressL computes the progress metric L(M) = sum of dist(v, M[v]) over
// every vertex currently holding a token. It is zero iff every token is
// home.
func ProgressL(m swap.VertexMapping, dist oracle.Distances) (uint64, error) {
	var total uint64
	for v, t := range m {
		d, err := dist.Distance(v, t)
		if err != nil {
			return 0, err
		}
		total += d
	}

	return total, nil
}
