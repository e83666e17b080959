package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokswap/graphadapter"
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
)

func ringOracle(t *testing.T, n int) (oracle.Distances, oracle.Neighbours, func(string) swap.Vertex) {
	t.Helper()
	edges := make([][2]string, n)
	for i := 0; i < n; i++ {
		edges[i] = [2]string{vname(i), vname((i + 1) % n)}
	}
	g, idx, err := graphadapter.BuildUnweighted(edges)
	require.NoError(t, err)
	src := graphadapter.NewBFSSource(g, idx)

	return oracle.NewCachingDistances(src), oracle.NewCachingNeighbours(src), func(name string) swap.Vertex {
		v, _ := idx.Vertex(name)

		return v
	}
}

func vname(i int) string { return string(rune('A' + i)) }

func TestFindReturnsShortestPath(t *testing.T) {
	dist, neigh, v := ringOracle(t, 8)
	pf := pathfinder.New(dist, neigh, 42)

	path, err := pf.Find(v("A"), v("D"))
	require.NoError(t, err)
	assert.Equal(t, 4, len(path)) // A,B,C,D on an 8-ring
	assert.Equal(t, v("A"), path[0])
	assert.Equal(t, v("D"), path[len(path)-1])
}

func TestFindSameVertex(t *testing.T) {
	dist, neigh, v := ringOracle(t, 8)
	pf := pathfinder.New(dist, neigh, 1)

	path, err := pf.Find(v("B"), v("B"))
	require.NoError(t, err)
	assert.Equal(t, []swap.Vertex{v("B")}, path)
}

func TestResetIsDeterministic(t *testing.T) {
	dist, neigh, v := ringOracle(t, 8)
	pf := pathfinder.New(dist, neigh, 7)

	first, err := pf.Find(v("A"), v("E")) // two equidistant arcs of length 4
	require.NoError(t, err)

	pf.Reset()
	second, err := pf.Find(v("A"), v("E"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRegisterEdgeBiasesFutureChoices(t *testing.T) {
	dist, neigh, v := ringOracle(t, 8)
	pf := pathfinder.New(dist, neigh, 3)
	// pre-bias the "clockwise" route A->B heavily so it wins over A->H.
	pf.RegisterEdge(v("A"), v("B"))
	pf.RegisterEdge(v("B"), v("C"))
	pf.RegisterEdge(v("C"), v("D"))
	pf.RegisterEdge(v("D"), v("E"))

	path, err := pf.Find(v("A"), v("E"))
	require.NoError(t, err)
	assert.Equal(t, []swap.Vertex{v("A"), v("B"), v("C"), v("D"), v("E")}, path)
}
