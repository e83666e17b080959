package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// pathGraph is a minimal ShortestPathSource/NeighbourSource over a simple
// path 0-1-2-...-(n-1), used to exercise the caching oracles in isolation.
type pathGraph struct{ n int }

func (g pathGraph) ShortestPath(a, b swap.Vertex) ([]swap.Vertex, error) {
	lo, hi := int(a), int(b)
	step := 1
	if lo > hi {
		step = -1
	}
	var out []swap.Vertex
	for v := lo; ; v += step {
		out = append(out, swap.Vertex(v))
		if v == hi {
			break
		}
	}

	return out, nil
}

func (g pathGraph) RawNeighbours(v swap.Vertex) []swap.Vertex {
	var out []swap.Vertex
	if v > 0 {
		out = append(out, v-1)
	}
	if int(v) < g.n-1 {
		out = append(out, v+1)
	}

	return out
}

func TestCachingDistancesComputesAndCaches(t *testing.T) {
	d := oracle.NewCachingDistances(pathGraph{n: 12})

	got, err := d.Distance(2, 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)

	// symmetric query should hit the same cache entry
	got, err = d.Distance(7, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got)
}

func TestCachingDistancesRegisterEdge(t *testing.T) {
	d := oracle.NewCachingDistances(pathGraph{n: 3})
	d.RegisterEdge(0, 1)

	got, err := d.Distance(0, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got)
}

func TestCachingDistancesSelfIsZero(t *testing.T) {
	d := oracle.NewCachingDistances(pathGraph{n: 5})
	got, err := d.Distance(3, 3)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCachingNeighboursSortsAndMemoises(t *testing.T) {
	n := oracle.NewCachingNeighbours(pathGraph{n: 5})
	assert.Equal(t, []swap.Vertex{0, 2}, n.Neighbours(1))
	// second call must hit the cache and return the same slice identity-equal content
	assert.Equal(t, []swap.Vertex{0, 2}, n.Neighbours(1))
}

func TestRegisterShortestPathLongPathWindowing(t *testing.T) {
	d := oracle.NewCachingDistances(pathGraph{n: 20})
	path := make([]swap.Vertex, 16)
	for i := range path {
		path[i] = swap.Vertex(i)
	}
	d.RegisterShortestPath(path)

	// prefix window [0,5) is fully cached.
	got, err := d.Distance(0, 4)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got)

	// suffix window is fully cached.
	got, err = d.Distance(11, 15)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got)
}
