package solver_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokswap/cycles"
	"github.com/katalvlaran/tokswap/graphadapter"
	"github.com/katalvlaran/tokswap/hybridtsa"
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/solver"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// gridEdges builds the edge list of an x*y*z grid graph (nodes adjacent iff
// they differ by one step along exactly one axis).
func gridEdges(x, y, z int) [][2]string {
	name := func(i, j, k int) string { return fmt.Sprintf("%d-%d-%d", i, j, k) }

	var edges [][2]string
	for i := 0; i < x; i++ {
		for j := 0; j < y; j++ {
			for k := 0; k < z; k++ {
				if i+1 < x {
					edges = append(edges, [2]string{name(i, j, k), name(i+1, j, k)})
				}
				if j+1 < y {
					edges = append(edges, [2]string{name(i, j, k), name(i, j+1, k)})
				}
				if k+1 < z {
					edges = append(edges, [2]string{name(i, j, k), name(i, j, k+1)})
				}
			}
		}
	}

	return edges
}

// ringEdges builds the edge list of an n-node cycle graph.
func ringEdges(n int) [][2]string {
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]string{fmt.Sprintf("r%d", i), fmt.Sprintf("r%d", (i+1)%n)})
	}

	return edges
}

// starEdges builds the edge list of a hub-and-spoke graph with n spokes.
func starEdges(n int) [][2]string {
	edges := make([][2]string, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]string{"hub", fmt.Sprintf("s%d", i)})
	}

	return edges
}

// randomMapping draws a uniformly random permutation of idx's vertices,
// seeded so the test is reproducible, and returns it as a VertexMapping.
func randomMapping(idx *graphadapter.VertexIndex, seed int64) swap.VertexMapping {
	n := idx.Len()
	ids := make([]string, n)
	for v := swap.Vertex(0); int(v) < n; v++ {
		ids[v] = idx.ID(v)
	}

	r := rand.New(rand.NewSource(seed))
	perm := r.Perm(n)

	mapping := make(swap.VertexMapping, n)
	for i, id := range ids {
		from, _ := idx.Vertex(id)
		to, _ := idx.Vertex(ids[perm[i]])
		mapping[from] = to
	}

	return mapping
}

// unoptimisedLength runs HybridTsa alone (no swaplist-optimiser or
// table-optimiser passes) over a fresh copy of mapping and returns the swap
// count it emits: S0 in spec §8 property 3, |S| <= |S0|.
func unoptimisedLength(t *testing.T, mapping swap.VertexMapping, graph solver.Graph, seed int64) int {
	t.Helper()

	working := swap.Clone(mapping)
	pf := pathfinder.New(graph, graph, seed)
	list := swaplist.New()
	err := hybridtsa.Run(working, graph, graph, list, pf, cycles.DefaultOptions())
	require.NoError(t, err)
	require.True(t, swap.AllHome(working))

	return list.Size()
}

func assertNonExpandingAndCorrect(t *testing.T, name string, edges [][2]string, seed int64) {
	t.Helper()

	g, idx, err := graphadapter.BuildUnweighted(edges)
	require.NoError(t, err)
	src := graphadapter.NewBFSSource(g, idx)
	graph := testGraph{
		CachingDistances:  oracle.NewCachingDistances(src),
		CachingNeighbours: oracle.NewCachingNeighbours(src),
	}

	mapping := randomMapping(idx, seed)
	baseline := unoptimisedLength(t, mapping, graph, seed)

	opts := solver.DefaultOptions()
	opts.Seed = seed
	seq, err := solver.Solve(mapping, graph, opts)
	require.NoError(t, err, "%s: Solve must terminate without error", name)

	verifyAllHome(t, mapping, seq)
	assert.LessOrEqual(t, len(seq), baseline, "%s: optimised sequence must not be longer than HybridTsa alone", name)

	neighbourOf := func(v swap.Vertex) map[swap.Vertex]bool {
		set := make(map[swap.Vertex]bool)
		for _, n := range graph.Neighbours(v) {
			set[n] = true
		}

		return set
	}
	for _, s := range seq {
		assert.True(t, neighbourOf(s.A)[s.B], "%s: swap %v is not a graph edge", name, s)
	}
}

func TestSolvePropertiesOnGridTopology(t *testing.T) {
	assertNonExpandingAndCorrect(t, "grid 3x4x4", gridEdges(3, 4, 4), 42)
}

func TestSolvePropertiesOnRingTopology(t *testing.T) {
	assertNonExpandingAndCorrect(t, "ring 20", ringEdges(20), 43)
}

func TestSolvePropertiesOnStarTopology(t *testing.T) {
	assertNonExpandingAndCorrect(t, "star 10+hub", starEdges(10), 44)
}
