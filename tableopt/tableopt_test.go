package tableopt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
	"github.com/katalvlaran/tokswap/tableopt"
)

type fakeNeighbours map[swap.Vertex][]swap.Vertex

func (f fakeNeighbours) Neighbours(v swap.Vertex) []swap.Vertex { return f[v] }

// triangleSetup returns neighbours and an edge predicate over a 3-vertex
// complete graph {0,1,2}.
func triangleSetup() (fakeNeighbours, func(a, b swap.Vertex) bool) {
	neigh := fakeNeighbours{
		0: {1, 2},
		1: {0, 2},
		2: {0, 1},
	}
	edges := func(a, b swap.Vertex) bool {
		return a != b && a <= 2 && b <= 2
	}

	return neigh, edges
}

func TestOptimiseSegmentFindsShorterReplacementForThreeCycle(t *testing.T) {
	neigh, edges := triangleSetup()
	opts := tableopt.DefaultOptions()
	seg := tableopt.NewSegmentOptimiser(opts, neigh, edges)

	// (0,1)(1,2)(0,1) realises the same 3-cycle as the table's canonical
	// 2-swap solution, so the segment optimiser should shrink it.
	list := swaplist.New()
	list.FromSlice(swap.Sequence{swap.MustSwap(0, 1), swap.MustSwap(1, 2), swap.MustSwap(0, 1)})

	before := list.Size()
	changed := seg.OptimiseSegment(list, list.Front(), swap.VertexMapping{})
	require.True(t, changed)
	assert.Less(t, list.Size(), before)
}

func TestOptimiseSegmentNoOpOnEmptyList(t *testing.T) {
	neigh, edges := triangleSetup()
	seg := tableopt.NewSegmentOptimiser(tableopt.DefaultOptions(), neigh, edges)
	list := swaplist.New()

	changed := seg.OptimiseSegment(list, list.Front(), swap.VertexMapping{})
	assert.False(t, changed)
}

func TestTableOptimiserPreservesTheInducedPermutation(t *testing.T) {
	neigh, edges := triangleSetup()
	seg := tableopt.NewSegmentOptimiser(tableopt.DefaultOptions(), neigh, edges)
	tab := tableopt.NewTableOptimiser(seg)

	list := swaplist.New()
	list.FromSlice(swap.Sequence{swap.MustSwap(0, 1), swap.MustSwap(1, 2), swap.MustSwap(0, 1)})

	tokensAtStart := swap.VertexMapping{0: 0, 1: 1, 2: 2}
	want := swap.Clone(tokensAtStart)
	list.ToSlice().Apply(want)

	tab.Optimise(tokensAtStart, list)

	got := swap.Clone(tokensAtStart)
	list.ToSlice().Apply(got)
	assert.Equal(t, want, got)
}
