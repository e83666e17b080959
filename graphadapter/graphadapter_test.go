package graphadapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tokswap/graphadapter"
	"github.com/katalvlaran/tokswap/oracle"
)

func triangleEdges() [][2]string {
	return [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}}
}

func TestGraphAddEdgeRejectsLoopsAndDuplicates(t *testing.T) {
	g := graphadapter.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	assert.ErrorIs(t, g.AddEdge("A", "A"), graphadapter.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("A", "B"), graphadapter.ErrMultiEdgeNotAllowed)
}

func TestGraphNeighborsAndVerticesAreSorted(t *testing.T) {
	g := graphadapter.NewGraph()
	require.NoError(t, g.AddEdge("C", "A"))
	require.NoError(t, g.AddEdge("B", "A"))
	require.NoError(t, g.AddVertex("D"))

	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, []string{"B", "C"}, g.Neighbors("A"))
}

func TestBFSSourceShortestPathAndNeighbours(t *testing.T) {
	g, idx, err := graphadapter.BuildUnweighted(triangleEdges())
	require.NoError(t, err)

	src := graphadapter.NewBFSSource(g, idx)
	a, _ := idx.Vertex("A")
	b, _ := idx.Vertex("B")

	path, err := src.ShortestPath(a, b)
	require.NoError(t, err)
	assert.Len(t, path, 2)

	assert.Len(t, src.RawNeighbours(a), 2) // triangle: every vertex has 2 neighbours
}

func TestBFSSourceDisconnected(t *testing.T) {
	g, idx, err := graphadapter.BuildUnweighted([][2]string{{"A", "B"}, {"C", "D"}})
	require.NoError(t, err)

	src := graphadapter.NewBFSSource(g, idx)
	a, _ := idx.Vertex("A")
	c, _ := idx.Vertex("C")

	_, err = src.ShortestPath(a, c)
	assert.ErrorIs(t, err, oracle.ErrDisconnectedGraph)
}

func TestBFSSourceMultiHopPath(t *testing.T) {
	g, idx, err := graphadapter.BuildUnweighted([][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
	require.NoError(t, err)

	src := graphadapter.NewBFSSource(g, idx)
	a, _ := idx.Vertex("A")
	d, _ := idx.Vertex("D")

	path, err := src.ShortestPath(a, d)
	require.NoError(t, err)
	require.Len(t, path, 4)
	assert.Equal(t, a, path[0])
	assert.Equal(t, d, path[3])
}
