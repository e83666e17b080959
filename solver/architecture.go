package solver

import (
	"github.com/katalvlaran/tokswap/graphadapter"
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
)

// combinedGraph satisfies Graph by pairing a CachingDistances with a
// CachingNeighbours over the same underlying source.
type combinedGraph struct {
	*oracle.CachingDistances
	*oracle.CachingNeighbours
}

// SolveOnArchitecture is the node-identifier-level convenience variant of
// Solve: nodes/edges describe the physical architecture by name, and
// initialLogicalToPhysical/desiredLogicalToPhysical place logical qubits on
// it. It derives the physical-to-physical VertexMapping, solves it, and
// translates the resulting swaps back into (Node,Node) pairs in the
// caller's identifier space.
//
// Architecture nodes not mentioned by either logical map may still appear
// in the returned swaps if they lie on a chosen shortest path; callers who
// must forbid that should remove those nodes from edges first.
func SolveOnArchitecture(
	nodes []string,
	edges [][2]string,
	initialLogicalToPhysical map[string]string,
	desiredLogicalToPhysical map[string]string,
	opts Options,
) ([][2]string, error) {
	if err := checkMatchedLogicalQubits(initialLogicalToPhysical, desiredLogicalToPhysical); err != nil {
		return nil, err
	}

	g, _, err := graphadapter.BuildUnweighted(edges)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		if err := g.AddVertex(n); err != nil {
			return nil, err
		}
	}
	idx := graphadapter.NewVertexIndex(g)

	src := graphadapter.NewBFSSource(g, idx)
	graph := combinedGraph{
		CachingDistances:  oracle.NewCachingDistances(src),
		CachingNeighbours: oracle.NewCachingNeighbours(src),
	}

	mapping, err := physicalMapping(idx, initialLogicalToPhysical, desiredLogicalToPhysical)
	if err != nil {
		return nil, err
	}

	seq, err := Solve(mapping, graph, opts)
	if err != nil {
		return nil, err
	}

	out := make([][2]string, len(seq))
	for i, s := range seq {
		out[i] = [2]string{idx.ID(s.A), idx.ID(s.B)}
	}

	return out, nil
}

func checkMatchedLogicalQubits(initial, desired map[string]string) error {
	if len(initial) != len(desired) {
		return ErrUnmatchedLogicalQubit
	}
	for qubit := range initial {
		if _, ok := desired[qubit]; !ok {
			return ErrUnmatchedLogicalQubit
		}
	}

	return nil
}

func physicalMapping(idx *graphadapter.VertexIndex, initial, desired map[string]string) (swap.VertexMapping, error) {
	mapping := make(swap.VertexMapping, len(initial))
	for qubit, fromNode := range initial {
		toNode := desired[qubit]

		from, ok := idx.Vertex(fromNode)
		if !ok {
			return nil, ErrUnmatchedLogicalQubit
		}
		to, ok := idx.Vertex(toNode)
		if !ok {
			return nil, ErrUnmatchedLogicalQubit
		}
		mapping[from] = to
	}

	return mapping, nil
}
