package trivialtsa

import (
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// FullTSA decomposes m into disjoint cycles/chains and enacts every one
// completely: all tokens end home. Cycles are processed in the order
// DecomposeCycles returns them (deterministic, by smallest vertex).
//
// Within one cycle/chain [v0..vk], the abstract transpositions (v0,v1),
// (v1,v2), ..., (v(k-1),vk) are applied in descending index order — the
// order that realises the forward chain m[vi]=v(i+1) exactly, the same
// convention package cycles uses when emitting a grown cycle's swaps. Each
// abstract transposition is realised over the graph via RiverFlow's
// concrete shortest path between its two vertices and
// AppendSwapsToInterchangePathEnds.
func FullTSA(m swap.VertexMapping, pf *pathfinder.PathFinder, list *swaplist.List) error {
	for _, path := range DecomposeCycles(m) {
		if len(path) < 2 {
			continue
		}
		if err := enactChainDescending(m, pf, list, path); err != nil {
			return err
		}
	}

	return nil
}

// enactChainDescending enacts abstract transpositions (v(i), v(i+1)) for i
// from len(path)-2 down to 0.
func enactChainDescending(m swap.VertexMapping, pf *pathfinder.PathFinder, list *swaplist.List, path []swap.Vertex) error {
	for i := len(path) - 2; i >= 0; i-- {
		concrete, err := pf.Find(path[i], path[i+1])
		if err != nil {
			return err
		}
		AppendSwapsToInterchangePathEnds(list, m, concrete)
	}

	return nil
}
