package solver

import (
	"github.com/katalvlaran/tokswap/hybridtsa"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
	"github.com/katalvlaran/tokswap/swapopt"
	"github.com/katalvlaran/tokswap/tableopt"
)

// BestFullTsa runs the whole optimisation pipeline over a copy of original:
// HybridTsa drives a working copy home while emitting swaps, then the swap-
// list optimiser passes and the table optimiser shrink the emitted list
// without changing the permutation it realises.
//
// original is read, never mutated; the working copies this function clones
// internally are its own.
func BestFullTsa(original swap.VertexMapping, g Graph, pf *pathfinder.PathFinder, opts Options) (swap.Sequence, error) {
	list := swaplist.New()

	working := swap.Clone(original)
	if err := hybridtsa.Run(working, g, g, list, pf, opts.Cycles); err != nil {
		return nil, err
	}

	swapopt.ZeroTravelPass(list)
	swapopt.TokenTrackingPass(list)

	// remove_empty_swaps and full_optimise replay the list against the
	// ORIGINAL mapping, not the now-all-home working copy: they need to know
	// which swaps actually moved a token on the way from original to home.
	replay := swap.Clone(original)
	swapopt.RemoveEmptySwaps(list, replay)
	swapopt.FullOptimise(list, swap.Clone(original))

	seg := tableopt.NewSegmentOptimiser(opts.Tableopt, g, edgesAmong(g))
	tab := tableopt.NewTableOptimiser(seg)
	tab.Optimise(swap.Clone(original), list)

	return list.ToSlice(), nil
}
