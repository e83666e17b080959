package hybridtsa

import (
	"github.com/katalvlaran/tokswap/cycles"
	"github.com/katalvlaran/tokswap/internal/internalerr"
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
	"github.com/katalvlaran/tokswap/trivialtsa"
)

// Run alternates cycles.PartialTsa and trivialtsa.BreakAfterProgress until
// every token is home. The outer loop is bounded by the progress metric's
// starting value plus one: each trivialtsa.BreakAfterProgress call is
// required to strictly decrease the progress metric by at least one, so no
// more than initial_L iterations can ever be needed to reach zero, plus one
// final iteration in which cycles alone finishes the job and the loop exits
// without needing a trivialtsa call at all.
//
// Hitting the bound without reaching AllHome indicates a bug in one of the
// two heuristics' progress guarantees, not a hard problem instance; Run
// raises that as an internalerr.Violation rather than returning silently
// wrong swaps.
func Run(m swap.VertexMapping, dist oracle.Distances, neigh oracle.Neighbours, list *swaplist.List, pf *pathfinder.PathFinder, opts cycles.Options) error {
	if swap.AllHome(m) {
		return nil
	}

	initialL, err := trivialtsa.ProgressL(m, dist)
	if err != nil {
		return err
	}

	partial := cycles.New(opts)
	bound := int(initialL) + 1

	for iteration := 0; iteration < bound; iteration++ {
		if swap.AllHome(m) {
			return nil
		}

		emitted, err := partial.Run(m, dist, neigh, list, pf)
		if err != nil {
			return err
		}
		if swap.AllHome(m) {
			return nil
		}

		progressed, err := trivialtsa.BreakAfterProgress(m, dist, pf, list)
		if err != nil {
			return err
		}
		if emitted == 0 && !progressed {
			internalerr.Assert(swap.AllHome(m), "hybridtsa: neither cycles nor trivialtsa made progress on a non-home mapping")

			return nil
		}
	}

	internalerr.Assert(swap.AllHome(m), "hybridtsa: exceeded the initial_L+1 iteration bound without reaching all-home")

	return nil
}
