package swapopt

import (
	"github.com/katalvlaran/tokswap/listarena"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// FrontwardTravelPass slides every swap, starting from the second element,
// as far toward the front of the list as commutation allows: it walks
// backward from each swap's original position while the preceding swap is
// disjoint from it, stopping at the first non-disjoint, distinct swap it
// meets. If it instead reaches an identical predecessor, the two cancel and
// both are removed.
//
// This does not reach a further fixed point on its own (it makes one
// left-to-right sweep); callers wanting maximal reduction compose it with
// ZeroTravelPass and TokenTrackingPass via FullOptimise.
//
// Complexity: O(n) amortised under typical locality; O(n^2) worst case for a
// list with no disjoint structure at all.
func FrontwardTravelPass(list *swaplist.List) {
	arena := list.Arena()
	if arena.Empty() {
		return
	}

	h := arena.Next(arena.FrontID())
	for h != listarena.InvalidHandle {
		next := arena.Next(h)
		frontwardTravelOne(arena, h)
		h = next
	}
}

func frontwardTravelOne(arena *listarena.Arena[swap.Swap], h listarena.Handle) {
	s := arena.Value(h)
	origPrev := arena.Previous(h)
	p := origPrev
	for p != listarena.InvalidHandle {
		ps := arena.Value(p)
		if ps == s {
			arena.Erase(p)
			arena.Erase(h)

			return
		}
		if !ps.Disjoint(s) {
			break
		}
		p = arena.Previous(p)
	}

	if p == origPrev {
		return // already as far front as it can go
	}

	arena.Erase(h)
	if p == listarena.InvalidHandle {
		arena.PushFront(s)
	} else {
		arena.InsertAfter(p, s)
	}
}
