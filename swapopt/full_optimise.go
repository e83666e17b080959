package swapopt

import (
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// bareOptimise is zero-travel followed by token-tracking, the two passes
// that need no target mapping. FullOptimise alternates this with
// RemoveEmptySwaps, which does.
func bareOptimise(list *swaplist.List) {
	ZeroTravelPass(list)
	TokenTrackingPass(list)
}

// FullOptimise alternates bareOptimise with RemoveEmptySwaps(list, m) until
// neither shrinks the list further: removing empty swaps can expose new
// cancellations (two swaps that were non-adjacent only because a
// now-removed swap sat between them), and cancelling swaps can turn other
// swaps empty (a token they used to move may no longer reach them). Every
// round replays the list from a fresh copy of m; m itself is not modified.
//
// Complexity: O(k * n) where k is the number of rounds to converge (in
// practice small; each round strictly shrinks the list or the loop exits).
func FullOptimise(list *swaplist.List, m swap.VertexMapping) {
	for {
		before := list.Size()
		bareOptimise(list)
		RemoveEmptySwaps(list, swap.Clone(m))
		if list.Size() == before {
			return
		}
	}
}
