package swapopt

import (
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// ZeroTravelPass cancels pairs of identical swaps that are separated only by
// swaps disjoint from both (and therefore commute past them): if a swap s is
// preceded, with nothing in between touching s.A or s.B, by another
// occurrence of s, the two cancel (applying the same swap twice is a no-op)
// and both are erased. Repeats to a fixed point, since one cancellation can
// expose another.
//
// Complexity: O(n) per scan, bounded number of scans (each removes at least
// one pair). Implemented with a map recording, per distinct swap, the
// handle of its most recent surviving occurrence, so a scan with no
// cancellation to make is a single O(n) pass.
func ZeroTravelPass(list *swaplist.List) {
	for zeroTravelScanOnce(list) {
	}
}

func zeroTravelScanOnce(list *swaplist.List) bool {
	occurrence := make(map[swap.Swap]swaplist.Handle)
	lastTouch := make(map[swap.Vertex]swaplist.Handle)

	for h := list.Front(); h != swaplist.InvalidHandle; h = list.Next(h) {
		s := list.Value(h)
		if prev, ok := occurrence[s]; ok && lastTouch[s.A] == prev && lastTouch[s.B] == prev {
			list.Erase(prev)
			list.Erase(h)

			return true
		}
		occurrence[s] = h
		lastTouch[s.A] = h
		lastTouch[s.B] = h
	}

	return false
}
