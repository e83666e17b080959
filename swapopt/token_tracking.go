package swapopt

import (
	"github.com/katalvlaran/tokswap/swaplist"
	"github.com/katalvlaran/tokswap/tokentracker"
)

// TokenTrackingPass installs a fresh tokentracker.Tracker and walks list
// front to back, computing the token-swap each vertex-swap induces. If the
// same token-swap was already induced earlier in the list, the two
// vertex-swaps responsible cancel (their combined effect on token identities
// is the identity) and both are erased; the scan then restarts from the
// front with a fresh tracker, since the labels downstream of the cancelled
// pair have shifted.
//
// Complexity: O(n) per scan, bounded number of scans.
func TokenTrackingPass(list *swaplist.List) {
	for tokenTrackingScanOnce(list) {
	}
}

func tokenTrackingScanOnce(list *swaplist.List) bool {
	tr := tokentracker.New()
	seen := make(map[tokentracker.TokenSwap]swaplist.Handle)

	for h := list.Front(); h != swaplist.InvalidHandle; h = list.Next(h) {
		ts := tr.DoVertexSwap(list.Value(h))
		if prev, ok := seen[ts]; ok {
			list.Erase(prev)
			list.Erase(h)

			return true
		}
		seen[ts] = h
	}

	return false
}
