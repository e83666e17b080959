package swapopt

import (
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// RemoveEmptySwaps walks list front to back, simulating its effect on m as it
// goes, and erases any swap that moves zero tokens at the point it is
// reached (i.e. neither endpoint currently holds a token). m is left holding
// the mapping's state after the surviving swaps have all been applied.
//
// Complexity: O(list.Size()).
func RemoveEmptySwaps(list *swaplist.List, m swap.VertexMapping) {
	h := list.Front()
	for h != swaplist.InvalidHandle {
		next := list.Next(h)
		if swap.ApplyOne(m, list.Value(h)) == 0 {
			list.Erase(h)
		}
		h = next
	}
}
