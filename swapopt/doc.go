// Package swapopt contains the algebraic reduction passes that shrink a
// swaplist.List without changing the permutation it realises. Each pass
// exploits one commutation or cancellation fact about vertex-swaps:
//
//	RemoveEmptySwaps    drops swaps that touch no live token
//	ZeroTravelPass      cancels adjacent-up-to-commutation duplicate swaps
//	FrontwardTravelPass slides every swap as far left as disjointness allows
//	TokenTrackingPass   cancels swaps that induce the same token exchange
//	FullOptimise        alternates the above to a fixed point
//
// None of these passes know about the graph, the target mapping's intent, or
// the table optimiser; they operate purely on the swaplist.List and (for
// RemoveEmptySwaps and FullOptimise) a swap.VertexMapping tracking which
// vertices currently hold a token.
package swapopt
