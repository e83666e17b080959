// Package cycles implements the cycle-growing partial solver: it looks for
// short cyclic shifts of tokens that strictly decrease the progress metric
// L, grows them vertex by vertex along the graph, and greedily selects a
// disjoint subset to enact as concrete swaps.
//
// It never fails to make progress by itself failing — on any call it may
// legitimately emit zero swaps, in which case the caller (hybridtsa) falls
// back to trivialtsa for that round. Its only contract is "never make
// things worse": every cycle it enacts strictly decreases L as a whole
// (individual swaps within that cycle need not).
package cycles
