// Package tableopt is the final optimisation pass: it slides a window along
// an already-heuristically-built swap list and, wherever the window's
// induced mapping fits the precomputed lookup table (package lookup), checks
// whether the table knows a strictly shorter way to realise it. Unlike
// package swapopt's peephole passes, this is the only pass that can shrink
// the list by means other than cancelling redundant swaps — it can replace a
// whole stretch with a genuinely different, shorter stretch.
package tableopt
