// Package tokswap solves the Token Swapping Problem on an undirected,
// connected graph: given a graph and a permutation of tokens sitting on a
// subset of its vertices, it produces a short ordered sequence of
// edge-swaps whose cumulative effect realises that permutation.
//
// Token Swapping is NP-hard, so tokswap is a suite of cooperating
// heuristics aimed at short — not provably optimal — sequences, with
// strong correctness guarantees: every swap sequence it returns is
// checked to realise exactly the requested permutation using only edges
// of the input graph.
//
// Packages:
//
//	swap/         — vertices, swaps, vertex mappings, swap sequences
//	listarena/    — intrusive doubly-linked list stored in a slice
//	swaplist/     — typed swap list over listarena, with peephole cancellation
//	oracle/       — caching Distances/Neighbours capability interfaces
//	graphadapter/ — a minimal graph plus BFS, exposed via the oracle interfaces
//	pathfinder/   — RiverFlow: edge-usage-biased shortest path selection
//	tokentracker/ — follows how a swap sequence permutes token identities
//	swapopt/      — algebraic swap-list reduction passes
//	cycles/       — cycle-growing partial solver
//	trivialtsa/   — guaranteed-termination full solver
//	hybridtsa/    — alternates cycles and trivialtsa to resolution
//	lookup/       — precomputed near-optimal sequences for small subproblems
//	tableopt/     — slides the lookup table over windows of a solution
//	solver/       — BestFullTsa: composes the above into the end-to-end solve
//
// The graph itself is out of scope for tokswap's algorithms: they consume
// only an oracle.Distances and an oracle.Neighbours. graphadapter's Graph
// is one concrete way to build those from an ordinary vertex-and-edge list.
//
//	go get github.com/katalvlaran/tokswap
package tokswap
