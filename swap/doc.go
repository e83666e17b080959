// Package swap is the shared vocabulary of the token-swapping solver suite:
//
//	Vertex         — opaque, non-negative vertex handle
//	Swap           — canonical unordered pair (A < B)
//	VertexMapping  — partial injection current-vertex -> target-vertex
//	Sequence       — ordered swaps, applied left to right to a VertexMapping
//
// Every other package in this module (listarena, swaplist, cycles, trivialtsa,
// hybridtsa, lookup, tableopt, solver, ...) builds on these four types instead
// of redefining them, the same way lvlath's algorithm packages all build on
// core.Graph.
package swap
