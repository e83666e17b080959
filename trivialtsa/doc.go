// Package trivialtsa implements the guaranteed-termination full solver: it
// decomposes a vertex mapping into disjoint abstract cycles and enacts each
// one along concrete shortest paths between consecutive cycle vertices.
//
// Unlike package cycles, trivialtsa never "yields" — FullTSA always drives
// every token home, and BreakAfterProgress always makes at least one unit
// of progress when any token is not yet home. It exists to guarantee
// hybridtsa's outer loop terminates even when the cycle engine stalls.
package trivialtsa
