// Package solver composes the cycles/trivialtsa/hybridtsa heuristics and
// the lookup-table-backed optimisers into the single top-level entry point:
// given a graph and a partial current-to-target vertex mapping, produce a
// swap sequence that drives every token home.
package solver
