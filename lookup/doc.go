// Package lookup implements the precomputed-table fast path: for small
// (≤6-vertex) windows of a mapping, it is frequently cheaper to look up a
// short swap sequence for the exact permutation shape than to run the
// general heuristics.
//
// The table is not shipped as a data blob. It is built once per process,
// on first use, by a bounded breadth-first search over the Cayley graph of
// S6 generated by all 15 transpositions of {0..5} — the diameter of that
// graph is known to be 5, so the search and its memory footprint are both
// small and bounded. Every permutation reached is canonically relabelled
// (see CanonicalRelabelling); only permutations already in canonical
// position are kept as table entries, since ExactMappingLookup always
// relabels its query into canonical position before consulting the table.
// This guarantees each table entry's generating sequence is genuinely
// shortest for its permutation shape, by construction of breadth-first
// search, and that no two entries can duplicate a shorter solution for the
// same canonical shape.
package lookup
