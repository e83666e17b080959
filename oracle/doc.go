// Package oracle defines the two capabilities the token-swapping solver needs
// from a graph it does not own — Distances and Neighbours — and provides
// caching implementations of both that any minimal graph source can plug
// into.
//
// The solver never touches a concrete graph type directly (the broader
// circuit/architecture library that owns real graphs is an external
// collaborator, out of scope per the package's design notes); it only ever
// sees these two interfaces. Package graphadapter supplies a concrete
// implementation backed by its own minimal Graph type for callers who do not
// already have their own.
package oracle
