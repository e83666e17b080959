package solver

import (
	"fmt"

	"github.com/katalvlaran/tokswap/internal/internalerr"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
)

// Solve drives every token in mapping home over g and returns the swap
// sequence that realises it: applying the returned swaps, left to right, to
// a copy of mapping leaves every token on its target (swap.AllHome).
//
// Solve validates mapping via swap.CheckMapping, then calls BestFullTsa with
// a freshly seeded PathFinder. Any internalerr.Violation raised by the
// heuristics below is recovered here and reported as a wrapped error; it is
// never caught anywhere else in the module.
func Solve(mapping swap.VertexMapping, g Graph, opts Options) (seq swap.Sequence, err error) {
	if checkErr := swap.CheckMapping(mapping); checkErr != nil {
		return nil, checkErr
	}

	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(internalerr.Violation)
			if !ok {
				panic(r)
			}
			seq, err = nil, fmt.Errorf("solver: %w", v)
		}
	}()

	pf := pathfinder.New(g, g, opts.Seed)

	return BestFullTsa(mapping, g, pf, opts)
}
