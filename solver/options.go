package solver

import (
	"github.com/katalvlaran/tokswap/cycles"
	"github.com/katalvlaran/tokswap/tableopt"
)

// Options tunes a Solve call. Seed drives the PathFinder's RiverFlow random
// choices; fixing it makes a solve reproducible across runs on the same
// inputs.
type Options struct {
	Seed int64

	Cycles   cycles.Options
	Tableopt tableopt.Options
}

// DefaultOptions returns seed 1 plus each subsystem's own default tuning.
func DefaultOptions() Options {
	return Options{
		Seed:     1,
		Cycles:   cycles.DefaultOptions(),
		Tableopt: tableopt.DefaultOptions(),
	}
}
