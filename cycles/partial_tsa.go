package cycles

import (
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/pathfinder"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// PartialTsa orchestrates GrowthManager and CandidateManager into repeated
// rounds of grow-close-select-emit, until a round makes no progress.
//
// PartialTsa never fails to make progress by returning an error for that;
// it may legitimately emit zero swaps (its contract is "never make things
// worse", not "always find something").
type PartialTsa struct {
	opts Options
	gm   *GrowthManager
	cm   *CandidateManager
}

// New returns a PartialTsa tuned by opts.
func New(opts Options) *PartialTsa {
	return &PartialTsa{opts: opts, gm: NewGrowthManager(opts), cm: NewCandidateManager(opts)}
}

// Run repeatedly seeds and grows candidate cycles, emitting swaps for each
// disjoint batch selected, until an outer round emits nothing. Every
// emitted swap's edge is registered with pf, biasing RiverFlow's later
// path choices toward edges the cycle engine has already used.
//
// Returns the total number of swaps emitted.
func (p *PartialTsa) Run(m swap.VertexMapping, dist oracle.Distances, neigh oracle.Neighbours, list *swaplist.List, pf *pathfinder.PathFinder) (int, error) {
	total := 0
	for {
		emitted, err := p.singleIteration(m, dist, neigh, list, pf)
		if err != nil {
			return total, err
		}
		if emitted == 0 {
			return total, nil
		}
		total += emitted
	}
}

func (p *PartialTsa) singleIteration(m swap.VertexMapping, dist oracle.Distances, neigh oracle.Neighbours, list *swaplist.List, pf *pathfinder.PathFinder) (int, error) {
	ok, err := p.gm.Reset(m, dist, neigh)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	for round := 0; round < p.opts.MaxCycleSize; round++ {
		hasCandidates, err := p.gm.AttemptToClose(m, dist)
		if err != nil {
			return 0, err
		}
		if hasCandidates {
			selected := p.cm.Select(p.gm.Cycles())
			emitted := 0
			for _, c := range selected {
				for _, s := range Emit(list, m, c) {
					pf.RegisterEdge(s.A, s.B)
					emitted++
				}
			}

			return emitted, nil
		}

		terminate, err := p.gm.AttemptToGrow(m, dist, neigh)
		if err != nil {
			return 0, err
		}
		if terminate {
			return 0, nil
		}
	}

	return 0, nil
}
