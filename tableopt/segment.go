package tableopt

import (
	"github.com/katalvlaran/tokswap/lookup"
	"github.com/katalvlaran/tokswap/oracle"
	"github.com/katalvlaran/tokswap/swap"
	"github.com/katalvlaran/tokswap/swaplist"
)

// SegmentOptimiser tries, for one starting point in a swap list, every
// growing window length and looks each one up in the precomputed table.
type SegmentOptimiser struct {
	opts       Options
	resizer    *lookup.Resizer
	edgesAmong func(a, b swap.Vertex) bool
}

// NewSegmentOptimiser returns a SegmentOptimiser over the given graph
// neighbourhood and edge-membership predicate.
func NewSegmentOptimiser(opts Options, neigh oracle.Neighbours, edgesAmong func(a, b swap.Vertex) bool) *SegmentOptimiser {
	return &SegmentOptimiser{
		opts:       opts,
		resizer:    lookup.NewResizer(neigh, opts.TargetVertices),
		edgesAmong: edgesAmong,
	}
}

func ensureWindowVertex(window swap.VertexMapping, v swap.Vertex) {
	if _, ok := window[v]; ok {
		return
	}
	window[v] = v
}

type segmentCandidate struct {
	windowLength int
	replacement  swap.Sequence
}

// OptimiseSegment walks forward from start, maintaining the mapping the
// window induces on the vertices it touches (starting from the identity, so
// each entry names the vertex whose content the window has carried there),
// and at every window length ≥3 (and at the end of the list) queries the
// table for a shorter replacement. Only vertices that are not keys of
// tokensAtStart and end the window where they started are offered to the
// lookup as empty vertices. It splices
// in the single best replacement found (greatest length reduction, earliest
// window on ties) and reports whether it changed the list.
func (o *SegmentOptimiser) OptimiseSegment(list *swaplist.List, start swaplist.Handle, tokensAtStart swap.VertexMapping) bool {
	if start == swaplist.InvalidHandle {
		return false
	}

	window := make(swap.VertexMapping, len(tokensAtStart))
	var best *segmentCandidate
	bestReduction := 0
	consecutiveFailures := 0

	h := start
	length := 0
	for h != swaplist.InvalidHandle {
		s := list.Value(h)
		ensureWindowVertex(window, s.A)
		ensureWindowVertex(window, s.B)
		swap.ApplyOne(window, s)
		length++

		next := list.Next(h)
		if length >= 3 || next == swaplist.InvalidHandle {
			trial := swap.Clone(window)
			resized, ok := o.resizer.Resize(trial)
			if !ok {
				consecutiveFailures++
				if consecutiveFailures >= o.opts.MaxConsecutiveFailures {
					break
				}
			} else {
				consecutiveFailures = 0
				var empties []swap.Vertex
				for _, f := range lookup.FixedVertices(resized) {
					if _, hasToken := tokensAtStart[f]; !hasToken {
						empties = append(empties, f)
					}
				}
				seq, found, err := lookup.PartialMappingLookup(resized, empties, o.edgesAmong, length, o.opts.MaxEmptyPermutations)
				if err == nil && found && len(seq) < length {
					reduction := length - len(seq)
					if best == nil || reduction > bestReduction {
						best, bestReduction = &segmentCandidate{windowLength: length, replacement: seq}, reduction
					}
				}
			}
		}

		h = next
	}

	if best == nil {
		return false
	}

	o.splice(list, start, best)

	return true
}

func (o *SegmentOptimiser) splice(list *swaplist.List, start swaplist.Handle, best *segmentCandidate) {
	if len(best.replacement) == 0 {
		list.Arena().EraseInterval(start, best.windowLength)

		return
	}

	last := list.Arena().OverwriteInterval(start, best.replacement)
	if excess := best.windowLength - len(best.replacement); excess > 0 {
		next := list.Arena().Next(last)
		list.Arena().EraseInterval(next, excess)
	}
}
