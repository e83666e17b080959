// Package pathfinder implements RiverFlow, a shortest-path chooser biased to
// reuse edges it (or a caller) has already walked.
//
// Between u and v there may be many shortest paths; picking one at random
// independently each time scatters swaps across the graph. RiverFlow instead
// tracks how often each edge has been used and, at each step of a greedy
// walk along some shortest path, prefers neighbours reached by the
// most-used edge so far — like water finding the channel already cut by
// earlier flow. The result is that later algebraic passes (package swapopt)
// find more cancelling pairs, because nearby swaps are more likely to share
// edges.
package pathfinder
