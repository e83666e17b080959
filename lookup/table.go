package lookup

import (
	"sync"

	"github.com/katalvlaran/tokswap/swap"
)

// maxBFSDepth bounds the table-construction search. The Cayley graph of S6
// under all 15 transpositions has diameter 5: every permutation of 6
// elements is reachable within 5 swaps, so searching deeper never finds a
// new permutation, only longer duplicate routes to ones already found.
const maxBFSDepth = 5

// Table is the permutation-hash-keyed precomputed swap table.
type Table struct {
	byHash map[string]*FilteredSwapSequences
}

// Lookup returns the FilteredSwapSequences for hash, or nil if the table has
// no entries for that permutation shape (e.g. hash is the identity's "").
func (t *Table) Lookup(hash string) *FilteredSwapSequences {
	return t.byHash[hash]
}

var (
	globalTable     *Table
	globalTableOnce sync.Once
)

// GlobalTable returns the process-wide precomputed table, building it on
// first call.
func GlobalTable() *Table {
	globalTableOnce.Do(func() { globalTable = buildTable() })

	return globalTable
}

type bfsState [MaxTableVertices]swap.Vertex

type bfsEntry struct {
	st    bfsState
	code  Code
	moves int
}

func buildTable() *Table {
	t := &Table{byHash: make(map[string]*FilteredSwapSequences)}

	var start bfsState
	for i := range start {
		start[i] = swap.Vertex(i)
	}

	visited := map[bfsState]bool{start: true}
	queue := []bfsEntry{{st: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.moves > 0 {
			recordIfCanonical(t, cur.st, cur.code)
		}
		if cur.moves >= maxBFSDepth {
			continue
		}

		for idx := 1; idx <= 15; idx++ {
			a, b := IndexToPair(idx)
			next := cur.st
			next[a], next[b] = next[b], next[a]
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, bfsEntry{
				st:    next,
				code:  cur.code | Code(idx)<<uint(4*cur.moves),
				moves: cur.moves + 1,
			})
		}
	}

	for _, fs := range t.byHash {
		fs.finalize()
	}

	return t
}

// recordIfCanonical adds code under st's permutation hash iff st is already
// in canonical position, i.e. CanonicalRelabelling(st) is the identity
// relabelling. Non-canonical states are still explored by the search (they
// are reachable waypoints to other canonical states) but never become table
// entries themselves, since ExactMappingLookup always relabels its query
// into canonical position before consulting the table.
func recordIfCanonical(t *Table, st bfsState, code Code) {
	m := make(swap.VertexMapping, MaxTableVertices)
	for i, v := range st {
		m[swap.Vertex(i)] = v
	}

	rel := CanonicalRelabelling(m)
	if rel.Identity || rel.TooManyVertices || !rel.isCanonicalPosition() {
		return
	}

	fs, ok := t.byHash[rel.PermutationHash]
	if !ok {
		fs = NewFilteredSwapSequences()
		t.byHash[rel.PermutationHash] = fs
	}
	fs.add(code)
}
