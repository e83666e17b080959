package swap

// Sequence is an ordered list of swaps, interpreted as "apply left to right".
type Sequence []Swap

// ApplyOne applies a single swap to m in place and reports how many tokens it
// moved (0, 1 or 2):
//
//	both endpoints carry tokens -> exchange their targets, 2 moved
//	only one endpoint carries a token -> relocate it to the empty endpoint, 1 moved
//	neither endpoint carries a token -> no-op, 0 moved
func ApplyOne(m VertexMapping, s Swap) int {
	ta, aok := m[s.A]
	tb, bok := m[s.B]

	switch {
	case aok && bok:
		m[s.A], m[s.B] = tb, ta

		return 2
	case aok:
		m[s.B] = ta
		delete(m, s.A)

		return 1
	case bok:
		m[s.A] = tb
		delete(m, s.B)

		return 1
	default:
		return 0
	}
}

// Apply replays seq against m in place, returning the per-swap moved-token
// counts (len(result) == len(seq)).
func (seq Sequence) Apply(m VertexMapping) []int {
	moved := make([]int, len(seq))
	for i, s := range seq {
		moved[i] = ApplyOne(m, s)
	}

	return moved
}

// Realizes reports whether applying seq, left to right, to the identity
// mapping on keys(want) reproduces want exactly.
func (seq Sequence) Realizes(want VertexMapping) bool {
	got := Identity(Keys(want))
	seq.Apply(got)
	if len(got) != len(want) {
		return false
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}

	return true
}

// Reversed returns a new sequence that undoes seq: the same swaps in reverse
// order (each swap is its own inverse).
func (seq Sequence) Reversed() Sequence {
	out := make(Sequence, len(seq))
	for i, s := range seq {
		out[len(seq)-1-i] = s
	}

	return out
}
