package lookup

import "errors"

// ErrInvalidVertex indicates a vertex index outside the table's 0..5 range.
var ErrInvalidVertex = errors.New("lookup: vertex index out of 0..5 range")

// MaxTableVertices is the largest window the precomputed table covers.
const MaxTableVertices = 6

// EdgesBitset is a bitmask over the 15 possible swaps on {0..5}: bit (i-1)
// set means swap index i is allowed.
type EdgesBitset uint16

// Code packs a sequence of up to 15 swap indices (1..15) into nibbles,
// least-significant first, terminated by the first zero nibble. Codes that
// encode fewer swaps always compare numerically smaller than codes that
// encode more, which is what lets FilteredSwapSequences treat "sorted by
// code value" and "sorted by length" as the same order.
type Code = uint64

var (
	swapIndexPairs [16][2]int
	pairSwapIndex  [6][6]int
)

func init() {
	idx := 1
	for a := 0; a < MaxTableVertices; a++ {
		for b := a + 1; b < MaxTableVertices; b++ {
			swapIndexPairs[idx] = [2]int{a, b}
			pairSwapIndex[a][b] = idx
			pairSwapIndex[b][a] = idx
			idx++
		}
	}
}

// IndexToPair returns the (a,b) pair, a<b, that swap index idx (1..15) names.
func IndexToPair(idx int) (int, int) {
	p := swapIndexPairs[idx]

	return p[0], p[1]
}

// PairToIndex returns the swap index (1..15) naming the pair (a,b).
func PairToIndex(a, b int) (int, error) {
	if a == b || a < 0 || a >= MaxTableVertices || b < 0 || b >= MaxTableVertices {
		return 0, ErrInvalidVertex
	}

	return pairSwapIndex[a][b], nil
}

// DecodeSwaps unpacks code into its ordered list of swap indices.
func DecodeSwaps(code Code) []int {
	var out []int
	for i := 0; i < 16; i++ {
		nib := int((code >> uint(4*i)) & 0xF)
		if nib == 0 {
			break
		}
		out = append(out, nib)
	}

	return out
}

// EncodeSwaps packs indices (each 1..15) into a Code.
func EncodeSwaps(indices []int) (Code, error) {
	if len(indices) > 15 {
		return 0, errors.New("lookup: too many swaps to encode in one code")
	}
	var code Code
	for i, idx := range indices {
		if idx < 1 || idx > 15 {
			return 0, ErrInvalidVertex
		}
		code |= Code(idx) << uint(4*i)
	}

	return code, nil
}

// GetNumberOfSwaps counts the nonzero nibbles of code.
func GetNumberOfSwaps(code Code) int {
	return len(DecodeSwaps(code))
}

// GetEdgesBitset ORs in bit (idx-1) for every swap index idx appearing in code.
func GetEdgesBitset(code Code) EdgesBitset {
	var bits EdgesBitset
	for _, idx := range DecodeSwaps(code) {
		bits |= 1 << uint(idx-1)
	}

	return bits
}
