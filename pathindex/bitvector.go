package pathindex

import "math/bits"

// BitVector is a succinct fixed-length bit-vector with O(1) rank queries
// (via a precomputed block-popcount prefix) and select queries that scan
// forward from a sparse sampling of set-bit positions.
//
// No third-party rank/select library appears anywhere in the dependency
// graph (see DESIGN.md); this is a small, self-contained implementation over
// math/bits, storing everything in flat slices rather than pointer-heavy
// trees.
type BitVector struct {
	words   []uint64
	n       int   // number of bits
	ones    int   // total set bits
	blockPS []int // rank(64*k) for k in [0, len(words)]
	sampled []int // positions of every sampleStride-th set bit, for select
}

const selectSampleStride = 64

// NewBitVector allocates a bit-vector of n bits, all initially zero.
func NewBitVector(n int) *BitVector {
	return &BitVector{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Len returns the number of bits in the vector.
func (bv *BitVector) Len() int { return bv.n }

// Set marks bit i as 1. Must be called before Freeze. Complexity: O(1).
func (bv *BitVector) Set(i int) {
	bv.words[i/64] |= 1 << uint(i%64)
}

// Get returns the value of bit i. Complexity: O(1).
func (bv *BitVector) Get(i int) bool {
	return bv.words[i/64]&(1<<uint(i%64)) != 0
}

// Freeze builds the rank/select auxiliary structures. Must be called once,
// after all Set calls and before any Rank/Select call. Complexity: O(n).
func (bv *BitVector) Freeze() {
	bv.blockPS = make([]int, len(bv.words)+1)
	bv.sampled = bv.sampled[:0]
	total := 0
	for wi, w := range bv.words {
		bv.blockPS[wi] = total
		// record sampled positions for select before folding this word in
		wc := w
		for wc != 0 {
			bitIdx := bits.TrailingZeros64(wc)
			pos := wi*64 + bitIdx
			total++
			if (total-1)%selectSampleStride == 0 {
				bv.sampled = append(bv.sampled, pos)
			}
			wc &= wc - 1
		}
	}
	bv.blockPS[len(bv.words)] = total
	bv.ones = total
}

// Rank1 returns the number of set bits in [0, i). Complexity: O(1) amortized
// (one word popcount beyond the block prefix).
func (bv *BitVector) Rank1(i int) int {
	wi := i / 64
	count := bv.blockPS[wi]
	word := bv.words[wi]
	rem := uint(i % 64)
	if rem > 0 {
		count += bits.OnesCount64(word & (1<<rem - 1))
	}

	return count
}

// Select1 returns the 0-based position of the k-th set bit (k is 1-based):
// the position of the k-th one-bit, scanning forward from the nearest
// sample. Select1(1) returns the first set bit.
// Complexity: O(selectSampleStride) amortized.
func (bv *BitVector) Select1(k int) int {
	if k <= 0 || k > bv.ones {
		return -1
	}
	sampleIdx := (k - 1) / selectSampleStride
	pos := 0
	if sampleIdx < len(bv.sampled) {
		pos = bv.sampled[sampleIdx]
	}
	remaining := k - (sampleIdx*selectSampleStride + 1)
	wi := pos / 64
	word := bv.words[wi] &^ (1<<uint(pos%64) - 1) // clear bits below pos
	seen := 0
	for {
		for word != 0 {
			bitIdx := bits.TrailingZeros64(word)
			if seen == remaining {
				return wi*64 + bitIdx
			}
			seen++
			word &= word - 1
		}
		wi++
		if wi >= len(bv.words) {
			return -1
		}
		word = bv.words[wi]
	}
}

// Ones returns the total number of set bits. Complexity: O(1).
func (bv *BitVector) Ones() int { return bv.ones }
