// Package bitset implements the packed, filtered bit vector the IEJoin
// kernel uses to track which L1 positions have been visited while walking
// L2. It never clears a bit once set and is never shared across calls.
package bitset

import "math/bits"

const (
	wordBits      = 64
	chunkBits     = 1024 // bits covered by one filter word (one filter bit per data word)
	wordsPerChunk = chunkBits / wordBits
)

// FilteredBitArray is a packed bit vector with a second, coarser bitmap
// ("the filter") recording which 1024-bit chunks contain any set bit at
// all. Scanning for set bits skips whole all-zero chunks via the filter
// before inspecting individual words.
type FilteredBitArray struct {
	bits   []uint64
	filter []uint64
	length int
}

// FromLenZeroed allocates a bit array of n bits, all clear.
func FromLenZeroed(n int) *FilteredBitArray {
	numWords := (n + wordBits - 1) / wordBits
	numFilterWords := (numWords + wordsPerChunk - 1) / wordsPerChunk
	return &FilteredBitArray{
		bits:   make([]uint64, numWords),
		filter: make([]uint64, numFilterWords),
		length: n,
	}
}

// Len returns the number of addressable bits.
func (f *FilteredBitArray) Len() int { return f.length }

// SetBit marks bit i visited. i must be in [0, Len()).
func (f *FilteredBitArray) SetBit(i int) {
	wordIdx := i / wordBits
	bitIdx := uint(i % wordBits)
	f.bits[wordIdx] |= 1 << bitIdx

	filterWord := wordIdx / wordsPerChunk
	filterBit := uint(wordIdx % wordsPerChunk)
	f.filter[filterWord] |= 1 << filterBit
}

// OnSetBitsFrom invokes f(idx) for every set bit idx in [start, Len()), in
// ascending order. Whole zero words are skipped via the filter bitmap so
// the cost is proportional to the number of set bits plus the number of
// words scanned, not the number of bits scanned.
func (fb *FilteredBitArray) OnSetBitsFrom(start int, visit func(idx int)) {
	if start >= fb.length {
		return
	}
	if start < 0 {
		start = 0
	}

	startWord := start / wordBits
	startBit := uint(start % wordBits)

	for wi := startWord; wi < len(fb.bits); wi++ {
		chunkIdx := wi / wordsPerChunk
		if fb.filter[chunkIdx] == 0 {
			// No bit set anywhere in this chunk: jump past its remaining words.
			wi = (chunkIdx+1)*wordsPerChunk - 1
			continue
		}
		chunkBit := uint(wi % wordsPerChunk)
		if fb.filter[chunkIdx]&(1<<chunkBit) == 0 {
			continue
		}

		word := fb.bits[wi]
		if word == 0 {
			continue
		}
		if wi == startWord && startBit > 0 {
			word &= ^((uint64(1) << startBit) - 1)
		}

		for word != 0 {
			tz := bits.TrailingZeros64(word)
			bitIndex := wi*wordBits + tz
			if bitIndex >= fb.length {
				return
			}
			visit(bitIndex)
			word &= word - 1
		}
	}
}
