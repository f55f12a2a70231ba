package frame

import (
	"github.com/arrowjoin/arrowjoin/internal/bitset"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/arrowjoin/arrowjoin/series"
)

// traverseL2Strict handles op2 values of < or >, where equal y-values never
// need to be treated as a group. Each L2 position is processed exactly
// once, in y-order, and the walk stops early once sliceEnd matches have
// been found (when a slice bound applies).
func traverseL2Strict[T datatypes.Numeric](l1 []L1Item[T], l2Order []int, bits *bitset.FilteredBitArray, op1 InequalityOperator, sliceEnd int, hasSliceEnd bool) (leftIdx, rightIdx []int) {
	matches := 0
	for _, k := range l2Order {
		matches += processEntry(l1, k, op1, bits, &leftIdx, &rightIdx)
		if hasSliceEnd && matches >= sliceEnd {
			return
		}
	}
	return
}

// traverseL2NonStrict handles op2 values of <= or >=, where rows sharing an
// exactly equal y-value form a run that must be handled as a unit — every
// Right entry in the run is marked visited before any Left entry in the
// run is allowed to search for matches, otherwise two rows with equal y
// would incorrectly fail to match each other. This runs in three steps per
// position:
//  1. scan forward marking visited (or buffering Left) while y stays equal
//  2. on a y change (or end of input), flush every buffered Left entry in
//     the run that just closed against the now-fully-marked Right entries
//  3. start a new run at the position that changed y
func traverseL2NonStrict[T datatypes.Numeric](l1 []L1Item[T], l2Order []int, yOrdered []T, bits *bitset.FilteredBitArray, op1 InequalityOperator, sliceEnd int, hasSliceEnd bool) (leftIdx, rightIdx []int) {
	n := len(l2Order)
	if n == 0 {
		return
	}

	matches := 0
	runStart := 0
	prevValue := yOrdered[l2Order[0]]

	flush := func(from, to int) bool {
		for j := from; j < to; j++ {
			matches += processLHSEntry(l1, l2Order[j], op1, bits, &leftIdx, &rightIdx)
		}
		return hasSliceEnd && matches >= sliceEnd
	}

	for i := 0; i < n; i++ {
		k := l2Order[i]
		value := yOrdered[k]
		if i > 0 && series.CompareValues(value, prevValue) != 0 {
			if flush(runStart, i) {
				return
			}
			runStart = i
		}
		markVisited(l1, k, bits)
		prevValue = value
	}
	flush(runStart, n)
	return
}
