package frame

import (
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/arrowjoin/arrowjoin/internal/bitset"
	"github.com/arrowjoin/arrowjoin/series"
)

// buildL1 constructs the L1 table from the concatenated x-axis values and
// the permutation that sorts them. order[k] is a global index into xValues
// (< nL for a Left row, >= nL for a Right row); the resulting row index is
// sign-encoded: positive 1-based for Left, negative 1-based for Right.
func buildL1[T datatypes.Numeric](xValues []T, order []int, nL int) []L1Item[T] {
	l1 := make([]L1Item[T], len(order))
	for i, idx := range order {
		var rowIndex int64
		if idx < nL {
			rowIndex = int64(idx + 1)
		} else {
			rowIndex = -int64(idx-nL+1)
		}
		l1[i] = L1Item[T]{RowIndex: rowIndex, Value: xValues[idx]}
	}
	return l1
}

// findSearchStartIndex returns, given L1 sorted by x in the direction op1
// selects (descending for > and >=, ascending otherwise) and the
// position i of the current Left entry, the smallest index j >= i at which
// op1 no longer excludes L1[j] as a candidate match. The skip predicate
// below encodes the operator-to-exclusion-rule table:
//
//	op1  | skip while             | first accepted position
//	>    | a.value >= value        | a.value <  value
//	<    | a.value <= value        | a.value >  value
//	>=   | value   <  a.value      | a.value <= value
//	<=   | value   >  a.value      | a.value >= value
func findSearchStartIndex[T datatypes.Numeric](l1 []L1Item[T], i int, op1 InequalityOperator) int {
	value := l1[i].Value

	var skip func(a T) bool
	switch op1 {
	case OpGt:
		skip = func(a T) bool { return series.CompareValues(a, value) >= 0 }
	case OpLt:
		skip = func(a T) bool { return series.CompareValues(a, value) <= 0 }
	case OpGe:
		skip = func(a T) bool { return series.CompareValues(value, a) < 0 }
	case OpLe:
		skip = func(a T) bool { return series.CompareValues(value, a) > 0 }
	}

	return i + exponentialSearch(l1[i:], skip)
}

// exponentialSearch finds the partition point of items: the smallest index
// at which skip(items[index].Value) is false, assuming skip is true for a
// prefix and false afterward. It probes at exponentially growing distances
// before narrowing with a binary search, so a match near the front of a
// long L1 table costs O(log k) rather than O(log n).
func exponentialSearch[T datatypes.Numeric](items []L1Item[T], skip func(T) bool) int {
	n := len(items)
	if n == 0 || !skip(items[0].Value) {
		return 0
	}

	bound := 1
	for bound < n && skip(items[bound].Value) {
		bound *= 2
	}

	lo := bound / 2
	hi := bound
	if hi > n {
		hi = n
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if skip(items[mid].Value) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// findMatchesInL1 walks every Right entry at or after startSearch that is
// still marked visited in bits and emits a match against the given Left
// row.
func findMatchesInL1[T datatypes.Numeric](l1 []L1Item[T], startSearch int, leftRowIndex int64, bits *bitset.FilteredBitArray, outLeft, outRight *[]int) int {
	count := 0
	bits.OnSetBitsFrom(startSearch, func(k int) {
		rightRowIndex := l1[k].RowIndex
		*outLeft = append(*outLeft, int(leftRowIndex-1))
		*outRight = append(*outRight, int(-rightRowIndex-1))
		count++
	})
	return count
}

// processEntry handles one L1 position reached during strict L2 traversal:
// a Right entry is marked visited, a Left entry searches for every visited
// Right entry its op1 predicate permits.
func processEntry[T datatypes.Numeric](l1 []L1Item[T], k int, op1 InequalityOperator, bits *bitset.FilteredBitArray, outLeft, outRight *[]int) int {
	row := l1[k].RowIndex
	if row < 0 {
		bits.SetBit(k)
		return 0
	}
	start := findSearchStartIndex(l1, k, op1)
	return findMatchesInL1(l1, start, row, bits, outLeft, outRight)
}

// processLHSEntry is the Left-only half of processEntry, used by the
// non-strict traversal's deferred flush: it never marks a Right entry
// visited, since that already happened for the whole run before any Left
// entry in it is flushed.
func processLHSEntry[T datatypes.Numeric](l1 []L1Item[T], k int, op1 InequalityOperator, bits *bitset.FilteredBitArray, outLeft, outRight *[]int) int {
	row := l1[k].RowIndex
	if row < 0 {
		return 0
	}
	start := findSearchStartIndex(l1, k, op1)
	return findMatchesInL1(l1, start, row, bits, outLeft, outRight)
}

// markVisited sets the visited bit for a Right entry without searching for
// matches; used by the non-strict traversal while scanning through a run
// of equal y-values.
func markVisited[T datatypes.Numeric](l1 []L1Item[T], k int, bits *bitset.FilteredBitArray) {
	if l1[k].RowIndex < 0 {
		bits.SetBit(k)
	}
}
