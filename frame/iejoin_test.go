package frame

import (
	"math/rand"
	"testing"

	"github.com/arrowjoin/arrowjoin/expr"
	"github.com/arrowjoin/arrowjoin/internal/datatypes"
	"github.com/arrowjoin/arrowjoin/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInt64Frame(t *testing.T, xName string, x []int64, yName string, y []int64) *DataFrame {
	t.Helper()
	df, err := NewDataFrame(
		series.NewSeries(xName, x, datatypes.Int64{}),
		series.NewSeries(yName, y, datatypes.Int64{}),
	)
	require.NoError(t, err)
	return df
}

func pairsOf(t *testing.T, result *DataFrame, leftXName, rightXName string) [][2]int64 {
	t.Helper()
	col1, err := result.Column(leftXName)
	require.NoError(t, err)
	col2, err := result.Column(rightXName)
	require.NoError(t, err)

	pairs := make([][2]int64, result.Height())
	for i := 0; i < result.Height(); i++ {
		pairs[i] = [2]int64{col1.Get(i).(int64), col2.Get(i).(int64)}
	}
	return pairs
}

// In this data set x and y rise together on both sides, so no pair can have
// a smaller left x and a larger left y at once: the result is empty.
func TestEmptyResultWhenNoPairSatisfiesBothOperators(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1, 2, 3}, "y", []int64{10, 20, 30})
	right := newInt64Frame(t, "x", []int64{2, 3, 4}, "y", []int64{15, 25, 35})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpGt}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Height())
}

// With both operators strictly-increasing, every combination that
// satisfies one axis also happens to satisfy the other in this data set.
func TestMultipleMatchesAcrossBothOperators(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1, 2, 3}, "y", []int64{10, 20, 30})
	right := newInt64Frame(t, "x", []int64{2, 3, 4}, "y", []int64{15, 25, 35})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 6, result.Height())

	got := pairsOf(t, result, "x", "x_right")
	want := [][2]int64{{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4}}
	assert.ElementsMatch(t, want, got)
}

// Duplicate x and y values with both operators non-strict exercise
// equal-value run handling.
func TestNonStrictOperatorsMatchDuplicateValues(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1, 1, 2}, "y", []int64{5, 5, 6})
	right := newInt64Frame(t, "x", []int64{1, 2}, "y", []int64{5, 6})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLe, Operator2: OpLe}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 5, result.Height())
}

// Strict inequalities must not match rows with equal x or equal y.
func TestStrictOperatorsExcludeEqualValues(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1, 2}, "y", []int64{1, 2})
	right := newInt64Frame(t, "x", []int64{1, 2}, "y", []int64{1, 2})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Height())

	got := pairsOf(t, result, "x", "x_right")
	assert.Equal(t, [][2]int64{{1, 2}}, got)
}

// Slicing to (offset=1, len=3) must return exactly 3 matches, in the same
// deterministic emission order as the unsliced call.
func TestSliceMatchesWindowOfFullResult(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1, 2, 3}, "y", []int64{10, 20, 30})
	right := newInt64Frame(t, "x", []int64{2, 3, 4}, "y", []int64{15, 25, 35})
	options := IEJoinOptions{Operator1: OpLt, Operator2: OpLt}

	full, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, options, "", nil)
	require.NoError(t, err)
	fullPairs := pairsOf(t, full, "x", "x_right")

	sliced, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, options, "", &SliceBound{Offset: 1, Len: 3})
	require.NoError(t, err)
	require.Equal(t, 3, sliced.Height())
	slicedPairs := pairsOf(t, sliced, "x", "x_right")

	assert.Equal(t, fullPairs[1:4], slicedPairs)
}

// A column selection with the wrong arity must fail with ErrInvalidArity.
func TestColumnSelectionWithWrongArityFails(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1}, "y", []int64{1})
	right := newInt64Frame(t, "x", []int64{1}, "y", []int64{1})

	_, err := IEJoin(left, right, []string{"x"}, []string{"x", "y"}, IEJoinOptions{}, "", nil)
	assert.ErrorIs(t, err, ErrInvalidArity)

	_, err = IEJoin(left, right, []string{"x", "y"}, []string{"x"}, IEJoinOptions{}, "", nil)
	assert.ErrorIs(t, err, ErrInvalidArity)
}

func TestEmptyInputsProduceEmptyOutput(t *testing.T) {
	left := newInt64Frame(t, "x", nil, "y", nil)
	right := newInt64Frame(t, "x", []int64{1, 2, 3}, "y", []int64{1, 2, 3})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Height())
}

func TestNullsExcludedFromOutput(t *testing.T) {
	left, err := NewDataFrame(
		series.NewSeriesWithValidity("x", []int64{1, 2, 0}, []bool{true, true, false}, datatypes.Int64{}),
		series.NewSeries("y", []int64{1, 2, 3}, datatypes.Int64{}),
	)
	require.NoError(t, err)
	right := newInt64Frame(t, "x", []int64{5, 5, 5}, "y", []int64{5, 5, 5})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "", nil)
	require.NoError(t, err)
	// Only rows 0 and 1 of left have a non-null x; row 2 must never appear.
	got := pairsOf(t, result, "x", "x_right")
	for _, p := range got {
		assert.NotEqual(t, int64(0), p[0])
	}
}

// nestedLoopOracle computes the reference match set by brute force.
func nestedLoopOracle(xL, yL, xR, yR []int64, op1, op2 InequalityOperator) map[[2]int]bool {
	satisfies := func(a int64, op InequalityOperator, b int64) bool {
		switch op {
		case OpLt:
			return a < b
		case OpLe:
			return a <= b
		case OpGt:
			return a > b
		case OpGe:
			return a >= b
		}
		return false
	}

	out := map[[2]int]bool{}
	for i := range xL {
		for j := range xR {
			if satisfies(xL[i], op1, xR[j]) && satisfies(yL[i], op2, yR[j]) {
				out[[2]int{i, j}] = true
			}
		}
	}
	return out
}

func TestCorrectnessAgainstNestedLoopOracle(t *testing.T) {
	ops := []InequalityOperator{OpLt, OpLe, OpGt, OpGe}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 20; trial++ {
		nL := 1 + rng.Intn(30)
		nR := 1 + rng.Intn(30)

		xL := make([]int64, nL)
		yL := make([]int64, nL)
		for i := range xL {
			xL[i] = int64(rng.Intn(10))
			yL[i] = int64(rng.Intn(10))
		}
		xR := make([]int64, nR)
		yR := make([]int64, nR)
		for i := range xR {
			xR[i] = int64(rng.Intn(10))
			yR[i] = int64(rng.Intn(10))
		}

		op1 := ops[rng.Intn(len(ops))]
		op2 := ops[rng.Intn(len(ops))]

		left := newInt64Frame(t, "x", xL, "y", yL)
		right := newInt64Frame(t, "x", xR, "y", yR)

		result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: op1, Operator2: op2}, "", nil)
		require.NoError(t, err)

		oracle := nestedLoopOracle(xL, yL, xR, yR, op1, op2)
		assert.Equal(t, len(oracle), result.Height(), "trial %d op1=%s op2=%s", trial, op1, op2)
	}
}

func TestLeftAndRightColumnLengthsMatch(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	nL, nR := 15, 12
	xL := make([]int64, nL)
	yL := make([]int64, nL)
	for i := range xL {
		xL[i] = int64(rng.Intn(6))
		yL[i] = int64(rng.Intn(6))
	}
	xR := make([]int64, nR)
	yR := make([]int64, nR)
	for i := range xR {
		xR[i] = int64(rng.Intn(6))
		yR[i] = int64(rng.Intn(6))
	}

	left := newInt64Frame(t, "x", xL, "y", yL)
	right := newInt64Frame(t, "x", xR, "y", yR)

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLe, Operator2: OpGe}, "", nil)
	require.NoError(t, err)

	xCol, _ := result.Column("x")
	xRightCol, _ := result.Column("x_right")
	assert.Equal(t, xCol.Len(), xRightCol.Len())
}

func TestFloat64JoinKey(t *testing.T) {
	left, err := NewDataFrame(
		series.NewSeries("x", []float64{1.5, 2.5}, datatypes.Float64{}),
		series.NewSeries("y", []float64{1.0, 2.0}, datatypes.Float64{}),
	)
	require.NoError(t, err)
	right, err := NewDataFrame(
		series.NewSeries("x", []float64{2.0, 3.0}, datatypes.Float64{}),
		series.NewSeries("y", []float64{1.5, 2.5}, datatypes.Float64{}),
	)
	require.NoError(t, err)

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Height())
}

func TestSuffixAppliedOnCollision(t *testing.T) {
	left := newInt64Frame(t, "x", []int64{1}, "y", []int64{1})
	right := newInt64Frame(t, "x", []int64{2}, "y", []int64{2})

	result, err := IEJoin(left, right, []string{"x", "y"}, []string{"x", "y"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "_r", nil)
	require.NoError(t, err)
	assert.True(t, result.HasColumn("x_r"))
	assert.True(t, result.HasColumn("y_r"))
}

func TestJoinWhereMatchesIEJoin(t *testing.T) {
	left := newInt64Frame(t, "a", []int64{1, 2, 3}, "b", []int64{10, 20, 30})
	right := newInt64Frame(t, "a", []int64{2, 3, 4}, "b", []int64{15, 25, 35})

	direct, err := IEJoin(left, right, []string{"a", "b"}, []string{"a", "b"}, IEJoinOptions{Operator1: OpLt, Operator2: OpLt}, "", nil)
	require.NoError(t, err)

	viaPredicate, err := JoinWhere(left, right, expr.Col("a").Lt(expr.Col("a")).And(expr.Col("b").Lt(expr.Col("b"))), "")
	require.NoError(t, err)

	assert.Equal(t, direct.Height(), viaPredicate.Height())
}
