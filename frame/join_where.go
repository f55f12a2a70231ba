package frame

import (
	"fmt"

	"github.com/arrowjoin/arrowjoin/expr"
)

// JoinWhere is a convenience layer over IEJoin that accepts the predicate
// the way a caller naturally writes it — `left.a.Lt(right.a).And(left.b.Gt(right.b))`
// — instead of pre-split column names and an IEJoinOptions. It recognizes
// exactly one top-level AND of two single-column inequality comparisons;
// anything else is rejected rather than guessed at.
func JoinWhere(left, right *DataFrame, predicate expr.Expr, suffix string) (*DataFrame, error) {
	selectedLeft, selectedRight, options, err := extractInequalityPredicates(predicate)
	if err != nil {
		return nil, err
	}
	return IEJoin(left, right, selectedLeft, selectedRight, options, suffix, nil)
}

// extractInequalityPredicates walks predicate looking for `p1 AND p2`
// where each pi is a single-column-vs-single-column comparison, and
// returns the two left columns, the two right columns (in the same order),
// and the matching IEJoinOptions.
func extractInequalityPredicates(predicate expr.Expr) ([]string, []string, IEJoinOptions, error) {
	and, ok := predicate.(*expr.BinaryExpr)
	if !ok || and.Op() != expr.OpAnd {
		return nil, nil, IEJoinOptions{}, fmt.Errorf("%w: IEJoin predicate must be a single AND of two comparisons", ErrInvalidArity)
	}

	leftCol1, rightCol1, op1, err := extractSinglePredicate(and.Left())
	if err != nil {
		return nil, nil, IEJoinOptions{}, err
	}
	leftCol2, rightCol2, op2, err := extractSinglePredicate(and.Right())
	if err != nil {
		return nil, nil, IEJoinOptions{}, err
	}

	return []string{leftCol1, leftCol2}, []string{rightCol1, rightCol2}, IEJoinOptions{Operator1: op1, Operator2: op2}, nil
}

// extractSinglePredicate resolves one comparison into (leftColumn,
// rightColumn, operator). The operator is taken as written; it is never
// inverted.
//
// Since a bare ColumnExpr carries no notion of which DataFrame it came
// from, the caller is expected to have built both sides' columns from
// that DataFrame's own Col() calls; this resolves purely by position:
// the left operand names the left column, the right operand the right
// column. Column expressions wrapped in an Alias are unwrapped first.
func extractSinglePredicate(e expr.Expr) (leftCol, rightCol string, op InequalityOperator, err error) {
	cmp, ok := e.(*expr.BinaryExpr)
	if !ok {
		return "", "", 0, fmt.Errorf("%w: IEJoin predicate operands must be comparisons", ErrInvalidArity)
	}

	switch cmp.Op() {
	case expr.OpLess:
		op = OpLt
	case expr.OpLessEqual:
		op = OpLe
	case expr.OpGreater:
		op = OpGt
	case expr.OpGreaterEqual:
		op = OpGe
	default:
		return "", "", 0, fmt.Errorf("%w: unsupported comparison operator in IEJoin predicate", ErrInvalidArity)
	}

	left := unwrapColumn(cmp.Left())
	right := unwrapColumn(cmp.Right())
	if left == nil || right == nil {
		return "", "", 0, fmt.Errorf("%w: IEJoin predicate operands must both be plain columns", ErrInvalidArity)
	}

	return left.Name(), right.Name(), op, nil
}

func unwrapColumn(e expr.Expr) *expr.ColumnExpr {
	switch v := e.(type) {
	case *expr.ColumnExpr:
		return v
	case *expr.AliasExpr:
		return unwrapColumn(v.Inner())
	default:
		return nil
	}
}
