package frame

import "errors"

// Sentinel errors for the IEJoin error taxonomy. Call sites wrap these with
// fmt.Errorf("%w: ...") so callers can still distinguish them via errors.Is.
var (
	// ErrInvalidArity is returned when selected_left/selected_right do not
	// each name exactly two columns.
	ErrInvalidArity = errors.New("arrowjoin: invalid arity")

	// ErrTypeMismatch is returned when the four selected columns cannot be
	// coerced to a common physical numeric representation.
	ErrTypeMismatch = errors.New("arrowjoin: type mismatch")

	// ErrUpstreamSortFailure is returned when building a concatenated axis
	// ahead of its arg_sort fails (series.Concat returns an error); ArgSort
	// itself does not fail.
	ErrUpstreamSortFailure = errors.New("arrowjoin: upstream sort failure")

	// ErrTakeFailure is returned when the final take-by-index step fails.
	ErrTakeFailure = errors.New("arrowjoin: take failure")
)
