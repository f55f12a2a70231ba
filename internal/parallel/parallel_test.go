package parallel

import (
	"errors"
	"testing"
)

func TestJoinRunsBothAndPropagatesError(t *testing.T) {
	t.Setenv("ARROWJOIN_NO_PARALLEL", "")
	t.Setenv("ARROWJOIN_MAX_THREADS", "2")
	ResetForTests()

	var leftRan, rightRan bool
	err := Join(
		func() error { leftRan = true; return nil },
		func() error { rightRan = true; return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !leftRan || !rightRan {
		t.Fatalf("expected both closures to run, left=%v right=%v", leftRan, rightRan)
	}

	wantErr := errors.New("boom")
	err = Join(func() error { return wantErr }, func() error { return nil })
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected error propagation, got %v", err)
	}
}

func TestJoinFallsBackWhenDisabled(t *testing.T) {
	t.Setenv("ARROWJOIN_NO_PARALLEL", "true")
	ResetForTests()

	if Enabled() {
		t.Fatalf("expected parallelism disabled")
	}

	var order []int
	err := Join(
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected sequential fallback order [1 2], got %v", order)
	}
}
