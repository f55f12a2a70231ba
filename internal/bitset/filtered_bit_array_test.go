package bitset

import (
	"reflect"
	"testing"
)

func TestOnSetBitsFromAscendingOrder(t *testing.T) {
	fb := FromLenZeroed(200)
	set := []int{0, 1, 63, 64, 65, 127, 128, 199}
	for _, i := range set {
		fb.SetBit(i)
	}

	var got []int
	fb.OnSetBitsFrom(0, func(idx int) { got = append(got, idx) })
	if !reflect.DeepEqual(got, set) {
		t.Fatalf("got %v, want %v", got, set)
	}
}

func TestOnSetBitsFromRespectsStart(t *testing.T) {
	fb := FromLenZeroed(200)
	for _, i := range []int{5, 70, 130, 199} {
		fb.SetBit(i)
	}

	var got []int
	fb.OnSetBitsFrom(70, func(idx int) { got = append(got, idx) })
	if !reflect.DeepEqual(got, []int{70, 130, 199}) {
		t.Fatalf("got %v", got)
	}
}

func TestOnSetBitsFromSkipsAllZeroWords(t *testing.T) {
	fb := FromLenZeroed(4096)
	fb.SetBit(4095)

	var visits int
	fb.OnSetBitsFrom(0, func(idx int) {
		visits++
		if idx != 4095 {
			t.Fatalf("unexpected bit %d", idx)
		}
	})
	if visits != 1 {
		t.Fatalf("expected 1 visit, got %d", visits)
	}
}

func TestOnSetBitsFromEmpty(t *testing.T) {
	fb := FromLenZeroed(64)
	var visits int
	fb.OnSetBitsFrom(0, func(idx int) { visits++ })
	if visits != 0 {
		t.Fatalf("expected no visits on empty bit array, got %d", visits)
	}
}

func TestOnSetBitsFromStartPastEnd(t *testing.T) {
	fb := FromLenZeroed(64)
	fb.SetBit(10)
	var visits int
	fb.OnSetBitsFrom(100, func(idx int) { visits++ })
	if visits != 0 {
		t.Fatalf("expected no visits when start >= length, got %d", visits)
	}
}
