package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffIdentical(t *testing.T) {
	a := []float64{1, 2, 3}

	d, err := MaxAbsDiff(a, a)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if d != 0 {
		t.Fatalf("MaxAbsDiff = %v, want 0 for identical slices", d)
	}
}

func TestDropNegligible(t *testing.T) {
	c, e := DropNegligible([]float64{3, 0, -1e-9, 2}, []int{4, 3, 2, 0}, 1e-6)
	RequireSliceNearlyEqual(t, c, []float64{3, 2}, 0)
	RequireIntsEqual(t, e, []int{4, 0})
}

func TestDropNegligibleAll(t *testing.T) {
	c, e := DropNegligible([]float64{0}, []int{0}, 1e-6)
	if len(c) != 0 || len(e) != 0 {
		t.Fatalf("got %v %v, want empty", c, e)
	}
}
