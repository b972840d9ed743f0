package poly

import (
	"math"
	"testing"
)

func TestPowInt(t *testing.T) {
	tests := []struct {
		x    float64
		exp  int
		want float64
	}{
		{2, 0, 1},
		{2, 1, 2},
		{2, 10, 1024},
		{-2, 3, -8},
		{-2, 4, 16},
		{2, -2, 0.25},
		{0, 3, 0},
		{0.5, 5, 0.03125},
	}

	for _, tt := range tests {
		if got := powInt(tt.x, tt.exp); got != tt.want {
			t.Errorf("powInt(%v, %d) = %v, want %v", tt.x, tt.exp, got, tt.want)
		}
	}

	if got := powInt(0, -1); !math.IsInf(got, 1) {
		t.Errorf("powInt(0, -1) = %v, want +Inf", got)
	}
}

func TestMathPowSmallExponentsExact(t *testing.T) {
	for _, x := range []float64{-3, -0.5, 0.5, 2, 7} {
		for exp := -8; exp <= 8; exp++ {
			if x == 0 && exp < 0 {
				continue
			}

			want := math.Pow(x, float64(exp))
			if got := mathPow(x, exp); math.Abs(got-want) > 1e-12*math.Max(1, math.Abs(want)) {
				t.Errorf("mathPow(%v, %d) = %v, want %v", x, exp, got, want)
			}
		}
	}
}
