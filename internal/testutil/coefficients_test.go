package testutil

import (
	"slices"
	"testing"
)

func TestDeterministicCoefficients(t *testing.T) {
	c := DeterministicCoefficients(42, 64, 9)
	if len(c) != 64 {
		t.Fatalf("len = %d, want 64", len(c))
	}
	for i, v := range c {
		if v == 0 || v < -9 || v > 9 {
			t.Fatalf("c[%d] = %v, want non-zero in [-9, 9]", i, v)
		}
		if v != float64(int(v)) {
			t.Fatalf("c[%d] = %v is not integer-valued", i, v)
		}
	}
}

func TestDeterministicCoefficientsReproducible(t *testing.T) {
	a := DeterministicCoefficients(7, 32, 5)
	b := DeterministicCoefficients(7, 32, 5)
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different coefficients")
	}
}

func TestDeterministicExponents(t *testing.T) {
	e := DeterministicExponents(3, 100, -4, 6)
	for i, v := range e {
		if v < -4 || v > 6 {
			t.Fatalf("e[%d] = %d out of range", i, v)
		}
	}
	if !slices.Equal(e, DeterministicExponents(3, 100, -4, 6)) {
		t.Fatal("same seed produced different exponents")
	}
}
