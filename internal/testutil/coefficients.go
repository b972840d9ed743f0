package testutil

import "math/rand"

// DeterministicCoefficients returns n non-zero integer-valued coefficients
// in [-limit, limit] drawn with a fixed seed. Sums and products of such
// values are exact in float64 for moderate sizes, so results do not depend
// on summation order.
func DeterministicCoefficients(seed int64, n, limit int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		v := rng.Intn(limit) + 1
		if rng.Intn(2) == 0 {
			v = -v
		}
		out[i] = float64(v)
	}
	return out
}

// DeterministicExponents returns n exponents in [lo, hi] drawn with a fixed
// seed. Repeats are possible.
func DeterministicExponents(seed int64, n, lo, hi int) []int {
	out := make([]int, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}
	return out
}
