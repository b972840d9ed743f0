//go:build !fastmath

package poly

import "math"

// mathPow computes x^exp using standard library math.
func mathPow(x float64, exp int) float64 {
	return math.Pow(x, float64(exp))
}
