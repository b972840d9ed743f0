//go:build fastmath

package poly

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// exactPowLimit is the largest exponent magnitude computed exactly by
// repeated squaring. Larger exponents on positive bases use the
// approximation.
const exactPowLimit = 64

// mathPow computes x^exp using fast approximation for large exponents.
// Uses the identity: x^e = e^(e * ln(x))
// Zero and negative bases fall back to math.Pow, which handles the sign
// of odd powers and the poles at zero.
func mathPow(x float64, exp int) float64 {
	switch {
	case exp >= -exactPowLimit && exp <= exactPowLimit:
		return powInt(x, exp)
	case x <= 0:
		return math.Pow(x, float64(exp))
	}

	return approx.FastExp(float64(exp) * approx.FastLog(x))
}
