package poly

// powInt computes x^exp by repeated squaring.
func powInt(x float64, exp int) float64 {
	if exp < 0 {
		return 1 / powInt(x, -exp)
	}

	result := 1.0
	for exp > 0 {
		if exp&1 == 1 {
			result *= x
		}

		x *= x
		exp >>= 1
	}

	return result
}
