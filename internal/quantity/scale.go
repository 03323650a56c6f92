package quantity

import "math"

// Scale multiplies q by factor. No rounding is applied; approximation happens
// only when the result is formatted. A NaN operand yields 0.
func Scale(q, factor float64) float64 {
	if math.IsNaN(q) || math.IsNaN(factor) {
		return 0
	}
	return q * factor
}

// ScaleOptional is Scale for operands that may be absent; a nil operand yields 0.
func ScaleOptional(q, factor *float64) float64 {
	if q == nil || factor == nil {
		return 0
	}
	return Scale(*q, *factor)
}
