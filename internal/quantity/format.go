package quantity

import (
	"math"
	"strconv"
)

// Format renders q as a mixed number such as "2", "¾" or "1 ½".
// NaN and infinities render as "". Negative values get a leading "-" unless
// they round to zero, so "-0" is never produced.
func Format(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return ""
	}
	magnitude := formatMagnitude(math.Abs(q))
	if q < 0 && magnitude != "0" {
		return "-" + magnitude
	}
	return magnitude
}

// FormatOptional is Format for a quantity that may be absent; nil renders as "".
func FormatOptional(q *float64) string {
	if q == nil {
		return ""
	}
	return Format(*q)
}

func formatMagnitude(m float64) string {
	if m >= maxExactWhole {
		return strconv.FormatFloat(math.Round(m), 'f', -1, 64)
	}
	f := Approximate(m)
	switch {
	case f.IsWhole():
		return strconv.FormatInt(f.Whole, 10)
	case f.Whole == 0:
		return Glyph(f.Numerator, f.Denominator)
	default:
		return strconv.FormatInt(f.Whole, 10) + " " + Glyph(f.Numerator, f.Denominator)
	}
}
