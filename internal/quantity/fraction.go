package quantity

import "math"

const (
	eighthsTolerance = 0.02
	thirdsTolerance  = 0.05
	sixthsTolerance  = 0.03

	// maxExactWhole is the first magnitude at which float64 stops representing
	// every integer, so no fractional part can be recovered above it.
	maxExactWhole = 1 << 53
)

// Fraction is a non-negative mixed number with a kitchen-friendly denominator.
// A Denominator of 1 means the value is a whole number and Numerator is 0.
type Fraction struct {
	Whole       int64
	Numerator   int
	Denominator int
}

// IsWhole reports whether f has no fractional part.
func (f Fraction) IsWhole() bool {
	return f.Numerator == 0
}

// candidate is an improper fraction tested against a magnitude.
type candidate struct {
	num, den int
}

func (c candidate) value() float64 {
	return float64(c.num) / float64(c.den)
}

var (
	thirds = []candidate{{1, 3}, {2, 3}, {4, 3}, {5, 3}, {7, 3}, {8, 3}}
	sixths = []candidate{{1, 6}, {5, 6}, {7, 6}, {11, 6}}
)

// Approximate returns the kitchen fraction closest to magnitude under a fixed
// priority: the nearest eighth when it is within 0.02, then the first third
// within 0.05, then the first sixth within 0.03, and finally the nearest eighth
// regardless of distance. The order decides overlapping windows and must not
// be replaced by a plain nearest-fraction search, since displayed values
// depend on it.
//
// magnitude must be finite and non-negative; the sign is the caller's concern.
func Approximate(magnitude float64) Fraction {
	if magnitude <= 0 || math.IsNaN(magnitude) {
		return Fraction{Denominator: 1}
	}
	if magnitude >= maxExactWhole {
		return Fraction{Whole: wholeOf(math.Round(magnitude)), Denominator: 1}
	}

	eighths := math.Round(magnitude * 8)
	if math.Abs(magnitude-eighths/8) < eighthsTolerance {
		return fromImproper(int64(eighths), 8)
	}
	for _, c := range thirds {
		if math.Abs(magnitude-c.value()) < thirdsTolerance {
			return fromImproper(int64(c.num), c.den)
		}
	}
	for _, c := range sixths {
		if math.Abs(magnitude-c.value()) < sixthsTolerance {
			return fromImproper(int64(c.num), c.den)
		}
	}
	return fromImproper(int64(eighths), 8)
}

// fromImproper splits num/den into a whole part and a reduced proper fraction.
func fromImproper(num int64, den int) Fraction {
	whole := num / int64(den)
	rem := int(num % int64(den))
	if rem == 0 {
		return Fraction{Whole: whole, Denominator: 1}
	}
	g := gcd(rem, den)
	return Fraction{Whole: whole, Numerator: rem / g, Denominator: den / g}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// wholeOf converts an already-rounded magnitude to int64, saturating at the
// largest representable value.
func wholeOf(v float64) int64 {
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
