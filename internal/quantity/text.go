package quantity

import (
	"math"
	"strconv"
	"strings"
)

// ScaleText multiplies every unsigned number embedded in text by factor and
// returns the rewritten string. A number is a maximal run of ASCII digits,
// optionally followed by '.' and more digits. Results that are whole numbers
// are written as plain integers; anything else is written with Format.
// Everything between numbers is copied unchanged.
//
// Numbers are scaled independently, so "Makes 12 cookies in 30 minutes"
// doubles both the yield and the time. A factor of 1, NaN or ±Inf leaves text
// as it is.
func ScaleText(text string, factor float64) string {
	if text == "" || factor == 1 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if !isDigit(text[i]) {
			b.WriteByte(text[i])
			i++
			continue
		}
		end := scanNumber(text, i)
		b.WriteString(scaleToken(text[i:end], factor))
		i = end
	}
	return b.String()
}

// ScaleTextOptional is ScaleText for text that may be absent; nil yields "".
func ScaleTextOptional(text *string, factor float64) string {
	if text == nil {
		return ""
	}
	return ScaleText(*text, factor)
}

// LeadingNumber returns the first number embedded in text, using the same
// scanning rules as ScaleText.
func LeadingNumber(text string) (float64, bool) {
	for i := 0; i < len(text); i++ {
		if isDigit(text[i]) {
			v, err := strconv.ParseFloat(text[i:scanNumber(text, i)], 64)
			return v, err == nil
		}
	}
	return 0, false
}

// scanNumber returns the end offset of the number starting at text[start].
func scanNumber(text string, start int) int {
	i := start
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i+1 < len(text) && text[i] == '.' && isDigit(text[i+1]) {
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
		}
	}
	return i
}

func scaleToken(token string, factor float64) string {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return token
	}
	scaled := v * factor
	if math.IsInf(scaled, 0) || math.IsNaN(scaled) {
		return token
	}
	if scaled == math.Trunc(scaled) {
		if scaled == 0 {
			return "0"
		}
		return strconv.FormatFloat(scaled, 'f', -1, 64)
	}
	return Format(scaled)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
