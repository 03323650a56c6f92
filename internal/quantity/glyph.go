package quantity

import "strconv"

var glyphs = map[[2]int]string{
	{1, 2}: "½",
	{1, 3}: "⅓",
	{2, 3}: "⅔",
	{1, 4}: "¼",
	{3, 4}: "¾",
	{1, 5}: "⅕",
	{2, 5}: "⅖",
	{3, 5}: "⅗",
	{4, 5}: "⅘",
	{1, 6}: "⅙",
	{5, 6}: "⅚",
	{1, 8}: "⅛",
	{3, 8}: "⅜",
	{5, 8}: "⅝",
	{7, 8}: "⅞",
}

// Glyph returns the Unicode vulgar fraction for numerator/denominator, or the
// plain "n/d" text when no single glyph exists.
func Glyph(numerator, denominator int) string {
	if g, ok := glyphs[[2]int{numerator, denominator}]; ok {
		return g
	}
	return strconv.Itoa(numerator) + "/" + strconv.Itoa(denominator)
}
