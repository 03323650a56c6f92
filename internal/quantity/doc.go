// Package quantity formats and scales ingredient amounts for display.
//
// Amounts are approximated to kitchen fractions (eighths, thirds and sixths)
// and rendered as mixed numbers with Unicode fraction glyphs, e.g. 1.5 becomes
// "1 ½". Serving descriptions such as "Serves 4" can be rewritten under a
// scale factor while every non-numeric byte is left untouched.
//
// Every function in this package is pure. Invalid input degrades to "" or 0
// instead of an error, so callers can use the results directly while rendering.
package quantity
