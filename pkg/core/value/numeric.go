package value

import "math"

// Mod implements the surface language's modulo, where a nonzero result takes
// the sign of the divisor (-7 % 3 is 2, 7 % -3 is -2).
func Mod(a, b float64) float64 {
	m := math.Mod(a, b)
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
