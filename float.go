package pathcut

import "math"

// AlmostEqual reports whether a and b are equal within tolerance. The
// tolerance is absolute for magnitudes up to 1 and relative beyond that.
//
// Two infinities are equal if they have the same sign. NaN is never equal to
// anything.
func AlmostEqual(a, b, tolerance float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	scale := max(1, math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= scale*tolerance
}
