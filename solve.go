package pathcut

import (
	"math"
	"slices"
)

// SolveLinear finds the root of a·x + b = 0.
//
// It reports false when a is zero, including the degenerate case where every
// x satisfies the equation.
func SolveLinear(a, b float64) (float64, bool) {
	if a == 0 {
		return 0, false
	}
	return -b / a, true
}

// SolveQuadratic finds real roots of a·x² + b·x + c = 0.
//
// When a is zero, the equation is solved as a linear one. With a positive
// discriminant two roots are returned, with a zero discriminant the repeated
// root is returned once. Roots are sorted in increasing order.
func SolveQuadratic(a, b, c float64) ([2]float64, int) {
	if a == 0 {
		if x, ok := SolveLinear(b, c); ok {
			return [2]float64{x}, 1
		}
		return [2]float64{}, 0
	}

	d := b*b - 4.0*a*c
	if d < 0 {
		return [2]float64{}, 0
	} else if d == 0 {
		return [2]float64{-b / (2.0 * a)}, 1
	}
	// See https://math.stackexchange.com/questions/866331
	q := -0.5 * (b + math.Copysign(math.Sqrt(d), b))
	x1 := q / a
	x2 := c / q
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return [2]float64{x1, x2}, 2
}

// SolveCubic finds real roots of a·x³ + b·x² + c·x + d = 0.
//
// When a is zero, the equation is solved as a quadratic one. Otherwise the
// cubic is normalized to its depressed form; three real roots are found with
// the trigonometric method, and a single real root with Cardano's formula.
// Roots are sorted in increasing order.
func SolveCubic(a, b, c, d float64) ([3]float64, int) {
	if a == 0 {
		roots, n := SolveQuadratic(b, c, d)
		return [3]float64{roots[0], roots[1]}, n
	}

	a1 := b / a
	a2 := c / a
	a3 := d / a

	q := (3.0*a2 - a1*a1) / 9.0
	r := (9.0*a1*a2 - 27.0*a3 - 2.0*a1*a1*a1) / 54.0
	disc := q*q*q + r*r
	shift := a1 / 3.0

	if disc > 0 {
		sq := math.Sqrt(disc)
		s := math.Cbrt(r + sq)
		t := math.Cbrt(r - sq)
		return [3]float64{s + t - shift}, 1
	}
	if q == 0 {
		// disc == 0 and q == 0 imply r == 0: a triple root.
		return [3]float64{-shift}, 1
	}

	th := math.Acos(max(-1, min(1, r/math.Sqrt(-q*q*q))))
	m := 2.0 * math.Sqrt(-q)
	roots := [3]float64{
		m*math.Cos(th/3.0) - shift,
		m*math.Cos(th/3.0+2.0*math.Pi/3.0) - shift,
		m*math.Cos(th/3.0+4.0*math.Pi/3.0) - shift,
	}
	slices.Sort(roots[:])
	return roots, 3
}
