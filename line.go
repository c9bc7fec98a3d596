package pathcut

import "math"

// Line is an infinite line through two points, stored in normalized implicit
// form a·x + b·y + c = 0 with a² + b² = 1. This makes [Line.Distance] the signed
// perpendicular distance of a point to the line, positive on the left when
// walking from P0 to P1 in a y-up coordinate system.
//
// A line through two coincident points is degenerate; all of its coefficients
// are zero and every distance is zero.
type Line struct {
	P0 Point
	P1 Point

	a, b, c float64
}

// NewLine returns the line through p0 and p1.
func NewLine(p0, p1 Point) Line {
	a := p0.Y - p1.Y
	b := p1.X - p0.X
	c := p0.X*p1.Y - p1.X*p0.Y
	if d := math.Hypot(a, b); d != 0 {
		a /= d
		b /= d
		c /= d
	} else {
		a, b, c = 0, 0, 0
	}
	return Line{P0: p0, P1: p1, a: a, b: b, c: c}
}

// Coefficients returns the normalized coefficients (a, b, c) of the line's
// implicit form.
func (l Line) Coefficients() (a, b, c float64) {
	return l.a, l.b, l.c
}

// Distance returns the signed perpendicular distance of pt to the line.
func (l Line) Distance(pt Point) float64 {
	return l.a*pt.X + l.b*pt.Y + l.c
}

// IsDegenerate reports whether the line was built from coincident points.
func (l Line) IsDegenerate() bool {
	return l.a == 0 && l.b == 0
}

// Length returns the distance between the two points defining the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Project returns the parameter of the orthogonal projection of pt onto the
// line, with 0 at P0 and 1 at P1. It returns 0 for degenerate lines.
func (l Line) Project(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	dd := d.Hypot2()
	if dd == 0 {
		return 0
	}
	return pt.Sub(l.P0).Dot(d) / dd
}

// CrossingPoint computes the point where two lines, if extended to infinity,
// would cross. It reports false for parallel or degenerate lines.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Contains reports whether pt, assumed to lie on the line, falls within the
// extent of the segment P0–P1.
//
// With ad = |P0 pt|, bd = |P0 P1| and cd = |P1 pt|, the point lies on the
// segment iff the angle at P0 is not obtuse (ad² + bd² ≥ cd²) and pt is no
// farther from either end than the ends are from each other
// (ad² + cd² ≤ bd²).
func (l Line) Contains(pt Point) bool {
	ad2 := l.P0.DistanceSquared(pt)
	bd2 := l.P0.DistanceSquared(l.P1)
	cd2 := l.P1.DistanceSquared(pt)
	return ad2+bd2 >= cd2 && ad2+cd2 <= bd2
}
