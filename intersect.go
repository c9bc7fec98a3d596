package pathcut

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Crossing is a point where two splines intersect.
type Crossing struct {
	// The ratio at which the crossing occurs on the first spline.
	T float64
	// The ratio at which the crossing occurs on the second spline.
	U float64
	// The crossing's position.
	Point Point
}

// Crossings returns the crossings of s with o, sorted by their ratio on s.
// Crossings closer to each other than 100 times the tolerance are reported
// once. A spline has no crossings with itself.
//
// Pairs of straight splines are solved algebraically, a straight spline and a
// curve by solving for the roots of the curve's distance to the line, and two
// curves with Bézier clipping.
func (s Spline) Crossings(o Spline, opts Options) []Crossing {
	if s == o {
		return nil
	}
	opts = opts.resolve()
	return normalizeCrossings(crossings(s, o, opts), opts)
}

// Intersections splits s at its crossings with o, using the default options.
// See [Spline.IntersectionsOpt].
func (s Spline) Intersections(o Spline) []Spline {
	return s.IntersectionsOpt(o, Options{})
}

// IntersectionsOpt splits s at its crossings with o and returns the pieces in
// order, so that together they trace s. Crossings at the ends of s don't split
// it. If s doesn't cross o, the result is empty.
func (s Spline) IntersectionsOpt(o Spline, opts Options) []Spline {
	opts = opts.resolve()
	return s.splitAtCrossings(s.Crossings(o, opts), opts.Tolerance())
}

func crossings(s, o Spline, opts Options) []Crossing {
	sc, oc := s.collinearity, o.collinearity
	switch {
	case sc.Kind == PointCollinearity || oc.Kind == PointCollinearity:
		return nil
	case sc.IsStraight() && oc.IsStraight():
		c, ok := lineCrossing(s, o)
		if !ok {
			return nil
		}
		return []Crossing{c}
	case sc.IsStraight():
		return lineCurveCrossings(s, o, opts.Tolerance())
	case oc.IsStraight():
		cs := lineCurveCrossings(o, s, opts.Tolerance())
		for i := range cs {
			cs[i].T, cs[i].U = cs[i].U, cs[i].T
		}
		return cs
	default:
		return clipCrossings(s, o, opts)
	}
}

// lineCrossing intersects two straight splines.
func lineCrossing(s, o Spline) (Crossing, bool) {
	a, b := s, o
	if a.collinearity.Kind > b.collinearity.Kind {
		a, b = b, a
	}
	ac, bc := a.collinearity, b.collinearity

	var pt Point
	switch {
	case ac.Kind == bc.Kind && ac.Kind != SlopeCollinearity:
		// Parallel horizontal or vertical lines.
		return Crossing{}, false
	case ac.Kind == HorizontalCollinearity && bc.Kind == VerticalCollinearity:
		pt = Pt(b.Start().X, a.Start().Y)
	case ac.Kind == HorizontalCollinearity && bc.Kind == SlopeCollinearity:
		y := a.Start().Y
		pt = Pt((y-bc.B)/bc.M, y)
	case ac.Kind == VerticalCollinearity && bc.Kind == SlopeCollinearity:
		x := a.Start().X
		pt = Pt(x, bc.M*x+bc.B)
	case ac.Kind == SlopeCollinearity && bc.Kind == SlopeCollinearity:
		if ac.M == bc.M {
			return Crossing{}, false
		}
		var ok bool
		pt, ok = NewLine(a.Start(), a.End()).CrossingPoint(NewLine(b.Start(), b.End()))
		if !ok {
			return Crossing{}, false
		}
	default:
		panic(fmt.Sprintf("unreachable collinearity pairing %v and %v", ac.Kind, bc.Kind))
	}

	sl := NewLine(s.Start(), s.End())
	ol := NewLine(o.Start(), o.End())
	if !sl.Contains(pt) || !ol.Contains(pt) {
		return Crossing{}, false
	}
	return Crossing{T: sl.Project(pt), U: ol.Project(pt), Point: pt}, true
}

// lineCurveCrossings intersects a straight spline with a curve by solving for
// the roots of the curve's signed distance to the line. T refers to the
// straight spline, U to the curve. Roots up to tol outside of [0, 1] count
// as crossings at the curve's ends.
func lineCurveCrossings(straight, curve Spline, tol float64) []Crossing {
	l := NewLine(straight.Start(), straight.End())
	pts := curve.Points()
	var d [4]float64
	for i, pt := range pts {
		d[i] = l.Distance(pt)
	}
	dist := d[:len(pts)]

	var roots [3]float64
	var n int
	switch len(dist) {
	case 3:
		var r [2]float64
		r, n = SolveQuadratic(
			dist[0]-2*dist[1]+dist[2],
			2*(dist[1]-dist[0]),
			dist[0],
		)
		copy(roots[:], r[:n])
	case 4:
		roots, n = SolveCubic(
			-dist[0]+3*dist[1]-3*dist[2]+dist[3],
			3*dist[0]-6*dist[1]+3*dist[2],
			3*(dist[1]-dist[0]),
			dist[0],
		)
	default:
		panic(fmt.Sprintf("unreachable: %s spline classified as a curve", curve.kind))
	}

	var out []Crossing
	for _, u := range roots[:n] {
		u = polishRoot(dist, u)
		if u < -tol || u > 1+tol {
			continue
		}
		u = min(max(u, 0), 1)
		pt := curve.Eval(u)
		if !l.Contains(pt) {
			continue
		}
		out = append(out, Crossing{T: l.Project(pt), U: u, Point: pt})
	}
	return out
}

// bernstein evaluates the scalar Bézier with coefficients c and its derivative
// at t.
func bernstein(c []float64, t float64) (v, dv float64) {
	var work [4]float64
	n := copy(work[:], c)
	for k := 1; k < n; k++ {
		if k == n-1 {
			dv = float64(n-1) * (work[1] - work[0])
		}
		for i := 0; i < n-k; i++ {
			work[i] = (1-t)*work[i] + t*work[i+1]
		}
	}
	return work[0], dv
}

// polishRoot refines a root of the scalar Bézier with coefficients c with a
// few Newton steps, keeping only steps that reduce the residual.
func polishRoot(c []float64, t float64) float64 {
	v, dv := bernstein(c, t)
	for range 4 {
		if v == 0 || dv == 0 {
			break
		}
		nt := t - v/dv
		nv, ndv := bernstein(c, nt)
		if math.Abs(nv) >= math.Abs(v) {
			break
		}
		t, v, dv = nt, nv, ndv
	}
	return t
}

// normalizeCrossings clamps crossings to the splines, sorts them by T and
// merges those closer than the merge distance.
func normalizeCrossings(cs []Crossing, opts Options) []Crossing {
	tol := opts.Tolerance()
	out := cs[:0]
	for _, c := range cs {
		if c.T < -tol || c.T > 1+tol || c.U < -tol || c.U > 1+tol {
			continue
		}
		c.T = min(max(c.T, 0), 1)
		c.U = min(max(c.U, 0), 1)
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b Crossing) int {
		return cmp.Compare(a.T, b.T)
	})

	merge := opts.mergeDistance()
	merged := out[:0]
	for _, c := range out {
		if n := len(merged); n > 0 && merged[n-1].Point.Distance(c.Point) < merge {
			continue
		}
		merged = append(merged, c)
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// splitAtCrossings splits s at the crossings whose ratio lies strictly inside
// (tol, 1-tol). The crossings must be sorted by T.
func (s Spline) splitAtCrossings(cs []Crossing, tol float64) []Spline {
	var inner []Crossing
	last := tol
	for _, c := range cs {
		if c.T > last && c.T < 1-tol {
			inner = append(inner, c)
			last = c.T + tol
		}
	}
	if len(inner) == 0 {
		return nil
	}

	if s.collinearity.IsStraight() {
		// Split at the crossing points themselves, which are exact for
		// line/line crossings. Snap them onto axis-aligned lines so that the
		// pieces keep their classification.
		out := make([]Spline, 0, len(inner)+1)
		prev := s.Start()
		for _, c := range inner {
			pt := c.Point
			switch s.collinearity.Kind {
			case HorizontalCollinearity:
				pt.Y = s.Start().Y
			case VerticalCollinearity:
				pt.X = s.Start().X
			}
			out = append(out, Segment(prev, pt))
			prev = pt
		}
		return append(out, Segment(prev, s.End()))
	}

	ts := make([]float64, len(inner))
	for i, c := range inner {
		ts[i] = c.T
	}
	return s.SplitAtRatios(ts...)
}
