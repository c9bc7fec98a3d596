package pathcut

import (
	"fmt"
	"strings"
)

// SplineKind is the kind of Bézier a [Spline] describes.
type SplineKind int

const (
	// A line segment.
	SegmentKind SplineKind = iota + 1
	// A quadratic Bézier.
	QuadKind
	// A cubic Bézier.
	CubicKind
)

// Arity returns the number of control points of splines of this kind,
// including the start and end points.
func (k SplineKind) Arity() int {
	switch k {
	case SegmentKind:
		return 2
	case QuadKind:
		return 3
	case CubicKind:
		return 4
	default:
		panic(fmt.Sprintf("invalid SplineKind %d", int(k)))
	}
}

func (k SplineKind) String() string {
	switch k {
	case SegmentKind:
		return "segment"
	case QuadKind:
		return "quad"
	case CubicKind:
		return "cubic"
	default:
		return fmt.Sprintf("SplineKind(%d)", int(k))
	}
}

// Spline is a line segment, quadratic Bézier or cubic Bézier. This type acts
// as a tagged union over the three kinds, with the number of control points
// given by the kind's arity. The first control point is the start, the last
// one is the end.
//
// Splines are immutable. Their [Collinearity] is computed once, when they are
// constructed. The zero value is not a valid spline; use [NewSpline],
// [Segment], [Quad] or [Cubic].
type Spline struct {
	kind         SplineKind
	pts          [4]Point
	collinearity Collinearity
}

// NewSpline returns a spline of the given kind. Extra points beyond the kind's
// arity are ignored; passing fewer points panics.
func NewSpline(kind SplineKind, pts ...Point) Spline {
	n := kind.Arity()
	if len(pts) < n {
		panic(fmt.Sprintf("%s spline needs %d points, got %d", kind, n, len(pts)))
	}
	s := Spline{kind: kind}
	copy(s.pts[:], pts[:n])
	s.collinearity = classify(s.pts[:n])
	return s
}

// Segment returns the line segment from p0 to p1.
func Segment(p0, p1 Point) Spline { return NewSpline(SegmentKind, p0, p1) }

// Quad returns the quadratic Bézier from p0 to p2 with control point p1.
func Quad(p0, p1, p2 Point) Spline { return NewSpline(QuadKind, p0, p1, p2) }

// Cubic returns the cubic Bézier from p0 to p3 with control points p1 and p2.
func Cubic(p0, p1, p2, p3 Point) Spline { return NewSpline(CubicKind, p0, p1, p2, p3) }

func (s Spline) Kind() SplineKind { return s.kind }

// Collinearity returns the spline's collinearity classification.
func (s Spline) Collinearity() Collinearity { return s.collinearity }

// Points returns the spline's control points.
func (s Spline) Points() []Point {
	if s.kind == 0 {
		return nil
	}
	return s.pts[:s.kind.Arity()]
}

func (s Spline) Start() Point { return s.pts[0] }

func (s Spline) End() Point {
	if s.kind == 0 {
		return Point{}
	}
	return s.pts[s.kind.Arity()-1]
}

// Equal reports whether s and o are of the same kind and have identical
// control points.
func (s Spline) Equal(o Spline) bool {
	return s == o
}

func (s Spline) String() string {
	var sb strings.Builder
	sb.WriteString(s.kind.String())
	sb.WriteByte('[')
	for i, pt := range s.Points() {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Eval evaluates the Bézier curve described by the control points at t.
func (s Spline) Eval(t float64) Point {
	pts := s.pts
	n := s.kind.Arity()
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			pts[i] = pts[i].Lerp(pts[i+1], t)
		}
	}
	return pts[0]
}

// deCasteljau subdivides the Bézier curve described by pts at t, returning the
// control points of both halves.
func deCasteljau(pts []Point, t float64) (left, right [4]Point) {
	n := len(pts)
	var work [4]Point
	copy(work[:], pts)
	left[0] = work[0]
	right[n-1] = work[n-1]
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			work[i] = work[i].Lerp(work[i+1], t)
		}
		left[k] = work[0]
		right[n-1-k] = work[n-k-1]
	}
	return left, right
}

// Subsegment returns the part of the Bézier curve between t0 and t1 as a
// spline of the same kind.
//
// Unlike [Spline.SplitAt], this always treats the spline as a Bézier curve,
// even when its control points are collinear.
func (s Spline) Subsegment(t0, t1 float64) Spline {
	if t0 <= 0 && t1 >= 1 {
		return s
	}
	n := s.kind.Arity()
	if t0 >= t1 {
		pt := s.Eval(t0)
		return NewSpline(s.kind, pt, pt, pt, pt)
	}
	pts := s.pts
	if t1 < 1 {
		pts, _ = deCasteljau(pts[:n], t1)
	}
	if t0 > 0 {
		_, pts = deCasteljau(pts[:n], t0/t1)
	}
	return NewSpline(s.kind, pts[:n]...)
}

// SplitAt splits the spline at ratio t into two splines.
//
// Straight splines are split at the linear interpolation of their endpoints
// and produce line segments, whatever their kind. Curves are split with de
// Casteljau's algorithm and keep their kind.
//
// SplitAt panics if t isn't in the open interval (0, 1) or if the spline is a
// point.
func (s Spline) SplitAt(t float64) (Spline, Spline) {
	if !(t > 0 && t < 1) {
		panic(fmt.Sprintf("split ratio %g is outside of (0, 1)", t))
	}
	switch s.collinearity.Kind {
	case PointCollinearity:
		panic("cannot split a point spline")
	case HorizontalCollinearity, VerticalCollinearity, SlopeCollinearity:
		start, end := s.Start(), s.End()
		pt := start.Lerp(end, t)
		return Segment(start, pt), Segment(pt, end)
	case CurveCollinearity:
		n := s.kind.Arity()
		left, right := deCasteljau(s.pts[:n], t)
		return NewSpline(s.kind, left[:n]...), NewSpline(s.kind, right[:n]...)
	default:
		panic(fmt.Sprintf("unhandled collinearity %v", s.collinearity.Kind))
	}
}

// SplitAtRatios splits the spline at each of the ratios, which must be sorted
// in strictly increasing order and lie in (0, 1). It returns len(ts)+1
// splines. Each ratio refers to the original spline; after every split the
// remaining ratios are rescaled to the remaining part.
func (s Spline) SplitAtRatios(ts ...float64) []Spline {
	out := make([]Spline, 0, len(ts)+1)
	rest := s
	prev := 0.0
	for _, t := range ts {
		if t <= prev {
			panic(fmt.Sprintf("split ratios must be increasing, got %g after %g", t, prev))
		}
		var head Spline
		head, rest = rest.SplitAt((t - prev) / (1 - prev))
		out = append(out, head)
		prev = t
	}
	return append(out, rest)
}

// ControlLength returns the length of the control polygon, which bounds the
// arc length of the curve from above.
func (s Spline) ControlLength() float64 {
	pts := s.Points()
	var l float64
	for i := 1; i < len(pts); i++ {
		l += pts[i-1].Distance(pts[i])
	}
	return l
}

// ControlBox returns the smallest rectangle enclosing all control points. By
// the convex hull property of Béziers, it encloses the curve.
func (s Spline) ControlBox() Rect {
	pts := s.Points()
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Reverse returns a spline describing the same curve as s, but with the
// control points in reverse order.
func (s Spline) Reverse() Spline {
	pts := s.Points()
	rev := make([]Point, len(pts))
	for i, pt := range pts {
		rev[len(pts)-1-i] = pt
	}
	return NewSpline(s.kind, rev...)
}

// PathElement returns the path element that draws the spline from the current
// point, discarding the spline's start point.
func (s Spline) PathElement() PathElement {
	switch s.kind {
	case SegmentKind:
		return LineTo(s.pts[1])
	case QuadKind:
		return QuadTo(s.pts[1], s.pts[2])
	case CubicKind:
		return CubicTo(s.pts[1], s.pts[2], s.pts[3])
	default:
		panic(fmt.Sprintf("invalid SplineKind %d", int(s.kind)))
	}
}
