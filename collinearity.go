package pathcut

import "fmt"

// collinearityTolerance bounds how far a control point may stray from the line
// through a spline's endpoints for the spline to still count as sloped.
const collinearityTolerance = 1e-6

// CollinearityKind classifies how a spline's control points are arranged.
type CollinearityKind int

// The order of the kinds matters: pairwise intersection sorts the two splines
// by kind to pick a solver.
const (
	// All control points coincide.
	PointCollinearity CollinearityKind = iota + 1
	// All control points share the same y.
	HorizontalCollinearity
	// All control points share the same x.
	VerticalCollinearity
	// All control points lie on y = m·x + b.
	SlopeCollinearity
	// The control points don't lie on a common line.
	CurveCollinearity
)

func (k CollinearityKind) String() string {
	switch k {
	case PointCollinearity:
		return "point"
	case HorizontalCollinearity:
		return "horizontal"
	case VerticalCollinearity:
		return "vertical"
	case SlopeCollinearity:
		return "slope"
	case CurveCollinearity:
		return "curve"
	default:
		return fmt.Sprintf("CollinearityKind(%d)", int(k))
	}
}

// Collinearity classifies whether the control points of a spline lie on a
// common line. M and B are only meaningful for [SlopeCollinearity], where they
// describe the line y = M·x + B through the spline's endpoints.
type Collinearity struct {
	Kind CollinearityKind
	M    float64
	B    float64
}

// IsStraight reports whether the spline is a straight line, as opposed to a
// point or a curve.
func (c Collinearity) IsStraight() bool {
	switch c.Kind {
	case HorizontalCollinearity, VerticalCollinearity, SlopeCollinearity:
		return true
	default:
		return false
	}
}

func (c Collinearity) String() string {
	if c.Kind == SlopeCollinearity {
		return fmt.Sprintf("slope(%g, %g)", c.M, c.B)
	}
	return c.Kind.String()
}

// classify computes the collinearity of a spline's control points.
func classify(pts []Point) Collinearity {
	if len(pts) < 2 {
		return Collinearity{Kind: PointCollinearity}
	}

	horizontal, vertical := true, true
	for _, pt := range pts[1:] {
		horizontal = horizontal && pt.Y == pts[0].Y
		vertical = vertical && pt.X == pts[0].X
	}
	switch {
	case horizontal && vertical:
		return Collinearity{Kind: PointCollinearity}
	case horizontal:
		return Collinearity{Kind: HorizontalCollinearity}
	case vertical:
		return Collinearity{Kind: VerticalCollinearity}
	}

	start, end := pts[0], pts[len(pts)-1]
	if start.X == end.X {
		// A closed or vertically aligned curve.
		return Collinearity{Kind: CurveCollinearity}
	}
	m := (start.Y - end.Y) / (start.X - end.X)
	b := start.Y - m*start.X
	for _, pt := range pts {
		if !AlmostEqual(pt.Y, m*pt.X+b, collinearityTolerance) {
			return Collinearity{Kind: CurveCollinearity}
		}
	}
	return Collinearity{Kind: SlopeCollinearity, M: m, B: b}
}
