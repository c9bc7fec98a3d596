package pathcut

import (
	"math"
)

// FatLine is the band around the line through a spline's endpoints that
// contains all of the spline's control points, and by the convex hull
// property, the whole curve. Min and Max are signed distances to Line; Min is
// never positive and Max is never negative.
type FatLine struct {
	Line Line
	Min  float64
	Max  float64
}

// FatLine returns the fat line of s. It reports false if the spline's
// endpoints coincide, as there is no line through them.
func (s Spline) FatLine() (FatLine, bool) {
	line := NewLine(s.Start(), s.End())
	if line.IsDegenerate() {
		return FatLine{}, false
	}
	fl := FatLine{Line: line}
	pts := s.Points()
	for _, pt := range pts[1 : len(pts)-1] {
		d := line.Distance(pt)
		fl.Min = min(fl.Min, d)
		fl.Max = max(fl.Max, d)
	}
	return fl, true
}

// Clip returns the parameter interval [t0, t1] of s outside of which s cannot
// lie within the fat line. It reports false if no part of s can lie within
// it.
//
// The distances of the control points to the fat line form the control points
// of an explicit Bézier curve (i/n, dᵢ) over [0, 1]. The interval is where the
// convex hull of those points lies between Min and Max. If the hull lies
// entirely within the band, the interval is [0, 1].
func (s Spline) Clip(fl FatLine) (t0, t1 float64, ok bool) {
	if fl.Line.IsDegenerate() {
		return 0, 1, true
	}
	pts := s.Points()
	n := float64(len(pts) - 1)
	var dist [4]Point
	for i, pt := range pts {
		dist[i] = Point{X: float64(i) / n, Y: fl.Line.Distance(pt)}
	}
	hull := ConvexHull(dist[:len(pts)])

	t0, t1 = math.Inf(1), math.Inf(-1)
	include := func(x float64) {
		t0 = min(t0, x)
		t1 = max(t1, x)
	}
	for i, a := range hull {
		if a.Y >= fl.Min && a.Y <= fl.Max {
			include(a.X)
		}
		b := hull[(i+1)%len(hull)]
		for _, y := range [2]float64{fl.Min, fl.Max} {
			if (a.Y-y)*(b.Y-y) < 0 {
				include(a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
	}
	if t0 > t1 {
		return 0, 0, false
	}
	return max(0, t0), min(1, t1), true
}

// interval is a parameter range [t0, t1] of an original spline.
type interval struct {
	t0, t1 float64
}

func (iv interval) mid() float64 { return 0.5 * (iv.t0 + iv.t1) }

// sub maps the local range [t0, t1] of the sub-spline covering iv back to the
// original spline.
func (iv interval) sub(t0, t1 float64) interval {
	w := iv.t1 - iv.t0
	return interval{iv.t0 + t0*w, iv.t0 + t1*w}
}

func (iv interval) halves() (interval, interval) {
	m := iv.mid()
	return interval{iv.t0, m}, interval{m, iv.t1}
}

// minClipReduction is the fraction of the interval a clip step has to remove
// before the recursion stops subdividing.
const minClipReduction = 0.2

// clipper finds the crossings of two curves with Bézier clipping. Ranges
// always refer to the original splines p and q, so crossings are reported as
// ratios on them.
type clipper struct {
	p, q      Spline
	tolerance float64
	maxDepth  int
	budget    int
	exhausted bool
	out       []Crossing
}

// clipCrossings returns the crossings of p and q, unsorted and possibly with
// duplicates.
func clipCrossings(p, q Spline, opts Options) []Crossing {
	opts = opts.resolve()
	c := &clipper{
		p:         p,
		q:         q,
		tolerance: opts.Tolerance(),
		maxDepth:  opts.MaxIterations,
		budget:    opts.MaxIterations * maxCurveCrossings,
	}
	c.find(interval{0, 1}, interval{0, 1}, true, 0)
	return c.out
}

func (c *clipper) emit(pr, qr interval) {
	t := pr.mid()
	c.out = append(c.out, Crossing{T: t, U: qr.mid(), Point: c.p.Eval(t)})
}

// spend takes one step from the work budget, reporting false once it is
// exhausted.
func (c *clipper) spend() bool {
	if c.budget <= 0 {
		if !c.exhausted {
			c.exhausted = true
			Logger().Debug("clip budget exhausted",
				"p", c.p.String(), "q", c.q.String(), "crossings", len(c.out))
		}
		return false
	}
	c.budget--
	return true
}

// find alternates between clipping q against the fat line of p and p against
// the fat line of q, narrowing pr and qr until both sub-curves are shorter
// than the tolerance.
func (c *clipper) find(pr, qr interval, clipQ bool, depth int) {
	if !c.spend() {
		return
	}

	p := c.p.Subsegment(pr.t0, pr.t1)
	q := c.q.Subsegment(qr.t0, qr.t1)
	tol := c.tolerance
	if !p.ControlBox().Inflate(tol, tol).Overlaps(q.ControlBox()) {
		return
	}
	pLen, qLen := p.ControlLength(), q.ControlLength()
	if pLen < tol && qLen < tol {
		c.emit(pr, qr)
		return
	}
	if depth >= c.maxDepth {
		Logger().Debug("clip depth cap reached",
			"depth", depth, "t", pr.mid(), "u", qr.mid())
		c.emit(pr, qr)
		return
	}
	if pLen < tol || qLen < tol {
		// The fat line of a sub-curve shorter than the tolerance has no
		// meaningful direction.
		c.settle(pr, qr, depth)
		return
	}

	var t0, t1 float64
	if clipQ {
		fl, ok := p.FatLine()
		t0, t1 = 0, 1
		if ok {
			if t0, t1, ok = q.Clip(fl); !ok {
				return
			}
		}
		qr = qr.sub(t0, t1)
	} else {
		fl, ok := q.FatLine()
		t0, t1 = 0, 1
		if ok {
			if t0, t1, ok = p.Clip(fl); !ok {
				return
			}
		}
		pr = pr.sub(t0, t1)
	}

	if t1-t0 > 1-minClipReduction {
		// Too little progress, most likely because of several crossings.
		// Split the longer curve to separate them.
		if pLen >= qLen {
			a, b := pr.halves()
			c.find(a, qr, !clipQ, depth+1)
			c.find(b, qr, !clipQ, depth+1)
		} else {
			a, b := qr.halves()
			c.find(pr, a, !clipQ, depth+1)
			c.find(pr, b, !clipQ, depth+1)
		}
		return
	}
	c.find(pr, qr, !clipQ, depth+1)
}

// settle locates the crossing of a sub-curve that has collapsed below the
// tolerance by bisecting the other one, keeping the halves whose control
// boxes still meet it. It emits at most one crossing and reports whether it
// did.
func (c *clipper) settle(pr, qr interval, depth int) bool {
	if !c.spend() {
		return false
	}

	p := c.p.Subsegment(pr.t0, pr.t1)
	q := c.q.Subsegment(qr.t0, qr.t1)
	tol := c.tolerance
	if !p.ControlBox().Inflate(tol, tol).Overlaps(q.ControlBox()) {
		return false
	}
	pLen, qLen := p.ControlLength(), q.ControlLength()
	if pLen < tol && qLen < tol || depth >= c.maxDepth {
		c.emit(pr, qr)
		return true
	}
	if pLen >= qLen {
		a, b := pr.halves()
		return c.settle(a, qr, depth+1) || c.settle(b, qr, depth+1)
	}
	a, b := qr.halves()
	return c.settle(pr, a, depth+1) || c.settle(pr, b, depth+1)
}
