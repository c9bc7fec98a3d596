package pathcut

import (
	"bytes"
	"cmp"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestFatLine(t *testing.T) {
	q := Quad(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	fl, ok := q.FatLine()
	if !ok {
		t.Fatal("expected a fat line")
	}
	if fl.Min != 0 || fl.Max != 2 {
		t.Errorf("got band [%v, %v], want [0, 2]", fl.Min, fl.Max)
	}

	c := Cubic(Pt(0, 0), Pt(1, 1), Pt(2, -3), Pt(4, 0))
	fl, ok = c.FatLine()
	if !ok {
		t.Fatal("expected a fat line")
	}
	diff(t, [2]float64{-3, 1}, [2]float64{fl.Min, fl.Max}, cmpopts.EquateApprox(0, 1e-12))

	// Segments have no interior points, the band collapses to the line.
	fl, _ = Segment(Pt(0, 0), Pt(3, 4)).FatLine()
	if fl.Min != 0 || fl.Max != 0 {
		t.Errorf("got band [%v, %v], want [0, 0]", fl.Min, fl.Max)
	}

	if _, ok := Cubic(Pt(0, 0), Pt(1, 1), Pt(-1, 1), Pt(0, 0)).FatLine(); ok {
		t.Error("closed curve shouldn't have a fat line")
	}
}

func TestClip(t *testing.T) {
	band := FatLine{Line: NewLine(Pt(0, 0), Pt(10, 0)), Min: -1, Max: 1}
	opt := cmpopts.EquateApprox(0, 1e-12)
	tests := []struct {
		name   string
		s      Spline
		t0, t1 float64
		ok     bool
	}{
		{"crossing", Segment(Pt(0, -5), Pt(10, 5)), 0.4, 0.6, true},
		{"inside", Segment(Pt(0, 0.5), Pt(10, -0.5)), 0, 1, true},
		{"outside", Segment(Pt(0, 5), Pt(10, 6)), 0, 0, false},
		{"entering", Segment(Pt(0, 0), Pt(10, 4)), 0, 0.25, true},
		{"quad hull", Quad(Pt(0, 3), Pt(5, -3), Pt(10, 3)), 1.0 / 6, 5.0 / 6, true},
		// Spacing the distances by control polygon length would put the
		// lower bound at 0.2146, past the curve's entry into the band.
		{"uneven polygon", Cubic(Pt(0, 4), Pt(9, -4), Pt(10, -4), Pt(10, 4)), 1.0 / 8, 7.0 / 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := tt.s.Clip(band)
			if ok != tt.ok {
				t.Fatalf("got ok = %v, want %v", ok, tt.ok)
			}
			if ok {
				diff(t, [2]float64{tt.t0, tt.t1}, [2]float64{t0, t1}, opt)
			}
		})
	}

	// The uneven cubic enters the band at (1 - √2/2) / 2, which the clip
	// keeps.
	entry := (1 - math.Sqrt2/2) / 2
	s := Cubic(Pt(0, 4), Pt(9, -4), Pt(10, -4), Pt(10, 4))
	diff(t, 1.0, s.Eval(entry).Y, opt)
	if t0, _, _ := s.Clip(band); t0 > entry {
		t.Errorf("clip starts at %v, after the entry at %v", t0, entry)
	}

	// A degenerate fat line doesn't clip anything.
	t0, t1, ok := Segment(Pt(0, 5), Pt(10, 6)).Clip(FatLine{})
	if !ok || t0 != 0 || t1 != 1 {
		t.Errorf("got %v, %v, %v, want 0, 1, true", t0, t1, ok)
	}
}

func TestClipCrossings(t *testing.T) {
	tests := []struct {
		name string
		p, q Spline
		want []Crossing
	}{
		{
			"quads",
			Quad(Pt(0, 0), Pt(1, 2), Pt(2, 0)),
			Quad(Pt(0, 1), Pt(1, -1), Pt(2, 1)),
			[]Crossing{
				{0.14644660940672627, 0.14644660940672627, Pt(0.2928932188134524, 0.5)},
				{0.8535533905932737, 0.8535533905932737, Pt(1.7071067811865475, 0.5)},
			},
		},
		{
			"cubics",
			Cubic(Pt(0, 0), Pt(1, 3), Pt(2, 3), Pt(3, 0)),
			Cubic(Pt(0, 2), Pt(1, -1), Pt(2, -1), Pt(3, 2)),
			[]Crossing{
				{0.12732200375003505, 0.12732200375003505, Pt(0.3819660112501051, 1)},
				{0.8726779962499649, 0.8726779962499649, Pt(2.618033988749895, 1)},
			},
		},
		{
			"arches",
			Cubic(Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)),
			Cubic(Pt(0, 6), Pt(0, -4), Pt(10, -4), Pt(10, 6)),
			[]Crossing{
				{0.1127016653792583, 0.1127016653792583, Pt(0.3524199845510997, 3)},
				{0.8872983346207417, 0.8872983346207417, Pt(9.6475800154489, 3)},
			},
		},
		{
			"disjoint",
			Quad(Pt(0, 0), Pt(1, 1), Pt(2, 0)),
			Quad(Pt(0, 3), Pt(1, 4), Pt(2, 3)),
			nil,
		},
	}
	opt := cmpopts.EquateApprox(0, 1e-5)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Crossings(tt.q, Options{})
			diff(t, tt.want, got, opt)

			// Swapping the splines swaps the ratios.
			rev := tt.q.Crossings(tt.p, Options{})
			if len(rev) != len(got) {
				t.Fatalf("got %d crossings in reverse, want %d", len(rev), len(got))
			}
			for i := range got {
				diff(t, got[i].T, rev[i].U, opt)
				diff(t, got[i].U, rev[i].T, opt)
			}
		})
	}
}

func TestClipCrossingsPlaces(t *testing.T) {
	p := Quad(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	q := Quad(Pt(0, 1), Pt(1, -1), Pt(2, 1))
	want := 0.14644660940672627
	for _, places := range []int{3, 6, 9} {
		cs := p.Crossings(q, Options{Places: places})
		if len(cs) != 2 {
			t.Fatalf("places %d: got %d crossings, want 2", places, len(cs))
		}
		if d := math.Abs(cs[0].T - want); d > math.Pow(10, -float64(places)) {
			t.Errorf("places %d: got T = %v, off by %g", places, cs[0].T, d)
		}
	}
}

func TestClipDepthCap(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	p := Quad(Pt(0, 0), Pt(1, 2), Pt(2, 0))
	q := Quad(Pt(0, 1), Pt(1, -1), Pt(2, 1))
	// The recursion gives up right away and reports rough estimates, which
	// must still be ratios on the splines.
	cs := clipCrossings(p, q, Options{MaxIterations: 1})
	if len(cs) == 0 {
		t.Fatal("expected estimates")
	}
	for _, c := range cs {
		if c.T < 0 || c.T > 1 || c.U < 0 || c.U > 1 {
			t.Errorf("estimate %+v is out of range", c)
		}
	}
	if !strings.Contains(buf.String(), "clip depth cap reached") {
		t.Errorf("expected a log record about the depth cap, got %q", buf.String())
	}
}

func TestClipBudget(t *testing.T) {
	// Overlapping curves have infinitely many crossings. The budget bounds
	// the work regardless.
	p := Cubic(Pt(0, 0), Pt(1, 3), Pt(2, 3), Pt(3, 0))
	cs := clipCrossings(p, p, Options{MaxIterations: 50})
	if len(cs) > 50*maxCurveCrossings {
		t.Errorf("got %d crossings", len(cs))
	}
}

func TestClipCrossingsCollapsed(t *testing.T) {
	// Clipping shrinks p below the tolerance long before q. The crossing must
	// not get lost when the tiny piece of p can no longer clip q.
	p := Cubic(
		Pt(3.238840435392376, 9.846545953837449),
		Pt(9.454258722244049, 5.312436259298465),
		Pt(7.187383140305883, 6.271493429953807),
		Pt(9.81693376519388, 6.675056552992373),
	)
	q := Cubic(
		Pt(8.474055330623287, 6.874877864368045),
		Pt(6.019257039870354, 4.067149081756725),
		Pt(9.343090799752645, 4.106268980349341),
		Pt(6.264373490703292, 9.443757486856157),
	)
	want := []Point{
		Pt(7.502747, 6.640695),
		Pt(8.045370, 6.336440),
	}
	opt := cmpopts.EquateApprox(0, 1e-5)
	for _, cs := range [][]Crossing{p.Crossings(q, Options{}), q.Crossings(p, Options{})} {
		var got []Point
		for _, c := range cs {
			got = append(got, c.Point)
		}
		slices.SortFunc(got, func(a, b Point) int { return cmp.Compare(a.X, b.X) })
		diff(t, want, got, opt)
	}
}

// randomCubic returns a cubic with control points in [0, 10)².
func randomCubic(rng *rand.Rand) Spline {
	var pts [4]Point
	for i := range pts {
		x := rng.Float64() * 10
		y := rng.Float64() * 10
		pts[i] = Pt(x, y)
	}
	return Cubic(pts[0], pts[1], pts[2], pts[3])
}

func TestClipCrossingsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		p, q := randomCubic(rng), randomCubic(rng)
		pq := p.Crossings(q, Options{})
		qp := q.Crossings(p, Options{})
		if len(pq) != len(qp) {
			t.Errorf("pair %d: got %d crossings, %d in reverse\n%v\n%v", i, len(pq), len(qp), p, q)
			continue
		}
		for _, c := range pq {
			found := slices.ContainsFunc(qp, func(o Crossing) bool {
				return o.Point.Distance(c.Point) < 1e-4
			})
			if !found {
				t.Errorf("pair %d: crossing at %v is missing in reverse", i, c.Point)
			}
		}
	}
}

// polylineCrossings intersects fine polylines through p and q.
func polylineCrossings(p, q Spline, n int) []Point {
	a := make([]Point, n+1)
	b := make([]Point, n+1)
	for i := range n + 1 {
		a[i] = p.Eval(float64(i) / float64(n))
		b[i] = q.Eval(float64(i) / float64(n))
	}
	var out []Point
	for i := range n {
		for j := range n {
			ab := a[i+1].Sub(a[i])
			cd := b[j+1].Sub(b[j])
			den := ab.Cross(cd)
			if den == 0 {
				continue
			}
			ac := b[j].Sub(a[i])
			s := ac.Cross(cd) / den
			u := ac.Cross(ab) / den
			if s < 0 || s >= 1 || u < 0 || u >= 1 {
				continue
			}
			pt := a[i].Lerp(a[i+1], s)
			if !slices.ContainsFunc(out, func(o Point) bool { return o.Distance(pt) < 1e-3 }) {
				out = append(out, pt)
			}
		}
	}
	return out
}

func TestClipCrossingsPolyline(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range 100 {
		p, q := randomCubic(rng), randomCubic(rng)
		got := p.Crossings(q, Options{})
		want := polylineCrossings(p, q, 600)
		if len(got) != len(want) {
			t.Errorf("pair %d: got %d crossings, polyline has %d\n%v\n%v", i, len(got), len(want), p, q)
			continue
		}
		for _, pt := range want {
			found := slices.ContainsFunc(got, func(c Crossing) bool {
				return c.Point.Distance(pt) < 1e-3
			})
			if !found {
				t.Errorf("pair %d: polyline crossing at %v wasn't found", i, pt)
			}
		}
	}
}
