package pathcut

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("M0,0 M3,2 L1,1 L1,0 C0.5,0.5 0.5,0.5 0,0 Z")
	if err != nil {
		t.Fatal(err)
	}
	want := Path{
		MoveTo(Pt(0, 0)),
		MoveTo(Pt(3, 2)),
		LineTo(Pt(1, 1)),
		LineTo(Pt(1, 0)),
		CubicTo(Pt(0.5, 0.5), Pt(0.5, 0.5), Pt(0, 0)),
		ClosePath(),
	}
	diff(t, want, p)

	splines := slices.Collect(p.Splines())
	kinds := make([]SplineKind, len(splines))
	points := make([][]Point, len(splines))
	for i, s := range splines {
		kinds[i] = s.Kind()
		points[i] = s.Points()
	}
	diff(t, []SplineKind{SegmentKind, SegmentKind, CubicKind, SegmentKind}, kinds)
	diff(t, [][]Point{
		{Pt(3, 2), Pt(1, 1)},
		{Pt(1, 1), Pt(1, 0)},
		{Pt(1, 0), Pt(0.5, 0.5), Pt(0.5, 0.5), Pt(0, 0)},
		{Pt(0, 0), Pt(3, 2)},
	}, points)
}

func TestParsePathForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Path
	}{
		{"empty", "", nil},
		{"blank", " \t\n", nil},
		{"separate operands", "M 0,0 L 1,1", Path{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1))}},
		{"several lines", "M0,0 L1,1 2,0", Path{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), LineTo(Pt(2, 0))}},
		{"implicit lines after move", "M0,0 1,1 2,0", Path{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), LineTo(Pt(2, 0))}},
		{
			"several quads",
			"M0,0 Q1,1 2,0 3,-1 4,0",
			Path{MoveTo(Pt(0, 0)), QuadTo(Pt(1, 1), Pt(2, 0)), QuadTo(Pt(3, -1), Pt(4, 0))},
		},
		{
			"relative",
			"m1,1 l2,0 q1,0 1,1 c0,1 -1,1 -1,1 z l1,1",
			Path{
				MoveTo(Pt(1, 1)),
				LineTo(Pt(3, 1)),
				QuadTo(Pt(4, 1), Pt(4, 2)),
				CubicTo(Pt(4, 3), Pt(3, 3), Pt(3, 3)),
				ClosePath(),
				LineTo(Pt(2, 2)),
			},
		},
		{"relative implicit lines", "m1,1 1,1 1,0", Path{MoveTo(Pt(1, 1)), LineTo(Pt(2, 2)), LineTo(Pt(3, 2))}},
		{"exponents and signs", "M-1.5e1,+2 L.5,-0", Path{MoveTo(Pt(-15, 2)), LineTo(Pt(0.5, 0))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePath(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	tests := []struct {
		in    string
		err   error
		token int
	}{
		{"0,0 L1,1", ErrInvalidPathData, 0},
		{"M0,0 X1,1", ErrUnsupportedPathCommand, 1},
		{"M0,0 a1,1", ErrUnsupportedPathCommand, 1},
		{"M0,0 L1", ErrInvalidPointData, 1},
		{"M0,0 La,b", ErrInvalidPointData, 1},
		{"M0,0 L1,1,2", ErrInvalidPointData, 1},
		{"M0,0 L1,NaN", ErrInvalidPointData, 1},
		{"M0,0 L", ErrInvalidPathData, 1},
		{"M0,0 L Z", ErrInvalidPathData, 1},
		{"M0,0 Q1,1", ErrInvalidPathData, 1},
		{"M0,0 C1,1 2,2", ErrInvalidPathData, 1},
		{"M0,0 C1,1 2,2 3,3 4,4", ErrInvalidPathData, 1},
		{"M0,0 Z1,1", ErrInvalidPathData, 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := ParsePath(tt.in)
			if p != nil {
				t.Errorf("got partial path %v", p)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("got error %v, want %v", err, tt.err)
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("error %v isn't a *SyntaxError", err)
			}
			if serr.Token != tt.token {
				t.Errorf("got token %d, want %d", serr.Token, tt.token)
			}
		})
	}

	_, err := ParsePath("M0,0 X1,1")
	var cerr *UnsupportedCommandError
	if !errors.As(err, &cerr) || cerr.Command != 'X' {
		t.Errorf("got %v, want an unsupported command error for X", err)
	}
	if errors.Is(err, ErrInvalidPathData) {
		t.Errorf("%v shouldn't match %v", err, ErrInvalidPathData)
	}
}

func TestSVG(t *testing.T) {
	p := Path{
		MoveTo(Pt(10, 10)),
		CubicTo(Pt(20, 20), Pt(30, 30), Pt(40, 40)),
		MoveTo(Pt(50, 50)),
		QuadTo(Pt(0.1, -0.25), Pt(1e-7, 3)),
		LineTo(Pt(-0.0, 1)),
		ClosePath(),
	}
	want := "M10,10 C20,20 30,30 40,40 M50,50 Q0.1,-0.25 0.0000001,3 L0,1 Z"
	diff(t, want, p.SVG())
	diff(t, want, p.String())

	var sb strings.Builder
	if err := p.WriteSVG(&sb); err != nil {
		t.Fatal(err)
	}
	diff(t, want, sb.String())
	diff(t, "", Path{}.SVG())
}

func TestSVGRoundTrip(t *testing.T) {
	inputs := []string{
		"M0,0 M3,2 L1,1 L1,0 C0.5,0.5 0.5,0.5 0,0 Z",
		"M0.1,0.2 Q0.30000000000000004,1e-300 1e+300,-7 Z M1,1 L2,2",
		"m1,1 l2,0 q1,0 1,1 c0,1 -1,1 -1,1 z",
	}
	for _, in := range inputs {
		p, err := ParsePath(in)
		if err != nil {
			t.Fatal(err)
		}
		q, err := ParsePath(p.SVG())
		if err != nil {
			t.Fatal(err)
		}
		diff(t, p, q)
	}
	// Absolute input survives unchanged.
	p, _ := ParsePath(inputs[0])
	diff(t, inputs[0], p.SVG())
}

func TestTransformPath(t *testing.T) {
	p, err := ParsePath("M0,0 L1,0 Q1,1 0,1 Z")
	if err != nil {
		t.Fatal(err)
	}
	got := p.Transform(Translate(Vec(2, 3)).Mul(Scale(2, 2)))
	diff(t, "M2,3 L4,3 Q4,5 2,5 Z", got.SVG())
}
