package pathcut

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ParsePath parses a path from its textual form, a whitespace-separated list
// of tokens. A command is a letter, optionally followed directly by its first
// operand, and each operand is a point written as "x,y":
//
//	M0,0 L4,0 Q5,0 5,1 C5,2 4,3 3,3 Z
//
// The supported commands are M (move to), L (line to), Q (quadratic to),
// C (cubic to) and Z (close path). Upper-case commands take absolute
// coordinates, lower-case ones coordinates relative to the current point.
// Extra points after a move to draw lines, and Q and C repeat for each pair
// or triple of points.
//
// Relative coordinates are resolved while parsing, so the returned path only
// holds absolute coordinates. On failure, ParsePath returns a [*SyntaxError]
// wrapping [ErrInvalidPointData], [ErrInvalidPathData] or an
// [*UnsupportedCommandError], and no path.
func ParsePath(data string) (Path, error) {
	var ps pathParser
	for i, tok := range strings.Fields(data) {
		text := tok
		r, size := utf8.DecodeRuneInString(tok)
		if unicode.IsLetter(r) {
			if err := ps.flush(); err != nil {
				return nil, err
			}
			switch unicode.ToUpper(r) {
			case 'M', 'L', 'Q', 'C', 'Z':
			default:
				return nil, &SyntaxError{Token: i, Text: text, Err: &UnsupportedCommandError{Command: r}}
			}
			ps.cmd = r
			ps.cmdToken = i
			ps.cmdText = text
			tok = tok[size:]
			if tok == "" {
				continue
			}
		} else if ps.cmd == 0 {
			return nil, &SyntaxError{Token: i, Text: text, Err: ErrInvalidPathData}
		}

		pt, err := parsePoint(tok)
		if err != nil {
			return nil, &SyntaxError{Token: i, Text: text, Err: err}
		}
		ps.operands = append(ps.operands, pt)
	}
	if err := ps.flush(); err != nil {
		return nil, err
	}
	return ps.path, nil
}

type pathParser struct {
	path     Path
	cur      Point
	origin   Point
	cmd      rune
	cmdToken int
	cmdText  string
	operands []Point
}

// flush appends the elements of the pending command to the path.
func (ps *pathParser) flush() error {
	if ps.cmd == 0 {
		return nil
	}
	cmd, pts := ps.cmd, ps.operands
	ps.cmd = 0
	ps.operands = ps.operands[:0]

	arity := 1
	switch unicode.ToUpper(cmd) {
	case 'Q':
		arity = 2
	case 'C':
		arity = 3
	case 'Z':
		arity = 0
	}
	if arity == 0 && len(pts) != 0 || arity != 0 && (len(pts) == 0 || len(pts)%arity != 0) {
		return &SyntaxError{Token: ps.cmdToken, Text: ps.cmdText, Err: ErrInvalidPathData}
	}

	relative := unicode.IsLower(cmd)
	abs := func(group []Point) []Point {
		if !relative {
			return group
		}
		aff := Translate(Vec2(ps.cur))
		out := make([]Point, len(group))
		for i, pt := range group {
			out[i] = pt.Transform(aff)
		}
		return out
	}

	for i := 0; arity == 0 || i < len(pts); i += arity {
		var el PathElement
		switch unicode.ToUpper(cmd) {
		case 'M':
			g := abs(pts[i : i+1])
			if i == 0 {
				el = MoveTo(g[0])
				ps.origin = g[0]
			} else {
				el = LineTo(g[0])
			}
		case 'L':
			el = LineTo(abs(pts[i : i+1])[0])
		case 'Q':
			g := abs(pts[i : i+2])
			el = QuadTo(g[0], g[1])
		case 'C':
			g := abs(pts[i : i+3])
			el = CubicTo(g[0], g[1], g[2])
		case 'Z':
			ps.path.ClosePath()
			ps.cur = ps.origin
			return nil
		default:
			panic(fmt.Sprintf("unhandled command %q", cmd))
		}
		ps.path.Push(el)
		ps.cur, _ = el.EndPoint()
	}
	return nil
}

func parsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, ErrInvalidPointData
	}
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return Point{}, ErrInvalidPointData
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return Point{}, ErrInvalidPointData
	}
	pt := Pt(x, y)
	if pt.IsInf() || pt.IsNaN() {
		return Point{}, ErrInvalidPointData
	}
	return pt, nil
}

// String returns the path's textual form. See [Path.SVG].
func (p Path) String() string {
	return p.SVG()
}

// SVG converts the path to its textual form, using absolute coordinates and
// the shortest representation of each coordinate that parses back to the same
// value. [ParsePath] accepts the result.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p Path) SVG() string {
	sb := &strings.Builder{}
	p.WriteSVG(sb)
	return sb.String()
}

// WriteSVG writes the path's textual form to w.
func (p Path) WriteSVG(w io.Writer) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if n == 0 {
			// Avoid writing negative zero.
			n = math.Abs(n)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	for i, el := range p {
		if err != nil {
			return err
		}
		if i > 0 {
			write(space)
		}
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			write(z)
		default:
			panic("unreachable")
		}
	}
	return err
}
