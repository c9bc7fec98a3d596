package pathcut

import (
	"fmt"
	"iter"
	"slices"
)

// PathElementKind is the drawing command of a [PathElement].
type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is a single drawing command of a [Path].
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// EndPoint returns the end point of the path element, or false if none exists.
// It exists for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

// Points returns the points the element carries, in drawing order.
func (el PathElement) Points() []Point {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return []Point{el.P0}
	case QuadToKind:
		return []Point{el.P0, el.P1}
	case CubicToKind:
		return []Point{el.P0, el.P1, el.P2}
	default:
		return nil
	}
}

// Path is a sequence of path elements, describing one or more subpaths.
type Path []PathElement

// Push adds an element to the path.
func (p *Path) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *Path) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *Path) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *Path) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p Path) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Splines returns an iterator over the splines drawn by the path.
//
// A ClosePath element yields a line segment back to the start of the subpath,
// unless the current point already is the start. Drawing commands before the
// first MoveTo start at the origin.
func (p Path) Splines() iter.Seq[Spline] {
	return func(yield func(Spline) bool) {
		var start, last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				start = el.P0
				last = el.P0
			case LineToKind:
				prev := last
				last = el.P0
				if !yield(Segment(prev, el.P0)) {
					return
				}
			case QuadToKind:
				prev := last
				last = el.P1
				if !yield(Quad(prev, el.P0, el.P1)) {
					return
				}
			case CubicToKind:
				prev := last
				last = el.P2
				if !yield(Cubic(prev, el.P0, el.P1, el.P2)) {
					return
				}
			case ClosePathKind:
				if last != start {
					prev := last
					last = start
					if !yield(Segment(prev, start)) {
						return
					}
				}
			default:
				panic(fmt.Sprintf("unhandled case %v", el.Kind))
			}
		}
	}
}

// PathFromSplines builds a path drawing the splines in order. A MoveTo is
// inserted before the first spline and wherever a spline doesn't start at
// the end of the previous one.
func PathFromSplines(seq iter.Seq[Spline]) Path {
	var p Path
	var last option[Point]
	for s := range seq {
		if !last.isSet || last.value != s.Start() {
			p.MoveTo(s.Start())
		}
		p.Push(s.PathElement())
		last.set(s.End())
	}
	return p
}

// ControlBox returns a rectangle that encloses all points of the path.
func (p Path) ControlBox() Rect {
	var box option[Rect]
	for _, el := range p {
		for _, pt := range el.Points() {
			if box.isSet {
				box.set(box.value.UnionPoint(pt))
			} else {
				box.set(NewRectFromPoints(pt, pt))
			}
		}
	}
	return box.value
}

// IsInf reports whether any of the path's points are infinite.
func (p Path) IsInf() bool {
	for _, el := range p {
		if el.P0.IsInf() || el.P1.IsInf() || el.P2.IsInf() {
			return true
		}
	}
	return false
}

// IsNaN reports whether any of the path's points are NaN.
func (p Path) IsNaN() bool {
	for _, el := range p {
		if el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN() {
			return true
		}
	}
	return false
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}
