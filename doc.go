// Package pathcut finds the points where two Bézier paths cross and cuts paths
// apart at those points.
//
// # Splines and paths
//
// A [Spline] is a line segment, quadratic Bézier or cubic Bézier, described by
// its control points. When a spline is constructed, its control points are
// classified once by their [Collinearity]: they may all coincide, lie on a
// horizontal, vertical or sloped line, or describe a genuine curve. Quadratic
// and cubic splines whose control points are collinear are treated as
// straight lines, which lets most comparisons avoid iterative methods.
//
// A [Path] is a slice of path elements, akin to drawing commands in graphics
// APIs: pen moves ([MoveTo]) and drawing commands ([LineTo], [QuadTo],
// [CubicTo] and [ClosePath]). [Path.Splines] turns the commands into
// self-contained splines, and [PathFromSplines] turns splines back into
// commands.
//
// Paths have a compact textual form, a subset of SVG path data that uses the
// commands M, L, Q, C and Z. See [ParsePath] and [Path.SVG].
//
// # Crossings
//
// [Spline.Crossings] computes the crossings of two splines. Pairs of straight
// splines are solved algebraically. A straight spline and a curve are solved
// by finding the roots of the polynomial describing the curve's distance to
// the line, using [SolveQuadratic] or [SolveCubic]. Two curves are solved with
// Bézier clipping: the curves are alternately clipped against each other's
// [FatLine], narrowing the parameter ranges that can contain crossings until
// both remaining pieces are shorter than the tolerance.
//
// [Spline.Intersections] splits a spline at its crossings with another one,
// and [IntersectPaths] cuts a whole path at its crossings with another path.
//
// # Tolerances
//
// Crossings are resolved to a number of decimal places, 6 by default, and the
// clipping recursion gives up at a fixed depth, reporting its best estimate.
// Both can be changed with [Options]. The classification of splines uses a
// fixed tolerance of 1e-6 so that it only depends on the control points.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [Curve intersection using Bézier clipping] by Sederberg and Nishita
//   - [Monotone chain convex hull] by Andrew
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [Curve intersection using Bézier clipping]: https://doi.org/10.1016/0010-4485(90)90039-F
// [Monotone chain convex hull]: https://en.wikibooks.org/wiki/Algorithm_Implementation/Geometry/Convex_hull/Monotone_chain
package pathcut
