package pathcut

import "slices"

// cross returns the z component of the cross product of the vectors o→a and
// o→b. It is positive when o, a, b turn counter-clockwise.
func cross(o, a, b Point) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// ConvexHull returns the convex hull of points, using Andrew's monotone chain
// algorithm in O(n log n).
//
// The hull starts at the lexicographically smallest point (smallest x, then
// smallest y) and proceeds counter-clockwise. Points on the hull's edges are
// not part of the result. Inputs with fewer than two points are returned as
// is. The input slice is not modified.
func ConvexHull(points []Point) []Point {
	if len(points) < 2 {
		return slices.Clone(points)
	}

	sorted := slices.Clone(points)
	slices.SortFunc(sorted, func(a, b Point) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		default:
			return 0
		}
	})

	lower := make([]Point, 0, len(sorted))
	for _, pt := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], pt) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, pt)
	}

	upper := make([]Point, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		pt := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], pt) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, pt)
	}

	// The last point of each chain is the first point of the other one.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) == 2 && hull[0] == hull[1] {
		// All points coincide.
		return hull[:1]
	}
	return hull
}
