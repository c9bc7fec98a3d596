package pathcut

import (
	"slices"

	"github.com/valentinradu/Pathcut/internal/parallel"
)

// IntersectPaths cuts p at every point where it crosses q, using the default
// options. See [IntersectPathsOpt].
func IntersectPaths(p, q Path) []Path {
	return IntersectPathsOpt(p, q, Options{})
}

// IntersectPathsOpt cuts p at every point where it crosses q and returns the
// resulting fragments of p in traversal order.
//
// Each spline of p is compared against every spline of q and split at all of
// its crossings, in ascending order. The first piece of a split spline
// continues the fragment under construction and every further piece starts a
// new one. Splines without crossings are appended whole. A new fragment also
// starts wherever p itself is discontinuous, such as at the start of a new
// subpath.
//
// The result doesn't depend on opts.Workers.
func IntersectPathsOpt(p, q Path, opts Options) []Path {
	opts = opts.resolve()
	ps := slices.Collect(p.Splines())
	qs := slices.Collect(q.Splines())
	rows := crossingRows(ps, qs, opts)

	tol := opts.Tolerance()
	var out []Path
	var cur []Spline
	flush := func() {
		if len(cur) > 0 {
			out = append(out, PathFromSplines(slices.Values(cur)))
			cur = nil
		}
	}
	var crossings int
	for i, s := range ps {
		if n := len(cur); n > 0 && cur[n-1].End() != s.Start() {
			flush()
		}
		pieces := s.splitAtCrossings(rows[i], tol)
		if len(pieces) == 0 {
			cur = append(cur, s)
			continue
		}
		crossings += len(pieces) - 1
		cur = append(cur, pieces[0])
		for _, piece := range pieces[1:] {
			flush()
			cur = append(cur, piece)
		}
	}
	flush()

	Logger().Debug("intersected paths",
		"splines", len(ps), "other_splines", len(qs),
		"splits", crossings, "fragments", len(out), "workers", opts.Workers)
	return out
}

// PathCrossings returns the points at which p crosses q, using the default
// options. See [PathCrossingsOpt].
func PathCrossings(p, q Path) []Point {
	return PathCrossingsOpt(p, q, Options{})
}

// PathCrossingsOpt returns the distinct points at which p crosses q, in the
// order in which p reaches them. Unlike [IntersectPathsOpt], it includes
// points where the paths only touch at the ends of splines. Points closer
// than 100 times the tolerance are reported once.
func PathCrossingsOpt(p, q Path, opts Options) []Point {
	opts = opts.resolve()
	ps := slices.Collect(p.Splines())
	qs := slices.Collect(q.Splines())
	rows := crossingRows(ps, qs, opts)

	merge := opts.mergeDistance()
	var out []Point
	for _, row := range rows {
		for _, c := range row {
			seen := slices.ContainsFunc(out, func(pt Point) bool {
				return pt.Distance(c.Point) < merge
			})
			if !seen {
				out = append(out, c.Point)
			}
		}
	}
	return out
}

// crossingRows returns, for every spline in ps, its crossings with all of qs
// sorted by their ratio on that spline.
func crossingRows(ps, qs []Spline, opts Options) [][]Crossing {
	rows := make([][]Crossing, len(ps))
	row := func(i int) {
		var cs []Crossing
		for _, o := range qs {
			cs = append(cs, ps[i].Crossings(o, opts)...)
		}
		rows[i] = normalizeCrossings(cs, opts)
	}

	if opts.Workers < 2 || len(ps) < 2 || len(qs) == 0 {
		for i := range ps {
			row(i)
		}
		return rows
	}

	pool := parallel.NewWorkerPool(min(opts.Workers, len(ps)))
	defer pool.Close()
	pool.ExecuteIndexed(len(ps), row)
	return rows
}
