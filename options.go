package pathcut

import "math"

const (
	// DefaultPlaces is the default number of decimal places to which
	// crossings are resolved.
	DefaultPlaces = 6
	// DefaultMaxIterations is the default depth at which the clipping
	// recursion gives up and reports its current estimate.
	DefaultMaxIterations = 500
)

// maxCurveCrossings is the largest number of crossings two cubic Béziers can
// have. It scales the clipping engine's total work budget.
const maxCurveCrossings = 9

// Options configures the convergence policy of the intersection engine. The
// zero value selects the defaults.
type Options struct {
	// Places is the number of decimal places to which crossings are
	// resolved. The clipping recursion stops once the control polygons of
	// both remaining sub-curves are shorter than 10^-Places.
	Places int `yaml:"places,omitempty"`
	// MaxIterations caps the depth of the clipping recursion. When the cap
	// is reached, the midpoint of the current parameter interval is
	// reported as the crossing.
	MaxIterations int `yaml:"max_iterations,omitempty"`
	// Workers is the number of goroutines used to compare the splines of two
	// paths. Values below 2 compare them sequentially. The result does not
	// depend on the number of workers.
	Workers int `yaml:"workers,omitempty"`
}

// DefaultOptions returns the options used by functions that don't take
// [Options].
func DefaultOptions() Options {
	return Options{
		Places:        DefaultPlaces,
		MaxIterations: DefaultMaxIterations,
		Workers:       1,
	}
}

// resolve replaces zero fields with their defaults.
func (o Options) resolve() Options {
	def := DefaultOptions()
	if o.Places <= 0 {
		o.Places = def.Places
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = def.MaxIterations
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
	return o
}

// Tolerance returns 10^-Places, using the default when Places isn't set.
func (o Options) Tolerance() float64 {
	return math.Pow(10, -float64(o.resolve().Places))
}

// mergeDistance is the distance below which two crossings are considered the
// same.
func (o Options) mergeDistance() float64 {
	return 100 * o.Tolerance()
}
