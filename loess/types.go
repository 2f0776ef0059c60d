// Package loess - options and sentinel errors.
package loess

import "errors"

var (
	// ErrNilCurve is returned by Fit when the input curve is nil.
	ErrNilCurve = errors.New("loess: nil input curve")

	// ErrBadDegree is returned when Options.Degree is outside [1, maxDegree].
	ErrBadDegree = errors.New("loess: polynomial degree out of range")

	// ErrBadSpan is returned when Options.Span is not in (0, 1].
	ErrBadSpan = errors.New("loess: span must be in (0, 1]")

	// ErrInsufficientData is returned when the curve has fewer distinct x
	// values than Degree+1, leaving the local polynomial undetermined.
	ErrInsufficientData = errors.New("loess: not enough distinct x values for degree")
)

// maxDegree bounds the local polynomial. Local fits beyond degree 6 are
// numerically fragile on small windows and never useful for growth curves.
const maxDegree = 6

// Default smoothing knobs. Degree-2 locals with a 0.75 span are the
// conventional loess defaults and behave well on sparse growth curves.
const (
	defaultDegree = 2
	defaultSpan   = 0.75
)

// Options configures the smoother.
//
// Fields:
//   - Degree — degree of the local polynomial (1 = local lines,
//     2 = local parabolas, ...). Requires Degree+1 distinct x values.
//   - Span   — neighborhood size as a fraction of the total sample count,
//     in (0, 1]. The effective window is max(Degree+1, ceil(Span·n)),
//     clamped to n.
type Options struct {
	Degree int
	Span   float64
}

// DefaultOptions returns the canonical smoothing configuration
// (degree 2, span 0.75).
func DefaultOptions() Options {
	return Options{Degree: defaultDegree, Span: defaultSpan}
}

// validate checks internal consistency of Options.
// Complexity: O(1).
func (o Options) validate() error {
	if o.Degree < 1 || o.Degree > maxDegree {
		return ErrBadDegree
	}
	if o.Span <= 0 || o.Span > 1 {
		return ErrBadSpan
	}

	return nil
}
