// Package curve - core value types and sentinel errors.
//
// This file defines the Domain interval, the RawCurve observation series and
// the package sentinel set. All sentinels are prefixed "curve: ..." and must
// be matched with errors.Is; constructors never panic on user input.
package curve

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrLengthMismatch is returned when the x and y slices passed to
	// NewRawCurve have different lengths.
	ErrLengthMismatch = errors.New("curve: x/y length mismatch")

	// ErrCurveTooShort is returned when fewer than two distinct x values are
	// available; a regression line is undetermined below that.
	ErrCurveTooShort = errors.New("curve: need at least 2 distinct x values")

	// ErrNonFinite is returned when any observation is NaN or ±Inf.
	ErrNonFinite = errors.New("curve: NaN or Inf in observations")

	// ErrBadGrid is returned by NewGrid for non-finite bounds, step <= 0,
	// or stop < start.
	ErrBadGrid = errors.New("curve: invalid grid parameters")

	// ErrNilModel is returned by Resample when the evaluator is nil.
	ErrNilModel = errors.New("curve: nil model")

	// ErrNilGrid is returned by Resample when the grid is nil.
	ErrNilGrid = errors.New("curve: nil grid")
)

// Point is a single (x, y) observation.
type Point struct {
	X float64
	Y float64
}

// Domain is the closed interval [Min, Max] of the independent variable over
// which a curve (raw or smoothed) is considered valid. A Domain with
// Min > Max is empty; Width of an empty Domain is reported as 0.
type Domain struct {
	Min float64
	Max float64
}

// Empty reports whether the interval contains no point.
// Complexity: O(1).
func (d Domain) Empty() bool {
	return d.Min > d.Max
}

// Width returns Max-Min, or 0 for an empty interval.
// Complexity: O(1).
func (d Domain) Width() float64 {
	if d.Empty() {
		return 0
	}

	return d.Max - d.Min
}

// Contains reports whether x lies inside the closed interval.
// Complexity: O(1).
func (d Domain) Contains(x float64) bool {
	return x >= d.Min && x <= d.Max
}

// Intersect returns the overlap of two closed intervals. The result may be
// empty (Min > Max); callers must check Empty before dividing by Width.
// Complexity: O(1).
func (d Domain) Intersect(o Domain) Domain {
	return Domain{Min: math.Max(d.Min, o.Min), Max: math.Min(d.Max, o.Max)}
}

// Evaluator is the queryable smoothed-curve contract consumed by Resample
// and by the distance engine (for domain bounds). loess.Model implements it.
//
// Predict outside Domain() is not guaranteed accurate; callers restrict
// queries to the domain (Resample does).
type Evaluator interface {
	Predict(x float64) float64
	Domain() Domain
}

// RawCurve holds one group's observations, sorted ascending by x.
// Construct via NewRawCurve; the zero value is not usable.
type RawCurve struct {
	pts []Point
}

// NewRawCurve validates and packs raw observations into an immutable curve.
//
// Contract:
//   - len(xs) == len(ys), all values finite,
//   - at least 2 distinct x values (ErrCurveTooShort otherwise).
//
// Observations are copied and stable-sorted by x; duplicate x values are
// allowed (local regression weighs them like any other neighbor).
//
// Complexity: O(n log n) time, O(n) space.
func NewRawCurve(xs, ys []float64) (*RawCurve, error) {
	// Stage 1: shape.
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}

	// Stage 2: finiteness + copy into points.
	var (
		i   int
		pts = make([]Point, len(xs))
	)
	for i = 0; i < len(xs); i++ {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			return nil, ErrNonFinite
		}
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}

	// Stage 3: canonical ascending-x order (stable keeps duplicate-x input order).
	sort.SliceStable(pts, func(a, b int) bool { return pts[a].X < pts[b].X })

	// Stage 4: distinct-x floor. Sorted, so one linear pass suffices.
	if distinctSortedX(pts) < 2 {
		return nil, ErrCurveTooShort
	}

	return &RawCurve{pts: pts}, nil
}

// Len returns the number of observations.
// Complexity: O(1).
func (c *RawCurve) Len() int {
	return len(c.pts)
}

// Points returns a copy of the observations in ascending-x order.
// Complexity: O(n).
func (c *RawCurve) Points() []Point {
	out := make([]Point, len(c.pts))
	copy(out, c.pts)

	return out
}

// At returns the i-th observation (ascending-x order). Panics only on
// programmer error (index out of range), like slice access.
// Complexity: O(1).
func (c *RawCurve) At(i int) Point {
	return c.pts[i]
}

// Domain returns the observed [min x, max x] interval of the curve.
// Complexity: O(1).
func (c *RawCurve) Domain() Domain {
	return Domain{Min: c.pts[0].X, Max: c.pts[len(c.pts)-1].X}
}

// DistinctX counts distinct x values; smoothers use it to decide whether a
// polynomial degree is supportable.
// Complexity: O(n).
func (c *RawCurve) DistinctX() int {
	return distinctSortedX(c.pts)
}

// distinctSortedX counts distinct x values in an ascending-x point slice.
func distinctSortedX(pts []Point) int {
	if len(pts) == 0 {
		return 0
	}

	var (
		i int
		n = 1
	)
	for i = 1; i < len(pts); i++ {
		if pts[i].X != pts[i-1].X {
			n++
		}
	}

	return n
}

// SortedKeys returns the canonical (lexicographically ascending) ordering of
// a group-keyed collection. Every stage that iterates groups or builds
// matrix rows must use this ordering, so output never depends on map
// iteration order.
// Complexity: O(n log n).
func SortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
