// Package loess - fitting and prediction.
//
// Algorithm (per query point x0):
//  1. Window: the w = max(Degree+1, ceil(Span·n)) samples nearest to x0 by
//     |x − x0|, found by expanding from the insertion point in the sorted
//     sample array (ties resolved toward the left neighbor, deterministic).
//  2. Weights: tricube((|x − x0|) / dmax) over the window, dmax = the
//     largest window distance. dmax == 0 (all window x tied at x0)
//     degenerates to the plain mean of the window.
//  3. Fit: weighted least squares of a Degree-polynomial in t = x − x0
//     (centered design for conditioning), via QR on the √w-scaled system.
//     The prediction at x0 is the intercept coefficient.
//  4. Fallback: a singular or underdetermined local system (e.g. all
//     usable weight on tied x) yields the weighted mean of the window —
//     the degree-0 fit — rather than an error mid-query.
//
// Determinism: the window rule, tie-breaks and QR are all deterministic;
// Predict is a pure function of (samples, Options, x).
package loess

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/curveclust/curve"
)

// Model is a fitted local-regression smoother for one group. It owns a
// private copy of the samples and is safe for concurrent Predict calls.
// Construct via Fit; the zero value is not usable.
type Model struct {
	xs     []float64 // ascending
	ys     []float64 // aligned with xs
	opts   Options
	window int // effective window size, precomputed once
	domain curve.Domain
}

// Fit validates the configuration against the curve and returns a Model.
//
// Errors:
//   - ErrNilCurve, ErrBadDegree, ErrBadSpan — configuration problems.
//   - ErrInsufficientData — fewer than Degree+1 distinct x values.
//
// Complexity: O(n) time and space (the sort happened in NewRawCurve).
func Fit(raw *curve.RawCurve, opts Options) (*Model, error) {
	// Stage 1: options and input sanity.
	if raw == nil {
		return nil, ErrNilCurve
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	// Stage 2: the degree must be supportable by distinct abscissae.
	if raw.DistinctX() < opts.Degree+1 {
		return nil, ErrInsufficientData
	}

	// Stage 3: private copy of the (already sorted) samples.
	var (
		n  = raw.Len()
		xs = make([]float64, n)
		ys = make([]float64, n)
		i  int
		p  curve.Point
	)
	for i = 0; i < n; i++ {
		p = raw.At(i)
		xs[i] = p.X
		ys[i] = p.Y
	}

	// Stage 4: effective window = max(Degree+1, ceil(Span·n)), clamped to n.
	w := int(math.Ceil(opts.Span * float64(n)))
	if w < opts.Degree+1 {
		w = opts.Degree + 1
	}
	if w > n {
		w = n
	}

	return &Model{
		xs:     xs,
		ys:     ys,
		opts:   opts,
		window: w,
		domain: raw.Domain(),
	}, nil
}

// Domain returns the observed [min x, max x] interval the model is valid
// over. Part of the curve.Evaluator contract.
func (m *Model) Domain() curve.Domain {
	return m.domain
}

// Options returns the configuration the model was fitted with.
func (m *Model) Options() Options {
	return m.opts
}

// Predict evaluates the smoothed curve at x. Queries outside Domain() are
// answered (by the boundary window's polynomial) but not guaranteed
// accurate; restrict to the domain, as curve.Resample does.
//
// Complexity: O(log n) window location + O(w·d²) least squares.
func (m *Model) Predict(x float64) float64 {
	// Stage 1: select the window of nearest samples around x.
	lo, hi := m.selectWindow(x)

	// Stage 2: tricube weights on normalized distance to x.
	var (
		w    = hi - lo
		dmax float64
		i    int
		d    float64
	)
	for i = lo; i < hi; i++ {
		d = math.Abs(m.xs[i] - x)
		if d > dmax {
			dmax = d
		}
	}
	if dmax == 0 {
		// Entire window sits at x: mean of the tied observations.
		return mean(m.ys[lo:hi])
	}

	weights := make([]float64, w)
	for i = 0; i < w; i++ {
		weights[i] = tricube(math.Abs(m.xs[lo+i]-x) / dmax)
	}

	// Stage 3: weighted least squares of a centered polynomial.
	if y, ok := m.solveLocal(x, lo, hi, weights); ok {
		return y
	}

	// Stage 4: degraded window — fall back to the weighted mean (degree 0).
	return weightedMean(m.ys[lo:hi], weights)
}

// selectWindow returns the half-open sample range [lo, hi) of the m.window
// points nearest to x, expanding from the insertion index. Ties between the
// left and right candidate go left, which keeps the rule deterministic.
// Complexity: O(log n + w).
func (m *Model) selectWindow(x float64) (lo, hi int) {
	n := len(m.xs)
	lo = sort.SearchFloat64s(m.xs, x)
	hi = lo
	for hi-lo < m.window {
		switch {
		case lo == 0:
			hi++
		case hi == n:
			lo--
		case x-m.xs[lo-1] <= m.xs[hi]-x:
			lo--
		default:
			hi++
		}
	}

	return lo, hi
}

// solveLocal fits the degree-d polynomial in t = x_i − x0 by QR on the
// √weight-scaled design and returns the intercept (the prediction at x0).
// ok == false when the local system is singular or underdetermined.
// Complexity: O(w·d²).
func (m *Model) solveLocal(x0 float64, lo, hi int, weights []float64) (float64, bool) {
	var (
		w    = hi - lo
		cols = m.opts.Degree + 1
	)
	// Underdetermined before we even factorize: fewer positively weighted
	// distinct x than coefficients.
	if positiveDistinct(m.xs[lo:hi], weights) < cols {
		return 0, false
	}

	var (
		a = mat.NewDense(w, cols, nil)
		b = mat.NewDense(w, 1, nil)
		i int
		j int
	)
	for i = 0; i < w; i++ {
		var (
			sw   = math.Sqrt(weights[i])
			t    = m.xs[lo+i] - x0
			term = sw
		)
		for j = 0; j < cols; j++ {
			a.Set(i, j, term)
			term *= t
		}
		b.Set(i, 0, sw*m.ys[lo+i])
	}

	var qr mat.QR
	qr.Factorize(a)

	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, b); err != nil {
		return 0, false
	}

	y := beta.At(0, 0)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, false
	}

	return y, true
}

// tricube is the classic loess kernel (1−u³)³ on [0,1), 0 beyond.
func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	c := 1 - u*u*u

	return c * c * c
}

// positiveDistinct counts distinct x values carrying strictly positive
// weight; xs is ascending, so one pass suffices.
func positiveDistinct(xs, weights []float64) int {
	var (
		n    int
		last float64
		seen bool
		i    int
	)
	for i = 0; i < len(xs); i++ {
		if weights[i] <= 0 {
			continue
		}
		if !seen || xs[i] != last {
			n++
			last = xs[i]
			seen = true
		}
	}

	return n
}

// mean returns the arithmetic mean of ys (caller guarantees len > 0).
func mean(ys []float64) float64 {
	var s float64
	for _, y := range ys {
		s += y
	}

	return s / float64(len(ys))
}

// weightedMean returns Σw·y / Σw, degrading to the plain mean when all
// weights vanish (caller guarantees len > 0).
func weightedMean(ys, weights []float64) float64 {
	var (
		num float64
		den float64
		i   int
	)
	for i = 0; i < len(ys); i++ {
		num += weights[i] * ys[i]
		den += weights[i]
	}
	if den == 0 {
		return mean(ys)
	}

	return num / den
}
