// Package curve - grid resampling of smoothed models.
//
// Resample is the one bridge between a group's private smoothed model and
// the shared coordinate system: it evaluates the model at exactly the grid
// points inside the model's own domain and records where in the grid that
// slice begins, so downstream pair alignment is pure index arithmetic.
package curve

// ResampledCurve is a smoothed curve sampled at consecutive grid points.
// Invariants (guaranteed by Resample, relied upon by the distance engine):
//   - X(i) == grid.At(Offset()+i) for every i,
//   - xs ascending, len(xs) == len(ys),
//   - empty (Len() == 0) when the model's domain misses the grid.
type ResampledCurve struct {
	offset int // grid index of the first sample; meaningless when empty
	xs     []float64
	ys     []float64
}

// Resample evaluates model at every grid point inside model.Domain(), in
// ascending grid order. A domain that contains no grid point yields an
// empty ResampledCurve, not an error: whether that is a problem belongs to
// the pair-distance stage, which still sees the model's domain bounds.
//
// Pure: no state is retained, the grid is read-only, and two calls with the
// same inputs return equal results.
//
// Complexity: O(m · cost(Predict)) time, O(m) space, m = points in range.
func Resample(model Evaluator, grid *Grid) (*ResampledCurve, error) {
	// Stage 1: nil guards (programmer errors surfaced as sentinels, not panics).
	if model == nil {
		return nil, ErrNilModel
	}
	if grid == nil {
		return nil, ErrNilGrid
	}

	// Stage 2: which grid indices fall inside the model's domain.
	lo, hi := grid.IndexRange(model.Domain())
	if lo > hi {
		return &ResampledCurve{}, nil // empty, downstream concern
	}

	// Stage 3: evaluate in ascending grid order.
	var (
		m  = hi - lo + 1
		xs = make([]float64, m)
		ys = make([]float64, m)
		i  int
	)
	for i = 0; i < m; i++ {
		xs[i] = grid.At(lo + i)
		ys[i] = model.Predict(xs[i])
	}

	return &ResampledCurve{offset: lo, xs: xs, ys: ys}, nil
}

// Len returns the number of resampled points (0 when the domain missed the
// grid entirely).
func (r *ResampledCurve) Len() int { return len(r.xs) }

// Offset returns the grid index of the first sample. Only meaningful when
// Len() > 0.
func (r *ResampledCurve) Offset() int { return r.offset }

// X returns the i-th abscissa (a grid point).
// Complexity: O(1).
func (r *ResampledCurve) X(i int) float64 { return r.xs[i] }

// Y returns the i-th smoothed value.
// Complexity: O(1).
func (r *ResampledCurve) Y(i int) float64 { return r.ys[i] }

// Xs returns a copy of the abscissae.
// Complexity: O(n).
func (r *ResampledCurve) Xs() []float64 {
	out := make([]float64, len(r.xs))
	copy(out, r.xs)

	return out
}

// Ys returns a copy of the smoothed values.
// Complexity: O(n).
func (r *ResampledCurve) Ys() []float64 {
	out := make([]float64, len(r.ys))
	copy(out, r.ys)

	return out
}

// YsRange returns the value sub-slice covering grid indices [lo, hi]
// (inclusive) as a read-only view — no copy, for the O(n²)-pairs hot path.
// Caller guarantees offset <= lo <= hi <= offset+Len-1 and must not write.
// Complexity: O(1).
func (r *ResampledCurve) YsRange(lo, hi int) []float64 {
	return r.ys[lo-r.offset : hi-r.offset+1]
}
