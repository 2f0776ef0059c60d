package loess_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curveclust/curve"
	"github.com/katalvlaran/curveclust/loess"
)

// rawFromFn builds a RawCurve by sampling fn at the given xs.
func rawFromFn(t *testing.T, xs []float64, fn func(float64) float64) *curve.RawCurve {
	t.Helper()
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	raw, err := curve.NewRawCurve(xs, ys)
	require.NoError(t, err)

	return raw
}

// seq returns n evenly spaced values from lo to hi inclusive.
func seq(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + float64(i)*step
	}

	return xs
}

// TestFit_OptionGuards verifies degree/span validation and the nil guard.
func TestFit_OptionGuards(t *testing.T) {
	raw := rawFromFn(t, seq(0, 10, 11), func(x float64) float64 { return x })

	_, err := loess.Fit(nil, loess.DefaultOptions())
	assert.ErrorIs(t, err, loess.ErrNilCurve)

	_, err = loess.Fit(raw, loess.Options{Degree: 0, Span: 0.5})
	assert.ErrorIs(t, err, loess.ErrBadDegree)

	_, err = loess.Fit(raw, loess.Options{Degree: 7, Span: 0.5})
	assert.ErrorIs(t, err, loess.ErrBadDegree)

	_, err = loess.Fit(raw, loess.Options{Degree: 2, Span: 0})
	assert.ErrorIs(t, err, loess.ErrBadSpan)

	_, err = loess.Fit(raw, loess.Options{Degree: 2, Span: 1.5})
	assert.ErrorIs(t, err, loess.ErrBadSpan)
}

// TestFit_InsufficientData: degree 2 needs at least 3 distinct x values.
func TestFit_InsufficientData(t *testing.T) {
	raw, err := curve.NewRawCurve([]float64{0, 0, 1, 1}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = loess.Fit(raw, loess.Options{Degree: 2, Span: 1})
	assert.ErrorIs(t, err, loess.ErrInsufficientData)

	// Degree 1 is fine with 2 distinct x.
	_, err = loess.Fit(raw, loess.Options{Degree: 1, Span: 1})
	assert.NoError(t, err)
}

// TestPredict_ReproducesLine: local regression of any degree reproduces an
// affine trend essentially exactly inside the domain.
func TestPredict_ReproducesLine(t *testing.T) {
	raw := rawFromFn(t, seq(0, 10, 21), func(x float64) float64 { return 3*x - 4 })

	for _, degree := range []int{1, 2} {
		model, err := loess.Fit(raw, loess.Options{Degree: degree, Span: 0.75})
		require.NoError(t, err)

		for _, x := range []float64{0, 1.7, 5, 9.3, 10} {
			assert.InDelta(t, 3*x-4, model.Predict(x), 1e-8, "degree %d at x=%v", degree, x)
		}
	}
}

// TestPredict_ReproducesParabola: a degree-2 local fit recovers quadratic
// data essentially exactly.
func TestPredict_ReproducesParabola(t *testing.T) {
	raw := rawFromFn(t, seq(-5, 5, 25), func(x float64) float64 { return x*x - 2*x + 1 })

	model, err := loess.Fit(raw, loess.Options{Degree: 2, Span: 0.6})
	require.NoError(t, err)

	for _, x := range []float64{-5, -2.5, 0, 1.25, 5} {
		assert.InDelta(t, x*x-2*x+1, model.Predict(x), 1e-7, "x=%v", x)
	}
}

// TestPredict_ConstantCurve: constant data smooths to the constant.
func TestPredict_ConstantCurve(t *testing.T) {
	raw := rawFromFn(t, seq(0, 100, 11), func(float64) float64 { return 5 })

	model, err := loess.Fit(raw, loess.DefaultOptions())
	require.NoError(t, err)

	for _, x := range []float64{0, 33, 50, 100} {
		assert.InDelta(t, 5.0, model.Predict(x), 1e-9)
	}
}

// TestPredict_Deterministic: two queries at the same x return the same y.
func TestPredict_Deterministic(t *testing.T) {
	raw := rawFromFn(t, seq(0, 10, 15), func(x float64) float64 { return x * x })

	model, err := loess.Fit(raw, loess.DefaultOptions())
	require.NoError(t, err)

	y1 := model.Predict(4.2)
	y2 := model.Predict(4.2)
	assert.Equal(t, y1, y2)
}

// TestPredict_SmoothsNoise: loess on a noisy line stays close to the
// underlying trend in the interior.
func TestPredict_SmoothsNoise(t *testing.T) {
	// Fixed alternating perturbation; no RNG needed for the property.
	xs := seq(0, 20, 41)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		bump := 0.5
		if i%2 == 1 {
			bump = -0.5
		}
		ys[i] = 2*x + bump
	}
	raw, err := curve.NewRawCurve(xs, ys)
	require.NoError(t, err)

	model, err := loess.Fit(raw, loess.Options{Degree: 1, Span: 0.5})
	require.NoError(t, err)

	for _, x := range []float64{5, 10, 15} {
		assert.InDelta(t, 2*x, model.Predict(x), 0.2, "x=%v", x)
	}
}

// TestModel_Domain reports the observed x range.
func TestModel_Domain(t *testing.T) {
	raw := rawFromFn(t, []float64{3, 7, 11}, func(x float64) float64 { return x })

	model, err := loess.Fit(raw, loess.Options{Degree: 1, Span: 1})
	require.NoError(t, err)

	assert.Equal(t, curve.Domain{Min: 3, Max: 11}, model.Domain())
}

// TestFit_TiedXWindow: duplicate x values inside windows must not break
// prediction (weighted-mean fallback path).
func TestFit_TiedXWindow(t *testing.T) {
	xs := []float64{0, 0, 0, 5, 5, 5, 10, 10, 10}
	ys := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}
	raw, err := curve.NewRawCurve(xs, ys)
	require.NoError(t, err)

	model, err := loess.Fit(raw, loess.Options{Degree: 1, Span: 0.4})
	require.NoError(t, err)

	// At a tied cluster the fit degrades to the local mean; it must stay
	// finite and between the observed extremes.
	y := model.Predict(5)
	assert.GreaterOrEqual(t, y, 1.0)
	assert.LessOrEqual(t, y, 9.0)
}
