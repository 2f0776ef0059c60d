package curve_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curveclust/curve"
)

// TestNewRawCurve_LengthMismatch verifies that unequal x/y slices error.
func TestNewRawCurve_LengthMismatch(t *testing.T) {
	_, err := curve.NewRawCurve([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, curve.ErrLengthMismatch)
}

// TestNewRawCurve_NonFinite verifies that NaN/Inf observations are rejected.
func TestNewRawCurve_NonFinite(t *testing.T) {
	_, err := curve.NewRawCurve([]float64{1, math.NaN()}, []float64{1, 2})
	assert.ErrorIs(t, err, curve.ErrNonFinite, "NaN x must error")

	_, err = curve.NewRawCurve([]float64{1, 2}, []float64{1, math.Inf(1)})
	assert.ErrorIs(t, err, curve.ErrNonFinite, "Inf y must error")
}

// TestNewRawCurve_TooShort verifies the 2-distinct-x floor: a single x
// value (even repeated) cannot support a regression.
func TestNewRawCurve_TooShort(t *testing.T) {
	_, err := curve.NewRawCurve([]float64{5}, []float64{1})
	assert.ErrorIs(t, err, curve.ErrCurveTooShort, "one point")

	_, err = curve.NewRawCurve([]float64{5, 5, 5}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, curve.ErrCurveTooShort, "repeated single x")
}

// TestNewRawCurve_SortsByX verifies observations are canonicalized into
// ascending-x order regardless of input order.
func TestNewRawCurve_SortsByX(t *testing.T) {
	c, err := curve.NewRawCurve([]float64{3, 1, 2}, []float64{30, 10, 20})
	require.NoError(t, err)

	pts := c.Points()
	require.Len(t, pts, 3)
	assert.Equal(t, curve.Point{X: 1, Y: 10}, pts[0])
	assert.Equal(t, curve.Point{X: 2, Y: 20}, pts[1])
	assert.Equal(t, curve.Point{X: 3, Y: 30}, pts[2])

	assert.Equal(t, curve.Domain{Min: 1, Max: 3}, c.Domain())
	assert.Equal(t, 3, c.DistinctX())
}

// TestDomain_Intersect covers overlapping, nested, touching and disjoint
// interval pairs.
func TestDomain_Intersect(t *testing.T) {
	a := curve.Domain{Min: 0, Max: 100}
	b := curve.Domain{Min: 50, Max: 150}

	ov := a.Intersect(b)
	assert.Equal(t, curve.Domain{Min: 50, Max: 100}, ov)
	assert.False(t, ov.Empty())
	assert.Equal(t, 50.0, ov.Width())

	// Disjoint: empty result, zero width.
	c := curve.Domain{Min: 200, Max: 300}
	ov = a.Intersect(c)
	assert.True(t, ov.Empty())
	assert.Equal(t, 0.0, ov.Width())

	// Touching at a single point: non-empty, zero width.
	d := curve.Domain{Min: 100, Max: 200}
	ov = a.Intersect(d)
	assert.False(t, ov.Empty())
	assert.Equal(t, 0.0, ov.Width())
	assert.True(t, ov.Contains(100))
}

// TestSortedKeys verifies the canonical ordering is lexicographic and
// independent of map insertion order.
func TestSortedKeys(t *testing.T) {
	m := map[string]int{"gamma": 1, "alpha": 2, "beta": 3}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, curve.SortedKeys(m))
	assert.Empty(t, curve.SortedKeys(map[string]int{}))
}
