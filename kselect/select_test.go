package kselect_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/curveclust/distmat"
	"github.com/katalvlaran/curveclust/kselect"
)

// fastOpts keeps replicate counts small so the table tests stay quick.
func fastOpts(kmin, kmax int) kselect.Options {
	opts := kselect.DefaultOptions(6)
	opts.KMin = kmin
	opts.KMax = kmax
	opts.Replicates = 20

	return opts
}

// TestSelect_TableShape: rows ascending in k, all metrics populated.
func TestSelect_TableShape(t *testing.T) {
	m := blockMatrix(t)

	table, err := kselect.Select(m, fastOpts(2, 5))
	require.NoError(t, err)
	require.Len(t, table, 4)

	for i, row := range table {
		assert.Equal(t, i+2, row.K, "ascending k")
		assert.GreaterOrEqual(t, row.Dispersion, 0.0)
		assert.False(t, math.IsNaN(row.Gap))
		assert.GreaterOrEqual(t, row.GapSE, 0.0)
	}

	// Dispersion is non-increasing in k on this matrix.
	for i := 1; i < len(table); i++ {
		assert.LessOrEqual(t, table[i].Dispersion, table[i-1].Dispersion+1e-9)
	}
}

// TestSelect_SilhouettePeaksAtTwo: two well-separated blocks ⇒ silhouette
// is maximal at k=2.
func TestSelect_SilhouettePeaksAtTwo(t *testing.T) {
	m := blockMatrix(t)

	table, err := kselect.Select(m, fastOpts(2, 5))
	require.NoError(t, err)

	assert.Equal(t, 2, table.BestSilhouette())
	for _, row := range table[1:] {
		assert.Less(t, row.Silhouette, table[0].Silhouette,
			"k=%d must score below k=2", row.K)
	}
}

// TestSelect_Reproducible: same seed ⇒ identical table; different seed ⇒
// (almost surely) different gap estimates.
func TestSelect_Reproducible(t *testing.T) {
	m := blockMatrix(t)
	opts := fastOpts(2, 4)
	opts.Seed = 42

	t1, err := kselect.Select(m, opts)
	require.NoError(t, err)
	t2, err := kselect.Select(m, opts)
	require.NoError(t, err)
	assert.Equal(t, t1, t2)

	opts.Workers = 1
	t3, err := kselect.Select(m, opts)
	require.NoError(t, err)
	assert.Equal(t, t1, t3, "worker count must not change the table")

	opts.Workers = 0
	opts.Seed = 7
	t4, err := kselect.Select(m, opts)
	require.NoError(t, err)
	assert.NotEqual(t, t1[0].Gap, t4[0].Gap)
}

// TestSelect_Guards: nil matrix, k range, replicates, incomplete matrix.
func TestSelect_Guards(t *testing.T) {
	m := blockMatrix(t)

	_, err := kselect.Select(nil, fastOpts(2, 3))
	assert.ErrorIs(t, err, kselect.ErrNilMatrix)

	_, err = kselect.Select(m, fastOpts(1, 3))
	assert.ErrorIs(t, err, kselect.ErrBadKRange)

	_, err = kselect.Select(m, fastOpts(4, 3))
	assert.ErrorIs(t, err, kselect.ErrBadKRange)

	_, err = kselect.Select(m, fastOpts(2, 7))
	assert.ErrorIs(t, err, kselect.ErrBadKRange)

	opts := fastOpts(2, 3)
	opts.Replicates = 0
	_, err = kselect.Select(m, opts)
	assert.ErrorIs(t, err, kselect.ErrBadReplicates)

	nan := math.NaN()
	inc, err := distmat.FromDense([]string{"a", "b", "c"}, [][]float64{
		{0, nan, 1},
		{nan, 0, 1},
		{1, 1, 0},
	})
	require.NoError(t, err)
	_, err = kselect.Select(inc, fastOpts(2, 2))
	assert.ErrorIs(t, err, distmat.ErrIncomplete)
}

// TestDefaultOptions clamps KMax to n−1 and caps it at 8.
func TestDefaultOptions(t *testing.T) {
	opts := kselect.DefaultOptions(5)
	assert.Equal(t, 2, opts.KMin)
	assert.Equal(t, 4, opts.KMax)
	assert.Equal(t, 100, opts.Replicates)

	opts = kselect.DefaultOptions(50)
	assert.Equal(t, 8, opts.KMax)
}
