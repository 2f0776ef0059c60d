// Package kselect - gap statistic.
//
// Reference null: with the curves reduced to a dissimilarity structure,
// each replicate draws a complete symmetric matrix whose off-diagonal
// entries are uniform on the OBSERVED distance range [min, max] (the
// marginal range on the distance scale), zero diagonal. PAM's dispersion
// on those references estimates E[log W_k] under "no cluster structure";
// the gap is that expectation minus the observed log W_k, and GapSE is the
// sd·sqrt(1+1/B) Monte Carlo error that the usual one-standard-error gap
// rule consumes.
package kselect

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/curveclust/distmat"
	"github.com/katalvlaran/curveclust/pam"
)

// logFloor guards log of a zero dispersion (e.g. k == n, or duplicated
// groups): the dispersion is clamped to this floor before the log.
const logFloor = 1e-12

// gapStatistic computes (gap, se) for one k.
//
// wObs is the observed PAM dispersion at k; rng is the per-k deterministic
// stream; B >= 1 replicates.
// Complexity: O(B · (n² + PAM)).
func gapStatistic(m *distmat.Matrix, k int, wObs float64, b int, rng *rand.Rand, popts pam.Options) (gap, se float64, err error) {
	// Stage 1: observed distance range (defined cells only; the caller
	// guarantees completeness, so this is every off-diagonal cell).
	lo, hi := observedRange(m)

	// Stage 2: replicate dispersions on the log scale.
	var (
		logs = make([]float64, b)
		ref  *distmat.Matrix
		res  pam.Result
		i    int
	)
	for i = 0; i < b; i++ {
		if ref, err = referenceMatrix(m.Keys(), lo, hi, rng); err != nil {
			return 0, 0, err
		}
		if res, err = pam.Partition(ref, k, popts); err != nil {
			return 0, 0, err
		}
		logs[i] = math.Log(math.Max(res.Cost, logFloor))
	}

	// Stage 3: gap and its Monte Carlo standard error.
	meanLog, sd := stat.MeanStdDev(logs, nil)
	if b == 1 {
		sd = 0 // a single replicate has no spread estimate
	}
	gap = meanLog - math.Log(math.Max(wObs, logFloor))
	se = sd * math.Sqrt(1+1/float64(b))

	return gap, se, nil
}

// observedRange scans the defined off-diagonal cells for [min, max].
// Complexity: O(n²).
func observedRange(m *distmat.Matrix) (lo, hi float64) {
	var (
		n     = m.Len()
		first = true
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d, err := m.At(i, j)
			if err != nil {
				continue
			}
			if first || d < lo {
				lo = d
			}
			if first || d > hi {
				hi = d
			}
			first = false
		}
	}

	return lo, hi
}

// referenceMatrix draws one null-reference matrix: symmetric, zero
// diagonal, off-diagonal uniform on [lo, hi]. Drawn in fixed (i, j>i)
// order so the stream consumption — and therefore the whole table — is
// reproducible.
// Complexity: O(n²).
func referenceMatrix(keys []string, lo, hi float64, rng *rand.Rand) (*distmat.Matrix, error) {
	var (
		n    = len(keys)
		rows = make([][]float64, n)
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = lo + (hi-lo)*rng.Float64()
			rows[i][j] = d
			rows[j][i] = d
		}
	}

	return distmat.FromDense(keys, rows)
}
