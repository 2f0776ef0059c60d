// Package distmat - the pairwise engine.
//
// Design:
//   - Overlap bounds come from the MODELS' domains, not from the resampled
//     points: a sparse grid must not shrink the support the normalization
//     divides by.
//   - Pairs are independent; rows fan out on a bounded errgroup. Each pair
//     writes only its own mirrored cells, so merge order is irrelevant and
//     no cell is ever contended.
//   - Any per-pair failure (degenerate overlap) aborts Compute with the
//     offending pair named; undefined pairs are NOT failures here — they
//     are recorded as undefined and surface when a consumer demands a
//     complete metric.
//
// Complexity: O(n²·m) total work, m = grid points in a typical overlap.
package distmat

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/curveclust/curve"
)

// Compute builds the dissimilarity matrix over the canonical sorted key
// ordering of the input maps.
//
// Contract:
//   - resampled and models cover exactly the same non-empty key set
//     (ErrKeyMismatch otherwise); grid is the one the curves were
//     resampled on.
//   - For each pair: distance = Σ|y_i−y_j| over shared grid points in the
//     domain intersection, divided by the intersection width. Empty
//     intersection, or no shared grid point, marks the pair UNDEFINED.
//   - An intersection narrower than opts.Epsilon (but holding a shared
//     grid point) is a hard ErrDegenerateOverlap: no silent huge values.
//
// Diagonal cells are 0 by definition, without computation.
func Compute(resampled map[string]*curve.ResampledCurve, models map[string]curve.Evaluator, grid *curve.Grid, opts Options) (*Matrix, error) {
	// Stage 1: input sanity.
	if grid == nil {
		return nil, curve.ErrNilGrid
	}
	if len(resampled) == 0 || len(models) == 0 {
		return nil, ErrKeyMismatch
	}
	keys := curve.SortedKeys(resampled)
	for _, k := range keys {
		if _, ok := models[k]; !ok {
			return nil, ErrKeyMismatch
		}
	}
	if len(models) != len(keys) {
		return nil, ErrKeyMismatch
	}

	eps := opts.Epsilon
	if eps <= 0 {
		eps = defaultEpsilon
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Stage 2: snapshot per-group views in canonical order (hot loops read
	// slices, never maps).
	var (
		n       = len(keys)
		curves  = make([]*curve.ResampledCurve, n)
		domains = make([]curve.Domain, n)
		i       int
	)
	for i = 0; i < n; i++ {
		curves[i] = resampled[keys[i]]
		domains[i] = models[keys[i]].Domain()
	}

	m := newMatrix(keys)

	// Stage 3: row-parallel pair sweep. Row i owns pairs (i, j>i); mirrored
	// writes land in cells no other row touches.
	var g errgroup.Group
	g.SetLimit(workers)
	for i = 0; i < n; i++ {
		row := i
		g.Go(func() error {
			for j := row + 1; j < n; j++ {
				d, defined, err := pairDistance(curves[row], curves[j], domains[row], domains[j], grid, eps)
				if err != nil {
					return fmt.Errorf("distmat: pair %s-%s: %w", keys[row], keys[j], err)
				}
				if defined {
					m.set(row, j, d)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}

// pairDistance computes one pair. defined == false marks an undefined
// distance (empty overlap or no shared grid point); err only for the
// degenerate-width case.
// Complexity: O(m), m = shared grid points.
func pairDistance(a, b *curve.ResampledCurve, da, db curve.Domain, grid *curve.Grid, eps float64) (d float64, defined bool, err error) {
	// Overlap comes from the model domains, not from the sample coverage.
	ov := da.Intersect(db)
	if ov.Empty() {
		return 0, false, nil
	}

	// Shared grid indices: overlap range ∩ both curves' sample ranges.
	lo, hi := grid.IndexRange(ov)
	if a.Len() == 0 || b.Len() == 0 {
		return 0, false, nil
	}
	if a.Offset() > lo {
		lo = a.Offset()
	}
	if b.Offset() > lo {
		lo = b.Offset()
	}
	if last := a.Offset() + a.Len() - 1; last < hi {
		hi = last
	}
	if last := b.Offset() + b.Len() - 1; last < hi {
		hi = last
	}
	if lo > hi {
		// Overlap narrower than the grid step: no shared point, undefined.
		return 0, false, nil
	}

	// A shared point exists; the normalizing width must be usable.
	width := ov.Width()
	if width < eps {
		return 0, false, ErrDegenerateOverlap
	}

	// raw = Σ|y_a − y_b| over the shared range; L1 distance of the aligned
	// value slices. Scaled by the grid step, the sum approximates
	// ∫|y_a − y_b| dx over the overlap; dividing by the width yields the
	// average discrepancy per unit of x, stable under grid refinement.
	raw := floats.Distance(a.YsRange(lo, hi), b.YsRange(lo, hi), 1)

	return raw * grid.Step() / width, true, nil
}
