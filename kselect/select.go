// Package kselect - the per-k dispatcher.
//
// Design:
//   - Validate once, then fan the candidate ks out on a bounded errgroup;
//     each k runs its own PAM partition, silhouette and gap replicates.
//   - Rows are written by k-position into a preallocated table, so the
//     merge is race-free and the output order is ascending k no matter
//     how the scheduler interleaves the work.
//   - Per-k RNG streams are derived from the base seed (rng.go), so
//     parallelism never changes the numbers.
package kselect

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/curveclust/distmat"
	"github.com/katalvlaran/curveclust/pam"
)

// Select computes the metrics table for every k in [opts.KMin, opts.KMax].
//
// Contract:
//   - m non-nil and COMPLETE (undefined pairs surface as
//     distmat.ErrIncomplete from the first PAM run — a precondition
//     failure, not recovered),
//   - 2 <= KMin <= KMax <= m.Len(), Replicates >= 1.
//
// The table reports; it does not choose. See package doc.
func Select(m *distmat.Matrix, opts Options) (Table, error) {
	// Stage 1: preconditions.
	if m == nil {
		return nil, ErrNilMatrix
	}
	n := m.Len()
	if opts.KMin < 2 || opts.KMin > opts.KMax || opts.KMax > n {
		return nil, ErrBadKRange
	}
	if opts.Replicates < 1 {
		return nil, ErrBadReplicates
	}
	if err := m.RequireComplete(); err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Stage 2: per-k fan-out; row written by position.
	table := make(Table, opts.KMax-opts.KMin+1)

	var g errgroup.Group
	g.SetLimit(workers)
	for k := opts.KMin; k <= opts.KMax; k++ {
		kk := k
		g.Go(func() error {
			row, err := metricsForK(m, kk, opts)
			if err != nil {
				return err
			}
			table[kk-opts.KMin] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return table, nil
}

// metricsForK runs one candidate: PAM partition (dispersion), silhouette
// of that partition, and the gap statistic against the resampled null.
func metricsForK(m *distmat.Matrix, k int, opts Options) (Metrics, error) {
	res, err := pam.Partition(m, k, opts.PAM)
	if err != nil {
		return Metrics{}, err
	}

	sil, err := Silhouette(m, res.Labels)
	if err != nil {
		return Metrics{}, err
	}

	gap, se, err := gapStatistic(m, k, res.Cost, opts.Replicates, rngForK(opts.Seed, k), opts.PAM)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{
		K:          k,
		Dispersion: res.Cost,
		Silhouette: sil,
		Gap:        gap,
		GapSE:      se,
	}, nil
}
