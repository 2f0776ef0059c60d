// Package kselect - options, metrics table, sentinel errors.
package kselect

import (
	"errors"

	"github.com/katalvlaran/curveclust/pam"
)

var (
	// ErrNilMatrix is returned when the matrix is nil.
	ErrNilMatrix = errors.New("kselect: nil distance matrix")

	// ErrBadKRange is returned unless 2 <= KMin <= KMax <= n.
	ErrBadKRange = errors.New("kselect: invalid k range")

	// ErrBadReplicates is returned when Replicates < 1.
	ErrBadReplicates = errors.New("kselect: bootstrap replicates must be >= 1")
)

// Default selection knobs. 100 replicates is the conventional budget for a
// stable gap estimate at this problem size.
const (
	defaultKMin       = 2
	defaultReplicates = 100
)

// Options configures Select.
//
// Fields:
//   - KMin, KMax   — inclusive candidate range; 2 <= KMin <= KMax <= n.
//   - Replicates   — B, the null-reference resampling count for the gap
//     statistic.
//   - Seed         — RNG seed for the reference resampling; 0 selects the
//     fixed default seed, so unconfigured runs are reproducible too.
//   - Workers      — bound on concurrent per-k computations; <= 0 selects
//     GOMAXPROCS.
//   - PAM          — options forwarded to every internal pam.Partition run.
type Options struct {
	KMin       int
	KMax       int
	Replicates int
	Seed       int64
	Workers    int
	PAM        pam.Options
}

// DefaultOptions returns the canonical configuration for n groups:
// k in [2, min(8, n−1)], 100 replicates, default seed.
func DefaultOptions(n int) Options {
	kmax := n - 1
	if kmax > 8 {
		kmax = 8
	}

	return Options{
		KMin:       defaultKMin,
		KMax:       kmax,
		Replicates: defaultReplicates,
		Seed:       0,
		Workers:    0,
		PAM:        pam.DefaultOptions(),
	}
}

// Metrics is one row of the per-k table.
type Metrics struct {
	K          int
	Dispersion float64 // PAM total assignment cost at K
	Silhouette float64 // mean silhouette width of the PAM partition
	Gap        float64 // mean_b log(Wref_b) − log(Wobs)
	GapSE      float64 // sd(log Wref) · sqrt(1 + 1/B)
}

// Table is the per-k metrics table, ascending in K.
type Table []Metrics

// BestSilhouette returns the k with the highest mean silhouette width
// (ties to the lowest k), or 0 for an empty table. A convenience heuristic;
// final selection remains the caller's decision.
// Complexity: O(len).
func (t Table) BestSilhouette() int {
	var (
		bestK int
		bestS float64
		first = true
	)
	for _, row := range t {
		if first || row.Silhouette > bestS {
			bestK = row.K
			bestS = row.Silhouette
			first = false
		}
	}

	return bestK
}
