// Package pipeline - end-to-end wiring.
package pipeline

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/curveclust/curve"
	"github.com/katalvlaran/curveclust/distmat"
	"github.com/katalvlaran/curveclust/kselect"
	"github.com/katalvlaran/curveclust/loess"
	"github.com/katalvlaran/curveclust/pam"
)

// GroupError attributes a stage failure to the offending group, so a
// per-group problem is never reported without its key.
type GroupError struct {
	Key string
	Err error
}

// Error names the group first; the cause follows.
func (e *GroupError) Error() string {
	return fmt.Sprintf("pipeline: group %q: %v", e.Key, e.Err)
}

// Unwrap exposes the cause to errors.Is/As.
func (e *GroupError) Unwrap() error {
	return e.Err
}

// Result is the immutable output bundle of Run. Matrix rows follow the
// canonical sorted ordering of the surviving group keys.
type Result struct {
	Grid      *curve.Grid
	Models    map[string]*loess.Model
	Resampled map[string]*curve.ResampledCurve
	Matrix    *distmat.Matrix
	Skipped   []string // groups excluded by on_insufficient: skip
	Dropped   []string // groups excluded by on_undefined: drop-groups
}

// Run executes smooth → resample → distances under cfg's policies.
//
// Error taxonomy:
//   - configuration problems: ErrBadConfig before any stage runs;
//   - per-group smoothing failures: *GroupError wrapping
//     loess.ErrInsufficientData (policy "skip" excludes the group
//     instead, recording it in Result.Skipped);
//   - degenerate overlaps: the distmat error, already naming the pair;
//   - undefined pairs: *distmat.IncompleteError under policy "fail", or
//     group-wise drops under "drop-groups" (Result.Dropped).
//
// Nothing is imputed, no undefined quantity becomes a number.
func Run(raw map[string]*curve.RawCurve, cfg Config) (*Result, error) {
	// Stage 0: configuration, then the shared grid.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := curve.NewGrid(cfg.Grid.Start, cfg.Grid.Stop, cfg.Grid.Step)
	if err != nil {
		return nil, err
	}

	// Stage 1: smoothing, per group in canonical order.
	var (
		sopts   = loess.Options{Degree: cfg.Smoothing.Degree, Span: cfg.Smoothing.Span}
		models  = make(map[string]*loess.Model, len(raw))
		skipped []string
	)
	for _, key := range curve.SortedKeys(raw) {
		model, ferr := loess.Fit(raw[key], sopts)
		if ferr != nil {
			if cfg.OnInsufficient == PolicySkip && errors.Is(ferr, loess.ErrInsufficientData) {
				skipped = append(skipped, key)

				continue
			}

			return nil, &GroupError{Key: key, Err: ferr}
		}
		models[key] = model
	}
	if len(models) < 2 {
		return nil, ErrTooFewGroups
	}

	// Stage 2: resampling onto the shared grid.
	var (
		resampled = make(map[string]*curve.ResampledCurve, len(models))
		evals     = make(map[string]curve.Evaluator, len(models))
	)
	for key, model := range models {
		rc, rerr := curve.Resample(model, grid)
		if rerr != nil {
			return nil, &GroupError{Key: key, Err: rerr}
		}
		resampled[key] = rc
		evals[key] = model
	}

	// Stage 3: pairwise distances.
	matrix, err := distmat.Compute(resampled, evals, grid, distmat.Options{
		Epsilon: cfg.Epsilon,
		Workers: cfg.Workers,
	})
	if err != nil {
		return nil, err
	}

	// Stage 4: undefined-pair policy.
	var dropped []string
	if !matrix.Complete() {
		if cfg.OnUndefined != PolicyDropGroups {
			return nil, matrix.RequireComplete()
		}
		if matrix, dropped, err = dropUndefined(matrix); err != nil {
			return nil, err
		}
		for _, key := range dropped {
			delete(models, key)
			delete(resampled, key)
		}
	}

	return &Result{
		Grid:      grid,
		Models:    models,
		Resampled: resampled,
		Matrix:    matrix,
		Skipped:   skipped,
		Dropped:   dropped,
	}, nil
}

// dropUndefined iteratively removes the group participating in the most
// undefined pairs (ties to the lexicographically smallest key, for
// determinism) until the matrix is complete. Fails with ErrTooFewGroups
// when fewer than 2 groups would remain.
func dropUndefined(m *distmat.Matrix) (*distmat.Matrix, []string, error) {
	var dropped []string
	for {
		pairs := m.UndefinedPairs()
		if len(pairs) == 0 {
			return m, dropped, nil
		}
		if m.Len() <= 2 {
			return nil, nil, ErrTooFewGroups
		}

		// Count undefined participation per key.
		count := make(map[string]int, m.Len())
		for _, p := range pairs {
			count[p.A]++
			count[p.B]++
		}
		var (
			victim string
			most   int
		)
		for _, key := range m.Keys() { // canonical order fixes tie-breaks
			if c := count[key]; c > most {
				most = c
				victim = key
			}
		}

		// Rebuild without the victim.
		keep := make([]string, 0, m.Len()-1)
		for _, key := range m.Keys() {
			if key != victim {
				keep = append(keep, key)
			}
		}
		sub, err := m.Subset(keep)
		if err != nil {
			return nil, nil, err
		}
		m = sub
		dropped = append(dropped, victim)
	}
}

// SelectK computes the per-k metrics table for a completed Run, honoring
// cfg.Selection. KMax is clamped to the surviving group count.
func SelectK(res *Result, cfg Config) (kselect.Table, error) {
	if res == nil || res.Matrix == nil {
		return nil, distmat.ErrNilMatrix
	}

	kmax := cfg.Selection.KMax
	if n := res.Matrix.Len(); kmax > n {
		kmax = n
	}

	return kselect.Select(res.Matrix, kselect.Options{
		KMin:       cfg.Selection.KMin,
		KMax:       kmax,
		Replicates: cfg.Selection.Replicates,
		Seed:       cfg.Selection.Seed,
		Workers:    cfg.Workers,
		PAM:        pam.DefaultOptions(),
	})
}

// Partition clusters a completed Run's groups into k clusters.
func Partition(res *Result, k int) (pam.Result, error) {
	if res == nil || res.Matrix == nil {
		return pam.Result{}, distmat.ErrNilMatrix
	}

	return pam.Partition(res.Matrix, k, pam.DefaultOptions())
}
