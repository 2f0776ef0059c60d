// Package pam - BUILD + SWAP engine.
//
// Design (mirrors the deterministic first-improvement discipline of local
// search on a prefetched flat distance buffer):
//   - The matrix is read once into w[i*n+j]; hot loops never touch the
//     interface surface.
//   - RequireComplete gates entry: PAM needs a complete metric, an
//     undefined pair is a hard precondition failure, never imputed.
//   - First-improvement swaps in a fixed (medoid position asc, candidate
//     asc) order; restart after each acceptance. The final cost is
//     stabilized at 1e−9 to keep equality comparisons meaningful.
package pam

import (
	"math"

	"github.com/katalvlaran/curveclust/distmat"
)

// costScale stabilizes returned costs against FP drift.
const costScale = 1e9

// Partition clusters the matrix's groups into k clusters around medoids.
//
// Contract:
//   - m non-nil and COMPLETE (else the *distmat.IncompleteError, matching
//     errors.Is(err, distmat.ErrIncomplete), with every undefined pair),
//   - 2 <= k <= m.Len().
//
// Deterministic: see package doc.
func Partition(m *distmat.Matrix, k int, opts Options) (Result, error) {
	// Stage 1: preconditions.
	if m == nil {
		return Result{}, ErrNilMatrix
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	n := m.Len()
	if k < 2 || k > n {
		return Result{}, ErrBadK
	}
	if err := m.RequireComplete(); err != nil {
		return Result{}, err
	}

	// Stage 2: prefetch into a flat buffer (complete matrix ⇒ At cannot
	// fail; any error here is structural corruption).
	w := make([]float64, n*n)
	{
		var (
			i, j int
			x    float64
			err  error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if x, err = m.At(i, j); err != nil {
					return Result{}, err
				}
				w[i*n+j] = x
			}
		}
	}
	at := func(i, j int) float64 { return w[i*n+j] }

	// Stage 3: BUILD.
	medoids := build(n, k, at)

	// Stage 4: SWAP until local optimum (or MaxIters accepted swaps).
	medoids = swap(n, k, at, medoids, opts)

	// Stage 5: final assignment, nearest medoid, ties to lowest medoid index.
	var (
		labels = make([]int, n)
		cost   float64
		i      int
	)
	for i = 0; i < n; i++ {
		c, d := nearestMedoid(i, medoids, at)
		labels[i] = c
		cost += d
	}

	keys := m.Keys()
	assignment := make(map[string]int, n)
	for i = 0; i < n; i++ {
		assignment[keys[i]] = labels[i]
	}

	return Result{
		Medoids:    medoids,
		Labels:     labels,
		Assignment: assignment,
		Cost:       math.Round(cost*costScale) / costScale,
	}, nil
}

// build runs the greedy BUILD phase: the first medoid minimizes the total
// distance to all groups; each next medoid minimizes the total
// nearest-medoid distance given the already chosen set. Ties to the lowest
// index. Returns the ascending medoid list.
// Complexity: O(k·n²).
func build(n, k int, at func(i, j int) float64) []int {
	var (
		i, j int
		best int
		tot  float64
		min  float64
	)

	// First medoid: argmin_i Σ_j d(i, j).
	best = 0
	min = math.Inf(1)
	for i = 0; i < n; i++ {
		tot = 0
		for j = 0; j < n; j++ {
			tot += at(i, j)
		}
		if tot < min {
			min = tot
			best = i
		}
	}
	medoids := make([]int, 0, k)
	medoids = append(medoids, best)

	dnear := make([]float64, n)
	for j = 0; j < n; j++ {
		dnear[j] = at(j, best)
	}

	// Remaining k−1 medoids, greedily.
	chosen := make([]bool, n)
	chosen[best] = true
	for len(medoids) < k {
		best = -1
		min = math.Inf(1)
		for i = 0; i < n; i++ {
			if chosen[i] {
				continue
			}
			tot = 0
			for j = 0; j < n; j++ {
				if d := at(j, i); d < dnear[j] {
					tot += d
				} else {
					tot += dnear[j]
				}
			}
			// Strict < keeps the lowest-index winner on ties.
			if tot < min {
				min = tot
				best = i
			}
		}
		chosen[best] = true
		medoids = insertSorted(medoids, best)
		for j = 0; j < n; j++ {
			if d := at(j, best); d < dnear[j] {
				dnear[j] = d
			}
		}
	}

	return medoids
}

// swap runs deterministic first-improvement medoid swaps: scan medoid
// positions ascending, candidates ascending; accept the first swap with
// Δ < −Eps, re-sort the medoid list, restart the scan. Stops at a local
// optimum or after MaxIters accepted swaps (0 ⇒ unbounded).
// Complexity: O(accepted · k·n·n·k) worst case; n here is small (groups).
func swap(n, k int, at func(i, j int) float64, medoids []int, opts Options) []int {
	var (
		isMedoid = make([]bool, n)
		cur      float64
		accepted int
	)
	for _, mi := range medoids {
		isMedoid[mi] = true
	}
	cur = totalCost(n, medoids, at)

	for {
		improved := false

	scan:
		for pos := 0; pos < k; pos++ {
			for h := 0; h < n; h++ {
				if isMedoid[h] {
					continue
				}
				// Candidate medoid set: medoids with position pos replaced by h.
				old := medoids[pos]
				medoids[pos] = h
				cand := totalCost(n, medoids, at)
				if cand-cur < -opts.Eps {
					// Accept: commit the swap and keep the list sorted so
					// "lowest medoid index" stays well-defined.
					isMedoid[old] = false
					isMedoid[h] = true
					sortInts(medoids)
					cur = cand
					accepted++
					improved = true

					break scan
				}
				medoids[pos] = old
			}
		}

		if !improved {
			return medoids
		}
		if opts.MaxIters > 0 && accepted >= opts.MaxIters {
			return medoids
		}
	}
}

// totalCost is Σ over all groups of the distance to the nearest medoid.
// Complexity: O(n·k).
func totalCost(n int, medoids []int, at func(i, j int) float64) float64 {
	var (
		cost float64
		i    int
	)
	for i = 0; i < n; i++ {
		_, d := nearestMedoid(i, medoids, at)
		cost += d
	}

	return cost
}

// nearestMedoid returns the cluster id (position in the ascending medoid
// list) and distance of group i's nearest medoid. Strict < ties to the
// lowest medoid index.
// Complexity: O(k).
func nearestMedoid(i int, medoids []int, at func(i, j int) float64) (cluster int, dist float64) {
	dist = math.Inf(1)
	for c, mi := range medoids {
		if d := at(i, mi); d < dist {
			dist = d
			cluster = c
		}
	}

	return cluster, dist
}

// insertSorted inserts v into an ascending int slice, keeping order.
// Complexity: O(k).
func insertSorted(s []int, v int) []int {
	s = append(s, v)
	for i := len(s) - 1; i > 0 && s[i-1] > s[i]; i-- {
		s[i-1], s[i] = s[i], s[i-1]
	}

	return s
}

// sortInts re-sorts a small int slice ascending (insertion sort; k is tiny).
func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
