// Package kselect - mean silhouette width.
package kselect

import "github.com/katalvlaran/curveclust/distmat"

// Silhouette computes the mean silhouette width of a partition over a
// complete distance matrix.
//
// Per group i with cluster c(i):
//   - a = mean distance to the other members of c(i),
//   - b = min over clusters c' != c(i) of the mean distance to c',
//   - s_i = (b − a) / max(a, b).
//
// Conventions (undefined silhouettes contribute 0):
//   - singleton cluster ⇒ s_i = 0,
//   - max(a, b) == 0 (identical groups) ⇒ s_i = 0.
//
// labels[i] must be a cluster id in [0, k); k is inferred as max+1.
//
// Errors: ErrNilMatrix, distmat.ErrIncomplete (via RequireComplete), or a
// label/shape mismatch surfacing as ErrBadKRange.
//
// Complexity: O(n²).
func Silhouette(m *distmat.Matrix, labels []int) (float64, error) {
	// Stage 1: preconditions.
	if m == nil {
		return 0, ErrNilMatrix
	}
	n := m.Len()
	if len(labels) != n || n == 0 {
		return 0, ErrBadKRange
	}
	if err := m.RequireComplete(); err != nil {
		return 0, err
	}

	// Cluster count and sizes.
	k := 0
	for _, c := range labels {
		if c < 0 {
			return 0, ErrBadKRange
		}
		if c+1 > k {
			k = c + 1
		}
	}
	size := make([]int, k)
	for _, c := range labels {
		size[c]++
	}

	// Stage 2: per-group silhouette from per-cluster mean distances.
	var (
		sum  float64
		sums = make([]float64, k) // reused Σ distance from i to each cluster
		i, j int
		c    int
	)
	for i = 0; i < n; i++ {
		own := labels[i]
		if size[own] <= 1 {
			continue // singleton: contributes 0 by convention
		}

		for c = 0; c < k; c++ {
			sums[c] = 0
		}
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			d, err := m.At(i, j)
			if err != nil {
				return 0, err
			}
			sums[labels[j]] += d
		}

		a := sums[own] / float64(size[own]-1)
		b := -1.0
		for c = 0; c < k; c++ {
			if c == own || size[c] == 0 {
				continue
			}
			if mc := sums[c] / float64(size[c]); b < 0 || mc < b {
				b = mc
			}
		}
		if b < 0 {
			continue // no other non-empty cluster: undefined, contributes 0
		}

		den := a
		if b > den {
			den = b
		}
		if den > 0 {
			sum += (b - a) / den
		}
	}

	return sum / float64(n), nil
}
