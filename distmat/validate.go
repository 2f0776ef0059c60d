// Package distmat - structural validation.
//
// Compute cannot produce an asymmetric or negative matrix by construction;
// Validate exists for matrices that arrive via FromDense/Subset or cross a
// trust boundary, and for tests asserting the metric properties directly.
package distmat

import "math"

// Validate checks the structural invariants of a dissimilarity matrix:
//   - non-nil, order >= 1,
//   - diagonal exactly 0 and defined,
//   - defined-mask symmetric, mirrored values within symTol,
//   - every defined cell finite and non-negative.
//
// Undefined off-diagonal cells are legal (that is what RequireComplete is
// for); Validate only rejects structural corruption.
//
// Complexity: O(n²).
func Validate(m *Matrix) error {
	if m == nil || len(m.keys) == 0 {
		return ErrNilMatrix
	}

	var (
		n    = len(m.keys)
		i, j int
		cell int
		mir  int
	)

	// Diagonal: defined and exactly zero.
	for i = 0; i < n; i++ {
		cell = i*n + i
		if !m.def[cell] || m.data[cell] != 0 {
			return ErrNonZeroDiagonal
		}
	}

	// Off-diagonal: mask symmetry, value symmetry, range.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			cell = i*n + j
			mir = j*n + i
			if m.def[cell] != m.def[mir] {
				return ErrAsymmetry
			}
			if !m.def[cell] {
				continue
			}
			if math.IsNaN(m.data[cell]) || math.IsInf(m.data[cell], 0) || m.data[cell] < 0 {
				return ErrNegativeDistance
			}
			if math.Abs(m.data[cell]-m.data[mir]) > symTol {
				return ErrAsymmetry
			}
		}
	}

	return nil
}
