// Package distmat - the Matrix container.
//
// Storage mirrors the flat row-major float64 layout of a dense matrix
// (cache-friendly reads in the O(n²) clustering loops), plus a parallel
// defined-bitmask so "undefined" is a first-class state, not a magic
// number. NaN backs undefined cells internally purely so an accidental
// raw read can never masquerade as a valid distance.
package distmat

import (
	"math"
	"sort"
)

// symTol is the structural tolerance for symmetry/diagonal checks on
// externally supplied dense input.
const symTol = 1e-12

// Matrix is a symmetric group-to-group dissimilarity matrix over a
// canonical, lexicographically sorted key list. Immutable after
// construction; safe for concurrent reads.
type Matrix struct {
	keys  []string
	index map[string]int
	data  []float64 // row-major n×n; NaN where undefined
	def   []bool    // defined mask, same layout
}

// newMatrix allocates an n×n matrix with a zero, defined diagonal and all
// off-diagonal cells undefined. Internal: Compute/FromDense fill it in.
func newMatrix(keys []string) *Matrix {
	var (
		n     = len(keys)
		m     = &Matrix{keys: keys, index: make(map[string]int, n)}
		i, j  int
		undef = math.NaN()
	)
	m.data = make([]float64, n*n)
	m.def = make([]bool, n*n)
	for i = 0; i < n; i++ {
		m.index[keys[i]] = i
		for j = 0; j < n; j++ {
			if i == j {
				m.data[i*n+j] = 0
				m.def[i*n+j] = true
			} else {
				m.data[i*n+j] = undef
			}
		}
	}

	return m
}

// set records a defined distance for the unordered pair (i, j), mirroring
// both cells. Internal: construction only; the matrix is immutable after.
func (m *Matrix) set(i, j int, d float64) {
	n := len(m.keys)
	m.data[i*n+j] = d
	m.data[j*n+i] = d
	m.def[i*n+j] = true
	m.def[j*n+i] = true
}

// FromDense builds a Matrix from explicit dense rows (row order matching
// keys). NaN entries mark undefined pairs — the explicit marker, not a
// smuggled value. Intended for tests and for consumers that obtained a
// dissimilarity structure elsewhere.
//
// Contract: len(rows) == len(keys), square, |d[i][j]−d[j][i]| <= 1e−12
// (both NaN counts as symmetric), diagonal 0, no negative or ±Inf entries,
// unique non-empty keys.
//
// Complexity: O(n²).
func FromDense(keys []string, rows [][]float64) (*Matrix, error) {
	n := len(keys)
	if n == 0 || len(rows) != n {
		return nil, ErrBadInput
	}

	// Key uniqueness (and non-emptiness).
	seen := make(map[string]struct{}, n)
	for _, k := range keys {
		if k == "" {
			return nil, ErrBadInput
		}
		if _, ok := seen[k]; ok {
			return nil, ErrBadInput
		}
		seen[k] = struct{}{}
	}

	m := newMatrix(append([]string(nil), keys...))

	var (
		i, j     int
		dij, dji float64
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, ErrBadInput
		}
		if rows[i][i] != 0 {
			return nil, ErrBadInput
		}
		for j = i + 1; j < n; j++ {
			dij = rows[i][j]
			dji = rows[j][i]
			switch {
			case math.IsNaN(dij) && math.IsNaN(dji):
				// Mirrored undefined marker: leave the cells undefined.
				continue
			case math.IsNaN(dij) || math.IsNaN(dji):
				return nil, ErrBadInput
			case math.IsInf(dij, 0) || dij < 0:
				return nil, ErrBadInput
			case math.Abs(dij-dji) > symTol:
				return nil, ErrBadInput
			}
			m.set(i, j, dij)
		}
	}

	return m, nil
}

// Len returns the number of groups (matrix order).
func (m *Matrix) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the canonical group ordering (row/col order).
// Complexity: O(n).
func (m *Matrix) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Index returns the row index of a group key.
func (m *Matrix) Index(key string) (int, error) {
	i, ok := m.index[key]
	if !ok {
		return 0, ErrUnknownKey
	}

	return i, nil
}

// At returns the distance between groups i and j.
//
// Errors:
//   - ErrOutOfRange for indices outside [0, Len),
//   - ErrUndefinedPair when the pair's distance is undefined.
//
// The diagonal is always 0 and always defined.
// Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	n := len(m.keys)
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, ErrOutOfRange
	}
	if !m.def[i*n+j] {
		return 0, ErrUndefinedPair
	}

	return m.data[i*n+j], nil
}

// Defined reports whether the (i, j) distance is defined. Out-of-range
// indices report false.
// Complexity: O(1).
func (m *Matrix) Defined(i, j int) bool {
	n := len(m.keys)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}

	return m.def[i*n+j]
}

// AtKeys is At addressed by group keys.
func (m *Matrix) AtKeys(a, b string) (float64, error) {
	i, err := m.Index(a)
	if err != nil {
		return 0, err
	}
	j, err := m.Index(b)
	if err != nil {
		return 0, err
	}

	return m.At(i, j)
}

// UndefinedPairs returns every undefined unordered pair in canonical
// (ascending i, then j) order. Empty for a complete matrix.
// Complexity: O(n²).
func (m *Matrix) UndefinedPairs() []Pair {
	var (
		n    = len(m.keys)
		out  []Pair
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if !m.def[i*n+j] {
				out = append(out, Pair{A: m.keys[i], B: m.keys[j]})
			}
		}
	}

	return out
}

// Complete reports whether every pairwise distance is defined.
// Complexity: O(n²).
func (m *Matrix) Complete() bool {
	for _, d := range m.def {
		if !d {
			return false
		}
	}

	return true
}

// RequireComplete returns nil for a complete matrix, or an
// *IncompleteError carrying the full undefined-pair set. Clustering
// consumers call this before touching any cell.
// Complexity: O(n²).
func (m *Matrix) RequireComplete() error {
	if m == nil {
		return ErrNilMatrix
	}
	pairs := m.UndefinedPairs()
	if len(pairs) == 0 {
		return nil
	}

	return &IncompleteError{Pairs: pairs}
}

// Subset returns a new Matrix restricted to the given keys (re-sorted into
// canonical order), copying the surviving cells. Used by the drop-groups
// policy when undefined pairs must be eliminated group-wise.
//
// Errors: ErrUnknownKey when a requested key is absent; ErrBadInput when
// fewer than 2 keys remain.
//
// Complexity: O(k²).
func (m *Matrix) Subset(keys []string) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if len(keys) < 2 {
		return nil, ErrBadInput
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)

	// Map new rows to old rows, validating existence.
	var (
		k   = len(sorted)
		src = make([]int, k)
		i   int
		err error
	)
	for i = 0; i < k; i++ {
		if src[i], err = m.Index(sorted[i]); err != nil {
			return nil, err
		}
	}

	var (
		out  = newMatrix(sorted)
		n    = len(m.keys)
		j    int
		cell int
	)
	for i = 0; i < k; i++ {
		for j = i + 1; j < k; j++ {
			cell = src[i]*n + src[j]
			if m.def[cell] {
				out.set(i, j, m.data[cell])
			}
		}
	}

	return out, nil
}
