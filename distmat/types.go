// Package distmat - sentinel errors, options, pair bookkeeping.
//
// All sentinels are prefixed "distmat: ..." and matched with errors.Is.
// IncompleteError is the one structured error: it carries the full set of
// undefined pairs (never less than the whole offending set) and unwraps to
// ErrIncomplete for errors.Is matching.
package distmat

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix is returned when a nil *Matrix (or nil argument map) is used.
	ErrNilMatrix = errors.New("distmat: nil matrix")

	// ErrKeyMismatch is returned by Compute when the resampled and model maps
	// do not cover exactly the same group keys.
	ErrKeyMismatch = errors.New("distmat: resampled/model key sets differ")

	// ErrUnknownKey is returned by AtKeys / Index lookups for absent groups.
	ErrUnknownKey = errors.New("distmat: unknown group key")

	// ErrOutOfRange is returned by At for row/col outside [0, Len).
	ErrOutOfRange = errors.New("distmat: index out of range")

	// ErrUndefinedPair is returned by At/AtKeys for a pair whose domains do
	// not overlap (or whose overlap holds no shared grid point). It marks an
	// UNDEFINED distance — deliberately distinct from a true zero.
	ErrUndefinedPair = errors.New("distmat: distance undefined for pair")

	// ErrDegenerateOverlap is returned by Compute when an overlap exists but
	// its width is below Options.Epsilon: dividing by it would manufacture a
	// huge or infinite distance, so the pair fails loudly instead.
	ErrDegenerateOverlap = errors.New("distmat: overlap width below epsilon")

	// ErrIncomplete is the errors.Is target of IncompleteError: the matrix
	// contains undefined pairs and cannot feed a metric-requiring consumer.
	ErrIncomplete = errors.New("distmat: matrix contains undefined pairwise distances")

	// ErrBadInput is returned by FromDense for ragged, asymmetric, negative
	// or non-zero-diagonal input.
	ErrBadInput = errors.New("distmat: invalid dense input")

	// ErrAsymmetry is returned by Validate when mirrored cells disagree
	// beyond the structural tolerance (including mismatched defined-ness).
	ErrAsymmetry = errors.New("distmat: matrix is not symmetric")

	// ErrNonZeroDiagonal is returned by Validate when a diagonal cell is
	// not exactly 0.
	ErrNonZeroDiagonal = errors.New("distmat: diagonal not zero")

	// ErrNegativeDistance is returned by Validate when a defined cell is
	// negative or non-finite.
	ErrNegativeDistance = errors.New("distmat: negative or non-finite distance")
)

// defaultEpsilon guards the normalizing division. The scale matches the
// 1e-9 numeric stabilization used across the clustering stages.
const defaultEpsilon = 1e-9

// Options configures Compute.
//
// Fields:
//   - Epsilon — minimum admissible overlap width; an overlap in
//     (0, Epsilon) raises ErrDegenerateOverlap. <= 0 selects the default.
//   - Workers — bound on concurrent pair computations; <= 0 selects
//     GOMAXPROCS. Determinism does not depend on Workers: every pair
//     writes only its own mirrored cells.
type Options struct {
	Epsilon float64
	Workers int
}

// DefaultOptions returns the canonical engine configuration.
func DefaultOptions() Options {
	return Options{Epsilon: defaultEpsilon, Workers: 0}
}

// Pair names an unordered group pair in canonical (A < B) key order.
type Pair struct {
	A string
	B string
}

// IncompleteError reports every undefined pair in a matrix handed to a
// consumer that requires a complete metric (PAM, selection). Unwraps to
// ErrIncomplete.
type IncompleteError struct {
	Pairs []Pair
}

// Error lists the count and the first offending pair for log readability;
// the full set stays available on the struct.
func (e *IncompleteError) Error() string {
	if len(e.Pairs) == 0 {
		return ErrIncomplete.Error()
	}

	return fmt.Sprintf("%s: %d pair(s), first %s-%s",
		ErrIncomplete.Error(), len(e.Pairs), e.Pairs[0].A, e.Pairs[0].B)
}

// Unwrap lets errors.Is(err, ErrIncomplete) match.
func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}
