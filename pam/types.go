// Package pam - options, result, sentinel errors.
package pam

import "errors"

var (
	// ErrNilMatrix is returned when the matrix is nil.
	ErrNilMatrix = errors.New("pam: nil distance matrix")

	// ErrBadK is returned unless 2 <= k <= number of groups.
	ErrBadK = errors.New("pam: k out of range")

	// ErrBadOptions is returned for negative Eps or MaxIters.
	ErrBadOptions = errors.New("pam: invalid options")
)

// Options configures the swap phase.
//
// Fields:
//   - MaxIters — bound on ACCEPTED swaps; 0 means run to the local optimum.
//   - Eps      — acceptance tolerance: a swap is taken only when
//     Δcost < −Eps. 0 (the default) accepts any strict improvement; a
//     small positive value suppresses FP-noise churn.
type Options struct {
	MaxIters int
	Eps      float64
}

// DefaultOptions returns the canonical configuration (run to local
// optimum, strict improvement).
func DefaultOptions() Options {
	return Options{MaxIters: 0, Eps: 0}
}

// validate checks internal consistency of Options.
// Complexity: O(1).
func (o Options) validate() error {
	if o.MaxIters < 0 || o.Eps < 0 {
		return ErrBadOptions
	}

	return nil
}

// Result is a terminal clustering output.
//
// Medoids holds the k medoid group indices in ascending order; cluster id
// c is the position of its medoid in Medoids, so ids are stable and lie in
// [0, k). Labels is indexed like the matrix keys; Assignment is the same
// mapping addressed by group key.
type Result struct {
	Medoids    []int
	Labels     []int
	Assignment map[string]int
	Cost       float64
}
