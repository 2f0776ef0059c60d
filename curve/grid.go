// Package curve - shared evaluation grid.
//
// Grid materializes the evenly spaced abscissa once at construction and is
// read-only afterwards, so it can be shared freely across goroutines. All
// inside-the-domain index arithmetic lives here (IndexRange), behind a small
// tolerance, so resampling and the distance engine agree bit-for-bit on
// which grid points a domain contains.
package curve

import "math"

// gridTol is the relative tolerance (in units of step) used when deciding
// whether a domain bound coincides with a grid point. It absorbs the usual
// start+i*step rounding noise without ever moving a bound by a visible
// fraction of the step.
const gridTol = 1e-9

// Grid is the process-wide, immutable, ascending sequence of evaluation
// points start, start+step, ..., up to and including stop (when stop lands
// on the lattice). Construct via NewGrid; the zero value is not usable.
type Grid struct {
	start float64
	stop  float64
	step  float64
	pts   []float64
}

// NewGrid validates the parameters and materializes the points.
//
// Contract:
//   - start, stop, step finite,
//   - step > 0,
//   - stop >= start (a single-point grid when stop == start).
//
// Complexity: O(n) time and space, n = number of grid points.
func NewGrid(start, stop, step float64) (*Grid, error) {
	// Stage 1: parameter sanity.
	if math.IsNaN(start) || math.IsInf(start, 0) ||
		math.IsNaN(stop) || math.IsInf(stop, 0) ||
		math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, ErrBadGrid
	}
	if step <= 0 || stop < start {
		return nil, ErrBadGrid
	}

	// Stage 2: materialize start + i*step. The tolerance lets stop==start+k*step
	// include its last point despite accumulated FP noise.
	var (
		n   = int(math.Floor((stop-start)/step+gridTol)) + 1
		pts = make([]float64, n)
		i   int
	)
	for i = 0; i < n; i++ {
		pts[i] = start + float64(i)*step
	}

	return &Grid{start: start, stop: stop, step: step, pts: pts}, nil
}

// Start returns the configured lower bound.
func (g *Grid) Start() float64 { return g.start }

// Stop returns the configured upper bound.
func (g *Grid) Stop() float64 { return g.stop }

// Step returns the spacing between consecutive points.
func (g *Grid) Step() float64 { return g.step }

// Len returns the number of grid points.
func (g *Grid) Len() int { return len(g.pts) }

// At returns the i-th grid point. Panics only on programmer error (index out
// of range), like slice access.
// Complexity: O(1).
func (g *Grid) At(i int) float64 { return g.pts[i] }

// Points returns a copy of all grid points in ascending order.
// Complexity: O(n).
func (g *Grid) Points() []float64 {
	out := make([]float64, len(g.pts))
	copy(out, g.pts)

	return out
}

// IndexRange returns the inclusive index range [lo, hi] of grid points that
// lie inside the closed domain d. When no grid point falls inside, lo > hi.
//
// The comparison uses gridTol·step slack on both bounds so a domain edge
// that mathematically equals a grid point is never excluded by FP noise.
//
// Complexity: O(1).
func (g *Grid) IndexRange(d Domain) (lo, hi int) {
	if d.Empty() {
		return 1, 0
	}

	var tol = gridTol * g.step

	// First index with pts[lo] >= d.Min (within tol).
	lo = int(math.Ceil((d.Min - g.start - tol) / g.step))
	if lo < 0 {
		lo = 0
	}
	// Last index with pts[hi] <= d.Max (within tol).
	hi = int(math.Floor((d.Max - g.start + tol) / g.step))
	if hi > len(g.pts)-1 {
		hi = len(g.pts) - 1
	}

	return lo, hi
}
