// Package distmat builds and represents the symmetric, domain-aware
// dissimilarity matrix between resampled growth curves.
//
// 🚀 What it computes
//
//	For every unordered pair of groups {i, j}:
//	  1. the intersection [lo, hi] of the two smoothed models' domains;
//	  2. the sum of |y_i(x) − y_j(x)| over the shared grid points inside
//	     the intersection;
//	  3. the normalized distance raw · step / (hi − lo).
//
//	Dividing by the support WIDTH (not the point count) makes distances
//	comparable across pairs whose domains overlap to different extents;
//	the step factor turns the point sum into a Riemann approximation of
//	∫|y_i − y_j| dx, so refining the grid leaves the distance stable.
//	The result is the average discrepancy per unit of the independent
//	variable, not per sample.
//
// ✨ Undefined is explicit
//
//	A pair whose domains do not intersect — or intersect in an interval
//	containing no shared grid point — has an UNDEFINED distance. The
//	matrix stores that as a distinct marker (At reports ErrUndefinedPair;
//	the numeric cell is NaN), never as 0 and never as a large stand-in.
//	UndefinedPairs lists them; RequireComplete gates the clustering
//	stages, which need a complete matrix.
//
// ⚙️ Usage:
//
//	m, err := distmat.Compute(resampled, models, grid, distmat.DefaultOptions())
//	d, err := m.AtKeys("groupA", "groupB") // errors.Is(err, distmat.ErrUndefinedPair)
//
// Construction fans pairs out across a bounded errgroup; each pair owns its
// two mirrored cells, so the merge is race-free by position. The matrix is
// immutable once Compute returns.
package distmat
