// Package curve defines the immutable data model shared by every stage of
// the curveclust pipeline: raw observation series, the common evaluation
// grid, and grid-restricted resampled curves.
//
// 🚀 What lives here?
//
//   - RawCurve       — one group's ordered (x, y) observations.
//   - Domain         — the closed [Min, Max] interval a curve is valid over.
//   - Grid           — the shared, evenly spaced evaluation abscissa.
//   - ResampledCurve — a smoothed curve sampled at the grid points inside
//     its own domain, on the common coordinate system.
//   - Resample       — the pure restriction of an Evaluator to a Grid.
//
// ✨ Design rules:
//
//   - Everything is immutable after construction; accessors copy.
//   - Constructors validate eagerly and return sentinel errors — no panics
//     on user input, no NaN/Inf smuggled past NewRawCurve or NewGrid.
//   - Group collections are plain map[string]T; SortedKeys provides the one
//     canonical ordering every downstream stage must use, so results never
//     depend on map iteration order.
//
// ⚙️ Usage:
//
//	raw, err := curve.NewRawCurve(xs, ys)
//	grid, err := curve.NewGrid(0, 100, 10)
//	rc := curve.Resample(model, grid) // model: any curve.Evaluator
//
// Resample never fails: a curve whose domain misses the grid simply yields
// an empty ResampledCurve; whether that matters is a downstream concern.
package curve
