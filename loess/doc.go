// Package loess implements local polynomial regression (loess-style
// smoothing) for one-dimensional growth curves.
//
// 🚀 What is loess?
//
//	A nonparametric fit: every predicted value comes from a weighted
//	low-degree polynomial fitted over a neighborhood of the query point.
//	The neighborhood size is a fraction of the samples (Span), and the
//	tricube kernel downweights neighbors by distance from the query.
//
// ✨ Key properties:
//
//   - Deterministic — two Predict calls at the same x return the same y;
//     no RNG, no caching visible to callers, no side effects.
//   - Explicit numerics — tricube kernel, span-sized symmetric-nearest
//     window, centered design matrix, QR solve via gonum/mat. No opaque
//     black-box smoother behind the API.
//   - Valid over the observed domain only — Model.Domain() reports
//     [min x, max x]; queries outside it are not guaranteed accurate and
//     are the caller's responsibility (Resample never makes them).
//
// ⚙️ Usage:
//
//	opts := loess.DefaultOptions() // degree 2, span 0.75
//	model, err := loess.Fit(raw, opts)
//	if err != nil {
//	  // loess.ErrInsufficientData, loess.ErrBadDegree, loess.ErrBadSpan
//	}
//	y := model.Predict(42.0)
//
// Complexity: Fit is O(1) (the model holds the samples); each Predict is
// O(n) window selection + O(w·d²) weighted least squares, w = window size.
package loess
