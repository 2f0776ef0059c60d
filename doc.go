// Package curveclust clusters empirically measured growth curves by shape
// similarity — even when each curve was sampled over a different sub-range
// of the independent variable.
//
// 🚀 What is curveclust?
//
//	A batch, in-memory analysis library that brings together:
//		• Smoothing: explicit local polynomial regression (loess-style)
//		• Resampling: every curve evaluated on one shared grid
//		• Distance: domain-overlap-normalized L1 dissimilarity per pair
//		• Selection: dispersion, silhouette and gap-statistic per k
//		• Partitioning: deterministic partition-around-medoids (PAM)
//
// ✨ Why choose curveclust?
//
//   - Honest about partial overlap – distances are normalized by the
//     overlap WIDTH, and non-overlapping pairs stay explicitly undefined
//     instead of becoming a fake 0 or a giant placeholder
//   - Deterministic – canonical group ordering, seeded resampling,
//     first-improvement swaps with fixed scan order; same input, same output
//   - Pure Go core on gonum numerics – no opaque statistical black box
//
// Everything is organized under five subpackages plus a thin wiring layer:
//
//	curve/    — immutable data model: RawCurve, Grid, ResampledCurve
//	loess/    — CurveSmoother: local weighted polynomial regression
//	distmat/  — pairwise engine + symmetric DistanceMatrix with undefined cells
//	kselect/  — per-k metrics table (dispersion, silhouette, gap)
//	pam/      — partition-around-medoids clustering
//	pipeline/ — YAML config, error policies, smooth→resample→distances→cluster
//
// Quick sketch:
//
//	raw curves ──loess──▶ models ──resample──▶ grid curves
//	           ──distmat──▶ distance matrix ──▶ {kselect table, pam partition}
//
// Dive into the per-package doc.go files for contracts, error taxonomies
// and complexity notes, and into examples/ for an end-to-end run.
//
//	go get github.com/katalvlaran/curveclust
package curveclust
