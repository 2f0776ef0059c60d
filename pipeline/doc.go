// Package pipeline wires the curveclust stages together behind one
// configuration surface: smooth → resample → distances → {k-selection,
// partition}.
//
// The flow is strictly linear and every stage output is immutable; the
// pipeline adds only the two policy decisions the core stages refuse to
// make on their own:
//
//   - on_insufficient — what to do when a group cannot support the
//     configured regression degree: "fail" the whole run (default) or
//     "skip" the group, reporting it in Result.Skipped.
//   - on_undefined    — what to do when pairs of groups have undefined
//     distances (non-overlapping domains): "fail" (default; the
//     distmat.IncompleteError lists every pair) or "drop-groups", which
//     iteratively removes the group participating in the most undefined
//     pairs until the matrix is complete, reporting drops in
//     Result.Dropped.
//
// Neither policy ever substitutes a numeric default for an undefined
// quantity; groups are excluded whole or the run fails loudly.
//
// Config round-trips through YAML (LoadConfig) for batch runs driven by a
// file; all fields have in-process defaults (DefaultConfig).
package pipeline
