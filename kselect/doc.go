// Package kselect computes cluster-count quality metrics over a candidate
// range of k, to guide the choice of the number of clusters.
//
// 🚀 What it produces
//
//	For each k in [KMin, KMax], a Metrics row:
//	  - Dispersion — the PAM total assignment cost at k (each group's
//	    distance to its medoid, summed);
//	  - Silhouette — the mean silhouette width of the PAM partition;
//	  - Gap/GapSE  — the gap statistic against a resampled null reference,
//	    with its Monte Carlo standard error over B replicates.
//
// ✨ Selection stays a judgment call
//
//	Select returns the full per-k Table; it deliberately does NOT pick a
//	single k. Elbow reading, gap rules and visual inspection of the
//	resulting partitions belong to the caller. Table.BestSilhouette is a
//	convenience for the most common heuristic, nothing more.
//
// ⚙️ Determinism
//
//	Replicate RNG streams are derived per k from Options.Seed (seed 0 maps
//	to a fixed default), so the table is reproducible and independent of
//	how the per-k work is scheduled across the errgroup workers.
//
// Precondition: a COMPLETE distance matrix; an undefined pair surfaces as
// distmat.ErrIncomplete (via the underlying PAM runs), never as a guess.
//
// Complexity: O((KMax−KMin+1) · (1+B) · PAM) where PAM is the partition
// cost at the given n and k.
package kselect
