// Package pam partitions groups around medoids (the PAM algorithm) on a
// precomputed dissimilarity matrix.
//
// 🚀 What is PAM?
//
//	k-medoids clustering: pick k actual groups as cluster representatives
//	(medoids), assign every group to its nearest medoid, and iteratively
//	swap medoids with non-medoids while the total assignment cost drops.
//	Unlike k-means it needs only pairwise dissimilarities — exactly what
//	the domain-overlap distance provides — and its centers are real,
//	inspectable groups.
//
// ✨ Determinism
//
//	No randomization anywhere:
//	  - BUILD greedily adds the medoid minimizing total nearest-medoid
//	    distance, ties to the lowest group index;
//	  - SWAP scans candidates in a fixed ascending order and accepts the
//	    FIRST strictly improving swap (Δ < −Eps), restarting after each
//	    acceptance until a local optimum (or MaxIters accepted swaps);
//	  - assignment ties go to the lowest medoid index.
//	Same matrix + same k ⇒ same partition, on every run and platform.
//
// ⚙️ Usage:
//
//	res, err := pam.Partition(m, 3, pam.DefaultOptions())
//	if errors.Is(err, distmat.ErrIncomplete) {
//	  // matrix has undefined pairs; PAM requires a complete metric
//	}
//	cluster := res.Assignment["proteinA"] // in [0, k)
//
// Complexity: BUILD O(k·n²); each SWAP scan O(k·n·n) candidate checks with
// O(n·k) per check ⇒ O(iter·k·n²) typical; memory O(n²) for the prefetched
// flat distance buffer.
package pam
