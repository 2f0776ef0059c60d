package pam_test

import (
	"fmt"

	"github.com/katalvlaran/curveclust/distmat"
	"github.com/katalvlaran/curveclust/pam"
)

// //////////////////////////////////////////////////////////////////////////////
// ExamplePartition
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Six groups forming two tight blocks: the a-groups sit 0.1 apart from
//	each other, the b-groups likewise, and the blocks are 10 apart.
//
// Use case:
//
//	Cluster groups around actual members (medoids), so every cluster
//	center is a real group and the result needs nothing beyond the
//	pairwise distances.
//
// Complexity: O(k·n²) BUILD + O(k·n²) per accepted SWAP.
func ExamplePartition() {
	keys := []string{"a0", "a1", "a2", "b0", "b1", "b2"}
	rows := make([][]float64, 6)
	for i := range rows {
		rows[i] = make([]float64, 6)
		for j := range rows[i] {
			switch {
			case i == j:
				rows[i][j] = 0
			case (i < 3) == (j < 3):
				rows[i][j] = 0.1
			default:
				rows[i][j] = 10.0
			}
		}
	}
	m, err := distmat.FromDense(keys, rows)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := pam.Partition(m, 2, pam.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("medoids=%v\ncost=%.1f\n", res.Medoids, res.Cost)
	fmt.Printf("a2→%d b2→%d\n", res.Assignment["a2"], res.Assignment["b2"])
	// Output:
	// medoids=[0 3]
	// cost=0.4
	// a2→0 b2→1
}
