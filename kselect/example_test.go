package kselect_test

import (
	"fmt"

	"github.com/katalvlaran/curveclust/distmat"
	"github.com/katalvlaran/curveclust/kselect"
)

// ExampleSelect scores every candidate cluster count on a matrix with two
// planted blocks and reads off the silhouette-best k. Gap columns are
// omitted from the output: they depend on the (seeded) null replicates,
// the silhouette does not.
func ExampleSelect() {
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

	opts := kselect.DefaultOptions(m.Len())
	opts.Replicates = 25
	opts.Seed = 1

	table, err := kselect.Select(m, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("candidates=%d..%d\n", table[0].K, table[len(table)-1].K)
	fmt.Printf("best=%d silhouette=%.2f\n", table.BestSilhouette(), table[0].Silhouette)
	// Output:
	// candidates=2..5
	// best=2 silhouette=0.99
}
