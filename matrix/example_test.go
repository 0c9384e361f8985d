// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chemsp/matrix"
)

// ExampleEigenSym decomposes the path-graph Laplacian on three nodes.
func ExampleEigenSym() {
	L, _ := matrix.NewDenseFrom([][]float64{
		{1, -1, 0},
		{-1, 2, -1},
		{0, -1, 1},
	})
	vals, _, err := matrix.EigenSym(L)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range vals {
		fmt.Printf("%.4f\n", math.Round(v*1e4)/1e4+0) // +0 folds -0 into 0
	}
	// Output:
	// 0.0000
	// 1.0000
	// 3.0000
}

// ExampleEigen shows the raw solver keeping diagonal order.
func ExampleEigen() {
	D, _ := matrix.NewDiagonal([]float64{2, -1, 5})
	vals, _, err := matrix.Eigen(D, 1e-12, 10)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vals)
	// Output:
	// [2 -1 5]
}
