// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// ExampleFromTriplets builds a small matrix and reads it back.
func ExampleFromTriplets() {
	m, err := sparse.FromTriplets(3, 3,
		[]int{0, 2, 1},
		[]int{0, 0, 2},
		[]float64{1.5, -2, 4},
		nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(m)
	for _, e := range m.Entries() {
		fmt.Printf("(%d,%d)=%g\n", e.Row, e.Col, e.Value)
	}
	// Output:
	// sparse.Matrix[3x3 sparse nvals=3 iso=false jumbled=false]
	// (0,0)=1.5
	// (2,0)=-2
	// (1,2)=4
}

// ExampleMatrix_Convert stores the same entries as a hypersparse matrix.
func ExampleMatrix_Convert() {
	m, _ := sparse.FromDense([][]int{
		{0, 0, 7},
		{0, 0, 0},
	}, sparse.NonZero[int])
	h, _ := m.Convert(sparse.FormatHypersparse)
	fmt.Println(h.Format(), h.Hyperlist(), h.Nvals())
	// Output:
	// hypersparse [2] 1
}
