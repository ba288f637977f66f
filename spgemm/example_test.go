// SPDX-License-Identifier: MIT

package spgemm_test

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/spgemm"
	"github.com/katalvlaran/lvsparse/sparse"
)

func ExampleSaxpy() {
	a, _ := sparse.FromDense([][]int{{1, 2}, {3, 4}}, nil)
	b, _ := sparse.FromDense([][]int{{5, 6}, {7, 8}}, nil)
	m, _ := sparse.FromDense([][]int{{1, 1}, {1, 0}}, sparse.NonZero[int])

	c, err := spgemm.Saxpy(spgemm.StructuralMask(m), a, b, semiring.PlusTimes[int]())
	if err != nil {
		panic(err)
	}
	fmt.Println(c.Dense(0))
	// Output: [[19 22] [43 0]]
}

func ExampleSaxpy_reachability() {
	// Edges 0→1, 1→2 as a column-oriented adjacency: A(j,i) for i→j.
	a, _ := sparse.FromTriplets(3, 3, []int{1, 2}, []int{0, 1}, []int{1, 1}, nil)
	q, _ := sparse.FromTriplets(3, 1, []int{0}, []int{0}, []int{1}, nil)

	next, _ := spgemm.Saxpy(nil, a, q, semiring.AnyPair[int]())
	fmt.Println(next.Nvals(), next.Iso())
	// Output: 1 true
}

func ExampleMxm() {
	a, _ := sparse.FromDense([][]float64{{1, 2}, {3, 4}}, nil, sparse.WithFormat(sparse.FormatFull))

	var st spgemm.Stats
	c, _ := spgemm.Mxm(nil, a, a, semiring.PlusTimes[float64](), spgemm.WithStats(&st))
	fmt.Println(c.Dense(0), st.DenseFallback)
	// Output: [[7 10] [15 22]] true
}
