// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/spgemm"
)

// TriangleCount counts the triangles of the undirected graph whose
// symmetric adjacency matrix is a. Values and self-loops are ignored.
//
// With L = tril(A,-1), C<L> = L·Lᵀ over plus_pair gives C(i,j) = the number
// of k < j < i closing the triangle {i,j,k}; the sum of C counts each
// triangle once.
//
// Complexity: O(Σ_i deg(i)²) worst case, far less with the mask.
func TriangleCount[T any](a *sparse.Matrix[T], opts ...Option) (int64, error) {
	const method = "TriangleCount"
	if _, err := checkGraph(method, a, 0, false); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)
	if err := o.ctx.Err(); err != nil {
		return 0, errors.Wrap(err, method)
	}

	l := sparse.Cast(a, func(T) int64 { return 1 }).Tril(-1)
	c, err := spgemm.Mxm(spgemm.StructuralMask(l), l, l.Transpose(), semiring.PlusPair[int64](), o.mxm...)
	if err != nil {
		return 0, errors.Wrap(err, method)
	}

	return c.Reduce(func(x, y int64) int64 { return x + y }, 0), nil
}
