// SPDX-License-Identifier: MIT

package algorithms

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/sparse"
)

// checkGraph validates a square adjacency matrix and, when hasSrc is set,
// the source vertex.
func checkGraph[T any](method string, a *sparse.Matrix[T], src int, hasSrc bool) (int, error) {
	if a == nil {
		return 0, errors.Wrapf(sparse.ErrNilMatrix, "%s", method)
	}
	n := a.Rows()
	if a.Cols() != n {
		return 0, errors.Wrapf(ErrNotSquare, "%s: %dx%d", method, a.Rows(), a.Cols())
	}
	if hasSrc && (src < 0 || src >= n) {
		return 0, errors.Wrapf(ErrSourceOutOfRange, "%s: source %d, n=%d", method, src, n)
	}

	return n, nil
}

// vector builds the n×1 column holding rows; val == nil makes it valueless.
func vector[V any](n int, rows []int, val func(v int) V) (*sparse.Matrix[V], error) {
	cols := make([]int, len(rows))
	var vals []V
	if val != nil {
		vals = make([]V, len(rows))
		for k, r := range rows {
			vals[k] = val(r)
		}
	}

	return sparse.FromTriplets(n, 1, rows, cols, vals, nil)
}

func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}
