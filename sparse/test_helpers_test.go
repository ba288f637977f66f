// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

// mustDense builds a float64 matrix from a row-major table, dropping zeros.
func mustDense(t testing.TB, data [][]float64, f sparse.Format) *sparse.Matrix[float64] {
	t.Helper()
	m, err := sparse.FromDense(data, sparse.NonZero[float64], sparse.WithFormat(f))
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	return m
}

// sample3x4 is a small matrix with an empty column (col 2) and an empty row (row 1).
func sample3x4() [][]float64 {
	return [][]float64{
		{1, 0, 0, 4},
		{0, 0, 0, 0},
		{3, 2, 0, 5},
	}
}

func eqF(a, b float64) bool { return a == b }
