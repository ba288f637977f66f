// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

// TestAt_AllFormats reads every cell through At in every format.
func TestAt_AllFormats(t *testing.T) {
	data := sample3x4()
	for _, f := range []sparse.Format{sparse.FormatSparse, sparse.FormatHypersparse, sparse.FormatBitmap} {
		m := mustDense(t, data, f)
		for i := range data {
			for j := range data[i] {
				v, ok, err := m.At(i, j)
				require.NoError(t, err)
				assert.Equal(t, data[i][j] != 0, ok, "%s (%d,%d)", f, i, j)
				assert.Equal(t, data[i][j], v, "%s (%d,%d)", f, i, j)
			}
		}
	}
}

// TestAt_OutOfRange guards the bounds.
func TestAt_OutOfRange(t *testing.T) {
	m := mustDense(t, sample3x4(), sparse.FormatSparse)
	for _, c := range [][2]int{{-1, 0}, {3, 0}, {0, -1}, {0, 4}} {
		_, _, err := m.At(c[0], c[1])
		require.ErrorIs(t, err, sparse.ErrOutOfRange)
	}
}

// TestAt_Jumbled falls back to a linear scan.
func TestAt_Jumbled(t *testing.T) {
	m, err := sparse.FromCSC(4, 1, []int{0, 3}, []int{3, 0, 2}, []int{30, 0, 20}, sparse.WithJumbled())
	require.NoError(t, err)
	require.True(t, m.Jumbled())
	v, ok, err := m.At(2, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 20, v)
	_, ok, _ = m.At(1, 0)
	require.False(t, ok)
}

// TestEntries_Order lists entries column by column.
func TestEntries_Order(t *testing.T) {
	m := mustDense(t, sample3x4(), sparse.FormatBitmap)
	got := m.Entries()
	want := []sparse.Entry[float64]{
		{Row: 0, Col: 0, Value: 1}, {Row: 2, Col: 0, Value: 3},
		{Row: 2, Col: 1, Value: 2},
		{Row: 0, Col: 3, Value: 4}, {Row: 2, Col: 3, Value: 5},
	}
	require.Equal(t, want, got)
}

// TestPattern_Aliases exposes the same arrays without copying.
func TestPattern_Aliases(t *testing.T) {
	m := mustDense(t, sample3x4(), sparse.FormatSparse)
	p := m.Pattern()
	require.Equal(t, 3, p.Rows)
	require.Equal(t, 4, p.Cols)
	require.Equal(t, sparse.FormatSparse, p.Format)
	require.Equal(t, m.Pointers(), p.P)
	require.Equal(t, m.Indices(), p.I)
	require.Nil(t, p.H)
	require.Nil(t, p.B)
}

// TestHyperLookup finds present and absent columns.
func TestHyperLookup(t *testing.T) {
	h := []int{1, 4, 9}
	kk, ok := sparse.HyperLookup(h, 4)
	require.True(t, ok)
	require.Equal(t, 1, kk)
	_, ok = sparse.HyperLookup(h, 5)
	require.False(t, ok)
	_, ok = sparse.HyperLookup(nil, 0)
	require.False(t, ok)
}

// TestFormat_String names each format.
func TestFormat_String(t *testing.T) {
	require.Equal(t, "sparse", sparse.FormatSparse.String())
	require.Equal(t, "hypersparse", sparse.FormatHypersparse.String())
	require.Equal(t, "bitmap", sparse.FormatBitmap.String())
	require.Equal(t, "full", sparse.FormatFull.String())
	require.Equal(t, "unknown", sparse.Format(7).String())
	require.Contains(t, mustDense(t, sample3x4(), sparse.FormatSparse).String(), "3x4 sparse nvals=5")
}

// TestNew starts empty.
func TestNew(t *testing.T) {
	m, err := sparse.New[int](2, 3)
	require.NoError(t, err)
	require.Equal(t, 0, m.Nvals())
	require.True(t, m.HasValues())
	require.NoError(t, m.Validate())

	_, err = sparse.New[int](2, -3)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}
