// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

// TestConvert_RoundTrip converts between every pair of non-full formats and
// checks the entries survive.
func TestConvert_RoundTrip(t *testing.T) {
	src := mustDense(t, sample3x4(), sparse.FormatSparse)
	for _, from := range []sparse.Format{sparse.FormatSparse, sparse.FormatHypersparse, sparse.FormatBitmap} {
		a, err := src.Convert(from)
		require.NoError(t, err)
		for _, to := range []sparse.Format{sparse.FormatSparse, sparse.FormatHypersparse, sparse.FormatBitmap} {
			b, err := a.Convert(to)
			require.NoError(t, err, "%s -> %s", from, to)
			require.NoError(t, b.Validate())
			require.Equal(t, to, b.Format())
			require.True(t, sparse.Equal(src, b, eqF), "%s -> %s", from, to)
		}
	}
}

// TestConvert_Hyper drops empty columns from the hyperlist.
func TestConvert_Hyper(t *testing.T) {
	h := mustDense(t, sample3x4(), sparse.FormatHypersparse)
	require.Equal(t, []int{0, 1, 3}, h.Hyperlist())
	require.Equal(t, []int{0, 2, 3, 5}, h.Pointers())
	require.Equal(t, 3, h.NVec())
	require.Equal(t, 3, h.ColumnIndex(2))

	pstart, pend := h.ColumnRange(2)
	require.Equal(t, pstart, pend)
}

// TestConvert_FullNeedsEveryCell refuses to drop absent cells silently.
func TestConvert_FullNeedsEveryCell(t *testing.T) {
	m := mustDense(t, sample3x4(), sparse.FormatSparse)
	_, err := m.Convert(sparse.FormatFull)
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	_, err = m.Convert(sparse.Format(9))
	require.ErrorIs(t, err, sparse.ErrUnknownFormat)

	dense := mustDense(t, [][]float64{{1, 2}, {3, 4}}, sparse.FormatSparse)
	full, err := dense.Convert(sparse.FormatFull)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3, 2, 4}, full.Values()) // column-major
	require.Nil(t, full.Bitmap())
}

// TestConvert_IsoAndValueless keeps the value mode across formats.
func TestConvert_IsoAndValueless(t *testing.T) {
	id, err := sparse.Identity(3, 2.5)
	require.NoError(t, err)
	for _, f := range []sparse.Format{sparse.FormatHypersparse, sparse.FormatBitmap} {
		c, err := id.Convert(f)
		require.NoError(t, err)
		require.True(t, c.Iso())
		require.Len(t, c.Values(), 1)
		v, ok, err := c.At(2, 2)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2.5, v)
	}

	s := id.Structure()
	require.False(t, s.HasValues())
	b, err := s.Convert(sparse.FormatBitmap)
	require.NoError(t, err)
	require.False(t, b.HasValues())
	require.Equal(t, 3, b.Nvals())
}

// TestConvert_DoesNotAlias makes sure the copy is independent.
func TestConvert_DoesNotAlias(t *testing.T) {
	m := mustDense(t, sample3x4(), sparse.FormatSparse)
	c, err := m.Convert(sparse.FormatSparse)
	require.NoError(t, err)
	c.Values()[0] = 100
	v, _, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)
}
