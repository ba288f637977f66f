// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/sparse"
)

// TestFromTriplets_Basic builds a matrix out of order and checks sorted storage.
func TestFromTriplets_Basic(t *testing.T) {
	m, err := sparse.FromTriplets(3, 3,
		[]int{2, 0, 1, 0},
		[]int{0, 0, 2, 2},
		[]float64{30, 10, 20, 5},
		nil)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Equal(t, sparse.FormatSparse, m.Format())
	require.Equal(t, 4, m.Nvals())
	require.False(t, m.Jumbled())
	require.Equal(t, []int{0, 2, 2, 4}, m.Pointers())
	require.Equal(t, []int{0, 2, 0, 1}, m.Indices())
	require.Equal(t, []float64{10, 30, 5, 20}, m.Values())
}

// TestFromTriplets_Duplicates checks both rejection and folding of duplicates.
func TestFromTriplets_Duplicates(t *testing.T) {
	ri, ci := []int{1, 1, 0}, []int{1, 1, 1}
	_, err := sparse.FromTriplets(2, 2, ri, ci, []float64{1, 2, 3}, nil)
	require.ErrorIs(t, err, sparse.ErrDuplicate)

	m, err := sparse.FromTriplets(2, 2, ri, ci, []float64{1, 2, 3}, func(a, b float64) float64 { return a + b })
	require.NoError(t, err)
	require.Equal(t, 2, m.Nvals())
	v, ok, err := m.At(1, 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3.0, v)

	// Valueless input folds duplicates silently.
	s, err := sparse.FromTriplets[float64](2, 2, ri, ci, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 2, s.Nvals())
	require.False(t, s.HasValues())
}

// TestFromTriplets_Errors covers the validation ladder.
func TestFromTriplets_Errors(t *testing.T) {
	_, err := sparse.FromTriplets[int](-1, 2, nil, nil, nil, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	_, err = sparse.FromTriplets[int](2, 2, []int{0}, []int{0, 1}, nil, nil)
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	_, err = sparse.FromTriplets(2, 2, []int{0}, []int{0}, []int{1, 2}, nil)
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	_, err = sparse.FromTriplets(2, 2, []int{2}, []int{0}, []int{1}, nil)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	_, err = sparse.FromTriplets(2, 2, []int{0, 1}, []int{0, 1}, []int{1, 2}, nil, sparse.WithIso())
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)
}

// TestFromTriplets_Iso keeps a single shared value.
func TestFromTriplets_Iso(t *testing.T) {
	m, err := sparse.FromTriplets(3, 3, []int{0, 1, 2}, []int{2, 1, 0}, []int{7}, nil, sparse.WithIso())
	require.NoError(t, err)
	require.True(t, m.Iso())
	require.Len(t, m.Values(), 1)
	for _, e := range m.Entries() {
		require.Equal(t, 7, e.Value)
	}
}

// TestFromDense_Ragged rejects non-rectangular input.
func TestFromDense_Ragged(t *testing.T) {
	_, err := sparse.FromDense([][]int{{1, 2}, {3}}, nil)
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)
}

// TestFromDense_AllFormats builds every format from the same table.
func TestFromDense_AllFormats(t *testing.T) {
	for _, f := range sparse.Formats() {
		if f == sparse.FormatFull {
			continue // sample has holes
		}
		m := mustDense(t, sample3x4(), f)
		require.Equal(t, f, m.Format())
		require.Equal(t, 5, m.Nvals())
		require.Equal(t, sample3x4(), m.Dense(0))
	}

	full, err := sparse.FromDense([][]int{{1, 2}, {3, 4}}, nil, sparse.WithFormat(sparse.FormatFull))
	require.NoError(t, err)
	require.Equal(t, 4, full.Nvals())
	v, ok, err := full.At(1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, v)
}

// TestFromCSC_Validation checks pointer and length guards of the adopting builder.
func TestFromCSC_Validation(t *testing.T) {
	_, err := sparse.FromCSC(2, 2, []int{0, 1}, []int{0}, []int{1})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	_, err = sparse.FromCSC(2, 2, []int{1, 1, 1}, []int{0}, []int{1})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	_, err = sparse.FromCSC(2, 2, []int{0, 2, 1}, []int{0, 1}, []int{1, 2})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	_, err = sparse.FromCSC(2, 2, []int{0, 1, 2}, []int{0}, []int{1, 2})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	m, err := sparse.FromCSC(2, 2, []int{0, 1, 2}, []int{1, 0, 99}, []int{5, 6, 99})
	require.NoError(t, err)
	require.Equal(t, 2, m.Nvals())
	require.Len(t, m.Indices(), 2) // trimmed to nnz
}

// TestFromHyperCSC_Validation checks hyperlist ordering.
func TestFromHyperCSC_Validation(t *testing.T) {
	_, err := sparse.FromHyperCSC(3, 5, []int{0, 1, 2}, []int{3, 3}, []int{0, 1}, []int{1, 2})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	_, err = sparse.FromHyperCSC(3, 5, []int{0, 1}, []int{5}, []int{0}, []int{1})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	m, err := sparse.FromHyperCSC(3, 5, []int{0, 1, 3}, []int{1, 4}, []int{2, 0, 1}, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, sparse.FormatHypersparse, m.Format())
	require.Equal(t, 2, m.NVec())
	v, ok, err := m.At(1, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, v)
	_, ok, err = m.At(0, 3)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestFromBitmap_Flags rejects flags outside {0,1}.
func TestFromBitmap_Flags(t *testing.T) {
	_, err := sparse.FromBitmap(1, 2, []int8{1, 2}, []int{1, 2})
	require.ErrorIs(t, err, sparse.ErrInvalidStructure)

	m, err := sparse.FromBitmap(1, 2, []int8{0, 1}, []int{1, 2})
	require.NoError(t, err)
	require.Equal(t, 1, m.Nvals())
}

// TestIdentity builds an iso diagonal.
func TestIdentity(t *testing.T) {
	id, err := sparse.Identity(4, 1.0)
	require.NoError(t, err)
	require.True(t, id.Iso())
	require.Equal(t, 4, id.Nvals())
	require.NoError(t, id.Validate())

	_, err = sparse.Identity(-1, 1.0)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestWithFormat_PanicsOnUnknown keeps option constructors strict.
func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	require.Panics(t, func() { sparse.WithFormat(sparse.Format(42)) })
}
