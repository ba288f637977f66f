// SPDX-License-Identifier: MIT

package spgemm_test

import (
	"math/rand"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/spgemm"
	"github.com/katalvlaran/lvsparse/sparse"
)

func eqI(a, b int64) bool { return a == b }

// randomMatrix draws an int64 matrix in format f. Values come from gofuzz,
// folded into [-4, 4] so that products and sums stay exact. FormatFull
// ignores density.
func randomMatrix(t testing.TB, seed int64, rows, cols int, density float64, f sparse.Format) *sparse.Matrix[int64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	fz := fuzz.New().NilChance(0).RandSource(rand.NewSource(seed + 1))
	var (
		ri, ci []int
		vals   []int64
	)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if f != sparse.FormatFull && rng.Float64() >= density {
				continue
			}
			var v int8
			fz.Fuzz(&v)
			ri, ci = append(ri, i), append(ci, j)
			vals = append(vals, int64(v)%5)
		}
	}
	m, err := sparse.FromTriplets(rows, cols, ri, ci, vals, nil, sparse.WithFormat(f))
	require.NoError(t, err)

	return m
}

// mustDense builds an int64 matrix from a row-major table, dropping zeros.
func mustDense(t testing.TB, data [][]int64, f sparse.Format) *sparse.Matrix[int64] {
	t.Helper()
	m, err := sparse.FromDense(data, sparse.NonZero[int64], sparse.WithFormat(f))
	require.NoError(t, err)

	return m
}

// declined reports whether Saxpy answers ErrNotApplicable: both operands
// full and no mask once a full structural M is dropped.
func declined(mask *spgemm.Mask, a, b *sparse.Matrix[int64]) bool {
	if a.Format() != sparse.FormatFull || b.Format() != sparse.FormatFull {
		return false
	}
	return mask == nil ||
		(mask.Format() == sparse.FormatFull && mask.Structural() && !mask.Complemented())
}

// withHeavyColumn draws a rows×cols matrix whose column 0 is full and whose
// other columns hold about one entry in ten.
func withHeavyColumn(t testing.TB, seed int64, rows, cols int) *sparse.Matrix[int64] {
	t.Helper()
	rest := randomMatrix(t, seed, rows, cols, 0.1, sparse.FormatSparse)
	var (
		ri, ci []int
		vals   []int64
	)
	for i := 0; i < rows; i++ {
		ri, ci = append(ri, i), append(ci, 0)
		vals = append(vals, int64(i%7)-3)
	}
	rest.ForEach(func(i, j int, v int64) {
		if j > 0 {
			ri, ci = append(ri, i), append(ci, j)
			vals = append(vals, v)
		}
	})
	m, err := sparse.FromTriplets(rows, cols, ri, ci, vals, nil)
	require.NoError(t, err)

	return m
}

// maskCase is one way to mask a product.
type maskCase struct {
	name string
	make func(m *sparse.Matrix[int64]) *spgemm.Mask
}

func maskCases() []maskCase {
	return []maskCase{
		{"none", func(*sparse.Matrix[int64]) *spgemm.Mask { return nil }},
		{"M", func(m *sparse.Matrix[int64]) *spgemm.Mask { return spgemm.StructuralMask(m) }},
		{"!M", func(m *sparse.Matrix[int64]) *spgemm.Mask { return spgemm.StructuralMask(m).Complement() }},
		{"valued M", func(m *sparse.Matrix[int64]) *spgemm.Mask { return spgemm.NonzeroMask(m) }},
		{"valued !M", func(m *sparse.Matrix[int64]) *spgemm.Mask { return spgemm.NonzeroMask(m).Complement() }},
	}
}

// fineTuning makes every product cheap enough to be planned with several
// workers and costly columns split into fine teams.
func fineTuning() spgemm.Tuning {
	t := spgemm.DefaultTuning()
	t.Chunk = 1
	return t
}

// checkAgainstReference multiplies with Saxpy and Reference and requires
// equal results.
func checkAgainstReference(t *testing.T, mask *spgemm.Mask, a, b *sparse.Matrix[int64], opts ...spgemm.Option) spgemm.Stats {
	t.Helper()
	var st spgemm.Stats
	got, err := spgemm.Saxpy(mask, a, b, semiring.PlusTimes[int64](), append(opts, spgemm.WithStats(&st))...)
	if declined(mask, a, b) {
		require.ErrorIs(t, err, spgemm.ErrNotApplicable)
		return st
	}
	require.NoError(t, err)
	require.NoError(t, got.Validate())
	want, err := spgemm.Reference(mask, a, b, semiring.PlusTimes[int64]())
	require.NoError(t, err)
	require.True(t, sparse.Equal(got, want, eqI), "got\n%v\nwant\n%v", got, want)
	require.LessOrEqual(t, st.Terms, st.EstimatedFlops)
	require.Equal(t, got.Nvals(), st.Nvals)

	return st
}
