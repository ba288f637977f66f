// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/builder"
	"github.com/katalvlaran/lvsparse/sparse"
)

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithFormat(sparse.Format(200)) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Panics(t, func() { builder.IntWeightFn(5, 4) })
	assert.Panics(t, func() { builder.NormalWeightFn(0, -1) })
}

func TestOptions_LastWins(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithConstantWeight(3), builder.WithConstantWeight(7), nil}
	m, err := builder.Build[int](opts, builder.Path(3))
	require.NoError(t, err)
	for _, v := range m.Values() {
		assert.Equal(t, 7, v)
	}
}

func TestWeightFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 2.5, builder.ConstantWeightFn(2.5)(nil))

	u := builder.UniformWeightFn(2, 4)
	for k := 0; k < 100; k++ {
		w := u(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 4.0)
	}
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, u(nil))

	in := builder.IntWeightFn(-2, 2)
	for k := 0; k < 100; k++ {
		w := in(rng)
		assert.Equal(t, w, float64(int(w)))
		assert.GreaterOrEqual(t, w, -2.0)
		assert.LessOrEqual(t, w, 2.0)
	}

	n := builder.NormalWeightFn(5, 0)
	assert.Equal(t, 5.0, n(rng))
	assert.Equal(t, 0.0, builder.NormalWeightFn(-5, 0)(rng))
}

func TestWithRand_SharedSource(t *testing.T) {
	build := func() *sparse.Matrix[float64] {
		opts := []builder.BuilderOption{
			builder.WithRand(rand.New(rand.NewSource(9))),
			builder.WithUniformWeight(0, 1),
		}
		m, err := builder.Build[float64](opts, builder.Grid(3, 3))
		require.NoError(t, err)
		return m
	}
	a, b := build(), build()
	assert.Equal(t, a.Values(), b.Values())
	symmetric(t, a)
}
