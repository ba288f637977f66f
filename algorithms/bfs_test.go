// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/algorithms"
	"github.com/katalvlaran/lvsparse/builder"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/spgemm"
)

func mustBuild(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *sparse.Matrix[int] {
	t.Helper()
	m, err := builder.Build[int](opts, cons...)
	require.NoError(t, err)
	return m
}

// checkTree verifies that every parent is one level up and adjacent.
func checkTree(t *testing.T, a *sparse.Matrix[int], res algorithms.BFSResult) {
	t.Helper()
	for v, p := range res.Parent {
		switch {
		case res.Level[v] < 0:
			assert.Equal(t, -1, p, "vertex %d", v)
		case res.Level[v] == 0:
			assert.Equal(t, v, p)
		default:
			require.GreaterOrEqual(t, p, 0, "vertex %d", v)
			assert.Equal(t, res.Level[v]-1, res.Level[p], "vertex %d parent %d", v, p)
			_, ok, err := a.At(p, v)
			require.NoError(t, err)
			assert.True(t, ok, "edge %d→%d", p, v)
		}
	}
}

func TestBFSLevels_Path(t *testing.T) {
	a := mustBuild(t, nil, builder.Path(5))
	res, err := algorithms.BFSLevels(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Level)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
	assert.Nil(t, res.Parent)

	res, err = algorithms.BFSLevels(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0, 1, 2}, res.Level)
	assert.Equal(t, []int{2, 1, 3, 0, 4}, res.Order)
}

func TestBFSParents_Path(t *testing.T) {
	a := mustBuild(t, nil, builder.Path(5))
	res, err := algorithms.BFSParents(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 2, 3}, res.Parent)
}

func TestBFS_Grid(t *testing.T) {
	const rows, cols = 4, 5
	a := mustBuild(t, nil, builder.Grid(rows, cols))
	res, err := algorithms.BFSParents(a, 0)
	require.NoError(t, err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			assert.Equal(t, r+c, res.Level[r*cols+c])
		}
	}
	checkTree(t, a, res)
	assert.Len(t, res.Order, rows*cols)
}

func TestBFS_Unreachable(t *testing.T) {
	a := mustBuild(t, nil, builder.Path(2), builder.Cycle(3))
	res, err := algorithms.BFSParents(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, -1, -1, -1}, res.Level)
	assert.Equal(t, []int{0, 0, -1, -1, -1}, res.Parent)
}

func TestBFS_Directed(t *testing.T) {
	a := mustBuild(t, []builder.BuilderOption{builder.WithDirected()}, builder.Cycle(4))
	res, err := algorithms.BFSLevels(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 0, 1, 2}, res.Level)
}

func TestBFS_EngineOptions(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a := mustBuild(t, opts, builder.RandomSparse(120, 0.03))
	want, err := algorithms.BFSLevels(a, 3)
	require.NoError(t, err)

	tuning := spgemm.DefaultTuning()
	tuning.Chunk = 1
	for _, m := range []spgemm.Method{spgemm.MethodAuto, spgemm.MethodGustavson, spgemm.MethodHash} {
		for _, f := range []sparse.Format{sparse.FormatSparse, sparse.FormatHypersparse, sparse.FormatBitmap} {
			af, err := a.Convert(f)
			require.NoError(t, err)
			got, err := algorithms.BFSParents(af, 3, algorithms.WithMxmOptions(
				spgemm.WithMethod(m), spgemm.WithThreads(4), spgemm.WithTuning(tuning)))
			require.NoError(t, err)
			assert.Equal(t, want.Level, got.Level, "%s/%s", m, f)
			assert.Equal(t, want.Order, got.Order, "%s/%s", m, f)
			checkTree(t, a, got)
		}
	}
}

func TestBFS_Hooks(t *testing.T) {
	a := mustBuild(t, nil, builder.Star(6))
	var levels []int
	var sizes []int
	_, err := algorithms.BFSLevels(a, 0, algorithms.WithOnLevel(func(level int, frontier []int) error {
		levels = append(levels, level)
		sizes = append(sizes, len(frontier))
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, levels)
	assert.Equal(t, []int{1, 5}, sizes)

	stop := errors.New("stop")
	res, err := algorithms.BFSLevels(a, 0, algorithms.WithOnLevel(func(level int, _ []int) error {
		if level == 1 {
			return stop
		}
		return nil
	}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, stop))
	assert.Equal(t, 1, res.Level[5], "levels found before the hook stay")
}

func TestBFS_Context(t *testing.T) {
	a := mustBuild(t, nil, builder.Path(3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := algorithms.BFSLevels(a, 0, algorithms.WithContext(ctx))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	assert.Panics(t, func() {
		//nolint:staticcheck // nil context on purpose
		algorithms.WithContext(nil)
	})
}

func TestBFS_Errors(t *testing.T) {
	rect, err := sparse.New[int](2, 3)
	require.NoError(t, err)
	sq := mustBuild(t, nil, builder.Path(3))

	_, err = algorithms.BFSLevels[int](nil, 0)
	assert.True(t, errors.Is(err, sparse.ErrNilMatrix))
	_, err = algorithms.BFSLevels(rect, 0)
	assert.True(t, errors.Is(err, algorithms.ErrNotSquare))
	_, err = algorithms.BFSParents(sq, 3)
	assert.True(t, errors.Is(err, algorithms.ErrSourceOutOfRange))
	_, err = algorithms.BFSParents(sq, -1)
	assert.True(t, errors.Is(err, algorithms.ErrSourceOutOfRange))
}
