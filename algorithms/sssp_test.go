// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/algorithms"
	"github.com/katalvlaran/lvsparse/builder"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/spgemm"
)

// digraph builds an n-vertex weighted digraph from (u, v, w) triples.
func digraph(t *testing.T, n int, edges [][3]int) *sparse.Matrix[int] {
	t.Helper()
	var src, dst, w []int
	for _, e := range edges {
		src, dst, w = append(src, e[0]), append(dst, e[1]), append(w, e[2])
	}
	m, err := sparse.FromTriplets(n, n, src, dst, w, nil)
	require.NoError(t, err)
	return m
}

func TestSSSP_Weighted(t *testing.T) {
	a := digraph(t, 5, [][3]int{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {1, 3, 1}, {2, 3, 5},
	})
	p, err := algorithms.SSSP(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true, false}, p.Reached)
	assert.Equal(t, []int{0, 3, 1, 4}, p.Dist[:4])
	assert.LessOrEqual(t, p.Rounds, 5)
}

func TestSSSP_NegativeEdges(t *testing.T) {
	a := digraph(t, 3, [][3]int{{0, 1, 2}, {1, 2, -1}, {0, 2, 3}})
	p, err := algorithms.SSSP(a, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, p.Dist)
}

func TestSSSP_NegativeCycle(t *testing.T) {
	a := digraph(t, 3, [][3]int{{0, 1, 1}, {1, 2, -2}, {2, 1, 1}})
	_, err := algorithms.SSSP(a, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, algorithms.ErrNegativeCycle))

	// A negative cycle the source cannot reach is ignored.
	b := digraph(t, 4, [][3]int{{0, 1, 5}, {2, 3, -2}, {3, 2, 1}})
	p, err := algorithms.SSSP(b, 0)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, false}, p.Reached)
}

func TestSSSP_MatchesBFSOnUnitWeights(t *testing.T) {
	a := mustBuild(t, []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(80, 0.05))
	levels, err := algorithms.BFSLevels(a, 0)
	require.NoError(t, err)

	p, err := algorithms.SSSP(a.Structure(), 0, algorithms.WithMxmOptions(spgemm.WithThreads(3)))
	require.NoError(t, err)
	for v, l := range levels.Level {
		assert.Equal(t, l >= 0, p.Reached[v], "vertex %d", v)
		if l >= 0 {
			assert.Equal(t, l, p.Dist[v], "vertex %d", v)
		}
	}
}

func TestSSSP_FloatWeights(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(0.5, 2)}
	a, err := builder.Build[float64](opts, builder.Grid(3, 3))
	require.NoError(t, err)
	p, err := algorithms.SSSP(a, 0)
	require.NoError(t, err)
	for v := range p.Dist {
		assert.True(t, p.Reached[v])
		assert.GreaterOrEqual(t, p.Dist[v], 0.0)
	}
	assert.Equal(t, 0.0, p.Dist[0])

	// Triangle inequality on every edge.
	a.ForEach(func(u, v int, w float64) {
		assert.LessOrEqual(t, p.Dist[v], p.Dist[u]+w+1e-12)
	})
}

func TestSSSP_Errors(t *testing.T) {
	_, err := algorithms.SSSP[int](nil, 0)
	assert.True(t, errors.Is(err, sparse.ErrNilMatrix))
	a := mustBuild(t, nil, builder.Path(2))
	_, err = algorithms.SSSP(a, 2)
	assert.True(t, errors.Is(err, algorithms.ErrSourceOutOfRange))
}
