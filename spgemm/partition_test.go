// SPDX-License-Identifier: MIT

package spgemm_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsparse/spgemm"
	"github.com/katalvlaran/lvsparse/sparse"
)

// bandedA is 64×64 with eight entries per column.
func bandedA(t *testing.T) *sparse.Matrix[int64] {
	t.Helper()
	var ri, ci []int
	for k := 0; k < 64; k++ {
		for r := 0; r < 8; r++ {
			ri, ci = append(ri, (k+r)%64), append(ci, k)
		}
	}
	m, err := sparse.FromTriplets[int64](64, 64, ri, ci, nil, nil)
	require.NoError(t, err)

	return m
}

// oneHeavyB is 64×4: column 0 full, columns 1..3 one entry each.
func oneHeavyB(t *testing.T) *sparse.Matrix[int64] {
	t.Helper()
	var ri, ci []int
	for i := 0; i < 64; i++ {
		ri, ci = append(ri, i), append(ci, 0)
	}
	for j := 1; j < 4; j++ {
		ri, ci = append(ri, 0), append(ci, j)
	}
	m, err := sparse.FromTriplets[int64](64, 4, ri, ci, nil, nil)
	require.NoError(t, err)

	return m
}

func TestMakePlan_SingleThread(t *testing.T) {
	a, b := bandedA(t), oneHeavyB(t)
	pl, err := spgemm.MakePlan(a.Pattern(), b.Pattern(), nil, spgemm.WithThreads(1))
	require.NoError(t, err)
	require.Len(t, pl.Tasks, 1)
	assert.Equal(t, spgemm.TaskCoarse, pl.Tasks[0].Kind)
	assert.Equal(t, 0, pl.Tasks[0].Start)
	assert.Equal(t, 4, pl.Tasks[0].End)
	assert.Equal(t, int64(536), pl.Tasks[0].Flops)
	assert.Equal(t, 1, pl.Threads)
	assert.Equal(t, 1, pl.Coarse())
}

func TestMakePlan_SingleVector(t *testing.T) {
	a := bandedA(t)
	b := column(t, 64, span(0, 64), sparse.FormatSparse)
	pl, err := spgemm.MakePlan(a.Pattern(), b.Pattern(), nil, spgemm.WithThreads(1))
	require.NoError(t, err)
	require.Len(t, pl.Tasks, 1)
	task := pl.Tasks[0]
	assert.Equal(t, spgemm.TaskFine, task.Kind)
	assert.Equal(t, 1, task.TeamSize)
	assert.Equal(t, 0, task.PStart)
	assert.Equal(t, 64, task.PEnd)
	assert.Equal(t, 1, pl.Teams)
}

func TestMakePlan_FineTeam(t *testing.T) {
	a, b := bandedA(t), oneHeavyB(t)
	pl, err := spgemm.MakePlan(a.Pattern(), b.Pattern(), nil,
		spgemm.WithThreads(4), spgemm.WithTuning(fineTuning()))
	require.NoError(t, err)
	assert.Equal(t, 4, pl.Threads)
	assert.Equal(t, int64(536), pl.Cost.Total())

	// target = 536/8 = 67; column 0 costs 512 and becomes ceil(512/33.5)
	// = 16 slices of 4 entries; columns 1..3 stay one coarse task.
	require.Equal(t, 16, pl.Fine)
	assert.Equal(t, 1, pl.Teams)
	require.Equal(t, 1, pl.Coarse())
	for f := 0; f < pl.Fine; f++ {
		task := pl.Tasks[f]
		assert.Equal(t, spgemm.TaskFine, task.Kind)
		assert.Equal(t, 0, task.Leader)
		assert.Equal(t, 16, task.TeamSize)
		assert.Equal(t, f, task.Member(f))
		assert.Equal(t, 4*f, task.PStart)
		assert.Equal(t, 4*f+4, task.PEnd)
		assert.Equal(t, int64(32), task.Flops)
		assert.True(t, task.Gustavson(), "512 candidates in 64 rows")
	}
	last := pl.Tasks[16]
	assert.Equal(t, spgemm.TaskCoarse, last.Kind)
	assert.Equal(t, 1, last.Start)
	assert.Equal(t, 4, last.End)
	assert.Equal(t, int64(24), last.Flops)
	assert.True(t, last.Gustavson(), "auto: 16 slots are too many for 64 rows")

	pl, err = spgemm.MakePlan(a.Pattern(), b.Pattern(), nil, spgemm.WithThreads(4),
		spgemm.WithTuning(fineTuning()), spgemm.WithMethod(spgemm.MethodHash))
	require.NoError(t, err)
	assert.Equal(t, 16, pl.Tasks[16].HashSize)
}

func TestMakePlan_CoversEveryPosition(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		a := randomMatrix(t, seed, 200, 80, 0.02+0.1*rng.Float64(), sparse.FormatSparse)
		b := withHeavyColumn(t, seed+100, 80, 2+rng.Intn(30))
		pl, err := spgemm.MakePlan(a.Pattern(), b.Pattern(), nil,
			spgemm.WithThreads(1+rng.Intn(8)), spgemm.WithTuning(fineTuning()))
		require.NoError(t, err)

		covered := make([]int, b.NVec())
		var flops int64
		for id, task := range pl.Tasks {
			flops += task.Flops
			if id < pl.Fine {
				require.Equal(t, spgemm.TaskFine, task.Kind)
				require.Less(t, task.PStart, task.PEnd)
				covered[task.Start]++
				continue
			}
			require.Equal(t, spgemm.TaskCoarse, task.Kind)
			for kk := task.Start; kk < task.End; kk++ {
				covered[kk]++
			}
		}
		assert.Equal(t, pl.Cost.Total(), flops)
		for kk, n := range covered {
			assert.Positive(t, n, "vector %d", kk)
		}
	}
}

func TestMakePlan_MaskDiscarded(t *testing.T) {
	a := column(t, 100, []int{7}, sparse.FormatSparse)
	b, err := sparse.FromTriplets[int64](1, 100, make([]int, 100), span(0, 100), nil, nil)
	require.NoError(t, err)
	dense := randomMatrix(t, 3, 100, 100, 0.9, sparse.FormatSparse)

	pl, err := spgemm.MakePlan(a.Pattern(), b.Pattern(), spgemm.StructuralMask(dense))
	require.NoError(t, err)
	assert.True(t, pl.MaskDiscarded)
	assert.Equal(t, int64(100), pl.Cost.Total())

	pl, err = spgemm.MakePlan(a.Pattern(), b.Pattern(), spgemm.StructuralMask(dense).Complement())
	require.NoError(t, err)
	assert.False(t, pl.MaskDiscarded)
}

func TestPSlice(t *testing.T) {
	assert.Equal(t, []int{0, 2, 4}, spgemm.PSlice([]int64{0, 1, 2, 3, 4}, 2))
	assert.Equal(t, []int{0, 1, 1, 1, 3}, spgemm.PSlice([]int64{0, 100, 101, 102}, 4))
	assert.Equal(t, []int{0, 0, 0, 3}, spgemm.PSlice([]int64{0, 0, 0, 0}, 3))
	assert.Equal(t, []int{0, 0}, spgemm.PSlice([]int64{0}, 1))
}
