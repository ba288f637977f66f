// SPDX-License-Identifier: MIT

// Package spgemm: task partitioner.
//
// Implementation:
//   - Stage 1: pick the worker count from the total cost (one worker per
//     Tuning.Chunk terms). One worker gets one coarse task, or one fine task
//     when B has a single vector.
//   - Stage 2: cut the cost profile into TasksPerThread×threads contiguous,
//     cost-balanced groups; target = total/groups (at least Chunk).
//   - Stage 3: a group within VeryCostlyFactor×target is one coarse task.
//     Otherwise every column above CostlyFactor×target (with more than one
//     B entry) is pulled out into a fine team of ceil(cost/targetFine)
//     cost-balanced slices of its B entries; the columns between extracted
//     ones are flushed as coarse tasks.
//   - Stage 4: size every accumulator (SelectHashSize) from the heaviest
//     column of a coarse task, or the whole column for a fine team.
//
// Output order: all fine tasks, then all coarse tasks, each in column order.

package spgemm

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvsparse/internal/parallel"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Plan is the planner's decision for one product.
type Plan struct {
	Tasks         []Task // fine tasks first, then coarse tasks
	Fine          int    // number of fine tasks
	Teams         int    // number of fine teams
	Threads       int    // workers for the numeric phases
	Cost          Cost   // profile the tasks were cut from
	MaskDiscarded bool   // mask is applied after the multiply
}

// Coarse returns the number of coarse tasks.
func (p Plan) Coarse() int { return len(p.Tasks) - p.Fine }

// MakePlan runs the cost estimator and the partitioner for
// C<mask> = A*B without multiplying.
func MakePlan(a, b sparse.Pattern, mask *Mask, opts ...Option) (Plan, error) {
	if err := checkShapes(a, b, mask); err != nil {
		return Plan{}, err
	}
	o := gatherOptions(opts...)
	if elide, _ := mask.trivial(); elide {
		mask = nil
	}
	pl := makePlan(a, b, mask, &o)

	return pl.Plan, nil
}

// planned carries the plan plus what the phases need to execute it.
type planned struct {
	Plan
	cm   costModel // cost model of the multiply (mask in effect)
	bv   view
	post *Mask // discarded mask, applied to the result
}

// makePlan estimates, applies the mask-discard heuristic and partitions.
func makePlan(a, b sparse.Pattern, mask *Mask, o *Options) planned {
	t := o.tuning
	bv := newView(b)
	npos := 0
	if bv.nvec > 0 {
		_, npos = bv.vec(bv.nvec - 1)
	}
	ethreads := parallel.Threads(float64(npos+bv.nvec), t.Chunk, o.threads)

	cm := newCostModel(a, mask, t.MaskLogFactor)
	cost := estimate(&cm, bv, ethreads)
	pl := planned{bv: bv}
	if mask != nil && !mask.complement && mask.scattered() &&
		float64(cost.MaskWork) > t.MaskDiscardFactor*float64(cost.Total()) {
		pl.post, pl.MaskDiscarded = mask, true
		cm = newCostModel(a, nil, t.MaskLogFactor)
		cost = estimate(&cm, bv, ethreads)
	}
	pl.cm, pl.Cost = cm, cost
	pl.Threads = parallel.Threads(float64(cost.Total()), t.Chunk, o.threads)
	pl.Tasks, pl.Fine, pl.Teams = partition(&cm, &bv, cost, pl.Threads, a.Rows, o)

	return pl
}

// partition cuts the cost profile into tasks.
func partition(cm *costModel, bv *view, cost Cost, nthreads, vlen int, o *Options) (tasks []Task, nfine, nteams int) {
	t := o.tuning
	nvec := bv.nvec
	if nvec == 0 {
		return nil, 0, 0
	}

	// peak bounds the distinct rows C(:,j) can touch: terms plus scattered mask rows.
	peak := func(kk int) int64 {
		p := cost.Column(kk)
		if cm.scatter {
			p += int64(cm.maskColumn(bv.colIndex(kk)).n())
		}
		return p
	}
	coarseTask := func(k0, k1 int) Task {
		var top int64
		for kk := k0; kk < k1; kk++ {
			top = max(top, peak(kk))
		}
		return Task{
			Kind: TaskCoarse, Start: k0, End: k1,
			HashSize: hashSizeOf(top, vlen, o.method),
			Flops:    cost.Cumulative[k1] - cost.Cumulative[k0],
		}
	}

	var fine, coarse []Task
	// team splits vector kk into at most want fine tasks.
	team := func(kk, want int) {
		vstart, _ := bv.vec(kk)
		costs := cm.columnCosts(bv, kk)
		cuts := pslice(costs, want)
		hsize := hashSizeOf(peak(kk), vlen, o.method)
		leader := len(fine)
		for s := 0; s < want; s++ {
			if cuts[s] == cuts[s+1] {
				continue
			}
			fine = append(fine, Task{
				Kind: TaskFine, Start: kk, End: kk + 1,
				PStart: vstart + cuts[s], PEnd: vstart + cuts[s+1],
				Leader: leader, HashSize: hsize,
				Flops: costs[cuts[s+1]] - costs[cuts[s]],
			})
		}
		for f := leader; f < len(fine); f++ {
			fine[f].TeamSize = len(fine) - leader
		}
		nteams++
	}

	if nthreads == 1 {
		if nvec == 1 {
			team(0, 1)
			if len(fine) == 0 { // vector without positions
				coarse = append(coarse, coarseTask(0, 1))
				nteams = 0
			}
		} else {
			coarse = append(coarse, coarseTask(0, nvec))
		}
		return append(fine, coarse...), len(fine), nteams
	}

	ngroups := t.TasksPerThread * nthreads
	target := math.Max(float64(cost.Total())/float64(ngroups), t.Chunk)
	targetFine := target / t.FineWork
	groups := pslice(cost.Cumulative, ngroups)
	for g := 0; g < ngroups; g++ {
		k0, k1 := groups[g], groups[g+1]
		if k0 == k1 {
			continue
		}
		gflops := float64(cost.Cumulative[k1] - cost.Cumulative[k0])
		if gflops <= t.VeryCostlyFactor*target {
			coarse = append(coarse, coarseTask(k0, k1))
			continue
		}
		cstart := k0
		for kk := k0; kk < k1; kk++ {
			jflops := float64(cost.Column(kk))
			vstart, vend := bv.vec(kk)
			if jflops <= t.CostlyFactor*target || vend-vstart <= 1 {
				continue
			}
			if cstart < kk {
				coarse = append(coarse, coarseTask(cstart, kk))
			}
			cstart = kk + 1
			want := int(math.Ceil(jflops / targetFine))
			team(kk, min(max(want, 1), vend-vstart))
		}
		if cstart < k1 {
			coarse = append(coarse, coarseTask(cstart, k1))
		}
	}

	return append(fine, coarse...), len(fine), nteams
}

// hashSizeOf is SelectHashSize in Task encoding (0 = Gustavson).
func hashSizeOf(peak int64, vlen int, method Method) int {
	hsize, dense := SelectHashSize(peak, vlen, method)
	if dense {
		return 0
	}
	return hsize
}

// pslice cuts [0, n) into nparts contiguous ranges of about equal cost,
// where cum (len n+1) is a cumulative cost. Boundary s is the first index
// whose cumulative cost reaches s/nparts of the total.
// Returns nparts+1 non-decreasing boundaries from 0 to n.
func pslice(cum []int64, nparts int) []int {
	n := len(cum) - 1
	total := cum[n]
	cuts := make([]int, nparts+1)
	cuts[nparts] = n
	for s := 1; s < nparts; s++ {
		goal := int64(math.Round(float64(total) * float64(s) / float64(nparts)))
		k := sort.Search(n+1, func(k int) bool { return cum[k] >= goal })
		cuts[s] = max(min(k, n), cuts[s-1])
	}

	return cuts
}
