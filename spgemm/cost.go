// SPDX-License-Identifier: MIT

// Package spgemm: cost estimator.
//
// Purpose:
//   - Estimate, per stored vector of B, the multiply terms needed to form
//     the matching column of C, plus the mask entries the multiply would
//     consult. The cumulative profile drives task partitioning; per-column
//     values size hash tables.
//
// Model (per entry B(k,j)):
//   - cost = nnz(A(:,k)) (rows(A) for bitmap/full A, an upper bound);
//   - with a non-complemented sparse mask and sorted sparse A, when
//     mjnz·(1 + c·log2(aknz)) < aknz the multiply probes A(:,k) once per
//     row of M(:,j) instead, and that smaller figure is the cost;
//   - A(:,k) whose row range misses M(:,j)'s row range costs nothing;
//   - a column whose non-complemented mask is empty costs nothing.
//
// Every estimate bounds the terms the numeric phase actually combines.

package spgemm

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvsparse/internal/parallel"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Cost is the cumulative cost profile over B's stored vectors.
type Cost struct {
	// Cumulative[kk] is the estimated terms of vectors [0, kk); its length
	// is nvec(B)+1.
	Cumulative []int64
	// MaskWork counts the mask entries of the columns B touches
	// (≤ nnz(M)): what scattering the mask would read.
	MaskWork int64
}

// Total returns the estimated terms of the whole product.
func (c Cost) Total() int64 {
	if len(c.Cumulative) == 0 {
		return 0
	}
	return c.Cumulative[len(c.Cumulative)-1]
}

// Column returns the estimated terms of stored vector kk.
func (c Cost) Column(kk int) int64 { return c.Cumulative[kk+1] - c.Cumulative[kk] }

// maskCol describes M(:,j) for a scattered mask.
type maskCol struct {
	start, end int
	lo, hi     int  // row range when ranged
	ranged     bool // lo/hi valid (sorted, non-empty column)
}

func (mc maskCol) n() int { return mc.end - mc.start }

// costModel holds what the per-entry estimate needs.
type costModel struct {
	a       view
	mask    *Mask // scattered or in-place mask in effect, nil if none
	scatter bool  // mask is sparse/hypersparse
	guided  bool  // mask-guided estimate allowed
	logc    float64
}

func newCostModel(a sparse.Pattern, mask *Mask, logc float64) costModel {
	cm := costModel{a: newView(a), mask: mask, logc: logc}
	if mask != nil {
		cm.scatter = mask.scattered()
		cm.guided = cm.scatter && !mask.complement && cm.a.sortedRows()
	}

	return cm
}

// maskColumn returns M(:,j) for a scattered mask (zero value otherwise).
func (cm *costModel) maskColumn(j int) maskCol {
	if !cm.scatter {
		return maskCol{}
	}
	start, end := cm.mask.column(j)
	mc := maskCol{start: start, end: end}
	if end > start && !cm.mask.pat.Jumbled {
		mc.lo, mc.hi, mc.ranged = cm.mask.pat.I[start], cm.mask.pat.I[end-1], true
	}

	return mc
}

// skipColumn reports whether C(:,j) is empty because M(:,j) is.
func (cm *costModel) skipColumn(mc maskCol) bool {
	return cm.scatter && !cm.mask.complement && mc.n() == 0
}

// access decides how A(:,k)*B(k,j) is walked. It returns the range of
// A(:,k) to visit, the estimated terms, and scan: probe A(:,k) once per row
// of M(:,j) (binary search) instead of walking it.
func (cm *costModel) access(k int, mc maskCol) (start, end int, cost int64, scan bool) {
	start, end = cm.a.column(k)
	aknz := end - start
	if aknz == 0 {
		return start, end, 0, false
	}
	if cm.guided {
		if mc.ranged && (cm.a.I[end-1] < mc.lo || cm.a.I[start] > mc.hi) {
			return start, start, 0, false
		}
		mw := float64(mc.n()) * (1 + cm.logc*math.Log2(float64(aknz)))
		if mw < float64(aknz) {
			return start, end, int64(math.Ceil(mw)), true
		}
	}

	return start, end, int64(aknz), false
}

// entryCost estimates the terms of A(:,k)*B(k,j).
func (cm *costModel) entryCost(k int, mc maskCol) int64 {
	_, _, c, _ := cm.access(k, mc)
	return c
}

// EstimateCost runs the cost estimator for C<mask> = A*B on nthreads
// workers. The mask may be nil.
//
// Implementation:
//   - Stage 1: slice B's positions evenly over the workers.
//   - Stage 2: each worker sums entry costs; vectors it owns entirely are
//     stored directly, its first and last (possibly shared) vectors are
//     kept as partial sums.
//   - Stage 3: partial sums are added in worker order, then the profile is
//     prefix-summed in place.
//
// Complexity: O(nnz(B)·log(nvec(A)) + nvec(B)) work.
func EstimateCost(a, b sparse.Pattern, mask *Mask, nthreads int) (Cost, error) {
	if err := checkShapes(a, b, mask); err != nil {
		return Cost{}, err
	}
	cm := newCostModel(a, mask, DefaultMaskLogFactor)

	return estimate(&cm, newView(b), nthreads), nil
}

// estimate is EstimateCost without validation.
func estimate(cm *costModel, bv view, nthreads int) Cost {
	nvec := bv.nvec
	flops := make([]int64, nvec+1)
	npos := 0
	if nvec > 0 {
		_, npos = bv.vec(nvec - 1)
	}
	nthreads = parallel.Clamp(nthreads, npos)

	wfirst := make([]int64, nthreads)
	wlast := make([]int64, nthreads)
	kfirst := make([]int, nthreads)
	klast := make([]int, nthreads)
	mwork := make([]int64, nthreads)

	// vecOf returns the stored vector holding position p.
	vecOf := func(p int) int {
		if bv.dense {
			return p / bv.Rows
		}
		return sort.Search(nvec, func(kk int) bool { return bv.P[kk+1] > p })
	}

	parallel.For(nthreads, nthreads, func(t0, t1 int) {
		for t := t0; t < t1; t++ {
			pstart, pend := parallel.Range(t, nthreads, npos)
			kfirst[t], klast[t] = 0, -1
			if pstart >= pend {
				continue
			}
			kfirst[t], klast[t] = vecOf(pstart), vecOf(pend-1)
			for kk := kfirst[t]; kk <= klast[t]; kk++ {
				vstart, vend := bv.vec(kk)
				mc := cm.maskColumn(bv.colIndex(kk))
				if vstart >= pstart && vend > vstart {
					mwork[t] += int64(mc.n())
				}
				var sum int64
				if !cm.skipColumn(mc) {
					for p := max(vstart, pstart); p < min(vend, pend); p++ {
						if !bv.present(p) {
							continue
						}
						c := cm.entryCost(bv.row(p, vstart), mc)
						sum += c
					}
				}
				switch {
				case kk == kfirst[t]:
					wfirst[t] = sum
				case kk == klast[t]:
					wlast[t] = sum
				default:
					flops[kk] = sum
				}
			}
		}
	})

	var total int64
	for t := 0; t < nthreads; t++ {
		if kfirst[t] > klast[t] {
			continue
		}
		flops[kfirst[t]] += wfirst[t]
		if klast[t] > kfirst[t] {
			flops[klast[t]] += wlast[t]
		}
		total += mwork[t]
	}
	cumsumExclusive(flops)

	return Cost{Cumulative: flops, MaskWork: total}
}

// columnCosts returns the per-entry cumulative cost of B's vector kk:
// out[q] is the cost of its first q positions. Fine-team slicing uses it.
func (cm *costModel) columnCosts(bv *view, kk int) []int64 {
	vstart, vend := bv.vec(kk)
	mc := cm.maskColumn(bv.colIndex(kk))
	out := make([]int64, vend-vstart+1)
	skip := cm.skipColumn(mc)
	for p := vstart; p < vend; p++ {
		var c int64
		if !skip && bv.present(p) {
			c = cm.entryCost(bv.row(p, vstart), mc)
		}
		out[p-vstart+1] = out[p-vstart] + c
	}

	return out
}

// checkShapes validates operand and mask dimensions.
func checkShapes(a, b sparse.Pattern, mask *Mask) error {
	if err := sparse.ValidateMulCompatible(a, b); err != nil {
		return err
	}
	if mask != nil && (mask.Rows() != a.Rows || mask.Cols() != b.Cols) {
		return ErrMaskShape
	}

	return nil
}
