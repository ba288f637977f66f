// SPDX-License-Identifier: MIT

// Package spgemm: fine teams.
//
// The tasks of a team split one column's B entries and share one
// accumulator (teamAcc). Four barrier-separated passes:
//
//	scatter  each member marks its share of M(:,j) as maskOnly
//	compute  each member folds its B entries in through the slot protocol
//	count    each member counts computed slots in its share of the table
//	gather   each member copies its share to C at its own offset
//
// Shares of the table are row ranges (Gustavson, sorted output) or slot
// ranges (hash, discovery order by slot).

package spgemm

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvsparse/internal/invariants"
	"github.com/katalvlaran/lvsparse/internal/parallel"
)

// fineScatter marks task id's share of M(:,j) in the team accumulator.
func (e *engine[T]) fineScatter(id int) {
	if e.mode != maskScatterM && e.mode != maskScatterNotM {
		return
	}
	t := &e.pl.Tasks[id]
	acc := e.ws[id].team
	mc := e.pl.cm.maskColumn(e.pl.bv.colIndex(t.Start))
	s, end := parallel.Range(t.Member(id), t.TeamSize, mc.n())
	mI := e.mask.pat.I
	bits := hashBits(t.HashSize)
	for pM := mc.start + s; pM < mc.start+end; pM++ {
		if !e.mask.at(pM) {
			continue
		}
		if t.Gustavson() {
			acc.gf[mI[pM]] = slotMaskOnly // rows are distinct: no two writers
		} else {
			scatterHashMask(acc.hf, mI[pM], bits)
		}
	}
}

// fineCompute folds task id's B entries into the team accumulator.
func (e *engine[T]) fineCompute(id int) {
	t := &e.pl.Tasks[id]
	w := &e.ws[id]
	acc := w.team
	bv := &e.pl.bv
	j := bv.colIndex(t.Start)
	mc := e.pl.cm.maskColumn(j)
	if e.pl.cm.skipColumn(mc) {
		return
	}
	vstart, _ := bv.vec(t.Start)
	bits := hashBits(t.HashSize)
	for pB := t.PStart; pB < t.PEnd; pB++ {
		if !bv.present(pB) {
			continue
		}
		bkj := e.bval(pB)
		e.forEachA(bv.row(pB, vstart), mc, func(i, pA int) {
			if e.mode == maskInPlace && !e.inPlace(i, j) {
				return
			}
			var ok bool
			if t.Gustavson() {
				ok = e.gustavsonUpdate(acc, i, pA, bkj)
			} else {
				ok = e.hashUpdate(acc, bits, i, pA, bkj)
			}
			if ok {
				w.terms++
			}
		})
	}
}

// share returns the accumulator range task id reads in count and gather.
func (e *engine[T]) share(id int) (start, end int) {
	t := &e.pl.Tasks[id]
	n := e.vlen
	if !t.Gustavson() {
		n = t.HashSize
	}
	return parallel.Range(t.Member(id), t.TeamSize, n)
}

// fineCount counts computed slots in task id's share.
func (e *engine[T]) fineCount(id int) {
	t := &e.pl.Tasks[id]
	w := &e.ws[id]
	start, end := e.share(id)
	n := 0
	if t.Gustavson() {
		for _, st := range w.team.gf[start:end] {
			if st == slotComputed {
				n++
			}
		}
	} else {
		for _, word := range w.team.hf[start:end] {
			if word&slotStateMask == slotComputed {
				n++
			}
		}
	}
	w.count = n
}

// teamTotals stores each team's entry count in Cp.
func (e *engine[T]) teamTotals() {
	for id := 0; id < e.pl.Fine; {
		t := &e.pl.Tasks[id]
		n := 0
		for m := 0; m < t.TeamSize; m++ {
			n += e.ws[id+m].count
		}
		e.cp[t.Start] = n
		id += t.TeamSize
	}
}

// teamOffsets gives every member its first output position.
func (e *engine[T]) teamOffsets() {
	for id := 0; id < e.pl.Fine; {
		t := &e.pl.Tasks[id]
		p := e.cp[t.Start]
		for m := 0; m < t.TeamSize; m++ {
			e.ws[id+m].pC = p
			p += e.ws[id+m].count
		}
		id += t.TeamSize
	}
}

// fineGather copies task id's share of the accumulator into C.
func (e *engine[T]) fineGather(id int) {
	t := &e.pl.Tasks[id]
	w := &e.ws[id]
	acc := w.team
	start, end := e.share(id)
	p := w.pC
	if t.Gustavson() {
		for i := start; i < end; i++ {
			if acc.gf[i] != slotComputed {
				continue
			}
			e.ci[p] = i
			if e.valued {
				e.cx[p] = acc.hx[i]
			}
			p++
		}
	} else {
		for h := start; h < end; h++ {
			word := acc.hf[h]
			if word&slotStateMask != slotComputed {
				continue
			}
			e.ci[p] = hashRow(word)
			if e.valued {
				e.cx[p] = acc.hx[h]
			}
			p++
		}
	}
	if invariants.Enabled && p-w.pC != w.count {
		panic(errors.AssertionFailedf("fine task %d: gathered %d entries, counted %d", id, p-w.pC, w.count))
	}
}
