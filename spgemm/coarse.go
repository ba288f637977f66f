// SPDX-License-Identifier: MIT

// Package spgemm: coarse tasks.
//
// A coarse task owns whole columns of C and a private accumulator, so it
// runs without synchronization. Each column takes a fresh mark (mark += 2);
// an accumulator slot is then read as
//
//	f <  mark    free for this column
//	f == mark    row of M(:,j): candidate under M, forbidden under !M
//	f == mark+1  row already produced in this column
//
// which makes clearing the accumulator between columns unnecessary.
// The symbolic pass counts entries into Cp; the numeric pass repeats the
// walk and writes Ci/Cx from Cp[kk].

package spgemm

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/lvsparse/internal/invariants"
)

// forEachA calls fn(i, pA) for every stored A(i,k) that can contribute to
// C(:,j), where mc is M(:,j). A column without overlap with M(:,j) is
// skipped; a long A(:,k) under a short mask column is probed per mask row.
func (e *engine[T]) forEachA(k int, mc maskCol, fn func(i, pA int)) {
	av := &e.pl.cm.a
	start, end, _, scan := e.pl.cm.access(k, mc)
	if start == end {
		return
	}
	if scan {
		rows := av.I[start:end]
		mI := e.mask.pat.I
		for pM := mc.start; pM < mc.end; pM++ {
			if !e.mask.at(pM) {
				continue
			}
			i := mI[pM]
			if q := searchInts(rows, i); q < len(rows) && rows[q] == i {
				fn(i, start+q)
			}
		}
		return
	}
	for pA := start; pA < end; pA++ {
		if av.present(pA) {
			fn(av.row(pA, start), pA)
		}
	}
}

// coarseTask runs the symbolic or numeric pass of coarse task id.
func (e *engine[T]) coarseTask(id int, numeric bool) {
	t := &e.pl.Tasks[id]
	w := &e.ws[id]
	for kk := t.Start; kk < t.End; kk++ {
		var n int
		if t.Gustavson() {
			n = e.coarseGustavson(w, kk, numeric)
		} else {
			n = e.coarseHash(w, t.HashSize, kk, numeric)
		}
		if !numeric {
			e.cp[kk] = n
		} else if invariants.Enabled && n != e.cp[kk+1]-e.cp[kk] {
			panic(errors.AssertionFailedf("coarse vector %d: numeric pass produced %d entries, symbolic %d", kk, n, e.cp[kk+1]-e.cp[kk]))
		}
	}
}

// coarseGustavson computes one column with a dense accumulator indexed by
// row and returns its entry count.
func (e *engine[T]) coarseGustavson(w *taskWork[T], kk int, numeric bool) int {
	bv := &e.pl.bv
	j := bv.colIndex(kk)
	bstart, bend := bv.vec(kk)
	mc := e.pl.cm.maskColumn(j)
	if bstart == bend || e.pl.cm.skipColumn(mc) {
		return 0
	}

	w.mark += 2
	mark, hf, hx := w.mark, w.hf, w.hx
	if e.mode == maskScatterM || e.mode == maskScatterNotM {
		mI := e.mask.pat.I
		for pM := mc.start; pM < mc.end; pM++ {
			if e.mask.at(pM) {
				hf[mI[pM]] = mark
			}
		}
	}

	pC0 := 0
	if numeric {
		pC0 = e.cp[kk]
	}
	pC := pC0
	for pB := bstart; pB < bend; pB++ {
		if !bv.present(pB) {
			continue
		}
		bkj := e.bval(pB)
		e.forEachA(bv.row(pB, bstart), mc, func(i, pA int) {
			f := hf[i]
			switch {
			case f == mark+1:
				if numeric && !e.skipComputed && !e.add.IsTerminal(hx[i]) {
					hx[i] = e.add.Op(hx[i], e.term(pA, bkj))
					w.terms++
				}
				return
			case e.mode == maskScatterM && f < mark,
				e.mode == maskScatterNotM && f == mark,
				e.mode == maskInPlace && !e.inPlace(i, j):
				return
			}
			hf[i] = mark + 1
			if numeric {
				e.ci[pC] = i
				if e.valued {
					hx[i] = e.term(pA, bkj)
				}
				w.terms++
			}
			pC++
		})
	}
	if !numeric {
		return pC
	}

	cjnz := pC - pC0
	if cjnz > 0 && cjnz*e.o.tuning.DenseScanDivisor > e.vlen {
		// Dense enough: a scan of the accumulator yields sorted rows.
		p := pC0
		for i := 0; i < e.vlen; i++ {
			if hf[i] == mark+1 {
				e.ci[p] = i
				p++
			}
		}
	}
	if e.valued {
		for p := pC0; p < pC; p++ {
			e.cx[p] = hx[e.ci[p]]
		}
	}

	return cjnz
}

// coarseHash computes one column with an open-addressing table of hsize
// slots (linear probing) and returns its entry count. Values are combined
// in place in Cx through the slot's output position.
func (e *engine[T]) coarseHash(w *taskWork[T], hsize, kk int, numeric bool) int {
	bv := &e.pl.bv
	j := bv.colIndex(kk)
	bstart, bend := bv.vec(kk)
	mc := e.pl.cm.maskColumn(j)
	if bstart == bend || e.pl.cm.skipColumn(mc) {
		return 0
	}

	w.mark += 2
	mark, hf, hi, hp := w.mark, w.hf, w.hi, w.hp
	bits, hmask := hashBits(hsize), hsize-1
	// find returns the slot of row i, or the free slot that ends its probe.
	find := func(i int) int {
		h := hashSlot(i, bits)
		for hf[h] >= mark && hi[h] != i {
			h = (h + 1) & hmask
		}
		return h
	}

	if e.mode == maskScatterM || e.mode == maskScatterNotM {
		mI := e.mask.pat.I
		for pM := mc.start; pM < mc.end; pM++ {
			if e.mask.at(pM) {
				h := find(mI[pM])
				hf[h], hi[h] = mark, mI[pM]
			}
		}
	}

	pC0 := 0
	if numeric {
		pC0 = e.cp[kk]
	}
	pC := pC0
	for pB := bstart; pB < bend; pB++ {
		if !bv.present(pB) {
			continue
		}
		bkj := e.bval(pB)
		e.forEachA(bv.row(pB, bstart), mc, func(i, pA int) {
			if e.mode == maskInPlace && !e.inPlace(i, j) {
				return
			}
			h := find(i)
			f := hf[h]
			switch {
			case f == mark+1:
				if numeric && !e.skipComputed && !e.add.IsTerminal(e.cx[hp[h]]) {
					x := &e.cx[hp[h]]
					*x = e.add.Op(*x, e.term(pA, bkj))
					w.terms++
				}
				return
			case e.mode == maskScatterM && f < mark,
				e.mode == maskScatterNotM && f == mark:
				return
			}
			hf[h], hi[h] = mark+1, i
			if numeric {
				hp[h] = pC
				e.ci[pC] = i
				if e.valued {
					e.cx[pC] = e.term(pA, bkj)
				}
				w.terms++
			}
			pC++
		})
	}

	return pC - pC0
}
