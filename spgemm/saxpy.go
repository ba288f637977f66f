// SPDX-License-Identifier: MIT

// Package spgemm: the saxpy engine.
//
// Implementation:
//   - Stage 1: validate; drop a mask that keeps everything, short-circuit
//     one that keeps nothing; decline full×full without a mask.
//   - Stage 2: plan (cost estimate, mask discard, partition) and reserve
//     every task workspace.
//   - Stage 3: symbolic pass. Coarse tasks count their columns into Cp,
//     fine teams scatter their mask share.
//   - Stage 4: fine teams compute and count; Cp is prefix-summed; Ci/Cx
//     are reserved.
//   - Stage 5: numeric pass. Coarse tasks recompute their columns into C,
//     fine tasks gather their share of the team accumulator.
//   - Stage 6: prune empty hypersparse vectors, sort (or flag jumbled),
//     apply a discarded mask.
//
// Stages are separated by a full join of the workers; inside a stage the
// only shared mutable state is a fine team's accumulator (see slot.go).

package spgemm

import (
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/grailbio/base/log"
	"github.com/katalvlaran/lvsparse/internal/invariants"
	"github.com/katalvlaran/lvsparse/internal/parallel"
	"github.com/katalvlaran/lvsparse/metrics"
	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
)

// maskMode is how the multiply consults the mask.
type maskMode uint8

const (
	maskNone        maskMode = iota
	maskScatterM             // sparse/hyper M scattered into accumulators
	maskScatterNotM          // sparse/hyper !M scattered into accumulators
	maskInPlace              // bitmap/full mask probed per entry
)

// engine is the state of one Saxpy call.
type engine[T any] struct {
	o    *Options
	sr   semiring.Semiring[T]
	add  semiring.Monoid[T]
	pl   planned
	mask *Mask // mask in effect during the multiply
	mode maskMode
	vlen int

	ax, bx       []T
	aiso, biso   bool
	readA, readB bool
	valued       bool        // C carries per-entry values
	skipComputed bool        // a computed slot never changes again
	atomic       func(*T, T) // nil: fine combines lock the slot

	cp, ci []int
	cx     []T
	ws     []taskWork[T]
	ar     arena
}

// Saxpy computes C<mask> = A*B over sr.
//
// The mask may be nil. C has A's rows and B's columns; it is hypersparse
// when B is, sparse otherwise. Columns are sorted unless
// WithJumbledOutput is given.
//
// Errors:
//   - sparse.ErrNilMatrix, sparse.ErrDimensionMismatch, ErrMaskShape.
//   - semiring.ErrNilOperator for an incomplete semiring.
//   - ErrNotApplicable when A and B are both full and there is no mask.
//   - ErrOutOfMemory when the workspace limit is exceeded.
//
// Complexity: O(flops + nnz(C) log(cjnz) + nnz(M)) work for sorted output.
func Saxpy[T any](mask *Mask, a, b *sparse.Matrix[T], sr semiring.Semiring[T], opts ...Option) (*sparse.Matrix[T], error) {
	o := gatherOptions(opts...)
	began := time.Now()
	var st Stats
	c, err := saxpy(mask, a, b, sr, &o, &st)
	st.Duration = time.Since(began)
	publish(&o, sr.Name, st, err)

	return c, err
}

// publish hands the stats of one finished call to WithStats and to the
// metrics backend. Every public product calls it exactly once.
func publish(o *Options, name string, st Stats, err error) {
	if o.stats != nil {
		*o.stats = st
	}
	metrics.RecordMultiply(o.metrics, metrics.Multiply{
		Semiring:      name,
		Err:           err,
		NotApplicable: errors.Is(err, ErrNotApplicable),
		DenseFallback: st.DenseFallback,
		MaskDiscarded: st.MaskDiscarded,
		CoarseTasks:   st.CoarseTasks,
		FineTasks:     st.FineTasks,
		Flops:         st.EstimatedFlops,
		Entries:       st.Nvals,
		Duration:      st.Duration,
	})
}

func saxpy[T any](mask *Mask, a, b *sparse.Matrix[T], sr semiring.Semiring[T], o *Options, st *Stats) (*sparse.Matrix[T], error) {
	if a == nil || b == nil {
		return nil, sparse.ErrNilMatrix
	}
	if err := sr.Validate(); err != nil {
		return nil, err
	}
	ap, bp := a.Pattern(), b.Pattern()
	if err := checkShapes(ap, bp, mask); err != nil {
		return nil, err
	}
	if invariants.Enabled {
		for _, m := range []*sparse.Matrix[T]{a, b} {
			if err := m.Validate(); err != nil {
				panic(errors.NewAssertionErrorWithWrappedErrf(err, "Saxpy operand"))
			}
		}
	}

	elide, empty := mask.trivial()
	if elide {
		mask = nil
	}
	if mask == nil && ap.Format == sparse.FormatFull && bp.Format == sparse.FormatFull {
		return nil, ErrNotApplicable
	}

	e := &engine[T]{o: o, sr: sr, add: sr.Add, vlen: ap.Rows, ar: arena{limit: o.limit}}
	if empty {
		e.pl.bv = newView(bp)
		st.Threads = 1
		var cx []T
		if !sr.IsoOutput() {
			cx = []T{}
		}
		return e.build(make([]int, e.pl.bv.nvec+1), nil, cx, st)
	}

	e.pl = makePlan(ap, bp, mask, o)
	e.mask = e.pl.cm.mask
	e.setup(a, b)
	st.Threads = e.pl.Threads
	st.CoarseTasks, st.FineTasks, st.FineTeams = e.pl.Coarse(), e.pl.Fine, e.pl.Teams
	st.EstimatedFlops, st.MaskWork = e.pl.Cost.Total(), e.pl.Cost.MaskWork
	st.MaskDiscarded = e.pl.MaskDiscarded
	for _, t := range e.pl.Tasks {
		if t.Gustavson() {
			st.GustavsonTasks++
		} else {
			st.HashTasks++
		}
	}
	if o.verbose {
		log.Debug.Printf("spgemm %s: %d×%d * %d×%d, %s", sr.Name, ap.Rows, ap.Cols, bp.Rows, bp.Cols, st)
		for id, t := range e.pl.Tasks {
			log.Debug.Printf("spgemm task %d: %v", id, t)
		}
	}

	c, err := e.run(st)
	if errors.Is(err, ErrOutOfMemory) {
		log.Error.Printf("spgemm %s: %v", sr.Name, err)
	}
	st.Workspace = e.ar.used

	return c, err
}

// setup derives the per-call operand and monoid switches.
func (e *engine[T]) setup(a, b *sparse.Matrix[T]) {
	e.valued = !e.sr.IsoOutput()
	e.skipComputed = e.add.IsAny() || !e.valued
	e.atomic = e.add.Atomic
	switch {
	case e.mask == nil:
		e.mode = maskNone
	case !e.mask.scattered():
		e.mode = maskInPlace
	case e.mask.complement:
		e.mode = maskScatterNotM
	default:
		e.mode = maskScatterM
	}

	if !e.valued {
		return
	}
	e.ax, e.aiso = a.Values(), a.Iso()
	e.bx, e.biso = b.Values(), b.Iso()
	k := e.sr.MulKind
	e.readA = e.ax != nil && k != semiring.MulSecond && k != semiring.MulPair
	e.readB = e.bx != nil && k != semiring.MulFirst && k != semiring.MulPair
}

// term computes A(i,k)*B(k,j) for A's entry at pA.
func (e *engine[T]) term(pA int, bkj T) T {
	var aik T
	if e.readA {
		if e.aiso {
			aik = e.ax[0]
		} else {
			aik = e.ax[pA]
		}
	}
	return e.sr.Mul(aik, bkj)
}

// bval returns the multiply's view of B's entry at pB.
func (e *engine[T]) bval(pB int) (v T) {
	switch {
	case !e.readB:
	case e.biso:
		v = e.bx[0]
	default:
		v = e.bx[pB]
	}
	return v
}

// inPlace reports whether a bitmap/full mask allows C(i,j).
func (e *engine[T]) inPlace(i, j int) bool {
	return e.mask.at(j*e.mask.pat.Rows+i) != e.mask.complement
}

// run executes the phases of a plan.
func (e *engine[T]) run(st *Stats) (*sparse.Matrix[T], error) {
	pl := &e.pl
	nvec := pl.bv.nvec
	var err error
	if e.cp, err = alloc[int](&e.ar, nvec+1, "column pointers"); err != nil {
		return nil, err
	}
	if e.ws, err = newWorkspace[T](&e.ar, pl.Tasks, e.vlen, e.valued); err != nil {
		return nil, err
	}

	sched := parallel.Static(pl.Threads, len(pl.Tasks))
	_ = sched.Run(func(id int) error {
		if pl.Tasks[id].Kind == TaskCoarse {
			e.coarseTask(id, false)
		} else {
			e.fineScatter(id)
		}
		return nil
	})
	if pl.Fine > 0 {
		fsched := parallel.Static(pl.Threads, pl.Fine)
		_ = fsched.Run(func(id int) error { e.fineCompute(id); return nil })
		_ = fsched.Run(func(id int) error { e.fineCount(id); return nil })
		e.teamTotals()
	}

	cumsumParallel(e.cp, pl.Threads)
	e.teamOffsets()
	nnz := e.cp[nvec]
	if e.ci, err = alloc[int](&e.ar, nnz, "row indices"); err != nil {
		return nil, err
	}
	if e.valued {
		if e.cx, err = alloc[T](&e.ar, nnz, "values"); err != nil {
			return nil, err
		}
	}

	_ = sched.Run(func(id int) error {
		if pl.Tasks[id].Kind == TaskCoarse {
			e.coarseTask(id, true)
		} else {
			e.fineGather(id)
		}
		return nil
	})
	for id := range e.ws {
		st.Terms += e.ws[id].terms
	}
	if invariants.Enabled && st.Terms > st.EstimatedFlops {
		panic(errors.AssertionFailedf("%d terms combined, estimate was %d", st.Terms, st.EstimatedFlops))
	}

	c, err := e.build(e.cp, e.ci, e.cx, st)
	if err != nil {
		return nil, err
	}
	if pl.post != nil {
		c = filter(c, pl.post)
		st.Nvals = c.Nvals()
	}

	return c, nil
}

// build finishes the column arrays and wraps them in a matrix: empty
// hypersparse vectors are pruned, columns are sorted or the result is
// flagged jumbled.
func (e *engine[T]) build(cp, ci []int, cx []T, st *Stats) (*sparse.Matrix[T], error) {
	bv := &e.pl.bv
	rows, cols := e.vlen, bv.Cols
	nvec := bv.nvec

	var ch []int
	if bv.hyper {
		ch = make([]int, nvec)
		q := 0
		for kk := 0; kk < nvec; kk++ {
			if cp[kk+1] > cp[kk] {
				ch[q], cp[q] = bv.H[kk], cp[kk]
				q++
			}
		}
		cp[q] = cp[nvec]
		cp, ch = cp[:q+1], ch[:q]
		nvec = q
	}

	var jumbled atomic.Bool
	parallel.For(max(st.Threads, 1), nvec, func(k0, k1 int) {
		for kk := k0; kk < k1; kk++ {
			ri := ci[cp[kk]:cp[kk+1]]
			switch {
			case e.o.sorted && cx != nil:
				sparse.SortColumn(ri, cx[cp[kk]:cp[kk+1]])
			case e.o.sorted:
				sparse.SortColumn[T](ri, nil)
			case !sparse.ColumnSorted(ri):
				jumbled.Store(true)
			}
		}
	})

	var opts []sparse.Option
	x := cx
	if e.sr.IsoOutput() && !e.sr.Symbolic {
		var zero T
		x = []T{e.sr.Mul(zero, zero)}
		opts = append(opts, sparse.WithIso())
	}
	if jumbled.Load() {
		opts = append(opts, sparse.WithJumbled())
	}
	st.Nvals, st.Jumbled = cp[nvec], jumbled.Load()

	if bv.hyper {
		return sparse.FromHyperCSC(rows, cols, cp, ch, ci, x, opts...)
	}
	return sparse.FromCSC(rows, cols, cp, ci, x, opts...)
}
