// SPDX-License-Identifier: MIT

package spgemm

import (
	"github.com/katalvlaran/lvsparse/internal/parallel"
	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Reference computes C<mask> = A*B column by column with a dense
// accumulator, for any input formats. Mxm uses it for products Saxpy
// declines; it is also the straightforward definition the engine is
// checked against. Only WithThreads is honored.
//
// Columns of C come out sorted. Result format and value conventions match
// Saxpy: hypersparse iff B is, iso or valueless for iso-output semirings.
//
// Complexity: O(flops + rows(A)·cols(B)) work, O(rows(A)) space per worker.
func Reference[T any](mask *Mask, a, b *sparse.Matrix[T], sr semiring.Semiring[T], opts ...Option) (*sparse.Matrix[T], error) {
	if a == nil || b == nil {
		return nil, sparse.ErrNilMatrix
	}
	if err := sr.Validate(); err != nil {
		return nil, err
	}
	if err := checkShapes(a.Pattern(), b.Pattern(), mask); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	av, bv := newView(a.Pattern()), newView(b.Pattern())
	rows, cols := a.Rows(), b.Cols()
	colI := make([][]int, cols)
	colX := make([][]T, cols)
	parallel.For(o.threads, cols, func(j0, j1 int) {
		acc := make([]T, rows)
		seen := make([]bool, rows)
		for j := j0; j < j1; j++ {
			bs, be := bv.column(j)
			for pB := bs; pB < be; pB++ {
				if !bv.present(pB) {
					continue
				}
				bkj := b.Value(pB)
				as, ae := av.column(bv.row(pB, bs))
				for pA := as; pA < ae; pA++ {
					if !av.present(pA) {
						continue
					}
					i := av.row(pA, as)
					if !mask.Allows(i, j) {
						continue
					}
					if sr.Symbolic {
						seen[i] = true
						continue
					}
					t := sr.Mul(a.Value(pA), bkj)
					if seen[i] {
						acc[i] = sr.Add.Op(acc[i], t)
					} else {
						acc[i], seen[i] = t, true
					}
				}
			}
			for i := range seen {
				if seen[i] {
					colI[j] = append(colI[j], i)
					colX[j] = append(colX[j], acc[i])
					seen[i] = false
				}
			}
		}
	})

	cp := make([]int, cols+1)
	for j := range colI {
		cp[j+1] = cp[j] + len(colI[j])
	}
	ci := make([]int, 0, cp[cols])
	cx := make([]T, 0, cp[cols])
	for j := range colI {
		ci = append(ci, colI[j]...)
		cx = append(cx, colX[j]...)
	}

	var sopts []sparse.Option
	switch {
	case sr.Symbolic:
		cx = nil
	case sr.IsoOutput():
		var zero T
		cx = []T{sr.Mul(zero, zero)}
		sopts = append(sopts, sparse.WithIso())
	}
	c, err := sparse.FromCSC(rows, cols, cp, ci, cx, sopts...)
	if err != nil || bv.Format != sparse.FormatHypersparse {
		return c, err
	}

	return c.Convert(sparse.FormatHypersparse)
}
