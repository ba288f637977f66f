// SPDX-License-Identifier: MIT

// Package sparse: builders.
//
// Purpose:
//   - FromTriplets / FromDense: user-facing ingestion with full validation.
//   - FromCSC / FromHyperCSC / FromBitmap / FromFull: adopt caller-built
//     arrays without copying (the engine assembles its output this way).
//
// Contract:
//   - Builders never panic on user input; they return sentinel errors.
//   - Adopting builders take ownership of the slices passed in.
//   - Under the invariants build tag, adopting builders additionally verify
//     every row index and the sortedness promise (O(nnz)).

package sparse

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/internal/invariants"
)

// New returns an empty rows×cols matrix in FormatSparse that carries values.
func New[T any](rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[T]{
		vlen:   rows,
		vdim:   cols,
		format: FormatSparse,
		p:      make([]int, cols+1),
		i:      []int{},
		x:      []T{},
	}, nil
}

// NonZero reports whether v differs from the zero value of T.
// It is the default "keep" predicate for FromDense and valued masks.
func NonZero[T comparable](v T) bool {
	var zero T
	return v != zero
}

// FromTriplets builds a matrix from coordinate triplets (ri[k], ci[k], vals[k]).
//
// Implementation:
//   - Stage 1: validate shape, slice lengths and every index.
//   - Stage 2: bucket entries by column (counting sort), preserving input order.
//   - Stage 3: stable-sort each column by row, fold duplicates with dup.
//   - Stage 4: convert to the requested format (WithFormat).
//
// Inputs:
//   - vals: nil for a valueless matrix, one value with WithIso, otherwise
//     len(vals) == len(ri).
//   - dup: combines duplicates in input order; nil rejects duplicates.
//
// Errors:
//   - ErrInvalidDimensions, ErrLengthMismatch, ErrOutOfRange, ErrDuplicate.
//
// Complexity:
//   - Time O(nnz log maxcjnz + cols), Space O(nnz + cols).
func FromTriplets[T any](rows, cols int, ri, ci []int, vals []T, dup func(a, b T) T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if len(ri) != len(ci) {
		return nil, errors.Wrapf(ErrLengthMismatch, "FromTriplets: %d rows vs %d cols", len(ri), len(ci))
	}
	nnz := len(ri)
	switch {
	case vals == nil:
	case o.iso:
		if len(vals) != 1 {
			return nil, errors.Wrapf(ErrLengthMismatch, "FromTriplets: iso needs 1 value, got %d", len(vals))
		}
	case len(vals) != nnz:
		return nil, errors.Wrapf(ErrLengthMismatch, "FromTriplets: %d values for %d entries", len(vals), nnz)
	}
	for k := 0; k < nnz; k++ {
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, errors.Wrapf(ErrOutOfRange, "FromTriplets: entry %d at (%d,%d) in %dx%d", k, ri[k], ci[k], rows, cols)
		}
	}

	// Counting sort by column keeps input order inside each column.
	p := make([]int, cols+1)
	for _, j := range ci {
		p[j+1]++
	}
	for j := 0; j < cols; j++ {
		p[j+1] += p[j]
	}
	next := make([]int, cols)
	copy(next, p[:cols])
	idx := make([]int, nnz)
	var x []T
	valued := vals != nil && !o.iso
	if valued {
		x = make([]T, nnz)
	}
	for k := 0; k < nnz; k++ {
		pos := next[ci[k]]
		next[ci[k]]++
		idx[pos] = ri[k]
		if valued {
			x[pos] = vals[k]
		}
	}

	// Sort columns and fold duplicates in place.
	out := 0
	for j := 0; j < cols; j++ {
		start, end := p[j], p[j+1]
		sortColumnStable(idx[start:end], x, start, valued)
		p[j] = out
		for q := start; q < end; q++ {
			if q > start && idx[q] == idx[out-1] && out > p[j] {
				if dup == nil && vals != nil && !o.iso {
					return nil, errors.Wrapf(ErrDuplicate, "FromTriplets: (%d,%d)", idx[q], j)
				}
				if valued {
					x[out-1] = dup(x[out-1], x[q])
				}
				continue
			}
			idx[out] = idx[q]
			if valued {
				x[out] = x[q]
			}
			out++
		}
	}
	p[cols] = out

	m := &Matrix[T]{vlen: rows, vdim: cols, format: FormatSparse, p: p, i: idx[:out]}
	switch {
	case vals == nil:
	case o.iso:
		m.x = []T{vals[0]}
		m.iso = true
	default:
		m.x = x[:out]
	}

	return m.Convert(o.format)
}

// FromDense builds a matrix from a row-major rectangular table, keeping the
// cells for which keep returns true (nil keep keeps every cell).
//
// Errors:
//   - ErrLengthMismatch for ragged input.
//
// Complexity: O(rows*cols).
func FromDense[T any](data [][]T, keep func(T) bool, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	for r := range data {
		if len(data[r]) != cols {
			return nil, errors.Wrapf(ErrLengthMismatch, "FromDense: row %d has %d cols, want %d", r, len(data[r]), cols)
		}
	}

	p := make([]int, cols+1)
	idx := make([]int, 0, rows*cols/4+1)
	x := make([]T, 0, cap(idx))
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			v := data[i][j]
			if keep != nil && !keep(v) {
				continue
			}
			idx = append(idx, i)
			x = append(x, v)
		}
		p[j+1] = len(idx)
	}
	m := &Matrix[T]{vlen: rows, vdim: cols, format: FormatSparse, p: p, i: idx, x: x}

	return m.Convert(o.format)
}

// FromCSC adopts compressed-sparse-column arrays.
//
// Inputs:
//   - p: len cols+1, p[0] == 0, non-decreasing.
//   - i: row indices, len >= p[cols] (extra capacity is trimmed).
//   - x: nil (valueless), one value (WithIso), or len >= p[cols].
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidStructure, ErrLengthMismatch.
//
// Complexity: O(cols); O(nnz) more under the invariants build tag.
func FromCSC[T any](rows, cols int, p, i []int, x []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if err := checkPointers(p, cols+1); err != nil {
		return nil, errors.Wrap(err, "FromCSC")
	}
	m := &Matrix[T]{vlen: rows, vdim: cols, format: FormatSparse, p: p, jumbled: o.jumbled}
	if err := m.adoptEntries(i, x, o.iso); err != nil {
		return nil, errors.Wrap(err, "FromCSC")
	}
	if invariants.Enabled {
		if err := m.Validate(); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "FromCSC"))
		}
	}

	return m, nil
}

// FromHyperCSC adopts hypersparse arrays: h lists the stored columns in
// strictly increasing order and p has len(h)+1 entries.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidStructure, ErrLengthMismatch.
func FromHyperCSC[T any](rows, cols int, p, h, i []int, x []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if err := checkPointers(p, len(h)+1); err != nil {
		return nil, errors.Wrap(err, "FromHyperCSC")
	}
	for k := range h {
		if h[k] < 0 || h[k] >= cols || (k > 0 && h[k] <= h[k-1]) {
			return nil, errors.Wrapf(ErrInvalidStructure, "FromHyperCSC: h[%d]=%d", k, h[k])
		}
	}
	m := &Matrix[T]{vlen: rows, vdim: cols, format: FormatHypersparse, p: p, h: h, jumbled: o.jumbled}
	if err := m.adoptEntries(i, x, o.iso); err != nil {
		return nil, errors.Wrap(err, "FromHyperCSC")
	}
	if invariants.Enabled {
		if err := m.Validate(); err != nil {
			panic(errors.NewAssertionErrorWithWrappedErrf(err, "FromHyperCSC"))
		}
	}

	return m, nil
}

// FromBitmap adopts column-major presence flags b (len rows*cols) and dense
// values x (len rows*cols, one value with WithIso, or nil).
func FromBitmap[T any](rows, cols int, b []int8, x []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	n := rows * cols
	if len(b) != n {
		return nil, errors.Wrapf(ErrLengthMismatch, "FromBitmap: %d flags for %dx%d", len(b), rows, cols)
	}
	if err := checkDenseValues(x, n, o.iso); err != nil {
		return nil, errors.Wrap(err, "FromBitmap")
	}
	nvals := 0
	for k, f := range b {
		switch f {
		case 0:
		case 1:
			nvals++
		default:
			return nil, errors.Wrapf(ErrInvalidStructure, "FromBitmap: b[%d]=%d", k, f)
		}
	}

	return &Matrix[T]{vlen: rows, vdim: cols, format: FormatBitmap, b: b, x: x, iso: o.iso, nvals: nvals}, nil
}

// FromFull adopts column-major dense values (len rows*cols, one with WithIso).
func FromFull[T any](rows, cols int, x []T, opts ...Option) (*Matrix[T], error) {
	o := gatherOptions(opts...)
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	if err := checkDenseValues(x, rows*cols, o.iso); err != nil {
		return nil, errors.Wrap(err, "FromFull")
	}

	return &Matrix[T]{vlen: rows, vdim: cols, format: FormatFull, x: x, iso: o.iso}, nil
}

// Identity returns the n×n iso diagonal matrix holding one.
func Identity[T any](n int, one T) (*Matrix[T], error) {
	if n < 0 {
		return nil, ErrInvalidDimensions
	}
	p := make([]int, n+1)
	idx := make([]int, n)
	for k := 0; k < n; k++ {
		p[k+1] = k + 1
		idx[k] = k
	}

	return &Matrix[T]{vlen: n, vdim: n, format: FormatSparse, p: p, i: idx, x: []T{one}, iso: true}, nil
}

// checkPointers validates a column pointer array of the expected length.
func checkPointers(p []int, want int) error {
	if len(p) != want {
		return errors.Wrapf(ErrLengthMismatch, "pointer array has %d entries, want %d", len(p), want)
	}
	if p[0] != 0 {
		return errors.Wrapf(ErrInvalidStructure, "p[0]=%d", p[0])
	}
	for k := 1; k < len(p); k++ {
		if p[k] < p[k-1] {
			return errors.Wrapf(ErrInvalidStructure, "p[%d]=%d < p[%d]=%d", k, p[k], k-1, p[k-1])
		}
	}

	return nil
}

// adoptEntries attaches row indices and values after p has been checked.
func (m *Matrix[T]) adoptEntries(i []int, x []T, iso bool) error {
	nnz := m.p[len(m.p)-1]
	if len(i) < nnz {
		return errors.Wrapf(ErrLengthMismatch, "%d row indices for %d entries", len(i), nnz)
	}
	m.i = i[:nnz]
	switch {
	case x == nil:
	case iso:
		if len(x) != 1 {
			return errors.Wrapf(ErrLengthMismatch, "iso needs 1 value, got %d", len(x))
		}
		m.x, m.iso = x, true
	default:
		if len(x) < nnz {
			return errors.Wrapf(ErrLengthMismatch, "%d values for %d entries", len(x), nnz)
		}
		m.x = x[:nnz]
	}

	return nil
}

// checkDenseValues validates the value slice of a bitmap/full matrix.
func checkDenseValues[T any](x []T, n int, iso bool) error {
	switch {
	case x == nil:
		return nil
	case iso:
		if len(x) != 1 {
			return errors.Wrapf(ErrLengthMismatch, "iso needs 1 value, got %d", len(x))
		}
	case len(x) != n:
		return errors.Wrapf(ErrLengthMismatch, "%d values for %d cells", len(x), n)
	}

	return nil
}
