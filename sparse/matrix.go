// SPDX-License-Identifier: MIT

// Package sparse - accessors over the four storage formats.
//
// Purpose:
//   - Give the engine zero-copy access to the raw arrays (Pointers, Indices,
//     Hyperlist, Bitmap, Values). Returned slices alias the matrix; treat them
//     as read-only.
//   - Give callers safe, bounds-checked element access (At).
//
// AI-Hints:
//   - Hot loops should hoist the raw slices once and index them directly.
//   - Use ColumnRange for "where does column j live" regardless of format.

package sparse

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.vlen }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.vdim }

// Format returns the storage representation.
func (m *Matrix[T]) Format() Format { return m.format }

// Iso reports whether every entry shares the single value x[0].
func (m *Matrix[T]) Iso() bool { return m.iso }

// Jumbled reports whether some sparse/hypersparse column may be unsorted.
func (m *Matrix[T]) Jumbled() bool { return m.jumbled }

// HasValues reports whether the matrix carries values at all.
func (m *Matrix[T]) HasValues() bool { return m.x != nil }

// Nvals returns the number of stored entries.
func (m *Matrix[T]) Nvals() int {
	switch m.format {
	case FormatBitmap:
		return m.nvals
	case FormatFull:
		return m.vlen * m.vdim
	default:
		return m.p[len(m.p)-1]
	}
}

// NVec returns the number of stored column vectors: len(h) for hypersparse,
// Cols() otherwise.
func (m *Matrix[T]) NVec() int {
	if m.format == FormatHypersparse {
		return len(m.h)
	}
	return m.vdim
}

// Pointers returns the column pointer array (sparse/hypersparse, else nil).
func (m *Matrix[T]) Pointers() []int { return m.p }

// Hyperlist returns the non-empty column list (hypersparse, else nil).
func (m *Matrix[T]) Hyperlist() []int { return m.h }

// Indices returns the row index array (sparse/hypersparse, else nil).
func (m *Matrix[T]) Indices() []int { return m.i }

// Bitmap returns the presence flags (bitmap, else nil).
func (m *Matrix[T]) Bitmap() []int8 { return m.b }

// Values returns the value array: len 1 when iso, nil when valueless.
func (m *Matrix[T]) Values() []T { return m.x }

// Pattern returns the structural view of m.
func (m *Matrix[T]) Pattern() Pattern {
	return Pattern{
		Rows:    m.vlen,
		Cols:    m.vdim,
		Format:  m.format,
		P:       m.p,
		H:       m.h,
		I:       m.i,
		B:       m.b,
		Jumbled: m.jumbled,
	}
}

// Value returns the value stored at position p of the entry arrays
// (x[p], or x[0] when iso, or the zero value when valueless).
func (m *Matrix[T]) Value(p int) T {
	switch {
	case m.x == nil:
		var zero T
		return zero
	case m.iso:
		return m.x[0]
	default:
		return m.x[p]
	}
}

// ColumnIndex maps a stored vector ordinal kk to its column index.
func (m *Matrix[T]) ColumnIndex(kk int) int {
	if m.format == FormatHypersparse {
		return m.h[kk]
	}
	return kk
}

// ColumnRange returns the half-open range of entry positions holding column
// j. For bitmap/full this is the dense range j*vlen..(j+1)*vlen and callers
// must still consult Bitmap for presence. A hypersparse column that is not
// stored yields an empty range.
func (m *Matrix[T]) ColumnRange(j int) (pstart, pend int) {
	switch m.format {
	case FormatSparse:
		return m.p[j], m.p[j+1]
	case FormatHypersparse:
		kk, ok := HyperLookup(m.h, j)
		if !ok {
			return 0, 0
		}
		return m.p[kk], m.p[kk+1]
	default:
		return j * m.vlen, (j + 1) * m.vlen
	}
}

// HyperLookup finds column j in a sorted hyperlist; kk is its ordinal.
// Complexity: O(log len(h)).
func HyperLookup(h []int, j int) (kk int, ok bool) {
	kk = sort.SearchInts(h, j)
	return kk, kk < len(h) && h[kk] == j
}

// At returns the entry (i,j) and whether it is present.
//
// Errors:
//   - ErrOutOfRange when i or j is outside the matrix.
//
// Complexity: O(1) for bitmap/full; O(log cjnz) for sorted sparse columns
// (linear scan when jumbled) plus O(log nvec) lookup for hypersparse.
func (m *Matrix[T]) At(i, j int) (T, bool, error) {
	var zero T
	if i < 0 || i >= m.vlen || j < 0 || j >= m.vdim {
		return zero, false, errors.Wrapf(ErrOutOfRange, "At(%d,%d) on %dx%d", i, j, m.vlen, m.vdim)
	}

	switch m.format {
	case FormatFull:
		return m.Value(j*m.vlen + i), true, nil
	case FormatBitmap:
		pos := j*m.vlen + i
		if m.b[pos] == 0 {
			return zero, false, nil
		}
		return m.Value(pos), true, nil
	}

	pstart, pend := m.ColumnRange(j)
	if m.jumbled {
		for p := pstart; p < pend; p++ {
			if m.i[p] == i {
				return m.Value(p), true, nil
			}
		}
		return zero, false, nil
	}
	col := m.i[pstart:pend]
	k := sort.SearchInts(col, i)
	if k < len(col) && col[k] == i {
		return m.Value(pstart + k), true, nil
	}

	return zero, false, nil
}

// Present reports whether position p of the entry arrays holds an entry.
// Always true for sparse/hypersparse/full.
func (m *Matrix[T]) Present(p int) bool {
	return m.format != FormatBitmap || m.b[p] != 0
}

// Row returns the row index of entry position p.
func (m *Matrix[T]) Row(p int) int {
	if m.format == FormatBitmap || m.format == FormatFull {
		return p % m.vlen
	}
	return m.i[p]
}

// Entries returns every stored entry ordered by column, then by storage
// position within the column (row order unless jumbled).
func (m *Matrix[T]) Entries() []Entry[T] {
	out := make([]Entry[T], 0, m.Nvals())
	m.ForEach(func(i, j int, v T) {
		out = append(out, Entry[T]{Row: i, Col: j, Value: v})
	})

	return out
}

// ForEach calls fn for each stored entry, column by column.
func (m *Matrix[T]) ForEach(fn func(i, j int, v T)) {
	switch m.format {
	case FormatBitmap, FormatFull:
		for j := 0; j < m.vdim; j++ {
			for i := 0; i < m.vlen; i++ {
				pos := j*m.vlen + i
				if m.format == FormatBitmap && m.b[pos] == 0 {
					continue
				}
				fn(i, j, m.Value(pos))
			}
		}
	default:
		for kk := 0; kk < m.NVec(); kk++ {
			j := m.ColumnIndex(kk)
			for p := m.p[kk]; p < m.p[kk+1]; p++ {
				fn(m.i[p], j, m.Value(p))
			}
		}
	}
}

// String implements fmt.Stringer with a compact header.
func (m *Matrix[T]) String() string {
	return fmt.Sprintf("sparse.Matrix[%dx%d %s nvals=%d iso=%t jumbled=%t]",
		m.vlen, m.vdim, m.format, m.Nvals(), m.iso, m.jumbled)
}
