// SPDX-License-Identifier: MIT

// Package sparse: domain types. This file contains ONLY the Format enum, the
// Matrix layout and the read-only Pattern view; behavior lives in matrix.go,
// builder.go, convert.go, sort.go and ops.go.

package sparse

// Format selects the storage representation of a Matrix.
type Format uint8

const (
	// FormatSparse stores every column (compressed sparse column).
	FormatSparse Format = iota
	// FormatHypersparse stores only the non-empty columns, listed in h.
	FormatHypersparse
	// FormatBitmap stores dense presence flags plus dense values.
	FormatBitmap
	// FormatFull stores dense values; every cell is present.
	FormatFull

	formatCount
)

var formatNames = [formatCount]string{
	FormatSparse:      "sparse",
	FormatHypersparse: "hypersparse",
	FormatBitmap:      "bitmap",
	FormatFull:        "full",
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f >= formatCount {
		return "unknown"
	}
	return formatNames[f]
}

// Valid reports whether f is one of the four defined formats.
func (f Format) Valid() bool { return f < formatCount }

// Formats lists all formats in declaration order (handy for table tests).
func Formats() []Format {
	return []Format{FormatSparse, FormatHypersparse, FormatBitmap, FormatFull}
}

// Matrix is an r×c sparse matrix stored by column.
//
// Layout per format (vlen = rows, vdim = cols):
//   - sparse:      p[0..vdim], i[0..nnz), x[0..nnz)
//   - hypersparse: h[0..nvec) strictly increasing, p[0..nvec], i, x as above
//   - bitmap:      b[0..vlen*vdim) in {0,1}, x[0..vlen*vdim), nvals = sum(b)
//   - full:        x[0..vlen*vdim)
//
// Dense positions are column-major: cell (i,j) lives at j*vlen + i.
// iso matrices keep a single value in x[0]; valueless matrices have x == nil.
type Matrix[T any] struct {
	vlen, vdim int    // rows, columns
	format     Format // storage representation
	p          []int  // column pointers (sparse/hyper)
	h          []int  // non-empty column list (hyper)
	i          []int  // row indices (sparse/hyper)
	b          []int8 // presence flags (bitmap)
	x          []T    // values, len 1 when iso, nil when valueless
	nvals      int    // entry count (bitmap)
	iso        bool   // all entries share x[0]
	jumbled    bool   // some sparse/hyper column may be unsorted
}

// Pattern is a read-only structural view of a Matrix: the same arrays the
// Matrix owns, without values. Callers must not mutate the slices.
type Pattern struct {
	Rows, Cols int
	Format     Format
	P, H, I    []int
	B          []int8
	Jumbled    bool
}

// Entry is one stored (row, col, value) triple.
type Entry[T any] struct {
	Row, Col int
	Value    T
}
