// SPDX-License-Identifier: MIT

// Package spgemm: write masks.
//
// A Mask decides which result positions may exist:
//   - C<M>  = A*B keeps only positions where M is true,
//   - C<!M> = A*B keeps only positions where M is false or absent.
//
// M is true at (i,j) when the entry is stored and, for a valued mask, its
// value passes the truth predicate. A structural mask ignores values.

package spgemm

import (
	"github.com/katalvlaran/lvsparse/sparse"
)

// Mask is an immutable view of a matrix used as a write mask.
// A nil *Mask means "no mask".
type Mask struct {
	pat        sparse.Pattern
	nvals      int
	truth      func(p int) bool // nil: structural
	complement bool
}

// StructuralMask uses the pattern of m; values are ignored.
func StructuralMask[M any](m *sparse.Matrix[M]) *Mask {
	if m == nil {
		return nil
	}

	return &Mask{pat: m.Pattern(), nvals: m.Nvals()}
}

// ValuedMask keeps the entries of m whose value satisfies truth. A
// valueless m behaves structurally.
func ValuedMask[M any](m *sparse.Matrix[M], truth func(M) bool) *Mask {
	if m == nil {
		return nil
	}
	mk := &Mask{pat: m.Pattern(), nvals: m.Nvals()}
	if truth != nil && m.HasValues() {
		if m.Iso() {
			v := truth(m.Value(0))
			mk.truth = func(int) bool { return v }
		} else {
			mk.truth = func(p int) bool { return truth(m.Value(p)) }
		}
	}

	return mk
}

// NonzeroMask keeps the entries of m that differ from the zero value.
func NonzeroMask[M comparable](m *sparse.Matrix[M]) *Mask {
	return ValuedMask(m, sparse.NonZero[M])
}

// Complement returns a copy of the mask with the polarity flipped.
func (mk *Mask) Complement() *Mask {
	if mk == nil {
		return nil
	}
	c := *mk
	c.complement = !c.complement

	return &c
}

// Complemented reports whether the mask selects positions where M is false.
func (mk *Mask) Complemented() bool { return mk != nil && mk.complement }

// Structural reports whether values are ignored.
func (mk *Mask) Structural() bool { return mk != nil && mk.truth == nil }

// Rows returns the row count of the mask matrix.
func (mk *Mask) Rows() int { return mk.pat.Rows }

// Cols returns the column count of the mask matrix.
func (mk *Mask) Cols() int { return mk.pat.Cols }

// Format returns the storage format of the mask matrix.
func (mk *Mask) Format() sparse.Format { return mk.pat.Format }

// at reports whether stored position p is true (ignoring complement).
func (mk *Mask) at(p int) bool {
	if mk.pat.B != nil && mk.pat.B[p] == 0 {
		return false
	}
	return mk.truth == nil || mk.truth(p)
}

// Contains reports whether M(i,j) is true, ignoring the complement flag.
// Complexity: O(1) for bitmap/full, O(log cjnz) for sorted sparse columns.
func (mk *Mask) Contains(i, j int) bool {
	switch mk.pat.Format {
	case sparse.FormatBitmap, sparse.FormatFull:
		return mk.at(j*mk.pat.Rows + i)
	}
	start, end := mk.column(j)
	if mk.pat.Jumbled {
		for p := start; p < end; p++ {
			if mk.pat.I[p] == i {
				return mk.at(p)
			}
		}
		return false
	}
	rows := mk.pat.I[start:end]
	k := searchInts(rows, i)
	if k < len(rows) && rows[k] == i {
		return mk.at(start + k)
	}

	return false
}

// Allows reports whether C(i,j) may hold an entry under this mask.
func (mk *Mask) Allows(i, j int) bool {
	if mk == nil {
		return true
	}
	return mk.Contains(i, j) != mk.complement
}

// column returns the stored range of M(:,j) for sparse/hypersparse masks.
func (mk *Mask) column(j int) (start, end int) {
	if mk.pat.Format == sparse.FormatHypersparse {
		kk, ok := sparse.HyperLookup(mk.pat.H, j)
		if !ok {
			return 0, 0
		}
		return mk.pat.P[kk], mk.pat.P[kk+1]
	}
	return mk.pat.P[j], mk.pat.P[j+1]
}

// scattered reports whether the engine scatters M(:,j) into accumulators
// (sparse/hypersparse masks) rather than probing M(i,j) in place.
func (mk *Mask) scattered() bool {
	return mk.pat.Format == sparse.FormatSparse || mk.pat.Format == sparse.FormatHypersparse
}

// trivial classifies masks that need no per-entry work:
// elide: the mask keeps everything (full structural M);
// empty: the mask keeps nothing (full structural !M).
func (mk *Mask) trivial() (elide, empty bool) {
	if mk == nil {
		return true, false
	}
	full := mk.pat.Format == sparse.FormatFull ||
		(mk.pat.Format == sparse.FormatBitmap && mk.nvals == mk.pat.Rows*mk.pat.Cols)
	if !full || mk.truth != nil {
		return false, false
	}
	if mk.complement {
		return false, true
	}

	return true, false
}

// filter drops the entries of c that the mask does not allow. It is the
// compute-then-filter step used when the planner discards the mask.
func filter[T any](c *sparse.Matrix[T], mk *Mask) *sparse.Matrix[T] {
	if mk == nil {
		return c
	}
	return c.Select(func(i, j int, _ T) bool { return mk.Allows(i, j) })
}
