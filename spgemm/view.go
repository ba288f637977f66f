// SPDX-License-Identifier: MIT

// Package spgemm: format-independent access to operand structure.
//
// A view wraps a sparse.Pattern so that every phase walks the four storage
// formats through the same few calls. For bitmap/full operands, vector kk
// occupies the dense range kk*rows .. (kk+1)*rows and presence comes from B.

package spgemm

import (
	"sort"

	"github.com/katalvlaran/lvsparse/sparse"
)

type view struct {
	sparse.Pattern
	nvec  int
	hyper bool
	dense bool // bitmap or full
}

func newView(p sparse.Pattern) view {
	v := view{Pattern: p, nvec: p.Cols}
	switch p.Format {
	case sparse.FormatHypersparse:
		v.nvec, v.hyper = len(p.H), true
	case sparse.FormatBitmap, sparse.FormatFull:
		v.dense = true
	}

	return v
}

// vec returns the position range of stored vector kk.
func (v *view) vec(kk int) (start, end int) {
	if v.dense {
		return kk * v.Rows, (kk + 1) * v.Rows
	}
	return v.P[kk], v.P[kk+1]
}

// colIndex maps stored vector kk to its column.
func (v *view) colIndex(kk int) int {
	if v.hyper {
		return v.H[kk]
	}
	return kk
}

// column returns the position range of column j (empty when a hypersparse
// operand does not store it).
func (v *view) column(j int) (start, end int) {
	switch {
	case v.dense:
		return j * v.Rows, (j + 1) * v.Rows
	case v.hyper:
		kk, ok := sparse.HyperLookup(v.H, j)
		if !ok {
			return 0, 0
		}
		return v.P[kk], v.P[kk+1]
	default:
		return v.P[j], v.P[j+1]
	}
}

// present reports whether position p holds an entry.
func (v *view) present(p int) bool { return v.B == nil || v.B[p] != 0 }

// row returns the row of position p inside a vector starting at start.
func (v *view) row(p, start int) int {
	if v.dense {
		return p - start
	}
	return v.I[p]
}

// sortedRows reports whether binary search over I is valid.
func (v *view) sortedRows() bool { return !v.dense && !v.Jumbled }

// searchInts is sort.SearchInts, kept local for the hot paths.
func searchInts(a []int, x int) int { return sort.SearchInts(a, x) }
