// SPDX-License-Identifier: MIT

// Package sparse: column sorting and the jumbled flag.
//
// Contract:
//   - SortColumn is pure with respect to everything but its arguments and is
//     a no-op on an already sorted column.
//   - Wait sorts every column of a jumbled matrix and clears the flag; on a
//     non-jumbled matrix it returns immediately.
//   - After Wait, Jumbled() == false and every column is strictly increasing.

package sparse

import "sort"

// SortColumn sorts one column's row indices ascending, permuting vals in
// tandem. vals may be nil (valueless) or have len 1 (iso); in both cases
// only rows are sorted. Rows must be distinct.
//
// Complexity: O(n) when already sorted, else O(n log n).
func SortColumn[T any](rows []int, vals []T) {
	if sort.IntsAreSorted(rows) {
		return
	}
	if len(vals) != len(rows) {
		sort.Ints(rows)
		return
	}
	sort.Sort(columnSorter[T]{rows: rows, vals: vals})
}

// ColumnSorted reports whether rows is strictly increasing.
func ColumnSorted(rows []int) bool {
	for k := 1; k < len(rows); k++ {
		if rows[k] <= rows[k-1] {
			return false
		}
	}

	return true
}

// Wait sorts every column of a jumbled sparse/hypersparse matrix in place.
// Calling Wait on a sorted matrix is a no-op.
func (m *Matrix[T]) Wait() {
	if !m.jumbled {
		return
	}
	if m.format == FormatSparse || m.format == FormatHypersparse {
		perColumn := m.x != nil && !m.iso
		for kk := 0; kk+1 < len(m.p); kk++ {
			start, end := m.p[kk], m.p[kk+1]
			if perColumn {
				SortColumn(m.i[start:end], m.x[start:end])
			} else {
				SortColumn[T](m.i[start:end], nil)
			}
		}
	}
	m.jumbled = false
}

// columnSorter sorts (row, value) pairs by row.
type columnSorter[T any] struct {
	rows []int
	vals []T
}

func (s columnSorter[T]) Len() int           { return len(s.rows) }
func (s columnSorter[T]) Less(a, b int) bool { return s.rows[a] < s.rows[b] }
func (s columnSorter[T]) Swap(a, b int) {
	s.rows[a], s.rows[b] = s.rows[b], s.rows[a]
	s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
}

// stableSorter sorts rows with the matching window of x, keeping the input
// order of equal rows (duplicate folding depends on it).
type stableSorter[T any] struct {
	rows []int
	vals []T // nil when only rows move
}

func (s stableSorter[T]) Len() int           { return len(s.rows) }
func (s stableSorter[T]) Less(a, b int) bool { return s.rows[a] < s.rows[b] }
func (s stableSorter[T]) Swap(a, b int) {
	s.rows[a], s.rows[b] = s.rows[b], s.rows[a]
	if s.vals != nil {
		s.vals[a], s.vals[b] = s.vals[b], s.vals[a]
	}
}

// sortColumnStable stable-sorts rows together with x[start:start+len(rows)]
// when valued is set.
func sortColumnStable[T any](rows []int, x []T, start int, valued bool) {
	if sort.IntsAreSorted(rows) {
		return
	}
	s := stableSorter[T]{rows: rows}
	if valued {
		s.vals = x[start : start+len(rows)]
	}
	sort.Stable(s)
}
