// SPDX-License-Identifier: MIT

// Package sparse - structural operations used by algorithms and tests.
//
// Purpose:
//   - Clone / Transpose / Select (Tril, Triu) / Cast / Reduce / Equal / Dense.
//   - Keep every operation format-agnostic: inputs may be in any format,
//     outputs are FormatSparse unless stated otherwise.
//
// Determinism:
//   - Fixed column-then-row iteration; results never depend on scheduling.

package sparse

// Clone returns a deep copy of m (same format, same flags).
// Complexity: O(nnz + cols) for sparse formats, O(rows*cols) for dense ones.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := *m
	out.p = cloneInts(m.p)
	out.h = cloneInts(m.h)
	out.i = cloneInts(m.i)
	if m.b != nil {
		out.b = make([]int8, len(m.b))
		copy(out.b, m.b)
	}
	out.x = cloneValues(m.x)

	return &out
}

func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

// Transpose returns mᵀ in FormatSparse with sorted columns.
//
// Implementation:
//   - Stage 1: count entries per row of m (columns of the result).
//   - Stage 2: prefix-sum the counts into result pointers.
//   - Stage 3: scatter entries visiting m's columns in ascending order, which
//     leaves every result column sorted even when m is jumbled.
//
// Complexity: O(nnz + rows + cols).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	rows, cols := m.vdim, m.vlen
	p := make([]int, cols+1)
	m.ForEach(func(i, _ int, _ T) { p[i+1]++ })
	for j := 0; j < cols; j++ {
		p[j+1] += p[j]
	}
	next := make([]int, cols)
	copy(next, p[:cols])

	nnz := p[cols]
	idx := make([]int, nnz)
	var x []T
	valued := m.x != nil && !m.iso
	if valued {
		x = make([]T, nnz)
	}
	m.ForEach(func(i, j int, v T) {
		pos := next[i]
		next[i]++
		idx[pos] = j
		if valued {
			x[pos] = v
		}
	})

	out := &Matrix[T]{vlen: rows, vdim: cols, format: FormatSparse, p: p, i: idx, x: x, iso: m.iso}
	if m.iso {
		out.x = []T{m.x[0]}
	}

	return out
}

// Select keeps the entries for which keep returns true. The result is
// FormatHypersparse when m is hypersparse and FormatSparse otherwise.
// Complexity: O(nnz + cols) (O(rows*cols) for dense inputs).
func (m *Matrix[T]) Select(keep func(i, j int, v T) bool) *Matrix[T] {
	p := make([]int, m.vdim+1)
	idx := make([]int, 0, m.Nvals())
	var x []T
	valued := m.x != nil && !m.iso
	if valued {
		x = make([]T, 0, m.Nvals())
	}
	m.ForEach(func(i, j int, v T) {
		if !keep(i, j, v) {
			return
		}
		p[j+1]++
		idx = append(idx, i)
		if valued {
			x = append(x, v)
		}
	})
	for j := 0; j < m.vdim; j++ {
		p[j+1] += p[j]
	}

	out := &Matrix[T]{vlen: m.vlen, vdim: m.vdim, format: FormatSparse, p: p, i: idx, x: x, iso: m.iso}
	if m.iso {
		out.x = []T{m.x[0]}
	}
	if m.format == FormatSparse || m.format == FormatHypersparse {
		out.jumbled = m.jumbled
	}
	if m.format == FormatHypersparse {
		return out.sparseToHyper()
	}

	return out
}

// Tril keeps entries on or below the k-th diagonal (j - i <= k).
// Tril(-1) is the strictly lower triangle.
func (m *Matrix[T]) Tril(k int) *Matrix[T] {
	return m.Select(func(i, j int, _ T) bool { return j-i <= k })
}

// Triu keeps entries on or above the k-th diagonal (j - i >= k).
func (m *Matrix[T]) Triu(k int) *Matrix[T] {
	return m.Select(func(i, j int, _ T) bool { return j-i >= k })
}

// Reduce folds every stored value with op starting from identity.
// A valueless matrix reduces to identity.
func (m *Matrix[T]) Reduce(op func(a, b T) T, identity T) T {
	acc := identity
	if m.x == nil {
		return acc
	}
	m.ForEach(func(_, _ int, v T) { acc = op(acc, v) })

	return acc
}

// Cast maps every value of m through f, keeping the structure. A valueless
// input yields an iso result holding f(zero).
func Cast[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	out := &Matrix[U]{
		vlen: m.vlen, vdim: m.vdim, format: m.format,
		p: cloneInts(m.p), h: cloneInts(m.h), i: cloneInts(m.i),
		nvals: m.nvals, iso: m.iso, jumbled: m.jumbled,
	}
	if m.b != nil {
		out.b = make([]int8, len(m.b))
		copy(out.b, m.b)
	}
	switch {
	case m.x == nil:
		var zero T
		out.x, out.iso = []U{f(zero)}, true
	default:
		out.x = make([]U, len(m.x))
		for k, v := range m.x {
			out.x[k] = f(v)
		}
	}

	return out
}

// Structure returns a valueless copy of m's pattern.
func (m *Matrix[T]) Structure() *Matrix[T] {
	out := m.Clone()
	out.x, out.iso = nil, false

	return out
}

// Equal reports whether a and b hold the same entries (same shape, same
// positions, eq on values). Formats and jumbled order are ignored; values are
// compared only when both matrices carry them.
func Equal[T any](a, b *Matrix[T], eq func(x, y T) bool) bool {
	if a.vlen != b.vlen || a.vdim != b.vdim || a.Nvals() != b.Nvals() {
		return false
	}
	ea, eb := sortedEntries(a), sortedEntries(b)
	compareValues := a.x != nil && b.x != nil && eq != nil
	for k := range ea {
		if ea[k].Row != eb[k].Row || ea[k].Col != eb[k].Col {
			return false
		}
		if compareValues && !eq(ea[k].Value, eb[k].Value) {
			return false
		}
	}

	return true
}

// sortedEntries returns the entries of m in (col, row) order.
func sortedEntries[T any](m *Matrix[T]) []Entry[T] {
	if m.jumbled {
		m = m.Clone()
		m.Wait()
	}
	return m.Entries()
}

// Dense expands m into a row-major table, filling absent cells with fill.
// Complexity: O(rows*cols + nnz).
func (m *Matrix[T]) Dense(fill T) [][]T {
	out := make([][]T, m.vlen)
	for i := range out {
		row := make([]T, m.vdim)
		for j := range row {
			row[j] = fill
		}
		out[i] = row
	}
	m.ForEach(func(i, j int, v T) { out[i][j] = v })

	return out
}
