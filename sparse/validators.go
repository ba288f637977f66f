// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Single source of truth for structural and shape validation.
//  - Validate is the full O(nnz) structural check used by tests and by the
//    invariants build; the shape validators are O(1) guards for facades.
//
// Note:
//  - Validators return sentinels wrapped with a validator tag; callers match
//    them with errors.Is.

package sparse

import "github.com/cockroachdb/errors"

// Validate checks every structural invariant of m:
//   - pointer arrays start at 0 and never decrease,
//   - hyperlist strictly increasing and in range,
//   - row indices in range, strictly increasing per column unless jumbled,
//   - bitmap flags in {0,1} and nvals consistent,
//   - value slice length consistent with iso / format.
//
// Complexity: O(nnz + cols) for sparse formats, O(rows*cols) for bitmap.
func (m *Matrix[T]) Validate() error {
	if m == nil {
		return errors.Wrap(ErrNilMatrix, "Validate")
	}
	if m.vlen < 0 || m.vdim < 0 {
		return errors.Wrap(ErrInvalidDimensions, "Validate")
	}
	if !m.format.Valid() {
		return errors.Wrap(ErrUnknownFormat, "Validate")
	}

	switch m.format {
	case FormatSparse, FormatHypersparse:
		nvec := m.vdim
		if m.format == FormatHypersparse {
			nvec = len(m.h)
			for k := range m.h {
				if m.h[k] < 0 || m.h[k] >= m.vdim || (k > 0 && m.h[k] <= m.h[k-1]) {
					return errors.Wrapf(ErrInvalidStructure, "Validate: h[%d]=%d", k, m.h[k])
				}
			}
		}
		if err := checkPointers(m.p, nvec+1); err != nil {
			return errors.Wrap(err, "Validate")
		}
		nnz := m.p[nvec]
		if len(m.i) != nnz {
			return errors.Wrapf(ErrLengthMismatch, "Validate: %d row indices for %d entries", len(m.i), nnz)
		}
		for kk := 0; kk < nvec; kk++ {
			for p := m.p[kk]; p < m.p[kk+1]; p++ {
				r := m.i[p]
				if r < 0 || r >= m.vlen {
					return errors.Wrapf(ErrOutOfRange, "Validate: row %d in column %d", r, m.ColumnIndex(kk))
				}
				if !m.jumbled && p > m.p[kk] && r <= m.i[p-1] {
					return errors.Wrapf(ErrInvalidStructure, "Validate: column %d not strictly increasing", m.ColumnIndex(kk))
				}
			}
		}
		return m.checkValueLen(nnz)

	case FormatBitmap:
		if len(m.b) != m.vlen*m.vdim {
			return errors.Wrapf(ErrLengthMismatch, "Validate: %d flags", len(m.b))
		}
		n := 0
		for k, f := range m.b {
			if f != 0 && f != 1 {
				return errors.Wrapf(ErrInvalidStructure, "Validate: b[%d]=%d", k, f)
			}
			n += int(f)
		}
		if n != m.nvals {
			return errors.Wrapf(ErrInvalidStructure, "Validate: nvals=%d, counted %d", m.nvals, n)
		}
		return m.checkValueLen(len(m.b))

	default:
		return m.checkValueLen(m.vlen * m.vdim)
	}
}

func (m *Matrix[T]) checkValueLen(n int) error {
	switch {
	case m.x == nil:
		if m.iso {
			return errors.Wrap(ErrInvalidStructure, "Validate: iso without value")
		}
	case m.iso:
		if len(m.x) != 1 {
			return errors.Wrapf(ErrLengthMismatch, "Validate: iso with %d values", len(m.x))
		}
	case len(m.x) != n:
		return errors.Wrapf(ErrLengthMismatch, "Validate: %d values for %d entries", len(m.x), n)
	}

	return nil
}

// ValidateMulCompatible checks that a (m×k) times b (k×n) is defined.
// Complexity: O(1).
func ValidateMulCompatible(a, b Pattern) error {
	if a.Cols != b.Rows {
		return errors.Wrapf(ErrDimensionMismatch, "ValidateMulCompatible: %dx%d * %dx%d", a.Rows, a.Cols, b.Rows, b.Cols)
	}

	return nil
}

// ValidateShape checks that p is rows×cols.
// Complexity: O(1).
func ValidateShape(p Pattern, rows, cols int) error {
	if p.Rows != rows || p.Cols != cols {
		return errors.Wrapf(ErrDimensionMismatch, "ValidateShape: %dx%d, want %dx%d", p.Rows, p.Cols, rows, cols)
	}

	return nil
}
