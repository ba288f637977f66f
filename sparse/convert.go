// SPDX-License-Identifier: MIT

// Package sparse: conversion between the four storage formats.
//
// All conversions go through FormatSparse as the hub:
//
//	hypersparse ─┐            ┌─► hypersparse
//	bitmap ──────┼─► sparse ──┼─► bitmap
//	full ────────┘            └─► full (only when every cell is present)
//
// iso and valueless matrices stay iso / valueless. Converting to a dense
// format resolves jumbled columns; sparse↔hypersparse keeps the flag.

package sparse

import "github.com/cockroachdb/errors"

// Convert returns a copy of m stored in format f.
//
// Errors:
//   - ErrUnknownFormat for an undefined f.
//   - ErrInvalidStructure when f is FormatFull but some cell is absent.
//
// Complexity: O(nnz + cols) between sparse formats, O(rows*cols) otherwise.
func (m *Matrix[T]) Convert(f Format) (*Matrix[T], error) {
	if !f.Valid() {
		return nil, ErrUnknownFormat
	}
	if f == m.format {
		return m.Clone(), nil
	}

	s := m.toSparse()
	switch f {
	case FormatSparse:
		return s, nil
	case FormatHypersparse:
		return s.sparseToHyper(), nil
	case FormatBitmap:
		return s.sparseToBitmap(), nil
	default:
		if s.Nvals() != s.vlen*s.vdim {
			return nil, errors.Wrapf(ErrInvalidStructure, "Convert: %d of %d cells present, cannot store as full",
				s.Nvals(), s.vlen*s.vdim)
		}
		full := s.sparseToBitmap()
		full.format, full.b, full.nvals = FormatFull, nil, 0
		return full, nil
	}
}

// toSparse returns m (or a fresh copy) in FormatSparse. The result never
// aliases m's arrays except when m is already sparse and then it is a clone.
func (m *Matrix[T]) toSparse() *Matrix[T] {
	switch m.format {
	case FormatSparse:
		return m.Clone()
	case FormatHypersparse:
		p := make([]int, m.vdim+1)
		for kk, j := range m.h {
			p[j+1] = m.p[kk+1] - m.p[kk]
		}
		for j := 0; j < m.vdim; j++ {
			p[j+1] += p[j]
		}
		out := &Matrix[T]{
			vlen: m.vlen, vdim: m.vdim, format: FormatSparse,
			p: p, i: append([]int(nil), m.i...), iso: m.iso, jumbled: m.jumbled,
		}
		out.x = cloneValues(m.x)
		if out.i == nil {
			out.i = []int{}
		}
		return out
	}

	// bitmap / full
	nnz := m.Nvals()
	p := make([]int, m.vdim+1)
	idx := make([]int, 0, nnz)
	var x []T
	copyValues := m.x != nil && !m.iso
	if copyValues {
		x = make([]T, 0, nnz)
	}
	for j := 0; j < m.vdim; j++ {
		base := j * m.vlen
		for i := 0; i < m.vlen; i++ {
			if m.format == FormatBitmap && m.b[base+i] == 0 {
				continue
			}
			idx = append(idx, i)
			if copyValues {
				x = append(x, m.x[base+i])
			}
		}
		p[j+1] = len(idx)
	}
	out := &Matrix[T]{vlen: m.vlen, vdim: m.vdim, format: FormatSparse, p: p, i: idx, x: x, iso: m.iso}
	if m.iso {
		out.x = []T{m.x[0]}
	}

	return out
}

// sparseToHyper compacts the pointer array of a sparse matrix (in place on
// the receiver, which must be a private copy).
func (m *Matrix[T]) sparseToHyper() *Matrix[T] {
	h := make([]int, 0)
	p := []int{0}
	for j := 0; j < m.vdim; j++ {
		if m.p[j+1] > m.p[j] {
			h = append(h, j)
			p = append(p, m.p[j+1])
		}
	}
	m.format, m.h, m.p = FormatHypersparse, h, p

	return m
}

// sparseToBitmap scatters a sparse matrix into dense flags and values.
func (m *Matrix[T]) sparseToBitmap() *Matrix[T] {
	n := m.vlen * m.vdim
	b := make([]int8, n)
	var x []T
	switch {
	case m.x == nil:
	case m.iso:
		x = []T{m.x[0]}
	default:
		x = make([]T, n)
	}
	for j := 0; j < m.vdim; j++ {
		base := j * m.vlen
		for p := m.p[j]; p < m.p[j+1]; p++ {
			b[base+m.i[p]] = 1
			if x != nil && !m.iso {
				x[base+m.i[p]] = m.x[p]
			}
		}
	}

	return &Matrix[T]{vlen: m.vlen, vdim: m.vdim, format: FormatBitmap, b: b, x: x, iso: m.iso, nvals: m.p[m.vdim]}
}

// cloneValues copies a value slice, keeping nil as nil.
func cloneValues[T any](x []T) []T {
	if x == nil {
		return nil
	}
	out := make([]T, len(x))
	copy(out, x)

	return out
}
