// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for builders.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions helper that applies defaults then user options.

package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFormat is the representation produced by builders.
	DefaultFormat = FormatSparse

	// DefaultIso marks builder output as non-iso.
	DefaultIso = false

	// DefaultJumbled tells FromCSC/FromHyperCSC the columns are sorted.
	DefaultJumbled = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFormatInvalid = "sparse: WithFormat: unknown format"
)

// Option mutates builder options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective builder configuration. Fields are unexported;
// public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	format  Format // DefaultFormat
	iso     bool   // DefaultIso
	jumbled bool   // DefaultJumbled
}

// WithFormat requests the storage representation of a built matrix.
// Panics on an undefined format value.
func WithFormat(f Format) Option {
	if !f.Valid() {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = f }
}

// WithIso declares that the supplied value slice holds exactly one value
// shared by every entry.
func WithIso() Option {
	return func(o *Options) { o.iso = true }
}

// WithJumbled declares that the row indices handed to FromCSC/FromHyperCSC
// may be unsorted within a column.
func WithJumbled() Option {
	return func(o *Options) { o.jumbled = true }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		format:  DefaultFormat,
		iso:     DefaultIso,
		jumbled: DefaultJumbled,
	}
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
