// SPDX-License-Identifier: MIT

// Package builder: sentinel errors.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Constructors wrap them with method context; they never panic.
//   - Option constructors (WithX) panic on meaningless inputs.

package builder

import "github.com/cockroachdb/errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor's
	// minimum (n, rows, cols).
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG
	// (use WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates a nil constructor or a matrix that could
	// not be assembled.
	ErrConstructFailed = errors.New("builder: construction failed")
)
