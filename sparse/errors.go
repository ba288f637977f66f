// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with call
// context); tests match them with errors.Is. Panics are reserved for
// programmer errors in option constructors and for invariant checks.

package sparse

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrLengthMismatch indicates parallel input slices of different lengths.
	ErrLengthMismatch = errors.New("sparse: input length mismatch")

	// ErrDuplicate indicates repeated (row, col) triplets and no combiner.
	ErrDuplicate = errors.New("sparse: duplicate entry")

	// ErrInvalidStructure indicates malformed pointer/index/bitmap arrays.
	ErrInvalidStructure = errors.New("sparse: invalid structure")

	// ErrUnknownFormat indicates a Format value outside the defined set.
	ErrUnknownFormat = errors.New("sparse: unknown format")
)
