// SPDX-License-Identifier: MIT

// Package spgemm: sentinel errors.
//
// Taxonomy:
//   - ErrOutOfMemory is the only failure a caller can recover from (retry
//     with a larger WithWorkspaceLimit or smaller inputs). The call frees its
//     workspace and returns no matrix.
//   - ErrNotApplicable is control flow, not failure: the engine declines an
//     input combination it does not run and the caller picks another
//     algorithm (Mxm does this automatically).
//   - Shape and nil-input errors reuse the sparse package sentinels.
//   - Internal invariant violations panic under the invariants build tag and
//     are not checked otherwise.

package spgemm

import "github.com/cockroachdb/errors"

var (
	// ErrOutOfMemory indicates that a workspace or output allocation would
	// exceed the configured workspace limit.
	ErrOutOfMemory = errors.New("spgemm: out of memory")

	// ErrNotApplicable indicates that Saxpy does not handle this input
	// combination (both inputs full and no mask).
	ErrNotApplicable = errors.New("spgemm: not applicable")

	// ErrMaskShape indicates that the mask is not rows(A)×cols(B).
	ErrMaskShape = errors.New("spgemm: mask shape mismatch")
)
