// SPDX-License-Identifier: MIT

// Package spgemm multiplies sparse matrices over arbitrary semirings:
// C<M> = A*B, with an optional (possibly complemented) mask.
//
// Overview:
//
//   - Saxpy is a Gustavson-style column saxpy engine. Each column of C is
//     accumulated from the columns of A selected by B's column, in either a
//     dense accumulator (Gustavson) or an open-addressing hash table.
//   - The work is planned before it is done: a cost estimator predicts the
//     multiply terms of every output column, a partitioner cuts the profile
//     into coarse tasks (whole column ranges, private accumulators) and fine
//     teams (one heavy column split across workers, shared accumulator), and
//     SelectHashSize picks each accumulator.
//   - Fine teams update their shared accumulator with a small lock-free
//     slot protocol: hardware atomics when the monoid has them, a per-slot
//     spin lock otherwise.
//   - Mxm wraps Saxpy and falls back to Reference for inputs Saxpy declines.
//
// Masks:
//
//   - StructuralMask, ValuedMask and NonzeroMask wrap a matrix; Complement
//     flips polarity. A sparse/hypersparse mask is scattered into the
//     accumulators; a bitmap/full mask is probed per entry.
//   - A non-complemented sparse mask that would cost more to scan than the
//     multiply itself (Tuning.MaskDiscardFactor) is applied after the
//     multiply instead. The result is the same.
//
// Determinism:
//
//   - The structure of C never depends on scheduling. Values do not either
//     for exact monoids (integers, booleans, min/max); floating-point sums
//     may differ in the last bits between runs because team members combine
//     in arrival order. With an "any" monoid the kept value is one of the
//     candidate products.
//
// Error handling (sentinel errors):
//
//   - ErrNotApplicable: A and B both full and no mask; use Mxm or another
//     algorithm.
//   - ErrOutOfMemory: WithWorkspaceLimit exceeded; nothing is returned.
//   - ErrMaskShape, sparse.ErrDimensionMismatch, sparse.ErrNilMatrix,
//     semiring.ErrNilOperator for malformed calls.
//
// Complexity:
//
//   - Time:  O(flops + nnz(M) + Σ cjnz·log cjnz) for sorted output, where
//     flops = Σ_j Σ_{k∈B(:,j)} nnz(A(:,k)).
//   - Space: O(rows(A)) per Gustavson task, O(hash size) per hash task,
//     plus O(nnz(C)).
package spgemm
