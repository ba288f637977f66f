// SPDX-License-Identifier: MIT

// Package sparse provides the column-oriented sparse matrix used by the
// multiplication engine and the graph algorithms built on it.
//
// What & Why:
//
//	A Matrix[T] stores an r×c matrix "by column" in one of four formats:
//
//	  - FormatSparse      column pointers p (len c+1), row indices i, values x.
//	  - FormatHypersparse like sparse, plus an explicit sorted list h of the
//	                      non-empty columns; p has len(h)+1 entries.
//	  - FormatBitmap      dense presence flags b (len r*c) and dense values x.
//	  - FormatFull        every cell is present; only dense values x.
//
//	Row indices inside a sparse/hypersparse column are either sorted or the
//	matrix is flagged Jumbled. Wait sorts every column and clears the flag.
//	An iso matrix stores one shared value in x[0]. A valueless matrix
//	(x == nil) carries structure only.
//
// Determinism:
//   - Builders, conversions and selections iterate in fixed column/row order.
//   - No map iteration, no randomness.
//
// Complexity quicksheet:
//   - At: O(log nnz(col)) sorted sparse, O(1) bitmap/full.
//   - Convert: O(nnz + r*c) when a dense format is involved, else O(nnz).
//   - Transpose: O(nnz + r).
//   - Wait: O(sum(cjnz * log cjnz)) over jumbled columns only.
package sparse
