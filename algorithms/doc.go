// SPDX-License-Identifier: MIT

// Package algorithms expresses classic graph algorithms as sequences of
// masked sparse matrix products (spgemm.Mxm).
//
// A graph is its adjacency matrix A: A(u,v) stores the weight of u→v.
// Vertex sets travel as n×1 column vectors, so one step of a traversal is
// C = Aᵀ·q, where C(v) combines q(u) over the edges u→v.
//
// Provided:
//
//   - Traversals
//     – BFSLevels:  C<!visited> = Aᵀ·q over any_pair.
//     – BFSParents: C<!visited> = Aᵀ·q over any_second, q(u) = u.
//
//   - Shortest paths
//     – SSSP: frontier Bellman-Ford over min_plus; detects negative cycles.
//
//   - Counting
//     – TriangleCount: C<L> = L·Lᵀ over plus_pair, L = tril(A,-1), then sum.
//
// Options (WithContext, WithOnLevel, WithMxmOptions) are shared by every
// function; Mxm options such as WithThreads or WithMethod pass through.
//
// Errors (sentinel):
//
//	– sparse.ErrNilMatrix           for a nil adjacency matrix.
//	– ErrNotSquare                  if A is not n×n.
//	– ErrSourceOutOfRange           if the source is not a vertex of A.
//	– ErrNegativeCycle              if SSSP reaches a negative cycle.
//	– context errors and hook errors, wrapped with the level reached.
package algorithms
