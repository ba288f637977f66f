// SPDX-License-Identifier: MIT

// Package semiring defines the numeric policy of a sparse matrix product:
// an additive Monoid (combine, identity, optional terminal value, optional
// hardware-atomic combine) and a multiply operator, bundled as a Semiring.
//
// The engine in package spgemm treats a Semiring as opaque. It only asks:
//   - Mul(a, b) and which operands Mul actually reads (MulKind), so the
//     engine can skip loading values it never uses;
//   - Add.Op / Add.Identity / Add.IsTerminal to combine terms;
//   - Add.Atomic, which selects the lock-free path for fine-task
//     accumulators; a nil Atomic selects the per-slot critical section.
//
// Built-ins cover the algebras used by graph algorithms:
//
//	PlusTimes  conventional arithmetic           (numeric linear algebra)
//	MinPlus    tropical (shortest paths)         (Bellman-Ford, APSP)
//	MaxPlus    longest / critical paths
//	MinMax     bottleneck paths
//	PlusPair   counting (triangles, common neighbours)
//	AnyPair    reachability (BFS frontier, iso output)
//	AnySecond  parent discovery (BFS tree)
//	LorLand    boolean reachability
//	Pattern    structure only, no values (symbolic product)
//
// Custom algebras are built with NewMonoid and NewSemiring.
package semiring
