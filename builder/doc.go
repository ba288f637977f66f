// SPDX-License-Identifier: MIT

// Package builder generates adjacency matrices of classic graph topologies
// for tests, benchmarks and examples.
//
// What & Why:
//
//	Every constructor appends a block of vertices and its edges to a shared
//	edge list; Build turns the list into a sparse.Matrix[T] where A(i,j)
//	holds the weight of the edge i→j. Composing several constructors in one
//	Build yields their disjoint union.
//
// Conventions:
//   - Undirected by default: every edge is stored in both directions with
//     the same weight. WithDirected stores only the documented direction.
//   - Weights come from the WeightFn (DefaultEdgeWeight unless configured)
//     and are converted to T.
//   - Stochastic constructors (RandomSparse) need WithSeed or WithRand.
//
// Determinism:
//   - Same constructors, options and seed ⇒ identical matrices.
//   - Edge emission order is fixed (documented per constructor), so weight
//     draws are reproducible.
//
// Complexity quicksheet:
//   - Path/Cycle/Star/Wheel: O(n); Grid: O(rows·cols); Complete: O(n²);
//     CompleteBipartite: O(n1·n2); RandomSparse: O(n²) Bernoulli trials.
package builder
