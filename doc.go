// Package lvsparse is a semiring sparse matrix multiplication engine for
// graph algorithms written in pure Go.
//
// What is inside?
//
//	A parallel saxpy-style SpGEMM (C<M> = A*B over any semiring) with the
//	pieces a graph library needs around it:
//		• sparse/     – column-major matrices in sparse, hypersparse, bitmap
//		                and full formats, with iso and jumbled flags
//		• semiring/   – monoids and semirings (plus_times, min_plus,
//		                any_pair, lor_land…) with atomic update paths
//		• spgemm/     – the engine: cost estimation, coarse/fine task
//		                planning, Gustavson and hash accumulators, masks
//		• algorithms/ – BFS, Bellman-Ford SSSP and triangle counting
//		                expressed as masked products
//		• builder/    – adjacency matrices of classic topologies
//		• metrics/    – pluggable counters and histograms (Prometheus
//		                backend in metrics/prom)
//
// Quick example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a, _ := builder.Build[int](nil, builder.Cycle(4))
//	c, _ := spgemm.Mxm(nil, a, a, semiring.PlusTimes[int]())
//	// c(i,j) counts the walks of length 2 from i to j.
//
//	go get github.com/katalvlaran/lvsparse
package lvsparse
