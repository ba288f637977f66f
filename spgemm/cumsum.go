// SPDX-License-Identifier: MIT

package spgemm

import "github.com/katalvlaran/lvsparse/internal/parallel"

// cumsumExclusive replaces x[k] by the sum of x[0..k). The last element
// (a zero sentinel on input) receives the total.
func cumsumExclusive[E int | int64](x []E) {
	var s E
	for k, v := range x {
		x[k] = s
		s += v
	}
}

// minScanBlock is the smallest block worth a worker in cumsumParallel.
const minScanBlock = 4096

// cumsumParallel is cumsumExclusive over nworkers contiguous blocks: block
// sums, a serial scan over the block sums, then a local scan per block.
//
// Complexity: O(n) work, O(n/nworkers + nworkers) span.
func cumsumParallel(x []int, nworkers int) {
	n := len(x)
	if nworkers > n/minScanBlock {
		nworkers = n / minScanBlock
	}
	if nworkers <= 1 {
		cumsumExclusive(x)
		return
	}

	sums := make([]int, nworkers+1)
	parallel.For(nworkers, nworkers, func(w0, w1 int) {
		for w := w0; w < w1; w++ {
			start, end := parallel.Range(w, nworkers, n)
			s := 0
			for _, v := range x[start:end] {
				s += v
			}
			sums[w] = s
		}
	})
	cumsumExclusive(sums)
	parallel.For(nworkers, nworkers, func(w0, w1 int) {
		for w := w0; w < w1; w++ {
			start, end := parallel.Range(w, nworkers, n)
			s := sums[w]
			for k := start; k < end; k++ {
				v := x[k]
				x[k] = s
				s += v
			}
		}
	})
}
