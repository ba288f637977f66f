// SPDX-License-Identifier: MIT

// Package builder: complete graphs.
//
// Edge emission order:
//   - Complete(n): i→j for i asc, j > i asc (directed: both i→j and j→i,
//     since a complete digraph has every arc).
//   - CompleteBipartite(n1, n2): left i → right j, i asc then j asc.

package builder

import (
	"github.com/cockroachdb/errors"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"

	minCompleteVertices  = 1
	minBipartitePartSize = 1
)

// Complete builds K_n (n ≥ 1) without self-loops.
func Complete(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < minCompleteVertices {
			return tooFew(methodComplete, n, minCompleteVertices)
		}
		base := el.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				el.addEdge(cfg, base+i, base+j)
				if cfg.directed {
					el.addEdge(cfg, base+j, base+i)
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: vertices [0,n1) on the left,
// [n1,n1+n2) on the right.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n1 < minBipartitePartSize || n2 < minBipartitePartSize {
			return errors.Wrapf(ErrTooFewVertices, "%s: n1=%d, n2=%d (each must be ≥ %d)",
				methodCompleteBipartite, n1, n2, minBipartitePartSize)
		}
		left := el.addVertices(n1)
		right := el.addVertices(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				el.addEdge(cfg, left+i, right+j)
			}
		}
		return nil
	}
}
