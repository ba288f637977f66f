// SPDX-License-Identifier: MIT

// Package builder: RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): each admissible edge independently with
//     probability p.
//   - Undirected: unordered pairs {i,j}, i < j, i asc then j asc.
//   - Directed: ordered pairs (i,j), i asc then j asc; i == j only with
//     WithLoops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else
//     ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) trials, O(nnz) space.

package builder

import (
	"github.com/cockroachdb/errors"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return errors.Wrapf(ErrInvalidProbability, "%s: p=%.6f not in [%.1f,%.1f]",
				methodRandomSparse, p, probMin, probMax)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return errors.Wrapf(ErrNeedRandSource, "%s", methodRandomSparse)
		}

		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}
		base := el.addVertices(n)
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if keep() {
					el.addEdge(cfg, base+i, base+j)
				}
			}
		}
		return nil
	}
}
