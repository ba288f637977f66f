// SPDX-License-Identifier: MIT

// Package builder: entry point.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves the config, runs the
//     constructors in order over one growing vertex space, assembles the
//     matrix.
//   - Factories live in impl_*.go.
//   - Determinism: same inputs, options, seed and constructor order ⇒
//     identical matrices.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
)

// Constructor appends one topology to the edge list. Constructors validate
// their parameters and return sentinel errors; they never panic.
type Constructor func(el *edgeList, cfg builderConfig) error

// Build resolves bopts, applies cons in order and returns the n×n adjacency
// matrix of the union, n being the total vertex count.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors, wrapped with "Build".
//
// Complexity: Σ constructor cost + O(nnz log nnz) assembly.
func Build[T semiring.Number](bopts []BuilderOption, cons ...Constructor) (*sparse.Matrix[T], error) {
	cfg := newBuilderConfig(bopts...)
	el := &edgeList{}
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "Build: nil constructor at index %d", i)
		}
		if err := fn(el, cfg); err != nil {
			return nil, errors.Wrap(err, "Build")
		}
	}

	vals := make([]T, len(el.w))
	for k, w := range el.w {
		vals[k] = T(w)
	}
	keepFirst := func(a, _ T) T { return a }
	m, err := sparse.FromTriplets(el.n, el.n, el.src, el.dst, vals, keepFirst, sparse.WithFormat(cfg.format))
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "Build"), ErrConstructFailed)
	}

	return m, nil
}

// edgeList accumulates edges over a vertex space that constructors extend.
type edgeList struct {
	n        int // vertices so far
	src, dst []int
	w        []float64
}

// addVertices reserves k new vertices and returns the first one.
func (el *edgeList) addVertices(k int) int {
	base := el.n
	el.n += k

	return base
}

// addEdge stores u→v, and v→u as well unless cfg is directed. The weight is
// drawn once per call.
func (el *edgeList) addEdge(cfg builderConfig, u, v int) {
	w := cfg.weightFn(cfg.rng)
	el.src, el.dst, el.w = append(el.src, u), append(el.dst, v), append(el.w, w)
	if !cfg.directed && u != v {
		el.src, el.dst, el.w = append(el.src, v), append(el.dst, u), append(el.w, w)
	}
}
