// SPDX-License-Identifier: MIT

// Package algorithms: single-source shortest paths (Bellman-Ford).
//
// Each round relaxes the edges leaving the vertices whose distance changed
// in the previous round: t = Aᵀ·d over min_plus, d restricted to that
// frontier. After round r every distance equals the best walk of at most r
// edges, so a change in round n (n = |V|) proves a negative cycle.
//
// Time: at most n rounds, each one product over the frontier's out-edges.
// Memory: O(V + E).

package algorithms

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/spgemm"
)

// SSSP computes shortest distances from src over the weights stored in a.
// A valueless a weighs every edge 1. Negative weights are allowed; a
// negative cycle reachable from src yields ErrNegativeCycle.
func SSSP[T semiring.Number](a *sparse.Matrix[T], src int, opts ...Option) (Paths[T], error) {
	const method = "SSSP"
	n, err := checkGraph(method, a, src, true)
	if err != nil {
		return Paths[T]{}, err
	}
	o := gatherOptions(opts...)

	if !a.HasValues() {
		a = sparse.Cast(a, func(T) T { return 1 })
	}
	at := a.Transpose()
	sr := semiring.MinPlus[T]()

	p := Paths[T]{Dist: make([]T, n), Reached: make([]bool, n)}
	p.Reached[src] = true
	frontier := []int{src}
	for round := 1; len(frontier) > 0; round++ {
		if round > n {
			return p, errors.Wrapf(ErrNegativeCycle, "%s: source %d, still relaxing after %d rounds", method, src, n)
		}
		if err := o.ctx.Err(); err != nil {
			return p, errors.Wrapf(err, "%s: round %d", method, round)
		}
		if o.onLevel != nil {
			if err := o.onLevel(round-1, frontier); err != nil {
				return p, errors.Wrapf(err, "%s: hook at round %d", method, round)
			}
		}

		d, err := vector(n, frontier, func(v int) T { return p.Dist[v] })
		if err != nil {
			return p, errors.Wrap(err, method)
		}
		t, err := spgemm.Mxm(nil, at, d, sr, o.mxm...)
		if err != nil {
			return p, errors.Wrapf(err, "%s: round %d", method, round)
		}

		changed := make([]int, 0, t.Nvals())
		t.ForEach(func(v, _ int, dv T) {
			if !p.Reached[v] || dv < p.Dist[v] {
				p.Dist[v], p.Reached[v] = dv, true
				changed = append(changed, v)
			}
		})
		sort.Ints(changed)
		frontier = changed
		p.Rounds = round
	}

	return p, nil
}
