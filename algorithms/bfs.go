// SPDX-License-Identifier: MIT

// Package algorithms: breadth-first search as repeated masked products.
//
// Steps:
//  1. Transpose the pattern of A once: at(v,u) = 1 for each edge u→v.
//  2. Loop while the frontier is non-empty:
//     2.1 Check the context, invoke OnLevel.
//     2.2 next<!visited> = at·q (any_pair, or any_second with q(u) = u).
//     2.3 Record levels (and parents), append next to visited.
//
// Time: one masked product per level; each costs O(Σ out-degree(frontier))
// plus mask consultation. Memory: O(V + E).

package algorithms

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/semiring"
	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/katalvlaran/lvsparse/spgemm"
)

// BFSLevels returns the hop distance from src to every vertex of the graph
// whose adjacency matrix is a; unreachable vertices get -1. Edge values are
// ignored.
func BFSLevels[T any](a *sparse.Matrix[T], src int, opts ...Option) (BFSResult, error) {
	return bfs("BFSLevels", a, src, false, gatherOptions(opts...))
}

// BFSParents is BFSLevels that also records one BFS-tree parent per reached
// vertex. When several frontier vertices reach v, any of them may be chosen.
func BFSParents[T any](a *sparse.Matrix[T], src int, opts ...Option) (BFSResult, error) {
	return bfs("BFSParents", a, src, true, gatherOptions(opts...))
}

func bfs[T any](method string, a *sparse.Matrix[T], src int, parents bool, o Options) (BFSResult, error) {
	n, err := checkGraph(method, a, src, true)
	if err != nil {
		return BFSResult{}, err
	}

	at := sparse.Cast(a, func(T) int64 { return 1 }).Transpose()
	res := BFSResult{Level: filled(n, -1), Order: []int{src}}
	res.Level[src] = 0
	if parents {
		res.Parent = filled(n, -1)
		res.Parent[src] = src
	}
	sr := semiring.AnyPair[int64]()
	if parents {
		sr = semiring.AnySecond[int64]()
	}

	frontier := []int{src}
	visited := []int{src}
	for level := 0; len(frontier) > 0; level++ {
		if err := o.ctx.Err(); err != nil {
			return res, errors.Wrapf(err, "%s: level %d", method, level)
		}
		if o.onLevel != nil {
			if err := o.onLevel(level, frontier); err != nil {
				return res, errors.Wrapf(err, "%s: hook at level %d", method, level)
			}
		}

		q, err := vector(n, frontier, func(v int) int64 { return int64(v) })
		if err != nil {
			return res, errors.Wrap(err, method)
		}
		seen, err := vector[int64](n, visited, nil)
		if err != nil {
			return res, errors.Wrap(err, method)
		}
		next, err := spgemm.Mxm(spgemm.StructuralMask(seen).Complement(), at, q, sr, o.mxm...)
		if err != nil {
			return res, errors.Wrapf(err, "%s: level %d", method, level+1)
		}

		grown := make([]int, 0, next.Nvals())
		next.ForEach(func(v, _ int, u int64) {
			res.Level[v] = level + 1
			if parents {
				res.Parent[v] = int(u)
			}
			grown = append(grown, v)
		})
		sort.Ints(grown)
		res.Order = append(res.Order, grown...)
		visited = append(visited, grown...)
		frontier = grown
	}

	return res, nil
}
