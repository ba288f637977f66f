// SPDX-License-Identifier: MIT

// Package algorithms: sentinels, options and results.

package algorithms

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvsparse/spgemm"
)

var (
	// ErrNotSquare indicates an adjacency matrix that is not n×n.
	ErrNotSquare = errors.New("algorithms: adjacency matrix must be square")

	// ErrSourceOutOfRange indicates a source vertex outside [0,n).
	ErrSourceOutOfRange = errors.New("algorithms: source vertex out of range")

	// ErrNegativeCycle indicates a negative cycle reachable from the source.
	ErrNegativeCycle = errors.New("algorithms: negative cycle reachable from source")
)

// LevelFunc observes a frontier before it is expanded. Level 0 is the
// source alone. A non-nil error aborts the run.
type LevelFunc func(level int, frontier []int) error

// Options configures every algorithm in the package.
type Options struct {
	ctx     context.Context
	onLevel LevelFunc
	mxm     []spgemm.Option
}

// Option represents a functional option.
type Option func(*Options)

// WithContext allows cancellation between products. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("algorithms: WithContext(nil)")
	}

	return func(o *Options) { o.ctx = ctx }
}

// WithOnLevel installs a hook called once per frontier (BFS levels,
// SSSP relaxation rounds).
func WithOnLevel(fn LevelFunc) Option {
	return func(o *Options) { o.onLevel = fn }
}

// WithMxmOptions forwards options to every spgemm.Mxm call.
func WithMxmOptions(opts ...spgemm.Option) Option {
	return func(o *Options) { o.mxm = append(o.mxm, opts...) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{ctx: context.Background()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// BFSResult holds a breadth-first traversal.
type BFSResult struct {
	// Level[v] is the hop distance from the source, -1 if unreachable.
	Level []int
	// Parent[v] is v's predecessor in the BFS tree; the source is its own
	// parent and unreachable vertices hold -1. Filled by BFSParents only.
	Parent []int
	// Order lists reached vertices by level, ascending within a level.
	Order []int
}

// Paths holds single-source shortest paths.
type Paths[T any] struct {
	// Dist[v] is the shortest distance to v; meaningful only if Reached[v].
	Dist []T
	// Reached[v] reports whether v is reachable from the source.
	Reached []bool
	// Rounds is the number of relaxation rounds performed.
	Rounds int
}
