// SPDX-License-Identifier: MIT

// Package builder: functional options.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//     Constructors and Build never panic.
//   - Seeding is explicit: WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvsparse/sparse"
)

// BuilderOption customizes a builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors and weight
// functions. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithDirected stores each edge in its documented direction only.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithLoops lets RandomSparse draw self-loops.
func WithLoops() BuilderOption {
	return func(c *builderConfig) { c.loops = true }
}

// WithFormat selects the storage format of the built matrix. Panics on an
// unknown format. FormatFull needs every cell present; otherwise Build
// fails with sparse.ErrInvalidStructure.
func WithFormat(f sparse.Format) BuilderOption {
	if !f.Valid() {
		panic("builder: WithFormat: unknown format")
	}

	return func(c *builderConfig) { c.format = f }
}
