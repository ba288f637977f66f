// SPDX-License-Identifier: MIT

// Package builder: resolved configuration.
//
// Deterministic defaults:
//   - rng      = nil (no randomness unless seeded)
//   - weightFn = DefaultWeightFn
//   - directed = false
//   - loops    = false
//   - format   = sparse.FormatSparse

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvsparse/sparse"
)

// builderConfig aggregates all knobs used by constructors. It is passed by
// value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
	loops    bool // RandomSparse may draw i→i
	format   sparse.Format
}

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
		format:   sparse.FormatSparse,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
