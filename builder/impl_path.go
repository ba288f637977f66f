// SPDX-License-Identifier: MIT

// Package builder: chains and hubs.
//
// Edge emission order (directed direction in brackets):
//   - Path(n):  i→i+1 for i asc.
//   - Cycle(n): Path(n) then n-1→0.
//   - Star(n):  center (first vertex) → leaf, leaves asc.
//   - Wheel(n): Star(n) then the rim cycle over the leaves.

package builder

import (
	"github.com/cockroachdb/errors"
)

const (
	methodPath  = "Path"
	methodCycle = "Cycle"
	methodStar  = "Star"
	methodWheel = "Wheel"

	minPathVertices  = 2
	minCycleVertices = 3
	minStarVertices  = 2
	minWheelVertices = 4
)

// tooFew wraps ErrTooFewVertices with the method and its minimum.
func tooFew(method string, n, min int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: n=%d < min=%d", method, n, min)
}

// Path builds the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < minPathVertices {
			return tooFew(methodPath, n, minPathVertices)
		}
		base := el.addVertices(n)
		for i := 0; i < n-1; i++ {
			el.addEdge(cfg, base+i, base+i+1)
		}
		return nil
	}
}

// Cycle builds the simple cycle C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < minCycleVertices {
			return tooFew(methodCycle, n, minCycleVertices)
		}
		base := el.addVertices(n)
		for i := 0; i < n; i++ {
			el.addEdge(cfg, base+i, base+(i+1)%n)
		}
		return nil
	}
}

// Star builds a star whose center is its first vertex, with n-1 leaves
// (n ≥ 2).
func Star(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < minStarVertices {
			return tooFew(methodStar, n, minStarVertices)
		}
		base := el.addVertices(n)
		for leaf := 1; leaf < n; leaf++ {
			el.addEdge(cfg, base, base+leaf)
		}
		return nil
	}
}

// Wheel builds W_n: a star plus a cycle through its n-1 leaves (n ≥ 4).
func Wheel(n int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if n < minWheelVertices {
			return tooFew(methodWheel, n, minWheelVertices)
		}
		base := el.addVertices(n)
		for leaf := 1; leaf < n; leaf++ {
			el.addEdge(cfg, base, base+leaf)
		}
		rim := n - 1
		for k := 0; k < rim; k++ {
			el.addEdge(cfg, base+1+k, base+1+(k+1)%rim)
		}
		return nil
	}
}
