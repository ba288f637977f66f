// SPDX-License-Identifier: MIT

// Package invariants exposes a single build-time switch for expensive
// precondition checks.
//
// Production builds compile the checks away (Enabled is a constant false, so
// `if invariants.Enabled { ... }` blocks are dead code). Build with
// `-tags invariants` or `-race` to turn them on:
//
//	go test -tags invariants ./...
//
// Checks are written as
//
//	if invariants.Enabled && len(cp) != nvec+1 {
//		panic(errors.AssertionFailedf("cp has %d entries, want %d", len(cp), nvec+1))
//	}
package invariants
