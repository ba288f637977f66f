// SPDX-License-Identifier: MIT

//go:build invariants || race

package invariants

// Enabled is true when the binary was built with the "invariants" tag or with
// the race detector. Phase-entry checks in the engine panic with an assertion
// failure only when Enabled is set.
const Enabled = true
