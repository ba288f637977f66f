// SPDX-License-Identifier: MIT

package spgemm

// Unexported helpers exposed to the external test package.
var (
	PSlice         = pslice
	NextPow2       = nextPow2
	CumsumParallel = cumsumParallel
	HashSlot       = hashSlot
	HashBits       = hashBits
)

// CumsumExclusive64 exposes the serial scan on int64.
func CumsumExclusive64(x []int64) { cumsumExclusive(x) }
