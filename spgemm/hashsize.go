// SPDX-License-Identifier: MIT

package spgemm

import "math/bits"

// hashDenseDivisor: in MethodAuto a hash table is only worth it when it is
// under 1/hashDenseDivisor of the row dimension.
const hashDenseDivisor = 12

// SelectHashSize chooses the accumulator for a task whose heaviest column
// is estimated at peak entries, in an output with vlen rows.
//
// Rule:
//   - MethodGustavson, or peak ≥ vlen/2: dense.
//   - otherwise hsize = 2 × (next power of two ≥ peak);
//   - MethodHash keeps it unless hsize ≥ vlen (then dense);
//   - MethodAuto falls back to dense when hsize ≥ vlen/12.
//
// The MethodAuto test is exact, computed as 12·hsize ≥ vlen with no
// rounding of vlen/12: vlen 25 keeps a table of 2, vlen 24 does not.
//
// A dense result reports hsize == vlen.
func SelectHashSize(peak int64, vlen int, method Method) (hsize int, dense bool) {
	if peak < 0 {
		peak = 0
	}
	if method == MethodGustavson || 2*peak >= int64(vlen) {
		return vlen, true
	}
	hsize = 2 * nextPow2(int(peak))
	switch method {
	case MethodHash:
		if hsize >= vlen {
			return vlen, true
		}
	default:
		if hashDenseDivisor*hsize >= vlen {
			return vlen, true
		}
	}

	return hsize, false
}

// nextPow2 returns the smallest power of two ≥ n (1 for n ≤ 1).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// hashBits returns log2(hsize) for a power-of-two table size.
func hashBits(hsize int) uint {
	return uint(bits.TrailingZeros(uint(hsize)))
}
