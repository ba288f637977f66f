// SPDX-License-Identifier: MIT

package semiring

import "golang.org/x/exp/constraints"

// Number is the set of element types the arithmetic built-ins accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// MaxValue returns the largest value of T: +Inf for floats, the type maximum
// for integers. It is the identity of Min and the terminal of Max.
//
// Implementation: doubling m -> 2m+1 until it stops growing; integers wrap,
// floats saturate at +Inf. Works for named types too.
func MaxValue[T Number]() T {
	m := T(1)
	for {
		next := m*2 + 1
		if !(next > m) {
			return m
		}
		m = next
	}
}

// MinValue returns the smallest value of T: -Inf for floats, the type minimum
// for signed integers, 0 for unsigned ones.
func MinValue[T Number]() T {
	var z T
	switch {
	case !(z-1 < z): // unsigned
		return z
	case isFloat[T]():
		return -MaxValue[T]()
	default:
		return -MaxValue[T]() - 1
	}
}

func isFloat[T Number]() bool {
	one := T(1)
	return one/2 != 0
}
