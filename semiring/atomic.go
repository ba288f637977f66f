// SPDX-License-Identifier: MIT

// Package semiring: hardware-atomic combiners.
//
// Values are reinterpreted as uint32/uint64 words of the same width, so only
// pointer-free scalar types qualify. 8-byte atomics additionally require a
// 64-bit platform, where slice elements are naturally 8-byte aligned.

package semiring

import (
	"reflect"
	"sync/atomic"
	"unsafe"
)

// atomic64 is set on platforms where 8-byte slice elements are 8-byte aligned.
const atomic64 = unsafe.Sizeof(uintptr(0)) == 8

// atomicAdd returns a fetch-and-add for 4/8-byte integers (two's complement
// addition is width-, not sign-, dependent) and a CAS loop for floats.
func atomicAdd[T Number](op func(x, y T) T) func(addr *T, y T) {
	if isFloat[T]() {
		return casCombiner[T](op)
	}
	var z T
	switch unsafe.Sizeof(z) {
	case 4:
		return func(addr *T, y T) {
			atomic.AddUint32((*uint32)(unsafe.Pointer(addr)), *(*uint32)(unsafe.Pointer(&y)))
		}
	case 8:
		if !atomic64 {
			return nil
		}
		return func(addr *T, y T) {
			atomic.AddUint64((*uint64)(unsafe.Pointer(addr)), *(*uint64)(unsafe.Pointer(&y)))
		}
	}

	return nil
}

// casCombiner wraps op in a compare-and-swap loop over the value's bits.
// Returns nil when T has no atomic width.
func casCombiner[T any](op func(x, y T) T) func(addr *T, y T) {
	var z T
	if !scalarKind(z) {
		return nil
	}
	switch unsafe.Sizeof(z) {
	case 4:
		return func(addr *T, y T) {
			p := (*uint32)(unsafe.Pointer(addr))
			for {
				old := atomic.LoadUint32(p)
				v := op(*(*T)(unsafe.Pointer(&old)), y)
				if atomic.CompareAndSwapUint32(p, old, *(*uint32)(unsafe.Pointer(&v))) {
					return
				}
			}
		}
	case 8:
		if !atomic64 {
			return nil
		}
		return func(addr *T, y T) {
			p := (*uint64)(unsafe.Pointer(addr))
			for {
				old := atomic.LoadUint64(p)
				v := op(*(*T)(unsafe.Pointer(&old)), y)
				if atomic.CompareAndSwapUint64(p, old, *(*uint64)(unsafe.Pointer(&v))) {
					return
				}
			}
		}
	}

	return nil
}

// atomicStore returns an atomic overwrite for the "any" monoid.
func atomicStore[T any]() func(addr *T, y T) {
	var z T
	if !scalarKind(z) {
		return nil
	}
	switch unsafe.Sizeof(z) {
	case 4:
		return func(addr *T, y T) {
			atomic.StoreUint32((*uint32)(unsafe.Pointer(addr)), *(*uint32)(unsafe.Pointer(&y)))
		}
	case 8:
		if !atomic64 {
			return nil
		}
		return func(addr *T, y T) {
			atomic.StoreUint64((*uint64)(unsafe.Pointer(addr)), *(*uint64)(unsafe.Pointer(&y)))
		}
	}

	return nil
}

// scalarKind reports whether v's type is a pointer-free number.
func scalarKind(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}

	return false
}
