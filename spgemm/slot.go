// SPDX-License-Identifier: MIT

// Package spgemm: accumulator slot protocol for fine teams.
//
// Slot states (monotonic; a lock always restores a logical state):
//
//	empty(0) ──► maskOnly(1) ──► computed(2)
//	   └──────────────────────────► computed(2)
//	any state ◄──► locked(3) for exactly one element update
//
// Gustavson slots are one int32 per row. Hash slots are one uint64 word:
//
//	bits 63..2  row+1 (0 means the slot is free)
//	bits  1..0  state
//
// Atomic path (monoid has Atomic): a computed slot is combined with the
// atomic operator, without locking. Anything else locks the slot, writes or
// combines plainly, then publishes computed with an atomic store.
// Critical-section path (no Atomic): every update locks.
//
// A worker holds at most one locked slot and never while probing, so the
// protocol cannot deadlock.

package spgemm

import (
	"runtime"
	"sync/atomic"
)

const (
	slotEmpty    = 0
	slotMaskOnly = 1
	slotComputed = 2
	slotLocked   = 3

	slotStateMask = 3
)

// goldenRatio64 is 2^64/φ, the multiplier of Fibonacci hashing.
const goldenRatio64 = 0x9E3779B97F4A7C15

// hashSlot maps row i to its home slot in a table of 1<<bits slots.
func hashSlot(i int, bits uint) int {
	return int((uint64(i) * goldenRatio64) >> (64 - bits))
}

// hashKey encodes row i in the high bits of a slot word.
func hashKey(i int) uint64 { return uint64(i+1) << 2 }

// hashRow decodes the row of an occupied slot word.
func hashRow(w uint64) int { return int(w>>2) - 1 }

// backoff yields the processor every 64 failed attempts.
func backoff(n *int) {
	*n++
	if *n&63 == 0 {
		runtime.Gosched()
	}
}

// lockRow spins until it owns a Gustavson slot and returns the state it
// replaced.
func lockRow(f *int32) int32 {
	n := 0
	for {
		if st := atomic.SwapInt32(f, slotLocked); st != slotLocked {
			return st
		}
		backoff(&n)
	}
}

// scatterHashMask inserts mask row i as maskOnly. Team members scatter
// concurrently; rows are distinct so the first free slot always wins.
func scatterHashMask(hf []uint64, i int, bits uint) {
	hmask := len(hf) - 1
	key := hashKey(i) | slotMaskOnly
	for h := hashSlot(i, bits); ; h = (h + 1) & hmask {
		if atomic.CompareAndSwapUint64(&hf[h], 0, key) {
			return
		}
	}
}

// combine folds t into *x under the caller's slot lock. A computed slot may
// meanwhile receive atomic combines from workers that saw it computed, so
// the atomic path must stay atomic here too.
func (e *engine[T]) combine(x *T, t T) {
	if e.atomic != nil {
		e.atomic(x, t)
		return
	}
	*x = e.add.Op(*x, t)
}

// gustavsonUpdate folds A(i,k)*B(k,j) into a team's dense accumulator.
// It reports whether a term was combined.
func (e *engine[T]) gustavsonUpdate(acc *teamAcc[T], i, pA int, bkj T) bool {
	f := &acc.gf[i]
	st := atomic.LoadInt32(f)
	switch {
	case e.mode == maskScatterM && st == slotEmpty:
		return false // not in M(:,j)
	case e.mode == maskScatterNotM && st == slotMaskOnly:
		return false // in M(:,j), forbidden by !M
	case st == slotComputed && e.skipComputed:
		return false
	}

	var t T
	if e.valued {
		t = e.term(pA, bkj)
		if st == slotComputed && e.atomic != nil {
			e.atomic(&acc.hx[i], t)
			return true
		}
	}

	prev := lockRow(f)
	switch prev {
	case slotComputed:
		if e.skipComputed {
			atomic.StoreInt32(f, slotComputed)
			return false
		}
		e.combine(&acc.hx[i], t)
	default:
		if e.valued {
			acc.hx[i] = t
		}
	}
	atomic.StoreInt32(f, slotComputed)

	return true
}

// hashUpdate folds A(i,k)*B(k,j) into a team's hash accumulator.
// It reports whether a term was combined.
func (e *engine[T]) hashUpdate(acc *teamAcc[T], bits uint, i, pA int, bkj T) bool {
	hmask := len(acc.hf) - 1
	key := hashKey(i)
	var (
		t     T
		ready bool
		spins int
	)
	get := func() T {
		if !ready && e.valued {
			t, ready = e.term(pA, bkj), true
		}
		return t
	}

	for h := hashSlot(i, bits); ; h = (h + 1) & hmask {
		f := &acc.hf[h]
		for {
			w := atomic.LoadUint64(f)
			if w == 0 {
				if e.mode == maskScatterM {
					return false // probe ended: i is not in M(:,j)
				}
				v := get()
				if atomic.CompareAndSwapUint64(f, 0, key|slotLocked) {
					if e.valued {
						acc.hx[h] = v
					}
					atomic.StoreUint64(f, key|slotComputed)
					return true
				}
				continue
			}
			if w&^slotStateMask != key {
				break // another row: next slot
			}

			switch w & slotStateMask {
			case slotLocked:
				backoff(&spins)
				continue
			case slotMaskOnly:
				if e.mode == maskScatterNotM {
					return false
				}
				v := get()
				if atomic.CompareAndSwapUint64(f, w, key|slotLocked) {
					if e.valued {
						acc.hx[h] = v
					}
					atomic.StoreUint64(f, key|slotComputed)
					return true
				}
				continue
			default: // computed
				if e.skipComputed {
					return false
				}
				v := get()
				if e.atomic != nil {
					e.atomic(&acc.hx[h], v)
					return true
				}
				if atomic.CompareAndSwapUint64(f, w, key|slotLocked) {
					acc.hx[h] = e.add.Op(acc.hx[h], v)
					atomic.StoreUint64(f, key|slotComputed)
					return true
				}
				continue
			}
		}
	}
}
