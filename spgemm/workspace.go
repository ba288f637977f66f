// SPDX-License-Identifier: MIT

// Package spgemm: call-scoped workspace.
//
// Every buffer a call needs (column pointers, accumulators, output arrays)
// is reserved from one arena whose lifetime is the call. With a limit set,
// the first reservation that would cross it fails with ErrOutOfMemory and
// the call returns without a matrix; nothing is pooled across calls.

package spgemm

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/cpu"
)

// arena accounts for the bytes one call allocates.
type arena struct {
	limit int64 // 0: unlimited
	used  int64
}

// reserve books n bytes for what.
func (ar *arena) reserve(n int64, what string) error {
	if ar.limit > 0 && ar.used+n > ar.limit {
		return errors.Wrapf(ErrOutOfMemory, "%s: %d bytes requested, %d of %d in use", what, n, ar.used, ar.limit)
	}
	ar.used += n

	return nil
}

// alloc returns a zeroed slice of n elements reserved from ar.
func alloc[E any](ar *arena, n int, what string) ([]E, error) {
	var e E
	if err := ar.reserve(int64(n)*int64(unsafe.Sizeof(e)), what); err != nil {
		return nil, err
	}

	return make([]E, n), nil
}

// teamAcc is the accumulator a fine team shares; only the slot protocol
// touches it while the team computes.
type teamAcc[T any] struct {
	gf []int32  // Gustavson: slot state by row
	hf []uint64 // hash: (row+1)<<2 | state by slot
	hx []T      // values by row (Gustavson) or slot (hash)
}

// taskWork is one task's private state. Entries of the []taskWork slice are
// written concurrently by different workers, hence the padding.
type taskWork[T any] struct {
	// coarse accumulators
	hf   []int64 // marks by row (Gustavson) or slot (hash)
	hi   []int   // hash: row held by slot
	hp   []int   // hash: output position of slot
	hx   []T     // Gustavson: values by row
	mark int64

	team  *teamAcc[T] // fine: shared with the team
	count int         // fine: entries this task owns
	pC    int         // fine: first output position
	terms int64

	_ cpu.CacheLinePad
}

// newWorkspace reserves the accumulators of every task.
func newWorkspace[T any](ar *arena, tasks []Task, vlen int, valued bool) ([]taskWork[T], error) {
	if err := ar.reserve(int64(len(tasks))*int64(unsafe.Sizeof(taskWork[T]{})), "task headers"); err != nil {
		return nil, err
	}
	ws := make([]taskWork[T], len(tasks))
	var err error
	for id := range tasks {
		t := &tasks[id]
		w := &ws[id]
		n := vlen
		if !t.Gustavson() {
			n = t.HashSize
		}

		if t.Kind == TaskFine {
			if id != t.Leader {
				w.team = ws[t.Leader].team
				continue
			}
			acc := &teamAcc[T]{}
			if t.Gustavson() {
				acc.gf, err = alloc[int32](ar, n, "fine gustavson states")
			} else {
				acc.hf, err = alloc[uint64](ar, n, "fine hash slots")
			}
			if err == nil && valued {
				acc.hx, err = alloc[T](ar, n, "fine values")
			}
			if err != nil {
				return nil, err
			}
			w.team = acc
			continue
		}

		if w.hf, err = alloc[int64](ar, n, "coarse marks"); err != nil {
			return nil, err
		}
		if t.Gustavson() {
			if valued {
				if w.hx, err = alloc[T](ar, n, "coarse values"); err != nil {
					return nil, err
				}
			}
			continue
		}
		if w.hi, err = alloc[int](ar, n, "coarse hash rows"); err != nil {
			return nil, err
		}
		if w.hp, err = alloc[int](ar, n, "coarse hash positions"); err != nil {
			return nil, err
		}
	}

	return ws, nil
}
