// SPDX-License-Identifier: MIT

// Package parallel runs statically scheduled work on a fixed set of worker
// goroutines.
//
// There is no work stealing: a Schedule assigns every task id to exactly one
// worker when it is built, and the same assignment is reused by every phase
// that runs over the same task list. Balance is the caller's job (cost-aware
// task sizing); this package only fans out and joins.
//
// Complexity quicksheet:
//   - Static: O(ntasks) to build the assignment.
//   - Run / For: one goroutine per worker plus the join; no channels on the hot path.
package parallel

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Schedule is a static, round-robin assignment of task ids [0, ntasks) to
// worker slots. Round-robin keeps the members of a cooperating group of
// consecutive tasks on different workers.
type Schedule struct {
	workers [][]int // workers[w] lists task ids in ascending order
	ntasks  int
}

// Static builds a Schedule for ntasks tasks over at most nworkers workers.
// nworkers is clamped to [1, max(ntasks,1)].
func Static(nworkers, ntasks int) Schedule {
	if ntasks < 0 {
		ntasks = 0
	}
	nworkers = Clamp(nworkers, ntasks)

	workers := make([][]int, nworkers)
	per := (ntasks + nworkers - 1) / nworkers
	for w := range workers {
		workers[w] = make([]int, 0, per)
	}
	for t := 0; t < ntasks; t++ {
		w := t % nworkers
		workers[w] = append(workers[w], t)
	}

	return Schedule{workers: workers, ntasks: ntasks}
}

// Workers reports how many workers the schedule uses.
func (s Schedule) Workers() int { return len(s.workers) }

// Tasks reports the number of scheduled tasks.
func (s Schedule) Tasks() int { return s.ntasks }

// Run invokes fn once for every task id, each on the worker it was assigned
// to, and blocks until all workers are done. The first non-nil error is
// returned; workers stop picking up their remaining tasks once any worker
// has failed.
func (s Schedule) Run(fn func(task int) error) error {
	if len(s.workers) == 1 {
		for _, t := range s.workers[0] {
			if err := fn(t); err != nil {
				return err
			}
		}
		return nil
	}

	var (
		g      errgroup.Group
		failed failFlag
	)
	for _, tasks := range s.workers {
		tasks := tasks
		g.Go(func() error {
			for _, t := range tasks {
				if failed.isSet() {
					return nil
				}
				if err := fn(t); err != nil {
					failed.set()
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// For splits [0, n) into at most nworkers contiguous ranges and calls fn on
// each range concurrently. It blocks until every range is processed.
func For(nworkers, n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	nworkers = Clamp(nworkers, n)
	if nworkers == 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	for w := 0; w < nworkers; w++ {
		start, end := Range(w, nworkers, n)
		if start >= end {
			continue
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait() // fn cannot fail
}

// Range returns the half-open slice [start, end) of [0, n) owned by part p
// out of nparts equal parts. Parts differ in size by at most one.
func Range(p, nparts, n int) (start, end int) {
	start = int(int64(p) * int64(n) / int64(nparts))
	end = int(int64(p+1) * int64(n) / int64(nparts))

	return start, end
}

// Clamp bounds a requested worker count to [1, max(n,1)]. With no work
// (n ≤ 0) the answer is a single worker.
func Clamp(nworkers, n int) int {
	if n < 1 || nworkers < 1 {
		return 1
	}
	if nworkers > n {
		nworkers = n
	}

	return nworkers
}

// Threads picks how many workers are worth waking for the given amount of
// work: one worker per chunk of work, at least one, at most maxThreads.
func Threads(work, chunk float64, maxThreads int) int {
	if maxThreads < 1 {
		maxThreads = 1
	}
	if chunk <= 0 {
		return maxThreads
	}
	n := math.Floor(work / chunk)
	if n < 1 {
		return 1
	}
	if n > float64(maxThreads) {
		return maxThreads
	}

	return int(n)
}
