// SPDX-License-Identifier: MIT

package spgemm

import "fmt"

// TaskKind distinguishes exclusive column ranges from shared columns.
type TaskKind uint8

const (
	// TaskCoarse owns a range of whole output columns.
	TaskCoarse TaskKind = iota
	// TaskFine owns a slice of one column's B entries and shares the
	// column's accumulator with the rest of its team.
	TaskFine
)

// String implements fmt.Stringer.
func (k TaskKind) String() string {
	if k == TaskFine {
		return "fine"
	}
	return "coarse"
}

// Task is one unit of scheduled work.
//
// Coarse: stored vectors [Start, End) of B (and of C).
// Fine: vector Start (End == Start+1), B positions [PStart, PEnd) of that
// vector, tasks [Leader, Leader+TeamSize) share one accumulator.
type Task struct {
	Kind             TaskKind
	Start, End       int
	PStart, PEnd     int
	Leader, TeamSize int
	// HashSize is the hash table size, or 0 for a dense (Gustavson)
	// accumulator.
	HashSize int
	// Flops is the estimated cost of the task.
	Flops int64
}

// Gustavson reports whether the task uses a dense accumulator.
func (t Task) Gustavson() bool { return t.HashSize == 0 }

// Member returns the task's index inside its fine team (0 for coarse).
func (t Task) Member(id int) int {
	if t.Kind != TaskFine {
		return 0
	}
	return id - t.Leader
}

// String implements fmt.Stringer.
func (t Task) String() string {
	acc := "gustavson"
	if !t.Gustavson() {
		acc = fmt.Sprintf("hash/%d", t.HashSize)
	}
	if t.Kind == TaskFine {
		return fmt.Sprintf("fine vec=%d pos=[%d,%d) team=%d+%d %s flops=%d",
			t.Start, t.PStart, t.PEnd, t.Leader, t.TeamSize, acc, t.Flops)
	}

	return fmt.Sprintf("coarse vec=[%d,%d) %s flops=%d", t.Start, t.End, acc, t.Flops)
}
