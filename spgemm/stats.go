// SPDX-License-Identifier: MIT

package spgemm

import (
	"fmt"
	"time"
)

// Stats reports what one product call planned and did.
type Stats struct {
	Threads        int   // workers used by the numeric phases
	CoarseTasks    int   // tasks owning whole columns
	FineTasks      int   // tasks sharing a column with a team
	FineTeams      int   // columns split into fine teams
	GustavsonTasks int   // tasks with a dense accumulator
	HashTasks      int   // tasks with a hash accumulator
	EstimatedFlops int64 // cost estimate (upper bound of Terms)
	MaskWork       int64 // mask entries consulted by the estimate
	Terms          int64 // product terms combined into accumulators
	MaskDiscarded  bool  // mask applied after the multiply
	DenseFallback  bool  // Mxm multiplied with Reference
	Nvals          int   // entries in the result
	Jumbled        bool  // result left unsorted
	Workspace      int64 // bytes reserved from the arena
	Duration       time.Duration
}

// String implements fmt.Stringer.
func (s Stats) String() string {
	return fmt.Sprintf("threads=%d coarse=%d fine=%d teams=%d gustavson=%d hash=%d flops=%d mwork=%d terms=%d discard=%t fallback=%t nvals=%d jumbled=%t ws=%dB in %s",
		s.Threads, s.CoarseTasks, s.FineTasks, s.FineTeams, s.GustavsonTasks, s.HashTasks,
		s.EstimatedFlops, s.MaskWork, s.Terms, s.MaskDiscarded, s.DenseFallback, s.Nvals, s.Jumbled, s.Workspace, s.Duration)
}
