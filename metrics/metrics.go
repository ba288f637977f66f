// SPDX-License-Identifier: MIT

// Package metrics is a small, backend-agnostic sink for engine
// instrumentation.
//
//   - Backend is a narrow interface: counters and histogram observations.
//   - The process-wide default is a no-op, so recording is always safe.
//   - Concrete systems live in subpackages (metrics/prom) and are installed
//     with SetBackend, or per call through spgemm.WithMetrics.
package metrics

import (
	"sync/atomic"
	"time"
)

// Metric names emitted by RecordMultiply.
const (
	MultiplyTotal   = "lvsparse_multiply_total"
	MultiplySeconds = "lvsparse_multiply_duration_seconds"
	MultiplyFlops   = "lvsparse_multiply_flops_total"
	MultiplyEntries = "lvsparse_multiply_entries_total"
	MultiplyTasks   = "lvsparse_multiply_tasks_total"
	MultiplyEvents  = "lvsparse_multiply_events_total"
)

// Label keys.
const (
	LabelSemiring = "semiring"
	LabelStatus   = "status"
	LabelKind     = "kind"
)

// Label values.
const (
	StatusOK            = "ok"
	StatusNotApplicable = "not_applicable"
	StatusFailure       = "failure"
	KindCoarse          = "coarse"
	KindFine            = "fine"
	EventMaskDiscarded  = "mask_discarded"
	EventDenseFallback  = "dense_fallback"
)

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metric systems.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a duration-style value.
	ObserveHistogram(name string, value float64, labels Labels)
}

type nopBackend struct{}

func (nopBackend) IncCounter(string, float64, Labels)       {}
func (nopBackend) ObserveHistogram(string, float64, Labels) {}

// Nop returns the no-op backend.
func Nop() Backend { return nopBackend{} }

type holder struct{ b Backend }

var backend atomic.Pointer[holder]

func init() { backend.Store(&holder{b: nopBackend{}}) }

// SetBackend installs b as the process-wide default. nil restores the no-op.
func SetBackend(b Backend) {
	if b == nil {
		b = nopBackend{}
	}
	backend.Store(&holder{b: b})
}

// Default returns the process-wide backend.
func Default() Backend { return backend.Load().b }

// Multiply summarizes one product call.
type Multiply struct {
	Semiring      string
	Err           error
	NotApplicable bool // fell back to another algorithm
	DenseFallback bool
	MaskDiscarded bool
	CoarseTasks   int
	FineTasks     int
	Flops         int64 // estimated multiply terms
	Entries       int   // nvals of the result
	Duration      time.Duration
}

// RecordMultiply reports m to b (the default backend when b is nil).
func RecordMultiply(b Backend, m Multiply) {
	if b == nil {
		b = Default()
	}
	status := StatusOK
	switch {
	case m.NotApplicable:
		status = StatusNotApplicable
	case m.Err != nil:
		status = StatusFailure
	}
	lbls := Labels{LabelSemiring: m.Semiring, LabelStatus: status}
	b.IncCounter(MultiplyTotal, 1, lbls)
	b.ObserveHistogram(MultiplySeconds, m.Duration.Seconds(), lbls)
	if m.Err != nil || m.NotApplicable {
		return
	}

	sr := Labels{LabelSemiring: m.Semiring}
	b.IncCounter(MultiplyFlops, float64(m.Flops), sr)
	b.IncCounter(MultiplyEntries, float64(m.Entries), sr)
	for kind, n := range map[string]int{KindCoarse: m.CoarseTasks, KindFine: m.FineTasks} {
		if n > 0 {
			b.IncCounter(MultiplyTasks, float64(n), Labels{LabelSemiring: m.Semiring, LabelKind: kind})
		}
	}
	if m.MaskDiscarded {
		b.IncCounter(MultiplyEvents, 1, Labels{LabelSemiring: m.Semiring, LabelKind: EventMaskDiscarded})
	}
	if m.DenseFallback {
		b.IncCounter(MultiplyEvents, 1, Labels{LabelSemiring: m.Semiring, LabelKind: EventDenseFallback})
	}
}
