// SPDX-License-Identifier: MIT

// Package prom adapts metrics.Backend to Prometheus client_golang
// collectors. All Prometheus-specific dependencies stay in this package.
//
// Collectors are registered on a caller-supplied Registerer; exposing them
// (scrape handler, Pushgateway) is the caller's business.
package prom

import (
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvsparse/metrics"
)

// Backend records engine metrics into Prometheus collectors.
type Backend struct {
	calls    *prometheus.CounterVec   // semiring, status
	duration *prometheus.HistogramVec // semiring, status
	flops    *prometheus.CounterVec   // semiring
	entries  *prometheus.CounterVec   // semiring
	tasks    *prometheus.CounterVec   // semiring, kind
	events   *prometheus.CounterVec   // semiring, kind
}

var _ metrics.Backend = (*Backend)(nil)

// New builds the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Backend, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	b := &Backend{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.MultiplyTotal,
			Help: "Sparse matrix products, partitioned by semiring and outcome.",
		}, []string{metrics.LabelSemiring, metrics.LabelStatus}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metrics.MultiplySeconds,
			Help:    "Wall time of sparse matrix products in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{metrics.LabelSemiring, metrics.LabelStatus}),
		flops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.MultiplyFlops,
			Help: "Estimated multiply terms evaluated.",
		}, []string{metrics.LabelSemiring}),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.MultiplyEntries,
			Help: "Entries produced in result matrices.",
		}, []string{metrics.LabelSemiring}),
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.MultiplyTasks,
			Help: "Scheduled tasks by kind (coarse, fine).",
		}, []string{metrics.LabelSemiring, metrics.LabelKind}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metrics.MultiplyEvents,
			Help: "Planner decisions (mask discarded, dense fallback).",
		}, []string{metrics.LabelSemiring, metrics.LabelKind}),
	}
	for _, c := range []prometheus.Collector{b.calls, b.duration, b.flops, b.entries, b.tasks, b.events} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "prom: register collector")
		}
	}

	return b, nil
}

// IncCounter implements metrics.Backend. Unknown names are ignored.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	sr := labels[metrics.LabelSemiring]
	switch name {
	case metrics.MultiplyTotal:
		b.calls.WithLabelValues(sr, labels[metrics.LabelStatus]).Add(delta)
	case metrics.MultiplyFlops:
		b.flops.WithLabelValues(sr).Add(delta)
	case metrics.MultiplyEntries:
		b.entries.WithLabelValues(sr).Add(delta)
	case metrics.MultiplyTasks:
		b.tasks.WithLabelValues(sr, labels[metrics.LabelKind]).Add(delta)
	case metrics.MultiplyEvents:
		b.events.WithLabelValues(sr, labels[metrics.LabelKind]).Add(delta)
	}
}

// ObserveHistogram implements metrics.Backend.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name != metrics.MultiplySeconds {
		return
	}
	b.duration.WithLabelValues(labels[metrics.LabelSemiring], labels[metrics.LabelStatus]).Observe(value)
}
