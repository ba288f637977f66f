// SPDX-License-Identifier: MIT

// Package spgemm: functional configuration.
// This file defines:
//   - Method (accumulator selection) and Tuning (planner constants),
//   - documented defaults (single source of truth),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which applies defaults then user options.

package spgemm

import (
	"math"
	"runtime"

	"github.com/katalvlaran/lvsparse/metrics"
)

// Method selects the accumulator kind for every task.
type Method uint8

const (
	// MethodAuto picks per task: dense (Gustavson) for heavy columns, hash
	// otherwise.
	MethodAuto Method = iota
	// MethodGustavson forces dense accumulators.
	MethodGustavson
	// MethodHash forces hash accumulators unless the table would not be
	// smaller than the row dimension.
	MethodHash

	methodCount
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodGustavson:
		return "gustavson"
	case MethodHash:
		return "hash"
	default:
		return "unknown"
	}
}

// Tuning holds the planner's empirically chosen constants. None of them
// affects the result, only how the work is split and accumulated.
type Tuning struct {
	// MaskDiscardFactor: a non-complemented mask is ignored during the
	// multiply (and applied afterwards) when scanning it would cost more
	// than MaskDiscardFactor × estimated flops.
	MaskDiscardFactor float64
	// MaskLogFactor is c in the mask-guided estimate mjnz·(1 + c·log2(aknz)).
	MaskLogFactor float64
	// TasksPerThread sets the initial coarse-task count per worker.
	TasksPerThread int
	// CostlyFactor: a column costing more than CostlyFactor × target task
	// size is split into a fine team.
	CostlyFactor float64
	// VeryCostlyFactor: a coarse group is only inspected for costly columns
	// when it costs more than VeryCostlyFactor × target task size.
	VeryCostlyFactor float64
	// FineWork divides the target task size into the target fine-task size.
	FineWork float64
	// Chunk is the flop count worth one worker.
	Chunk float64
	// DenseScanDivisor: a coarse Gustavson column holding more than
	// rows/DenseScanDivisor entries is emitted by scanning the accumulator
	// (sorted for free) instead of in discovery order.
	DenseScanDivisor int
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMethod lets the planner choose accumulators.
	DefaultMethod = MethodAuto
	// DefaultSortedOutput returns sorted columns (jumbled == false).
	DefaultSortedOutput = true
	// DefaultWorkspaceLimit of 0 means unlimited.
	DefaultWorkspaceLimit int64 = 0
	// DefaultVerbose keeps the engine silent.
	DefaultVerbose = false

	DefaultMaskDiscardFactor = 2.0
	DefaultMaskLogFactor     = 4.0
	DefaultTasksPerThread    = 2
	DefaultCostlyFactor      = 1.2
	DefaultVeryCostlyFactor  = 2 * DefaultCostlyFactor
	DefaultFineWork          = 2.0
	DefaultChunk             = 64 * 1024
	DefaultDenseScanDivisor  = 16
)

// DefaultTuning returns the documented planner constants.
func DefaultTuning() Tuning {
	return Tuning{
		MaskDiscardFactor: DefaultMaskDiscardFactor,
		MaskLogFactor:     DefaultMaskLogFactor,
		TasksPerThread:    DefaultTasksPerThread,
		CostlyFactor:      DefaultCostlyFactor,
		VeryCostlyFactor:  DefaultVeryCostlyFactor,
		FineWork:          DefaultFineWork,
		Chunk:             DefaultChunk,
		DenseScanDivisor:  DefaultDenseScanDivisor,
	}
}

// Valid reports whether every constant is usable.
func (t Tuning) Valid() bool {
	pos := func(f float64) bool { return f > 0 && !math.IsNaN(f) }
	return t.MaskDiscardFactor >= 0 && !math.IsNaN(t.MaskDiscardFactor) &&
		t.MaskLogFactor >= 0 && !math.IsNaN(t.MaskLogFactor) &&
		t.TasksPerThread >= 1 &&
		pos(t.CostlyFactor) && pos(t.VeryCostlyFactor) && pos(t.FineWork) && pos(t.Chunk) &&
		!math.IsInf(t.Chunk, 0) &&
		t.DenseScanDivisor >= 1
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMethodInvalid  = "spgemm: WithMethod: unknown method"
	panicThreadsInvalid = "spgemm: WithThreads: n must be >= 1"
	panicTuningInvalid  = "spgemm: WithTuning: invalid constants"
	panicLimitNegative  = "spgemm: WithWorkspaceLimit: bytes must be >= 0"
	panicStatsNil       = "spgemm: WithStats: nil destination"
)

// Option mutates engine options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective engine configuration.
type Options struct {
	method  Method          // DefaultMethod
	sorted  bool            // DefaultSortedOutput
	threads int             // runtime.GOMAXPROCS(0)
	tuning  Tuning          // DefaultTuning()
	limit   int64           // DefaultWorkspaceLimit
	verbose bool            // DefaultVerbose
	metrics metrics.Backend // nil: metrics.Default()
	stats   *Stats          // nil: not reported
}

// WithMethod selects the accumulator kind. Panics on an unknown method.
func WithMethod(m Method) Option {
	if m >= methodCount {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// WithSortedOutput asks for strictly increasing rows in every column.
func WithSortedOutput() Option {
	return func(o *Options) { o.sorted = true }
}

// WithJumbledOutput allows hash-accumulated columns to stay unsorted; the
// result reports Jumbled() and can be sorted later with Wait.
func WithJumbledOutput() Option {
	return func(o *Options) { o.sorted = false }
}

// WithThreads caps the number of workers. Panics if n < 1.
func WithThreads(n int) Option {
	if n < 1 {
		panic(panicThreadsInvalid)
	}

	return func(o *Options) { o.threads = n }
}

// WithTuning replaces the planner constants. Panics if t is not Valid.
func WithTuning(t Tuning) Option {
	if !t.Valid() {
		panic(panicTuningInvalid)
	}

	return func(o *Options) { o.tuning = t }
}

// WithWorkspaceLimit bounds the bytes the call may allocate for workspace
// and output (0 = unlimited). Exceeding it fails with ErrOutOfMemory.
func WithWorkspaceLimit(bytes int64) Option {
	if bytes < 0 {
		panic(panicLimitNegative)
	}

	return func(o *Options) { o.limit = bytes }
}

// WithVerbose logs the task plan and phase timings at debug level.
func WithVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

// WithMetrics sends this call's metrics to b instead of metrics.Default().
func WithMetrics(b metrics.Backend) Option {
	return func(o *Options) { o.metrics = b }
}

// WithStats fills *s with planner and execution statistics.
func WithStats(s *Stats) Option {
	if s == nil {
		panic(panicStatsNil)
	}

	return func(o *Options) { o.stats = s }
}

func defaultOptions() Options {
	return Options{
		method:  DefaultMethod,
		sorted:  DefaultSortedOutput,
		threads: runtime.GOMAXPROCS(0),
		tuning:  DefaultTuning(),
		limit:   DefaultWorkspaceLimit,
		verbose: DefaultVerbose,
	}
}

func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
