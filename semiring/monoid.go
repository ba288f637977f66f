// SPDX-License-Identifier: MIT

// Package semiring: additive monoids.
//
// A Monoid is a value type: copying it is cheap and safe. Built-ins attach
// an Atomic combiner when T's storage width has a hardware atomic form
// (4 or 8 bytes); everything else combines under the engine's per-slot
// critical section.

package semiring

import "github.com/cockroachdb/errors"

// Monoid is an associative, commutative combine operator with an identity.
type Monoid[T any] struct {
	// Name identifies the monoid in logs and metrics ("plus", "min", ...).
	Name string
	// Op combines two values. Must be associative and commutative.
	Op func(x, y T) T
	// Identity satisfies Op(Identity, x) == x.
	Identity T
	// Terminal reports whether v absorbs every further combine
	// (Op(v, y) == v). nil when the monoid has no terminal value.
	Terminal func(v T) bool
	// Atomic performs *addr = Op(*addr, y) atomically. nil selects the
	// critical-section path in concurrent accumulators.
	Atomic func(addr *T, y T)

	any bool
}

// NewMonoid builds a custom monoid without terminal value or atomic combiner.
func NewMonoid[T any](name string, op func(x, y T) T, identity T) (Monoid[T], error) {
	if op == nil {
		return Monoid[T]{}, errors.Wrapf(ErrNilOperator, "NewMonoid %q", name)
	}

	return Monoid[T]{Name: name, Op: op, Identity: identity}, nil
}

// IsTerminal reports whether v is the monoid's terminal value.
func (m Monoid[T]) IsTerminal(v T) bool {
	return m.Terminal != nil && m.Terminal(v)
}

// IsAny reports whether this is an "any" monoid: the first value written to
// a slot is kept and later combines may be skipped.
func (m Monoid[T]) IsAny() bool { return m.any }

// HasAtomic reports whether concurrent combines can use Atomic.
func (m Monoid[T]) HasAtomic() bool { return m.Atomic != nil }

// WithoutAtomic returns a copy of m that always uses the critical-section
// path. Useful for comparing both concurrency protocols on one input.
func (m Monoid[T]) WithoutAtomic() Monoid[T] {
	m.Atomic = nil
	return m
}

// Validate reports a monoid that cannot be used by the engine.
func (m Monoid[T]) Validate() error {
	if m.Op == nil {
		return errors.Wrapf(ErrNilOperator, "monoid %q", m.Name)
	}

	return nil
}

// ---------- Built-ins ----------

// Plus is (+, 0). Integer types add with hardware atomics; floats use a CAS loop.
func Plus[T Number]() Monoid[T] {
	op := func(x, y T) T { return x + y }
	return Monoid[T]{Name: "plus", Op: op, Identity: 0, Atomic: atomicAdd[T](op)}
}

// Times is (*, 1); integer zero is terminal.
func Times[T Number]() Monoid[T] {
	op := func(x, y T) T { return x * y }
	m := Monoid[T]{Name: "times", Op: op, Identity: 1, Atomic: casCombiner[T](op)}
	if !isFloat[T]() {
		m.Terminal = func(v T) bool { return v == 0 }
	}

	return m
}

// Min is (min, MaxValue); MinValue is terminal.
func Min[T Number]() Monoid[T] {
	op := func(x, y T) T {
		if y < x {
			return y
		}
		return x
	}
	lo := MinValue[T]()

	return Monoid[T]{
		Name: "min", Op: op, Identity: MaxValue[T](),
		Terminal: func(v T) bool { return v == lo },
		Atomic:   casCombiner[T](op),
	}
}

// Max is (max, MinValue); MaxValue is terminal.
func Max[T Number]() Monoid[T] {
	op := func(x, y T) T {
		if y > x {
			return y
		}
		return x
	}
	hi := MaxValue[T]()

	return Monoid[T]{
		Name: "max", Op: op, Identity: MinValue[T](),
		Terminal: func(v T) bool { return v == hi },
		Atomic:   casCombiner[T](op),
	}
}

// Any keeps an arbitrary one of the combined values. Every value is terminal.
func Any[T any]() Monoid[T] {
	var zero T
	return Monoid[T]{
		Name:     "any",
		Op:       func(x, _ T) T { return x },
		Identity: zero,
		Terminal: func(T) bool { return true },
		Atomic:   atomicStore[T](),
		any:      true,
	}
}

// Lor is (||, false); true is terminal.
func Lor() Monoid[bool] {
	return Monoid[bool]{
		Name:     "lor",
		Op:       func(x, y bool) bool { return x || y },
		Terminal: func(v bool) bool { return v },
	}
}

// Land is (&&, true); false is terminal.
func Land() Monoid[bool] {
	return Monoid[bool]{
		Name:     "land",
		Op:       func(x, y bool) bool { return x && y },
		Identity: true,
		Terminal: func(v bool) bool { return !v },
	}
}

// Lxor is (!=, false).
func Lxor() Monoid[bool] {
	return Monoid[bool]{
		Name: "lxor",
		Op:   func(x, y bool) bool { return x != y },
	}
}
