// SPDX-License-Identifier: MIT

// Package semiring: multiply operators and the Semiring bundle.

package semiring

import "github.com/cockroachdb/errors"

// MulKind tells the engine which operands the multiply operator reads.
type MulKind uint8

const (
	// MulGeneric reads both a(i,k) and b(k,j).
	MulGeneric MulKind = iota
	// MulFirst reads only a(i,k).
	MulFirst
	// MulSecond reads only b(k,j).
	MulSecond
	// MulPair reads neither; the product is a constant.
	MulPair
)

// String implements fmt.Stringer.
func (k MulKind) String() string {
	switch k {
	case MulGeneric:
		return "generic"
	case MulFirst:
		return "first"
	case MulSecond:
		return "second"
	case MulPair:
		return "pair"
	default:
		return "unknown"
	}
}

// Semiring pairs an additive monoid with a multiply operator.
type Semiring[T any] struct {
	Name    string
	Add     Monoid[T]
	Mul     func(a, b T) T
	MulKind MulKind
	// Symbolic semirings produce structure only; the engine skips every
	// value computation and returns a valueless matrix.
	Symbolic bool
}

// NewSemiring builds a custom semiring with a generic multiply.
func NewSemiring[T any](name string, add Monoid[T], mul func(a, b T) T) (Semiring[T], error) {
	sr := Semiring[T]{Name: name, Add: add, Mul: mul, MulKind: MulGeneric}
	if err := sr.Validate(); err != nil {
		return Semiring[T]{}, err
	}

	return sr, nil
}

// Validate reports a semiring that cannot be used by the engine.
func (s Semiring[T]) Validate() error {
	if err := s.Add.Validate(); err != nil {
		return errors.Wrapf(err, "semiring %q", s.Name)
	}
	if s.Mul == nil && !s.Symbolic {
		return errors.Wrapf(ErrNilOperator, "semiring %q: multiply", s.Name)
	}

	return nil
}

// Multiply applies Mul (exported for callers that hold only the bundle).
func (s Semiring[T]) Multiply(a, b T) T { return s.Mul(a, b) }

// IsoOutput reports whether every product entry is the same value: an "any"
// monoid over a constant multiply, or a symbolic semiring.
func (s Semiring[T]) IsoOutput() bool {
	return s.Symbolic || (s.Add.IsAny() && s.MulKind == MulPair)
}

// ---------- Multiply operators ----------

func times[T Number](a, b T) T { return a * b }
func plus[T Number](a, b T) T  { return a + b }
func first[T any](a, _ T) T    { return a }
func second[T any](_, b T) T   { return b }

func minOf[T Number](a, b T) T {
	if b < a {
		return b
	}
	return a
}

func maxOf[T Number](a, b T) T {
	if b > a {
		return b
	}
	return a
}

func pairOne[T Number](_, _ T) T { return 1 }

// ---------- Built-in semirings ----------

// PlusTimes is conventional arithmetic.
func PlusTimes[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_times", Add: Plus[T](), Mul: times[T]}
}

// MinPlus is the tropical semiring of shortest paths.
func MinPlus[T Number]() Semiring[T] {
	return Semiring[T]{Name: "min_plus", Add: Min[T](), Mul: plus[T]}
}

// MaxPlus computes longest (critical) paths.
func MaxPlus[T Number]() Semiring[T] {
	return Semiring[T]{Name: "max_plus", Add: Max[T](), Mul: plus[T]}
}

// MinMax computes bottleneck (minimax) paths.
func MinMax[T Number]() Semiring[T] {
	return Semiring[T]{Name: "min_max", Add: Min[T](), Mul: maxOf[T]}
}

// MaxMin computes widest (maximin capacity) paths.
func MaxMin[T Number]() Semiring[T] {
	return Semiring[T]{Name: "max_min", Add: Max[T](), Mul: minOf[T]}
}

// PlusMin sums pairwise minima.
func PlusMin[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_min", Add: Plus[T](), Mul: minOf[T]}
}

// PlusPair counts contributing terms (common neighbours, triangles).
func PlusPair[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_pair", Add: Plus[T](), Mul: pairOne[T], MulKind: MulPair}
}

// AnyPair marks reachability; its output is iso 1.
func AnyPair[T Number]() Semiring[T] {
	return Semiring[T]{Name: "any_pair", Add: Any[T](), Mul: pairOne[T], MulKind: MulPair}
}

// AnyFirst keeps some a(i,k) per output entry.
func AnyFirst[T any]() Semiring[T] {
	return Semiring[T]{Name: "any_first", Add: Any[T](), Mul: first[T], MulKind: MulFirst}
}

// AnySecond keeps some b(k,j) per output entry (BFS parent discovery when
// b(k,j) holds k).
func AnySecond[T any]() Semiring[T] {
	return Semiring[T]{Name: "any_second", Add: Any[T](), Mul: second[T], MulKind: MulSecond}
}

// MinFirst keeps the smallest a(i,k) over contributing k.
func MinFirst[T Number]() Semiring[T] {
	return Semiring[T]{Name: "min_first", Add: Min[T](), Mul: first[T], MulKind: MulFirst}
}

// MinSecond keeps the smallest b(k,j) over contributing k.
func MinSecond[T Number]() Semiring[T] {
	return Semiring[T]{Name: "min_second", Add: Min[T](), Mul: second[T], MulKind: MulSecond}
}

// PlusFirst sums a(i,k) over contributing k.
func PlusFirst[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_first", Add: Plus[T](), Mul: first[T], MulKind: MulFirst}
}

// PlusSecond sums b(k,j) over contributing k.
func PlusSecond[T Number]() Semiring[T] {
	return Semiring[T]{Name: "plus_second", Add: Plus[T](), Mul: second[T], MulKind: MulSecond}
}

// LorLand is boolean reachability.
func LorLand() Semiring[bool] {
	return Semiring[bool]{Name: "lor_land", Add: Lor(), Mul: func(a, b bool) bool { return a && b }}
}

// LandLor is the dual boolean semiring.
func LandLor() Semiring[bool] {
	return Semiring[bool]{Name: "land_lor", Add: Land(), Mul: func(a, b bool) bool { return a || b }}
}

// LxorLand is GF(2) arithmetic.
func LxorLand() Semiring[bool] {
	return Semiring[bool]{Name: "lxor_land", Add: Lxor(), Mul: func(a, b bool) bool { return a && b }}
}

// Pattern computes structure only.
func Pattern() Semiring[struct{}] {
	return Semiring[struct{}]{
		Name:     "pattern",
		Add:      Any[struct{}](),
		Mul:      func(struct{}, struct{}) struct{} { return struct{}{} },
		MulKind:  MulPair,
		Symbolic: true,
	}
}
