package fnkit

import "martianoff/fnkit/fnerr"

// Predicate1 wraps a boolean-valued test of one argument. The higher
// arities live in predicate_gen.go.
type Predicate1[T any] func(T) bool

// Apply invokes the wrapped test.
func (p Predicate1[T]) Apply(t T) bool {
	return p(t)
}

// And returns the conjunction of p and other. Evaluation short-circuits.
func (p Predicate1[T]) And(other Predicate1[T]) Predicate1[T] {
	if other == nil {
		panic(fnerr.NewArgument("Predicate1.And: other must be provided"))
	}
	return func(t T) bool {
		return p(t) && other(t)
	}
}

// Or returns the disjunction of p and other. Evaluation short-circuits.
func (p Predicate1[T]) Or(other Predicate1[T]) Predicate1[T] {
	if other == nil {
		panic(fnerr.NewArgument("Predicate1.Or: other must be provided"))
	}
	return func(t T) bool {
		return p(t) || other(t)
	}
}

// Not returns the negation of p.
func (p Predicate1[T]) Not() Predicate1[T] {
	return func(t T) bool {
		return !p(t)
	}
}

// Xor returns the exclusive disjunction of p and other.
func (p Predicate1[T]) Xor(other Predicate1[T]) Predicate1[T] {
	if other == nil {
		panic(fnerr.NewArgument("Predicate1.Xor: other must be provided"))
	}
	return func(t T) bool {
		return p(t) != other(t)
	}
}

// AlwaysTrue1 returns the predicate that accepts every value.
func AlwaysTrue1[T any]() Predicate1[T] {
	return func(T) bool { return true }
}

// AlwaysFalse1 returns the predicate that rejects every value.
func AlwaysFalse1[T any]() Predicate1[T] {
	return func(T) bool { return false }
}

// AllOf1 returns the conjunction of all given predicates. With no
// predicates it accepts everything.
func AllOf1[T any](ps ...Predicate1[T]) Predicate1[T] {
	return func(t T) bool {
		for _, p := range ps {
			if p == nil {
				panic(fnerr.NewArgument("AllOf1: predicates must be provided"))
			}
			if !p(t) {
				return false
			}
		}
		return true
	}
}

// AnyOf1 returns the disjunction of all given predicates. With no
// predicates it rejects everything.
func AnyOf1[T any](ps ...Predicate1[T]) Predicate1[T] {
	return func(t T) bool {
		for _, p := range ps {
			if p == nil {
				panic(fnerr.NewArgument("AnyOf1: predicates must be provided"))
			}
			if p(t) {
				return true
			}
		}
		return false
	}
}
