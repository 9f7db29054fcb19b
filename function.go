package fnkit

import "martianoff/fnkit/fnerr"

// Function0 wraps a callable taking no arguments.
type Function0[R any] func() R

// Apply invokes the wrapped callable.
func (f Function0[R]) Apply() R {
	return f()
}

// Function1 wraps a mapping of one argument. It is the substrate for
// PartialFunction and the container combinators; the higher arities live in
// function_gen.go.
type Function1[T, R any] func(T) R

// Apply invokes the wrapped mapping.
func (f Function1[T, R]) Apply(t T) R {
	return f(t)
}

// Identity returns the function that maps every value to itself.
func Identity[T any]() Function1[T, T] {
	return func(t T) T { return t }
}

// Constant returns the function that ignores its argument and always
// returns v.
func Constant[T, R any](v R) Function1[T, R] {
	return func(T) R { return v }
}

// AndThen1 pipes the result of f through after.
func AndThen1[T, R, U any](f Function1[T, R], after Function1[R, U]) Function1[T, U] {
	if after == nil {
		panic(fnerr.NewArgument("AndThen1: after must be provided"))
	}
	return func(t T) U {
		return after(f(t))
	}
}

// Compose1 applies before first, then f to its result.
func Compose1[V, T, R any](f Function1[T, R], before Function1[V, T]) Function1[V, R] {
	if before == nil {
		panic(fnerr.NewArgument("Compose1: before must be provided"))
	}
	return func(v V) R {
		return f(before(v))
	}
}

// BinaryOperator merges two values of the same type into one.
type BinaryOperator[T any] func(T, T) T

// Apply invokes the wrapped operator.
func (f BinaryOperator[T]) Apply(a, b T) T {
	return f(a, b)
}

// MinBy returns the operator that picks the smaller of two values according
// to the comparator (negative means the first argument is smaller).
func MinBy[T any](cmp func(T, T) int) BinaryOperator[T] {
	if cmp == nil {
		panic(fnerr.NewArgument("MinBy: cmp must be provided"))
	}
	return func(a, b T) T {
		if cmp(a, b) <= 0 {
			return a
		}
		return b
	}
}

// MaxBy returns the operator that picks the larger of two values according
// to the comparator.
func MaxBy[T any](cmp func(T, T) int) BinaryOperator[T] {
	if cmp == nil {
		panic(fnerr.NewArgument("MaxBy: cmp must be provided"))
	}
	return func(a, b T) T {
		if cmp(a, b) >= 0 {
			return a
		}
		return b
	}
}
