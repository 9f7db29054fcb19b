package fnkit

import "martianoff/fnkit/fnerr"

// Either is a tagged union of two variants: Left, conventionally the error
// or alternative value, and Right, conventionally the success value. Both
// payloads are legal with any value including the zero value; the tag never
// changes after construction.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates an Either holding a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if the Either holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Get returns the right value or panics with a StateError on a Left.
func (e Either[L, R]) Get() R {
	if !e.isRight {
		panic(fnerr.NewState("Either.Get on Left"))
	}
	return e.right
}

// GetLeft returns the left value or panics with a StateError on a Right.
func (e Either[L, R]) GetLeft() L {
	if e.isRight {
		panic(fnerr.NewState("Either.GetLeft on Right"))
	}
	return e.left
}

// GetOrElse returns the right value or a default on a Left.
func (e Either[L, R]) GetOrElse(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Map applies a same-type mapping to the right value. For a type-changing
// mapping use MapEither.
func (e Either[L, R]) Map(mapper Function1[R, R]) Either[L, R] {
	return MapEither(e, mapper)
}

// MapLeft applies a same-type mapping to the left value. For a
// type-changing mapping use MapEitherLeft.
func (e Either[L, R]) MapLeft(mapper Function1[L, L]) Either[L, R] {
	return MapEitherLeft(e, mapper)
}

// FilterOrElse keeps a Right only when the predicate accepts it, replacing
// a rejected Right with Left(elseSupplier()). A Left passes through
// unchanged. A nil predicate defaults to always-true, so the Either is
// returned unchanged.
func (e Either[L, R]) FilterOrElse(predicate Predicate1[R], elseSupplier Function0[L]) Either[L, R] {
	if !e.isRight || predicate == nil {
		return e
	}
	if predicate(e.right) {
		return e
	}
	if elseSupplier == nil {
		panic(fnerr.NewArgument("Either.FilterOrElse: elseSupplier must be provided"))
	}
	return Left[L, R](elseSupplier())
}

// Ap merges two Eithers of the same shape: two Rights merge with
// mergeRight, two Lefts merge with mergeLeft, and a mixed pair yields the
// Left side regardless of which operand it came from.
func (e Either[L, R]) Ap(other Either[L, R], mergeLeft BinaryOperator[L], mergeRight BinaryOperator[R]) Either[L, R] {
	switch {
	case e.isRight && other.isRight:
		if mergeRight == nil {
			panic(fnerr.NewArgument("Either.Ap: mergeRight must be provided"))
		}
		return Right[L](mergeRight(e.right, other.right))
	case !e.isRight && !other.isRight:
		if mergeLeft == nil {
			panic(fnerr.NewArgument("Either.Ap: mergeLeft must be provided"))
		}
		return Left[L, R](mergeLeft(e.left, other.left))
	case e.isRight:
		return other
	default:
		return e
	}
}

// Swap exchanges the left and right variants.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// ToOption converts a Right to a present Option and a Left to None.
func (e Either[L, R]) ToOption() Option[R] {
	if e.isRight {
		return Some(e.right)
	}
	return None[R]()
}

// MapEither applies a mapping to the right value. The mapper is only
// required when the Either is a Right.
func MapEither[L, R, U any](e Either[L, R], mapper Function1[R, U]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	if mapper == nil {
		panic(fnerr.NewArgument("MapEither: mapper must be provided"))
	}
	return Right[L](mapper(e.right))
}

// MapEitherLeft applies a mapping to the left value. The mapper is only
// required when the Either is a Left.
func MapEitherLeft[L, R, U any](e Either[L, R], mapper Function1[L, U]) Either[U, R] {
	if e.isRight {
		return Right[U](e.right)
	}
	if mapper == nil {
		panic(fnerr.NewArgument("MapEitherLeft: mapper must be provided"))
	}
	return Left[U, R](mapper(e.left))
}

// FlatMapEither applies an Either-returning mapping to the right value,
// without double-wrapping the result.
func FlatMapEither[L, R, U any](e Either[L, R], mapper Function1[R, Either[L, U]]) Either[L, U] {
	if !e.isRight {
		return Left[L, U](e.left)
	}
	if mapper == nil {
		panic(fnerr.NewArgument("FlatMapEither: mapper must be provided"))
	}
	return mapper(e.right)
}

// FoldEither reduces the Either to a single value by applying the mapper
// that matches the variant.
func FoldEither[L, R, U any](e Either[L, R], onLeft Function1[L, U], onRight Function1[R, U]) U {
	if e.isRight {
		if onRight == nil {
			panic(fnerr.NewArgument("FoldEither: onRight must be provided"))
		}
		return onRight(e.right)
	}
	if onLeft == nil {
		panic(fnerr.NewArgument("FoldEither: onLeft must be provided"))
	}
	return onLeft(e.left)
}
