package fnkit

import "martianoff/fnkit/fnerr"

// Try represents the outcome of a computation that may panic: a Success
// holding a value, or a Failure holding a non-nil error. Every mapper
// invoked inside a Try combinator runs in a guarded region: a panic never
// escapes, it is normalized through fnerr.FromPanic and becomes a Failure.
type Try[T any] struct {
	value T
	err   error
}

// Success creates a successful Try. Any value is legal, including the zero
// value.
func Success[T any](value T) Try[T] {
	return Try[T]{value: value}
}

// Failure creates a failed Try. The error must be provided.
func Failure[T any](err error) Try[T] {
	if err == nil {
		panic(fnerr.NewArgument("Try.Failure: err must be provided"))
	}
	return Try[T]{err: err}
}

// guardTry invokes fn, converting a panic into a Failure.
func guardTry[T any](fn func() Try[T]) (res Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](fnerr.FromPanic(r))
		}
	}()
	return fn()
}

// guard invokes fn, wrapping a normal return in Success and a panic in
// Failure.
func guard[T any](fn func() T) Try[T] {
	return guardTry(func() Try[T] {
		return Success(fn())
	})
}

// Of0 invokes a no-argument callable inside a guarded region. Of2 through
// Of9 live in try_gen.go.
func Of0[R any](fn Function0[R]) Try[R] {
	if fn == nil {
		panic(fnerr.NewArgument("Try.Of0: fn must be provided"))
	}
	return guard(func() R { return fn() })
}

// Of1 invokes a callable of one argument inside a guarded region.
func Of1[T1, R any](t1 T1, fn Function1[T1, R]) Try[R] {
	if fn == nil {
		panic(fnerr.NewArgument("Try.Of1: fn must be provided"))
	}
	return guard(func() R { return fn(t1) })
}

// TryOf adapts a Go-native fallible computation, guarding panics and
// turning a returned error into a Failure.
func TryOf[T any](fn func() (T, error)) Try[T] {
	if fn == nil {
		panic(fnerr.NewArgument("TryOf: fn must be provided"))
	}
	return guardTry(func() Try[T] {
		value, err := fn()
		if err != nil {
			return Failure[T](err)
		}
		return Success(value)
	})
}

// Wrap lifts a conventional (value, error) pair into a Try.
func Wrap[T any](value T, err error) Try[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(value)
}

// IsSuccess returns true if the Try holds a value.
func (t Try[T]) IsSuccess() bool {
	return t.err == nil
}

// IsFailure returns true if the Try holds an error.
func (t Try[T]) IsFailure() bool {
	return t.err != nil
}

// Get returns the value on Success and re-raises the stored error on
// Failure.
func (t Try[T]) Get() T {
	if t.err != nil {
		panic(t.err)
	}
	return t.value
}

// GetError returns the error on Failure or panics with a StateError on
// Success.
func (t Try[T]) GetError() error {
	if t.err == nil {
		panic(fnerr.NewState("Try.GetError on Success"))
	}
	return t.err
}

// GetOrElse returns the value or a default on Failure.
func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.err == nil {
		return t.value
	}
	return defaultValue
}

// OrElse returns t on Success, else the alternative.
func (t Try[T]) OrElse(other Try[T]) Try[T] {
	if t.err == nil {
		return t
	}
	return other
}

// OrElseFunc returns t on Success, else evaluates the supplier inside a
// guarded region.
func (t Try[T]) OrElseFunc(supplier Function0[Try[T]]) Try[T] {
	if t.err == nil {
		return t
	}
	if supplier == nil {
		panic(fnerr.NewArgument("Try.OrElseFunc: supplier must be provided"))
	}
	return guardTry(func() Try[T] { return supplier() })
}

// Map applies a same-type mapping to the value inside a guarded region. For
// a type-changing mapping use MapTry.
func (t Try[T]) Map(mapper Function1[T, T]) Try[T] {
	return MapTry(t, mapper)
}

// MapFailure applies a mapping to the error inside a guarded region. The
// mapper is only required on Failure.
func (t Try[T]) MapFailure(mapper Function1[error, error]) Try[T] {
	if t.err == nil {
		return t
	}
	if mapper == nil {
		panic(fnerr.NewArgument("Try.MapFailure: mapper must be provided"))
	}
	return guardTry(func() Try[T] {
		return Failure[T](mapper(t.err))
	})
}

// Recover maps the error to a replacement value inside a guarded region; a
// panic in the mapper yields a new Failure. A Success passes through
// unchanged.
func (t Try[T]) Recover(mapper Function1[error, T]) Try[T] {
	if t.err == nil {
		return t
	}
	if mapper == nil {
		panic(fnerr.NewArgument("Try.Recover: mapper must be provided"))
	}
	return guard(func() T { return mapper(t.err) })
}

// RecoverWith is Recover with a mapper that returns a Try directly, without
// auto-wrapping.
func (t Try[T]) RecoverWith(mapper Function1[error, Try[T]]) Try[T] {
	if t.err == nil {
		return t
	}
	if mapper == nil {
		panic(fnerr.NewArgument("Try.RecoverWith: mapper must be provided"))
	}
	return guardTry(func() Try[T] { return mapper(t.err) })
}

// Transform maps both variants to a new Try: the Success branch is guarded
// like Map, the Failure branch like RecoverWith. For a type-changing
// transform use TransformTry.
func (t Try[T]) Transform(onFailure Function1[error, Try[T]], onSuccess Function1[T, Try[T]]) Try[T] {
	return TransformTry(t, onFailure, onSuccess)
}

// Ap merges two Trys: two Successes merge with mergeSuccess, two Failures
// with mergeFailure (both guarded), and a mixed pair yields the Failure
// side unchanged.
func (t Try[T]) Ap(other Try[T], mergeFailure BinaryOperator[error], mergeSuccess BinaryOperator[T]) Try[T] {
	switch {
	case t.err == nil && other.err == nil:
		if mergeSuccess == nil {
			panic(fnerr.NewArgument("Try.Ap: mergeSuccess must be provided"))
		}
		return guard(func() T { return mergeSuccess(t.value, other.value) })
	case t.err != nil && other.err != nil:
		if mergeFailure == nil {
			panic(fnerr.NewArgument("Try.Ap: mergeFailure must be provided"))
		}
		return guardTry(func() Try[T] {
			return Failure[T](mergeFailure(t.err, other.err))
		})
	case t.err != nil:
		return t
	default:
		return other
	}
}

// ToEither converts a Success to Right and a Failure to Left.
func (t Try[T]) ToEither() Either[error, T] {
	if t.err == nil {
		return Right[error](t.value)
	}
	return Left[error, T](t.err)
}

// ToOption converts a Success to a present Option and a Failure to None.
func (t Try[T]) ToOption() Option[T] {
	if t.err == nil {
		return Some(t.value)
	}
	return None[T]()
}

// ToValidation converts a Success to Valid and a Failure to Invalid holding
// the single error.
func (t Try[T]) ToValidation() Validation[T] {
	if t.err == nil {
		return Valid(t.value)
	}
	return Invalid[T](t.err)
}

// MapTry applies a mapping to the value inside a guarded region. The mapper
// is only required on Success; a Failure propagates unchanged.
func MapTry[T, U any](t Try[T], mapper Function1[T, U]) Try[U] {
	if t.err != nil {
		return Failure[U](t.err)
	}
	if mapper == nil {
		panic(fnerr.NewArgument("MapTry: mapper must be provided"))
	}
	return guard(func() U { return mapper(t.value) })
}

// FlatMapTry applies a Try-returning mapping to the value inside a guarded
// region, without auto-wrapping the result.
func FlatMapTry[T, U any](t Try[T], mapper Function1[T, Try[U]]) Try[U] {
	if t.err != nil {
		return Failure[U](t.err)
	}
	if mapper == nil {
		panic(fnerr.NewArgument("FlatMapTry: mapper must be provided"))
	}
	return guardTry(func() Try[U] { return mapper(t.value) })
}

// FoldTry reduces the Try to a single value. On Success the mapper runs
// guarded: if it panics, the fold falls back to onFailure applied to the
// caught error. On Failure onFailure is applied directly.
func FoldTry[T, U any](t Try[T], onFailure Function1[error, U], onSuccess Function1[T, U]) (res U) {
	if onFailure == nil {
		panic(fnerr.NewArgument("FoldTry: onFailure must be provided"))
	}
	if t.err != nil {
		return onFailure(t.err)
	}
	if onSuccess == nil {
		panic(fnerr.NewArgument("FoldTry: onSuccess must be provided"))
	}
	defer func() {
		if r := recover(); r != nil {
			res = onFailure(fnerr.FromPanic(r))
		}
	}()
	return onSuccess(t.value)
}

// TransformTry maps both variants to a new Try, each branch guarded.
func TransformTry[T, U any](t Try[T], onFailure Function1[error, Try[U]], onSuccess Function1[T, Try[U]]) Try[U] {
	if t.err != nil {
		if onFailure == nil {
			panic(fnerr.NewArgument("TransformTry: onFailure must be provided"))
		}
		return guardTry(func() Try[U] { return onFailure(t.err) })
	}
	if onSuccess == nil {
		panic(fnerr.NewArgument("TransformTry: onSuccess must be provided"))
	}
	return guardTry(func() Try[U] { return onSuccess(t.value) })
}

// Combine left-folds the given Trys pairwise with Ap. An empty input yields
// Success of the zero value; the merge operators are only required when at
// least two Trys meet.
func Combine[T any](mergeFailure BinaryOperator[error], mergeSuccess BinaryOperator[T], tries ...Try[T]) Try[T] {
	if len(tries) == 0 {
		var zero T
		return Success(zero)
	}
	acc := tries[0]
	for _, next := range tries[1:] {
		acc = acc.Ap(next, mergeFailure, mergeSuccess)
	}
	return acc
}

// CombineGetFirstFailure evaluates the suppliers lazily in order, merging
// successive Success values with mergeSuccess and returning immediately on
// the first Failure encountered; later suppliers are never invoked. An
// empty input yields Success of the zero value, and mergeSuccess is only
// required once two Successes meet.
func CombineGetFirstFailure[T any](mergeSuccess BinaryOperator[T], suppliers ...Function0[Try[T]]) Try[T] {
	if len(suppliers) == 0 {
		var zero T
		return Success(zero)
	}
	acc := evalSupplier(suppliers[0])
	if acc.err != nil {
		return acc
	}
	for _, supplier := range suppliers[1:] {
		next := evalSupplier(supplier)
		if next.err != nil {
			return next
		}
		if mergeSuccess == nil {
			panic(fnerr.NewArgument("CombineGetFirstFailure: mergeSuccess must be provided"))
		}
		merged := guard(func() T { return mergeSuccess(acc.value, next.value) })
		if merged.err != nil {
			return merged
		}
		acc = merged
	}
	return acc
}

func evalSupplier[T any](supplier Function0[Try[T]]) Try[T] {
	if supplier == nil {
		panic(fnerr.NewArgument("CombineGetFirstFailure: suppliers must be provided"))
	}
	return guardTry(func() Try[T] { return supplier() })
}
