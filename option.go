package fnkit

import "martianoff/fnkit/fnerr"

// Option represents a value that may or may not be present. The zero value
// is the empty Option.
type Option[T any] struct {
	value   T
	present bool
}

// Some creates an Option containing a value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of creates an Option from a pointer that must not be nil.
func Of[T any](value *T) Option[T] {
	if value == nil {
		panic(fnerr.NewArgument("Option.Of: value must be provided"))
	}
	return Some(*value)
}

// OfNullable creates an Option from a possibly-nil pointer.
func OfNullable[T any](value *T) Option[T] {
	if value == nil {
		return None[T]()
	}
	return Some(*value)
}

// IsPresent returns true if the Option contains a value.
func (o Option[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if the Option is empty.
func (o Option[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value or panics with a StateError when empty.
func (o Option[T]) Get() T {
	if !o.present {
		panic(fnerr.NewState("Option.Get on None"))
	}
	return o.value
}

// GetOrElse returns the contained value or a default.
func (o Option[T]) GetOrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// GetOrElseFunc returns the contained value or evaluates the supplier.
func (o Option[T]) GetOrElseFunc(supplier Function0[T]) T {
	if o.present {
		return o.value
	}
	if supplier == nil {
		panic(fnerr.NewArgument("Option.GetOrElseFunc: supplier must be provided"))
	}
	return supplier()
}

// Map applies a same-type mapping to the contained value if present. For a
// type-changing mapping use MapOption.
func (o Option[T]) Map(mapper Function1[T, T]) Option[T] {
	return MapOption(o, mapper)
}

// FlatMap applies a same-type Option-returning mapping to the contained
// value if present. For a type-changing mapping use FlatMapOption.
func (o Option[T]) FlatMap(mapper Function1[T, Option[T]]) Option[T] {
	return FlatMapOption(o, mapper)
}

// Filter keeps the value only when the predicate accepts it.
func (o Option[T]) Filter(predicate Predicate1[T]) Option[T] {
	if !o.present {
		return o
	}
	if predicate == nil {
		panic(fnerr.NewArgument("Option.Filter: predicate must be provided"))
	}
	if predicate(o.value) {
		return o
	}
	return None[T]()
}

// ToPtr returns a pointer to the contained value, or nil when empty.
func (o Option[T]) ToPtr() *T {
	if o.present {
		return &o.value
	}
	return nil
}

// Equal compares two Options. Present values are compared with the wrapped
// value's own Equal when it implements Equatable, else structurally.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.present != other.present {
		return false
	}
	if !o.present {
		return true
	}
	return equalValues(o.value, other.value)
}

// MapOption applies a mapping to the contained value if present. The mapper
// is only required when the Option is present.
func MapOption[T, U any](o Option[T], mapper Function1[T, U]) Option[U] {
	if !o.present {
		return None[U]()
	}
	if mapper == nil {
		panic(fnerr.NewArgument("MapOption: mapper must be provided"))
	}
	return Some(mapper(o.value))
}

// FlatMapOption applies an Option-returning mapping to the contained value
// if present, without double-wrapping the result.
func FlatMapOption[T, U any](o Option[T], mapper Function1[T, Option[U]]) Option[U] {
	if !o.present {
		return None[U]()
	}
	if mapper == nil {
		panic(fnerr.NewArgument("FlatMapOption: mapper must be provided"))
	}
	return mapper(o.value)
}

// FoldOption reduces the Option to a single value by applying ifPresent to
// a present value or evaluating ifEmpty otherwise.
func FoldOption[T, U any](o Option[T], ifEmpty Function0[U], ifPresent Function1[T, U]) U {
	if o.present {
		if ifPresent == nil {
			panic(fnerr.NewArgument("FoldOption: ifPresent must be provided"))
		}
		return ifPresent(o.value)
	}
	if ifEmpty == nil {
		panic(fnerr.NewArgument("FoldOption: ifEmpty must be provided"))
	}
	return ifEmpty()
}

// CollectOption applies a PartialFunction to the contained value: a present
// value inside the domain maps through the PartialFunction, anything else
// collapses to None.
func CollectOption[T, R any](o Option[T], pf PartialFunction[T, R]) Option[R] {
	if !o.present {
		return None[R]()
	}
	if pf.mapper == nil {
		panic(fnerr.NewArgument("CollectOption: partial function must be provided"))
	}
	if !pf.IsDefinedAt(o.value) {
		return None[R]()
	}
	return Some(pf.Apply(o.value))
}

// ToLeft converts the Option to an Either, a present value becoming Left
// and the supplier providing the Right for the empty case.
func ToLeft[T, R any](o Option[T], rightSupplier Function0[R]) Either[T, R] {
	if o.present {
		return Left[T, R](o.value)
	}
	if rightSupplier == nil {
		panic(fnerr.NewArgument("ToLeft: rightSupplier must be provided"))
	}
	return Right[T](rightSupplier())
}

// ToRight converts the Option to an Either, a present value becoming Right
// and the supplier providing the Left for the empty case.
func ToRight[L, T any](o Option[T], leftSupplier Function0[L]) Either[L, T] {
	if o.present {
		return Right[L](o.value)
	}
	if leftSupplier == nil {
		panic(fnerr.NewArgument("ToRight: leftSupplier must be provided"))
	}
	return Left[L, T](leftSupplier())
}
