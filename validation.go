package fnkit

import "martianoff/fnkit/fnerr"

// Validation accumulates errors instead of short-circuiting on the first
// one: Ap on two Invalids concatenates their error slices, where Try.Ap
// would merge two failures into a single error.
type Validation[T any] struct {
	value T
	errs  []error
	valid bool
}

// Valid creates a passing Validation.
func Valid[T any](value T) Validation[T] {
	return Validation[T]{value: value, valid: true}
}

// Invalid creates a failing Validation holding the given errors.
func Invalid[T any](errs ...error) Validation[T] {
	for _, err := range errs {
		if err == nil {
			panic(fnerr.NewArgument("Validation.Invalid: errs must be provided"))
		}
	}
	return Validation[T]{errs: errs}
}

// IsValid returns true if the validation passed.
func (v Validation[T]) IsValid() bool {
	return v.valid
}

// IsInvalid returns true if the validation failed.
func (v Validation[T]) IsInvalid() bool {
	return !v.valid
}

// Get returns the value or panics with a StateError when invalid.
func (v Validation[T]) Get() T {
	if !v.valid {
		panic(fnerr.NewState("Validation.Get on Invalid"))
	}
	return v.value
}

// Errors returns the accumulated errors, empty when valid.
func (v Validation[T]) Errors() []error {
	return v.errs
}

// GetOrElse returns the value or a default when invalid.
func (v Validation[T]) GetOrElse(defaultValue T) T {
	if v.valid {
		return v.value
	}
	return defaultValue
}

// Map applies a same-type mapping to the value when valid. For a
// type-changing mapping use MapValidation.
func (v Validation[T]) Map(mapper Function1[T, T]) Validation[T] {
	return MapValidation(v, mapper)
}

// Ap merges two Validations: two Valids merge with mergeValid, and any
// Invalid contributes all of its errors to the accumulated result.
func (v Validation[T]) Ap(other Validation[T], mergeValid BinaryOperator[T]) Validation[T] {
	if v.valid && other.valid {
		if mergeValid == nil {
			panic(fnerr.NewArgument("Validation.Ap: mergeValid must be provided"))
		}
		return Valid(mergeValid(v.value, other.value))
	}
	errs := make([]error, 0, len(v.errs)+len(other.errs))
	errs = append(errs, v.errs...)
	errs = append(errs, other.errs...)
	return Invalid[T](errs...)
}

// ToTry converts a Valid to Success and an Invalid to Failure, aggregating
// several errors into a fnerr.MultiError.
func (v Validation[T]) ToTry() Try[T] {
	if v.valid {
		return Success(v.value)
	}
	if len(v.errs) == 1 {
		return Failure[T](v.errs[0])
	}
	return Failure[T](&fnerr.MultiError{Errors: v.errs})
}

// MapValidation applies a mapping to the value when valid. The mapper is
// only required when the Validation is valid.
func MapValidation[T, U any](v Validation[T], mapper Function1[T, U]) Validation[U] {
	if !v.valid {
		return Validation[U]{errs: v.errs}
	}
	if mapper == nil {
		panic(fnerr.NewArgument("MapValidation: mapper must be provided"))
	}
	return Valid(mapper(v.value))
}

// SequenceValidation collects a slice of Validations into a Validation of a
// slice, accumulating every error across the inputs.
func SequenceValidation[T any](vs []Validation[T]) Validation[[]T] {
	values := make([]T, 0, len(vs))
	var errs []error
	for _, v := range vs {
		if v.valid {
			values = append(values, v.value)
		} else {
			errs = append(errs, v.errs...)
		}
	}
	if len(errs) > 0 {
		return Invalid[[]T](errs...)
	}
	return Valid(values)
}
