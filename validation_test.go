package fnkit

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/fnkit/fnerr"
)

func TestValidationFactories(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		v := Valid(42)
		assert.True(t, v.IsValid())
		assert.False(t, v.IsInvalid())
		assert.Equal(t, 42, v.Get())
		assert.Empty(t, v.Errors())
	})

	t.Run("Invalid", func(t *testing.T) {
		errA := errors.New("a")
		errB := errors.New("b")
		v := Invalid[int](errA, errB)
		assert.True(t, v.IsInvalid())
		assert.Equal(t, []error{errA, errB}, v.Errors())
		assert.PanicsWithError(t, "[StateError] Validation.Get on Invalid", func() { v.Get() })
	})

	t.Run("InvalidRejectsNilError", func(t *testing.T) {
		assert.PanicsWithError(t, "[ArgumentError] Validation.Invalid: errs must be provided", func() {
			Invalid[int](errors.New("a"), nil)
		})
	})
}

func TestValidationGetOrElse(t *testing.T) {
	assert.Equal(t, 42, Valid(42).GetOrElse(0))
	assert.Equal(t, 0, Invalid[int](errBoom).GetOrElse(0))
}

func TestValidationMap(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		v := MapValidation(Valid(42), Function1[int, string](strconv.Itoa))
		assert.Equal(t, "42", v.Get())
	})

	t.Run("InvalidKeepsErrors", func(t *testing.T) {
		v := MapValidation(Invalid[int](errBoom), Function1[int, string](strconv.Itoa))
		assert.Equal(t, []error{errBoom}, v.Errors())
	})

	t.Run("NilMapperOnlyRequiredWhenValid", func(t *testing.T) {
		assert.Panics(t, func() { MapValidation[int, int](Valid(42), nil) })
		assert.NotPanics(t, func() { MapValidation[int, int](Invalid[int](errBoom), nil) })
	})

	t.Run("SameTypeMethod", func(t *testing.T) {
		assert.Equal(t, 84, Valid(42).Map(func(n int) int { return n * 2 }).Get())
	})
}

func TestValidationAp(t *testing.T) {
	sumValues := BinaryOperator[int](func(a, b int) int { return a + b })
	errA := errors.New("a")
	errB := errors.New("b")

	t.Run("BothValid", func(t *testing.T) {
		assert.Equal(t, 30, Valid(11).Ap(Valid(19), sumValues).Get())
	})

	t.Run("AccumulatesAllErrors", func(t *testing.T) {
		got := Invalid[int](errA).Ap(Invalid[int](errB), sumValues)
		assert.Equal(t, []error{errA, errB}, got.Errors())
	})

	t.Run("MixedKeepsInvalidErrors", func(t *testing.T) {
		assert.Equal(t, []error{errA}, Valid(11).Ap(Invalid[int](errA), sumValues).Errors())
		assert.Equal(t, []error{errA}, Invalid[int](errA).Ap(Valid(11), sumValues).Errors())
	})

	t.Run("NilMergerOnlyRequiredWhenBothValid", func(t *testing.T) {
		assert.Panics(t, func() { Valid(1).Ap(Valid(2), nil) })
		assert.NotPanics(t, func() { Valid(1).Ap(Invalid[int](errA), nil) })
	})
}

func TestValidationToTry(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.Equal(t, 42, Valid(42).ToTry().Get())
	})

	t.Run("SingleErrorPassesThrough", func(t *testing.T) {
		assert.Equal(t, errBoom, Invalid[int](errBoom).ToTry().GetError())
	})

	t.Run("MultipleErrorsAggregate", func(t *testing.T) {
		errA := errors.New("a")
		errB := errors.New("b")
		got := Invalid[int](errA, errB).ToTry().GetError()

		var merr *fnerr.MultiError
		assert.ErrorAs(t, got, &merr)
		assert.Equal(t, []error{errA, errB}, merr.Errors)
		assert.ErrorIs(t, got, errA)
		assert.ErrorIs(t, got, errB)
	})
}

func TestSequenceValidation(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	t.Run("AllValid", func(t *testing.T) {
		got := SequenceValidation([]Validation[int]{Valid(1), Valid(2), Valid(3)})
		assert.Equal(t, []int{1, 2, 3}, got.Get())
	})

	t.Run("CollectsEveryError", func(t *testing.T) {
		got := SequenceValidation([]Validation[int]{Valid(1), Invalid[int](errA), Invalid[int](errB)})
		assert.Equal(t, []error{errA, errB}, got.Errors())
	})

	t.Run("Empty", func(t *testing.T) {
		got := SequenceValidation[int](nil)
		assert.True(t, got.IsValid())
		assert.Empty(t, got.Get())
	})
}
