package fnkit

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/fnkit/fnerr"
)

var errBoom = errors.New("boom")

func TestTryFactories(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tr := Success(42)
		assert.True(t, tr.IsSuccess())
		assert.False(t, tr.IsFailure())
		assert.Equal(t, 42, tr.Get())
		assert.PanicsWithError(t, "[StateError] Try.GetError on Success", func() { tr.GetError() })
	})

	t.Run("Failure", func(t *testing.T) {
		tr := Failure[int](errBoom)
		assert.True(t, tr.IsFailure())
		assert.False(t, tr.IsSuccess())
		assert.Equal(t, errBoom, tr.GetError())
	})

	t.Run("FailureRequiresError", func(t *testing.T) {
		assert.PanicsWithError(t, "[ArgumentError] Try.Failure: err must be provided", func() {
			Failure[int](nil)
		})
	})

	t.Run("GetRaisesStoredError", func(t *testing.T) {
		defer func() {
			assert.Equal(t, errBoom, recover())
		}()
		Failure[int](errBoom).Get()
	})
}

func TestTryOf(t *testing.T) {
	t.Run("Of0Success", func(t *testing.T) {
		tr := Of0(func() int { return 42 })
		assert.Equal(t, 42, tr.Get())
	})

	t.Run("Of0CatchesErrorPanic", func(t *testing.T) {
		tr := Of0(func() int { panic(errBoom) })
		assert.True(t, tr.IsFailure())
		assert.ErrorIs(t, tr.GetError(), errBoom)
	})

	t.Run("Of0NormalizesBarePanicValue", func(t *testing.T) {
		tr := Of0(func() int { panic("kaput") })
		assert.True(t, tr.IsFailure())
		var pe *fnerr.PanicError
		assert.ErrorAs(t, tr.GetError(), &pe)
	})

	t.Run("Of1", func(t *testing.T) {
		tr := Of1(21, func(n int) int { return n * 2 })
		assert.Equal(t, 42, tr.Get())
	})

	t.Run("Of1CatchesPanic", func(t *testing.T) {
		tr := Of1(0, func(n int) int { return 42 / n })
		assert.True(t, tr.IsFailure())
	})

	t.Run("Of2", func(t *testing.T) {
		tr := Of2(3, 4, func(a, b int) int { return a + b })
		assert.Equal(t, 7, tr.Get())
	})

	t.Run("Of9", func(t *testing.T) {
		tr := Of9(1, 2, 3, 4, 5, 6, 7, 8, 9,
			func(a, b, c, d, e, f, g, h, i int) int {
				return a + b + c + d + e + f + g + h + i
			})
		assert.Equal(t, 45, tr.Get())
	})

	t.Run("TryOfReturnedError", func(t *testing.T) {
		tr := TryOf(func() (int, error) { return 0, errBoom })
		assert.Equal(t, errBoom, tr.GetError())
	})

	t.Run("TryOfSuccess", func(t *testing.T) {
		tr := TryOf(func() (int, error) { return 42, nil })
		assert.Equal(t, 42, tr.Get())
	})

	t.Run("TryOfDistinctFromOptionOf", func(t *testing.T) {
		v := 42
		assert.Equal(t, Some(42), Of(&v))
		assert.Equal(t, 42, TryOf(func() (int, error) { return v, nil }).Get())
	})

	t.Run("Wrap", func(t *testing.T) {
		assert.Equal(t, 42, Wrap(42, nil).Get())
		assert.Equal(t, errBoom, Wrap(0, errBoom).GetError())
	})

	t.Run("NilCallablePanics", func(t *testing.T) {
		assert.Panics(t, func() { Of0[int](nil) })
		assert.Panics(t, func() { TryOf[int](nil) })
	})
}

func TestTryGetOrElse(t *testing.T) {
	assert.Equal(t, 42, Success(42).GetOrElse(0))
	assert.Equal(t, 0, Failure[int](errBoom).GetOrElse(0))
}

func TestTryOrElse(t *testing.T) {
	fallback := Success(7)

	assert.Equal(t, 42, Success(42).OrElse(fallback).Get())
	assert.Equal(t, 7, Failure[int](errBoom).OrElse(fallback).Get())

	t.Run("Func", func(t *testing.T) {
		called := false
		got := Success(42).OrElseFunc(func() Try[int] {
			called = true
			return fallback
		})
		assert.Equal(t, 42, got.Get())
		assert.False(t, called)

		assert.Equal(t, 7, Failure[int](errBoom).OrElseFunc(func() Try[int] { return fallback }).Get())
	})

	t.Run("FuncPanicBecomesFailure", func(t *testing.T) {
		got := Failure[int](errBoom).OrElseFunc(func() Try[int] { panic("kaput") })
		assert.True(t, got.IsFailure())
	})
}

func TestTryMap(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		tr := MapTry(Success(42), Function1[int, string](strconv.Itoa))
		assert.Equal(t, "42", tr.Get())
	})

	t.Run("FailurePropagates", func(t *testing.T) {
		tr := MapTry(Failure[int](errBoom), Function1[int, string](strconv.Itoa))
		assert.Equal(t, errBoom, tr.GetError())
	})

	t.Run("MapperPanicBecomesFailure", func(t *testing.T) {
		tr := Success(42).Map(func(int) int { panic(errBoom) })
		assert.ErrorIs(t, tr.GetError(), errBoom)
	})

	t.Run("NilMapperOnlyRequiredOnSuccess", func(t *testing.T) {
		assert.Panics(t, func() { MapTry[int, int](Success(42), nil) })
		assert.NotPanics(t, func() { MapTry[int, int](Failure[int](errBoom), nil) })
	})
}

func TestTryMapFailure(t *testing.T) {
	wrap := Function1[error, error](func(err error) error {
		return errors.New("wrapped: " + err.Error())
	})

	assert.Equal(t, "wrapped: boom", Failure[int](errBoom).MapFailure(wrap).GetError().Error())
	assert.Equal(t, 42, Success(42).MapFailure(wrap).Get())

	t.Run("MapperPanicBecomesFailure", func(t *testing.T) {
		tr := Failure[int](errBoom).MapFailure(func(error) error { panic("kaput") })
		assert.True(t, tr.IsFailure())
		var pe *fnerr.PanicError
		assert.ErrorAs(t, tr.GetError(), &pe)
	})
}

func TestTryFlatMap(t *testing.T) {
	parse := func(s string) Try[int] {
		return Wrap(strconv.Atoi(s))
	}

	assert.Equal(t, 42, FlatMapTry(Success("42"), parse).Get())
	assert.True(t, FlatMapTry(Success("x"), parse).IsFailure())
	assert.Equal(t, errBoom, FlatMapTry(Failure[string](errBoom), parse).GetError())
}

func TestTryRecover(t *testing.T) {
	t.Run("Recover", func(t *testing.T) {
		got := Failure[int](errBoom).Recover(func(error) int { return 7 })
		assert.Equal(t, 7, got.Get())

		assert.Equal(t, 42, Success(42).Recover(func(error) int { return 7 }).Get())
	})

	t.Run("RecoverPanicBecomesFailure", func(t *testing.T) {
		got := Failure[int](errBoom).Recover(func(error) int { panic("kaput") })
		assert.True(t, got.IsFailure())
	})

	t.Run("RecoverWith", func(t *testing.T) {
		got := Failure[int](errBoom).RecoverWith(func(err error) Try[int] {
			return Failure[int](errors.New("still: " + err.Error()))
		})
		assert.Equal(t, "still: boom", got.GetError().Error())
	})
}

func TestTryTransform(t *testing.T) {
	onFailure := Function1[error, Try[string]](func(err error) Try[string] {
		return Success("recovered:" + err.Error())
	})
	onSuccess := Function1[int, Try[string]](func(n int) Try[string] {
		return Success("ok:" + strconv.Itoa(n))
	})

	assert.Equal(t, "ok:42", TransformTry(Success(42), onFailure, onSuccess).Get())
	assert.Equal(t, "recovered:boom", TransformTry(Failure[int](errBoom), onFailure, onSuccess).Get())

	t.Run("BranchPanicBecomesFailure", func(t *testing.T) {
		got := TransformTry(Success(42), onFailure, func(int) Try[string] { panic("kaput") })
		assert.True(t, got.IsFailure())
	})

	t.Run("SameTypeMethod", func(t *testing.T) {
		got := Success(42).Transform(
			func(error) Try[int] { return Success(0) },
			func(n int) Try[int] { return Success(n + 1) },
		)
		assert.Equal(t, 43, got.Get())
	})
}

func TestTryFold(t *testing.T) {
	onFailure := Function1[error, string](func(err error) string { return "err:" + err.Error() })
	onSuccess := Function1[int, string](func(n int) string { return "ok:" + strconv.Itoa(n) })

	assert.Equal(t, "ok:42", FoldTry(Success(42), onFailure, onSuccess))
	assert.Equal(t, "err:boom", FoldTry(Failure[int](errBoom), onFailure, onSuccess))

	t.Run("SuccessBranchPanicFallsBackToOnFailure", func(t *testing.T) {
		got := FoldTry(Success(42), onFailure, func(int) string { panic(errBoom) })
		assert.Equal(t, "err:boom", got)
	})

	t.Run("OnFailureAlwaysRequired", func(t *testing.T) {
		assert.Panics(t, func() { FoldTry(Success(42), nil, onSuccess) })
	})
}

func TestTryAp(t *testing.T) {
	mergeErrors := BinaryOperator[error](func(a, b error) error {
		return errors.New(a.Error() + "; " + b.Error())
	})
	sumValues := BinaryOperator[int](func(a, b int) int { return a + b })

	t.Run("BothSuccess", func(t *testing.T) {
		got := Success(11).Ap(Success(19), mergeErrors, sumValues)
		assert.Equal(t, 30, got.Get())
	})

	t.Run("BothFailure", func(t *testing.T) {
		got := Failure[int](errors.New("a")).Ap(Failure[int](errors.New("b")), mergeErrors, sumValues)
		assert.Equal(t, "a; b", got.GetError().Error())
	})

	t.Run("MixedFailureWins", func(t *testing.T) {
		failed := Failure[int](errBoom)
		assert.Equal(t, errBoom, Success(11).Ap(failed, mergeErrors, sumValues).GetError())
		assert.Equal(t, errBoom, failed.Ap(Success(11), mergeErrors, sumValues).GetError())
	})

	t.Run("MergePanicBecomesFailure", func(t *testing.T) {
		got := Success(11).Ap(Success(19), mergeErrors, func(int, int) int { panic("kaput") })
		assert.True(t, got.IsFailure())
	})
}

func TestTryConversions(t *testing.T) {
	assert.Equal(t, 42, Success(42).ToEither().Get())
	assert.Equal(t, errBoom, Failure[int](errBoom).ToEither().GetLeft())

	assert.Equal(t, Some(42), Success(42).ToOption())
	assert.Equal(t, None[int](), Failure[int](errBoom).ToOption())

	assert.Equal(t, 42, Success(42).ToValidation().Get())
	assert.Equal(t, []error{errBoom}, Failure[int](errBoom).ToValidation().Errors())
}

func TestTryCombine(t *testing.T) {
	mergeErrors := BinaryOperator[error](func(a, b error) error {
		return errors.New(a.Error() + "; " + b.Error())
	})
	sumValues := BinaryOperator[int](func(a, b int) int { return a + b })

	t.Run("AllSuccess", func(t *testing.T) {
		got := Combine(mergeErrors, sumValues, Success(1), Success(2), Success(3))
		assert.Equal(t, 6, got.Get())
	})

	t.Run("AccumulatesFailures", func(t *testing.T) {
		got := Combine(mergeErrors, sumValues,
			Success(1), Failure[int](errors.New("a")), Failure[int](errors.New("b")))
		assert.Equal(t, "a; b", got.GetError().Error())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, Combine(mergeErrors, sumValues).Get())
	})

	t.Run("Single", func(t *testing.T) {
		assert.Equal(t, 5, Combine(nil, nil, Success(5)).Get())
	})
}

func TestTryCombineGetFirstFailure(t *testing.T) {
	sumValues := BinaryOperator[int](func(a, b int) int { return a + b })

	t.Run("AllSuccess", func(t *testing.T) {
		got := CombineGetFirstFailure(sumValues,
			func() Try[int] { return Success(1) },
			func() Try[int] { return Success(2) },
			func() Try[int] { return Success(3) },
		)
		assert.Equal(t, 6, got.Get())
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		thirdCalled := false
		got := CombineGetFirstFailure(sumValues,
			func() Try[int] { return Success(1) },
			func() Try[int] { return Failure[int](errBoom) },
			func() Try[int] { thirdCalled = true; return Success(3) },
		)
		assert.Equal(t, errBoom, got.GetError())
		assert.False(t, thirdCalled)
	})

	t.Run("SupplierPanicBecomesFailure", func(t *testing.T) {
		got := CombineGetFirstFailure(sumValues,
			func() Try[int] { panic("kaput") },
		)
		assert.True(t, got.IsFailure())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, 0, CombineGetFirstFailure(sumValues).Get())
	})

	t.Run("NilMergerOnlyRequiredWhenTwoSuccessesMeet", func(t *testing.T) {
		assert.Equal(t, 5, CombineGetFirstFailure[int](nil, func() Try[int] { return Success(5) }).Get())
		assert.Equal(t, errBoom, CombineGetFirstFailure[int](nil,
			func() Try[int] { return Success(1) },
			func() Try[int] { return Failure[int](errBoom) },
		).GetError())
		assert.Panics(t, func() {
			CombineGetFirstFailure[int](nil,
				func() Try[int] { return Success(1) },
				func() Try[int] { return Success(2) },
			)
		})
	})
}
