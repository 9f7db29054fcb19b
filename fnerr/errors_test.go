package fnerr_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"martianoff/fnkit/fnerr"
)

func TestArgumentError(t *testing.T) {
	err := fnerr.NewArgument("mapper must be provided")
	assert.Equal(t, fnerr.KindArgument, err.Kind())
	assert.Equal(t, "[ArgumentError] mapper must be provided", err.Error())
}

func TestStateError(t *testing.T) {
	err := fnerr.NewState("Try.GetError on Success")
	assert.Equal(t, fnerr.KindState, err.Kind())
	assert.Equal(t, "[StateError] Try.GetError on Success", err.Error())
}

func TestFromPanicError(t *testing.T) {
	orig := errors.New("boom")
	assert.Equal(t, orig, fnerr.FromPanic(orig))
	assert.ErrorIs(t, fnerr.FromPanic(orig), orig)
}

func TestFromPanicValue(t *testing.T) {
	err := fnerr.FromPanic("boom")
	var pe *fnerr.PanicError
	assert.ErrorAs(t, err, &pe)
	assert.Equal(t, "boom", pe.Value)
	assert.Equal(t, fnerr.KindPanic, pe.Kind())
	assert.Equal(t, "[PanicError] boom", err.Error())
}

func TestMultiError(t *testing.T) {
	e1 := fnerr.NewArgument("error 1")
	e2 := fnerr.NewArgument("error 2")
	multi := &fnerr.MultiError{Errors: []error{e1, e2}}

	assert.Equal(t, fnerr.KindArgument, multi.Kind())
	errMsg := multi.Error()
	assert.Contains(t, errMsg, "2 error(s) occurred:")
	assert.Contains(t, errMsg, "- [ArgumentError] error 1")
	assert.Contains(t, errMsg, "- [ArgumentError] error 2")
	assert.True(t, errors.Is(multi, e2))
}

func TestMultiErrorMixed(t *testing.T) {
	e1 := fnerr.NewState("state error")
	e2 := fnerr.NewArgument("argument error")
	multi := &fnerr.MultiError{Errors: []error{e1, e2}}

	assert.Equal(t, fnerr.KindState, multi.Kind())
}

func TestMultiErrorEmpty(t *testing.T) {
	multi := &fnerr.MultiError{Errors: []error{}}
	assert.Equal(t, fnerr.ErrorKind("MultiError"), multi.Kind())
	assert.True(t, strings.HasPrefix(multi.Error(), "0 error(s) occurred:"))
}
