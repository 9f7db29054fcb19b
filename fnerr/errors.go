package fnerr

import (
	"fmt"
	"strings"
)

// ErrorKind defines the category of the error.
type ErrorKind string

const (
	KindArgument ErrorKind = "ArgumentError"
	KindState    ErrorKind = "StateError"
	KindPanic    ErrorKind = "PanicError"
)

// KindedError is the interface for all fnkit-related errors.
type KindedError interface {
	error
	Kind() ErrorKind
}

// ArgumentError reports an invalid argument passed to a factory or
// combinator, typically a nil mapper or predicate where one is required.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("[%s] %s", KindArgument, e.Msg)
}

func (e *ArgumentError) Kind() ErrorKind {
	return KindArgument
}

// StateError reports an accessor called on the wrong variant, such as
// Get on a Left or GetError on a Success.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("[%s] %s", KindState, e.Msg)
}

func (e *StateError) Kind() ErrorKind {
	return KindState
}

// PanicError wraps a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("[%s] %v", KindPanic, e.Value)
}

func (e *PanicError) Kind() ErrorKind {
	return KindPanic
}

// MultiError collects multiple errors into one.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Kind() ErrorKind {
	if len(m.Errors) > 0 {
		if ke, ok := m.Errors[0].(KindedError); ok {
			return ke.Kind()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is/errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// NewArgument creates a new ArgumentError.
func NewArgument(msg string) *ArgumentError {
	return &ArgumentError{Msg: msg}
}

// NewState creates a new StateError.
func NewState(msg string) *StateError {
	return &StateError{Msg: msg}
}

// FromPanic normalizes a recovered panic value to an error. Values that
// already implement error are returned unchanged; anything else is wrapped
// in a PanicError.
func FromPanic(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &PanicError{Value: v}
}
