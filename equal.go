package fnkit

import "reflect"

// Equatable defines custom equality semantics for a type. Containers that
// compare wrapped values (Option.Equal) probe for it before falling back to
// structural equality.
type Equatable[T any] interface {
	Equal(other T) bool
}

// equalValues compares two wrapped values, delegating to the value's own
// Equal when it implements Equatable, else reflect.DeepEqual.
func equalValues[T any](a, b T) bool {
	if e, ok := any(a).(Equatable[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
