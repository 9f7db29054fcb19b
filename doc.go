// Package fnkit provides functional value types for Go: Option, Either, Try
// and Validation containers, a PartialFunction abstraction, and bounded
// families of function and predicate wrappers (Function0..Function9,
// Predicate1..Predicate7, BinaryOperator).
//
// Every type is an immutable value; every combinator returns a fresh value
// and never mutates its receiver. Computation failures are data (Failure,
// Left, Invalid), never exceptions: any panic raised inside a guarded mapper
// invocation is recovered, normalized through fnerr.FromPanic, and converted
// into the failure variant of the result type. Argument-validation failures
// (a required mapper or predicate that is nil) panic with *fnerr.ArgumentError
// at the call site and are never recovered internally.
//
// Because Go methods cannot introduce new type parameters, type-changing
// combinators are package-level functions named after the type they operate
// on (MapOption, FlatMapEither, FoldTry, AndThenPartial, ...), while
// same-type combinators are methods.
//
// The higher-arity function, predicate and Try.OfN variants in *_gen.go are
// produced by cmd/fngen; edit the templates in internal/gen instead.
package fnkit

//go:generate go run martianoff/fnkit/cmd/fngen generate
