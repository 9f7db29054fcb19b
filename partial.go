package fnkit

import "martianoff/fnkit/fnerr"

// PartialFunction pairs a domain test with a mapping that is only
// contractually meaningful inside that domain. Apply performs no membership
// check; callers either test IsDefinedAt first or go through ApplyOrElse,
// which inspects membership and dispatches in one step.
//
// The zero value (nil mapper) represents an absent PartialFunction and is
// only legal as the OrElse default.
type PartialFunction[T, R any] struct {
	verifier Predicate1[T]
	mapper   Function1[T, R]
}

// PartialOf builds a PartialFunction from a domain test and a mapping. The
// mapper must be provided; a nil verifier defaults to always-true, making
// the function total.
func PartialOf[T, R any](verifier Predicate1[T], mapper Function1[T, R]) PartialFunction[T, R] {
	if mapper == nil {
		panic(fnerr.NewArgument("PartialOf: mapper must be provided"))
	}
	if verifier == nil {
		verifier = AlwaysTrue1[T]()
	}
	return PartialFunction[T, R]{verifier: verifier, mapper: mapper}
}

// PartialIdentity returns the PartialFunction defined everywhere that maps
// every value to itself.
func PartialIdentity[T any]() PartialFunction[T, T] {
	return PartialOf(AlwaysTrue1[T](), Identity[T]())
}

// IsDefinedAt reports whether t is inside the domain. On a composed
// PartialFunction this evaluates the upstream mapper, so it is not free of
// side effects when the mapper has any.
func (pf PartialFunction[T, R]) IsDefinedAt(t T) bool {
	return pf.verifier(t)
}

// Apply maps t unconditionally. Outside the domain the result is undefined;
// no guard is enforced here.
func (pf PartialFunction[T, R]) Apply(t T) R {
	return pf.mapper(t)
}

// ApplyOrElse maps t when it is inside the domain and otherwise falls back
// to defaultFn, which is only required for values outside the domain.
func (pf PartialFunction[T, R]) ApplyOrElse(t T, defaultFn Function1[T, R]) R {
	if pf.IsDefinedAt(t) {
		return pf.Apply(t)
	}
	if defaultFn == nil {
		panic(fnerr.NewArgument("PartialFunction.ApplyOrElse: defaultFn must be provided"))
	}
	return defaultFn(t)
}

// OrElse widens the domain to the union of both domains, dispatching to pf
// first and to defaultPf only where pf is undefined. The zero-value
// PartialFunction as defaultPf behaves as pf alone.
func (pf PartialFunction[T, R]) OrElse(defaultPf PartialFunction[T, R]) PartialFunction[T, R] {
	if defaultPf.mapper == nil {
		return pf
	}
	return PartialFunction[T, R]{
		verifier: pf.verifier.Or(defaultPf.verifier),
		mapper: func(t T) R {
			if pf.IsDefinedAt(t) {
				return pf.Apply(t)
			}
			return defaultPf.Apply(t)
		},
	}
}

// Lift converts the PartialFunction to a total function returning an
// Option: Some inside the domain, None outside.
func (pf PartialFunction[T, R]) Lift() Function1[T, Option[R]] {
	return func(t T) Option[R] {
		if pf.IsDefinedAt(t) {
			return Some(pf.Apply(t))
		}
		return None[R]()
	}
}

// AndThenPartialFunc pipes the mapping through a plain function, keeping
// the domain unchanged.
func AndThenPartialFunc[T, R, U any](pf PartialFunction[T, R], after Function1[R, U]) PartialFunction[T, U] {
	if after == nil {
		panic(fnerr.NewArgument("AndThenPartialFunc: after must be provided"))
	}
	return PartialFunction[T, U]{
		verifier: pf.verifier,
		mapper: func(t T) U {
			return after(pf.mapper(t))
		},
	}
}

// AndThenPartial chains two PartialFunctions. The composed domain requires
// pf to be defined at t and after to be defined at pf's result, so the
// domain test evaluates pf's mapper.
func AndThenPartial[T, R, U any](pf PartialFunction[T, R], after PartialFunction[R, U]) PartialFunction[T, U] {
	if after.mapper == nil {
		panic(fnerr.NewArgument("AndThenPartial: after must be provided"))
	}
	return PartialFunction[T, U]{
		verifier: func(t T) bool {
			return pf.IsDefinedAt(t) && after.IsDefinedAt(pf.Apply(t))
		},
		mapper: func(t T) U {
			return after.Apply(pf.Apply(t))
		},
	}
}

// ComposePartialFunc applies a plain function before pf; the composed
// domain tests pf on before's result.
func ComposePartialFunc[V, T, R any](pf PartialFunction[T, R], before Function1[V, T]) PartialFunction[V, R] {
	if before == nil {
		panic(fnerr.NewArgument("ComposePartialFunc: before must be provided"))
	}
	return PartialFunction[V, R]{
		verifier: func(v V) bool {
			return pf.IsDefinedAt(before(v))
		},
		mapper: func(v V) R {
			return pf.Apply(before(v))
		},
	}
}

// ComposePartial applies another PartialFunction before pf. The composed
// domain requires before to be defined at v and pf to be defined at
// before's result.
func ComposePartial[V, T, R any](pf PartialFunction[T, R], before PartialFunction[V, T]) PartialFunction[V, R] {
	if before.mapper == nil {
		panic(fnerr.NewArgument("ComposePartial: before must be provided"))
	}
	return PartialFunction[V, R]{
		verifier: func(v V) bool {
			return before.IsDefinedAt(v) && pf.IsDefinedAt(before.Apply(v))
		},
		mapper: func(v V) R {
			return pf.Apply(before.Apply(v))
		},
	}
}
