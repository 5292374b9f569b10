// Package outcomes provides an Outcome which represents a success, a failure, or both at once.
// An Outcome generalizes the conventional binary result for computations that can produce a
// usable value alongside an error, such as a batch operation where some items succeeded.
// The Partial case collapses into a binary result under one of two policies: Lenient keeps
// the success value and discards the error, Strict keeps the error and discards the value.
package outcomes

import (
	"golang.org/x/exp/constraints"

	"github.com/abevier/outcome/options"
	"github.com/abevier/outcome/results"
)

type variant uint8

// Variant order is fixed: Success sorts before Partial, Partial before Failure.
// Compare relies on these values.
const (
	variantSuccess variant = iota
	variantPartial
	variantFailure
)

// Outcome holds a success value of type T, an error value of type E, or both.
// The zero value is a Success holding the zero value of T.
type Outcome[T any, E any] struct {
	variant variant
	val     T
	err     E
}

// Success creates an Outcome containing only a success value.
func Success[T any, E any](val T) Outcome[T, E] {
	return Outcome[T, E]{variant: variantSuccess, val: val}
}

// Failure creates an Outcome containing only an error value.
func Failure[T any, E any](err E) Outcome[T, E] {
	return Outcome[T, E]{variant: variantFailure, err: err}
}

// Partial creates an Outcome containing both a success value and an error value.
func Partial[T any, E any](val T, err E) Outcome[T, E] {
	return Outcome[T, E]{variant: variantPartial, val: val, err: err}
}

// New creates an Outcome from a conventional value and error pair.
// A nil error produces a Success, a non-nil error produces a Failure.
func New[T any](val T, err error) Outcome[T, error] {
	if err != nil {
		return Failure[T, error](err)
	}
	return Success[T, error](val)
}

// FromResult creates an Outcome from a binary result.
// A success maps to Success and a failure maps to Failure.
func FromResult[T any, E any](r results.Result[T, E]) Outcome[T, E] {
	if err, ok := r.Err().Get(); ok {
		return Failure[T](err)
	}
	val, _ := r.Val().Get()
	return Success[T, E](val)
}

// HasVal returns true if the Outcome contains a success value, i.e. it is a Success or a Partial.
func (o Outcome[T, E]) HasVal() bool {
	return o.variant != variantFailure
}

// HasErr returns true if the Outcome contains an error value, i.e. it is a Failure or a Partial.
func (o Outcome[T, E]) HasErr() bool {
	return o.variant != variantSuccess
}

// Ref returns a non-owning view of the Outcome with the same shape, holding pointers into o.
// The pointers may be used to mutate the contained values in place.
func Ref[T any, E any](o *Outcome[T, E]) Outcome[*T, *E] {
	switch o.variant {
	case variantFailure:
		return Failure[*T](&o.err)
	case variantPartial:
		return Partial(&o.val, &o.err)
	default:
		return Success[*T, *E](&o.val)
	}
}

// Split decomposes the Outcome into its success and error values.
// A Success yields (Some, None), a Failure yields (None, Some) and a Partial yields (Some, Some).
func (o Outcome[T, E]) Split() (options.Option[T], options.Option[E]) {
	switch o.variant {
	case variantFailure:
		return options.None[T](), options.Some(o.err)
	case variantPartial:
		return options.Some(o.val), options.Some(o.err)
	default:
		return options.Some(o.val), options.None[E]()
	}
}

// Lenient converts the Outcome to a binary result, favoring success:
// a Partial becomes a success and its error value is discarded.
func (o Outcome[T, E]) Lenient() results.Result[T, E] {
	if o.variant == variantFailure {
		return results.Failure[T](o.err)
	}
	return results.Success[T, E](o.val)
}

// LenientVal returns the success value when Lenient would yield a success.
func (o Outcome[T, E]) LenientVal() options.Option[T] {
	if o.variant == variantFailure {
		return options.None[T]()
	}
	return options.Some(o.val)
}

// LenientErr returns the error value when Lenient would yield a failure,
// which is only the case for a Failure.
func (o Outcome[T, E]) LenientErr() options.Option[E] {
	if o.variant == variantFailure {
		return options.Some(o.err)
	}
	return options.None[E]()
}

// Strict converts the Outcome to a binary result, favoring failure:
// a Partial becomes a failure and its success value is discarded.
func (o Outcome[T, E]) Strict() results.Result[T, E] {
	if o.variant == variantSuccess {
		return results.Success[T, E](o.val)
	}
	return results.Failure[T](o.err)
}

// StrictVal returns the success value when Strict would yield a success,
// which is only the case for a Success.
func (o Outcome[T, E]) StrictVal() options.Option[T] {
	if o.variant == variantSuccess {
		return options.Some(o.val)
	}
	return options.None[T]()
}

// StrictErr returns the error value when Strict would yield a failure.
func (o Outcome[T, E]) StrictErr() options.Option[E] {
	if o.variant == variantSuccess {
		return options.None[E]()
	}
	return options.Some(o.err)
}

// Map applies the provided function to the success value if present,
// leaving the error value untouched and preserving the shape of the Outcome.
func Map[T any, E any, U any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	switch o.variant {
	case variantFailure:
		return Failure[U](o.err)
	case variantPartial:
		return Partial(f(o.val), o.err)
	default:
		return Success[U, E](f(o.val))
	}
}

// MapErr applies the provided function to the error value if present,
// leaving the success value untouched and preserving the shape of the Outcome.
func MapErr[T any, E any, F any](o Outcome[T, E], f func(E) F) Outcome[T, F] {
	switch o.variant {
	case variantFailure:
		return Failure[T](f(o.err))
	case variantPartial:
		return Partial(o.val, f(o.err))
	default:
		return Success[T, F](o.val)
	}
}

// Equal returns true if both Outcomes have the same shape and equal contained values.
func Equal[T comparable, E comparable](a, b Outcome[T, E]) bool {
	if a.variant != b.variant {
		return false
	}

	switch a.variant {
	case variantFailure:
		return a.err == b.err
	case variantPartial:
		return a.val == b.val && a.err == b.err
	default:
		return a.val == b.val
	}
}

// Compare returns an integer comparing two Outcomes.
// Outcomes order by shape first, Success before Partial before Failure, and then
// by contained values: success value first, then error value.
func Compare[T constraints.Ordered, E constraints.Ordered](a, b Outcome[T, E]) int {
	if a.variant != b.variant {
		if a.variant < b.variant {
			return -1
		}
		return 1
	}

	switch a.variant {
	case variantFailure:
		return compareOrdered(a.err, b.err)
	case variantPartial:
		if c := compareOrdered(a.val, b.val); c != 0 {
			return c
		}
		return compareOrdered(a.err, b.err)
	default:
		return compareOrdered(a.val, b.val)
	}
}

func compareOrdered[V constraints.Ordered](x, y V) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
