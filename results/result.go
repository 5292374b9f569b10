// Package results provides a binary result type holding either a success value or an error value.
package results

import "github.com/abevier/outcome/options"

type Result[T any, E any] struct {
	val    T
	err    E
	failed bool
}

// New creates a Result from a conventional value and error pair.
// A nil error produces a success, a non-nil error produces a failure.
func New[T any](val T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](val)
}

func Success[T any, E any](val T) Result[T, E] {
	return Result[T, E]{val: val}
}

func Failure[T any, E any](err E) Result[T, E] {
	return Result[T, E]{err: err, failed: true}
}

func (r Result[T, E]) IsSuccess() bool {
	return !r.failed
}

func (r Result[T, E]) IsFailure() bool {
	return r.failed
}

// Val returns the success value, or an empty option for a failure.
func (r Result[T, E]) Val() options.Option[T] {
	if r.failed {
		return options.None[T]()
	}
	return options.Some(r.val)
}

// Err returns the error value, or an empty option for a success.
func (r Result[T, E]) Err() options.Option[E] {
	if !r.failed {
		return options.None[E]()
	}
	return options.Some(r.err)
}
