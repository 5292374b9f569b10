// Package options provides an Option type representing a value that may be absent.
package options

type Option[T any] struct {
	val     T
	present bool
}

// Some creates an Option containing the provided value.
func Some[T any](val T) Option[T] {
	return Option[T]{val: val, present: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the contained value and whether it was present.
// If the Option is empty the zero value of T is returned.
func (o Option[T]) Get() (T, bool) {
	return o.val, o.present
}

// OrElse returns the contained value if present, otherwise the provided fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.val
	}
	return fallback
}

// Map applies the provided function to the contained value if present.
func Map[T any, U any](o Option[T], f func(T) U) Option[U] {
	if !o.present {
		return None[U]()
	}
	return Some(f(o.val))
}
