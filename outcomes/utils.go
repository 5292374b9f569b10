package outcomes

// Partition splits a slice of Outcomes into the success values and error values they contain.
// A Partial contributes to both slices.
func Partition[T any, E any](os []Outcome[T, E]) ([]T, []E) {
	vals := make([]T, 0, len(os))
	errs := make([]E, 0, len(os))

	for _, o := range os {
		if o.HasVal() {
			vals = append(vals, o.val)
		}
		if o.HasErr() {
			errs = append(errs, o.err)
		}
	}

	return vals, errs
}

// Collect combines a slice of Outcomes into a single Outcome over the partitioned values.
// The result is a Success if no Outcome carried an error, a Failure if none carried a
// success value, and a Partial otherwise. An empty slice yields an empty Success.
func Collect[T any, E any](os []Outcome[T, E]) Outcome[[]T, []E] {
	vals, errs := Partition(os)

	switch {
	case len(errs) == 0:
		return Success[[]T, []E](vals)
	case len(vals) == 0:
		return Failure[[]T](errs)
	default:
		return Partial(vals, errs)
	}
}
