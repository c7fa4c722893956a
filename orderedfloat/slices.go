package orderedfloat

import (
	"slices"

	"github.com/amp-labs/orderedfloat/compare"
)

// Equal reports whether a and b are equal under OrderedFloat semantics.
func Equal[T Float](a, b OrderedFloat[T]) bool {
	return a.Equals(b)
}

// Cmp returns -1, 0 or +1 and is meant for slices.SortFunc,
// slices.BinarySearchFunc and the like.
func Cmp[T Float](a, b OrderedFloat[T]) int {
	return compare.Func(a, b)
}

// Sort sorts s in place, ascending, with NaN last. The sort is stable, so
// equal values such as -0.0 and +0.0 keep their relative order.
func Sort[T Float](s []OrderedFloat[T]) {
	slices.SortStableFunc(s, Cmp[T])
}

// Wrap returns a new slice with every element of values wrapped.
func Wrap[T Float](values []T) []OrderedFloat[T] {
	if values == nil {
		return nil
	}

	out := make([]OrderedFloat[T], len(values))
	for i, v := range values {
		out[i] = New(v)
	}

	return out
}

// Unwrap returns the raw values held by s.
func Unwrap[T Float](s []OrderedFloat[T]) []T {
	if s == nil {
		return nil
	}

	out := make([]T, len(s))
	for i, f := range s {
		out[i] = f.value
	}

	return out
}
