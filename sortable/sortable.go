// Package sortable defines the key contract for ordered collections.
package sortable

import (
	"github.com/amp-labs/orderedfloat/compare"
)

// Sortable is implemented by types that can be kept in sorted collections.
// LessThan must be a strict weak order that agrees with Equals: for any a, b
// exactly one of a.LessThan(b), b.LessThan(a), a.Equals(b) holds.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Func adapts a Sortable type to the three-way comparison shape used by
// slices.SortFunc and slices.BinarySearchFunc.
func Func[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
