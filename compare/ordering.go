package compare

// Ordering is the result of a three-way comparison. The underlying values
// match the convention of cmp.Compare, so an Ordering can be handed to
// slices.SortFunc and friends via Int.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String returns the name of the ordering.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Ordering(invalid)"
	}
}

// Int returns -1, 0 or +1.
func (o Ordering) Int() int {
	return int(o)
}

// Reverse flips Less and Greater.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Ordered is implemented by types that impose a total order on themselves.
// Compare must return Equal exactly when Equals returns true.
type Ordered[T any] interface {
	Comparable[T]

	Compare(other T) Ordering
}

// Func adapts an Ordered type to the func(a, b T) int shape expected by
// slices.SortFunc, slices.BinarySearchFunc and similar generic routines.
func Func[T Ordered[T]](a, b T) int {
	return a.Compare(b).Int()
}
