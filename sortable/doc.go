// Package sortable defines the [Sortable] interface used as the key contract
// by ordered collections such as [github.com/amp-labs/orderedfloat/set.NewRedBlackTreeSet].
//
// # Overview
//
// Sortable extends [github.com/amp-labs/orderedfloat/compare.Comparable] with a
// LessThan method, giving both equality and ordering. The two must agree:
// values that are neither less nor greater than each other must be Equals.
//
// Native floats cannot satisfy this contract because NaN is unordered and
// unequal to itself. Use [github.com/amp-labs/orderedfloat/orderedfloat.OrderedFloat]
// for float keys:
//
//	s := set.NewRedBlackTreeSet[orderedfloat.Float64]()
//	_ = s.Add(orderedfloat.Float64Of(math.NaN()))
//	_ = s.Add(orderedfloat.Float64Of(1))
//	// Iterating yields: 1, NaN
//
// # Adapters
//
// [Func] turns any Sortable into the three-way comparison expected by the
// slices package:
//
//	slices.SortFunc(keys, sortable.Func[MyKey])
package sortable
