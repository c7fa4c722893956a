// Package orderedfloat provides [OrderedFloat], a wrapper that gives IEEE-754
// floats a total order and a total equality so they can be used as set and map
// keys and sorted deterministically.
//
// # Overview
//
// Native float comparison is a partial order: NaN is unequal to everything,
// itself included, and is neither less nor greater than any value. Any
// collection that relies on == or < misbehaves once a NaN gets in. OrderedFloat
// keeps the raw value untouched and changes only how it compares and hashes:
//
//   - every NaN bit pattern is equal to every other NaN
//   - +0.0 and -0.0 are equal
//   - NaN sorts after every non-NaN value, +Inf included
//   - everything else compares by its ordinary numeric value
//
// Equals, Compare and UpdateHash agree with each other: Compare returns
// [compare.Equal] exactly when Equals is true, and equal values always write
// the same bytes to a hash.
//
// # Usage
//
//	a := orderedfloat.Float64Of(math.NaN())
//	b := orderedfloat.Float64Of(math.NaN())
//	a.Equals(b)  // true
//	a.Compare(orderedfloat.Float64Of(5)) // compare.Greater
//
//	values := orderedfloat.Wrap([]float64{math.NaN(), -1, 0})
//	orderedfloat.Sort(values) // -1, 0, NaN
//
// OrderedFloat implements [github.com/amp-labs/orderedfloat/sortable.Sortable]
// and [github.com/amp-labs/orderedfloat/hashing.Hashable], so it plugs directly
// into the set package. [OrderedFloat.Key] returns a canonical uint64 that is a
// valid key for built-in Go maps; the floatmap package builds on it.
//
// # Thread Safety
//
// OrderedFloat is an immutable value type. All operations are pure and may be
// called concurrently without synchronization.
package orderedfloat
