package orderedfloat

import (
	"log/slog"
	"math"

	"github.com/amp-labs/orderedfloat/compare"
	"github.com/amp-labs/orderedfloat/hashing"
	"github.com/amp-labs/orderedfloat/sortable"
	"golang.org/x/exp/constraints"
)

// Float is the set of payload types OrderedFloat can wrap.
type Float interface {
	constraints.Float
}

// OrderedFloat wraps a float so that it is totally ordered and NaN equals NaN.
// The stored value is never modified; the zero value wraps +0.0.
type OrderedFloat[T Float] struct {
	value T
}

type (
	// Float32 is an OrderedFloat over float32.
	Float32 = OrderedFloat[float32]
	// Float64 is an OrderedFloat over float64.
	Float64 = OrderedFloat[float64]
)

// Compile-time checks that OrderedFloat satisfies the collection contracts.
var (
	_ compare.Ordered[Float64]   = Float64{}
	_ sortable.Sortable[Float64] = Float64{}
	_ hashing.Hashable           = Float64{}
	_ slog.LogValuer             = Float64{}
	_ compare.Ordered[Float32]   = Float32{}
	_ sortable.Sortable[Float32] = Float32{}
	_ hashing.Hashable           = Float32{}
	_ slog.LogValuer             = Float32{}
)

// New wraps v. Any bit pattern is accepted, infinities and NaN included.
func New[T Float](v T) OrderedFloat[T] {
	return OrderedFloat[T]{value: v}
}

// Float32Of wraps a float32.
func Float32Of(v float32) Float32 {
	return Float32{value: v}
}

// Float64Of wraps a float64.
func Float64Of(v float64) Float64 {
	return Float64{value: v}
}

// Value returns the wrapped float exactly as it was stored.
func (f OrderedFloat[T]) Value() T {
	return f.value
}

// IsNaN reports whether the wrapped value is any NaN.
func (f OrderedFloat[T]) IsNaN() bool {
	return math.IsNaN(float64(f.value))
}

// Equals is float equality, except that any NaN equals any other NaN.
// +0.0 and -0.0 are equal, as they are natively.
func (f OrderedFloat[T]) Equals(other OrderedFloat[T]) bool {
	fNaN, oNaN := f.IsNaN(), other.IsNaN()
	if fNaN || oNaN {
		return fNaN && oNaN
	}

	return f.value == other.value
}

// Compare orders f relative to other. NaN is greater than every non-NaN value
// and Equal to every NaN; the rest follows numeric order.
func (f OrderedFloat[T]) Compare(other OrderedFloat[T]) compare.Ordering {
	switch {
	case f.Equals(other):
		return compare.Equal
	case f.IsNaN():
		return compare.Greater
	case other.IsNaN():
		return compare.Less
	case f.value < other.value:
		return compare.Less
	default:
		return compare.Greater
	}
}

// LessThan reports whether f sorts strictly before other.
func (f OrderedFloat[T]) LessThan(other OrderedFloat[T]) bool {
	return f.Compare(other) == compare.Less
}

// LogValue implements slog.LogValuer so wrapped floats log as plain numbers.
func (f OrderedFloat[T]) LogValue() slog.Value {
	return slog.Float64Value(float64(f.value))
}
