package orderedfloat

import (
	"math"
	"testing"

	"github.com/amp-labs/orderedfloat/compare"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var negZero = math.Copysign(0, -1)

// nan64s are distinct NaN bit patterns: sign, quiet bit and payload vary.
var nan64s = []float64{
	math.NaN(),
	math.Float64frombits(0xfff8000000000000),
	math.Float64frombits(0x7ff800000000dead),
	math.Float64frombits(0xfff0000000000001),
	math.Float64frombits(0x7fffffffffffffff),
}

var nan32s = []float32{
	float32(math.NaN()),
	math.Float32frombits(0xffc00000),
	math.Float32frombits(0x7fc0dead),
	math.Float32frombits(0x7fffffff),
}

// samples64 covers zeros, NaNs, infinities, normals, subnormals and negatives.
func samples64() []Float64 {
	values := []float64{
		0, negZero,
		math.Inf(1), math.Inf(-1),
		1, -1, 5, -5, 0.1, -0.1,
		math.MaxFloat64, -math.MaxFloat64,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
		2.2250738585072014e-308,
	}

	return Wrap(append(values, nan64s...))
}

func samples32() []Float32 {
	values := []float32{
		0, float32(negZero),
		float32(math.Inf(1)), float32(math.Inf(-1)),
		1, -1, 5, -5, 0.1, -0.1,
		math.MaxFloat32, -math.MaxFloat32,
		math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
	}

	return Wrap(append(values, nan32s...))
}

// bitExact compares wrapped floats by their stored bit pattern.
var bitExact = cmp.Comparer(func(a, b Float64) bool {
	return math.Float64bits(a.Value()) == math.Float64bits(b.Value())
})

func TestEquals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        float64
		b        float64
		expected bool
	}{
		{name: "NaN and NaN", a: math.NaN(), b: math.NaN(), expected: true},
		{name: "NaN and negative NaN", a: nan64s[0], b: nan64s[1], expected: true},
		{name: "NaN and number", a: math.NaN(), b: 5, expected: false},
		{name: "number and NaN", a: 5, b: math.NaN(), expected: false},
		{name: "NaN and infinity", a: math.NaN(), b: math.Inf(1), expected: false},
		{name: "positive and negative zero", a: 0, b: negZero, expected: true},
		{name: "equal numbers", a: 1.5, b: 1.5, expected: true},
		{name: "different numbers", a: 1.5, b: 2.5, expected: false},
		{name: "infinities", a: math.Inf(1), b: math.Inf(1), expected: true},
		{name: "opposite infinities", a: math.Inf(1), b: math.Inf(-1), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a, b := Float64Of(tt.a), Float64Of(tt.b)

			assert.Equal(t, tt.expected, a.Equals(b))
			assert.Equal(t, tt.expected, b.Equals(a))
			assert.Equal(t, tt.expected, Equal(a, b))
		})
	}
}

func TestEquals_NaNReflexive(t *testing.T) {
	t.Parallel()

	for _, raw := range nan64s {
		assert.NotEqual(t, raw, raw) //nolint:testifylint

		f := Float64Of(raw)
		assert.True(t, f.Equals(f), "%#x", math.Float64bits(raw))
	}

	for _, raw := range nan32s {
		f := Float32Of(raw)
		assert.True(t, f.Equals(f), "%#x", math.Float32bits(raw))
	}
}

func TestZeroUnification(t *testing.T) {
	t.Parallel()

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		pos, neg := Float64Of(0), Float64Of(negZero)

		assert.True(t, pos.Equals(neg))
		assert.Equal(t, compare.Equal, pos.Compare(neg))
		assert.Equal(t, pos.Hash(), neg.Hash())
		assert.Equal(t, pos.Key(), neg.Key())
		assert.Equal(t, uint64(0), neg.Key())
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		pos, neg := Float32Of(0), Float32Of(float32(negZero))

		assert.True(t, pos.Equals(neg))
		assert.Equal(t, pos.Hash(), neg.Hash())
		assert.Equal(t, pos.Key(), neg.Key())
	})
}

func TestNaNHashUnification(t *testing.T) {
	t.Parallel()

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		want := Float64Of(math.NaN())
		for _, raw := range nan64s {
			f := Float64Of(raw)
			assert.Equal(t, want.Hash(), f.Hash(), "%#x", math.Float64bits(raw))
			assert.Equal(t, canonicalNaN64, f.Key())
		}
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		want := Float32Of(float32(math.NaN()))
		for _, raw := range nan32s {
			f := Float32Of(raw)
			assert.Equal(t, want.Hash(), f.Hash(), "%#x", math.Float32bits(raw))
			assert.Equal(t, uint64(canonicalNaN32), f.Key())
		}
	})
}

func TestHashEqualityConsistency(t *testing.T) {
	t.Parallel()

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		checkHashConsistency(t, samples64())
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		checkHashConsistency(t, samples32())
	})
}

func checkHashConsistency[T Float](t *testing.T, samples []OrderedFloat[T]) {
	t.Helper()

	for _, a := range samples {
		for _, b := range samples {
			if !a.Equals(b) {
				assert.NotEqual(t, a.Key(), b.Key(), "%v vs %v", a.Value(), b.Value())

				continue
			}

			assert.Equal(t, a.Key(), b.Key(), "%v vs %v", a.Value(), b.Value())
			assert.Equal(t, a.Hash(), b.Hash(), "%v vs %v", a.Value(), b.Value())
			assert.Equal(t, hashBytes(t, a), hashBytes(t, b), "%v vs %v", a.Value(), b.Value())
		}
	}
}

func TestTotalOrder(t *testing.T) {
	t.Parallel()

	t.Run("float64", func(t *testing.T) {
		t.Parallel()

		checkTotalOrder(t, samples64())
	})

	t.Run("float32", func(t *testing.T) {
		t.Parallel()

		checkTotalOrder(t, samples32())
	})
}

func checkTotalOrder[T Float](t *testing.T, samples []OrderedFloat[T]) {
	t.Helper()

	for _, a := range samples {
		for _, b := range samples {
			ab, ba := a.Compare(b), b.Compare(a)

			require.Contains(t, []compare.Ordering{compare.Less, compare.Equal, compare.Greater}, ab)
			assert.Equal(t, ab.Reverse(), ba, "antisymmetry %v %v", a.Value(), b.Value())
			assert.Equal(t, a.Equals(b), ab == compare.Equal, "equals/compare %v %v", a.Value(), b.Value())
			assert.Equal(t, ab == compare.Less, a.LessThan(b))

			for _, c := range samples {
				if ab != compare.Greater && b.Compare(c) != compare.Greater {
					assert.NotEqual(t, compare.Greater, a.Compare(c),
						"transitivity %v <= %v <= %v", a.Value(), b.Value(), c.Value())
				}
			}
		}
	}
}

func TestCompare_NaNGreatest(t *testing.T) {
	t.Parallel()

	nan := Float64Of(math.NaN())

	for _, f := range samples64() {
		if f.IsNaN() {
			assert.Equal(t, compare.Equal, nan.Compare(f))

			continue
		}

		assert.Equal(t, compare.Greater, nan.Compare(f), "%v", f.Value())
		assert.Equal(t, compare.Less, f.Compare(nan), "%v", f.Value())
	}
}

func TestSort_SampleSet(t *testing.T) {
	t.Parallel()

	want := Wrap([]float64{math.Inf(-1), -1, negZero, 0, 1, math.Inf(1), math.NaN()})

	inputs := [][]float64{
		{math.NaN(), 1, math.Inf(-1), 0, math.Inf(1), negZero, -1},
		{math.Inf(1), negZero, math.NaN(), -1, 0, 1, math.Inf(-1)},
		{negZero, 0, -1, 1, math.Inf(-1), math.Inf(1), math.NaN()},
	}

	for _, input := range inputs {
		got := Wrap(input)
		Sort(got)

		require.Len(t, got, len(want))

		for i := range want {
			assert.Equal(t, compare.Equal, want[i].Compare(got[i]), "position %d", i)
		}

		assert.True(t, got[len(got)-1].IsNaN())
	}
}

func TestScenario_NaNEqualsNaN(t *testing.T) {
	t.Parallel()

	raw := math.NaN()

	assert.False(t, raw == raw) //nolint:testifylint
	assert.True(t, Float64Of(raw).Equals(Float64Of(raw)))
}

func TestScenario_NaNGreaterThanFive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, compare.Greater, Float64Of(math.NaN()).Compare(Float64Of(5)))
	assert.Equal(t, 1, Cmp(Float32Of(float32(math.NaN())), Float32Of(5)))
}

func TestScenario_NaNSetSizeOne(t *testing.T) {
	t.Parallel()

	seen := make(map[uint64]Float64)

	for _, f := range []Float64{Float64Of(math.NaN()), Float64Of(math.NaN())} {
		seen[f.Key()] = f
	}

	assert.Len(t, seen, 1)
}

func TestScenario_SortMixed(t *testing.T) {
	t.Parallel()

	got := Wrap([]float64{math.NaN(), negZero, 1, 0, -1})
	Sort(got)

	// Sort is stable, so -0.0 stays ahead of +0.0 as in the input.
	want := Wrap([]float64{-1, negZero, 0, 1, math.NaN()})

	if diff := cmp.Diff(want, got, bitExact); diff != "" {
		t.Errorf("Sort() mismatch (-want +got):\n%s", diff)
	}
}

func TestValue_Unchanged(t *testing.T) {
	t.Parallel()

	t.Run("negative zero keeps its sign", func(t *testing.T) {
		t.Parallel()

		assert.True(t, math.Signbit(Float64Of(negZero).Value()))
	})

	t.Run("NaN payload is preserved", func(t *testing.T) {
		t.Parallel()

		raw := math.Float64frombits(0x7ff800000000dead)
		assert.Equal(t, uint64(0x7ff800000000dead), math.Float64bits(Float64Of(raw).Value()))
	})

	t.Run("zero value is positive zero", func(t *testing.T) {
		t.Parallel()

		var f Float64

		assert.False(t, math.Signbit(f.Value()))
		assert.True(t, f.Equals(Float64Of(0)))
	})

	t.Run("generic constructor", func(t *testing.T) {
		t.Parallel()

		assert.InDelta(t, 2.5, New(2.5).Value(), 0)
		assert.InDelta(t, float32(2.5), New(float32(2.5)).Value(), 0)
	})
}

func TestWrapUnwrap(t *testing.T) {
	t.Parallel()

	assert.Nil(t, Wrap[float64](nil))
	assert.Nil(t, Unwrap[float64](nil))

	raw := []float64{3, -1, 2}
	assert.Equal(t, raw, Unwrap(Wrap(raw)))
}

type namedFloat float64

func TestNamedFloatType(t *testing.T) {
	t.Parallel()

	a := New(namedFloat(math.NaN()))
	b := New(namedFloat(math.NaN()))

	assert.True(t, a.Equals(b))
	assert.Equal(t, canonicalNaN64, a.Key())
	assert.Equal(t, compare.Less, New(namedFloat(1)).Compare(a))
}
