package orderedfloat

import (
	"encoding/binary"
	"hash"
	"math"
	"unsafe"

	"github.com/amp-labs/orderedfloat/hashing"
	"github.com/zeebo/xxh3"
)

// Canonical bit patterns written in place of any NaN.
const (
	canonicalNaN32 uint32 = 0x7fc00000
	canonicalNaN64 uint64 = 0x7ff8000000000000
)

// rawBits returns the IEEE-754 bit pattern of v zero-extended to 64 bits,
// along with the payload width in bytes.
func rawBits[T Float](v T) (uint64, int) {
	if unsafe.Sizeof(v) == 4 {
		return uint64(math.Float32bits(float32(v))), 4
	}

	return math.Float64bits(float64(v)), 8
}

// canonical maps f to the bit pattern of its equivalence class: one pattern
// for every NaN, +0.0 for both zeros, the raw bits otherwise.
func (f OrderedFloat[T]) canonical() (uint64, int) {
	bits, width := rawBits(f.value)

	switch {
	case f.IsNaN():
		if width == 4 {
			return uint64(canonicalNaN32), width
		}

		return canonicalNaN64, width
	case f.value == 0:
		return 0, width
	default:
		return bits, width
	}
}

// Key returns a canonical uint64 for f. Two values have the same Key exactly
// when they are Equals, which makes Key usable as a built-in map key.
func (f OrderedFloat[T]) Key() uint64 {
	key, _ := f.canonical()

	return key
}

// UpdateHash writes the canonical bit pattern of f to h: 4 big-endian bytes
// for 32-bit payloads, 8 for 64-bit ones.
func (f OrderedFloat[T]) UpdateHash(h hash.Hash) error {
	key, width := f.canonical()
	if width == 4 {
		return hashing.HashableUint32(uint32(key)).UpdateHash(h)
	}

	return hashing.HashableUint64(key).UpdateHash(h)
}

// Hash returns the XXH3 digest of the bytes UpdateHash would write.
func (f OrderedFloat[T]) Hash() uint64 {
	var buf [8]byte

	key, width := f.canonical()
	if width == 4 {
		binary.BigEndian.PutUint32(buf[:4], uint32(key))
	} else {
		binary.BigEndian.PutUint64(buf[:], key)
	}

	return xxh3.Hash(buf[:width])
}
