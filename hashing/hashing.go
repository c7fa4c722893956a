// Package hashing defines the Hashable contract and the digest functions
// used by hash-keyed collections.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"

	"github.com/OneOfOne/xxhash"
	"github.com/zeebo/xxh3"
)

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
// This lets us talk about hashing functions in a generic way.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents. Two values that are equal
// must write identical bytes, otherwise hash-keyed collections
// will treat them as distinct.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	return digest(sha256.New(), hashable)
}

// Xxh3 returns the 64-bit XXH3 hashing of the given Hashable
// as a hex-encoded string. It is much faster than Sha256 and is
// the better choice for in-memory sets.
func Xxh3(hashable Hashable) (string, error) {
	return digest(xxh3.New(), hashable)
}

// Xxhash64 returns the 64-bit XXH64 hashing of the given Hashable
// as a hex-encoded string.
func Xxhash64(hashable Hashable) (string, error) {
	return digest(xxhash.New64(), hashable)
}

func digest(h hash.Hash, hashable Hashable) (string, error) {
	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashableUint32 writes its value as 4 big-endian bytes.
type HashableUint32 uint32

func (u HashableUint32) UpdateHash(h hash.Hash) error {
	var buf [4]byte

	binary.BigEndian.PutUint32(buf[:], uint32(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint32) Equals(other HashableUint32) bool {
	return u == other
}

// HashableUint64 writes its value as 8 big-endian bytes.
type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(u))

	_, err := h.Write(buf[:])

	return err
}

func (u HashableUint64) Equals(other HashableUint64) bool {
	return u == other
}
