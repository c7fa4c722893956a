// Package set provides hash-based and sorted set implementations keyed by the
// hashing, compare and sortable contracts.
package set

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/orderedfloat/compare"
	"github.com/amp-labs/orderedfloat/hashing"
	"github.com/amp-labs/orderedfloat/sortable"
)

// ErrHashCollision is returned when a hashing collision is detected.
// Specifically this refers to two different (non-equal) objects
// that have the same hashing value.
var ErrHashCollision = errors.New("hashing collision")

// Collectable is an interface that combines the Hashable and
// Comparable interfaces. This is useful for objects that need
// to be stored in a Set, where uniqueness is determined by
// the hashing value, and collisions are resolved by comparing
// the objects.
type Collectable[T any] interface {
	hashing.Hashable
	compare.Comparable[T]
}

// A Set is a collection of unique elements. For sets created with NewSet,
// uniqueness is determined by the HashFunc provided when the Set is created,
// as well as how the object has implemented the Hashable and Comparable
// interfaces; if a collision is detected, an error is returned. Sets created
// with NewRedBlackTreeSet decide uniqueness by ordering alone and never fail.
type Set[T any] interface {
	// AddAll adds multiple elements to the set. Returns an error if any element
	// causes a hash collision or if hashing fails.
	AddAll(elements ...T) error

	// Add adds a single element to the set. Returns an error if the element
	// causes a hash collision or if hashing fails. If an equal element already
	// exists in the set, the set is unchanged and no error is returned.
	Add(element T) error

	// Remove removes an element from the set. Returns an error if hashing fails.
	// If the element is not in the set, no error is returned.
	Remove(element T) error

	// Clear removes all elements from the set.
	Clear()

	// Contains checks if an element exists in the set. Returns an error if
	// hashing fails or a collision is detected.
	Contains(element T) (bool, error)

	// Size returns the number of elements in the set.
	Size() int

	// Entries returns all elements in the set as a slice. Hash sets make no
	// order guarantee; a SortedSet returns them ascending.
	Entries() []T

	// Seq iterates over the elements in the same order as Entries.
	Seq() iter.Seq[T]

	// Union returns a new set containing all elements from both sets. Returns an error
	// if any element causes a hash collision or if hashing fails.
	Union(other Set[T]) (Set[T], error)

	// Intersection returns a new set containing only elements present in both sets.
	// Returns an error if any element causes a hash collision or if hashing fails.
	Intersection(other Set[T]) (Set[T], error)
}

type setImpl[T Collectable[T]] struct {
	hash     hashing.HashFunc
	elements map[string]T
}

// NewSet creates a new Set with the provided hash function.
// The hash function is used to determine uniqueness of elements.
func NewSet[T Collectable[T]](hash hashing.HashFunc) Set[T] {
	return &setImpl[T]{
		hash:     hash,
		elements: make(map[string]T),
	}
}

func (s *setImpl[T]) AddAll(elements ...T) error {
	for _, elem := range elements {
		if err := s.Add(elem); err != nil {
			return err
		}
	}

	return nil
}

func (s *setImpl[T]) Add(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok {
		if compare.Equals(prev, element) {
			return nil
		}

		return fmt.Errorf("%w: digest %s", ErrHashCollision, hashVal)
	}

	s.elements[hashVal] = element

	return nil
}

func (s *setImpl[T]) Clear() {
	s.elements = make(map[string]T)
}

func (s *setImpl[T]) Remove(element T) error {
	hashVal, err := s.hash(element)
	if err != nil {
		return err
	}

	prev, ok := s.elements[hashVal]
	if ok && compare.Equals(prev, element) {
		delete(s.elements, hashVal)
	}

	return nil
}

func (s *setImpl[T]) Contains(element T) (bool, error) {
	hashVal, err := s.hash(element)
	if err != nil {
		return false, err
	}

	prev, ok := s.elements[hashVal]
	if !ok {
		return false, nil
	}

	if !compare.Equals(prev, element) {
		return false, fmt.Errorf("%w: digest %s", ErrHashCollision, hashVal)
	}

	return true, nil
}

func (s *setImpl[T]) Size() int {
	return len(s.elements)
}

func (s *setImpl[T]) Entries() []T {
	items := make([]T, 0, len(s.elements))
	for _, item := range s.elements {
		items = append(items, item)
	}

	return items
}

func (s *setImpl[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.elements {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *setImpl[T]) Union(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	if err := ns.AddAll(s.Entries()...); err != nil {
		return nil, err
	}

	if err := ns.AddAll(other.Entries()...); err != nil {
		return nil, err
	}

	return ns, nil
}

func (s *setImpl[T]) Intersection(other Set[T]) (Set[T], error) {
	ns := NewSet[T](s.hash)

	for _, item := range s.Entries() {
		if contains, err := other.Contains(item); err != nil {
			return nil, err
		} else if contains {
			if err := ns.Add(item); err != nil {
				return nil, err
			}
		}
	}

	return ns, nil
}

// SortedSet is a Set that iterates in ascending order and can report its
// smallest and largest members.
type SortedSet[T any] interface {
	Set[T]

	// Min returns the smallest element, or false if the set is empty.
	Min() (T, bool)

	// Max returns the largest element, or false if the set is empty.
	Max() (T, bool)
}

// SortedEntries returns the elements of any set in ascending order.
// It is the deterministic counterpart of Entries for Sortable elements.
func SortedEntries[T sortable.Sortable[T]](s Set[T]) []T {
	items := s.Entries()

	slices.SortFunc(items, sortable.Func[T])

	return items
}
