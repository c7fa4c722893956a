package set

import (
	"iter"
	"slices"
	"sync"
)

// NewThreadSafeSet decorates s with a sync.RWMutex. Mutations take the write
// lock; lookups, Entries and Seq share the read lock. Wrapping an already
// thread-safe set returns it unchanged, and a nil set yields nil.
//
//	floats := set.NewThreadSafeSet(set.NewSet[orderedfloat.Float64](hashing.Xxh3))
//	go func() { _ = floats.Add(orderedfloat.Float64Of(math.NaN())) }()
func NewThreadSafeSet[T any](s Set[T]) Set[T] {
	if s == nil {
		return nil
	}

	if tss, ok := s.(*threadSafeSet[T]); ok {
		return tss
	}

	return &threadSafeSet[T]{internal: s}
}

type threadSafeSet[T any] struct {
	mutex    sync.RWMutex
	internal Set[T]
}

func (t *threadSafeSet[T]) AddAll(elements ...T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.AddAll(elements...)
}

func (t *threadSafeSet[T]) Add(element T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Add(element)
}

func (t *threadSafeSet[T]) Remove(element T) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	return t.internal.Remove(element)
}

func (t *threadSafeSet[T]) Clear() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.internal.Clear()
}

func (t *threadSafeSet[T]) Contains(element T) (bool, error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Contains(element)
}

func (t *threadSafeSet[T]) Size() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Size()
}

func (t *threadSafeSet[T]) Entries() []T {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return t.internal.Entries()
}

// Seq iterates over a snapshot taken under the read lock; the lock is not
// held while the caller consumes the sequence.
func (t *threadSafeSet[T]) Seq() iter.Seq[T] {
	return slices.Values(t.Entries())
}

// Union and Intersection lock only the receiver. Synchronizing other is the
// caller's job.
func (t *threadSafeSet[T]) Union(other Set[T]) (Set[T], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	value, err := t.internal.Union(other)
	if err != nil {
		return nil, err
	}

	return NewThreadSafeSet(value), nil
}

func (t *threadSafeSet[T]) Intersection(other Set[T]) (Set[T], error) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	value, err := t.internal.Intersection(other)
	if err != nil {
		return nil, err
	}

	return NewThreadSafeSet(value), nil
}
