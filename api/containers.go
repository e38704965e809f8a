// File: api/containers.go
// Author: Jonathan Simmonds
// License: MIT
//
// Contracts for the fixed-capacity containers in this library.

package api

// Deque is a fixed-capacity double-ended queue that overwrites its oldest
// element when a new one is pushed into a full container.
type Deque[T any] interface {
	// PushBack adds item as the newest element, evicting the oldest
	// when full. Never fails.
	PushBack(item T)
	// PopFront discards the oldest element; no-op when empty.
	PopFront()
	// PopBack discards the newest element. Panics when empty.
	PopBack()
	// Front returns the oldest element. Panics when empty.
	Front() T
	// Back returns the newest element. Panics when empty.
	Back() T
	// At returns the element at pos, counted oldest-first,
	// or an out-of-range error when pos is not within [0, Len()).
	At(pos int) (T, error)
	// Get is the unchecked form of At. The caller must ensure
	// 0 <= pos < Len(); out-of-range positions yield unspecified values.
	Get(pos int) T
	// Len returns the current number of elements.
	Len() int
	// Cap returns the fixed usable capacity.
	Cap() int
	// Full reports whether the next push will evict.
	Full() bool
	// Empty reports whether no elements are held.
	Empty() bool
}

// Set is a duplicate-free collection preserving first-insertion order.
type Set[T comparable] interface {
	// Insert adds elem unless already present; reports whether it was added.
	Insert(elem T) bool
	// Contains reports whether some stored element equals elem.
	Contains(elem T) bool
	// At returns the n-th element in insertion order,
	// or an out-of-range error when n is not within [0, Len()).
	At(n int) (T, error)
	// Len returns the number of stored elements.
	Len() int
	// Empty reports whether no elements are held.
	Empty() bool
}
