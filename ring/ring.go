// File: ring/ring.go
// Author: Jonathan Simmonds
// License: MIT
//
// Buffer is a fixed-capacity circular buffer with head/tail indices.
// Implements api.Deque for cross-package consistency.

package ring

import (
	"github.com/jonsim/go-collections/api"
)

// Ensure compile-time interface compliance.
var _ api.Deque[any] = (*Buffer[any])(nil)

// DefaultSlotCount is the slot count used by NewDefault.
const DefaultSlotCount = 32

// Buffer is a fixed-capacity circular buffer over slotCount storage cells,
// of which one is always left empty (usable capacity is slotCount-1).
// Pushing into a full buffer overwrites the oldest element.
type Buffer[T any] struct {
	slots []T
	// head is the next slot to be written, one past the newest element.
	head int
	// tail is the slot of the oldest element.
	tail int
}

// New allocates a buffer with slotCount storage cells and usable capacity
// slotCount-1. Panics if slotCount < 1. slotCount of 1 is legal and yields a
// zero-capacity buffer that discards every push immediately.
func New[T any](slotCount int) *Buffer[T] {
	if slotCount < 1 {
		panic("ring: slot count must be at least one")
	}
	return &Buffer[T]{slots: make([]T, slotCount)}
}

// NewDefault allocates a buffer with DefaultSlotCount storage cells.
func NewDefault[T any]() *Buffer[T] {
	return New[T](DefaultSlotCount)
}

// From allocates a buffer pre-populated with items, the first item becoming
// the oldest element. Panics unless len(items) < slotCount.
func From[T any](slotCount int, items ...T) *Buffer[T] {
	if len(items) >= slotCount {
		panic("ring: initial elements must number fewer than slotCount")
	}
	b := New[T](slotCount)
	copy(b.slots, items)
	b.head = len(items)
	return b
}

// wrap computes x mod len(slots) for 0 <= x < 2*len(slots). Every head/tail
// advance goes through here; no call site re-derives the modular formula.
func (b *Buffer[T]) wrap(x int) int {
	if x < len(b.slots) {
		return x
	}
	return x - len(b.slots)
}

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool {
	return b.head == b.tail
}

// Full reports whether the buffer is at capacity. When full, the next
// PushBack overwrites the oldest element.
func (b *Buffer[T]) Full() bool {
	return b.wrap(b.head+1) == b.tail
}

// Len returns the current number of elements. Never exceeds Cap.
func (b *Buffer[T]) Len() int {
	if b.head < b.tail {
		return b.head + len(b.slots) - b.tail
	}
	return b.head - b.tail
}

// Cap returns the usable capacity, always one less than the slot count and
// fixed for the buffer's lifetime.
func (b *Buffer[T]) Cap() int {
	return len(b.slots) - 1
}

// PushBack adds item as the newest element, overwriting the oldest element
// if the buffer is full. Never fails.
func (b *Buffer[T]) PushBack(item T) {
	b.slots[b.head] = item
	b.head = b.wrap(b.head + 1)
	if b.head == b.tail {
		b.tail = b.wrap(b.tail + 1)
	}
}

// PopFront discards the oldest element, if one exists. No-op when empty.
func (b *Buffer[T]) PopFront() {
	if !b.Empty() {
		b.tail = b.wrap(b.tail + 1)
	}
}

// PopBack discards the newest element. Panics when empty.
func (b *Buffer[T]) PopBack() {
	if b.Empty() {
		panic("ring: PopBack on empty buffer")
	}
	b.head = b.wrap(b.head + len(b.slots) - 1)
}

// Front returns the oldest element. Panics when empty; use At(0) for a
// checked alternative.
func (b *Buffer[T]) Front() T {
	if b.Empty() {
		panic("ring: Front on empty buffer")
	}
	return b.slots[b.tail]
}

// Back returns the newest element. Panics when empty; use At(Len()-1) for a
// checked alternative.
func (b *Buffer[T]) Back() T {
	if b.Empty() {
		panic("ring: Back on empty buffer")
	}
	return b.slots[b.wrap(b.head+len(b.slots)-1)]
}

// At returns the element at pos, counted oldest-first (At(0) is the oldest,
// At(Len()-1) the newest). Returns an out-of-range error when pos is not
// within [0, Len()).
func (b *Buffer[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= b.Len() {
		var zero T
		return zero, api.OutOfRange(pos, b.Len())
	}
	return b.slots[b.wrap(b.tail+pos)], nil
}

// Get is the unchecked form of At: no bounds validation is performed. The
// caller must ensure 0 <= pos < Len(). Any pos below the slot count maps to
// a storage slot via the same modular formula and may return a stale value;
// callers must not rely on such results.
func (b *Buffer[T]) Get(pos int) T {
	return b.slots[b.wrap(b.tail+pos)]
}
