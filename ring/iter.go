// File: ring/iter.go
// Author: Jonathan Simmonds
// License: MIT
//
// Lazy traversal and snapshot accessors for Buffer.

package ring

import "iter"

// All returns a lazy, restartable sequence of the live elements in
// oldest-to-newest order. The sequence reads the buffer's state as each step
// is taken; it is not a snapshot, and mutating the buffer mid-traversal is a
// caller error.
func (b *Buffer[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := b.tail; i != b.head; i = b.wrap(i + 1) {
			if !yield(b.slots[i]) {
				return
			}
		}
	}
}

// Snapshot returns a newly allocated slice of the live elements in
// oldest-to-newest order. The result is independent of the buffer.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, 0, b.Len())
	for v := range b.All() {
		out = append(out, v)
	}
	return out
}
