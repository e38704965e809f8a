// File: simpleset/set.go
// Author: Jonathan Simmonds
// License: MIT

// Package simpleset provides a very basic, light-weight unordered set for
// small data. A plain slice holds the elements and uniqueness is enforced by
// a linear equality scan on insert, so insertion is O(n); this beats
// hash-based sets on memory and speed for small n and loses for large n.
// Elements keep their first-insertion order. No removal is offered.
package simpleset

import (
	"iter"
	"slices"

	"github.com/jonsim/go-collections/api"
)

// Ensure compile-time interface compliance.
var _ api.Set[int] = (*Set[int])(nil)

// Set is a duplicate-free insertion-ordered collection. The zero value is an
// empty set ready to use.
type Set[T comparable] struct {
	elems []T
}

// New returns an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Contains reports whether some stored element equals elem.
func (s *Set[T]) Contains(elem T) bool {
	return slices.Contains(s.elems, elem)
}

// Insert appends elem unless an equal element is already present; reports
// whether it was added.
func (s *Set[T]) Insert(elem T) bool {
	if s.Contains(elem) {
		return false
	}
	s.elems = append(s.elems, elem)
	return true
}

// Len returns the number of stored elements.
func (s *Set[T]) Len() int {
	return len(s.elems)
}

// Empty reports whether the set holds no elements.
func (s *Set[T]) Empty() bool {
	return len(s.elems) == 0
}

// At returns the n-th element in first-insertion order, or an out-of-range
// error when n is not within [0, Len()).
func (s *Set[T]) At(n int) (T, error) {
	if n < 0 || n >= len(s.elems) {
		var zero T
		return zero, api.OutOfRange(n, len(s.elems))
	}
	return s.elems[n], nil
}

// All yields the elements in first-insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range s.elems {
			if !yield(e) {
				return
			}
		}
	}
}
