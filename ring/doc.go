// Package ring
// Author: Jonathan Simmonds
//
// Fast fixed-capacity circular buffer for the go-collections library.
// Implements an overwrite-on-full double-ended queue with O(1) insertion,
// removal and positional access. One slot of the backing store is always
// left empty so that two indices suffice to tell a full buffer from an
// empty one. Single-owner semantics: not safe for concurrent mutation.
// See ring.go and iter.go for implementation details.
package ring
