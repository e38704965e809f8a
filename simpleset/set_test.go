// File: simpleset/set_test.go
// Author: Jonathan Simmonds
// License: MIT

package simpleset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonsim/go-collections/api"
)

func TestInsertAndContains(t *testing.T) {
	s := New[string]()
	assert.True(t, s.Empty())
	assert.False(t, s.Contains("a"))

	assert.True(t, s.Insert("a"))
	assert.True(t, s.Contains("a"))
	assert.Equal(t, 1, s.Len())

	// Duplicate insert is a no-op.
	assert.False(t, s.Insert("a"))
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("a"))

	// Earlier members stay present as distinct elements arrive.
	assert.True(t, s.Insert("b"))
	assert.True(t, s.Contains("a"))
	assert.True(t, s.Contains("b"))
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.Empty())
}

func TestAt(t *testing.T) {
	s := New[int]()
	_, err := s.At(0)
	require.ErrorIs(t, err, api.ErrOutOfRange)

	s.Insert(7)
	s.Insert(3)
	s.Insert(7)
	s.Insert(9)

	// First-insertion order.
	for i, want := range []int{7, 3, 9} {
		got, err := s.At(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = s.At(3)
	require.ErrorIs(t, err, api.ErrOutOfRange)
	_, err = s.At(-1)
	require.ErrorIs(t, err, api.ErrOutOfRange)
}

func TestAll(t *testing.T) {
	s := New[int]()
	for _, v := range []int{5, 1, 5, 2, 1} {
		s.Insert(v)
	}

	got := []int{}
	for v := range s.All() {
		got = append(got, v)
	}
	assert.Equal(t, []int{5, 1, 2}, got)
}

func TestZeroValueUsable(t *testing.T) {
	var s Set[int]
	assert.True(t, s.Empty())
	assert.True(t, s.Insert(1))
	assert.Equal(t, 1, s.Len())
}

// TestSetPropertyBased inserts random values from a small domain and checks
// the set against a map model plus a first-occurrence order slice.
func TestSetPropertyBased(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		s := New[int]()
		seen := map[int]bool{}
		order := []int{}

		for i := 0; i < 2000; i++ {
			val := rng.Intn(50)
			added := s.Insert(val)
			if added == seen[val] {
				t.Fatalf("seed %d op %d: Insert(%d) reported %v, model had %v",
					seed, i, val, added, seen[val])
			}
			if !seen[val] {
				seen[val] = true
				order = append(order, val)
			}

			if s.Len() != len(order) {
				t.Fatalf("seed %d op %d: len: expected %d, got %d",
					seed, i, len(order), s.Len())
			}
			if !s.Contains(val) {
				t.Fatalf("seed %d op %d: Contains(%d) false after insert", seed, i, val)
			}
		}

		for pos, want := range order {
			got, err := s.At(pos)
			if err != nil {
				t.Fatalf("seed %d: At(%d): %v", seed, pos, err)
			}
			if got != want {
				t.Fatalf("seed %d: At(%d): expected %d, got %d", seed, pos, want, got)
			}
		}
	}
}
