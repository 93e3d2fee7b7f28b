// SPDX-License-Identifier: MIT

package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymst/dsu"
)

func TestNew_Singletons(t *testing.T) {
	s, err := dsu.New(5)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Count())
	assert.Equal(t, 5, s.Len())

	for i := 0; i < 5; i++ {
		root, err := s.Find(i)
		require.NoError(t, err)
		assert.Equal(t, i, root) // every element is its own representative
		size, err := s.Size(i)
		require.NoError(t, err)
		assert.Equal(t, 1, size)
	}
}

func TestNew_NonPositive(t *testing.T) {
	for _, n := range []int{0, -3} {
		s, err := dsu.New(n)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, dsu.ErrNonPositiveSize)
	}
}

func TestUnion_Merges(t *testing.T) {
	s, err := dsu.New(6)
	require.NoError(t, err)

	merged, err := s.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = s.Union(2, 3)
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = s.Union(1, 3)
	require.NoError(t, err)
	assert.True(t, merged)

	// Already joined: no-op, not an error.
	merged, err = s.Union(0, 2)
	require.NoError(t, err)
	assert.False(t, merged)

	assert.Equal(t, 3, s.Count()) // {0,1,2,3} {4} {5}

	same, err := s.Same(0, 3)
	require.NoError(t, err)
	assert.True(t, same)
	same, err = s.Same(0, 4)
	require.NoError(t, err)
	assert.False(t, same)

	size, err := s.Size(2)
	require.NoError(t, err)
	assert.Equal(t, 4, size)

	ra, _ := s.Find(0)
	rb, _ := s.Find(3)
	assert.Equal(t, ra, rb)
}

func TestOutOfRange(t *testing.T) {
	s, err := dsu.New(3)
	require.NoError(t, err)

	_, err = s.Find(3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = s.Find(-1)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = s.Union(0, 9)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = s.Union(9, 0)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = s.Same(0, 3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = s.Size(5)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	assert.Equal(t, 3, s.Count()) // failed calls leave the forest intact
}

// TestRandomUnions checks find idempotence and union postconditions
// against a naive label array over a deterministic random sequence.
func TestRandomUnions(t *testing.T) {
	const n = 200
	s, err := dsu.New(n)
	require.NoError(t, err)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	r := rand.New(rand.NewSource(7))
	for step := 0; step < 500; step++ {
		a, b := r.Intn(n), r.Intn(n)
		merged, err := s.Union(a, b)
		require.NoError(t, err)
		assert.Equal(t, label[a] != label[b], merged)
		if merged {
			relabel(label[b], label[a])
		}

		ra, _ := s.Find(a)
		rb, _ := s.Find(b)
		require.Equal(t, ra, rb)

		x := r.Intn(n)
		root, _ := s.Find(x)
		again, _ := s.Find(root)
		require.Equal(t, root, again) // find(find(x)) == find(x)
	}

	distinct := make(map[int]struct{})
	for i := 0; i < n; i++ {
		distinct[label[i]] = struct{}{}
		for j := i + 1; j < n; j += 17 {
			same, _ := s.Same(i, j)
			assert.Equal(t, label[i] == label[j], same)
		}
	}
	assert.Equal(t, len(distinct), s.Count())
}
