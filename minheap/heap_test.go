// SPDX-License-Identifier: MIT

package minheap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citymst/minheap"
)

func TestNew_Errors(t *testing.T) {
	h, err := minheap.New(0)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, minheap.ErrNonPositiveCapacity)

	_, err = minheap.New(-1)
	assert.ErrorIs(t, err, minheap.ErrNonPositiveCapacity)

	_, err = minheap.New(3, minheap.WithPriority(3, 0))
	assert.ErrorIs(t, err, minheap.ErrOutOfRange)

	_, err = minheap.New(3, minheap.WithPriority(-1, 0))
	assert.ErrorIs(t, err, minheap.ErrOutOfRange)
}

func TestNew_AllInfinite(t *testing.T) {
	h, err := minheap.New(4)
	require.NoError(t, err)
	assert.Equal(t, 4, h.Len())

	for id := 0; id < 4; id++ {
		assert.True(t, h.Contains(id))
		p, err := h.Priority(id)
		require.NoError(t, err)
		assert.Equal(t, minheap.Infinity, p)
	}
	assert.False(t, h.Contains(4))
	assert.False(t, h.Contains(-1))

	// Equal priorities never swap during construction, so the first id
	// inserted sits at the root.
	id, p, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, minheap.Infinity, p)
}

func TestSeededSourceComesFirst(t *testing.T) {
	h, err := minheap.New(5, minheap.WithPriority(2, 0))
	require.NoError(t, err)

	id, p, err := h.RemoveMin()
	require.NoError(t, err)
	assert.Equal(t, 2, id)
	assert.Equal(t, int64(0), p)
	assert.Equal(t, 4, h.Len())
}

func TestReduceKeyThenDrain(t *testing.T) {
	h, err := minheap.New(6)
	require.NoError(t, err)

	updates := map[int]int64{0: 50, 1: 10, 2: 40, 3: 20, 4: 30, 5: 60}
	for id := 0; id < 6; id++ {
		require.NoError(t, h.ReduceKey(id, updates[id]))
	}
	require.NoError(t, h.ReduceKey(5, 5)) // second reduction of the same id

	var order []int
	var last int64 = -1
	for !h.Empty() {
		id, p, err := h.RemoveMin()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, last) // non-decreasing extraction
		last = p
		order = append(order, id)
	}
	assert.Equal(t, []int{5, 1, 3, 4, 2, 0}, order)

	_, _, err = h.RemoveMin()
	assert.ErrorIs(t, err, minheap.ErrEmpty)
	_, _, err = h.Peek()
	assert.ErrorIs(t, err, minheap.ErrEmpty)
}

// TestRemoveMin_TiePrefersLeft removes the root so that its two children
// hold equal priorities; the left child must be promoted.
func TestRemoveMin_TiePrefersLeft(t *testing.T) {
	// Slots after construction: 1:(0,1) 2:(1,5) 3:(2,5) 4:(3,9).
	h, err := minheap.New(4,
		minheap.WithPriority(0, 1),
		minheap.WithPriority(1, 5),
		minheap.WithPriority(2, 5),
		minheap.WithPriority(3, 9),
	)
	require.NoError(t, err)

	id, _, err := h.RemoveMin()
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	id, p, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, 1, id, "left child promoted on tie")
	assert.Equal(t, int64(5), p)

	var order []int
	for !h.Empty() {
		id, _, err = h.RemoveMin()
		require.NoError(t, err)
		order = append(order, id)
	}
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestRemoveMin_StrictlySmallerRight(t *testing.T) {
	h, err := minheap.New(4,
		minheap.WithPriority(0, 1),
		minheap.WithPriority(1, 5),
		minheap.WithPriority(2, 4),
		minheap.WithPriority(3, 9),
	)
	require.NoError(t, err)

	_, _, err = h.RemoveMin()
	require.NoError(t, err)
	id, _, err := h.RemoveMin()
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestReduceKey_Errors(t *testing.T) {
	h, err := minheap.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, h.ReduceKey(2, 1), minheap.ErrOutOfRange)
	assert.ErrorIs(t, h.ReduceKey(-1, 1), minheap.ErrOutOfRange)

	id, _, err := h.RemoveMin()
	require.NoError(t, err)
	assert.ErrorIs(t, h.ReduceKey(id, 1), minheap.ErrNotInHeap)
	_, err = h.Priority(id)
	assert.ErrorIs(t, err, minheap.ErrNotInHeap)
}

func TestSingleElement(t *testing.T) {
	h, err := minheap.New(1)
	require.NoError(t, err)

	require.NoError(t, h.ReduceKey(0, 3))
	id, p, err := h.RemoveMin()
	require.NoError(t, err)
	assert.Equal(t, 0, id)
	assert.Equal(t, int64(3), p)
	assert.True(t, h.Empty())
}
