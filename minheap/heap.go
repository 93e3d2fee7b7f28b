// SPDX-License-Identifier: MIT

package minheap

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNonPositiveCapacity indicates New was called with max <= 0.
	ErrNonPositiveCapacity = errors.New("minheap: capacity must be positive")

	// ErrOutOfRange indicates an id outside [0, max).
	ErrOutOfRange = errors.New("minheap: id out of range")

	// ErrNotInHeap indicates an id that has already been removed.
	ErrNotInHeap = errors.New("minheap: id not in heap")

	// ErrEmpty indicates an extraction from an empty heap.
	ErrEmpty = errors.New("minheap: heap is empty")
)

// Infinity is the priority of an id that was not seeded ("not yet reachable").
const Infinity int64 = math.MaxInt64

// sentinelPriority occupies slot 0.
const sentinelPriority int64 = math.MinInt64

// absent marks a removed id in the position index. Slot 0 is the sentinel,
// so no live id can ever sit there.
const absent = 0

type slot struct {
	id       int
	priority int64
}

// Heap is an indexed min-heap. It is not safe for concurrent use.
type Heap struct {
	slots []slot // 1-indexed; slots[0] is the sentinel
	pos   []int  // id → slot index, or absent
	size  int    // number of live slots
}

// Option configures the starting priorities of a Heap.
type Option func(*config)

type config struct {
	seeds []slot
}

// WithPriority seeds id with a starting priority other than Infinity.
// Later seeds for the same id win.
func WithPriority(id int, priority int64) Option {
	return func(c *config) {
		c.seeds = append(c.seeds, slot{id: id, priority: priority})
	}
}

// New builds a heap holding every id in [0, max).
func New(max int, opts ...Option) (*Heap, error) {
	if max <= 0 {
		return nil, fmt.Errorf("%w: max=%d", ErrNonPositiveCapacity, max)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	start := make([]int64, max)
	for i := range start {
		start[i] = Infinity
	}
	for _, s := range cfg.seeds {
		if s.id < 0 || s.id >= max {
			return nil, fmt.Errorf("%w: seed id %d not in [0,%d)", ErrOutOfRange, s.id, max)
		}
		start[s.id] = s.priority
	}

	h := &Heap{
		slots: make([]slot, max+1),
		pos:   make([]int, max),
	}
	h.slots[0] = slot{id: -1, priority: sentinelPriority}
	for id, p := range start {
		h.insert(id, p)
	}

	return h, nil
}

// insert appends id and bubbles it up. Construction only.
func (h *Heap) insert(id int, priority int64) {
	h.size++
	h.slots[h.size] = slot{id: id, priority: priority}
	h.pos[id] = h.size
	h.siftUp(h.size)
}

// Len returns the number of ids still in the heap.
func (h *Heap) Len() int { return h.size }

// Empty reports whether every id has been removed.
func (h *Heap) Empty() bool { return h.size == 0 }

// Contains reports whether id is still in the heap.
func (h *Heap) Contains(id int) bool {
	return id >= 0 && id < len(h.pos) && h.pos[id] != absent
}

// Priority returns the current priority of id.
func (h *Heap) Priority(id int) (int64, error) {
	if err := h.check(id); err != nil {
		return 0, err
	}

	return h.slots[h.pos[id]].priority, nil
}

// Peek returns the minimum without removing it.
func (h *Heap) Peek() (int, int64, error) {
	if h.size == 0 {
		return 0, 0, ErrEmpty
	}
	top := h.slots[1]

	return top.id, top.priority, nil
}

// ReduceKey sets the priority of id and restores heap order. It always
// bubbles the element toward the root; a priority that is not actually
// smaller is still handled safely by sifting down afterwards.
func (h *Heap) ReduceKey(id int, priority int64) error {
	if err := h.check(id); err != nil {
		return err
	}

	k := h.pos[id]
	old := h.slots[k].priority
	h.slots[k].priority = priority
	k = h.siftUp(k)
	if priority > old {
		h.siftDown(k)
	}

	return nil
}

// RemoveMin removes and returns the id with the smallest priority.
func (h *Heap) RemoveMin() (int, int64, error) {
	if h.size == 0 {
		return 0, 0, ErrEmpty
	}

	top := h.slots[1]
	h.swap(1, h.size)
	h.pos[top.id] = absent
	h.size--
	if h.size > 0 {
		h.siftDown(1)
	}

	return top.id, top.priority, nil
}

func (h *Heap) check(id int) error {
	if id < 0 || id >= len(h.pos) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, id, len(h.pos))
	}
	if h.pos[id] == absent {
		return fmt.Errorf("%w: %d", ErrNotInHeap, id)
	}

	return nil
}

// siftUp moves slot k toward the root while it beats its parent and
// returns its final slot. The sentinel terminates the loop at k == 1.
func (h *Heap) siftUp(k int) int {
	for h.slots[k].priority < h.slots[k/2].priority {
		h.swap(k, k/2)
		k /= 2
	}

	return k
}

// siftDown moves slot k toward the leaves while a child beats it.
func (h *Heap) siftDown(k int) {
	for 2*k <= h.size {
		c := 2 * k
		if c < h.size && h.slots[c+1].priority < h.slots[c].priority {
			c++ // right child strictly smaller; ties keep the left
		}
		if h.slots[k].priority <= h.slots[c].priority {
			return
		}
		h.swap(k, c)
		k = c
	}
}

// swap exchanges two slots and repairs the position index for both ids.
func (h *Heap) swap(i, j int) {
	h.slots[i], h.slots[j] = h.slots[j], h.slots[i]
	h.pos[h.slots[i].id] = i
	h.pos[h.slots[j].id] = j
}
