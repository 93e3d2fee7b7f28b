// SPDX-License-Identifier: MIT
// Package minheap provides an indexed binary min-heap keyed by dense
// vertex ids, with O(log n) decrease-key.
//
// Layout (one structure owns both arrays):
//
//	slots [0]      sentinel, priority math.MinInt64, never moved
//	slots [1..n]   (id, priority) pairs in heap order
//	pos   [id]     slot currently holding id; 0 once id has been removed
//
// Invariants, maintained by every swap:
//
//	slots[k].priority >= slots[k/2].priority   for 1 < k <= n
//	slots[pos[id]].id == id                    for every id still present
//
// The sentinel at slot 0 stops bubble-up at the root without a bounds
// check. Comparisons are strict, so elements with equal priority keep
// their relative slots; sift-down prefers the left child on ties.
//
// Upon construction every id 0..max-1 is present with priority Infinity
// unless seeded otherwise with WithPriority. There is no public insert:
// the id universe is fixed at construction, which is exactly what Prim's
// algorithm needs.
//
// Complexity: New O(max log max); ReduceKey, RemoveMin O(log max);
// Contains, Priority, Peek O(1).
//
// Errors:
//
//	ErrNonPositiveCapacity - New called with max <= 0.
//	ErrOutOfRange          - id outside [0, max).
//	ErrNotInHeap           - id already removed by RemoveMin.
//	ErrEmpty               - RemoveMin or Peek on an empty heap.
package minheap
