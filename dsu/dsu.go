// SPDX-License-Identifier: MIT
// Package dsu implements a fixed-size disjoint-set forest (union-find)
// over dense element ids 0..n-1.
//
// Find applies path halving: every visited node is re-pointed at its
// grandparent, so repeated queries approach O(1) amortized. Union links
// the smaller tree under the larger (union by size), which keeps tree
// height O(log n) even before compression kicks in.
//
// Complexity: New O(n); Find/Union/Same O(α(n)) amortized.
//
// Errors:
//
//	ErrNonPositiveSize - New called with n <= 0.
//	ErrOutOfRange      - element id outside [0, n).
package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrNonPositiveSize indicates New was asked for an empty forest.
	ErrNonPositiveSize = errors.New("dsu: size must be positive")

	// ErrOutOfRange indicates an element id outside the forest.
	ErrOutOfRange = errors.New("dsu: element out of range")
)

// Sets is a disjoint-set forest. It is not safe for concurrent use.
type Sets struct {
	parent []int // parent[x] == x iff x is a root
	size   []int // valid for roots only: number of elements in the tree
	count  int   // number of disjoint sets remaining
}

// New returns n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) (*Sets, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNonPositiveSize, n)
	}

	s := &Sets{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range s.parent {
		s.parent[i] = i
		s.size[i] = 1
	}

	return s, nil
}

func (s *Sets) check(x int) error {
	if x < 0 || x >= len(s.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, x, len(s.parent))
	}

	return nil
}

// Find returns the root of x's set.
func (s *Sets) Find(x int) (int, error) {
	if err := s.check(x); err != nil {
		return 0, err
	}

	return s.find(x), nil
}

// find assumes x is in range.
func (s *Sets) find(x int) int {
	for s.parent[x] != x {
		// Path halving.
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}

	return x
}

// Union merges the sets containing a and b. It reports false, with a nil
// error, when they were already in the same set.
func (s *Sets) Union(a, b int) (bool, error) {
	if err := s.check(a); err != nil {
		return false, err
	}
	if err := s.check(b); err != nil {
		return false, err
	}

	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false, nil
	}
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	s.count--

	return true, nil
}

// Same reports whether a and b belong to the same set.
func (s *Sets) Same(a, b int) (bool, error) {
	if err := s.check(a); err != nil {
		return false, err
	}
	if err := s.check(b); err != nil {
		return false, err
	}

	return s.find(a) == s.find(b), nil
}

// Size returns the number of elements in x's set.
func (s *Sets) Size(x int) (int, error) {
	if err := s.check(x); err != nil {
		return 0, err
	}

	return s.size[s.find(x)], nil
}

// Count returns the number of disjoint sets.
func (s *Sets) Count() int { return s.count }

// Len returns the number of elements.
func (s *Sets) Len() int { return len(s.parent) }
