// SPDX-License-Identifier: MIT
//
// File: heap.go
// Role: MinHeap type, constructor, options and the sift primitives.
// Determinism:
//   - For a fixed insertion sequence the extraction sequence is fixed.
//   - Equal keys carry no ordering guarantee between them.

package pq

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrEmptyQueue indicates ExtractMin or Peek was called on an empty heap.
var ErrEmptyQueue = errors.New("pq: queue is empty")

// defaultCapacity mirrors the small initial array of a classic binary heap.
const defaultCapacity = 10

// Option configures a MinHeap before first use.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates room for n elements. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// MinHeap is a binary min-heap of T ordered by key(T).
//
// The zero value is not usable; construct with New.
type MinHeap[T any, K constraints.Ordered] struct {
	items []T
	key   func(T) K
}

// New returns an empty MinHeap that orders elements by key.
//
// key must be a pure function: the key of an element must not change while
// the element is stored in the heap.
//
// Complexity: O(capacity) for the initial allocation.
func New[T any, K constraints.Ordered](key func(T) K, opts ...Option) *MinHeap[T, K] {
	cfg := config{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &MinHeap[T, K]{
		items: make([]T, 0, cfg.capacity),
		key:   key,
	}
}

// Insert adds x and restores heap order.
// Complexity: O(log n) amortized.
func (h *MinHeap[T, K]) Insert(x T) {
	h.items = append(h.items, x)
	h.up(len(h.items) - 1)
}

// ExtractMin removes and returns the element with the smallest key.
//
// The last element replaces the root and is sifted down.
//
// Errors:
//   - ErrEmptyQueue if the heap holds no elements.
//
// Complexity: O(log n).
func (h *MinHeap[T, K]) ExtractMin() (T, error) {
	var zero T
	n := len(h.items)
	if n == 0 {
		return zero, ErrEmptyQueue
	}

	root := h.items[0]
	last := n - 1
	h.items[0] = h.items[last]
	h.items[last] = zero // drop the reference held by the backing array
	h.items = h.items[:last]
	if last > 0 {
		h.down(0)
	}

	return root, nil
}

// Peek returns the element with the smallest key without removing it.
//
// Errors:
//   - ErrEmptyQueue if the heap holds no elements.
func (h *MinHeap[T, K]) Peek() (T, error) {
	if len(h.items) == 0 {
		var zero T
		return zero, ErrEmptyQueue
	}

	return h.items[0], nil
}

// Len reports the number of stored elements.
func (h *MinHeap[T, K]) Len() int { return len(h.items) }

// IsEmpty reports whether Len() == 0.
func (h *MinHeap[T, K]) IsEmpty() bool { return len(h.items) == 0 }

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (h *MinHeap[T, K]) less(i, j int) bool {
	return h.key(h.items[i]) < h.key(h.items[j])
}

func (h *MinHeap[T, K]) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

// up swaps i with its parent while the parent compares greater.
func (h *MinHeap[T, K]) up(i int) {
	for i > 0 {
		p := parent(i)
		if !h.less(i, p) {
			return
		}
		h.swap(i, p)
		i = p
	}
}

// down swaps i with the smaller child while that child compares smaller.
func (h *MinHeap[T, K]) down(i int) {
	n := len(h.items)
	for {
		smallest := i
		if l := left(i); l < n && h.less(l, smallest) {
			smallest = l
		}
		if r := right(i); r < n && h.less(r, smallest) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}
