// SPDX-License-Identifier: MIT

// Package pq provides a generic binary min-heap used as the priority queue
// behind the routing engine and the warehouse priority selection.
//
// A MinHeap orders arbitrary elements by a key extracted from each element:
//
//	h := pq.New(func(e entry) int64 { return e.dist })
//	h.Insert(entry{id: "A", dist: 4})
//	h.Insert(entry{id: "B", dist: 1})
//	min, _ := h.ExtractMin() // entry{id: "B", dist: 1}
//
// Complexity:
//
//   - Insert:     O(log n), sift-up while the parent key is greater.
//   - ExtractMin: O(log n), sift-down swapping with the smaller child.
//   - Peek, Len, IsEmpty: O(1).
//
// Ties between equal keys are broken arbitrarily. There is no decrease-key and
// no way to remove an arbitrary element; callers that need to lower a priority
// push a fresh element and discard stale ones on extraction ("lazy deletion").
//
// Storage grows by append, so capacity doubles on demand and no ceiling is
// exposed to callers.
//
// Errors:
//
//	ErrEmptyQueue – ExtractMin or Peek on an empty heap.
//
// MinHeap is not safe for concurrent use.
package pq
