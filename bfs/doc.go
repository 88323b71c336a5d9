// Package bfs walks a core.Network breadth-first, counting roads (hops)
// rather than distance.
//
// It answers "which locations can a delivery reach at all from here, and in
// how many legs?", which Dijkstra answers only implicitly. Use dijkstra for
// distance-optimal routes.
//
// Determinism:
//
//	Neighbors are expanded in ascending name order, so Order, Hops and
//	Parent are fixed for a given network.
//
// Options:
//
//   - WithMaxHops(h): stop expanding beyond h roads (0 = unlimited).
//   - WithOnVisit(fn): callback per visited location; an error aborts.
//   - WithContext(ctx): cancellation, checked once per dequeue.
//
// Complexity: O(L + R) time and O(L) space for L locations and R roads.
package bfs
