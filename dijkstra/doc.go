// Package dijkstra computes shortest routes on a core.Network with
// Dijkstra's algorithm over the generic pq.MinHeap.
//
// Overview:
//
//   - ShortestPath(n, start, end) answers a point-to-point query and stops as
//     soon as end is extracted from the queue.
//   - Distances(n, source) runs to exhaustion and returns the full
//     shortest-path tree; Tree.PathTo rebuilds any route from it.
//
// Lazy deletion:
//
//	pq.MinHeap has no decrease-key. Each improvement pushes a fresh
//	(location, distance) entry; when an entry pops with a distance greater
//	than the best recorded one it is stale and is discarded. Every road
//	relaxation pushes at most once, so the heap holds O(E) entries.
//
// Unreachable policy:
//
//	ShortestPath reports ok == false, not an error, when no route exists and
//	also when start or end is not a known location (or the network is nil).
//	A query from a location to itself yields the single stop [start] with
//	distance 0. Unreachable (math.MaxInt64) is reserved: a route totalling
//	Unreachable or more is reported as no route instead of overflowing.
//
// Determinism:
//
//	Neighbors are relaxed in ascending name order, so among equal-cost routes
//	the one found first is fixed for a given network.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Thread safety:
//
//	Searches only read the network. They are not safe against concurrent
//	mutation; callers sharing a network must serialize access.
package dijkstra
