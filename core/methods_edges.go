// File: methods_edges.go
// Role: Road lifecycle & queries: AddRoad/RemoveRoad/Road/Roads/RoadCount.
// Determinism:
//   - Roads() returns each road once with From ≤ To, sorted by (From, To).
// Invariants:
//   - Every mutation writes both endpoints, so adjacency stays symmetric.

package core

import (
	"fmt"
	"sort"
)

// AddRoad connects two locations, or overwrites the distance of an existing road.
//
// Steps:
//  1. Validate distance > 0 (ErrInvalidDistance).
//  2. Resolve both endpoints (ErrUnknownLocation).
//  3. Write adjacency[from][to] and adjacency[to][from].
//
// A self-loop (from == to) is accepted and stored as a single entry.
//
// Complexity: O(1) amortized.
func (n *Network) AddRoad(from, to string, distance int64) error {
	if distance <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDistance, distance)
	}
	a, err := n.lookup(from)
	if err != nil {
		return err
	}
	b, err := n.lookup(to)
	if err != nil {
		return err
	}

	a.roads[to] = distance
	b.roads[from] = distance

	return nil
}

// RemoveRoad deletes the road between from and to on both sides.
//
// Removing a road that does not exist is a no-op, so repeated calls leave
// the network in the same state as a single call.
//
// Errors:
//   - ErrUnknownLocation: if either endpoint is absent.
//
// Complexity: O(1)
func (n *Network) RemoveRoad(from, to string) error {
	a, err := n.lookup(from)
	if err != nil {
		return err
	}
	b, err := n.lookup(to)
	if err != nil {
		return err
	}

	delete(a.roads, to)
	delete(b.roads, from)

	return nil
}

// Road returns the distance of the direct road between from and to.
// ok is false if either location is absent or they are not adjacent.
// Complexity: O(1)
func (n *Network) Road(from, to string) (distance int64, ok bool) {
	loc, exists := n.locations[from]
	if !exists {
		return 0, false
	}
	distance, ok = loc.roads[to]

	return distance, ok
}

// Roads returns a snapshot of every road, each unordered pair reported once.
// Complexity: O(R·log R)
func (n *Network) Roads() []Road {
	var out []Road
	for name, loc := range n.locations {
		for nbr, d := range loc.roads {
			if name <= nbr {
				out = append(out, Road{From: name, To: nbr, Distance: d})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// RoadCount returns the number of distinct roads (a self-loop counts once).
// Complexity: O(L + R)
func (n *Network) RoadCount() int {
	count := 0
	for name, loc := range n.locations {
		for nbr := range loc.roads {
			if name <= nbr {
				count++
			}
		}
	}

	return count
}
