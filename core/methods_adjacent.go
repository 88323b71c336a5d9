// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborNames, Degree).
// Determinism:
//   - NeighborNames() returns unique names sorted lex asc.
//   - Neighbors() returns a map; callers needing order sort its keys or use NeighborNames.

package core

import "sort"

// Neighbors returns a copy of the adjacency map of name: neighbor → distance.
//
// Behavior highlights:
//   - The returned map is independent of the network; mutating it has no effect.
//   - A self-loop appears as an entry keyed by name itself.
//
// Errors:
//   - ErrUnknownLocation: if name is absent.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the number of neighbors.
func (n *Network) Neighbors(name string) (map[string]int64, error) {
	loc, err := n.lookup(name)
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(loc.roads))
	for nbr, d := range loc.roads {
		out[nbr] = d
	}

	return out, nil
}

// NeighborNames returns the neighbors of name, sorted ascending.
//
// Errors:
//   - ErrUnknownLocation: if name is absent.
//
// Complexity: O(d·log d)
func (n *Network) NeighborNames(name string) ([]string, error) {
	loc, err := n.lookup(name)
	if err != nil {
		return nil, err
	}

	return sortedKeys(loc.roads), nil
}

// Degree returns the number of roads incident to name (a self-loop counts once).
//
// Errors:
//   - ErrUnknownLocation: if name is absent.
func (n *Network) Degree(name string) (int, error) {
	loc, err := n.lookup(name)
	if err != nil {
		return 0, err
	}

	return len(loc.roads), nil
}

// EachNeighbor calls fn for every neighbor of name in ascending name order,
// without allocating a copy of the distance map.
//
// It is the read path of the routing engine. fn must not mutate the network.
//
// Errors:
//   - ErrUnknownLocation: if name is absent.
func (n *Network) EachNeighbor(name string, fn func(neighbor string, distance int64)) error {
	loc, err := n.lookup(name)
	if err != nil {
		return err
	}
	for _, nbr := range sortedKeys(loc.roads) {
		fn(nbr, loc.roads[nbr])
	}

	return nil
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
