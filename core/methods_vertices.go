// File: methods_vertices.go
// Role: Location lifecycle & queries.
//
// Determinism:
//   - LocationNames() returns names sorted lexicographically ascending.
//
// Invariants:
//   - DeleteLocation leaves no adjacency entry pointing at the removed name.
package core

import (
	"fmt"
	"sort"
)

// AddLocation inserts an isolated location.
//
// Implementation:
//   - Stage 1: Validate non-empty name (ErrEmptyLocationName).
//   - Stage 2: Reject an existing name (ErrDuplicateLocation).
//   - Stage 3: Register a Location with an empty road map.
//
// Inputs:
//   - name: location identifier; matched exactly (case-sensitive, untrimmed).
//
// Errors:
//   - ErrEmptyLocationName: if name == "".
//   - ErrDuplicateLocation: if name is already present.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (n *Network) AddLocation(name string) error {
	if name == "" {
		return ErrEmptyLocationName
	}
	if _, exists := n.locations[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateLocation, name)
	}

	n.locations[name] = &Location{Name: name, roads: make(map[string]int64)}

	return nil
}

// HasLocation reports whether name exists (empty name ⇒ false).
// Complexity: O(1)
func (n *Network) HasLocation(name string) bool {
	_, ok := n.locations[name]

	return ok
}

// DeleteLocation removes a location and every road incident to it.
//
// Implementation:
//   - Stage 1: Verify presence (ErrUnknownLocation).
//   - Stage 2: For each neighbor, drop the mirrored adjacency entry.
//   - Stage 3: Remove the location from the catalog.
//
// Behavior highlights:
//   - Symmetry lets us visit only the neighbors instead of every location.
//   - A self-loop is discarded along with the location itself.
//
// Errors:
//   - ErrUnknownLocation: if name is absent.
//
// Complexity:
//   - Time O(deg(name)), Space O(1).
func (n *Network) DeleteLocation(name string) error {
	loc, ok := n.locations[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}

	for nbr := range loc.roads {
		if other, ok := n.locations[nbr]; ok {
			delete(other.roads, name)
		}
	}
	delete(n.locations, name)

	return nil
}

// LocationNames returns every location name, sorted ascending.
// The slice is freshly allocated; callers may modify it.
// Complexity: O(L·log L)
func (n *Network) LocationNames() []string {
	names := make([]string, 0, len(n.locations))
	for name := range n.locations {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// LocationCount returns the number of locations.
// Complexity: O(1)
func (n *Network) LocationCount() int {
	return len(n.locations)
}

// lookup returns the location or a wrapped ErrUnknownLocation.
func (n *Network) lookup(name string) (*Location, error) {
	loc, ok := n.locations[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}

	return loc, nil
}
