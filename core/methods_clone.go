// File: methods_clone.go
// Role: Cloning and clearing networks.

package core

// Clone returns a deep copy of the Network: locations and all roads.
// Mutating the clone never affects the original.
//
// Complexity: O(L + R)
func (n *Network) Clone() *Network {
	clone := &Network{locations: make(map[string]*Location, len(n.locations))}
	for name, loc := range n.locations {
		roads := make(map[string]int64, len(loc.roads))
		for nbr, d := range loc.roads {
			roads[nbr] = d
		}
		clone.locations[name] = &Location{Name: name, roads: roads}
	}

	return clone
}

// Clear removes every location and road.
// Complexity: O(1)
func (n *Network) Clear() {
	n.locations = make(map[string]*Location)
}
