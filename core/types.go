// SPDX-License-Identifier: MIT
//
// Package core defines the Network, Location and Road types together with
// the sentinel errors returned by network mutations and queries.
//
// Errors:
//
//	ErrEmptyLocationName - location name is the empty string.
//	ErrDuplicateLocation - location name already present.
//	ErrUnknownLocation   - referenced location does not exist.
//	ErrInvalidDistance   - road distance is zero or negative.
package core

import "errors"

// Sentinel errors for network operations.
var (
	// ErrEmptyLocationName indicates that a location name is empty.
	ErrEmptyLocationName = errors.New("core: location name is empty")

	// ErrDuplicateLocation indicates AddLocation was called with an existing name.
	ErrDuplicateLocation = errors.New("core: location already exists")

	// ErrUnknownLocation indicates an operation referenced a non-existent location.
	ErrUnknownLocation = errors.New("core: location not found")

	// ErrInvalidDistance indicates a road distance that is not strictly positive.
	ErrInvalidDistance = errors.New("core: distance must be positive")
)

// Location is a named point of the network.
//
// Name is unique within its Network. Roads maps each neighboring location
// name to the distance of the direct road; it is nil-safe to read and is
// owned by the Network (callers receive copies, never this map).
type Location struct {
	// Name uniquely identifies this Location.
	Name string

	// roads is neighbor name → distance. Symmetric with the neighbor's map.
	roads map[string]int64
}

// Road is a value snapshot of one undirected connection.
//
// From ≤ To lexicographically; a self-loop has From == To.
type Road struct {
	From     string
	To       string
	Distance int64
}

// Network is the logistics graph: location name → Location.
//
// The zero value is not usable; construct with NewNetwork.
type Network struct {
	locations map[string]*Location
}

// NewNetwork creates an empty Network.
// Complexity: O(1)
func NewNetwork() *Network {
	return &Network{
		locations: make(map[string]*Location),
	}
}
