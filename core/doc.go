// Package core provides the in-memory logistics Network: uniquely named
// locations joined by undirected roads with strictly positive integer
// distances.
//
// The Network N = (L, R) enforces:
//
//   - Unique, case-sensitive location names (any non-empty UTF-8 string)
//   - Symmetric adjacency: adjacency[a][b] == adjacency[b][a] for every road
//   - At most one road per unordered pair (AddRoad overwrites the distance)
//   - Strictly positive distances (AddRoad rejects d ≤ 0)
//   - Cascading deletion: DeleteLocation removes every incident road
//
// Storage is a two-level map, adjacency[from][to] = distance, so every
// mutation and point lookup is O(1) on average.
//
// Deterministic iteration:
//
//   - LocationNames() returns names sorted lexicographically ascending.
//   - Roads() returns each road once, endpoints ordered (From ≤ To), sorted.
//   - NeighborNames() returns the neighbors of one location, sorted.
//
// Core Methods:
//
//	// Location lifecycle
//	AddLocation(name string) error                  // O(1)
//	HasLocation(name string) bool                   // O(1)
//	DeleteLocation(name string) error               // O(deg(name))
//
//	// Road lifecycle
//	AddRoad(from, to string, distance int64) error  // O(1)
//	RemoveRoad(from, to string) error               // O(1), idempotent
//	Road(from, to string) (int64, bool)             // O(1)
//
//	// Query
//	LocationNames() []string                        // O(L·log L)
//	Neighbors(name string) (map[string]int64, error)// O(deg), copy
//	NeighborNames(name string) ([]string, error)    // O(deg·log deg)
//	EachNeighbor(name string, fn) error             // O(deg·log deg), no copy
//	Degree(name string) (int, error)                // O(1)
//	Roads() []Road                                  // O(R·log R)
//	LocationCount() int                             // O(1)
//	RoadCount() int                                 // O(L+R)
//
//	// Maintenance
//	Clone() *Network                                // O(L+R)
//	Clear()                                         // O(1)
//
// Errors:
//
//	ErrEmptyLocationName  – zero-length location name
//	ErrDuplicateLocation  – AddLocation on an existing name
//	ErrUnknownLocation    – reference to an absent location
//	ErrInvalidDistance    – AddRoad with distance ≤ 0
//
// Concurrency:
//
//	A Network is not safe for concurrent use. Callers that share one across
//	goroutines must serialize every mutation and query, including path
//	searches, behind a single lock: a half-applied mutation would break the
//	adjacency symmetry that searches rely on.
package core
