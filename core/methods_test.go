// SPDX-License-Identifier: MIT
// Package core_test verifies core.Network method-level contracts.
//
// Purpose:
//   - Lock in error mapping for location and road lifecycle operations.
//   - Validate adjacency symmetry, cascade deletion and idempotent road removal.
//   - Anchor ordering guarantees (LocationNames/Roads/NeighborNames sorted).

package core_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// TestNetwork_AddLocation VERIFIES AddLocation/HasLocation lifecycle rules.
// Implementation:
//   - Stage 1: Assert AddLocation(empty) returns ErrEmptyLocationName.
//   - Stage 2: Add a valid location and assert membership.
//   - Stage 3: Assert a duplicate AddLocation fails and leaves the count unchanged.
func TestNetwork_AddLocation(t *testing.T) {
	n := core.NewNetwork()

	// Stage 1: empty names are rejected.
	assert.ErrorIs(t, n.AddLocation(LocEmpty), core.ErrEmptyLocationName)
	assert.False(t, n.HasLocation(LocEmpty))

	// Stage 2: valid insert.
	require.NoError(t, n.AddLocation(LocA))
	assert.True(t, n.HasLocation(LocA))
	assert.Equal(t, 1, n.LocationCount())

	// Stage 3: duplicates fail, count unchanged.
	err := n.AddLocation(LocA)
	assert.ErrorIs(t, err, core.ErrDuplicateLocation)
	assert.Contains(t, err.Error(), `"A"`)
	assert.Equal(t, 1, n.LocationCount())

	// A fresh location is isolated.
	nbrs, err := n.Neighbors(LocA)
	require.NoError(t, err)
	assert.Empty(t, nbrs)
}

func TestNetwork_NamesAreExactMatch(t *testing.T) {
	n := buildNetwork(t, []string{"depot", "Depot", " Depot", "Zürich", "東京"}, nil)

	assert.Equal(t, 5, n.LocationCount())
	assert.True(t, n.HasLocation("Zürich"))
	assert.True(t, n.HasLocation("東京"))
	assert.False(t, n.HasLocation("DEPOT"))
	assert.Equal(t, []string{" Depot", "Depot", "Zürich", "depot", "東京"}, n.LocationNames())

	require.NoError(t, n.AddRoad("Zürich", "東京", 9000))
	d, ok := n.Road("東京", "Zürich")
	assert.True(t, ok)
	assert.Equal(t, int64(9000), d)
}

func TestNetwork_LongName(t *testing.T) {
	n := core.NewNetwork()
	long := make([]byte, 1<<16)
	for i := range long {
		long[i] = 'a' + byte(i%26)
	}
	require.NoError(t, n.AddLocation(string(long)))
	assert.True(t, n.HasLocation(string(long)))
}

// TestNetwork_AddRoadErrors VERIFIES AddRoad validation order and sentinels.
// Implementation:
//   - Stage 1: Non-positive distances fail with ErrInvalidDistance, even for unknown endpoints.
//   - Stage 2: Unknown endpoints fail with ErrUnknownLocation.
//   - Stage 3: Failed calls leave the network unchanged.
func TestNetwork_AddRoadErrors(t *testing.T) {
	n := buildNetwork(t, []string{LocA, LocB}, nil)

	// Stage 1
	for _, d := range []int64{0, -1, -100} {
		assert.ErrorIs(t, n.AddRoad(LocA, LocB, d), core.ErrInvalidDistance, "distance %d", d)
	}
	assert.ErrorIs(t, n.AddRoad(LocA, LocX, 0), core.ErrInvalidDistance)

	// Stage 2
	assert.ErrorIs(t, n.AddRoad(LocA, LocX, Dist1), core.ErrUnknownLocation)
	assert.ErrorIs(t, n.AddRoad(LocX, LocA, Dist1), core.ErrUnknownLocation)
	assert.ErrorIs(t, n.AddRoad(LocX, LocD, Dist1), core.ErrUnknownLocation)

	// Stage 3
	assert.Equal(t, 0, n.RoadCount())
	_, ok := n.Road(LocA, LocB)
	assert.False(t, ok)
}

func TestNetwork_AddRoadSymmetricAndOverwrite(t *testing.T) {
	n := buildNetwork(t, []string{LocA, LocB}, nil)

	require.NoError(t, n.AddRoad(LocA, LocB, Dist4))
	ab, _ := n.Road(LocA, LocB)
	ba, _ := n.Road(LocB, LocA)
	assert.Equal(t, Dist4, ab)
	assert.Equal(t, Dist4, ba)

	// Re-adding from the other side overwrites both directions.
	require.NoError(t, n.AddRoad(LocB, LocA, Dist2))
	ab, _ = n.Road(LocA, LocB)
	ba, _ = n.Road(LocB, LocA)
	assert.Equal(t, Dist2, ab)
	assert.Equal(t, Dist2, ba)
	assert.Equal(t, 1, n.RoadCount(), "no parallel roads")
}

// TestNetwork_SelfLoop fixes the decision that AddRoad(X, X, d) is accepted
// and stored as a single adjacency entry.
func TestNetwork_SelfLoop(t *testing.T) {
	n := buildNetwork(t, []string{LocX, LocA}, nil)

	require.NoError(t, n.AddRoad(LocX, LocX, Dist5))
	d, ok := n.Road(LocX, LocX)
	assert.True(t, ok)
	assert.Equal(t, Dist5, d)

	deg, err := n.Degree(LocX)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
	assert.Equal(t, 1, n.RoadCount())
	assert.Equal(t, []core.Road{{From: LocX, To: LocX, Distance: Dist5}}, n.Roads())

	require.NoError(t, n.RemoveRoad(LocX, LocX))
	_, ok = n.Road(LocX, LocX)
	assert.False(t, ok)
}

func TestNetwork_RemoveRoad(t *testing.T) {
	n := diamond(t)

	assert.ErrorIs(t, n.RemoveRoad(LocA, LocX), core.ErrUnknownLocation)
	assert.ErrorIs(t, n.RemoveRoad(LocX, LocA), core.ErrUnknownLocation)

	require.NoError(t, n.RemoveRoad(LocA, LocB))
	_, ok := n.Road(LocA, LocB)
	assert.False(t, ok)
	_, ok = n.Road(LocB, LocA)
	assert.False(t, ok)
	requireSymmetric(t, n)

	// Removing a road that never existed is not an error.
	require.NoError(t, n.RemoveRoad(LocA, LocD))
}

// TestNetwork_RemoveRoadIdempotent VERIFIES removing twice equals removing once.
func TestNetwork_RemoveRoadIdempotent(t *testing.T) {
	once := diamond(t)
	twice := diamond(t)

	require.NoError(t, once.RemoveRoad(LocC, LocB))
	require.NoError(t, twice.RemoveRoad(LocC, LocB))
	require.NoError(t, twice.RemoveRoad(LocC, LocB))

	assert.Equal(t, once.Roads(), twice.Roads())
	assert.Equal(t, once.LocationNames(), twice.LocationNames())
}

// TestNetwork_DeleteLocation VERIFIES cascade deletion.
// Implementation:
//   - Stage 1: Unknown names fail with ErrUnknownLocation.
//   - Stage 2: Delete a hub and assert no remaining location references it.
//   - Stage 3: Assert the deleted name can be re-added as an isolated location.
func TestNetwork_DeleteLocation(t *testing.T) {
	n := diamond(t)

	// Stage 1
	assert.ErrorIs(t, n.DeleteLocation(LocX), core.ErrUnknownLocation)

	// Stage 2
	require.NoError(t, n.DeleteLocation(LocC))
	assert.False(t, n.HasLocation(LocC))
	assert.Equal(t, []string{LocA, LocB, LocD}, n.LocationNames())
	requireNoReference(t, n, LocC)
	requireSymmetric(t, n)
	assert.Equal(t, []core.Road{
		{From: LocA, To: LocB, Distance: Dist4},
		{From: LocB, To: LocD, Distance: Dist5},
	}, n.Roads())

	_, err := n.Neighbors(LocC)
	assert.ErrorIs(t, err, core.ErrUnknownLocation)
	assert.ErrorIs(t, n.DeleteLocation(LocC), core.ErrUnknownLocation)

	// Stage 3
	require.NoError(t, n.AddLocation(LocC))
	deg, err := n.Degree(LocC)
	require.NoError(t, err)
	assert.Zero(t, deg)
}

func TestNetwork_DeleteLocationWithSelfLoop(t *testing.T) {
	n := buildNetwork(t, []string{LocA, LocB}, []roadSpec{{LocA, LocA, Dist1}, {LocA, LocB, Dist2}})

	require.NoError(t, n.DeleteLocation(LocA))
	requireNoReference(t, n, LocA)
	assert.Equal(t, 0, n.RoadCount())
}

func TestNetwork_NeighborsIsCopy(t *testing.T) {
	n := diamond(t)

	nbrs, err := n.Neighbors(LocA)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{LocB: Dist4, LocC: Dist1}, nbrs)

	nbrs[LocD] = 99
	delete(nbrs, LocB)

	_, ok := n.Road(LocA, LocD)
	assert.False(t, ok, "mutating the returned map must not add roads")
	_, ok = n.Road(LocA, LocB)
	assert.True(t, ok, "mutating the returned map must not remove roads")

	_, err = n.Neighbors(LocX)
	assert.ErrorIs(t, err, core.ErrUnknownLocation)
}

func TestNetwork_NeighborNamesAndEachNeighbor(t *testing.T) {
	n := diamond(t)

	names, err := n.NeighborNames(LocC)
	require.NoError(t, err)
	assert.Equal(t, []string{LocA, LocB, LocD}, names)

	var visited []string
	var total int64
	require.NoError(t, n.EachNeighbor(LocC, func(nbr string, d int64) {
		visited = append(visited, nbr)
		total += d
	}))
	assert.Equal(t, names, visited)
	assert.Equal(t, Dist1+Dist2+Dist8, total)

	_, err = n.NeighborNames(LocX)
	assert.ErrorIs(t, err, core.ErrUnknownLocation)
	assert.ErrorIs(t, n.EachNeighbor(LocX, func(string, int64) {}), core.ErrUnknownLocation)
	_, err = n.Degree(LocX)
	assert.ErrorIs(t, err, core.ErrUnknownLocation)
}

func TestNetwork_RoadsSnapshot(t *testing.T) {
	n := diamond(t)

	assert.Equal(t, 5, n.RoadCount())
	assert.Equal(t, []core.Road{
		{From: LocA, To: LocB, Distance: Dist4},
		{From: LocA, To: LocC, Distance: Dist1},
		{From: LocB, To: LocC, Distance: Dist2},
		{From: LocB, To: LocD, Distance: Dist5},
		{From: LocC, To: LocD, Distance: Dist8},
	}, n.Roads())

	assert.Empty(t, core.NewNetwork().Roads())
	assert.Empty(t, core.NewNetwork().LocationNames())
}

func TestNetwork_CloneIndependent(t *testing.T) {
	orig := diamond(t)
	clone := orig.Clone()

	assert.Equal(t, orig.Roads(), clone.Roads())

	require.NoError(t, clone.AddRoad(LocA, LocD, Dist1))
	require.NoError(t, clone.DeleteLocation(LocB))

	assert.True(t, orig.HasLocation(LocB))
	_, ok := orig.Road(LocA, LocD)
	assert.False(t, ok)
	assert.Equal(t, 5, orig.RoadCount())
}

func TestNetwork_Clear(t *testing.T) {
	n := diamond(t)
	n.Clear()

	assert.Zero(t, n.LocationCount())
	assert.Zero(t, n.RoadCount())
	require.NoError(t, n.AddLocation(LocA))
}

// TestNetwork_RandomMutationsKeepInvariants drives random add/remove/delete
// sequences and checks symmetry and the absence of dangling references after each step.
func TestNetwork_RandomMutationsKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	n := core.NewNetwork()
	name := func(i int) string { return fmt.Sprintf("L%d", i) }

	for step := 0; step < 2000; step++ {
		a, b := name(r.Intn(12)), name(r.Intn(12))
		switch r.Intn(5) {
		case 0:
			_ = n.AddLocation(a)
		case 1, 2:
			_ = n.AddRoad(a, b, int64(r.Intn(20)+1))
		case 3:
			_ = n.RemoveRoad(a, b)
		case 4:
			if n.HasLocation(a) {
				require.NoError(t, n.DeleteLocation(a))
				requireNoReference(t, n, a)
			}
		}
		requireSymmetric(t, n)
	}

	for _, road := range n.Roads() {
		assert.Positive(t, road.Distance)
	}
}
