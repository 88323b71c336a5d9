// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvroute/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Network.
//   - Provide invariant checks shared by the method and property tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/core"
)

// Common location names used across core tests.
const (
	LocEmpty = ""

	LocA = "A"
	LocB = "B"
	LocC = "C"
	LocD = "D"

	LocX = "X"

	LocDepot  = "Depot"
	LocMarket = "Market"
	LocHarbor = "Harbor"
)

// Common distances used across core tests (avoid magic numbers in test bodies).
const (
	Dist1 int64 = 1
	Dist2 int64 = 2
	Dist4 int64 = 4
	Dist5 int64 = 5
	Dist8 int64 = 8
)

// roadSpec is a compact road literal for fixtures.
type roadSpec struct {
	from, to string
	d        int64
}

// buildNetwork adds every name, then every road, failing the test on error.
func buildNetwork(t *testing.T, names []string, roads []roadSpec) *core.Network {
	t.Helper()
	n := core.NewNetwork()
	for _, name := range names {
		require.NoError(t, n.AddLocation(name), "AddLocation(%q)", name)
	}
	for _, r := range roads {
		require.NoError(t, n.AddRoad(r.from, r.to, r.d), "AddRoad(%q,%q,%d)", r.from, r.to, r.d)
	}

	return n
}

// diamond returns the A,B,C,D network from the routing scenario:
// A-B(4), A-C(1), C-B(2), B-D(5), C-D(8).
func diamond(t *testing.T) *core.Network {
	t.Helper()

	return buildNetwork(t,
		[]string{LocA, LocB, LocC, LocD},
		[]roadSpec{
			{LocA, LocB, Dist4},
			{LocA, LocC, Dist1},
			{LocC, LocB, Dist2},
			{LocB, LocD, Dist5},
			{LocC, LocD, Dist8},
		})
}

// requireSymmetric asserts that every adjacency entry is mirrored with the same distance.
func requireSymmetric(t *testing.T, n *core.Network) {
	t.Helper()
	for _, name := range n.LocationNames() {
		nbrs, err := n.Neighbors(name)
		require.NoError(t, err)
		for nbr, d := range nbrs {
			back, ok := n.Road(nbr, name)
			require.True(t, ok, "missing mirror %s->%s", nbr, name)
			require.Equal(t, d, back, "asymmetric weight %s<->%s", name, nbr)
		}
	}
}

// requireNoReference asserts that no remaining location lists gone as a neighbor.
func requireNoReference(t *testing.T, n *core.Network, gone string) {
	t.Helper()
	for _, name := range n.LocationNames() {
		nbrs, err := n.Neighbors(name)
		require.NoError(t, err)
		_, dangling := nbrs[gone]
		require.False(t, dangling, "%s still references %s", name, gone)
	}
}
