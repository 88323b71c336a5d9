// Package dijkstra_test provides examples demonstrating how to route over a core.Network.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvroute/core"
	"github.com/katalvlaran/lvroute/dijkstra"
)

// ExampleShortestPath routes across the four-location diamond:
//
//	A ──4── B
//	│     ╱ │
//	1   2   5
//	│ ╱     │
//	C ──8── D
//
// A→C→B→D costs 1+2+5 = 8, cheaper than A→B→D or A→C→D (both 9).
func ExampleShortestPath() {
	n := core.NewNetwork()
	for _, name := range []string{"A", "B", "C", "D"} {
		_ = n.AddLocation(name)
	}
	_ = n.AddRoad("A", "B", 4)
	_ = n.AddRoad("A", "C", 1)
	_ = n.AddRoad("C", "B", 2)
	_ = n.AddRoad("B", "D", 5)
	_ = n.AddRoad("C", "D", 8)

	p, ok := dijkstra.ShortestPath(n, "A", "D")
	if !ok {
		fmt.Println("no route")
		return
	}
	fmt.Printf("%s (distance %d)\n", strings.Join(p.Stops, " -> "), p.Distance)

	_, ok = dijkstra.ShortestPath(n, "A", "Nowhere")
	fmt.Println("to unknown location:", ok)

	// Output:
	// A -> C -> B -> D (distance 8)
	// to unknown location: false
}

// ExampleDistances computes the full shortest-path tree from one depot.
func ExampleDistances() {
	n := core.NewNetwork()
	for _, name := range []string{"Depot", "Market", "Harbor", "Island"} {
		_ = n.AddLocation(name)
	}
	_ = n.AddRoad("Depot", "Market", 4)
	_ = n.AddRoad("Market", "Harbor", 3)
	_ = n.AddRoad("Depot", "Harbor", 9)

	tree, err := dijkstra.Distances(n, "Depot")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, name := range n.LocationNames() {
		if tree.Dist[name] == dijkstra.Unreachable {
			fmt.Printf("%s: unreachable\n", name)
			continue
		}
		fmt.Printf("%s: %d\n", name, tree.Dist[name])
	}

	// Output:
	// Depot: 0
	// Harbor: 7
	// Island: unreachable
	// Market: 4
}
