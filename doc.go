// Package lvroute is an in-memory delivery planner: a road network of named
// locations, shortest-route search, and a warehouse whose stock is routed
// out to destinations.
//
// Packages:
//
//	pq/         generic binary min-heap keyed by any ordered type
//	core/       Network: locations, symmetric weighted roads, cascade deletion
//	dijkstra/   shortest routes with a lazy-deletion queue
//	bfs/        hop-count reachability over the same network
//	warehouse/  inventory with priority selection and withdrawals
//	logistics/  plans and dispatches tying the network to the warehouse
//	config/     YAML scenarios that seed a session
//	logger/     logrus setup shared by every package
//	cli/        cobra commands and the interactive shell
//
// Quick start:
//
//	n := core.NewNetwork()
//	_ = n.AddLocation("Depot")
//	_ = n.AddLocation("Market")
//	_ = n.AddRoad("Depot", "Market", 4)
//	p, ok := dijkstra.ShortestPath(n, "Depot", "Market")
//	// p.Stops == [Depot Market], p.Distance == 4, ok == true
//
// Command line:
//
//	lvroute --config scenario.yaml route Depot Harbor
//	lvroute --config scenario.yaml dispatch --to Harbor --qty 5
//	lvroute shell
package lvroute
