// Package magicmap is a navigation backend for a theme park: attractions,
// stores and food stations are nodes, walkways are weighted edges, and a
// visitor asks for the shortest walk between two of them, optionally one
// that avoids paths unusable with a wheelchair or stroller.
//
// 🚀 What is in the box?
//
//	• Map construction from tabular records, with every bad row rejected
//	  with its index, field and value
//	• Shortest routes (Dijkstra) with a deterministic tie-break
//	• Accessible routes computed on a derived copy, so the loaded map is
//	  never altered
//	• All-pairs reachability check
//	• Interactive console navigation, a JSON HTTP API and Graphviz output
//
// Packages:
//
//	core/          Graph, Node, Edge, record validation and Construct
//	routing/       FindShortestPath, FindShortestPathAccessible
//	connectivity/  VerifyAllPaths, Reachable
//	loader/        CSV files → records → Graph
//	navigator/     interactive visitor session
//	render/        colour-coded DOT output
//	server/        HTTP handlers on gorilla/mux
//	config/        viper + dotenv settings
//	logger/        zap logger
//	cmd/magicmap/  the binary
//
// Quick example:
//
//	g, _ := loader.LoadFiles("data/node.csv", "data/edge.csv")
//	r, _ := routing.FindShortestPath(g, 1, 8)
//	fmt.Println(r.Distance, r.Path()) // 1310 [1 2 5 8]
package magicmap
