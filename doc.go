// Package mazepath solves the reindeer maze: the cheapest way from a start
// tile to a goal tile when a step costs 1 and a 90° turn costs 1000, plus the
// number of tiles lying on any of the cheapest routes.
//
// Under the hood, everything is organized in small packages:
//
//	gridmap/    - immutable traversability Map, maze text parser, overlay renderer
//	statespace/ - Heading, State, cost-stamped states and the advance/rotate moves
//	search/     - Dijkstra-style search building the cost-stamped predecessor relation
//	pathunion/  - backward walk collecting every tile on a tied optimal route
//	solver/     - Solve / SolveText: both answers from one search
//	server/     - HTTP adapter (POST /solve)
//	cmd/mazepath - command-line entry point
//
// Quick ASCII example:
//
//	#####
//	#..E#
//	#S..#
//	#####
//
// Facing East, the best route is three steps and one turn: score 1003, 4 tiles.
//
//	go get github.com/katalvlaran/mazepath
package mazepath
