// Package pathunion recovers every cell that lies on at least one
// minimal-cost path, given the predecessor relation built by package search.
//
// Reconstruct walks the relation backwards from the goal keys
// (Cost, Goal, h) for each heading h present in the relation. Because
// every edge strictly increases cost, the relation is acyclic and the walk
// terminates. The walk uses an explicit worklist, so deep relations (large
// total costs) do not grow the call stack. Each cost-stamped key is visited
// once, so the work is linear in the size of the optimal sub-DAG rather than
// in the (possibly exponential) number of optimal paths.
package pathunion
