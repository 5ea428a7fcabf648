// Package search implements a Dijkstra-style search over the reindeer-maze
// state space that, in a single pass, yields both the minimal cumulative cost
// to a goal position and a predecessor relation able to recover every
// cost-tied optimal path.
//
// The search keeps two key granularities over the same node:
//
//   - Frontier admission and expansion are keyed by statespace.State
//     (Position, Heading). Each State is expanded at most once, at its final
//     minimal cost.
//   - The predecessor Relation is keyed by statespace.Stamped
//     (Cost, Position, Heading). Every generated edge is recorded, so several
//     edges producing the same Stamped key merge into a multi-element
//     predecessor set. That merge is what preserves ties.
//
// The search stops at the first frontier pop whose position equals the goal.
// Because every edge cost is positive, that pop carries the global minimum over
// all four goal headings.
//
// Complexity:
//
//   - Time:  O(S log S) where S = 4 × open cells (each State expanded once,
//     at most three outgoing edges).
//   - Space: O(S) for the finalized/best maps and O(E) for the Relation.
//
// Errors (sentinel):
//
//   - ErrNilMap            if the map is nil.
//   - ErrInvalidInput      if start or goal is blocked or out of bounds,
//     start equals goal, or the start heading is not cardinal.
//   - ErrUnreachableGoal   if the frontier empties (or MaxCost is exceeded)
//     before the goal position is popped.
//   - ErrOptionViolation   if an Option received an invalid value.
//
// Example usage:
//
//	res, err := search.Search(pz.Map, pz.Start, statespace.East, pz.Goal)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Cost, res.Relation.Len())
package search
