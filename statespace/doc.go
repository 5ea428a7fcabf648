// Package statespace defines the search graph explored by package search:
// nodes are (Position, Heading) pairs and edges are the two transition kinds
// of the reindeer maze.
//
//   - Advance: move one cell along the current heading. Legal only when the
//     cell ahead is open. Costs Costs.Step (default 1).
//   - RotateLeft / RotateRight: turn 90° in place. Always legal.
//     Costs Costs.Turn (default 1000).
//
// There is no "stay" move and no single-step 180° turn.
//
// Two key types share the same underlying node:
//
//   - State{Pos, Heading} identifies a node for frontier admission and expansion.
//   - Stamped{Cost, State} identifies a node reached at one exact cumulative cost;
//     it is the key of the predecessor relation. Stamped values that share a State
//     but differ in Cost are distinct keys.
package statespace
