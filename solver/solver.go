// Package solver is the single entry point of mazepath: it runs the search,
// reconstructs the union of optimal tiles, and returns both answers.
//
// Example usage:
//
//	ans, err := solver.SolveText(text)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ans.MinimalCost, ans.TileCount)
package solver

import (
	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/pathunion"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/statespace"
)

// DefaultHeading is the heading the reindeer faces on the start tile
// when the caller does not choose one.
const DefaultHeading = statespace.East

// Answer holds both results of a solve.
type Answer struct {
	// MinimalCost is the lowest total cost from start to goal.
	MinimalCost int64
	// TileCount is the number of distinct cells on any minimal-cost path,
	// start and goal included.
	TileCount int
	// Tiles lists those cells in row-major order.
	Tiles []gridmap.Position
	// Expanded counts the states finalized by the search.
	Expanded int
}

// Solve finds the minimal cost from (start, heading) to goal on m and counts
// the cells covered by all cost-tied optimal paths.
// Errors are those of search.Search: ErrNilMap, ErrInvalidInput,
// ErrUnreachableGoal, ErrOptionViolation.
func Solve(m *gridmap.Map, start gridmap.Position, heading statespace.Heading, goal gridmap.Position, opts ...search.Option) (Answer, error) {
	if m == nil {
		return Answer{}, search.ErrNilMap
	}
	res, err := search.Search(m, start, heading, goal, opts...)
	if err != nil {
		return Answer{}, err
	}
	tiles := pathunion.Reconstruct(res.Relation, res.Cost, res.Goal)

	return Answer{
		MinimalCost: res.Cost,
		TileCount:   tiles.Count(),
		Tiles:       tiles.Positions(),
		Expanded:    res.Expanded,
	}, nil
}

// SolvePuzzle solves a parsed puzzle from its 'S' tile facing heading.
func SolvePuzzle(pz *gridmap.Puzzle, heading statespace.Heading, opts ...search.Option) (Answer, error) {
	if pz == nil {
		return Answer{}, search.ErrNilMap
	}
	return Solve(pz.Map, pz.Start, heading, pz.Goal, opts...)
}

// SolveText parses a maze text and solves it facing DefaultHeading.
func SolveText(text string, opts ...search.Option) (Answer, error) {
	pz, err := gridmap.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	return SolvePuzzle(pz, DefaultHeading, opts...)
}
