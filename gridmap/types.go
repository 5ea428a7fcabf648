// Package gridmap defines core types and sentinel errors
// for the gridmap subpackage of github.com/katalvlaran/mazepath.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrUnknownCell indicates a rune that is not part of the maze alphabet.
	ErrUnknownCell = errors.New("gridmap: unknown cell rune")
	// ErrMissingMarker indicates the start or goal marker is absent.
	ErrMissingMarker = errors.New("gridmap: start or goal marker not found")
	// ErrDuplicateMarker indicates the start or goal marker appears more than once.
	ErrDuplicateMarker = errors.New("gridmap: start or goal marker appears more than once")
)

// Maze alphabet understood by Parse and produced by Render.
const (
	Wall  = '#'
	Floor = '.'
	Start = 'S'
	Goal  = 'E'
)

// Position is a grid-cell coordinate. Row grows downwards, Col grows to the right.
// Position is comparable and safe to use as a map key.
type Position struct {
	Row, Col int
}

// Add returns p shifted by (dr, dc).
func (p Position) Add(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// Less orders positions row-major.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}

	return p.Col < q.Col
}

// Map is an immutable 2-D traversability oracle.
// open[r][c] is true when the cell at row r, column c can be entered.
type Map struct {
	width, height int
	open          [][]bool
}

// Puzzle is the result of parsing a maze text: the Map plus the
// start and goal tiles marked 'S' and 'E'.
type Puzzle struct {
	Map   *Map
	Start Position
	Goal  Position
}
