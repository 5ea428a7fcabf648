package gridmap

import (
	"fmt"
	"strings"
)

// Parse reads a maze in the text format
//
//	#####
//	#..E#
//	#S#.#
//	#####
//
// where '#' is a wall, '.' is floor, and 'S' / 'E' mark exactly one start and
// one goal tile (both open). Carriage returns and trailing blank lines are ignored.
// Rows must all have the same length.
func Parse(text string) (*Puzzle, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	open := make([][]bool, len(lines))
	var start, goal []Position
	for r, line := range lines {
		row := make([]bool, 0, len(line))
		for c, ch := range []rune(line) {
			switch ch {
			case Wall:
				row = append(row, false)
			case Floor:
				row = append(row, true)
			case Start:
				start = append(start, Position{Row: r, Col: c})
				row = append(row, true)
			case Goal:
				goal = append(goal, Position{Row: r, Col: c})
				row = append(row, true)
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrUnknownCell, ch, r, c)
			}
		}
		open[r] = row
	}

	m, err := NewMap(open)
	if err != nil {
		return nil, err
	}
	if len(start) == 0 || len(goal) == 0 {
		return nil, fmt.Errorf("%w: %d start, %d goal", ErrMissingMarker, len(start), len(goal))
	}
	if len(start) > 1 || len(goal) > 1 {
		return nil, fmt.Errorf("%w: %d start, %d goal", ErrDuplicateMarker, len(start), len(goal))
	}

	return &Puzzle{Map: m, Start: start[0], Goal: goal[0]}, nil
}
