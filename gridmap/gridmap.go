package gridmap

import (
	"tailscale.com/util/deephash"
)

// NewMap constructs a Map from a non-empty, rectangular 2D slice of open flags.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if open has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewMap(open [][]bool) (*Map, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(open), len(open[0])
	for _, row := range open {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]bool, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]bool, w)
		copy(cells[r], open[r])
	}

	return &Map{width: w, height: h, open: cells}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// InBounds reports whether p lies within the grid boundaries.
// A nil Map has no cells.
// Complexity: O(1).
func (m *Map) InBounds(p Position) bool {
	if m == nil {
		return false
	}
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// IsOpen reports whether p can be entered. Out-of-bounds positions are closed,
// so a maze whose border is not fully walled still cannot be left.
// Complexity: O(1).
func (m *Map) IsOpen(p Position) bool {
	return m.InBounds(p) && m.open[p.Row][p.Col]
}

// OpenCount returns the number of open cells.
func (m *Map) OpenCount() int {
	n := 0
	for _, row := range m.open {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}

	return n
}

// Fingerprint returns a structural hash of the grid contents.
// Two maps with identical cells share a fingerprint.
func (m *Map) Fingerprint() deephash.Sum {
	return deephash.Hash(&m.open)
}
