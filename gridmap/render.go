package gridmap

import "strings"

// Render draws the map as text, one line per row, using Wall and Floor.
// Any position present in marks is drawn with its rune instead; marks outside
// the grid are ignored. The result has no trailing newline.
func (m *Map) Render(marks map[Position]rune) string {
	var sb strings.Builder
	sb.Grow((m.width + 1) * m.height)
	for r := 0; r < m.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < m.width; c++ {
			if ch, ok := marks[Position{Row: r, Col: c}]; ok {
				sb.WriteRune(ch)
				continue
			}
			if m.open[r][c] {
				sb.WriteRune(Floor)
			} else {
				sb.WriteRune(Wall)
			}
		}
	}

	return sb.String()
}
