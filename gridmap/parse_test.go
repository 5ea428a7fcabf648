package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridmap"
)

func TestParse_Markers(t *testing.T) {
	text := "#####\r\n#..E#\r\n#S#.#\r\n#####\r\n\r\n"
	pz, err := gridmap.Parse(text)
	require.NoError(t, err)

	assert.Equal(t, gridmap.Position{Row: 2, Col: 1}, pz.Start)
	assert.Equal(t, gridmap.Position{Row: 1, Col: 3}, pz.Goal)
	assert.Equal(t, 5, pz.Map.Width())
	assert.Equal(t, 4, pz.Map.Height())
	assert.True(t, pz.Map.IsOpen(pz.Start))
	assert.True(t, pz.Map.IsOpen(pz.Goal))
	assert.False(t, pz.Map.IsOpen(gridmap.Position{Row: 2, Col: 2}))
	assert.Equal(t, 5, pz.Map.OpenCount())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", gridmap.ErrEmptyGrid},
		{"Ragged", "#S#\n#E\n###", gridmap.ErrNonRectangular},
		{"UnknownRune", "#S#\n#x#\n#E#", gridmap.ErrUnknownCell},
		{"NoStart", "###\n#E#\n###", gridmap.ErrMissingMarker},
		{"NoGoal", "###\n#S#\n###", gridmap.ErrMissingMarker},
		{"TwoGoals", "####\n#SEE\n####", gridmap.ErrDuplicateMarker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pz, err := gridmap.Parse(tc.text)
			assert.Nil(t, pz)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestRender_RoundTrip(t *testing.T) {
	text := "#####\n#..E#\n#S#.#\n#####"
	pz, err := gridmap.Parse(text)
	require.NoError(t, err)

	marks := map[gridmap.Position]rune{
		pz.Start:         gridmap.Start,
		pz.Goal:          gridmap.Goal,
		{Row: 9, Col: 9}: 'O', // outside the grid, ignored
		{Row: 1, Col: 1}: 'O',
	}
	assert.Equal(t, "#####\n#O.E#\n#S#.#\n#####", pz.Map.Render(marks))
	assert.Equal(t, "#####\n#...#\n#.#.#\n#####", pz.Map.Render(nil))
}
