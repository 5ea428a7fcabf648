package gridmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridmap"
)

//----------------------------------------------------------------------------//
// NewMap, InBounds and IsOpen Tests
//----------------------------------------------------------------------------//

// TestNewMap_Errors verifies that NewMap rejects empty or ragged inputs.
func TestNewMap_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]bool
		err  error
	}{
		{"EmptyRows", [][]bool{}, gridmap.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridmap.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, false}, {true}}, gridmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := gridmap.NewMap(tc.grid)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestNewMap_DeepCopy checks that mutating the input after construction
// does not leak into the Map.
func TestNewMap_DeepCopy(t *testing.T) {
	grid := [][]bool{{true, false}, {false, true}}
	m, err := gridmap.NewMap(grid)
	require.NoError(t, err)
	before := m.Fingerprint()

	grid[0][1] = true
	assert.False(t, m.IsOpen(gridmap.Position{Row: 0, Col: 1}))
	assert.Equal(t, before, m.Fingerprint())
}

// TestIsOpen checks walls, floor and out-of-bounds lookups on a 2×3 grid.
func TestIsOpen(t *testing.T) {
	m, err := gridmap.NewMap([][]bool{
		{true, false, true},
		{false, true, true},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.Width())
	assert.Equal(t, 2, m.Height())
	assert.Equal(t, 4, m.OpenCount())

	open := []gridmap.Position{{0, 0}, {0, 2}, {1, 1}, {1, 2}}
	for _, p := range open {
		assert.True(t, m.IsOpen(p), "IsOpen(%v)", p)
	}
	closed := []gridmap.Position{{0, 1}, {1, 0}, {-1, 0}, {0, 3}, {2, 1}, {1, -1}}
	for _, p := range closed {
		assert.False(t, m.IsOpen(p), "IsOpen(%v)", p)
	}
	assert.False(t, m.InBounds(gridmap.Position{Row: 2, Col: 0}))
	assert.True(t, m.InBounds(gridmap.Position{Row: 1, Col: 2}))
}

func TestFingerprint_DistinguishesMaps(t *testing.T) {
	a, err := gridmap.NewMap([][]bool{{true, false}})
	require.NoError(t, err)
	b, err := gridmap.NewMap([][]bool{{true, false}})
	require.NoError(t, err)
	c, err := gridmap.NewMap([][]bool{{false, true}})
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())
}

func TestPosition_LessAndString(t *testing.T) {
	assert.True(t, gridmap.Position{Row: 0, Col: 5}.Less(gridmap.Position{Row: 1, Col: 0}))
	assert.True(t, gridmap.Position{Row: 1, Col: 0}.Less(gridmap.Position{Row: 1, Col: 1}))
	assert.False(t, gridmap.Position{Row: 1, Col: 1}.Less(gridmap.Position{Row: 1, Col: 1}))
	assert.Equal(t, "3,4", gridmap.Position{Row: 3, Col: 4}.String())
	assert.Equal(t, gridmap.Position{Row: 2, Col: 5}, gridmap.Position{Row: 3, Col: 4}.Add(-1, 1))
}
