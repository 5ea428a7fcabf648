package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/search"
	"github.com/katalvlaran/mazepath/statespace"
)

func stamped(cost int64, r, c int, h statespace.Heading) statespace.Stamped {
	return statespace.Stamped{Cost: cost, State: statespace.State{Pos: gridmap.Position{Row: r, Col: c}, Heading: h}}
}

func TestRelation_AddAndQuery(t *testing.T) {
	rel := search.NewRelation()
	to := stamped(1001, 2, 2, statespace.North)

	assert.True(t, rel.Add(to, stamped(1, 2, 2, statespace.East)))
	assert.True(t, rel.Add(to, stamped(1000, 3, 2, statespace.North)))
	assert.False(t, rel.Add(to, stamped(1, 2, 2, statespace.East)), "duplicate edge")

	assert.Equal(t, 1, rel.Len())
	assert.Equal(t, 2, rel.EdgeCount())
	assert.True(t, rel.Has(to))
	assert.False(t, rel.Has(stamped(2001, 2, 2, statespace.North)), "same state, other cost")
	assert.Equal(t,
		[]statespace.Stamped{stamped(1, 2, 2, statespace.East), stamped(1000, 3, 2, statespace.North)},
		rel.Predecessors(to))
}

func TestRelation_EachStops(t *testing.T) {
	rel := search.NewRelation()
	rel.Add(stamped(1, 1, 2, statespace.East), stamped(0, 1, 1, statespace.East))
	rel.Add(stamped(1000, 1, 1, statespace.North), stamped(0, 1, 1, statespace.East))
	rel.Add(stamped(1000, 1, 1, statespace.South), stamped(0, 1, 1, statespace.East))

	calls := 0
	rel.Each(func(_, _ statespace.Stamped) bool {
		calls++
		return false
	})
	assert.Equal(t, 1, calls)
}
