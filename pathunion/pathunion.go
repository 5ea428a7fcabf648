package pathunion

import (
	"slices"

	"golang.org/x/exp/maps"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/statespace"
)

// Predecessors is the read side of a predecessor relation.
// *search.Relation satisfies it.
type Predecessors interface {
	Has(k statespace.Stamped) bool
	Predecessors(k statespace.Stamped) []statespace.Stamped
}

// Tiles is the set of positions touched by any optimal path.
type Tiles struct {
	set     map[gridmap.Position]struct{}
	visited int
}

// Reconstruct returns the union of positions over all paths that reach goal
// at exactly cost. Goal headings that never appear as keys at that cost are
// skipped. If no goal key exists the result is empty.
func Reconstruct(rel Predecessors, cost int64, goal gridmap.Position) *Tiles {
	t := &Tiles{set: make(map[gridmap.Position]struct{})}
	seen := make(map[statespace.Stamped]struct{})
	var work []statespace.Stamped

	push := func(k statespace.Stamped) {
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		work = append(work, k)
	}

	for _, h := range statespace.Headings {
		k := statespace.Stamped{Cost: cost, State: statespace.State{Pos: goal, Heading: h}}
		if rel.Has(k) {
			push(k)
		}
	}

	for len(work) > 0 {
		k := work[len(work)-1]
		work = work[:len(work)-1]
		t.set[k.Pos] = struct{}{}
		for _, p := range rel.Predecessors(k) {
			push(p)
		}
	}
	t.visited = len(seen)

	return t
}

// Count returns the number of distinct positions.
func (t *Tiles) Count() int { return len(t.set) }

// Visited returns the number of distinct cost-stamped states walked.
func (t *Tiles) Visited() int { return t.visited }

// Contains reports whether p lies on some optimal path.
func (t *Tiles) Contains(p gridmap.Position) bool {
	_, ok := t.set[p]
	return ok
}

// Positions returns the tiles in row-major order.
func (t *Tiles) Positions() []gridmap.Position {
	out := maps.Keys(t.set)
	slices.SortFunc(out, func(a, b gridmap.Position) int {
		switch {
		case a == b:
			return 0
		case a.Less(b):
			return -1
		default:
			return 1
		}
	})

	return out
}

// Marks maps every tile to r, ready for gridmap.Map.Render.
func (t *Tiles) Marks(r rune) map[gridmap.Position]rune {
	out := make(map[gridmap.Position]rune, len(t.set))
	for p := range t.set {
		out[p] = r
	}

	return out
}
