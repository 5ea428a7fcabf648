package solver_test

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/statespace"
)

const unreachable = int64(math.MaxInt64 / 4)

// referenceSolve is an exhaustive fixpoint solver: forward Bellman-Ford from the
// start state, backward Bellman-Ford from all four goal states. A state lies on
// an optimal path iff forward + backward distance equals the minimum.
// It shares nothing with package search beyond the transition rules.
func referenceSolve(m *gridmap.Map, start gridmap.Position, h0 statespace.Heading, goal gridmap.Position, c statespace.Costs) (int64, map[gridmap.Position]bool) {
	type edge struct {
		from, to statespace.State
		cost     int64
	}
	var states []statespace.State
	var edges []edge
	for r := 0; r < m.Height(); r++ {
		for col := 0; col < m.Width(); col++ {
			p := gridmap.Position{Row: r, Col: col}
			if !m.IsOpen(p) {
				continue
			}
			for _, h := range statespace.Headings {
				s := statespace.State{Pos: p, Heading: h}
				states = append(states, s)
				for _, mv := range statespace.Moves(m, s, c) {
					edges = append(edges, edge{from: s, to: mv.To, cost: mv.Delta})
				}
			}
		}
	}

	fwd := make(map[statespace.State]int64, len(states))
	bwd := make(map[statespace.State]int64, len(states))
	for _, s := range states {
		fwd[s], bwd[s] = unreachable, unreachable
	}
	fwd[statespace.State{Pos: start, Heading: h0}] = 0
	for _, h := range statespace.Headings {
		bwd[statespace.State{Pos: goal, Heading: h}] = 0
	}

	for changed := true; changed; {
		changed = false
		for _, e := range edges {
			if d := fwd[e.from] + e.cost; d < fwd[e.to] {
				fwd[e.to] = d
				changed = true
			}
			if d := bwd[e.to] + e.cost; d < bwd[e.from] {
				bwd[e.from] = d
				changed = true
			}
		}
	}

	best := unreachable
	for _, h := range statespace.Headings {
		if d := fwd[statespace.State{Pos: goal, Heading: h}]; d < best {
			best = d
		}
	}
	tiles := make(map[gridmap.Position]bool)
	if best == unreachable {
		return best, tiles
	}
	for _, s := range states {
		if fwd[s]+bwd[s] == best {
			tiles[s.Pos] = true
		}
	}

	return best, tiles
}

// randomMaze builds a walled size×size map whose interior cells are open with
// probability density, plus two distinct open cells for start and goal.
// ok is false when fewer than two interior cells are open.
func randomMaze(rng *rand.Rand, size int, density float64) (m *gridmap.Map, start, goal gridmap.Position, ok bool) {
	open := make([][]bool, size)
	var cells []gridmap.Position
	for r := range open {
		open[r] = make([]bool, size)
		for c := range open[r] {
			if r == 0 || c == 0 || r == size-1 || c == size-1 {
				continue
			}
			if rng.Float64() < density {
				open[r][c] = true
				cells = append(cells, gridmap.Position{Row: r, Col: c})
			}
		}
	}
	if len(cells) < 2 {
		return nil, start, goal, false
	}
	m, err := gridmap.NewMap(open)
	if err != nil {
		panic(err)
	}
	i := rng.Intn(len(cells))
	j := rng.Intn(len(cells) - 1)
	if j >= i {
		j++
	}

	return m, cells[i], cells[j], true
}
