package statespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/mazepath/gridmap"
)

// ErrUnknownHeading indicates ParseHeading received an unrecognized name.
var ErrUnknownHeading = errors.New("statespace: unknown heading")

// Heading is one of the four cardinal facing directions.
type Heading int

const (
	// North faces towards decreasing Row.
	North Heading = iota
	// East faces towards increasing Col.
	East
	// South faces towards increasing Row.
	South
	// West faces towards decreasing Col.
	West
)

// Headings lists every heading in clockwise order starting at North.
var Headings = [4]Heading{North, East, South, West}

// deltas holds the (row, col) step for each heading, indexed by Heading.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the (row, col) offset of one step along h.
func (h Heading) Delta() (dr, dc int) {
	d := deltas[h]
	return d[0], d[1]
}

// Right returns h turned 90° clockwise.
func (h Heading) Right() Heading { return (h + 1) % 4 }

// Left returns h turned 90° counter-clockwise.
func (h Heading) Left() Heading { return (h + 3) % 4 }

// Valid reports whether h is one of the four cardinal headings.
func (h Heading) Valid() bool { return h >= North && h <= West }

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// ParseHeading accepts a single letter (N, E, S, W) or the full name,
// case-insensitively.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north", "up":
		return North, nil
	case "e", "east", "right":
		return East, nil
	case "s", "south", "down":
		return South, nil
	case "w", "west", "left":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}

// State is a search-graph node: a position and the heading faced there.
type State struct {
	Pos     gridmap.Position
	Heading Heading
}

func (s State) String() string {
	return fmt.Sprintf("%v/%v", s.Pos, s.Heading)
}

// Stamped is a State reached at one exact cumulative cost.
// It is the predecessor-relation key; equality includes Cost.
type Stamped struct {
	Cost int64
	State
}

func (s Stamped) String() string {
	return fmt.Sprintf("%d@%v", s.Cost, s.State)
}

// Kind names a transition.
type Kind int

const (
	// Advance moves one cell forward.
	Advance Kind = iota
	// RotateLeft turns 90° counter-clockwise in place.
	RotateLeft
	// RotateRight turns 90° clockwise in place.
	RotateRight
)

func (k Kind) String() string {
	switch k {
	case Advance:
		return "advance"
	case RotateLeft:
		return "rotate-left"
	case RotateRight:
		return "rotate-right"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Move is one legal transition out of a State.
type Move struct {
	Kind  Kind
	To    State
	Delta int64 // incremental cost, always positive
}

// Costs configures the price of each transition kind.
type Costs struct {
	Step int64 `json:"step"` // cost of Advance
	Turn int64 `json:"turn"` // cost of RotateLeft / RotateRight
}

// DefaultCosts returns the reindeer-maze prices: 1 per step, 1000 per turn.
func DefaultCosts() Costs {
	return Costs{Step: 1, Turn: 1000}
}

// Opener is the traversability oracle the state space needs.
// *gridmap.Map satisfies it.
type Opener interface {
	IsOpen(p gridmap.Position) bool
}
