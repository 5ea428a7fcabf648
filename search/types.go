package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/statespace"
)

// Sentinel errors returned by Search.
var (
	// ErrNilMap indicates that a nil map was passed to Search.
	ErrNilMap = errors.New("search: map is nil")

	// ErrInvalidInput indicates the start/goal positions or the start heading
	// cannot seed a search. The search never starts in this case.
	ErrInvalidInput = errors.New("search: invalid input")

	// ErrUnreachableGoal indicates the frontier emptied before the goal was reached.
	// Retrying on the same map always fails the same way.
	ErrUnreachableGoal = errors.New("search: goal is unreachable")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Options configures Search.
//
// Costs    - per-transition prices; both must be positive. Default statespace.DefaultCosts().
// MaxCost  - popped states costing more than this end the search. Default math.MaxInt64.
// OnExpand - called once per expanded (finalized) state, in expansion order.
type Options struct {
	Costs    statespace.Costs
	MaxCost  int64
	OnExpand func(s statespace.Stamped)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the reindeer-maze defaults: step 1, turn 1000,
// no cost cap and a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Costs:    statespace.DefaultCosts(),
		MaxCost:  math.MaxInt64,
		OnExpand: func(statespace.Stamped) {},
	}
}

// WithCosts replaces both transition prices.
func WithCosts(c statespace.Costs) Option {
	return func(o *Options) {
		WithStepCost(c.Step)(o)
		WithTurnCost(c.Turn)(o)
	}
}

// WithStepCost sets the price of one Advance. Must be positive.
func WithStepCost(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: step cost must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Costs.Step = n
	}
}

// WithTurnCost sets the price of one 90° rotation. Must be positive.
func WithTurnCost(n int64) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: turn cost must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Costs.Turn = n
	}
}

// WithMaxCost stops the search once the cheapest frontier entry costs more than max.
// A goal beyond the cap is reported as ErrUnreachableGoal. Must be non-negative.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnExpand registers a callback run for each state as it is finalized.
func WithOnExpand(fn func(s statespace.Stamped)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of a successful Search.
type Result struct {
	// Cost is the minimal cumulative cost from Start to Goal over any heading.
	Cost int64
	// Start is the seeded state (cost 0).
	Start statespace.State
	// Goal is the goal position.
	Goal gridmap.Position
	// Reached is the first goal state popped from the frontier.
	Reached statespace.Stamped
	// Relation is the predecessor relation built during the search.
	Relation *Relation
	// Expanded counts finalized states.
	Expanded int
}

// GoalKeys returns the Stamped keys (Cost, Goal, h) present in the Relation,
// one per goal heading reached at exactly the minimal cost.
func (r *Result) GoalKeys() []statespace.Stamped {
	keys := make([]statespace.Stamped, 0, len(statespace.Headings))
	for _, h := range statespace.Headings {
		k := statespace.Stamped{Cost: r.Cost, State: statespace.State{Pos: r.Goal, Heading: h}}
		if r.Relation.Has(k) {
			keys = append(keys, k)
		}
	}

	return keys
}
