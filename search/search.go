package search

import (
	"fmt"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/statespace"
)

// Search computes the minimal cumulative cost from (start, heading) to the goal
// position, reached with any heading, and builds the predecessor Relation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. m must be non-nil (ErrNilMap).
//  3. heading must be cardinal, start and goal must be open and distinct
//     (ErrInvalidInput).
//
// On success the Result carries the minimal cost and the Relation; if the goal
// cannot be reached (or only beyond MaxCost) Search returns ErrUnreachableGoal.
//
// Complexity:
//
//   - Time:  O(S log S), S = number of reachable states.
//   - Space: O(S + E).
func Search(m statespace.Opener, start gridmap.Position, heading statespace.Heading, goal gridmap.Position, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate input before touching any search state
	if m == nil {
		return nil, ErrNilMap
	}
	if err := validate(m, start, heading, goal); err != nil {
		return nil, err
	}

	// 3) Run
	r := &runner{
		m:     m,
		opts:  cfg,
		goal:  goal,
		best:  make(map[statespace.State]int64),
		done:  make(map[statespace.State]bool),
		pq:    newFrontier[statespace.State, int64](64),
		preds: NewRelation(),
		buf:   make([]statespace.Move, 0, 3),
	}
	seed := statespace.State{Pos: start, Heading: heading}
	r.admit(seed, 0)

	reached, ok := r.process()
	if !ok {
		return nil, fmt.Errorf("%w: %v from %v after %d expansions", ErrUnreachableGoal, goal, seed, r.expanded)
	}

	return &Result{
		Cost:     reached.Cost,
		Start:    seed,
		Goal:     goal,
		Reached:  reached,
		Relation: r.preds,
		Expanded: r.expanded,
	}, nil
}

func validate(m statespace.Opener, start gridmap.Position, heading statespace.Heading, goal gridmap.Position) error {
	switch {
	case !heading.Valid():
		return fmt.Errorf("%w: start heading %v", ErrInvalidInput, heading)
	case !m.IsOpen(start):
		return fmt.Errorf("%w: start %v is blocked or out of bounds", ErrInvalidInput, start)
	case !m.IsOpen(goal):
		return fmt.Errorf("%w: goal %v is blocked or out of bounds", ErrInvalidInput, goal)
	case start == goal:
		return fmt.Errorf("%w: start and goal are both %v", ErrInvalidInput, start)
	}

	return nil
}

// runner holds the mutable state for a single Search execution.
// Nothing here outlives the call except the Relation handed to Result.
type runner struct {
	m        statespace.Opener
	opts     Options
	goal     gridmap.Position
	best     map[statespace.State]int64 // lowest cost each State was admitted at
	done     map[statespace.State]bool  // finalized States; never expanded again
	pq       *frontier[statespace.State, int64]
	preds    *Relation
	buf      []statespace.Move
	expanded int
}

// admit pushes s at cost unless it is finalized or already queued at a cost ≤ cost.
func (r *runner) admit(s statespace.State, cost int64) {
	if r.done[s] {
		return
	}
	if b, ok := r.best[s]; ok && b <= cost {
		return
	}
	r.best[s] = cost
	r.pq.push(s, cost)
}

// process pops states in ascending cost order until the goal position is popped.
// It reports false if the frontier empties or MaxCost is exceeded first.
func (r *runner) process() (statespace.Stamped, bool) {
	for r.pq.Len() > 0 {
		s, cost := r.pq.pop()

		// Stale duplicate from a cheaper re-admission.
		if r.done[s] {
			continue
		}
		if cost > r.opts.MaxCost {
			break
		}
		r.done[s] = true
		r.expanded++

		cur := statespace.Stamped{Cost: cost, State: s}
		r.opts.OnExpand(cur)
		if s.Pos == r.goal {
			return cur, true
		}
		r.relax(cur)
	}

	return statespace.Stamped{}, false
}

// relax records an edge for every legal transition out of cur and admits the target.
func (r *runner) relax(cur statespace.Stamped) {
	r.buf = statespace.AppendMoves(r.buf[:0], r.m, cur.State, r.opts.Costs)
	for _, mv := range r.buf {
		next := statespace.Stamped{Cost: cur.Cost + mv.Delta, State: mv.To}
		r.preds.Add(next, cur)
		r.admit(mv.To, next.Cost)
	}
}
