package search

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/mazepath/statespace"
)

// Relation maps each cost-stamped state to the set of cost-stamped states
// that reach it by a single transition at exactly that cost.
// It only grows; edges are never removed.
type Relation struct {
	preds map[statespace.Stamped]map[statespace.Stamped]struct{}
	edges int
}

// NewRelation returns an empty Relation.
func NewRelation() *Relation {
	return &Relation{preds: make(map[statespace.Stamped]map[statespace.Stamped]struct{})}
}

// Add records the edge from → to. It reports whether the edge was new.
func (r *Relation) Add(to, from statespace.Stamped) bool {
	set, ok := r.preds[to]
	if !ok {
		set = make(map[statespace.Stamped]struct{}, 2)
		r.preds[to] = set
	}
	if _, dup := set[from]; dup {
		return false
	}
	set[from] = struct{}{}
	r.edges++

	return true
}

// Has reports whether k has at least one recorded predecessor.
func (r *Relation) Has(k statespace.Stamped) bool {
	_, ok := r.preds[k]
	return ok
}

// Predecessors returns the direct predecessors of k, ordered by cost,
// then position, then heading. It returns nil when k is not a key.
func (r *Relation) Predecessors(k statespace.Stamped) []statespace.Stamped {
	set, ok := r.preds[k]
	if !ok {
		return nil
	}
	out := make([]statespace.Stamped, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	slices.SortFunc(out, compareStamped)

	return out
}

// Len returns the number of keys.
func (r *Relation) Len() int { return len(r.preds) }

// EdgeCount returns the number of distinct recorded edges.
func (r *Relation) EdgeCount() int { return r.edges }

// Each calls fn for every edge from → to until fn returns false.
// Iteration order is unspecified.
func (r *Relation) Each(fn func(to, from statespace.Stamped) bool) {
	for to, set := range r.preds {
		for from := range set {
			if !fn(to, from) {
				return
			}
		}
	}
}

func compareStamped(a, b statespace.Stamped) int {
	switch {
	case a.Cost != b.Cost:
		return cmp.Compare(a.Cost, b.Cost)
	case a.Pos != b.Pos:
		if a.Pos.Less(b.Pos) {
			return -1
		}
		return 1
	default:
		return int(a.Heading) - int(b.Heading)
	}
}
