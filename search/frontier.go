package search

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// frontierItem pairs a queued value with its priority.
type frontierItem[T any, P constraints.Integer] struct {
	value T
	prio  P
}

// frontierHeap is the heap.Interface backing frontier, ordered by prio ascending.
type frontierHeap[T any, P constraints.Integer] []frontierItem[T, P]

func (h frontierHeap[T, P]) Len() int           { return len(h) }
func (h frontierHeap[T, P]) Less(i, j int) bool { return h[i].prio < h[j].prio }
func (h frontierHeap[T, P]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap[T, P]) Push(x interface{}) {
	*h = append(*h, x.(frontierItem[T, P]))
}

func (h *frontierHeap[T, P]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// frontier is a min-priority queue. It follows the lazy decrease-key pattern:
// a cheaper rediscovery pushes a second entry and the stale one is skipped by
// the caller when popped. Pop order among equal priorities is unspecified.
type frontier[T any, P constraints.Integer] struct {
	h frontierHeap[T, P]
}

func newFrontier[T any, P constraints.Integer](capacity int) *frontier[T, P] {
	return &frontier[T, P]{h: make(frontierHeap[T, P], 0, capacity)}
}

func (f *frontier[T, P]) Len() int { return f.h.Len() }

func (f *frontier[T, P]) push(v T, prio P) {
	heap.Push(&f.h, frontierItem[T, P]{value: v, prio: prio})
}

func (f *frontier[T, P]) pop() (T, P) {
	it := heap.Pop(&f.h).(frontierItem[T, P])
	return it.value, it.prio
}
