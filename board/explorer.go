package board

import (
	"iter"

	"github.com/gammazero/deque"
)

// Explorer is a FIFO work queue over board positions with a visited mask.
//
// In its default one-shot mode each position can be enqueued at most once per
// traversal, which is what a flood fill wants. With AllowRequeue enabled,
// popping a position clears its mark so the position may be enqueued again
// later in the same traversal; fixpoint propagation needs this, because a
// cell's constraint can become actionable more than once as its neighbours
// resolve. Re-enqueueing after a pop sends the position to the back of the
// queue.
type Explorer struct {
	queue   deque.Deque[Vec]
	visited *Board[bool]
	requeue bool
}

// NewExplorer creates an explorer over a width×height position space.
func NewExplorer(width, height int) *Explorer {
	return &Explorer{visited: New[bool](width, height)}
}

// ExplorerFor sizes an explorer to the given board.
func ExplorerFor[T any](b *Board[T]) *Explorer {
	return NewExplorer(b.Width(), b.Height())
}

// AllowRequeue switches between one-shot and re-enterable traversal.
func (e *Explorer) AllowRequeue(allow bool) {
	e.requeue = allow
}

// Enqueue adds pos to the queue unless it is out of bounds or already marked
// visited, and reports whether it was newly added.
func (e *Explorer) Enqueue(pos Vec) bool {
	visited, ok := e.visited.Get(pos)
	if !ok || visited {
		return false
	}
	e.visited.Set(pos, true)
	e.queue.PushBack(pos)
	return true
}

// EnqueueAll enqueues every position of the sequence.
func (e *Explorer) EnqueueAll(all iter.Seq[Vec]) {
	for pos := range all {
		e.Enqueue(pos)
	}
}

// Pop removes and returns the earliest-enqueued position still queued.
func (e *Explorer) Pop() (Vec, bool) {
	if e.queue.Len() == 0 {
		return Vec{}, false
	}
	pos := e.queue.PopFront()
	if e.requeue {
		e.visited.Set(pos, false)
	}
	return pos, true
}

// Len returns the number of currently queued positions.
func (e *Explorer) Len() int {
	return e.queue.Len()
}
