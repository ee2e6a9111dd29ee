package snakex

import "github.com/vovakirdan/snake-extreme/internal/grid"

// DirectionQueue is a bounded FIFO of pending direction presses.
// When full, the newest press is dropped.
type DirectionQueue struct {
	items    []grid.Direction
	capacity int
	dropped  int
}

// NewDirectionQueue creates a queue holding at most capacity presses.
func NewDirectionQueue(capacity int) *DirectionQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &DirectionQueue{
		items:    make([]grid.Direction, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a press. It returns false if the queue was full.
func (q *DirectionQueue) Push(d grid.Direction) bool {
	if len(q.items) >= q.capacity {
		q.dropped++
		return false
	}
	q.items = append(q.items, d)
	return true
}

// Pop removes the oldest press.
func (q *DirectionQueue) Pop() (grid.Direction, bool) {
	if len(q.items) == 0 {
		return grid.DirRight, false
	}
	d := q.items[0]
	copy(q.items, q.items[1:])
	q.items = q.items[:len(q.items)-1]
	return d, true
}

// Len returns the number of pending presses.
func (q *DirectionQueue) Len() int {
	return len(q.items)
}

// Dropped returns how many presses overflowed since creation.
func (q *DirectionQueue) Dropped() int {
	return q.dropped
}

// Clear drops every pending press.
func (q *DirectionQueue) Clear() {
	q.items = q.items[:0]
}
