package event

import (
	"github.com/sasha-s/go-deadlock"
)

// Queue is an unbounded multi-producer FIFO for game events
// Thread-Safety:
//   - Push: any goroutine (collision callbacks)
//   - Consume: single consumer (session tick)
//
// Overflow: none; the backing slice grows, events are never dropped or coalesced
type Queue struct {
	mu      deadlock.Mutex
	pending []GameEvent
	spare   []GameEvent
}

// NewQueue creates a queue with an initial capacity hint
func NewQueue(capacity int) *Queue {
	if capacity < 0 {
		capacity = 0
	}
	return &Queue{
		pending: make([]GameEvent, 0, capacity),
		spare:   make([]GameEvent, 0, capacity),
	}
}

// Push appends an event
func (q *Queue) Push(ev GameEvent) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Consume returns all pending events in arrival order
// The returned slice is valid until the next Consume
func (q *Queue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = q.spare[:0]
	q.spare = out
	return out
}

// Clear drops pending events; returns how many were discarded
func (q *Queue) Clear() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.pending)
	clear(q.pending)
	q.pending = q.pending[:0]
	return n
}

// Len returns the pending event count
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
