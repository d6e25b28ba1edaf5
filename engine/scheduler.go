package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Scheduler drives a callback on a fixed interval with drift correction
// Ticks never overlap; a slow callback delays the next one instead of stacking
type Scheduler struct {
	interval time.Duration
	ticks    atomic.Uint64
}

// NewScheduler creates a scheduler; non-positive interval falls back to one millisecond
func NewScheduler(interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Millisecond
	}
	return &Scheduler{interval: interval}
}

// Interval returns the tick interval
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() uint64 {
	return s.ticks.Load()
}

// Run calls fn once per interval until ctx is cancelled, then returns ctx.Err()
// fn receives the tick number starting at 1
func (s *Scheduler) Run(ctx context.Context, fn func(tick uint64)) error {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	deadline := time.Now().Add(s.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fn(s.ticks.Add(1))

		now := time.Now()
		deadline = deadline.Add(s.interval)
		// Fell too far behind: resync rather than burst to catch up
		if now.Sub(deadline) > s.interval*2 {
			deadline = now.Add(s.interval)
		}

		sleep := deadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}
