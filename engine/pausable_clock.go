package engine

import (
	"time"

	"github.com/sasha-s/go-deadlock"
)

// PausableClock is race time: it follows a base clock but stands still while paused
// Lap timers read it, so a paused race does not accumulate lap time
type PausableClock struct {
	mu   deadlock.RWMutex
	base Clock

	paused      bool
	pauseStart  time.Time     // Base time the current pause began
	pausedTotal time.Duration // Cumulative completed pause duration
}

// NewPausableClock wraps base; nil uses the system clock
func NewPausableClock(base Clock) *PausableClock {
	if base == nil {
		base = NewTimeProvider()
	}
	return &PausableClock{base: base}
}

// Now returns base time minus all time spent paused; frozen during a pause
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.paused {
		return pc.pauseStart.Add(-pc.pausedTotal)
	}
	return pc.base.Now().Add(-pc.pausedTotal)
}

// Pause stops time advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.base.Now()
}

// Resume continues time advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.paused {
		return
	}
	pc.pausedTotal += pc.base.Now().Sub(pc.pauseStart)
	pc.pauseStart = time.Time{}
	pc.paused = false
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.base.Now()
	if pc.paused {
		pc.pausedTotal += now.Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
	} else {
		pc.pauseStart = now
	}
	pc.paused = !pc.paused
	return pc.paused
}

// IsPaused returns the current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// PausedTotal returns cumulative completed pause time
func (pc *PausableClock) PausedTotal() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.pausedTotal
}
