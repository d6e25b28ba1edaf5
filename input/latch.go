package input

import "time"

// Latch converts discrete press events into held state
// Terminals deliver key presses and auto-repeats but never key releases,
// so a key counts as held until a window elapses without another press
// A fresh press gets the longer initial window to bridge the auto-repeat delay;
// once repeats arrive the shorter repeat window applies
type Latch struct {
	initial   time.Duration
	hold      time.Duration
	lastSeen  [actionCount]time.Time
	repeating [actionCount]bool
}

// NewLatch creates a latch with the initial-press and repeat hold windows
func NewLatch(initial, hold time.Duration) *Latch {
	return &Latch{initial: max(initial, hold), hold: hold}
}

// Press records a press or repeat of action at now
// A press while the action is still held counts as an auto-repeat
func (l *Latch) Press(a Action, now time.Time) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	l.repeating[a] = l.Held(a, now)
	l.lastSeen[a] = now
}

// Release forgets the action immediately
func (l *Latch) Release(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	l.lastSeen[a] = time.Time{}
	l.repeating[a] = false
}

// Held reports whether action was pressed within the hold window
func (l *Latch) Held(a Action, now time.Time) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	seen := l.lastSeen[a]
	if seen.IsZero() {
		return false
	}
	window := l.initial
	if l.repeating[a] {
		window = l.hold
	}
	return now.Sub(seen) <= window
}

// Keys samples the latched driving keys at now
func (l *Latch) Keys(now time.Time) Keys {
	return Keys{
		Left:       l.Held(ActionSteerLeft, now),
		Right:      l.Held(ActionSteerRight, now),
		Accelerate: l.Held(ActionAccelerate, now),
		Brake:      l.Held(ActionBrake, now),
	}
}

// Reset clears all latched keys
func (l *Latch) Reset() {
	l.lastSeen = [actionCount]time.Time{}
	l.repeating = [actionCount]bool{}
}
