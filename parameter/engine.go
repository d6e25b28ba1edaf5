package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation step (~60 Hz, the rate the steering constants were tuned at)
	TickInterval = 16666667 * time.Nanosecond

	// FrameUpdateInterval is the terminal redraw interval
	FrameUpdateInterval = 33 * time.Millisecond

	// CrossingQueueHint is the initial capacity of the crossing event queue; the queue grows past it
	CrossingQueueHint = 16
)
