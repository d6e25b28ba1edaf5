package event

import (
	"time"

	"github.com/lixenwraith/driftline/vmath"
)

// GameEvent is one queued event
// At is the wall time the event was observed; Frame is the session tick it belongs to
type GameEvent struct {
	Type    EventType
	Payload any
	At      time.Time
	Frame   int64
}

// LineCrossedPayload identifies the crossed control line
type LineCrossedPayload struct {
	LineID string
}

// CheckpointPayload carries lap progress after the crossing
type CheckpointPayload struct {
	LineID string
	Passed int
	Total  int
}

// LapCompletedPayload describes a finished lap
type LapCompletedPayload struct {
	Number  int
	Lap     time.Duration
	Best    time.Duration
	NewBest bool
}

// SmokePayload locates a new smoke puff
type SmokePayload struct {
	ID        uint64
	Position  vmath.Vec2
	SlipAngle float64
	Speed     float64
}
