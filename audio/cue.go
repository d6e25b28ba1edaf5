package audio

import (
	"github.com/lixenwraith/driftline/event"
)

// Cue identifies one feedback sound
type Cue uint8

const (
	CueNone Cue = iota
	CueSkid
	CueCheckpoint
	CueLap
	CueBestLap
	CueRejected
)

var cueNames = [...]string{
	CueNone:       "none",
	CueSkid:       "skid",
	CueCheckpoint: "checkpoint",
	CueLap:        "lap",
	CueBestLap:    "bestLap",
	CueRejected:   "rejected",
}

func (c Cue) String() string {
	if int(c) < len(cueNames) {
		return cueNames[c]
	}
	return "unknown"
}

// CueFor maps a session event to its sound
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventSmokeSpawned:
		return CueSkid
	case event.EventCheckpointPassed:
		return CueCheckpoint
	case event.EventLapCompleted:
		if p, ok := ev.Payload.(*event.LapCompletedPayload); ok && p.NewBest {
			return CueBestLap
		}
		return CueLap
	case event.EventLapRejected:
		return CueRejected
	default:
		return CueNone
	}
}

// cueEvents lists the event types that can produce a cue
var cueEvents = []event.EventType{
	event.EventSmokeSpawned,
	event.EventCheckpointPassed,
	event.EventLapCompleted,
	event.EventLapRejected,
}
