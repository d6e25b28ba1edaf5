package event

// EventType represents the type of race event
type EventType int

const (
	// === Inbound ===

	// EventLineCrossed reports the car overlapping a control line sensor
	// Trigger: collision source (Session.ReportCrossing) | Consumer: lap tracker
	// Payload: *LineCrossedPayload
	EventLineCrossed EventType = iota

	// === Outbound ===

	// EventRaceStarted: first start/finish crossing
	// Payload: *LineCrossedPayload
	EventRaceStarted

	// EventCheckpointPassed: checkpoint marked passed this lap
	// Payload: *CheckpointPayload
	EventCheckpointPassed

	// EventLapCompleted: start/finish crossed with every checkpoint passed
	// Payload: *LapCompletedPayload
	EventLapCompleted

	// EventLapRejected: start/finish crossed with checkpoints outstanding
	// Payload: *CheckpointPayload
	EventLapRejected

	// EventSmokeSpawned: a drift-smoke puff was emitted
	// Consumer: audio (tire skid) | Payload: *SmokePayload
	EventSmokeSpawned

	// EventSessionRestart: race state, smoke and pending crossings were cleared
	// Payload: nil
	EventSessionRestart

	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventLineCrossed:      "LineCrossed",
	EventRaceStarted:      "RaceStarted",
	EventCheckpointPassed: "CheckpointPassed",
	EventLapCompleted:     "LapCompleted",
	EventLapRejected:      "LapRejected",
	EventSmokeSpawned:     "SmokeSpawned",
	EventSessionRestart:   "SessionRestart",
}

func (t EventType) String() string {
	if t >= 0 && t < eventTypeCount {
		return typeNames[t]
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}
