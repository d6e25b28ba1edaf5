package parameter

// Race timing
const (
	// LapHistorySize is the number of completed laps kept, most recent first
	LapHistorySize = 5
)
