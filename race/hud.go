package race

import (
	"strconv"
	"time"
)

// Placeholder shown before a race starts or before any lap completes
const Placeholder = "--:--.--"

// LapEntry is one line of the lap history panel
type LapEntry struct {
	Number   int
	Duration time.Duration
	Text     string
	IsBest   bool
}

// HUD is the text the UI layer draws each frame
type HUD struct {
	Time     string
	Best     string
	Progress string
	Laps     []LapEntry
}

// BuildHUD formats a snapshot at now; pure
func BuildHUD(s Snapshot, now time.Time) HUD {
	h := HUD{
		Time:     "Time: " + Placeholder,
		Best:     "Best: " + Placeholder,
		Progress: "CP " + strconv.Itoa(s.CheckpointsPassed) + "/" + strconv.Itoa(s.TotalCheckpoints),
	}

	if s.Racing {
		elapsed := now.Sub(s.LapStart)
		if elapsed < 0 {
			elapsed = 0
		}
		h.Time = "Time: " + FormatDuration(elapsed)
	}
	if s.HasBest {
		h.Best = "Best: " + FormatDuration(s.Best)
	}

	if len(s.History) > 0 {
		h.Laps = make([]LapEntry, 0, len(s.History))
	}
	for i, d := range s.History {
		n := s.LapsCompleted - i
		if n < 1 {
			n = len(s.History) - i
		}
		h.Laps = append(h.Laps, LapEntry{
			Number:   n,
			Duration: d,
			Text:     "Lap " + strconv.Itoa(n) + ": " + FormatDuration(d),
			IsBest:   s.HasBest && d == s.Best,
		})
	}
	return h
}
