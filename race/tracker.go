package race

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/driftline/parameter"
)

var (
	ErrNoStartFinish       = errors.New("course has no start/finish line")
	ErrMultipleStartFinish = errors.New("course has more than one start/finish line")
	ErrDuplicateLine       = errors.New("duplicate control line id")
	ErrEmptyLineID         = errors.New("control line id is empty")
)

// Outcome is what a crossing did to the race state
type Outcome uint8

const (
	// OutcomeIgnored: already-passed checkpoint, or checkpoint before the race started
	OutcomeIgnored Outcome = iota
	OutcomeUnknownLine
	OutcomeRaceStarted
	OutcomeCheckpoint
	OutcomeLapCompleted
	// OutcomeLapRejected: start/finish crossed with checkpoints outstanding
	OutcomeLapRejected
)

var outcomeNames = [...]string{
	OutcomeIgnored:      "ignored",
	OutcomeUnknownLine:  "unknown",
	OutcomeRaceStarted:  "started",
	OutcomeCheckpoint:   "checkpoint",
	OutcomeLapCompleted: "lap",
	OutcomeLapRejected:  "rejected",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "invalid"
}

// Result describes one processed crossing
type Result struct {
	Outcome Outcome
	LineID  string
	At      time.Time
	// Lap and NewBest are set only for OutcomeLapCompleted
	Lap     time.Duration
	NewBest bool
	// CheckpointsPassed is the count after the crossing
	CheckpointsPassed int
}

// Changed reports whether the crossing mutated race state
func (r Result) Changed() bool {
	switch r.Outcome {
	case OutcomeRaceStarted, OutcomeCheckpoint, OutcomeLapCompleted:
		return true
	}
	return false
}

// Snapshot is the read model consumed by the HUD
type Snapshot struct {
	Racing            bool
	LapStart          time.Time
	CheckpointsPassed int
	TotalCheckpoints  int
	LapsCompleted     int
	Best              time.Duration
	HasBest           bool
	// History holds the most recent lap durations, newest first
	History []time.Duration
}

// Tracker is the lap/checkpoint state machine: Idle until the first start/finish
// crossing, then Racing, looping on every complete lap
// Not safe for concurrent use; the owning session serializes access
type Tracker struct {
	lines      []ControlLine
	index      map[string]int
	startIdx   int
	total      int
	historyCap int

	racing   bool
	lapStart time.Time
	passed   int
	laps     int
	best     time.Duration
	hasBest  bool
	history  []time.Duration
}

// NewTracker validates the course lines and returns an idle tracker
// Exactly one start/finish line is required and ids must be unique
func NewTracker(lines []ControlLine) (*Tracker, error) {
	t := &Tracker{
		lines:      make([]ControlLine, len(lines)),
		index:      make(map[string]int, len(lines)),
		startIdx:   -1,
		historyCap: parameter.LapHistorySize,
	}

	for i, l := range lines {
		if l.ID == "" {
			return nil, fmt.Errorf("line %d: %w", i, ErrEmptyLineID)
		}
		if _, dup := t.index[l.ID]; dup {
			return nil, fmt.Errorf("%q: %w", l.ID, ErrDuplicateLine)
		}
		switch l.Kind {
		case KindStartFinish:
			if t.startIdx >= 0 {
				return nil, fmt.Errorf("%q and %q: %w", t.lines[t.startIdx].ID, l.ID, ErrMultipleStartFinish)
			}
			t.startIdx = i
		case KindCheckpoint:
			t.total++
		}

		l.Points = append(l.Points[:0:0], l.Points...)
		l.Passed = false
		t.lines[i] = l
		t.index[l.ID] = i
	}

	if t.startIdx < 0 {
		return nil, ErrNoStartFinish
	}

	t.history = make([]time.Duration, 0, t.historyCap+1)
	return t, nil
}

// Cross applies a "vehicle crossed line id" event observed at now
func (t *Tracker) Cross(id string, now time.Time) Result {
	res := Result{LineID: id, At: now}

	i, ok := t.index[id]
	if !ok {
		res.Outcome = OutcomeUnknownLine
		res.CheckpointsPassed = t.passed
		return res
	}

	if t.lines[i].Kind == KindStartFinish {
		switch {
		case !t.racing:
			t.racing = true
			t.beginLap(now)
			res.Outcome = OutcomeRaceStarted

		case t.passed == t.total:
			lap := now.Sub(t.lapStart)
			res.Outcome = OutcomeLapCompleted
			res.Lap = lap
			res.NewBest = t.record(lap)
			t.beginLap(now)

		default:
			res.Outcome = OutcomeLapRejected
		}
		res.CheckpointsPassed = t.passed
		return res
	}

	if t.racing && !t.lines[i].Passed {
		t.lines[i].Passed = true
		t.passed++
		res.Outcome = OutcomeCheckpoint
	}
	res.CheckpointsPassed = t.passed
	return res
}

// beginLap restarts the lap clock and marks only start/finish as passed
func (t *Tracker) beginLap(now time.Time) {
	t.lapStart = now
	t.passed = 0
	t.clearPassed()
	t.lines[t.startIdx].Passed = true
}

// record pushes lap to the front of history and updates best; returns true on a new best
func (t *Tracker) record(lap time.Duration) bool {
	t.laps++

	t.history = append(t.history, 0)
	copy(t.history[1:], t.history)
	t.history[0] = lap
	if len(t.history) > t.historyCap {
		t.history = t.history[:t.historyCap]
	}

	if !t.hasBest || lap < t.best {
		t.best = lap
		t.hasBest = true
		return true
	}
	return false
}

func (t *Tracker) clearPassed() {
	for i := range t.lines {
		t.lines[i].Passed = false
	}
}

// Reset returns to Idle, discarding lap time, best, history and every passed flag
func (t *Tracker) Reset() {
	t.racing = false
	t.lapStart = time.Time{}
	t.passed = 0
	t.laps = 0
	t.best = 0
	t.hasBest = false
	t.history = t.history[:0]
	t.clearPassed()
}

// Snapshot copies the current race state
func (t *Tracker) Snapshot() Snapshot {
	return Snapshot{
		Racing:            t.racing,
		LapStart:          t.lapStart,
		CheckpointsPassed: t.passed,
		TotalCheckpoints:  t.total,
		LapsCompleted:     t.laps,
		Best:              t.best,
		HasBest:           t.hasBest,
		History:           append([]time.Duration(nil), t.history...),
	}
}

// Lines returns a copy of the control lines with current passed flags
func (t *Tracker) Lines() []ControlLine {
	out := make([]ControlLine, len(t.lines))
	copy(out, t.lines)
	return out
}

// TotalCheckpoints returns the number of checkpoint-kind lines
func (t *Tracker) TotalCheckpoints() int {
	return t.total
}
