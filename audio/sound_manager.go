// Package audio turns session events into short synthesized cues
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sasha-s/go-deadlock"

	"github.com/lixenwraith/driftline/event"
)

const (
	sampleRate = beep.SampleRate(48000)

	// SkidGap is the minimum spacing between skid cues; smoke spawns far more often
	SkidGap = 100 * time.Millisecond
)

// SoundManager plays cues through a shared mixer
// Every method is safe without a working audio device
type SoundManager struct {
	mu          deadlock.Mutex
	mixer       *beep.Mixer
	volume      float64
	enabled     bool
	initialized bool

	lastSkid time.Time
	played   [len(cueNames)]int
}

// NewSoundManager creates a manager; nothing is opened until Initialize
func NewSoundManager(enabled bool, volume float64) *SoundManager {
	return &SoundManager{
		mixer:   &beep.Mixer{},
		volume:  volume,
		enabled: enabled,
	}
}

// Initialize opens the speaker; a failure leaves the manager silent and is safe to ignore
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(MasterVolume(sm.mixer, sm.volume))
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	sm.Trigger(CueFor(ev), ev.At)
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	return cueEvents
}

// Trigger plays a cue observed at the given time, throttling skids
// Returns whether the cue was accepted
func (sm *SoundManager) Trigger(c Cue, at time.Time) bool {
	if c == CueNone {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		return false
	}
	if c == CueSkid {
		if !sm.lastSkid.IsZero() && at.Sub(sm.lastSkid) < SkidGap {
			return false
		}
		sm.lastSkid = at
	}
	sm.played[c]++

	if !sm.initialized {
		return true
	}
	s := Streamer(sampleRate, c)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Played returns how many times a cue was accepted
func (sm *SoundManager) Played(c Cue) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if int(c) >= len(sm.played) {
		return 0
	}
	return sm.played[c]
}
