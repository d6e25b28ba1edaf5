package race

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHUDIdle(t *testing.T) {
	h := BuildHUD(Snapshot{TotalCheckpoints: 3}, t0)
	assert.Equal(t, "Time: --:--.--", h.Time)
	assert.Equal(t, "Best: --:--.--", h.Best)
	assert.Equal(t, "CP 0/3", h.Progress)
	assert.Empty(t, h.Laps)
}

func TestBuildHUDRacing(t *testing.T) {
	s := Snapshot{
		Racing:            true,
		LapStart:          t0,
		CheckpointsPassed: 1,
		TotalCheckpoints:  2,
		LapsCompleted:     7,
		Best:              33 * time.Second,
		HasBest:           true,
		History:           []time.Duration{39 * time.Second, 33 * time.Second, 36 * time.Second},
	}
	h := BuildHUD(s, t0.Add(61234*time.Millisecond))

	assert.Equal(t, "Time: 1:01.23", h.Time)
	assert.Equal(t, "Best: 0:33.00", h.Best)
	assert.Equal(t, "CP 1/2", h.Progress)
	require.Len(t, h.Laps, 3)

	assert.Equal(t, "Lap 7: 0:39.00", h.Laps[0].Text)
	assert.Equal(t, "Lap 6: 0:33.00", h.Laps[1].Text)
	assert.Equal(t, 5, h.Laps[2].Number)
	assert.False(t, h.Laps[0].IsBest)
	assert.True(t, h.Laps[1].IsBest)
}

func TestBuildHUDFromTracker(t *testing.T) {
	tr := twoCheckpointCourse(t)
	tr.Cross("start", t0)
	end := lap(tr, t0, 42*time.Second)

	h := BuildHUD(tr.Snapshot(), end.Add(time.Second))
	assert.Equal(t, "Time: 0:01.00", h.Time)
	require.Len(t, h.Laps, 1)
	assert.Equal(t, "Lap 1: 0:42.00", h.Laps[0].Text)
	assert.True(t, h.Laps[0].IsBest)
}
