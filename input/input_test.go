package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/driftline/parameter"
)

func TestNormalizeKeyboardOnly(t *testing.T) {
	cfg := parameter.DefaultInput()

	c := Normalize(Snapshot{Keys: Keys{Left: true}}, cfg)
	assert.Equal(t, -1.0, c.Steer)

	c = Normalize(Snapshot{Keys: Keys{Right: true, Accelerate: true}}, cfg)
	assert.Equal(t, 1.0, c.Steer)
	assert.True(t, c.Accelerate)
	assert.False(t, c.Brake)

	c = Normalize(Snapshot{Keys: Keys{Left: true, Right: true, Brake: true}}, cfg)
	assert.Equal(t, 0.0, c.Steer)
	assert.True(t, c.Brake)
}

func TestNormalizeDeadZone(t *testing.T) {
	cfg := parameter.DefaultInput()

	c := Normalize(Snapshot{Pad: StaticPad{AxisValues: []float64{0.1}}}, cfg)
	assert.Equal(t, 0.0, c.Steer, "value at the dead zone edge is ignored")

	c = Normalize(Snapshot{Pad: StaticPad{AxisValues: []float64{-0.05}}}, cfg)
	assert.Equal(t, 0.0, c.Steer)

	c = Normalize(Snapshot{Pad: StaticPad{AxisValues: []float64{0.4}}}, cfg)
	assert.Equal(t, 0.4, c.Steer)
}

func TestNormalizeSumsBeyondUnitRange(t *testing.T) {
	cfg := parameter.DefaultInput()
	c := Normalize(Snapshot{
		Keys: Keys{Right: true},
		Pad:  StaticPad{AxisValues: []float64{0.8}},
	}, cfg)
	assert.InDelta(t, 1.8, c.Steer, 1e-12, "keyboard and axis add without clamping")
}

func TestNormalizeMissingPadParts(t *testing.T) {
	cfg := parameter.DefaultInput()

	assert.Equal(t, Controls{}, Normalize(Snapshot{}, cfg))
	assert.Equal(t, Controls{}, Normalize(Snapshot{Pad: StaticPad{}}, cfg))

	// Only one button: accel readable, brake index 2 missing
	c := Normalize(Snapshot{Pad: StaticPad{ButtonStates: []bool{true}}}, cfg)
	assert.True(t, c.Accelerate)
	assert.False(t, c.Brake)

	c = Normalize(Snapshot{Pad: StaticPad{ButtonStates: []bool{false, true, true}}}, cfg)
	assert.False(t, c.Accelerate)
	assert.True(t, c.Brake, "brake is button 2, button 1 is unused")
}

func TestLatchHoldWindow(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLatch(100*time.Millisecond, 100*time.Millisecond)

	assert.False(t, l.Held(ActionAccelerate, base))
	l.Press(ActionAccelerate, base)
	assert.True(t, l.Held(ActionAccelerate, base.Add(100*time.Millisecond)))
	assert.False(t, l.Held(ActionAccelerate, base.Add(101*time.Millisecond)))

	l.Press(ActionSteerLeft, base)
	l.Press(ActionBrake, base)
	k := l.Keys(base.Add(50 * time.Millisecond))
	assert.Equal(t, Keys{Left: true, Accelerate: true, Brake: true}, k)

	l.Release(ActionBrake)
	assert.False(t, l.Held(ActionBrake, base))

	l.Reset()
	assert.Equal(t, Keys{}, l.Keys(base))

	// Out-of-range actions are ignored
	l.Press(ActionNone, base)
	l.Press(actionCount, base)
	assert.False(t, l.Held(actionCount, base))
}

// Holding a key: one press, a gap of ~500ms before auto-repeat, then repeats every ~30ms
func TestLatchBridgesAutoRepeatDelay(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewLatch(700*time.Millisecond, 180*time.Millisecond)

	l.Press(ActionAccelerate, base)
	for ms := 0; ms <= 500; ms += 10 {
		assert.True(t, l.Held(ActionAccelerate, base.Add(time.Duration(ms)*time.Millisecond)), "held at %dms", ms)
	}

	// Repeats switch to the short window
	repeat := base.Add(500 * time.Millisecond)
	for i := 0; i < 5; i++ {
		l.Press(ActionAccelerate, repeat)
		repeat = repeat.Add(30 * time.Millisecond)
	}
	last := repeat.Add(-30 * time.Millisecond)
	assert.True(t, l.Held(ActionAccelerate, last.Add(180*time.Millisecond)))
	assert.False(t, l.Held(ActionAccelerate, last.Add(181*time.Millisecond)), "release is seen within the repeat window")

	// A tap after the key expired is a fresh press with the long window again
	tap := last.Add(time.Second)
	l.Press(ActionAccelerate, tap)
	assert.True(t, l.Held(ActionAccelerate, tap.Add(600*time.Millisecond)))
	assert.False(t, l.Held(ActionAccelerate, tap.Add(701*time.Millisecond)))

	// Initial window is never shorter than the repeat window
	short := NewLatch(50*time.Millisecond, 180*time.Millisecond)
	short.Press(ActionBrake, base)
	assert.True(t, short.Held(ActionBrake, base.Add(180*time.Millisecond)))
}

func TestKeyMapResolve(t *testing.T) {
	m := DefaultKeyMap()

	assert.Equal(t, ActionSteerLeft, m.ResolveKey(tcell.KeyLeft, 0))
	assert.Equal(t, ActionAccelerate, m.ResolveKey(tcell.KeyRune, 'x'))
	assert.Equal(t, ActionAccelerate, m.ResolveKey(tcell.KeyRune, 'X'))
	assert.Equal(t, ActionBrake, m.ResolveKey(tcell.KeyRune, 'z'))
	assert.Equal(t, ActionPause, m.ResolveKey(tcell.KeyRune, 'p'))
	assert.Equal(t, ActionNone, m.ResolveKey(tcell.KeyRune, 'k'))
	assert.Equal(t, ActionNone, m.Resolve(nil))

	require.NoError(t, m.Bind('W', "accelerate"))
	assert.Equal(t, ActionAccelerate, m.ResolveKey(tcell.KeyRune, 'w'))

	assert.Error(t, m.Bind('k', "jump"))
}
