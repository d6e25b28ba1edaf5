package input

import (
	"math"

	"github.com/lixenwraith/driftline/parameter"
)

// Keys is the held state of the keyboard controls for one tick
type Keys struct {
	Left       bool
	Right      bool
	Accelerate bool
	Brake      bool
}

// Gamepad exposes the analog axes and digital buttons of a connected pad
// Implementations may return short or empty slices; missing entries read as zero/false
type Gamepad interface {
	Axes() []float64
	Buttons() []bool
}

// Snapshot is the raw input sampled once per tick
// Pad is nil when no gamepad is connected
type Snapshot struct {
	Keys Keys
	Pad  Gamepad
}

// Controls is the normalized driver intent
// Steer is not clamped: keyboard and analog contributions add, so |Steer| can exceed 1
type Controls struct {
	Steer      float64
	Accelerate bool
	Brake      bool
}

// Normalize merges keyboard and gamepad into Controls
// Pure function of the snapshot
func Normalize(s Snapshot, cfg parameter.Input) Controls {
	var c Controls
	if s.Keys.Left {
		c.Steer -= 1
	}
	if s.Keys.Right {
		c.Steer += 1
	}
	c.Steer += SteerAxis(s.Pad, cfg)

	c.Accelerate = s.Keys.Accelerate || button(s.Pad, cfg.AccelButton)
	c.Brake = s.Keys.Brake || button(s.Pad, cfg.BrakeButton)
	return c
}

// SteerAxis returns the pad's steer axis value outside the dead zone, 0 otherwise
func SteerAxis(pad Gamepad, cfg parameter.Input) float64 {
	if pad == nil {
		return 0
	}
	axes := pad.Axes()
	if cfg.SteerAxis < 0 || cfg.SteerAxis >= len(axes) {
		return 0
	}
	v := axes[cfg.SteerAxis]
	if math.IsNaN(v) || math.Abs(v) <= cfg.DeadZone {
		return 0
	}
	return v
}

func button(pad Gamepad, idx int) bool {
	if pad == nil {
		return false
	}
	buttons := pad.Buttons()
	if idx < 0 || idx >= len(buttons) {
		return false
	}
	return buttons[idx]
}

// StaticPad is a fixed-state Gamepad, used by replay and tests
type StaticPad struct {
	AxisValues   []float64
	ButtonStates []bool
}

func (p StaticPad) Axes() []float64 { return p.AxisValues }
func (p StaticPad) Buttons() []bool { return p.ButtonStates }
