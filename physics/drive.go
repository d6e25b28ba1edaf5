package physics

import (
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

// Pedal is the resolved longitudinal command for one tick
type Pedal uint8

const (
	PedalIdle Pedal = iota
	PedalAccelerate
	PedalBrake
)

func (p Pedal) String() string {
	switch p {
	case PedalAccelerate:
		return "accelerate"
	case PedalBrake:
		return "brake"
	default:
		return "idle"
	}
}

// ResolvePedal makes throttle and brake mutually exclusive; brake wins when both are held
func ResolvePedal(accelerate, brake bool) Pedal {
	switch {
	case brake:
		return PedalBrake
	case accelerate:
		return PedalAccelerate
	default:
		return PedalIdle
	}
}

// ApplyDrive pushes the vehicle along angle
func ApplyDrive(h VehicleHandle, angle float64, cfg parameter.Drive) {
	h.ApplyForce(vmath.FromAngle(angle).Scale(cfg.ForceMagnitude))
}

// ApplyBrakeOrReverse reverses gently below the threshold, otherwise decays velocity
// Returns true when the reverse force was applied
func ApplyBrakeOrReverse(h VehicleHandle, angle, speed float64, cfg parameter.Drive) bool {
	if speed < cfg.ReverseThreshold {
		h.ApplyForce(vmath.FromAngle(angle).Scale(-cfg.ForceMagnitude * cfg.ReverseRatio))
		return true
	}
	h.SetVelocity(h.Velocity().Scale(cfg.BrakeFactor))
	return false
}

// ApplyIdle applies rolling resistance
func ApplyIdle(h VehicleHandle, cfg parameter.Drive) {
	h.SetVelocity(h.Velocity().Scale(cfg.IdleFactor))
}
