package physics

import (
	"math"

	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

// Stabilization is the straight-line stabilizer verdict for one tick
type Stabilization struct {
	ShouldApply bool
	// AngularDamping replaces the base damping for this tick's angular update
	AngularDamping        float64
	ShouldCorrectVelocity bool
	// CorrectedVelocity is nil unless ShouldCorrectVelocity
	CorrectedVelocity *vmath.Vec2
	// Snapped is true when velocity was aligned exactly rather than blended
	Snapped bool
}

// IsGoingStraight reports whether the car is tracking its heading with no steering intent
func IsGoingStraight(f Frame, angularVelocity, steer float64, cfg parameter.Stabilizer) bool {
	return math.Abs(f.DirectionDiff) < cfg.MaxDirectionDiff &&
		math.Abs(f.SlipAngle) < cfg.MaxSlipAngle &&
		math.Abs(angularVelocity) < cfg.MaxAngularVelocity &&
		math.Abs(steer) < cfg.MaxSteerInput &&
		f.Speed > cfg.MinSpeed
}

// Stabilize damps micro-oscillation while driving straight
// Inactive: base damping passes through and velocity is untouched
func Stabilize(s State, steer float64, d parameter.Damping, cfg parameter.Stabilizer) Stabilization {
	f := Decompose(s.Velocity, s.Heading())
	damping := AngularDamping(f.Speed, d)

	if !IsGoingStraight(f, s.AngularVelocity, steer, cfg) {
		return Stabilization{AngularDamping: damping}
	}

	out := Stabilization{
		ShouldApply:    true,
		AngularDamping: damping * cfg.DampingFactor,
	}
	if f.Speed <= cfg.MinCorrectSpeed {
		return out
	}

	var corrected vmath.Vec2
	if math.Abs(f.DirectionDiff) < cfg.SnapDirectionDiff {
		corrected = f.Forward.Scale(f.Speed)
		out.Snapped = true
	} else {
		rate := cfg.ConvergenceBase * (1 + math.Min(f.Speed/cfg.ConvergenceSpeedRef, cfg.ConvergenceMaxBoost))
		target := f.Forward.Scale(f.VForward)
		corrected = s.Velocity.LerpTo(target, rate)
	}
	out.ShouldCorrectVelocity = true
	out.CorrectedVelocity = &corrected
	return out
}
