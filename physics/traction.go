package physics

import (
	"math"

	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

// Traction returns steering authority in [0, 1] from forward speed
// Zero up to TractionMin, saturating at TractionMin+TractionMax
func Traction(vForward float64, p parameter.Traction) float64 {
	if p.TractionMax <= 0 {
		if math.Abs(vForward) > p.TractionMin {
			return 1
		}
		return 0
	}
	return vmath.Clamp01((math.Abs(vForward) - p.TractionMin) / p.TractionMax)
}

// SlipLossFactor degrades authority linearly as |slip| approaches 90°, floored at 1-SlipLoss
func SlipLossFactor(slipAngle float64, p parameter.Traction) float64 {
	return 1 - math.Min(math.Abs(slipAngle)/(math.Pi/2), 1)*p.SlipLoss
}

// SteerRate is the proportional gain pulling heading toward the steering target
func SteerRate(vForward, slipAngle float64, p parameter.Traction) float64 {
	return p.Base * Traction(vForward, p) * SlipLossFactor(slipAngle, p)
}

// AngularDamping returns the per-tick angular velocity retention for speed
// Decreases with speed up to SpeedRef, then holds
func AngularDamping(speed float64, d parameter.Damping) float64 {
	if d.SpeedRef <= 0 {
		return d.Base - d.Span
	}
	return d.Base - math.Min(speed/d.SpeedRef, 1)*d.Span
}

// AngularInput is everything the angular velocity update reads
type AngularInput struct {
	CurrentAngularVelocity float64
	AngularDamping         float64
	AngleError             float64
	SlipAngle              float64
	VForward               float64
}

// ComputeAngularVelocity is the damped-spring steering update:
// ω' = ω*damping + angleError*steerRate
func ComputeAngularVelocity(in AngularInput, p parameter.Traction) float64 {
	rate := SteerRate(in.VForward, in.SlipAngle, p)
	return in.CurrentAngularVelocity*in.AngularDamping + in.AngleError*rate
}
