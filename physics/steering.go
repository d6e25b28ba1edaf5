package physics

import "github.com/lixenwraith/driftline/vmath"

// Steering is the driver's requested heading for one tick
type Steering struct {
	// EffectiveSteer is the input after reverse inversion
	EffectiveSteer float64
	TargetHeading  float64
	// AngleError is TargetHeading - heading wrapped to (-π, π]
	AngleError float64
}

// ComputeSteering converts steer input into a target heading
// Reversing inverts the input so backing up steers like a real car
func ComputeSteering(steer float64, reversing bool, heading, maxSteerAngle float64) Steering {
	effective := steer
	if reversing {
		effective = -steer
	}
	target := heading + effective*maxSteerAngle
	return Steering{
		EffectiveSteer: effective,
		TargetHeading:  target,
		AngleError:     vmath.AngleDiff(target, heading),
	}
}
