package physics

import (
	"github.com/lixenwraith/driftline/input"
	"github.com/lixenwraith/driftline/parameter"
)

// TickReport captures what the controller read and commanded in one tick
type TickReport struct {
	State         State
	Frame         Frame
	Steering      Steering
	Stabilization Stabilization
	Traction      float64
	Pedal         Pedal
	Reversing     bool
	// AngularVelocity is the value written to the backend
	AngularVelocity float64
}

// Controller runs the per-tick handling model against a VehicleHandle
type Controller struct {
	tuning parameter.Tuning
}

// NewController creates a controller with the given tuning
func NewController(tuning parameter.Tuning) *Controller {
	return &Controller{tuning: tuning}
}

// Tuning returns the active tuning
func (c *Controller) Tuning() parameter.Tuning {
	return c.tuning
}

// Step applies one tick of steering, stabilization and pedal commands
// Ordering: stabilizer velocity correction, then the single angular velocity write
// (using the stabilizer's damping), then the longitudinal command
func (c *Controller) Step(h VehicleHandle, ctl input.Controls) TickReport {
	t := &c.tuning
	s := Sample(h)
	heading := s.Heading()
	f := Decompose(s.Velocity, heading)

	stab := Stabilize(s, ctl.Steer, t.Damping, t.Stabilizer)
	if stab.ShouldCorrectVelocity {
		h.SetVelocity(*stab.CorrectedVelocity)
	}

	pedal := ResolvePedal(ctl.Accelerate, ctl.Brake)
	reversing := pedal == PedalBrake && f.Speed < t.Drive.ReverseThreshold

	steering := ComputeSteering(ctl.Steer, reversing, heading, t.Steering.MaxSteerAngle)
	omega := ComputeAngularVelocity(AngularInput{
		CurrentAngularVelocity: s.AngularVelocity,
		AngularDamping:         stab.AngularDamping,
		AngleError:             steering.AngleError,
		SlipAngle:              f.SlipAngle,
		VForward:               f.VForward,
	}, t.Traction)
	h.SetAngularVelocity(omega)

	switch pedal {
	case PedalAccelerate:
		ApplyDrive(h, heading, t.Drive)
	case PedalBrake:
		ApplyBrakeOrReverse(h, heading, f.Speed, t.Drive)
	default:
		ApplyIdle(h, t.Drive)
	}

	return TickReport{
		State:           s,
		Frame:           f,
		Steering:        steering,
		Stabilization:   stab,
		Traction:        Traction(f.VForward, t.Traction),
		Pedal:           pedal,
		Reversing:       reversing,
		AngularVelocity: omega,
	}
}
