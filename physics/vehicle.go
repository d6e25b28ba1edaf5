package physics

import (
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

// VehicleHandle is the narrow capability set the core needs from a physics backend
// Rotation is the engine's raw body angle; the core adds parameter.HeadingOffset itself
type VehicleHandle interface {
	Position() vmath.Vec2
	Velocity() vmath.Vec2
	AngularVelocity() float64
	Rotation() float64

	ApplyForce(f vmath.Vec2)
	SetVelocity(v vmath.Vec2)
	SetAngularVelocity(w float64)
}

// State is a read-only sample of a vehicle taken at the start of a tick
type State struct {
	Position        vmath.Vec2
	Velocity        vmath.Vec2
	Rotation        float64
	AngularVelocity float64
}

// Sample reads the current state from the backend
func Sample(h VehicleHandle) State {
	return State{
		Position:        h.Position(),
		Velocity:        h.Velocity(),
		Rotation:        h.Rotation(),
		AngularVelocity: h.AngularVelocity(),
	}
}

// Heading returns the forward-facing direction in world radians
func (s State) Heading() float64 {
	return HeadingFromRotation(s.Rotation)
}

// Speed returns velocity magnitude
func (s State) Speed() float64 {
	return s.Velocity.Mag()
}

// HeadingFromRotation applies the sprite alignment offset
func HeadingFromRotation(rotation float64) float64 {
	return rotation + parameter.HeadingOffset
}

// RotationFromHeading is the inverse of HeadingFromRotation
func RotationFromHeading(heading float64) float64 {
	return heading - parameter.HeadingOffset
}
