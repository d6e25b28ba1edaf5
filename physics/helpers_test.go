package physics

import "github.com/lixenwraith/driftline/vmath"

var vmathZero = vmath.Vec2{}

// fakeHandle records commands; Velocity reflects the latest SetVelocity
type fakeHandle struct {
	state  State
	forces []vmath.Vec2
	setVel []vmath.Vec2
	setW   []float64
}

func (f *fakeHandle) Position() vmath.Vec2     { return f.state.Position }
func (f *fakeHandle) Velocity() vmath.Vec2     { return f.state.Velocity }
func (f *fakeHandle) AngularVelocity() float64 { return f.state.AngularVelocity }
func (f *fakeHandle) Rotation() float64        { return f.state.Rotation }

func (f *fakeHandle) ApplyForce(v vmath.Vec2) {
	f.forces = append(f.forces, v)
}

func (f *fakeHandle) SetVelocity(v vmath.Vec2) {
	f.state.Velocity = v
	f.setVel = append(f.setVel, v)
}

func (f *fakeHandle) SetAngularVelocity(w float64) {
	f.state.AngularVelocity = w
	f.setW = append(f.setW, w)
}

// headingState builds a state whose heading (not raw rotation) is h
func headingState(h float64, vel vmath.Vec2, w float64) State {
	return State{Velocity: vel, Rotation: RotationFromHeading(h), AngularVelocity: w}
}
