// Package body is a minimal rigid-body backend for the handling model
// Integration follows the position-Verlet style of 2D browser engines: velocity is the
// displacement per base step, air friction scales it every step, forces add f/m*dt²
package body

import (
	"time"

	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

// Body is a single free rigid body with no collision response
// Not safe for concurrent use; owned by the simulation goroutine
type Body struct {
	pos      vmath.Vec2
	vel      vmath.Vec2
	angle    float64
	angVel   float64
	force    vmath.Vec2
	cfg      parameter.Body
	stepBase float64 // ms treated as one step
}

// New places a body at pos with the given raw rotation
func New(cfg parameter.Body, pos vmath.Vec2, rotation float64) *Body {
	return &Body{
		pos:      pos,
		angle:    rotation,
		cfg:      cfg,
		stepBase: parameter.BodyBaseDeltaMs,
	}
}

func (b *Body) Position() vmath.Vec2         { return b.pos }
func (b *Body) Velocity() vmath.Vec2         { return b.vel }
func (b *Body) AngularVelocity() float64     { return b.angVel }
func (b *Body) Rotation() float64            { return b.angle }
func (b *Body) Length() float64              { return b.cfg.Length }
func (b *Body) Width() float64               { return b.cfg.Width }
func (b *Body) SetVelocity(v vmath.Vec2)     { b.vel = v }
func (b *Body) SetAngularVelocity(w float64) { b.angVel = w }

// ApplyForce accumulates force until the next Step
func (b *Body) ApplyForce(f vmath.Vec2) {
	b.force = b.force.Add(f)
}

// Teleport moves the body and clears all motion
func (b *Body) Teleport(pos vmath.Vec2, rotation float64) {
	b.pos = pos
	b.angle = rotation
	b.vel = vmath.Vec2{}
	b.angVel = 0
	b.force = vmath.Vec2{}
}

// Step integrates one step of dt and clears accumulated force
// v = v*(1-frictionAir*r) + f/m*dt²; p += v*r; ω = ω*(1-frictionAir*r); θ += ω*r
// where r = dt / base step
func (b *Body) Step(dt time.Duration) {
	dtMs := float64(dt) / float64(time.Millisecond)
	if dtMs <= 0 {
		return
	}
	r := dtMs / b.stepBase
	air := 1 - b.cfg.FrictionAir*r
	if air < 0 {
		air = 0
	}

	accel := vmath.Vec2{}
	if b.cfg.Mass > 0 {
		accel = b.force.Scale(dtMs * dtMs / b.cfg.Mass)
	}
	b.vel = b.vel.Scale(air).Add(accel)
	b.pos = b.pos.Add(b.vel.Scale(r))

	b.angVel *= air
	b.angle += b.angVel * r

	b.force = vmath.Vec2{}
}
