package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/driftline/input"
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

func TestControllerBrakeWins(t *testing.T) {
	c := NewController(parameter.DefaultTuning())
	h := &fakeHandle{state: headingState(0, vmath.V2(5, 0), 0)}

	rep := c.Step(h, input.Controls{Accelerate: true, Brake: true})
	assert.Equal(t, PedalBrake, rep.Pedal)
	assert.False(t, rep.Reversing)
	assert.Empty(t, h.forces, "no thrust while braking")
	assert.InDelta(t, 5*0.98, h.state.Velocity.X, 1e-9)
}

func TestControllerReverseInvertsSteering(t *testing.T) {
	c := NewController(parameter.DefaultTuning())
	h := &fakeHandle{state: headingState(0, vmath.V2(0.5, 0), 0)}

	rep := c.Step(h, input.Controls{Steer: 1, Brake: true})
	assert.True(t, rep.Reversing)
	assert.Equal(t, -1.0, rep.Steering.EffectiveSteer)
	assert.Less(t, rep.Steering.AngleError, 0.0)
	require.Len(t, h.forces, 1)
	assert.Less(t, h.forces[0].X, 0.0)
}

func TestControllerWritesAngularVelocityOnce(t *testing.T) {
	c := NewController(parameter.DefaultTuning())
	h := &fakeHandle{state: headingState(1, vmath.FromAngle(1).Scale(3), 0.01)}

	rep := c.Step(h, input.Controls{Steer: -0.4, Accelerate: true})
	require.Len(t, h.setW, 1)
	assert.Equal(t, rep.AngularVelocity, h.setW[0])
	assert.Less(t, rep.AngularVelocity, 0.01, "steering right pulls ω down")
}

func TestControllerAtRestHasNoSteeringAuthority(t *testing.T) {
	c := NewController(parameter.DefaultTuning())
	h := &fakeHandle{state: headingState(0, vmath.Vec2{}, 0)}

	rep := c.Step(h, input.Controls{Steer: 1})
	assert.Equal(t, 0.0, rep.Traction)
	assert.Equal(t, 0.0, rep.AngularVelocity)
	assert.False(t, math.IsNaN(rep.Frame.SlipAngle))
	assert.Equal(t, PedalIdle, rep.Pedal)
}

func TestControllerStraightLineCorrection(t *testing.T) {
	c := NewController(parameter.DefaultTuning())
	h := &fakeHandle{state: headingState(0, vmath.FromAngle(0.02).Scale(6), 0)}

	rep := c.Step(h, input.Controls{Accelerate: true})
	require.True(t, rep.Stabilization.ShouldApply)
	require.NotEmpty(t, h.setVel)
	assert.InDelta(t, 0, h.setVel[0].Y, 1e-9)
	assert.Len(t, h.forces, 1)
}
