package physics_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/driftline/body"
	"github.com/lixenwraith/driftline/input"
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/physics"
	"github.com/lixenwraith/driftline/vmath"
)

func TestFullSteerFromRestRotatesTowardTarget(t *testing.T) {
	tun := parameter.DefaultTuning()
	b := body.New(tun.Body, vmath.V2(100, 100), -math.Pi/2)
	c := physics.NewController(tun)
	ctl := input.Controls{Steer: 1, Accelerate: true}

	headings := make([]float64, 0, 60)
	for i := 0; i < 60; i++ {
		c.Step(b, ctl)
		b.Step(parameter.TickInterval)

		require.True(t, b.Position().IsFinite(), "tick %d", i)
		require.True(t, b.Velocity().IsFinite(), "tick %d", i)
		require.False(t, math.IsNaN(b.Rotation()), "tick %d", i)
		headings = append(headings, physics.HeadingFromRotation(b.Rotation()))
	}

	for i := 1; i < len(headings); i++ {
		assert.GreaterOrEqual(t, headings[i], headings[i-1], "tick %d", i)
	}
	for i := 20; i < len(headings); i++ {
		assert.Greater(t, headings[i], headings[i-1], "tick %d", i)
	}
	assert.Greater(t, headings[59], 1.0)
	assert.Greater(t, b.Velocity().Mag(), 1.0)
}

func TestStraightRunStaysStraight(t *testing.T) {
	tun := parameter.DefaultTuning()
	b := body.New(tun.Body, vmath.V2(0, 0), 0)
	c := physics.NewController(tun)

	for i := 0; i < 120; i++ {
		c.Step(b, input.Controls{Accelerate: true})
		b.Step(parameter.TickInterval)
	}
	assert.InDelta(t, physics.HeadingFromRotation(0), physics.HeadingFromRotation(b.Rotation()), 1e-9)
	assert.InDelta(t, 0, b.Position().X, 1e-6)
	assert.Greater(t, b.Position().Y, 10.0)
}
