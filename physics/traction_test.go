package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/driftline/parameter"
)

func TestTractionBounds(t *testing.T) {
	p := parameter.DefaultTraction()

	for _, v := range []float64{0, 0.01, 0.05, -0.05} {
		assert.Equal(t, 0.0, Traction(v, p), "v=%f", v)
	}
	for _, v := range []float64{0.75, 1, 10, -0.75, -5} {
		assert.Equal(t, 1.0, Traction(v, p), "v=%f", v)
	}
	assert.InDelta(t, 0.5, Traction(0.4, p), 1e-12)
	assert.InDelta(t, 0.5, Traction(-0.4, p), 1e-12)
}

func TestTractionMonotonic(t *testing.T) {
	p := parameter.DefaultTraction()
	prev := Traction(0, p)
	for v := 0.0; v <= 2.0; v += 0.001 {
		cur := Traction(v, p)
		assert.GreaterOrEqual(t, cur, prev, "v=%f", v)
		assert.GreaterOrEqual(t, cur, 0.0)
		assert.LessOrEqual(t, cur, 1.0)
		prev = cur
	}
}

func TestSlipLossFactor(t *testing.T) {
	p := parameter.DefaultTraction()
	assert.Equal(t, 1.0, SlipLossFactor(0, p))
	assert.InDelta(t, 0.65, SlipLossFactor(math.Pi/4, p), 1e-12)
	assert.InDelta(t, 0.3, SlipLossFactor(math.Pi/2, p), 1e-12)
	assert.InDelta(t, 0.3, SlipLossFactor(-math.Pi, p), 1e-12, "floored past 90°")
}

func TestAngularDamping(t *testing.T) {
	d := parameter.DefaultTuning().Damping
	assert.InDelta(t, 0.99906, AngularDamping(0, d), 1e-12)
	assert.InDelta(t, 0.99906-0.5*0.01706, AngularDamping(9, d), 1e-12)
	assert.InDelta(t, 0.982, AngularDamping(18, d), 1e-12)
	assert.InDelta(t, 0.982, AngularDamping(40, d), 1e-12)
}

func TestComputeAngularVelocity(t *testing.T) {
	p := parameter.DefaultTraction()
	got := ComputeAngularVelocity(AngularInput{
		CurrentAngularVelocity: 0.01,
		AngularDamping:         0.99,
		AngleError:             math.Pi / 3,
		SlipAngle:              0,
		VForward:               5,
	}, p)
	assert.InDelta(t, 0.01*0.99+math.Pi/3*0.00264, got, 1e-12)
}

func TestComputeAngularVelocityAtRestIsFinite(t *testing.T) {
	p := parameter.DefaultTraction()
	f := Decompose(vmathZero, 1.2)
	assert.Equal(t, 0.0, f.SlipAngle)
	assert.Equal(t, 0.0, f.Speed)

	got := ComputeAngularVelocity(AngularInput{
		CurrentAngularVelocity: 0,
		AngularDamping:         AngularDamping(0, parameter.DefaultTuning().Damping),
		AngleError:             math.Pi / 3,
		SlipAngle:              f.SlipAngle,
		VForward:               f.VForward,
	}, p)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
	assert.Equal(t, 0.0, got, "no authority at rest")
}
