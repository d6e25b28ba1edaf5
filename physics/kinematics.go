package physics

import (
	"math"

	"github.com/lixenwraith/driftline/vmath"
)

// Frame is the velocity decomposed into the vehicle's own axes
type Frame struct {
	Heading float64
	Speed   float64

	Forward vmath.Vec2 // (cos h, sin h)
	Side    vmath.Vec2 // (-sin h, cos h)

	VForward float64 // velocity · Forward
	VSide    float64 // velocity · Side

	// SlipAngle is atan2(VSide, VForward): angle between heading and travel
	SlipAngle float64

	// DirectionDiff is the wrapped difference between velocity angle and heading
	DirectionDiff float64
}

// Decompose projects velocity onto the heading frame
// Zero velocity yields zero slip and zero direction difference
func Decompose(velocity vmath.Vec2, heading float64) Frame {
	forward := vmath.FromAngle(heading)
	side := vmath.V2(-math.Sin(heading), math.Cos(heading))
	vF := velocity.Dot(forward)
	vS := velocity.Dot(side)

	return Frame{
		Heading:       heading,
		Speed:         velocity.Mag(),
		Forward:       forward,
		Side:          side,
		VForward:      vF,
		VSide:         vS,
		SlipAngle:     math.Atan2(vS, vF),
		DirectionDiff: vmath.AngleDiff(velocity.Angle(), heading),
	}
}
