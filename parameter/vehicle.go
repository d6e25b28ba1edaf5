package parameter

import "math"

// Heading
const (
	// HeadingOffset aligns the sprite's visual up with the engine's zero rotation axis
	// heading = rotation + HeadingOffset, applied by every consumer
	HeadingOffset = math.Pi / 2
)

// Steering
const (
	// MaxSteerAngle is the target heading offset at full steer input (60°)
	MaxSteerAngle = math.Pi / 3
)

// Traction / slip
const (
	// TractionBase is the steering rate gain at full traction and zero slip
	TractionBase = 0.00264
	// TractionSlipLoss is the fraction of steering authority lost at 90° slip
	TractionSlipLoss = 0.7
	// TractionMin is the forward speed below which steering has no authority
	TractionMin = 0.05
	// TractionMax is the speed span over which traction ramps from 0 to 1
	TractionMax = 0.7
)

// Angular damping: base - min(speed/ref, 1) * span
const (
	AngularDampingBase     = 0.99906
	AngularDampingSpan     = 0.01706
	AngularDampingSpeedRef = 18.0
)

// Straight-line stabilizer
const (
	StraightMaxDirectionDiff  = 0.1
	StraightMaxSlipAngle      = 0.1
	StraightMaxAngularVel     = 0.02
	StraightMaxSteerInput     = 0.1
	StraightMinSpeed          = 1.5
	StraightDampingFactor     = 0.7
	StraightMinCorrectSpeed   = 0.1
	StraightSnapDirectionDiff = 0.05
	// StraightConvergenceBase is scaled by 1 + min(speed/StraightConvergenceSpeedRef, StraightConvergenceMaxBoost)
	StraightConvergenceBase     = 0.03
	StraightConvergenceSpeedRef = 10.0
	StraightConvergenceMaxBoost = 1.5
)

// Drive / brake / idle
const (
	// DriveForceMagnitude is the per-tick thrust along heading
	DriveForceMagnitude = 0.018
	// ReverseForceRatio scales thrust for low-speed reversing
	ReverseForceRatio = 0.3
	// ReverseSpeedThreshold is the speed below which brake becomes reverse
	ReverseSpeedThreshold = 1.0
	// BrakeVelocityFactor is applied to velocity per braking tick above the reverse threshold
	BrakeVelocityFactor = 0.98
	// IdleVelocityFactor is ambient rolling resistance per tick with no pedal held
	IdleVelocityFactor = 0.995
)

// Reference rigid body
const (
	BodyMass        = 30.0
	BodyFrictionAir = 0.025
	BodyWidth       = 36.0
	BodyLength      = 48.0
	// BodyBaseDeltaMs is the step the body integration treats as one tick
	BodyBaseDeltaMs = 1000.0 / 60.0
)
