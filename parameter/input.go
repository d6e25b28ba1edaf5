package parameter

import "time"

// Input normalization
const (
	// AxisDeadZone ignores analog steer values with magnitude at or below it
	AxisDeadZone = 0.1
	// SteerAxis is the gamepad axis index used for steering
	SteerAxis = 0
	// AccelButton is the gamepad button index for throttle
	AccelButton = 0
	// BrakeButton is the gamepad button index for brake/reverse
	BrakeButton = 2
	// KeyHoldWindow keeps a key latched after its last auto-repeat event
	KeyHoldWindow = 180 * time.Millisecond
	// KeyInitialHoldWindow keeps a fresh press latched until auto-repeat begins;
	// terminals start repeating 250-660ms after the first press
	KeyInitialHoldWindow = 700 * time.Millisecond
)
