package parameter

import "time"

// Drift smoke
const (
	// SmokeSlipThreshold is the |slip angle| above which the car is sliding
	SmokeSlipThreshold = 0.25
	// SmokeMinSpeed is the speed above which a slide produces smoke
	SmokeMinSpeed = 2.0
	// SmokeInterval is the minimum gap between spawns
	SmokeInterval = 120 * time.Millisecond
	// SmokeMaxParticles caps live particles; the oldest is evicted on overflow
	SmokeMaxParticles = 5
	// SmokeStartSize/SmokeMaxSize are particle diameters in pixels
	SmokeStartSize = 60.0
	SmokeMaxSize   = 120.0
	SmokeMaxAlpha  = 0.7
	// SmokeExpandTime is the growth phase; size holds after it
	SmokeExpandTime = 500 * time.Millisecond
	// SmokeLifetime is total particle life; alpha fades to zero across it
	SmokeLifetime = 1500 * time.Millisecond
	// SmokeBackOffset is the spawn offset behind the car, as a fraction of body length
	SmokeBackOffset = 0.2
)
