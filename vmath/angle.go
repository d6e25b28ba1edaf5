package vmath

import "math"

// AngleDiff returns a-b wrapped to the shortest signed angular distance
// Result in (-π, π]; computed through atan2 so it never jumps at the ±π seam
func AngleDiff(a, b float64) float64 {
	d := a - b
	r := math.Atan2(math.Sin(d), math.Cos(d))
	// atan2 returns -π for a difference of exactly -π; fold onto the closed end
	if r <= -math.Pi {
		r += 2 * math.Pi
	}
	return r
}

// NormalizeAngle wraps angle into [0, 2π)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
