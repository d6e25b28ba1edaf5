package vmath

// ClosestOnSegment returns the point of the closed segment ab nearest to p
// Degenerate segment (a == b) returns a
func ClosestOnSegment(p, a, b Vec2) Vec2 {
	ab := b.Sub(a)
	lenSq := ab.MagSq()
	if lenSq == 0 {
		return a
	}
	t := Clamp01(p.Sub(a).Dot(ab) / lenSq)
	return a.Add(ab.Scale(t))
}

// DistToSegment returns the distance from p to the closed segment ab
func DistToSegment(p, a, b Vec2) float64 {
	return p.Sub(ClosestOnSegment(p, a, b)).Mag()
}

// DistToPolyline returns the minimum distance from p to any segment of points
// A single point is treated as a degenerate segment; empty input returns -1
func DistToPolyline(p Vec2, points []Vec2) float64 {
	switch len(points) {
	case 0:
		return -1
	case 1:
		return p.Sub(points[0]).Mag()
	}
	best := DistToSegment(p, points[0], points[1])
	for i := 1; i < len(points)-1; i++ {
		if d := DistToSegment(p, points[i], points[i+1]); d < best {
			best = d
		}
	}
	return best
}
