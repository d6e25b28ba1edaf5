package body

import (
	"github.com/lixenwraith/driftline/vmath"
)

type wallSegment struct {
	a, b vmath.Vec2
}

// Walls are static closed polygons the body cannot pass through
// Contact is resolved against a circle of the body's radius: the body is pushed out along
// the contact normal and the inward velocity component is removed (no bounce)
type Walls struct {
	segments []wallSegment
	radius   float64
}

// NewWalls closes each polygon (last point joins the first) and ignores polygons with fewer than 3 points
func NewWalls(radius float64, polygons ...[]vmath.Vec2) *Walls {
	w := &Walls{radius: radius}
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		for i := range poly {
			w.segments = append(w.segments, wallSegment{a: poly[i], b: poly[(i+1)%len(poly)]})
		}
	}
	return w
}

// Len returns the number of wall segments
func (w *Walls) Len() int {
	return len(w.segments)
}

// Resolve separates b from every wall it touches; returns the number of contacts
func (w *Walls) Resolve(b *Body) int {
	contacts := 0
	for _, s := range w.segments {
		pos := b.Position()
		closest := vmath.ClosestOnSegment(pos, s.a, s.b)
		away := pos.Sub(closest)
		d := away.Mag()
		if d >= w.radius {
			continue
		}

		var n vmath.Vec2
		if d > 0 {
			n = away.Scale(1 / d)
		} else {
			// Centre exactly on the wall: push along the segment normal
			n = s.b.Sub(s.a).Perpendicular().Normalize()
		}
		b.pos = closest.Add(n.Scale(w.radius))
		if vn := b.vel.Dot(n); vn < 0 {
			b.vel = b.vel.Sub(n.Scale(vn))
		}
		contacts++
	}
	return contacts
}
