package body

import (
	"github.com/lixenwraith/driftline/vmath"
)

// Sensor is a thick line gate spanning the first and last points of a control line
type Sensor struct {
	ID          string
	A, B        vmath.Vec2
	overlapping bool
}

// Sensors detects when a round body starts overlapping a gate
// Mirrors a collision-start callback: one report per entry, none while inside
type Sensors struct {
	gates     []Sensor
	radius    float64
	halfWidth float64
}

// NewSensors creates an empty set for a body of the given radius and gates of the given thickness
func NewSensors(bodyRadius, thickness float64) *Sensors {
	return &Sensors{
		radius:    bodyRadius,
		halfWidth: thickness / 2,
	}
}

// Add registers a gate; lines with fewer than two points are ignored
func (s *Sensors) Add(id string, points []vmath.Vec2) bool {
	if len(points) < 2 {
		return false
	}
	s.gates = append(s.gates, Sensor{ID: id, A: points[0], B: points[len(points)-1]})
	return true
}

// Len returns the number of gates
func (s *Sensors) Len() int {
	return len(s.gates)
}

// Detect checks pos against every gate and calls emit for each new overlap, in gate order
func (s *Sensors) Detect(pos vmath.Vec2, emit func(id string)) {
	reach := s.radius + s.halfWidth
	for i := range s.gates {
		g := &s.gates[i]
		inside := vmath.DistToSegment(pos, g.A, g.B) <= reach
		if inside && !g.overlapping && emit != nil {
			emit(g.ID)
		}
		g.overlapping = inside
	}
}

// Reset forgets overlap state so a body placed inside a gate reports it again
func (s *Sensors) Reset() {
	for i := range s.gates {
		s.gates[i].overlapping = false
	}
}
