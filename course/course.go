// Package course loads track definitions: control lines, walls and the spawn point
package course

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/driftline/race"
	"github.com/lixenwraith/driftline/vmath"
)

var (
	ErrNoStartFinish = race.ErrNoStartFinish
	ErrDuplicateLine = race.ErrDuplicateLine
	ErrTooFewPoints  = errors.New("control line needs at least two points")
	ErrBadPoint      = errors.New("point must be [x, y] or {x, y}")
	ErrBadSize       = errors.New("course size must be positive")
	ErrUnknownCourse = errors.New("unknown course")
)

// DefaultSpawnRotation points the car's heading along +X
const DefaultSpawnRotation = -math.Pi / 2

// Point accepts either a two-element sequence or an {x, y} mapping
type Point struct {
	X, Y float64
}

func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := n.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: %w", n.Line, ErrBadPoint)
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := n.Decode(&m); err != nil {
			return err
		}
		if m.X == nil || m.Y == nil {
			return fmt.Errorf("line %d: %w", n.Line, ErrBadPoint)
		}
		p.X, p.Y = *m.X, *m.Y
		return nil
	default:
		return fmt.Errorf("line %d: %w", n.Line, ErrBadPoint)
	}
}

func (p Point) Vec() vmath.Vec2 {
	return vmath.V2(p.X, p.Y)
}

// Line is a control line as written in a course file
type Line struct {
	ID     string  `yaml:"id"`
	Kind   string  `yaml:"kind"`
	Points []Point `yaml:"points"`
}

// Walls are closed polygons bounding the drivable surface
type Walls struct {
	Inner []Point `yaml:"inner"`
	Outer []Point `yaml:"outer"`
}

// Course is a parsed track
type Course struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Width         float64  `yaml:"width"`
	Height        float64  `yaml:"height"`
	Spawn         *Point   `yaml:"spawn"`
	SpawnRotation *float64 `yaml:"spawnRotation"`
	Lines         []Line   `yaml:"lines"`
	Walls         Walls    `yaml:"walls"`
}

// Parse decodes and validates a YAML course; unknown keys are rejected
func Parse(data []byte) (*Course, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var c Course
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse course: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads a course file
func Load(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks geometry and builds the control lines once to surface tracker errors
func (c *Course) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%gx%g: %w", c.Width, c.Height, ErrBadSize)
	}
	lines, err := c.ControlLines()
	if err != nil {
		return err
	}
	if _, err := race.NewTracker(lines); err != nil {
		return err
	}
	return nil
}

// ControlLines converts file lines to tracker lines, in file order
func (c *Course) ControlLines() ([]race.ControlLine, error) {
	out := make([]race.ControlLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		kind, err := race.ParseKind(l.Kind)
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", l.ID, err)
		}
		if len(l.Points) < 2 {
			return nil, fmt.Errorf("line %q: %w", l.ID, ErrTooFewPoints)
		}
		out = append(out, race.ControlLine{
			ID:     l.ID,
			Kind:   kind,
			Points: toVecs(l.Points),
		})
	}
	return out, nil
}

// SpawnPoint returns the configured spawn, else the inner wall centroid, else the course centre
func (c *Course) SpawnPoint() vmath.Vec2 {
	if c.Spawn != nil {
		return c.Spawn.Vec()
	}
	if len(c.Walls.Inner) >= 3 {
		var sum vmath.Vec2
		for _, p := range c.Walls.Inner {
			sum = sum.Add(p.Vec())
		}
		return sum.Scale(1 / float64(len(c.Walls.Inner)))
	}
	return vmath.V2(c.Width/2, c.Height/2)
}

// StartRotation returns the raw body rotation at spawn
func (c *Course) StartRotation() float64 {
	if c.SpawnRotation != nil {
		return *c.SpawnRotation
	}
	return DefaultSpawnRotation
}

// WallPolygons returns the inner and outer walls that have enough points to close
func (c *Course) WallPolygons() [][]vmath.Vec2 {
	var out [][]vmath.Vec2
	for _, w := range [][]Point{c.Walls.Inner, c.Walls.Outer} {
		if len(w) >= 3 {
			out = append(out, toVecs(w))
		}
	}
	return out
}

func toVecs(ps []Point) []vmath.Vec2 {
	out := make([]vmath.Vec2, len(ps))
	for i, p := range ps {
		out[i] = p.Vec()
	}
	return out
}
