package main

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/driftline/physics"
	"github.com/lixenwraith/driftline/race"
	"github.com/lixenwraith/driftline/smoke"
	"github.com/lixenwraith/driftline/vmath"
)

// hudRows is reserved at the bottom of the screen
const hudRows = 2

var (
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStart      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCheckpoint = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePassed     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSmoke      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCar        = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleBest       = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleOverlay    = tcell.StyleDefault.Foreground(tcell.ColorLightGray).Background(tcell.ColorBlack)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
)

// arrows indexed by heading octant, starting at +X and turning clockwise on screen (y down)
var arrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Viewport maps course pixels onto terminal cells, stretching each axis independently
type Viewport struct {
	cols, rows int
	sx, sy     float64
}

// NewViewport fits a course of w x h pixels into a screen, leaving room for the HUD
func NewViewport(courseW, courseH float64, screenW, screenH int) Viewport {
	v := Viewport{cols: screenW, rows: max(screenH-hudRows, 1)}
	if courseW > 0 {
		v.sx = float64(v.cols) / courseW
	}
	if courseH > 0 {
		v.sy = float64(v.rows) / courseH
	}
	return v
}

// Cell converts a course position to a cell; ok is false when off the play area
func (v Viewport) Cell(p vmath.Vec2) (x, y int, ok bool) {
	x = int(math.Floor(p.X * v.sx))
	y = int(math.Floor(p.Y * v.sy))
	return x, y, x >= 0 && y >= 0 && x < v.cols && y < v.rows
}

// Frame is everything drawn in one redraw
type Frame struct {
	Walls     [][]vmath.Vec2
	Lines     []race.ControlLine
	Particles []smoke.Particle
	Car       vmath.Vec2
	Rotation  float64
	HUD       race.HUD
	Banner    string
	Paused    bool
	// Overlay rows are drawn top-left over the course
	Overlay []string
}

// Draw renders a frame onto the screen and shows it
func Draw(s tcell.Screen, v Viewport, f Frame) {
	s.Clear()

	for _, poly := range f.Walls {
		for i := range poly {
			drawSegment(s, v, poly[i], poly[(i+1)%len(poly)], '#', styleWall)
		}
	}
	for _, l := range f.Lines {
		if len(l.Points) < 2 {
			continue
		}
		ch, st := ':', styleCheckpoint
		switch {
		case l.Kind == race.KindStartFinish:
			ch, st = '=', styleStart
		case l.Passed:
			st = stylePassed
		}
		drawSegment(s, v, l.Points[0], l.Points[len(l.Points)-1], ch, st)
	}
	for _, p := range f.Particles {
		if x, y, ok := v.Cell(p.Position); ok {
			s.SetContent(x, y, smokeRune(p.Alpha), nil, styleSmoke)
		}
	}
	if x, y, ok := v.Cell(f.Car); ok {
		s.SetContent(x, y, arrow(physics.HeadingFromRotation(f.Rotation)), nil, styleCar)
	}

	for i, line := range f.Overlay {
		if i >= v.rows {
			break
		}
		drawText(s, 0, i, line, styleOverlay)
	}

	drawHUD(s, v.rows, f)
	s.Show()
}

func drawHUD(s tcell.Screen, row int, f Frame) {
	drawText(s, 0, row, HUDLine(f.HUD), styleHUD)

	col := 0
	for _, lap := range f.HUD.Laps {
		st := styleHUD
		if lap.IsBest {
			st = styleBest
		}
		col = drawText(s, col, row+1, lap.Text, st) + 2
	}

	banner := f.Banner
	if f.Paused {
		banner = "PAUSED"
	}
	if banner != "" {
		w, _ := s.Size()
		drawText(s, max(w-len(banner)-1, 0), row, banner, styleBanner)
	}
}

// HUDLine is the single-line summary of the race clock
func HUDLine(h race.HUD) string {
	parts := []string{h.Time, h.Best}
	if h.Progress != "" {
		parts = append(parts, h.Progress)
	}
	return strings.Join(parts, "  ")
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, st)
		x++
	}
	return x
}

// drawSegment plots a course-space segment with Bresenham stepping
func drawSegment(s tcell.Screen, v Viewport, a, b vmath.Vec2, ch rune, st tcell.Style) {
	x0, y0, _ := v.Cell(a)
	x1, y1, _ := v.Cell(b)

	dx, dy := x1-x0, y1-y0
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}
	stepX, stepY := 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}

	x, y := x0, y0
	err := absDx - absDy
	for {
		if x >= 0 && y >= 0 && x < v.cols && y < v.rows {
			s.SetContent(x, y, ch, nil, st)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -absDy {
			err -= absDy
			x += stepX
		}
		if e2 < absDx {
			err += absDx
			y += stepY
		}
	}
}

// smokeRune picks a shade for a particle's opacity
func smokeRune(alpha float64) rune {
	switch {
	case alpha > 0.5:
		return '▓'
	case alpha > 0.25:
		return '▒'
	default:
		return '░'
	}
}

// arrow picks the glyph closest to heading
func arrow(heading float64) rune {
	oct := int(math.Round(vmath.NormalizeAngle(heading)/(math.Pi/4))) % 8
	if oct < 0 {
		oct += 8
	}
	return arrows[oct]
}
