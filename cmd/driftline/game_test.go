package main

import (
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/driftline/config"
	"github.com/lixenwraith/driftline/course"
	"github.com/lixenwraith/driftline/event"
	"github.com/lixenwraith/driftline/input"
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/race"
	"github.com/lixenwraith/driftline/vmath"
)

func testConfig() config.Config {
	return config.Config{
		TickRate: 60,
		Course:   "tomin",
		Audio:    config.AudioConfig{Enabled: false},
		Tuning:   parameter.DefaultTuning(),
	}
}

func newTestGame(t *testing.T, cfg config.Config) *Game {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)

	g, err := NewGame(cfg, screen, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func press(g *Game, r rune) {
	g.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func rowText(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewGameRejectsBadSetup(t *testing.T) {
	cfg := testConfig()
	cfg.Course = "nowhere"
	_, err := NewGame(cfg, nil, zerolog.Nop())
	assert.ErrorIs(t, err, course.ErrUnknownCourse)

	cfg = testConfig()
	cfg.Keys = map[string]string{"ab": "left"}
	_, err = NewGame(cfg, nil, zerolog.Nop())
	assert.Error(t, err)

	cfg.Keys = map[string]string{"k": "jump"}
	_, err = NewGame(cfg, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestCustomKeyBinding(t *testing.T) {
	cfg := testConfig()
	cfg.Keys = map[string]string{"w": "accelerate"}
	g := newTestGame(t, cfg)

	press(g, 'w')
	for i := uint64(1); i <= 5; i++ {
		g.step(i)
	}
	assert.Greater(t, g.car.Position().X, 1200.0)
}

func TestAccelerateDrivesAlongHeading(t *testing.T) {
	g := newTestGame(t, testConfig())
	start := g.car.Position()

	for i := uint64(1); i <= 10; i++ {
		press(g, 'x')
		g.step(i)
	}

	pos := g.car.Position()
	assert.Greater(t, pos.X, start.X, "spawn rotation faces +X")
	assert.InDelta(t, start.Y, pos.Y, 1e-6)
	assert.EqualValues(t, 10, g.session.Frame())
	assert.Greater(t, g.telem.Speed(), 0.0)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.step(1)

	press(g, 'p')
	g.step(2)
	g.step(3)
	assert.True(t, g.clock.IsPaused())
	assert.EqualValues(t, 1, g.session.Frame())

	press(g, 'p')
	g.step(4)
	assert.False(t, g.clock.IsPaused())
	assert.EqualValues(t, 2, g.session.Frame())
}

func TestRestartReturnsToGrid(t *testing.T) {
	g := newTestGame(t, testConfig())

	g.car.Teleport(vmath.Vec2{X: 1400, Y: 500}, g.startRot)
	g.step(1) // sensor fires
	g.step(2) // crossing applied
	require.True(t, g.session.Snapshot().Racing)
	assert.Equal(t, "GO", g.banner)

	for i := uint64(3); i < 10; i++ {
		press(g, 'x')
		g.step(i)
	}
	press(g, 'r')

	assert.Equal(t, g.spawn, g.car.Position())
	assert.Equal(t, vmath.Vec2{}, g.car.Velocity())
	assert.False(t, g.session.Snapshot().Racing)
	assert.Empty(t, g.banner)
	assert.False(t, g.latch.Held(input.ActionAccelerate, time.Now()))
}

func TestQuitStopsLoop(t *testing.T) {
	g := newTestGame(t, testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	g.stop = cancel

	g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Error(t, ctx.Err())
}

func TestLapBanner(t *testing.T) {
	g := newTestGame(t, testConfig())
	at := time.Unix(500, 0)

	g.onRaceEvent(event.GameEvent{
		Type:    event.EventLapCompleted,
		Payload: &event.LapCompletedPayload{Number: 3, Lap: 41200 * time.Millisecond, NewBest: true},
		At:      at,
	})
	assert.Equal(t, "LAP 3 0:41.20 BEST", g.banner)
	assert.Equal(t, at.Add(bannerTime), g.bannerUntil)

	g.onRaceEvent(event.GameEvent{Type: event.EventLapRejected, At: at})
	assert.Equal(t, "MISSED CHECKPOINT", g.banner)
	assert.Equal(t, int64(1), g.telem.Laps())
}

func TestDrawShowsCarAndHUD(t *testing.T) {
	g := newTestGame(t, testConfig())
	g.draw()

	x, y, ok := g.view.Cell(g.car.Position())
	require.True(t, ok)
	r, _, _, _ := g.screen.GetContent(x, y)
	assert.Equal(t, '→', r)

	hud := rowText(g.screen, g.view.rows)
	assert.Contains(t, hud, "Time: --:--.--")
	assert.Contains(t, hud, "Best: --:--.--")
	assert.Contains(t, hud, "CP 0/2")
}

func TestDebugOverlay(t *testing.T) {
	cfg := testConfig()
	cfg.Debug = true
	g := newTestGame(t, cfg)

	g.step(1)
	g.draw()
	assert.True(t, strings.HasPrefix(rowText(g.screen, 0), "frame 1"))

	g.cfg.Debug = false
	assert.Nil(t, g.overlay())
}

func TestViewport(t *testing.T) {
	v := NewViewport(3840, 2160, 120, 40)
	assert.Equal(t, 38, v.rows)

	x, y, ok := v.Cell(vmath.Vec2{X: 3839, Y: 2159})
	assert.True(t, ok)
	assert.Equal(t, 119, x)
	assert.Equal(t, 37, y)

	_, _, ok = v.Cell(vmath.Vec2{X: -1, Y: 10})
	assert.False(t, ok)
	_, _, ok = v.Cell(vmath.Vec2{X: 10, Y: 2160})
	assert.False(t, ok)
}

func TestHUDLine(t *testing.T) {
	h := race.BuildHUD(race.Snapshot{TotalCheckpoints: 2}, time.Unix(0, 0))
	assert.Equal(t, "Time: --:--.--  Best: --:--.--  CP 0/2", HUDLine(h))
	assert.Equal(t, "Time: 00:01.00  Best: --:--.--", HUDLine(race.HUD{Time: "Time: 00:01.00", Best: "Best: --:--.--"}))
}

func TestGlyphs(t *testing.T) {
	assert.Equal(t, '→', arrow(0))
	assert.Equal(t, '↓', arrow(math.Pi/2))
	assert.Equal(t, '←', arrow(math.Pi))
	assert.Equal(t, '↑', arrow(-math.Pi/2))
	assert.Equal(t, '→', arrow(2*math.Pi-0.1))

	assert.Equal(t, '▓', smokeRune(0.7))
	assert.Equal(t, '▒', smokeRune(0.3))
	assert.Equal(t, '░', smokeRune(0.1))
}
