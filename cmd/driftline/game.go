package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/driftline/audio"
	"github.com/lixenwraith/driftline/body"
	"github.com/lixenwraith/driftline/config"
	"github.com/lixenwraith/driftline/course"
	"github.com/lixenwraith/driftline/engine"
	"github.com/lixenwraith/driftline/event"
	"github.com/lixenwraith/driftline/input"
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/race"
	"github.com/lixenwraith/driftline/status"
	"github.com/lixenwraith/driftline/vmath"
)

const (
	// sensorThickness is the width of a control line gate in course pixels
	sensorThickness = 20
	// bannerTime is how long a lap banner stays on screen
	bannerTime = 2 * time.Second
)

// Game wires the race session to a physics body, the terminal and audio
// Everything except the event poller runs on the scheduler goroutine
type Game struct {
	cfg    config.Config
	log    zerolog.Logger
	screen tcell.Screen

	course   *course.Course
	walls    [][]vmath.Vec2
	spawn    vmath.Vec2
	startRot float64

	clock   *engine.PausableClock
	car     *body.Body
	sensors *body.Sensors
	barrier *body.Walls
	session *engine.Session
	sound   *audio.SoundManager

	keys  *input.KeyMap
	latch *input.Latch

	metrics   *status.Registry
	telem     *status.Telemetry
	events    chan tcell.Event
	telemetry *rate.Limiter
	interval  time.Duration
	drawEvery uint64
	view      Viewport

	banner      string
	bannerUntil time.Time
	stop        context.CancelFunc
}

// NewGame loads the configured course and builds an idle race on it
func NewGame(cfg config.Config, screen tcell.Screen, logger zerolog.Logger) (*Game, error) {
	c, err := course.Resolve(cfg.Course)
	if err != nil {
		return nil, err
	}
	lines, err := c.ControlLines()
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeyMap()
	for k, action := range cfg.Keys {
		r := []rune(k)
		if len(r) != 1 {
			return nil, fmt.Errorf("key binding %q: must be a single character", k)
		}
		if err := keys.Bind(r[0], action); err != nil {
			return nil, fmt.Errorf("key binding %q: %w", k, err)
		}
	}

	g := &Game{
		cfg:      cfg,
		log:      logger.With().Str("component", "game").Logger(),
		screen:   screen,
		course:   c,
		walls:    c.WallPolygons(),
		spawn:    c.SpawnPoint(),
		startRot: c.StartRotation(),
		clock:    engine.NewPausableClock(engine.NewTimeProvider()),
		keys:     keys,
		latch:    input.NewLatch(parameter.KeyInitialHoldWindow, parameter.KeyHoldWindow),
		metrics:  status.NewRegistry(),
		events:   make(chan tcell.Event, 100),
		// one telemetry line per second at most
		telemetry: rate.NewLimiter(rate.Every(time.Second), 1),
		interval:  cfg.TickInterval(),
	}
	g.telem = status.NewTelemetry(g.metrics)
	g.drawEvery = uint64(max(parameter.FrameUpdateInterval/g.interval, 1))

	radius := cfg.Tuning.Body.Width / 2
	g.car = body.New(cfg.Tuning.Body, g.spawn, g.startRot)
	g.barrier = body.NewWalls(radius, g.walls...)
	g.sensors = body.NewSensors(radius, sensorThickness)
	for _, l := range lines {
		g.sensors.Add(l.ID, l.Points)
	}

	g.session, err = engine.NewSession(engine.SessionConfig{
		Tuning:  cfg.Tuning,
		Lines:   lines,
		Vehicle: g.car,
		Clock:   g.clock,
		Logger:  logger,
	})
	if err != nil {
		return nil, err
	}

	g.sound = audio.NewSoundManager(cfg.Audio.Enabled, cfg.Audio.Volume)
	if err := g.sound.Initialize(); err != nil {
		g.log.Warn().Err(err).Msg("audio unavailable, continuing silent")
	}
	g.session.Subscribe(g.sound)
	g.session.Subscribe(event.HandlerFunc{
		Types: []event.EventType{event.EventLapCompleted, event.EventLapRejected, event.EventRaceStarted},
		Fn:    g.onRaceEvent,
	})

	if screen != nil {
		w, h := screen.Size()
		g.resize(w, h)
	}

	g.log.Info().
		Str("course", c.ID).
		Int("lines", len(lines)).
		Int("wallSegments", g.barrier.Len()).
		Dur("tick", g.interval).
		Msg("game ready")
	return g, nil
}

// Run polls terminal events and drives the simulation until ctx ends or the player quits
func (g *Game) Run(ctx context.Context) error {
	ctx, g.stop = context.WithCancel(ctx)
	defer g.stop()

	goSafe(g.screen, g.poll)

	err := engine.NewScheduler(g.interval).Run(ctx, g.step)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (g *Game) poll() {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			// screen finalized
			return
		}
		g.events <- ev
	}
}

// step is one scheduler tick: input, race logic, integration, collisions, redraw
func (g *Game) step(tick uint64) {
	g.drainEvents()

	if !g.clock.IsPaused() {
		now := g.clock.Now()
		ctl := input.Normalize(input.Snapshot{Keys: g.latch.Keys(now)}, g.cfg.Tuning.Input)
		report := g.session.Tick(ctl)
		g.telem.Record(g.session.Frame(), ctl.Steer, report)
		g.telem.SetParticles(len(g.session.Particles()))

		g.car.Step(g.interval)
		g.barrier.Resolve(g.car)
		g.sensors.Detect(g.car.Position(), g.session.ReportCrossing)

		if g.telemetry.Allow() {
			g.log.Debug().
				Uint64("tick", tick).
				Float64("speed", g.telem.Speed()).
				Float64("slip", report.Frame.SlipAngle).
				Float64("steer", ctl.Steer).
				Bool("reversing", report.Reversing).
				Float64("x", g.car.Position().X).
				Float64("y", g.car.Position().Y).
				Msg("telemetry")
		}
	}

	if g.screen != nil && tick%g.drawEvery == 0 {
		g.draw()
	}
}

func (g *Game) drainEvents() {
	for {
		select {
		case ev := <-g.events:
			g.handleEvent(ev)
		default:
			return
		}
	}
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch a := g.keys.Resolve(ev); a {
		case input.ActionQuit:
			if g.stop != nil {
				g.stop()
			}
		case input.ActionRestart:
			g.restart()
		case input.ActionPause:
			paused := g.clock.Toggle()
			g.telem.SetPaused(paused)
			g.log.Info().Bool("paused", paused).Msg("pause toggled")
		default:
			g.latch.Press(a, g.clock.Now())
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.resize(ev.Size())
	}
}

// restart returns the car to the grid and the race to idle in one go
func (g *Game) restart() {
	g.session.Restart()
	g.car.Teleport(g.spawn, g.startRot)
	g.sensors.Reset()
	g.latch.Reset()
	g.telem.Reset()
	g.banner = ""
}

func (g *Game) onRaceEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRaceStarted:
		g.setBanner("GO", ev.At)
	case event.EventLapRejected:
		g.telem.LapRejected()
		g.setBanner("MISSED CHECKPOINT", ev.At)
	case event.EventLapCompleted:
		p, ok := ev.Payload.(*event.LapCompletedPayload)
		if !ok {
			return
		}
		g.telem.LapCompleted()
		text := fmt.Sprintf("LAP %d %s", p.Number, race.FormatDuration(p.Lap))
		if p.NewBest {
			text += " BEST"
		}
		g.setBanner(text, ev.At)
	}
}

func (g *Game) setBanner(text string, at time.Time) {
	g.banner = text
	g.bannerUntil = at.Add(bannerTime)
}

func (g *Game) resize(w, h int) {
	g.view = NewViewport(g.course.Width, g.course.Height, w, h)
}

func (g *Game) draw() {
	now := g.clock.Now()
	banner := g.banner
	if now.After(g.bannerUntil) {
		banner = ""
	}
	Draw(g.screen, g.view, Frame{
		Walls:     g.walls,
		Lines:     g.session.Lines(),
		Particles: g.session.Particles(),
		Car:       g.car.Position(),
		Rotation:  g.car.Rotation(),
		HUD:       g.session.HUD(),
		Banner:    banner,
		Paused:    g.clock.IsPaused(),
		Overlay:   g.overlay(),
	})
}

// overlay lists live metrics in debug mode
func (g *Game) overlay() []string {
	if !g.cfg.Debug {
		return nil
	}
	return g.metrics.Lines()
}

// Close releases audio; the caller owns the screen
func (g *Game) Close() {
	g.sound.Cleanup()
}
