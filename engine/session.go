package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sasha-s/go-deadlock"

	"github.com/lixenwraith/driftline/event"
	"github.com/lixenwraith/driftline/input"
	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/physics"
	"github.com/lixenwraith/driftline/race"
	"github.com/lixenwraith/driftline/smoke"
)

var ErrNoVehicle = errors.New("session requires a vehicle")

// SessionConfig wires a session to its collaborators
type SessionConfig struct {
	Tuning  parameter.Tuning
	Lines   []race.ControlLine
	Vehicle physics.VehicleHandle
	// Clock defaults to the system clock
	Clock  Clock
	Logger zerolog.Logger
}

// Session is one race: the vehicle controller, lap tracker, smoke pool and crossing queue
//
// Thread-Safety:
//   - ReportCrossing: any goroutine
//   - Restart, HUD, Snapshot, Particles: any goroutine, serialized with Tick
//   - Tick: single goroutine (the game loop); outbound events dispatch on it
type Session struct {
	mu deadlock.Mutex

	clock      Clock
	log        zerolog.Logger
	vehicle    physics.VehicleHandle
	controller *physics.Controller
	tracker    *race.Tracker
	smoke      *smoke.Pool
	length     float64

	crossings *event.Queue
	outbound  *event.Queue
	router    *event.Router

	frame int64
	last  physics.TickReport
}

// NewSession validates the course lines and builds an idle session
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Vehicle == nil {
		return nil, ErrNoVehicle
	}
	tracker, err := race.NewTracker(cfg.Lines)
	if err != nil {
		return nil, fmt.Errorf("invalid course: %w", err)
	}
	if cfg.Clock == nil {
		cfg.Clock = NewTimeProvider()
	}

	outbound := event.NewQueue(parameter.CrossingQueueHint)
	return &Session{
		clock:      cfg.Clock,
		log:        cfg.Logger.With().Str("component", "session").Logger(),
		vehicle:    cfg.Vehicle,
		controller: physics.NewController(cfg.Tuning),
		tracker:    tracker,
		smoke:      smoke.NewPool(cfg.Tuning.Smoke),
		length:     cfg.Tuning.Body.Length,
		crossings:  event.NewQueue(parameter.CrossingQueueHint),
		outbound:   outbound,
		router:     event.NewRouter(outbound),
	}, nil
}

// Subscribe registers an outbound event handler; call before the first Tick
func (s *Session) Subscribe(h event.Handler) {
	s.router.Register(h)
}

// ReportCrossing records that the vehicle crossed lineID now
// Events are applied in report order at the start of the next Tick
// Serialized with Restart so a report is either cleared by it or stamped after it
func (s *Session) ReportCrossing(lineID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.crossings.Push(event.GameEvent{
		Type:    event.EventLineCrossed,
		Payload: &event.LineCrossedPayload{LineID: lineID},
		At:      s.clock.Now(),
	})
}

// Tick runs one simulation step: drain crossings, drive the vehicle, update smoke,
// then dispatch outbound events to subscribers
// The vehicle backend integrates after Tick returns
func (s *Session) Tick(ctl input.Controls) physics.TickReport {
	s.mu.Lock()
	s.frame++
	now := s.clock.Now()

	for _, ev := range s.crossings.Consume() {
		p, ok := ev.Payload.(*event.LineCrossedPayload)
		if !ok {
			continue
		}
		s.applyCrossing(p.LineID, ev)
	}

	report := s.controller.Step(s.vehicle, ctl)
	s.last = report

	if pt, ok := s.smoke.Emit(report.State.Position, report.Frame.Heading, s.length, report.Frame.SlipAngle, report.Frame.Speed, now); ok {
		s.emit(event.EventSmokeSpawned, &event.SmokePayload{
			ID:        pt.ID,
			Position:  pt.Position,
			SlipAngle: report.Frame.SlipAngle,
			Speed:     report.Frame.Speed,
		}, now)
	}
	s.smoke.Update(now)
	s.mu.Unlock()

	s.router.DispatchAll()
	return report
}

// applyCrossing feeds one crossing to the tracker; caller holds mu
func (s *Session) applyCrossing(id string, ev event.GameEvent) {
	res := s.tracker.Cross(id, ev.At)
	logger := s.log.With().Str("line", id).Int64("frame", s.frame).Logger()

	switch res.Outcome {
	case race.OutcomeRaceStarted:
		logger.Info().Msg("race started")
		s.emit(event.EventRaceStarted, &event.LineCrossedPayload{LineID: id}, ev.At)

	case race.OutcomeCheckpoint:
		logger.Debug().Int("passed", res.CheckpointsPassed).Msg("checkpoint")
		s.emit(event.EventCheckpointPassed, &event.CheckpointPayload{
			LineID: id,
			Passed: res.CheckpointsPassed,
			Total:  s.tracker.TotalCheckpoints(),
		}, ev.At)

	case race.OutcomeLapCompleted:
		snap := s.tracker.Snapshot()
		logger.Info().
			Int("lap", snap.LapsCompleted).
			Dur("time", res.Lap).
			Dur("best", snap.Best).
			Bool("newBest", res.NewBest).
			Msg("lap completed")
		s.emit(event.EventLapCompleted, &event.LapCompletedPayload{
			Number:  snap.LapsCompleted,
			Lap:     res.Lap,
			Best:    snap.Best,
			NewBest: res.NewBest,
		}, ev.At)

	case race.OutcomeLapRejected:
		logger.Debug().
			Int("passed", res.CheckpointsPassed).
			Int("total", s.tracker.TotalCheckpoints()).
			Msg("finish ignored, checkpoints outstanding")
		s.emit(event.EventLapRejected, &event.CheckpointPayload{
			LineID: id,
			Passed: res.CheckpointsPassed,
			Total:  s.tracker.TotalCheckpoints(),
		}, ev.At)

	case race.OutcomeUnknownLine:
		logger.Debug().Msg("unknown control line")
	}
}

// emit queues an outbound event; caller holds mu
func (s *Session) emit(t event.EventType, payload any, at time.Time) {
	s.outbound.Push(event.GameEvent{Type: t, Payload: payload, At: at, Frame: s.frame})
}

// Restart atomically returns the race to Idle: tracker state, passed flags,
// smoke pool and pending crossings are all cleared under one lock
// The restart event is dispatched on the next Tick
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	dropped := s.crossings.Clear()
	s.tracker.Reset()
	s.smoke.Clear()
	s.emit(event.EventSessionRestart, nil, s.clock.Now())

	s.log.Info().Int64("frame", s.frame).Int("droppedCrossings", dropped).Msg("session restarted")
}

// HUD formats the current race state
func (s *Session) HUD() race.HUD {
	s.mu.Lock()
	defer s.mu.Unlock()
	return race.BuildHUD(s.tracker.Snapshot(), s.clock.Now())
}

// Snapshot copies the current race state
func (s *Session) Snapshot() race.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Snapshot()
}

// Particles returns live smoke particles, oldest first
func (s *Session) Particles() []smoke.Particle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.smoke.Particles()
}

// Lines returns control lines with their passed flags
func (s *Session) Lines() []race.ControlLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracker.Lines()
}

// LastReport returns what the controller did on the most recent tick
func (s *Session) LastReport() physics.TickReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Frame returns the number of ticks run
func (s *Session) Frame() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

// PendingCrossings returns crossings reported but not yet applied
func (s *Session) PendingCrossings() int {
	return s.crossings.Len()
}
