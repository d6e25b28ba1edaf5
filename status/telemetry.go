package status

import (
	"sync/atomic"

	"github.com/lixenwraith/driftline/physics"
)

// Metric keys
const (
	KeyFrame       = "frame"
	KeyLaps        = "laps"
	KeyRejected    = "lapsRejected"
	KeySmoke       = "smoke"
	KeySpeed       = "speed"
	KeySlip        = "slip"
	KeySteer       = "steer"
	KeyAngVel      = "angVel"
	KeyTraction    = "traction"
	KeyReversing   = "reversing"
	KeyStabilizing = "stabilizing"
	KeyPaused      = "paused"
	KeyPedal       = "pedal"
)

// Telemetry holds cached pointers to the per-tick vehicle metrics
type Telemetry struct {
	frame     *atomic.Int64
	laps      *atomic.Int64
	rejected  *atomic.Int64
	smoke     *atomic.Int64
	speed     *Gauge
	slip      *Gauge
	steer     *Gauge
	angVel    *Gauge
	traction  *Gauge
	reversing *atomic.Bool
	stabilize *atomic.Bool
	paused    *atomic.Bool
	pedal     *Label
}

// NewTelemetry registers the vehicle metrics in r
func NewTelemetry(r *Registry) *Telemetry {
	return &Telemetry{
		frame:     r.Counters.Get(KeyFrame),
		laps:      r.Counters.Get(KeyLaps),
		rejected:  r.Counters.Get(KeyRejected),
		smoke:     r.Counters.Get(KeySmoke),
		speed:     r.Gauges.Get(KeySpeed),
		slip:      r.Gauges.Get(KeySlip),
		steer:     r.Gauges.Get(KeySteer),
		angVel:    r.Gauges.Get(KeyAngVel),
		traction:  r.Gauges.Get(KeyTraction),
		reversing: r.Flags.Get(KeyReversing),
		stabilize: r.Flags.Get(KeyStabilizing),
		paused:    r.Flags.Get(KeyPaused),
		pedal:     r.Labels.Get(KeyPedal),
	}
}

// Record publishes one controller tick
func (t *Telemetry) Record(frame int64, steer float64, rep physics.TickReport) {
	t.frame.Store(frame)
	t.speed.Set(rep.Frame.Speed)
	t.slip.Set(rep.Frame.SlipAngle)
	t.steer.Set(steer)
	t.angVel.Set(rep.AngularVelocity)
	t.traction.Set(rep.Traction)
	t.reversing.Store(rep.Reversing)
	t.stabilize.Store(rep.Stabilization.ShouldApply)
	t.pedal.Store(rep.Pedal.String())
}

func (t *Telemetry) SetParticles(n int) { t.smoke.Store(int64(n)) }
func (t *Telemetry) SetPaused(p bool)   { t.paused.Store(p) }
func (t *Telemetry) LapCompleted()      { t.laps.Add(1) }
func (t *Telemetry) LapRejected()       { t.rejected.Add(1) }

// Reset zeroes the race counters; vehicle gauges are overwritten by the next Record
func (t *Telemetry) Reset() {
	t.laps.Store(0)
	t.rejected.Store(0)
	t.smoke.Store(0)
}

func (t *Telemetry) Speed() float64 { return t.speed.Get() }
func (t *Telemetry) Laps() int64    { return t.laps.Load() }
