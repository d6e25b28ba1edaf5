package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Envelope applies a linear attack and release to a finite streamer of known length
type Envelope struct {
	Streamer beep.Streamer
	Total    int
	Attack   int
	Release  int
	pos      int
}

func (e *Envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *Envelope) Err() error {
	return e.Streamer.Err()
}

func (e *Envelope) gain(pos int) float64 {
	g := 1.0
	if e.Attack > 0 && pos < e.Attack {
		g = float64(pos) / float64(e.Attack)
	}
	if e.Release > 0 {
		if left := e.Total - pos; left < e.Release {
			g = math.Min(g, math.Max(0, float64(left)/float64(e.Release)))
		}
	}
	return g
}

// Tone is an enveloped sine burst; frequencies above Nyquist fall back to silence
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(n)
	}
	edge := sr.N(5 * time.Millisecond)
	return &Envelope{
		Streamer: beep.Take(n, sine),
		Total:    n,
		Attack:   edge,
		Release:  n / 2,
	}
}

// SkidGenerator produces band-limited tire noise with an exponential decay
type SkidGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed uint32
	prev float64
}

// NewSkidGenerator creates a skid noise generator
func NewSkidGenerator(sr beep.SampleRate) *SkidGenerator {
	return &SkidGenerator{sr: sr, seed: 0x2545f491}
}

func (g *SkidGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 18)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1
		// one-pole low-pass takes the hiss off
		g.prev += 0.35 * (noise - g.prev)

		squeal := 0.2 * math.Sin(2*math.Pi*1900*t)
		sample := envelope * (0.6*g.prev + squeal)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SkidGenerator) Err() error {
	return nil
}

// Streamer builds a fresh finite streamer for a cue, nil for CueNone
func Streamer(sr beep.SampleRate, c Cue) beep.Streamer {
	switch c {
	case CueSkid:
		return quiet(beep.Take(sr.N(120*time.Millisecond), NewSkidGenerator(sr)), -1.5)
	case CueCheckpoint:
		return quiet(Tone(sr, 1320, 60*time.Millisecond), -1)
	case CueLap:
		return quiet(beep.Seq(
			Tone(sr, 880, 120*time.Millisecond),
			Tone(sr, 1320, 180*time.Millisecond),
		), -1)
	case CueBestLap:
		return quiet(beep.Seq(
			Tone(sr, 1320, 100*time.Millisecond),
			Tone(sr, 1760, 100*time.Millisecond),
			Tone(sr, 2640, 220*time.Millisecond),
		), -1)
	case CueRejected:
		return quiet(Tone(sr, 180, 150*time.Millisecond), -0.5)
	default:
		return nil
	}
}

func quiet(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// MasterVolume converts a linear 0..1 level to a base-2 volume effect
func MasterVolume(s beep.Streamer, level float64) *effects.Volume {
	v := &effects.Volume{Streamer: s, Base: 2}
	if level <= 0 {
		v.Silent = true
		return v
	}
	v.Volume = math.Log2(math.Min(level, 1))
	return v
}
