// Package smoke manages the drift-smoke particles left behind a sliding car
// Purely cosmetic: nothing here feeds back into physics or timing
package smoke

import (
	"math"
	"time"

	"github.com/lixenwraith/driftline/parameter"
	"github.com/lixenwraith/driftline/vmath"
)

// Phase is a particle's lifecycle stage
type Phase uint8

const (
	PhaseSpawned Phase = iota
	PhaseExpanding
	PhaseHolding
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseSpawned:
		return "spawned"
	case PhaseExpanding:
		return "expanding"
	case PhaseHolding:
		return "holding"
	default:
		return "expired"
	}
}

// Particle is one smoke puff
type Particle struct {
	ID       uint64
	Position vmath.Vec2
	Birth    time.Time
	Size     float64 // diameter in pixels
	Alpha    float64
	Phase    Phase
}

// Pool owns live particles, oldest first, hard-capped at MaxParticles
type Pool struct {
	cfg       parameter.Smoke
	particles []Particle
	nextID    uint64

	lastSpawn time.Time
	spawned   bool

	onRetire func(Particle)
}

// NewPool creates an empty pool
func NewPool(cfg parameter.Smoke) *Pool {
	capacity := cfg.MaxParticles
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		cfg:       cfg,
		particles: make([]Particle, 0, capacity),
	}
}

// OnRetire registers a hook called for every particle leaving the pool (eviction, expiry, Clear)
func (p *Pool) OnRetire(fn func(Particle)) {
	p.onRetire = fn
}

// ShouldSpawn reports whether a slide at this slip and speed produces a puff now
func (p *Pool) ShouldSpawn(slipAngle, speed float64, now time.Time) bool {
	if math.Abs(slipAngle) <= p.cfg.SlipThreshold || speed <= p.cfg.MinSpeed {
		return false
	}
	return !p.spawned || now.Sub(p.lastSpawn) > p.cfg.Interval
}

// SpawnPosition offsets pos backward along heading by BackOffset of the body length
func SpawnPosition(pos vmath.Vec2, heading, length, backOffset float64) vmath.Vec2 {
	return pos.Sub(vmath.FromAngle(heading).Scale(backOffset * length))
}

// Emit spawns a puff behind the car when the slide trigger fires
func (p *Pool) Emit(pos vmath.Vec2, heading, length, slipAngle, speed float64, now time.Time) (Particle, bool) {
	if !p.ShouldSpawn(slipAngle, speed, now) {
		return Particle{}, false
	}
	return p.Spawn(SpawnPosition(pos, heading, length, p.cfg.BackOffset), now), true
}

// Spawn inserts a particle unconditionally, evicting the oldest when full
func (p *Pool) Spawn(pos vmath.Vec2, now time.Time) Particle {
	limit := p.cfg.MaxParticles
	if limit < 1 {
		limit = 1
	}
	for len(p.particles) >= limit {
		p.retire(p.particles[0])
		n := copy(p.particles, p.particles[1:])
		p.particles[n] = Particle{}
		p.particles = p.particles[:n]
	}

	p.nextID++
	pt := Particle{
		ID:       p.nextID,
		Position: pos,
		Birth:    now,
		Size:     p.cfg.StartSize,
		Alpha:    p.cfg.MaxAlpha,
		Phase:    PhaseSpawned,
	}
	p.particles = append(p.particles, pt)
	p.lastSpawn = now
	p.spawned = true
	return pt
}

// Update advances size and alpha for every particle and drops expired ones
func (p *Pool) Update(now time.Time) {
	live := p.particles[:0]
	for _, pt := range p.particles {
		age := now.Sub(pt.Birth)
		if age < 0 {
			age = 0
		}
		if age > p.cfg.Lifetime {
			pt.Phase = PhaseExpired
			p.retire(pt)
			continue
		}

		pt.Size = p.size(age)
		pt.Alpha = p.alpha(age)
		if age < p.cfg.ExpandTime {
			pt.Phase = PhaseExpanding
		} else {
			pt.Phase = PhaseHolding
		}
		live = append(live, pt)
	}
	// Release references held by the tail
	for i := len(live); i < len(p.particles); i++ {
		p.particles[i] = Particle{}
	}
	p.particles = live
}

func (p *Pool) size(age time.Duration) float64 {
	if p.cfg.ExpandTime <= 0 {
		return p.cfg.MaxSize
	}
	t := vmath.Clamp01(float64(age) / float64(p.cfg.ExpandTime))
	return vmath.Lerp(p.cfg.StartSize, p.cfg.MaxSize, t)
}

func (p *Pool) alpha(age time.Duration) float64 {
	if p.cfg.Lifetime <= 0 {
		return 0
	}
	return math.Max(0, p.cfg.MaxAlpha*(1-float64(age)/float64(p.cfg.Lifetime)))
}

// Clear retires every particle and forgets the spawn cooldown
func (p *Pool) Clear() {
	for _, pt := range p.particles {
		p.retire(pt)
	}
	p.particles = p.particles[:0]
	p.spawned = false
	p.lastSpawn = time.Time{}
}

// Len returns the live particle count
func (p *Pool) Len() int {
	return len(p.particles)
}

// Particles returns a copy of live particles, oldest first
func (p *Pool) Particles() []Particle {
	out := make([]Particle, len(p.particles))
	copy(out, p.particles)
	return out
}

func (p *Pool) retire(pt Particle) {
	if p.onRetire != nil {
		p.onRetire(pt)
	}
}
