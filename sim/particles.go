package sim

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/nightblade/config"
)

// ParticleKind tags the visual flavor of a particle.
type ParticleKind uint8

const (
	ParticleBlood ParticleKind = iota
	ParticleDust
	ParticleSpark
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleBlood:
		return "blood"
	case ParticleDust:
		return "dust"
	default:
		return "spark"
	}
}

// Particle is a short-lived cosmetic. Opacity and scale are derived from the
// lifetime fraction at render time; the particle itself stores only motion
// and remaining life.
type Particle struct {
	Pos     cp.Vector
	Vel     cp.Vector
	Life    float64
	MaxLife float64
	Kind    ParticleKind
	alive   bool
}

// LifeFraction is remaining life normalized to [0, 1].
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	return f
}

// ParticleSystem owns a fixed-capacity pool. Spawn requests beyond capacity
// are silently dropped: particles are cosmetic and a full pool degrades
// visuals, never the step.
type ParticleSystem struct {
	cfg  config.ParticleConfig
	rng  *rand.Rand
	pool []Particle
	free []int
}

func NewParticleSystem(cfg config.ParticleConfig, rng *rand.Rand) *ParticleSystem {
	ps := &ParticleSystem{
		cfg:  cfg,
		rng:  rng,
		pool: make([]Particle, cfg.Capacity),
		free: make([]int, cfg.Capacity),
	}
	for i := range ps.free {
		ps.free[i] = cfg.Capacity - 1 - i
	}
	return ps
}

// Spawn allocates up to count particles of the given kind at pos.
func (ps *ParticleSystem) Spawn(kind ParticleKind, pos cp.Vector, count int) {
	for i := 0; i < count; i++ {
		n := len(ps.free)
		if n == 0 {
			return
		}
		slot := ps.free[n-1]
		ps.free = ps.free[:n-1]
		life := ps.lifetimeFor(kind)
		ps.pool[slot] = Particle{
			Pos:     pos,
			Vel:     ps.velocityFor(kind),
			Life:    life,
			MaxLife: life,
			Kind:    kind,
			alive:   true,
		}
	}
}

// Update integrates motion, applies gravity, and reclaims expired slots.
func (ps *ParticleSystem) Update(dt float64) {
	for i := range ps.pool {
		p := &ps.pool[i]
		if !p.alive {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Mult(dt))
		p.Vel.Y += ps.cfg.Gravity * dt
		p.Life -= dt
		if p.Life <= 0 {
			p.alive = false
			ps.free = append(ps.free, i)
		}
	}
}

// ActiveCount returns the number of live particles.
func (ps *ParticleSystem) ActiveCount() int {
	return len(ps.pool) - len(ps.free)
}

// ForEachActive visits live particles in pool order.
func (ps *ParticleSystem) ForEachActive(fn func(p *Particle)) {
	for i := range ps.pool {
		if ps.pool[i].alive {
			fn(&ps.pool[i])
		}
	}
}

func (ps *ParticleSystem) lifetimeFor(kind ParticleKind) float64 {
	switch kind {
	case ParticleBlood:
		return ps.cfg.BloodLifetime
	case ParticleDust:
		return ps.cfg.DustLifetime
	default:
		return ps.cfg.SparkLifetime
	}
}

// velocityFor shapes the burst per kind: blood sprays mostly upward, dust
// drifts, sparks scatter radially.
func (ps *ParticleSystem) velocityFor(kind ParticleKind) cp.Vector {
	switch kind {
	case ParticleBlood:
		return cp.Vector{
			X: (ps.rng.Float64()*2 - 1) * 160,
			Y: -ps.rng.Float64()*160 - 20,
		}
	case ParticleDust:
		return cp.Vector{
			X: (ps.rng.Float64()*2 - 1) * 30,
			Y: (ps.rng.Float64()*2 - 1) * 15,
		}
	default:
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := 40 + ps.rng.Float64()*120
		return cp.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	}
}
