package sim

import "github.com/jakecoffman/cp"

// EntityView is the render-facing slice of an entity.
type EntityView struct {
	ID           EntityID
	Kind         Kind
	Pos          cp.Vector
	Facing       cp.Vector
	State        StateID
	Health       int
	MaxHealth    int
	Invulnerable bool
}

// ParticleView is the render-facing slice of a particle.
type ParticleView struct {
	Pos          cp.Vector
	Kind         ParticleKind
	LifeFraction float64
}

// ComboView is the HUD-facing combo state.
type ComboView struct {
	Streak    int
	Remaining float64
	Window    float64
}

// Snapshot is the read-only view exposed after each completed step. The
// renderer and audio layers consume it; they never touch live state.
type Snapshot struct {
	Entities  []EntityView
	Particles []ParticleView
	Shake     float64
	Stats     Stats
	Combo     ComboView
	Over      bool
}

// Snapshot builds the current frame view. Call between steps only.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Entities:  make([]EntityView, 0, len(s.table.list)),
		Particles: make([]ParticleView, 0, s.particles.ActiveCount()),
		Shake:     s.feedback.ShakeMagnitude(),
		Stats:     s.stats,
		Combo: ComboView{
			Streak:    s.combo.Streak(),
			Remaining: s.combo.Remaining(s.now),
			Window:    s.cfg.Combo.Window,
		},
		Over: s.over,
	}
	for _, e := range s.table.list {
		snap.Entities = append(snap.Entities, EntityView{
			ID:           e.ID,
			Kind:         e.Kind,
			Pos:          e.Pos,
			Facing:       e.Facing,
			State:        e.State,
			Health:       e.Health,
			MaxHealth:    e.MaxHealth,
			Invulnerable: e.IsInvulnerable(),
		})
	}
	s.particles.ForEachActive(func(p *Particle) {
		snap.Particles = append(snap.Particles, ParticleView{
			Pos:          p.Pos,
			Kind:         p.Kind,
			LifeFraction: p.LifeFraction(),
		})
	})
	return snap
}
