package sim

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/nightblade/config"
)

// EnemySpawn describes a pending enemy for the session to materialize.
type EnemySpawn struct {
	Pos   cp.Vector
	Speed float64
}

// Spawner emits enemies on a timer governed by the current spawn interval.
// The timer preserves fractional overrun: it subtracts the interval rather
// than resetting, so cadence stays accurate across uneven frames.
type Spawner struct {
	cfg      config.SpawnConfig
	enemyCfg config.EnemyConfig
	arena    config.ArenaConfig
	rng      *rand.Rand

	timer float64
}

func NewSpawner(cfg config.SpawnConfig, enemyCfg config.EnemyConfig, arena config.ArenaConfig, rng *rand.Rand) *Spawner {
	return &Spawner{cfg: cfg, enemyCfg: enemyCfg, arena: arena, rng: rng}
}

// Update advances the timer and returns the spawns due this step. The alive
// cap gates emission; a spawn suppressed by the cap is dropped, not deferred.
func (s *Spawner) Update(dt float64, params Params, alive int, playerPos cp.Vector) []EnemySpawn {
	s.timer += dt
	var out []EnemySpawn
	for s.timer >= params.SpawnInterval {
		s.timer -= params.SpawnInterval
		if alive+len(out) >= params.MaxAlive {
			continue
		}
		out = append(out, EnemySpawn{
			Pos:   s.spawnPosition(playerPos),
			Speed: s.enemyCfg.BaseSpeed * params.SpeedMultiplier,
		})
	}
	return out
}

// Immediate produces one spawn outside the timer, used for the opening wave.
func (s *Spawner) Immediate(params Params, playerPos cp.Vector) EnemySpawn {
	return EnemySpawn{
		Pos:   s.spawnPosition(playerPos),
		Speed: s.enemyCfg.BaseSpeed * params.SpeedMultiplier,
	}
}

// spawnPosition picks a point on an arena edge. If the roll lands too close
// to the player, the opposite edge is used instead so enemies never pop in
// on top of the player.
func (s *Spawner) spawnPosition(playerPos cp.Vector) cp.Vector {
	m := s.cfg.EdgeMargin
	w, h := s.arena.Width, s.arena.Height

	side := s.rng.Intn(4)
	along := s.rng.Float64()
	pos := s.edgePoint(side, along, m, w, h)
	if pos.Distance(playerPos) < s.cfg.MinPlayerDistance {
		pos = s.edgePoint(side^1, along, m, w, h)
	}
	return pos
}

func (s *Spawner) edgePoint(side int, along, m, w, h float64) cp.Vector {
	switch side {
	case 0: // left
		return cp.Vector{X: m, Y: m + along*(h-2*m)}
	case 1: // right
		return cp.Vector{X: w - m, Y: m + along*(h-2*m)}
	case 2: // top
		return cp.Vector{X: m + along*(w-2*m), Y: m}
	default: // bottom
		return cp.Vector{X: m + along*(w-2*m), Y: h - m}
	}
}
