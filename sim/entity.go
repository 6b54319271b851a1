package sim

import (
	"strconv"

	"github.com/jakecoffman/cp"
)

// EntityID is a unique, stable handle for an entity's lifetime.
type EntityID uint64

func (id EntityID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Kind tags the entity variant.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// StateID is the tagged state variant of an entity. Player entities use
// idle/moving/attacking/dashing/dead; enemies use seeking/attacking/
// staggered/dead.
type StateID string

const (
	StateIdle      StateID = "idle"
	StateMoving    StateID = "moving"
	StateAttacking StateID = "attacking"
	StateDashing   StateID = "dashing"
	StateSeeking   StateID = "seeking"
	StateStaggered StateID = "staggered"
	StateDead      StateID = "dead"
)

// Entity is pure data; all transition logic lives in the state machines and
// all cross-entity interaction goes through the session's entity table.
type Entity struct {
	ID     EntityID
	Kind   Kind
	Pos    cp.Vector
	Vel    cp.Vector
	Facing cp.Vector

	State     StateID
	Health    int
	MaxHealth int
	// MoveSpeed is the entity's base speed. For enemies the difficulty
	// multiplier is baked in at spawn time.
	MoveSpeed float64

	// Timers in simulation seconds.
	AttackCooldown float64 // until the next swing is allowed
	DashCooldown   float64
	StateTimer     float64 // remaining time in a timed state (dash, stagger)
	Invulnerable   float64 // remaining invulnerability window

	// Strike is set for exactly the step an attack begins and consumed by the
	// combat resolver.
	Strike bool

	// Removed flags the entity for purge at end of step, never mid-step.
	Removed bool
}

func (e *Entity) Alive() bool {
	return e != nil && e.State != StateDead && !e.Removed
}

func (e *Entity) IsInvulnerable() bool {
	return e != nil && e.Invulnerable > 0
}

// tickTimers advances the always-running per-entity timers.
func (e *Entity) tickTimers(dt float64) {
	if e.AttackCooldown > 0 {
		e.AttackCooldown -= dt
		if e.AttackCooldown < 0 {
			e.AttackCooldown = 0
		}
	}
	if e.DashCooldown > 0 {
		e.DashCooldown -= dt
		if e.DashCooldown < 0 {
			e.DashCooldown = 0
		}
	}
	if e.Invulnerable > 0 {
		e.Invulnerable -= dt
		if e.Invulnerable < 0 {
			e.Invulnerable = 0
		}
	}
}

// Intent is the per-frame decoded input the core consumes. The shell polls
// the hardware; the core never does.
type Intent struct {
	Move          cp.Vector
	AttackPressed bool
	DashPressed   bool
}
