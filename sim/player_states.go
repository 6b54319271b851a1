package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/nightblade/common"
	"github.com/milk9111/nightblade/config"
)

// PlayerContext carries everything a player state needs for one step. The
// states never touch the particle or feedback systems directly; they enqueue
// events instead.
type PlayerContext struct {
	Entity *Entity
	Intent Intent
	Cfg    *config.PlayerConfig
	Arena  config.ArenaConfig
	DT     float64
	Events *EventQueue
}

type playerState interface {
	ID() StateID
	Enter(ctx *PlayerContext)
	Exit(ctx *PlayerContext)
	HandleInput(ctx *PlayerContext)
	Update(ctx *PlayerContext)
}

// Player state singletons (avoid allocations on transitions).
var (
	playerStateIdle   playerState = &playerIdleState{}
	playerStateMoving playerState = &playerMovingState{}
	playerStateAttack playerState = &playerAttackingState{}
	playerStateDash   playerState = &playerDashingState{}
	playerStateDead   playerState = &playerDeadState{}
)

var playerStates = map[StateID]playerState{
	StateIdle:      playerStateIdle,
	StateMoving:    playerStateMoving,
	StateAttacking: playerStateAttack,
	StateDashing:   playerStateDash,
	StateDead:      playerStateDead,
}

// UpdatePlayer runs one step of the player state machine: timers, input
// handling, then the current state's update.
func UpdatePlayer(ctx *PlayerContext) {
	if ctx == nil || ctx.Entity == nil || !ctx.Entity.Alive() {
		return
	}
	ctx.Entity.tickTimers(ctx.DT)
	st := playerStates[ctx.Entity.State]
	if st == nil {
		return
	}
	st.HandleInput(ctx)
	if cur := playerStates[ctx.Entity.State]; cur != nil {
		cur.Update(ctx)
	}
}

func changePlayerState(ctx *PlayerContext, next playerState) {
	cur := playerStates[ctx.Entity.State]
	if cur != nil {
		cur.Exit(ctx)
	}
	ctx.Entity.State = next.ID()
	next.Enter(ctx)
}

// killPlayer forces the terminal dead transition. Irreversible.
func killPlayer(ctx *PlayerContext) {
	if ctx == nil || ctx.Entity == nil || ctx.Entity.State == StateDead {
		return
	}
	changePlayerState(ctx, playerStateDead)
}

// tryAttack starts a swing if the cooldown has elapsed. A swing requested on
// cooldown is a silent no-op, not an error.
func tryAttack(ctx *PlayerContext) bool {
	if !ctx.Intent.AttackPressed || ctx.Entity.AttackCooldown > 0 {
		return false
	}
	changePlayerState(ctx, playerStateAttack)
	return true
}

// tryDash starts a dash if off cooldown.
func tryDash(ctx *PlayerContext) bool {
	if !ctx.Intent.DashPressed || ctx.Entity.DashCooldown > 0 {
		return false
	}
	changePlayerState(ctx, playerStateDash)
	return true
}

// movePlayer applies the intent vector, integrates position, clamps to the
// arena, and keeps facing pointed at the last nonzero movement.
func movePlayer(ctx *PlayerContext) {
	e := ctx.Entity
	move := ctx.Intent.Move
	if move.LengthSq() > 1 {
		move = move.Normalize()
	}
	e.Vel = move.Mult(e.MoveSpeed)
	integratePlayer(ctx)
}

func integratePlayer(ctx *PlayerContext) {
	e := ctx.Entity
	e.Pos = e.Pos.Add(e.Vel.Mult(ctx.DT))
	e.Pos.X = common.Clamp(e.Pos.X, 0, ctx.Arena.Width)
	e.Pos.Y = common.Clamp(e.Pos.Y, 0, ctx.Arena.Height)
	if e.Vel.LengthSq() > 0 {
		e.Facing = e.Vel.Normalize()
	}
}

type playerIdleState struct{}

func (playerIdleState) ID() StateID             { return StateIdle }
func (playerIdleState) Enter(*PlayerContext)    {}
func (playerIdleState) Exit(*PlayerContext)     {}
func (playerIdleState) HandleInput(ctx *PlayerContext) {
	if tryAttack(ctx) || tryDash(ctx) {
		return
	}
	if ctx.Intent.Move.LengthSq() > 0 {
		changePlayerState(ctx, playerStateMoving)
	}
}
func (playerIdleState) Update(ctx *PlayerContext) {
	ctx.Entity.Vel = cp.Vector{}
}

type playerMovingState struct{}

func (playerMovingState) ID() StateID          { return StateMoving }
func (playerMovingState) Enter(*PlayerContext) {}
func (playerMovingState) Exit(*PlayerContext)  {}
func (playerMovingState) HandleInput(ctx *PlayerContext) {
	if tryAttack(ctx) || tryDash(ctx) {
		return
	}
	if ctx.Intent.Move.LengthSq() == 0 {
		changePlayerState(ctx, playerStateIdle)
	}
}
func (playerMovingState) Update(ctx *PlayerContext) {
	movePlayer(ctx)
}

type playerAttackingState struct{}

func (playerAttackingState) ID() StateID { return StateAttacking }
func (playerAttackingState) Enter(ctx *PlayerContext) {
	e := ctx.Entity
	e.AttackCooldown = ctx.Cfg.AttackCooldown
	e.StateTimer = ctx.Cfg.AttackCooldown
	e.Strike = true
}
func (playerAttackingState) Exit(*PlayerContext) {}
func (playerAttackingState) HandleInput(ctx *PlayerContext) {
	// dash interrupts the recovery; a second attack on cooldown is a no-op
	tryDash(ctx)
}
func (playerAttackingState) Update(ctx *PlayerContext) {
	// the swing does not root the player; movement stays live during recovery
	movePlayer(ctx)
	if ctx.Entity.AttackCooldown <= 0 {
		if ctx.Intent.Move.LengthSq() > 0 {
			changePlayerState(ctx, playerStateMoving)
		} else {
			changePlayerState(ctx, playerStateIdle)
		}
	}
}

type playerDashingState struct{}

func (playerDashingState) ID() StateID { return StateDashing }
func (playerDashingState) Enter(ctx *PlayerContext) {
	e := ctx.Entity
	e.StateTimer = ctx.Cfg.DashDuration
	e.DashCooldown = ctx.Cfg.DashCooldown
	e.Invulnerable = ctx.Cfg.DashDuration
	if e.Facing.LengthSq() == 0 {
		e.Facing = cp.Vector{X: 1}
	}
	ctx.Events.Push(Event{Type: EventDashStarted, Target: e.ID, Pos: e.Pos})
}
func (playerDashingState) Exit(ctx *PlayerContext) {
	// invulnerability is exactly the dash window
	ctx.Entity.Invulnerable = 0
	ctx.Entity.Vel = cp.Vector{}
}
func (playerDashingState) HandleInput(*PlayerContext) {}
func (playerDashingState) Update(ctx *PlayerContext) {
	e := ctx.Entity
	e.Vel = e.Facing.Mult(e.MoveSpeed * ctx.Cfg.DashSpeedMultiplier)
	integratePlayer(ctx)
	e.StateTimer -= ctx.DT
	if e.StateTimer <= 0 {
		if ctx.Intent.Move.LengthSq() > 0 {
			changePlayerState(ctx, playerStateMoving)
		} else {
			changePlayerState(ctx, playerStateIdle)
		}
	}
}

type playerDeadState struct{}

func (playerDeadState) ID() StateID { return StateDead }
func (playerDeadState) Enter(ctx *PlayerContext) {
	ctx.Entity.Vel = cp.Vector{}
}
func (playerDeadState) Exit(*PlayerContext)        {}
func (playerDeadState) HandleInput(*PlayerContext) {}
func (playerDeadState) Update(*PlayerContext)      {}
