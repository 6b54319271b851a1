package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/nightblade/common"
	"github.com/milk9111/nightblade/config"
)

// EnemyContext mirrors PlayerContext for the enemy variant. TargetPos is a
// session-provided copy of the player position; enemies never hold a
// reference to the player entity.
type EnemyContext struct {
	Entity      *Entity
	Cfg         *config.EnemyConfig
	Arena       config.ArenaConfig
	DT          float64
	TargetPos   cp.Vector
	TargetAlive bool
	Events      *EventQueue
}

type enemyState interface {
	ID() StateID
	Enter(ctx *EnemyContext)
	Exit(ctx *EnemyContext)
	Update(ctx *EnemyContext)
}

var (
	enemyStateSeek    enemyState = &enemySeekingState{}
	enemyStateAttack  enemyState = &enemyAttackingState{}
	enemyStateStagger enemyState = &enemyStaggeredState{}
	enemyStateDead    enemyState = &enemyDeadState{}
)

var enemyStates = map[StateID]enemyState{
	StateSeeking:   enemyStateSeek,
	StateAttacking: enemyStateAttack,
	StateStaggered: enemyStateStagger,
	StateDead:      enemyStateDead,
}

// UpdateEnemy runs one step of an enemy state machine.
func UpdateEnemy(ctx *EnemyContext) {
	if ctx == nil || ctx.Entity == nil || !ctx.Entity.Alive() {
		return
	}
	ctx.Entity.tickTimers(ctx.DT)
	if st := enemyStates[ctx.Entity.State]; st != nil {
		st.Update(ctx)
	}
}

func changeEnemyState(ctx *EnemyContext, next enemyState) {
	cur := enemyStates[ctx.Entity.State]
	if cur != nil {
		cur.Exit(ctx)
	}
	ctx.Entity.State = next.ID()
	next.Enter(ctx)
}

// killEnemy forces the terminal dead transition. Irreversible.
func killEnemy(ctx *EnemyContext) {
	if ctx == nil || ctx.Entity == nil || ctx.Entity.State == StateDead {
		return
	}
	changeEnemyState(ctx, enemyStateDead)
}

// staggerEnemy interrupts the enemy after a non-lethal hit.
func staggerEnemy(ctx *EnemyContext, duration float64) {
	if ctx == nil || ctx.Entity == nil || !ctx.Entity.Alive() || duration <= 0 {
		return
	}
	changeEnemyState(ctx, enemyStateStagger)
	ctx.Entity.StateTimer = duration
}

type enemySeekingState struct{}

func (enemySeekingState) ID() StateID         { return StateSeeking }
func (enemySeekingState) Enter(*EnemyContext) {}
func (enemySeekingState) Exit(*EnemyContext)  {}
func (enemySeekingState) Update(ctx *EnemyContext) {
	e := ctx.Entity
	if !ctx.TargetAlive {
		e.Vel = cp.Vector{}
		return
	}
	toTarget := ctx.TargetPos.Sub(e.Pos)
	dist := toTarget.Length()
	if dist <= ctx.Cfg.StrikeRange && e.AttackCooldown <= 0 {
		changeEnemyState(ctx, enemyStateAttack)
		return
	}
	if dist > 0 {
		e.Vel = toTarget.Mult(1 / dist).Mult(e.MoveSpeed)
		e.Facing = toTarget.Mult(1 / dist)
	} else {
		e.Vel = cp.Vector{}
	}
	e.Pos = e.Pos.Add(e.Vel.Mult(ctx.DT))
	e.Pos.X = common.Clamp(e.Pos.X, 0, ctx.Arena.Width)
	e.Pos.Y = common.Clamp(e.Pos.Y, 0, ctx.Arena.Height)
}

type enemyAttackingState struct{}

func (enemyAttackingState) ID() StateID { return StateAttacking }
func (enemyAttackingState) Enter(ctx *EnemyContext) {
	e := ctx.Entity
	e.Vel = cp.Vector{}
	e.AttackCooldown = ctx.Cfg.AttackCooldown
	e.StateTimer = ctx.Cfg.AttackCooldown
	e.Strike = true
}
func (enemyAttackingState) Exit(*EnemyContext) {}
func (enemyAttackingState) Update(ctx *EnemyContext) {
	if ctx.Entity.AttackCooldown <= 0 {
		changeEnemyState(ctx, enemyStateSeek)
	}
}

type enemyStaggeredState struct{}

func (enemyStaggeredState) ID() StateID { return StateStaggered }
func (enemyStaggeredState) Enter(ctx *EnemyContext) {
	ctx.Entity.Vel = cp.Vector{}
}
func (enemyStaggeredState) Exit(*EnemyContext) {}
func (enemyStaggeredState) Update(ctx *EnemyContext) {
	ctx.Entity.StateTimer -= ctx.DT
	if ctx.Entity.StateTimer <= 0 {
		changeEnemyState(ctx, enemyStateSeek)
	}
}

type enemyDeadState struct{}

func (enemyDeadState) ID() StateID { return StateDead }
func (enemyDeadState) Enter(ctx *EnemyContext) {
	ctx.Entity.Vel = cp.Vector{}
}
func (enemyDeadState) Exit(*EnemyContext)   {}
func (enemyDeadState) Update(*EnemyContext) {}
