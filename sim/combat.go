package sim

import (
	"github.com/milk9111/nightblade/config"
)

// CombatResolver evaluates proximity hits for every entity whose swing began
// this step. Attackers resolve independently in ascending entity-id order so
// simultaneous hits are deterministic; on a shared target the lowest-id
// attacker lands first and a killing blow leaves nothing for the rest.
type CombatResolver struct {
	cfg *config.Config
}

func NewCombatResolver(cfg *config.Config) *CombatResolver {
	return &CombatResolver{cfg: cfg}
}

// Resolve consumes every pending strike and emits the step's ordered combat
// events. A hit registers iff distance <= range and the target is not
// invulnerable; anything else is a whiffed swing, not an error.
func (r *CombatResolver) Resolve(table *entityTable, playerID EntityID, events *EventQueue) error {
	if r == nil || table == nil {
		return nil
	}
	for _, attacker := range table.list {
		if !attacker.Strike {
			continue
		}
		attacker.Strike = false
		if !attacker.Alive() {
			continue
		}

		switch attacker.Kind {
		case KindPlayer:
			target := r.nearestEnemyInRange(table, attacker)
			if target == nil {
				continue
			}
			r.applyHit(attacker, target, r.cfg.Player.AttackDamage, events)
		case KindEnemy:
			player, err := table.get(playerID)
			if err != nil {
				return err
			}
			if !player.Alive() || player.IsInvulnerable() {
				continue
			}
			if attacker.Pos.Distance(player.Pos) > r.cfg.Enemy.StrikeRange {
				continue
			}
			r.applyHit(attacker, player, r.cfg.Enemy.AttackDamage, events)
		}
	}
	return nil
}

// nearestEnemyInRange picks the player's swing target: closest live,
// vulnerable enemy within attack range, ties broken by lowest id (list order).
func (r *CombatResolver) nearestEnemyInRange(table *entityTable, player *Entity) *Entity {
	var best *Entity
	bestDist := r.cfg.Player.AttackRange
	for _, e := range table.list {
		if e.Kind != KindEnemy || !e.Alive() || e.IsInvulnerable() {
			continue
		}
		d := player.Pos.Distance(e.Pos)
		if d < bestDist || (best == nil && d == bestDist) {
			best = e
			bestDist = d
		}
	}
	return best
}

func (r *CombatResolver) applyHit(attacker, target *Entity, damage int, events *EventQueue) {
	if damage <= 0 {
		return
	}
	target.Health -= damage
	if target.Health < 0 {
		target.Health = 0
	}
	events.Push(Event{
		Type:     EventHitLanded,
		Attacker: attacker.ID,
		Target:   target.ID,
		Damage:   damage,
		Pos:      target.Pos,
	})

	if target.Health == 0 {
		switch target.Kind {
		case KindEnemy:
			killEnemy(&EnemyContext{Entity: target, Cfg: &r.cfg.Enemy, Events: events})
		case KindPlayer:
			killPlayer(&PlayerContext{Entity: target, Cfg: &r.cfg.Player, Events: events})
		}
		events.Push(Event{
			Type:     EventKill,
			Attacker: attacker.ID,
			Target:   target.ID,
			Damage:   damage,
			Pos:      target.Pos,
		})
		return
	}

	switch target.Kind {
	case KindEnemy:
		staggerEnemy(&EnemyContext{Entity: target, Cfg: &r.cfg.Enemy, Events: events}, r.cfg.Enemy.StaggerDuration)
	case KindPlayer:
		// contact damage grants a hurt i-frame window
		target.Invulnerable = r.cfg.Player.HurtInvuln
	}
}
