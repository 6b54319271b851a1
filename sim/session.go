package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/nightblade/config"
)

// Stats is the session-level scoreboard. Score is monotonically
// non-decreasing; Health is the authoritative copy used for heal-on-kill
// bookkeeping.
type Stats struct {
	Score     int
	Kills     int
	Elapsed   float64
	Health    int
	MaxHealth int
}

// Session owns the entity table, the scoreboard, and the per-step update
// order. It is the single mutator of simulation state; callers read the
// snapshot between steps.
type Session struct {
	cfg config.Config
	log *zap.Logger
	rng *rand.Rand

	clock      *Accumulator
	table      *entityTable
	resolver   *CombatResolver
	combo      *ComboTracker
	difficulty *DifficultyScaler
	spawner    *Spawner
	particles  *ParticleSystem
	feedback   *FeedbackController
	events     EventQueue

	now      float64
	nextID   EntityID
	playerID EntityID
	stats    Stats
	over     bool
}

// NewSession validates the config, compiles the optional tuning script, and
// builds a fresh arena with the player at its center.
func NewSession(cfg config.Config, log *zap.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sim: config invalid: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}

	var script *TuningScript
	if cfg.ScriptPath != "" {
		ts, err := LoadTuningScript(cfg.ScriptPath)
		if err != nil {
			return nil, err
		}
		script = ts
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		cfg:        cfg,
		log:        log,
		rng:        rng,
		clock:      NewAccumulator(cfg.Step.Delta, cfg.Step.MaxStepsPerFrame),
		table:      newEntityTable(),
		resolver:   NewCombatResolver(&cfg),
		combo:      NewComboTracker(cfg.Combo, script.ComboMultiplier()),
		difficulty: NewDifficultyScaler(cfg.Difficulty, cfg.Spawn),
		spawner:    NewSpawner(cfg.Spawn, cfg.Enemy, cfg.Arena, rng),
		particles:  NewParticleSystem(cfg.Particles, rng),
		feedback:   NewFeedbackController(cfg.Feedback),
	}
	s.difficulty.SetCurves(script.SpeedCurve(), script.IntervalCurve())

	player := &Entity{
		ID:        s.allocID(),
		Kind:      KindPlayer,
		Pos:       cp.Vector{X: cfg.Arena.Width / 2, Y: cfg.Arena.Height / 2},
		Facing:    cp.Vector{X: 1},
		State:     StateIdle,
		Health:    cfg.Player.MaxHealth,
		MaxHealth: cfg.Player.MaxHealth,
		MoveSpeed: cfg.Player.MoveSpeed,
	}
	s.table.add(player)
	s.playerID = player.ID
	s.stats.Health = player.Health
	s.stats.MaxHealth = player.MaxHealth

	// opening pressure: one enemy on the board before the timer kicks in
	s.spawnEnemy(s.spawner.Immediate(s.difficulty.ParamsFor(0), player.Pos))

	log.Info("session started",
		zap.Int64("seed", seed),
		zap.Bool("scripted_tuning", script != nil),
	)
	return s, nil
}

func (s *Session) allocID() EntityID {
	s.nextID++
	return s.nextID
}

// Advance converts a wall-clock delta into fixed steps and runs them,
// returning the concatenated events of every step taken.
func (s *Session) Advance(wallDt float64, intent Intent) ([]Event, error) {
	steps := s.clock.Advance(wallDt)
	var all []Event
	for i := 0; i < steps; i++ {
		events, err := s.Step(intent)
		if err != nil {
			return all, err
		}
		all = append(all, events...)
	}
	return all, nil
}

// Step runs one fixed simulation step. The step is atomic with respect to
// observers: the session can be torn down between steps with nothing
// half-applied.
func (s *Session) Step(intent Intent) ([]Event, error) {
	if s.over {
		return nil, nil
	}
	dt := s.cfg.Step.Delta

	// Hit-stop suspends gameplay-affecting updates. The hit-stop timer,
	// particles, and shake decay still advance so the freeze is perceivable.
	if s.feedback.HitStopActive() {
		s.feedback.ConsumeHitStopStep()
		s.particles.Update(dt)
		s.feedback.Update(dt)
		return nil, nil
	}

	s.now += dt
	s.stats.Elapsed = s.now

	player, err := s.table.get(s.playerID)
	if err != nil {
		s.log.Error("entity table corrupt", zap.Error(err))
		return nil, err
	}

	// Input and state machines, player first, then enemies in id order.
	UpdatePlayer(&PlayerContext{
		Entity: player,
		Intent: intent,
		Cfg:    &s.cfg.Player,
		Arena:  s.cfg.Arena,
		DT:     dt,
		Events: &s.events,
	})
	for _, e := range s.table.list {
		if e.Kind != KindEnemy {
			continue
		}
		UpdateEnemy(&EnemyContext{
			Entity:      e,
			Cfg:         &s.cfg.Enemy,
			Arena:       s.cfg.Arena,
			DT:          dt,
			TargetPos:   player.Pos,
			TargetAlive: player.Alive(),
			Events:      &s.events,
		})
	}

	// Combat resolution.
	if err := s.resolver.Resolve(s.table, s.playerID, &s.events); err != nil {
		s.log.Error("combat resolution failed", zap.Error(err))
		return nil, err
	}

	if s.combo.Update(s.now) {
		s.events.Push(Event{Type: EventComboLost})
	}

	// Score, heal, and health bookkeeping.
	events := s.events.Drain()
	events = s.applyStats(events, player)

	// Feedback and particles react to the step's events, then advance.
	s.routeFeedback(events)
	s.particles.Update(dt)
	s.feedback.Update(dt)

	// Spawning.
	params := s.difficulty.ParamsFor(s.stats.Score)
	for _, sp := range s.spawner.Update(dt, params, s.table.aliveEnemies(), player.Pos) {
		e := s.spawnEnemy(sp)
		events = append(events, Event{Type: EventSpawned, Target: e.ID, Pos: e.Pos})
	}

	// Purge entities in terminal state; dead enemies leave the table exactly
	// once, the dead player stays visible for the game-over screen.
	for _, e := range s.table.list {
		if e.Kind == KindEnemy && e.State == StateDead {
			e.Removed = true
		}
	}
	s.table.purge()

	if player.State == StateDead {
		s.combo.Reset()
		s.over = true
		events = append(events, Event{Type: EventPlayerDied, Target: player.ID, Pos: player.Pos})
		s.log.Info("session over",
			zap.Int("score", s.stats.Score),
			zap.Int("kills", s.stats.Kills),
			zap.Float64("elapsed", s.stats.Elapsed),
		)
	}

	s.stats.Health = player.Health
	return events, nil
}

// applyStats folds combat events into the scoreboard: combo-scaled score per
// kill and the periodic heal every time the kill count crosses the threshold.
func (s *Session) applyStats(events []Event, player *Entity) []Event {
	for i := range events {
		evt := &events[i]
		switch evt.Type {
		case EventKill:
			if evt.Target == s.playerID {
				continue
			}
			streak := s.combo.OnKill(s.now)
			evt.Streak = streak
			s.stats.Score += s.combo.ScoreFor(streak)
			s.stats.Kills++
			if s.stats.Kills%s.cfg.Player.HealThreshold == 0 && s.cfg.Player.HealAmount > 0 {
				healed := s.healPlayer(player, s.cfg.Player.HealAmount)
				if healed > 0 {
					events = append(events, Event{
						Type:   EventHeal,
						Target: player.ID,
						Amount: healed,
						Pos:    player.Pos,
					})
				}
			}
		case EventHitLanded:
			if evt.Target == s.playerID {
				s.stats.Health = player.Health
			}
		}
	}
	return events
}

func (s *Session) healPlayer(player *Entity, amount int) int {
	if !player.Alive() {
		return 0
	}
	before := player.Health
	player.Health += amount
	if player.Health > player.MaxHealth {
		player.Health = player.MaxHealth
	}
	s.stats.Health = player.Health
	return player.Health - before
}

// routeFeedback maps the step's events onto particles, shake, and hit-stop.
func (s *Session) routeFeedback(events []Event) {
	for _, evt := range events {
		switch evt.Type {
		case EventKill:
			if evt.Target == s.playerID {
				continue
			}
			s.particles.Spawn(ParticleBlood, evt.Pos, s.cfg.Particles.KillBurst)
			s.feedback.TriggerShake(s.cfg.Feedback.KillShake)
			s.feedback.TriggerHitStop()
		case EventHitLanded:
			s.particles.Spawn(ParticleSpark, evt.Pos, s.cfg.Particles.HurtBurst)
			if evt.Target == s.playerID {
				s.feedback.TriggerShake(s.cfg.Feedback.DamageShake)
			}
		case EventDashStarted:
			s.particles.Spawn(ParticleDust, evt.Pos, s.cfg.Particles.DashBurst)
		case EventHeal:
			s.particles.Spawn(ParticleDust, evt.Pos, s.cfg.Particles.HealBurst)
		}
	}
}

func (s *Session) spawnEnemy(sp EnemySpawn) *Entity {
	e := &Entity{
		ID:        s.allocID(),
		Kind:      KindEnemy,
		Pos:       sp.Pos,
		State:     StateSeeking,
		Health:    s.cfg.Enemy.MaxHealth,
		MaxHealth: s.cfg.Enemy.MaxHealth,
		MoveSpeed: sp.Speed,
	}
	s.table.add(e)
	return e
}

// Over reports whether the session reached its terminal state.
func (s *Session) Over() bool {
	return s.over
}

// FinalScore is the persistence boundary: the single value the core emits at
// session end.
func (s *Session) FinalScore() int {
	return s.stats.Score
}

// Stats returns a copy of the current scoreboard.
func (s *Session) Stats() Stats {
	return s.stats
}

// Now returns elapsed simulation time in seconds.
func (s *Session) Now() float64 {
	return s.now
}
