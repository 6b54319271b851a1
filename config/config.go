package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full tuning surface for a simulation session. It is immutable
// once handed to sim.NewSession; reloading produces a fresh value.
type Config struct {
	Step       StepConfig       `yaml:"step"`
	Arena      ArenaConfig      `yaml:"arena"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Combo      ComboConfig      `yaml:"combo"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Particles  ParticleConfig   `yaml:"particles"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	// ScriptPath optionally points at a tengo script overriding the combo
	// multiplier and difficulty curves. Empty means built-in curves.
	ScriptPath string `yaml:"script"`
	// Seed for the session RNG (spawn sides, particle velocities). Zero means
	// derive from wall clock at session start.
	Seed int64 `yaml:"seed"`
}

type StepConfig struct {
	// Delta is the fixed simulation step in seconds.
	Delta float64 `yaml:"delta"`
	// MaxStepsPerFrame caps drained steps per frame; overflow is dropped.
	MaxStepsPerFrame int `yaml:"max_steps_per_frame"`
}

type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PlayerConfig struct {
	MaxHealth           int     `yaml:"max_health"`
	MoveSpeed           float64 `yaml:"move_speed"`
	AttackRange         float64 `yaml:"attack_range"`
	AttackCooldown      float64 `yaml:"attack_cooldown"`
	AttackDamage        int     `yaml:"attack_damage"`
	DashDuration        float64 `yaml:"dash_duration"`
	DashCooldown        float64 `yaml:"dash_cooldown"`
	DashSpeedMultiplier float64 `yaml:"dash_speed_multiplier"`
	// HurtInvuln is the i-frame window granted after taking contact damage.
	HurtInvuln float64 `yaml:"hurt_invuln"`
	// HealThreshold heals HealAmount every time the kill count crosses a
	// multiple of it.
	HealThreshold int `yaml:"heal_threshold"`
	HealAmount    int `yaml:"heal_amount"`
}

type EnemyConfig struct {
	MaxHealth       int     `yaml:"max_health"`
	BaseSpeed       float64 `yaml:"base_speed"`
	StrikeRange     float64 `yaml:"strike_range"`
	AttackCooldown  float64 `yaml:"attack_cooldown"`
	AttackDamage    int     `yaml:"attack_damage"`
	StaggerDuration float64 `yaml:"stagger_duration"`
}

type ComboConfig struct {
	// Window is the rolling decay window in seconds.
	Window        float64 `yaml:"window"`
	BaseKillScore int     `yaml:"base_kill_score"`
	// Bonus is the per-streak-step linear multiplier increment:
	// f(streak) = 1 + Bonus*(streak-1).
	Bonus float64 `yaml:"bonus"`
	// MaxMultiplier bounds f(streak).
	MaxMultiplier float64 `yaml:"max_multiplier"`
}

type DifficultyConfig struct {
	// SpeedStep is the score interval per speed increment.
	SpeedStep int `yaml:"speed_step"`
	// SpeedGain is the multiplier added per SpeedStep of score.
	SpeedGain          float64 `yaml:"speed_gain"`
	MaxSpeedMultiplier float64 `yaml:"max_speed_multiplier"`
	// SpawnReduction shortens the spawn interval by this many seconds per
	// point of score.
	SpawnReduction   float64 `yaml:"spawn_reduction"`
	MinSpawnInterval float64 `yaml:"min_spawn_interval"`
	// BaseMaxAlive/AliveStep/MaxAlive gate the live enemy population:
	// maxAlive = min(BaseMaxAlive + score/AliveStep, MaxAlive).
	BaseMaxAlive int `yaml:"base_max_alive"`
	AliveStep    int `yaml:"alive_step"`
	MaxAlive     int `yaml:"max_alive"`
}

type SpawnConfig struct {
	// BaseInterval is the spawn interval in seconds before difficulty scaling.
	BaseInterval float64 `yaml:"base_interval"`
	// EdgeMargin keeps spawn points this far inside the arena edge.
	EdgeMargin float64 `yaml:"edge_margin"`
	// MinPlayerDistance rejects spawn points closer than this to the player.
	MinPlayerDistance float64 `yaml:"min_player_distance"`
}

type ParticleConfig struct {
	Capacity int `yaml:"capacity"`
	// Gravity pulls particles down, world units per second squared.
	Gravity float64 `yaml:"gravity"`
	// Lifetimes in seconds per kind.
	BloodLifetime float64 `yaml:"blood_lifetime"`
	DustLifetime  float64 `yaml:"dust_lifetime"`
	SparkLifetime float64 `yaml:"spark_lifetime"`
	// Burst counts per trigger.
	KillBurst int `yaml:"kill_burst"`
	HurtBurst int `yaml:"hurt_burst"`
	DashBurst int `yaml:"dash_burst"`
	HealBurst int `yaml:"heal_burst"`
}

type FeedbackConfig struct {
	// Shake magnitudes in world units.
	KillShake   float64 `yaml:"kill_shake"`
	DamageShake float64 `yaml:"damage_shake"`
	// ShakeDecay is magnitude lost per second (linear decay).
	ShakeDecay float64 `yaml:"shake_decay"`
	// HitStopSteps is the number of whole simulation steps frozen per kill.
	HitStopSteps int `yaml:"hit_stop_steps"`
}

// Default returns the tuning the game ships with.
func Default() Config {
	return Config{
		Step:  StepConfig{Delta: 1.0 / 60.0, MaxStepsPerFrame: 5},
		Arena: ArenaConfig{Width: 1024, Height: 768},
		Player: PlayerConfig{
			MaxHealth:           100,
			MoveSpeed:           300,
			AttackRange:         10,
			AttackCooldown:      0.8,
			AttackDamage:        1,
			DashDuration:        0.2,
			DashCooldown:        1.0,
			DashSpeedMultiplier: 2.5,
			HurtInvuln:          1.2,
			HealThreshold:       10,
			HealAmount:          10,
		},
		Enemy: EnemyConfig{
			MaxHealth:       1,
			BaseSpeed:       60,
			StrikeRange:     60,
			AttackCooldown:  1.2,
			AttackDamage:    1,
			StaggerDuration: 0.25,
		},
		Combo: ComboConfig{
			Window:        3.0,
			BaseKillScore: 1,
			Bonus:         0.1,
			MaxMultiplier: 3.0,
		},
		Difficulty: DifficultyConfig{
			SpeedStep:          10,
			SpeedGain:          0.1,
			MaxSpeedMultiplier: 2.5,
			SpawnReduction:     0.01,
			MinSpawnInterval:   0.5,
			BaseMaxAlive:       3,
			AliveStep:          5,
			MaxAlive:           10,
		},
		Spawn: SpawnConfig{
			BaseInterval:      2.0,
			EdgeMargin:        16,
			MinPlayerDistance: 250,
		},
		Particles: ParticleConfig{
			Capacity:      512,
			Gravity:       240,
			BloodLifetime: 0.6,
			DustLifetime:  0.4,
			SparkLifetime: 0.3,
			KillBurst:     20,
			HurtBurst:     5,
			DashBurst:     2,
			HealBurst:     15,
		},
		Feedback: FeedbackConfig{
			KillShake:    10,
			DamageShake:  5,
			ShakeDecay:   20,
			HitStopSteps: 3,
		},
	}
}

// Load reads a YAML config file, layered over Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values that would make the simulation unsound. The session
// refuses to start on a bad config rather than risk runaway behavior.
func (c Config) Validate() error {
	if c.Step.Delta <= 0 {
		return fmt.Errorf("step.delta must be positive, got %v", c.Step.Delta)
	}
	if c.Step.MaxStepsPerFrame <= 0 {
		return fmt.Errorf("step.max_steps_per_frame must be positive, got %d", c.Step.MaxStepsPerFrame)
	}
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena dimensions must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	}
	if c.Player.MaxHealth <= 0 {
		return fmt.Errorf("player.max_health must be positive, got %d", c.Player.MaxHealth)
	}
	if c.Player.AttackRange <= 0 {
		return fmt.Errorf("player.attack_range must be positive, got %v", c.Player.AttackRange)
	}
	if c.Player.AttackCooldown <= 0 {
		return fmt.Errorf("player.attack_cooldown must be positive, got %v", c.Player.AttackCooldown)
	}
	if c.Player.AttackDamage <= 0 {
		return fmt.Errorf("player.attack_damage must be positive, got %d", c.Player.AttackDamage)
	}
	if c.Player.DashDuration <= 0 || c.Player.DashCooldown <= 0 {
		return fmt.Errorf("player dash duration/cooldown must be positive, got %v/%v",
			c.Player.DashDuration, c.Player.DashCooldown)
	}
	if c.Player.DashSpeedMultiplier < 1 {
		return fmt.Errorf("player.dash_speed_multiplier must be >= 1, got %v", c.Player.DashSpeedMultiplier)
	}
	if c.Player.HealThreshold <= 0 {
		return fmt.Errorf("player.heal_threshold must be positive, got %d", c.Player.HealThreshold)
	}
	if c.Player.HealAmount < 0 {
		return fmt.Errorf("player.heal_amount must be non-negative, got %d", c.Player.HealAmount)
	}
	if c.Enemy.MaxHealth <= 0 {
		return fmt.Errorf("enemy.max_health must be positive, got %d", c.Enemy.MaxHealth)
	}
	if c.Enemy.StrikeRange <= 0 {
		return fmt.Errorf("enemy.strike_range must be positive, got %v", c.Enemy.StrikeRange)
	}
	if c.Enemy.AttackCooldown <= 0 {
		return fmt.Errorf("enemy.attack_cooldown must be positive, got %v", c.Enemy.AttackCooldown)
	}
	if c.Combo.Window <= 0 {
		return fmt.Errorf("combo.window must be positive, got %v", c.Combo.Window)
	}
	if c.Combo.BaseKillScore <= 0 {
		return fmt.Errorf("combo.base_kill_score must be positive, got %d", c.Combo.BaseKillScore)
	}
	if c.Combo.Bonus < 0 {
		return fmt.Errorf("combo.bonus must be non-negative, got %v", c.Combo.Bonus)
	}
	if c.Combo.MaxMultiplier < 1 {
		return fmt.Errorf("combo.max_multiplier must be >= 1, got %v", c.Combo.MaxMultiplier)
	}
	if c.Difficulty.SpeedStep <= 0 {
		return fmt.Errorf("difficulty.speed_step must be positive, got %d", c.Difficulty.SpeedStep)
	}
	if c.Difficulty.SpeedGain < 0 {
		return fmt.Errorf("difficulty.speed_gain must be non-negative, got %v", c.Difficulty.SpeedGain)
	}
	if c.Difficulty.MaxSpeedMultiplier < 1 {
		return fmt.Errorf("difficulty.max_speed_multiplier must be >= 1, got %v", c.Difficulty.MaxSpeedMultiplier)
	}
	if c.Difficulty.MinSpawnInterval <= 0 {
		return fmt.Errorf("difficulty.min_spawn_interval must be positive, got %v", c.Difficulty.MinSpawnInterval)
	}
	if c.Difficulty.SpawnReduction < 0 {
		return fmt.Errorf("difficulty.spawn_reduction must be non-negative, got %v", c.Difficulty.SpawnReduction)
	}
	if c.Difficulty.BaseMaxAlive <= 0 || c.Difficulty.AliveStep <= 0 || c.Difficulty.MaxAlive < c.Difficulty.BaseMaxAlive {
		return fmt.Errorf("difficulty alive caps invalid: base=%d step=%d max=%d",
			c.Difficulty.BaseMaxAlive, c.Difficulty.AliveStep, c.Difficulty.MaxAlive)
	}
	if c.Spawn.BaseInterval < c.Difficulty.MinSpawnInterval {
		return fmt.Errorf("spawn.base_interval %v below difficulty.min_spawn_interval %v",
			c.Spawn.BaseInterval, c.Difficulty.MinSpawnInterval)
	}
	if c.Particles.Capacity <= 0 {
		return fmt.Errorf("particles.capacity must be positive, got %d", c.Particles.Capacity)
	}
	if c.Feedback.ShakeDecay <= 0 {
		return fmt.Errorf("feedback.shake_decay must be positive, got %v", c.Feedback.ShakeDecay)
	}
	if c.Feedback.HitStopSteps < 0 {
		return fmt.Errorf("feedback.hit_stop_steps must be non-negative, got %d", c.Feedback.HitStopSteps)
	}
	return nil
}
