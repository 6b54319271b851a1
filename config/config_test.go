package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantSub string
	}{
		{"zero_step", func(c *Config) { c.Step.Delta = 0 }, "step.delta"},
		{"negative_step", func(c *Config) { c.Step.Delta = -0.01 }, "step.delta"},
		{"zero_max_steps", func(c *Config) { c.Step.MaxStepsPerFrame = 0 }, "max_steps_per_frame"},
		{"zero_arena", func(c *Config) { c.Arena.Width = 0 }, "arena"},
		{"zero_player_health", func(c *Config) { c.Player.MaxHealth = 0 }, "player.max_health"},
		{"zero_attack_range", func(c *Config) { c.Player.AttackRange = 0 }, "attack_range"},
		{"zero_attack_cooldown", func(c *Config) { c.Player.AttackCooldown = 0 }, "attack_cooldown"},
		{"zero_attack_damage", func(c *Config) { c.Player.AttackDamage = 0 }, "attack_damage"},
		{"zero_dash_duration", func(c *Config) { c.Player.DashDuration = 0 }, "dash"},
		{"sub_unit_dash_multiplier", func(c *Config) { c.Player.DashSpeedMultiplier = 0.5 }, "dash_speed_multiplier"},
		{"zero_heal_threshold", func(c *Config) { c.Player.HealThreshold = 0 }, "heal_threshold"},
		{"negative_heal_amount", func(c *Config) { c.Player.HealAmount = -1 }, "heal_amount"},
		{"zero_enemy_health", func(c *Config) { c.Enemy.MaxHealth = 0 }, "enemy.max_health"},
		{"zero_strike_range", func(c *Config) { c.Enemy.StrikeRange = 0 }, "strike_range"},
		{"zero_combo_window", func(c *Config) { c.Combo.Window = 0 }, "combo.window"},
		{"zero_base_kill_score", func(c *Config) { c.Combo.BaseKillScore = 0 }, "base_kill_score"},
		{"sub_unit_max_multiplier", func(c *Config) { c.Combo.MaxMultiplier = 0.5 }, "max_multiplier"},
		{"zero_speed_step", func(c *Config) { c.Difficulty.SpeedStep = 0 }, "speed_step"},
		{"zero_min_spawn_interval", func(c *Config) { c.Difficulty.MinSpawnInterval = 0 }, "min_spawn_interval"},
		{"alive_cap_below_base", func(c *Config) { c.Difficulty.MaxAlive = 1 }, "alive"},
		{"interval_below_floor", func(c *Config) { c.Spawn.BaseInterval = 0.1 }, "base_interval"},
		{"zero_particle_capacity", func(c *Config) { c.Particles.Capacity = 0 }, "particles.capacity"},
		{"zero_shake_decay", func(c *Config) { c.Feedback.ShakeDecay = 0 }, "shake_decay"},
		{"negative_hit_stop", func(c *Config) { c.Feedback.HitStopSteps = -1 }, "hit_stop_steps"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := Default()
			c.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), c.wantSub) {
				t.Fatalf("error %q does not mention %q", err, c.wantSub)
			}
		})
	}
}

func TestLoadLayersOverDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nightblade.yaml")
	src := `
player:
  attack_range: 25
  max_health: 200
combo:
  window: 5
seed: 7
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Player.AttackRange != 25 || cfg.Player.MaxHealth != 200 {
		t.Fatalf("overrides not applied: %+v", cfg.Player)
	}
	if cfg.Combo.Window != 5 {
		t.Fatalf("combo override not applied: %v", cfg.Combo.Window)
	}
	if cfg.Seed != 7 {
		t.Fatalf("seed override not applied: %d", cfg.Seed)
	}
	// untouched fields keep their defaults
	def := Default()
	if cfg.Enemy != def.Enemy {
		t.Fatalf("enemy defaults disturbed: %+v", cfg.Enemy)
	}
	if cfg.Step != def.Step {
		t.Fatalf("step defaults disturbed: %+v", cfg.Step)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing_file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("malformed_yaml", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("player: [:::"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected unmarshal error")
		}
	})

	t.Run("invalid_values", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("step:\n  delta: -1\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
