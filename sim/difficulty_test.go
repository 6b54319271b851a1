package sim

import (
	"testing"

	"github.com/milk9111/nightblade/config"
)

func defaultDifficulty() (*DifficultyScaler, config.DifficultyConfig, config.SpawnConfig) {
	cfg := config.Default()
	return NewDifficultyScaler(cfg.Difficulty, cfg.Spawn), cfg.Difficulty, cfg.Spawn
}

func TestDifficultyParamsAtScore(t *testing.T) {
	d, _, _ := defaultDifficulty()

	cases := []struct {
		name         string
		score        int
		wantSpeed    float64
		wantInterval float64
		wantMaxAlive int
	}{
		{"zero_score_baseline", 0, 1.0, 2.0, 3},
		{"below_first_step", 9, 1.0, 1.91, 4},
		{"first_speed_step", 10, 1.1, 1.9, 5},
		{"mid_game", 50, 1.5, 1.5, 10},
		{"speed_ceiling", 500, 2.5, 0.5, 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := d.ParamsFor(c.score)
			if !approx(p.SpeedMultiplier, c.wantSpeed) {
				t.Fatalf("speed: expected %v, got %v", c.wantSpeed, p.SpeedMultiplier)
			}
			if !approx(p.SpawnInterval, c.wantInterval) {
				t.Fatalf("interval: expected %v, got %v", c.wantInterval, p.SpawnInterval)
			}
			if p.MaxAlive != c.wantMaxAlive {
				t.Fatalf("max alive: expected %d, got %d", c.wantMaxAlive, p.MaxAlive)
			}
		})
	}
}

func TestDifficultyMonotoneAndBounded(t *testing.T) {
	d, cfg, spawn := defaultDifficulty()

	prev := d.ParamsFor(0)
	for score := 1; score <= 2000; score++ {
		p := d.ParamsFor(score)
		if p.SpeedMultiplier < prev.SpeedMultiplier {
			t.Fatalf("speed decreased at score %d: %v -> %v", score, prev.SpeedMultiplier, p.SpeedMultiplier)
		}
		if p.SpawnInterval > prev.SpawnInterval {
			t.Fatalf("interval increased at score %d: %v -> %v", score, prev.SpawnInterval, p.SpawnInterval)
		}
		if p.MaxAlive < prev.MaxAlive {
			t.Fatalf("max alive decreased at score %d", score)
		}
		if p.SpeedMultiplier < 1 || p.SpeedMultiplier > cfg.MaxSpeedMultiplier {
			t.Fatalf("speed out of bounds at score %d: %v", score, p.SpeedMultiplier)
		}
		if p.SpawnInterval < cfg.MinSpawnInterval || p.SpawnInterval > spawn.BaseInterval {
			t.Fatalf("interval out of bounds at score %d: %v", score, p.SpawnInterval)
		}
		if p.MaxAlive < cfg.BaseMaxAlive || p.MaxAlive > cfg.MaxAlive {
			t.Fatalf("max alive out of bounds at score %d: %d", score, p.MaxAlive)
		}
		prev = p
	}
}

func TestDifficultyScriptedCurvesStayBounded(t *testing.T) {
	d, cfg, spawn := defaultDifficulty()

	// hostile overrides: the clamp holds the line
	d.SetCurves(
		func(score int) float64 { return 1000 },
		func(score int) float64 { return -5 },
	)
	p := d.ParamsFor(100)
	if p.SpeedMultiplier != cfg.MaxSpeedMultiplier {
		t.Fatalf("expected speed clamped to %v, got %v", cfg.MaxSpeedMultiplier, p.SpeedMultiplier)
	}
	if p.SpawnInterval != cfg.MinSpawnInterval {
		t.Fatalf("expected interval clamped to %v, got %v", cfg.MinSpawnInterval, p.SpawnInterval)
	}

	// nil curves restore the built-ins
	d.SetCurves(nil, nil)
	p = d.ParamsFor(0)
	if p.SpeedMultiplier != 1 || p.SpawnInterval != spawn.BaseInterval {
		t.Fatalf("expected built-in baseline, got %+v", p)
	}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-9
}
