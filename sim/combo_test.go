package sim

import (
	"testing"

	"github.com/milk9111/nightblade/config"
)

func TestComboStreakAndDecay(t *testing.T) {
	cfg := config.ComboConfig{Window: 3, BaseKillScore: 1, Bonus: 0.1, MaxMultiplier: 3}
	c := NewComboTracker(cfg, nil)

	if got := c.OnKill(0); got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}
	// a kill inside the window extends, never restarts, the streak
	if got := c.OnKill(2.5); got != 2 {
		t.Fatalf("expected streak 2, got %d", got)
	}
	// deadline is now 5.5; just inside keeps the streak
	if c.Update(5.5) {
		t.Fatal("streak must survive up to the deadline")
	}
	if c.Streak() != 2 {
		t.Fatalf("expected streak 2, got %d", c.Streak())
	}
	// past the deadline decays exactly once
	if !c.Update(5.6) {
		t.Fatal("expected decay past the deadline")
	}
	if c.Streak() != 0 {
		t.Fatalf("expected streak reset, got %d", c.Streak())
	}
	if c.Update(5.7) {
		t.Fatal("decay must not fire again on an empty streak")
	}
}

func TestComboReset(t *testing.T) {
	cfg := config.ComboConfig{Window: 3, BaseKillScore: 1, Bonus: 0.1, MaxMultiplier: 3}
	c := NewComboTracker(cfg, nil)
	c.OnKill(1)
	c.OnKill(2)
	c.Reset()
	if c.Streak() != 0 {
		t.Fatalf("expected streak 0 after reset, got %d", c.Streak())
	}
	if c.Update(10) {
		t.Fatal("reset must not produce a decay event")
	}
}

func TestComboRemaining(t *testing.T) {
	cfg := config.ComboConfig{Window: 3, BaseKillScore: 1, Bonus: 0.1, MaxMultiplier: 3}
	c := NewComboTracker(cfg, nil)
	if got := c.Remaining(0); got != 0 {
		t.Fatalf("expected 0 remaining with no streak, got %v", got)
	}
	c.OnKill(2)
	if got := c.Remaining(3); got != 2 {
		t.Fatalf("expected 2s remaining, got %v", got)
	}
}

func TestComboScoreFor(t *testing.T) {
	cases := []struct {
		name   string
		cfg    config.ComboConfig
		streak int
		want   int
	}{
		{"first_kill_base", config.ComboConfig{BaseKillScore: 10, Bonus: 0.1, MaxMultiplier: 3}, 1, 10},
		{"linear_growth", config.ComboConfig{BaseKillScore: 10, Bonus: 0.1, MaxMultiplier: 3}, 6, 15},
		{"clamped_at_max", config.ComboConfig{BaseKillScore: 10, Bonus: 0.1, MaxMultiplier: 2}, 50, 20},
		{"floor_rounding", config.ComboConfig{BaseKillScore: 1, Bonus: 0.1, MaxMultiplier: 3}, 5, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := NewComboTracker(c.cfg, nil)
			if got := tr.ScoreFor(c.streak); got != c.want {
				t.Fatalf("ScoreFor(%d) = %d, expected %d", c.streak, got, c.want)
			}
		})
	}
}

func TestComboScriptedMultiplierClamped(t *testing.T) {
	cfg := config.ComboConfig{BaseKillScore: 10, Bonus: 0.1, MaxMultiplier: 3}

	// a hostile curve is clamped to [1, max] before it touches the score
	tr := NewComboTracker(cfg, func(streak int) float64 { return -50 })
	if got := tr.ScoreFor(4); got != 10 {
		t.Fatalf("negative multiplier must clamp to the floor, got %d", got)
	}
	tr = NewComboTracker(cfg, func(streak int) float64 { return 1000 })
	if got := tr.ScoreFor(4); got != 30 {
		t.Fatalf("runaway multiplier must clamp to the ceiling, got %d", got)
	}
}
