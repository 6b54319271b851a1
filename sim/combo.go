package sim

import (
	"math"

	"github.com/milk9111/nightblade/common"
	"github.com/milk9111/nightblade/config"
)

// MultiplierFunc maps a streak to a score multiplier. It must be pure; the
// tracker clamps its output to [1, MaxMultiplier] regardless of source.
type MultiplierFunc func(streak int) float64

// ComboTracker turns the kill event stream into a live streak with a rolling
// decay deadline. The streak resets only via decay expiry or player death,
// never silently.
type ComboTracker struct {
	cfg        config.ComboConfig
	multiplier MultiplierFunc

	streak   int
	deadline float64
}

func NewComboTracker(cfg config.ComboConfig, multiplier MultiplierFunc) *ComboTracker {
	t := &ComboTracker{cfg: cfg, multiplier: multiplier}
	if t.multiplier == nil {
		t.multiplier = LinearMultiplier(cfg)
	}
	return t
}

// LinearMultiplier is the built-in curve: f(streak) = 1 + bonus*(streak-1).
func LinearMultiplier(cfg config.ComboConfig) MultiplierFunc {
	return func(streak int) float64 {
		if streak <= 1 {
			return 1
		}
		return 1 + cfg.Bonus*float64(streak-1)
	}
}

// OnKill increments the streak and pushes the decay deadline out to
// now + window. Returns the new streak.
func (t *ComboTracker) OnKill(now float64) int {
	t.streak++
	t.deadline = now + t.cfg.Window
	return t.streak
}

// Update reports decay: true exactly on the step the deadline passes with a
// live streak, resetting it to zero.
func (t *ComboTracker) Update(now float64) bool {
	if t.streak > 0 && now > t.deadline {
		t.streak = 0
		return true
	}
	return false
}

// Reset clears the streak. Used on player death.
func (t *ComboTracker) Reset() {
	t.streak = 0
	t.deadline = 0
}

// Streak returns the current streak count.
func (t *ComboTracker) Streak() int {
	return t.streak
}

// Remaining returns seconds until decay, zero when no streak is live.
func (t *ComboTracker) Remaining(now float64) float64 {
	if t.streak == 0 || now > t.deadline {
		return 0
	}
	return t.deadline - now
}

// ScoreFor computes the kill score contribution at a given streak:
// baseKillScore * f(streak), with f clamped to the configured ceiling.
func (t *ComboTracker) ScoreFor(streak int) int {
	m := common.Clamp(t.multiplier(streak), 1, t.cfg.MaxMultiplier)
	return int(math.Floor(float64(t.cfg.BaseKillScore) * m))
}
