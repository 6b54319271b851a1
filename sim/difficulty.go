package sim

import (
	"github.com/milk9111/nightblade/common"
	"github.com/milk9111/nightblade/config"
)

// Params is the difficulty output for a given score. Recomputed each step,
// never mutated by side channel.
type Params struct {
	SpeedMultiplier float64
	SpawnInterval   float64
	MaxAlive        int
}

// CurveFunc optionally overrides a difficulty curve; output is clamped to the
// configured bounds either way.
type CurveFunc func(score int) float64

// DifficultyScaler maps cumulative score to enemy speed and spawn cadence.
// The built-in curves are monotone: speed never decreases, spawn interval
// never increases, both bounded by the configured floors and ceilings.
type DifficultyScaler struct {
	cfg   config.DifficultyConfig
	spawn config.SpawnConfig

	speedCurve    CurveFunc
	intervalCurve CurveFunc
}

func NewDifficultyScaler(cfg config.DifficultyConfig, spawn config.SpawnConfig) *DifficultyScaler {
	return &DifficultyScaler{cfg: cfg, spawn: spawn}
}

// SetCurves installs scripted curve overrides. Nil keeps the built-in curve.
func (d *DifficultyScaler) SetCurves(speed, interval CurveFunc) {
	d.speedCurve = speed
	d.intervalCurve = interval
}

// ParamsFor is a pure function of score.
func (d *DifficultyScaler) ParamsFor(score int) Params {
	speed := d.speedFor(score)
	interval := d.intervalFor(score)
	maxAlive := d.cfg.BaseMaxAlive + score/d.cfg.AliveStep
	return Params{
		SpeedMultiplier: common.Clamp(speed, 1, d.cfg.MaxSpeedMultiplier),
		SpawnInterval:   common.Clamp(interval, d.cfg.MinSpawnInterval, d.spawn.BaseInterval),
		MaxAlive:        common.ClampInt(maxAlive, d.cfg.BaseMaxAlive, d.cfg.MaxAlive),
	}
}

func (d *DifficultyScaler) speedFor(score int) float64 {
	if d.speedCurve != nil {
		return d.speedCurve(score)
	}
	return 1 + float64(score/d.cfg.SpeedStep)*d.cfg.SpeedGain
}

func (d *DifficultyScaler) intervalFor(score int) float64 {
	if d.intervalCurve != nil {
		return d.intervalCurve(score)
	}
	return d.spawn.BaseInterval - float64(score)*d.cfg.SpawnReduction
}
