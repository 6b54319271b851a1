package sim

import "github.com/milk9111/nightblade/config"

// FeedbackController owns the two timed juice effects: screen shake and
// hit-stop. Both are pure data state; the session reads them each step.
type FeedbackController struct {
	cfg config.FeedbackConfig

	shakeMag     float64
	hitStopSteps int
}

func NewFeedbackController(cfg config.FeedbackConfig) *FeedbackController {
	return &FeedbackController{cfg: cfg}
}

// TriggerShake raises the shake magnitude. Concurrent triggers take the max
// of current and new, not the sum, to bound visual chaos.
func (f *FeedbackController) TriggerShake(magnitude float64) {
	if magnitude > f.shakeMag {
		f.shakeMag = magnitude
	}
}

// TriggerHitStop refreshes the freeze window. Only one hit-stop is ever
// active; a new request extends rather than stacks.
func (f *FeedbackController) TriggerHitStop() {
	if f.cfg.HitStopSteps > f.hitStopSteps {
		f.hitStopSteps = f.cfg.HitStopSteps
	}
}

// HitStopActive reports whether gameplay updates are suspended.
func (f *FeedbackController) HitStopActive() bool {
	return f.hitStopSteps > 0
}

// ConsumeHitStopStep burns one frozen step.
func (f *FeedbackController) ConsumeHitStopStep() {
	if f.hitStopSteps > 0 {
		f.hitStopSteps--
	}
}

// Update decays the shake linearly. Runs every step, hit-stop included, so
// the freeze stays perceivable without halting the visuals.
func (f *FeedbackController) Update(dt float64) {
	if f.shakeMag > 0 {
		f.shakeMag -= f.cfg.ShakeDecay * dt
		if f.shakeMag < 0 {
			f.shakeMag = 0
		}
	}
}

// ShakeMagnitude returns the current shake amplitude in world units.
func (f *FeedbackController) ShakeMagnitude() float64 {
	return f.shakeMag
}
