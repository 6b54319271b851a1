package sim

import (
	"testing"

	"github.com/milk9111/nightblade/config"
)

func testFeedback() *FeedbackController {
	return NewFeedbackController(config.FeedbackConfig{
		KillShake:    10,
		DamageShake:  5,
		ShakeDecay:   20,
		HitStopSteps: 3,
	})
}

func TestShakeTakesMaxNotSum(t *testing.T) {
	f := testFeedback()

	f.TriggerShake(5)
	f.TriggerShake(10)
	if got := f.ShakeMagnitude(); got != 10 {
		t.Fatalf("expected max 10, got %v", got)
	}
	// a weaker trigger on top of a stronger one changes nothing
	f.TriggerShake(5)
	if got := f.ShakeMagnitude(); got != 10 {
		t.Fatalf("weaker trigger must not reduce shake, got %v", got)
	}
}

func TestShakeLinearDecay(t *testing.T) {
	f := testFeedback()
	f.TriggerShake(10)

	f.Update(0.25) // decay 20/s
	if got := f.ShakeMagnitude(); !approx(got, 5) {
		t.Fatalf("expected 5 after 0.25s, got %v", got)
	}
	f.Update(0.5)
	if got := f.ShakeMagnitude(); got != 0 {
		t.Fatalf("shake must floor at zero, got %v", got)
	}
	f.Update(0.5)
	if got := f.ShakeMagnitude(); got != 0 {
		t.Fatalf("shake must stay at zero, got %v", got)
	}
}

func TestHitStopRefreshesNotStacks(t *testing.T) {
	f := testFeedback()

	f.TriggerHitStop()
	if !f.HitStopActive() {
		t.Fatal("expected hit-stop active")
	}
	f.ConsumeHitStopStep()
	// a second kill mid-freeze refreshes back to the full window
	f.TriggerHitStop()
	f.TriggerHitStop()

	steps := 0
	for f.HitStopActive() {
		f.ConsumeHitStopStep()
		steps++
		if steps > 10 {
			t.Fatal("hit-stop never ended")
		}
	}
	if steps != 3 {
		t.Fatalf("expected 3 frozen steps after refresh, got %d", steps)
	}
}

func TestHitStopDisabledByConfig(t *testing.T) {
	f := NewFeedbackController(config.FeedbackConfig{ShakeDecay: 20})
	f.TriggerHitStop()
	if f.HitStopActive() {
		t.Fatal("zero hit_stop_steps must disable the freeze entirely")
	}
}
