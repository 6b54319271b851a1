package sim

import (
	"testing"
)

func TestAccumulatorStepDraining(t *testing.T) {
	const step = 0.25

	cases := []struct {
		name     string
		maxSteps int
		deltas   []float64
		want     []int
	}{
		{"exact_steps", 5, []float64{step, step}, []int{1, 1}},
		{"sub_step_accumulates", 5, []float64{step / 2, step / 2}, []int{0, 1}},
		{"multiple_steps_one_frame", 5, []float64{3 * step}, []int{3}},
		{"cap_drops_overflow", 5, []float64{20 * step, step}, []int{5, 1}},
		{"zero_delta", 5, []float64{0}, []int{0}},
		{"negative_delta_ignored", 5, []float64{-step}, []int{0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAccumulator(step, c.maxSteps)
			for i, d := range c.deltas {
				got := a.Advance(d)
				if got != c.want[i] {
					t.Fatalf("advance %d: expected %d steps, got %d", i, c.want[i], got)
				}
			}
		})
	}
}

func TestAccumulatorKeepsFraction(t *testing.T) {
	a := NewAccumulator(0.25, 10)

	if got := a.Advance(0.625); got != 2 {
		t.Fatalf("expected 2 steps, got %d", got)
	}
	// 0.125 remains buffered; another 0.125 completes a step
	if got := a.Advance(0.125); got != 1 {
		t.Fatalf("expected 1 step from buffered fraction, got %d", got)
	}
}

func TestAccumulatorOverflowDropsWholeSteps(t *testing.T) {
	a := NewAccumulator(0.25, 3)

	if got := a.Advance(2.375); got != 3 {
		t.Fatalf("expected capped 3 steps, got %d", got)
	}
	// dropped overflow must not carry whole steps into the next frame
	if got := a.Advance(0.1); got != 0 {
		t.Fatalf("expected 0 steps after drop, got %d", got)
	}
	if got := a.Advance(0.25); got != 1 {
		t.Fatalf("expected accumulation to resume with 1 step, got %d", got)
	}
	if a.StepDelta() != 0.25 {
		t.Fatalf("unexpected step delta %v", a.StepDelta())
	}
}
