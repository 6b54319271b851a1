package sim

// Accumulator converts wall-clock frame deltas into whole fixed simulation
// steps. Overflow beyond the per-frame cap is dropped so a stall never turns
// into a spiral of catch-up steps.
type Accumulator struct {
	step     float64
	maxSteps int
	acc      float64
}

func NewAccumulator(step float64, maxSteps int) *Accumulator {
	return &Accumulator{step: step, maxSteps: maxSteps}
}

// Advance adds a wall-clock delta and returns how many fixed steps to run.
func (a *Accumulator) Advance(wallDt float64) int {
	if a == nil || wallDt <= 0 {
		return 0
	}
	a.acc += wallDt
	steps := int(a.acc / a.step)
	if steps > a.maxSteps {
		steps = a.maxSteps
		// drop the overflow remainder, keep only the sub-step fraction
		a.acc -= float64(int(a.acc/a.step)) * a.step
	} else {
		a.acc -= float64(steps) * a.step
	}
	return steps
}

// StepDelta returns the fixed step size in seconds.
func (a *Accumulator) StepDelta() float64 {
	return a.step
}
