package sim

import (
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Tuning scripts may override the combo multiplier and difficulty curves.
// The script exports a "tuning" map holding any of the hooks:
//
//	tuning := {
//		combo_multiplier: func(streak) { return 1 + 0.2*streak },
//		speed_multiplier: func(score) { return 1 + score/50.0 },
//		spawn_interval:   func(score) { return 2.0 - score/100.0 },
//	}
//
// Each hook must be a pure function of its argument; outputs are clamped to
// the configured bounds by the consumers, so a misbehaving script can distort
// the curve inside its bounds but never break the session's invariants.
const tuningDispatch = `
__out := 0.0
__ok := false
__f := tuning[__fn]
if !is_undefined(__f) {
	__out = __f(__arg)
	__ok = true
}
`

// TuningScript is a tengo script compiled once at session construction and
// re-run per call with fresh inputs.
type TuningScript struct {
	compiled *tengo.Compiled
	has      map[string]bool
}

// LoadTuningScript reads and compiles a tuning script file.
func LoadTuningScript(path string) (*TuningScript, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sim: read tuning script %s: %w", path, err)
	}
	ts, err := CompileTuningScript(src)
	if err != nil {
		return nil, fmt.Errorf("sim: tuning script %s: %w", path, err)
	}
	return ts, nil
}

// CompileTuningScript compiles tuning source and probes which hooks it
// defines. Only the math stdlib module is importable, keeping scripts pure.
func CompileTuningScript(src []byte) (*TuningScript, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte(tuningDispatch)...))
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("__fn", ""); err != nil {
		return nil, err
	}
	if err := script.Add("__arg", 0); err != nil {
		return nil, err
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	ts := &TuningScript{compiled: compiled, has: make(map[string]bool)}
	for _, fn := range []string{"combo_multiplier", "speed_multiplier", "spawn_interval"} {
		if _, ok, err := ts.call(fn, 0); err == nil && ok {
			ts.has[fn] = true
		}
	}
	if len(ts.has) == 0 {
		return nil, fmt.Errorf("tuning map defines none of combo_multiplier/speed_multiplier/spawn_interval")
	}
	return ts, nil
}

func (t *TuningScript) call(fn string, arg int) (float64, bool, error) {
	if err := t.compiled.Set("__fn", fn); err != nil {
		return 0, false, err
	}
	if err := t.compiled.Set("__arg", arg); err != nil {
		return 0, false, err
	}
	if err := t.compiled.Run(); err != nil {
		return 0, false, err
	}
	return t.compiled.Get("__out").Float(), t.compiled.Get("__ok").Bool(), nil
}

// ComboMultiplier returns the scripted multiplier hook, or nil if the script
// does not define one.
func (t *TuningScript) ComboMultiplier() MultiplierFunc {
	if t == nil || !t.has["combo_multiplier"] {
		return nil
	}
	return func(streak int) float64 {
		v, ok, err := t.call("combo_multiplier", streak)
		if err != nil || !ok {
			return 0 // clamped to the floor by the tracker
		}
		return v
	}
}

// SpeedCurve returns the scripted enemy speed curve, or nil.
func (t *TuningScript) SpeedCurve() CurveFunc {
	if t == nil || !t.has["speed_multiplier"] {
		return nil
	}
	return func(score int) float64 {
		v, ok, err := t.call("speed_multiplier", score)
		if err != nil || !ok {
			return 0
		}
		return v
	}
}

// IntervalCurve returns the scripted spawn interval curve, or nil.
func (t *TuningScript) IntervalCurve() CurveFunc {
	if t == nil || !t.has["spawn_interval"] {
		return nil
	}
	return func(score int) float64 {
		v, ok, err := t.call("spawn_interval", score)
		if err != nil || !ok {
			return 0
		}
		return v
	}
}
