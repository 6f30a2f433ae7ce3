package lander

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a control script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Body   int    `json:"body,omitempty"`
	Frames int    `json:"frames,omitempty"`

	key Key
}

// script is the top-level JSON structure for a control script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences injected key events and collision expectations
// across frames for headless replays. Attach to an Engine via SetScript.
//
// Actions: "press", "release" and "tap" take a key; "wait" takes frames;
// "expect_collision" and "expect_clear" check the most recent tick for
// a collision involving body (default 0).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	checks    []scriptStep
	failures  []string
}

// LoadScript parses a JSON control script and returns a ScriptRunner ready to
// be attached to an Engine via SetScript.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i := range s.Steps {
		st := &s.Steps[i]
		switch st.Action {
		case "press", "release", "tap":
			k, err := ParseKey(st.Key)
			if err != nil {
				return nil, fmt.Errorf("parse script: step %d: %w", i, err)
			}
			st.key = k
		case "wait", "expect_collision", "expect_clear":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a ScriptRunner to the engine. The runner advances once
// per Update call, before injected input is processed.
func (e *Engine) SetScript(runner *ScriptRunner) {
	e.script = runner
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Failures returns a description of every expectation that did not hold.
func (r *ScriptRunner) Failures() []string {
	return r.failures
}

// step advances the runner by one frame. Called from Engine.Update.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(e.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		e.InjectPress(st.key)
	case "release":
		e.InjectRelease(st.key)
	case "tap":
		e.InjectTap(st.key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect_collision", "expect_clear":
		r.checks = append(r.checks, st)
	}
}

// observe evaluates expectations queued this frame against the tick that
// just ran. Called from Engine.Update after Tick.
func (r *ScriptRunner) observe(e *Engine) {
	for _, st := range r.checks {
		want := st.Action == "expect_collision"
		if got := st.Body < len(e.bodies) && e.Colliding(st.Body); got != want {
			r.failures = append(r.failures, fmt.Sprintf(
				"tick %d: %s on body %d: colliding=%v", e.ticks, st.Action, st.Body, got))
		}
	}
	r.checks = r.checks[:0]

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(e.injectQueue) == 0 {
		r.done = true
	}
}
