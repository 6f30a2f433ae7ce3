package lander

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugCollisionLine(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(EngineConfig{Gravity: 10, Debug: true, DebugOutput: &buf})
	e.AddBody(MustStillBody(10, square(1, 1, 1), WithReportCollision()))
	e.AddBody(MustFixedBody(square(0, 2, 4)))

	e.Tick(0)
	out := buf.String()
	if !strings.Contains(out, "[lander] collision tick 1: body 0") {
		t.Errorf("missing collision line in %q", out)
	}
	if !strings.Contains(out, "with fixed body 1") {
		t.Errorf("collision line should name the fixed body, got %q", out)
	}
}

func TestDebugSilentForNonReporting(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(EngineConfig{Debug: true, DebugOutput: &buf})
	e.AddBody(MustStillBody(10, square(1, 1, 1)))
	e.AddBody(MustFixedBody(square(0, 2, 4)))

	e.Tick(0)
	if strings.Contains(buf.String(), "collision tick") {
		t.Errorf("non-reporting body should not log collisions: %q", buf.String())
	}
}

func TestDebugBodyCountWarning(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(EngineConfig{Debug: true, DebugOutput: &buf})
	for i := 0; i <= debugMaxBodies; i++ {
		e.AddBody(MustFixedBody([]Position{{float64(i), 0}}))
	}
	if got := strings.Count(buf.String(), "warning"); got != 1 {
		t.Errorf("expected exactly 1 warning, got %d in %q", got, buf.String())
	}

	e.AddBody(MustFixedBody([]Position{{-1, 0}}))
	if got := strings.Count(buf.String(), "warning"); got != 1 {
		t.Errorf("warning should fire once, got %d", got)
	}
}

func TestDebugBodyCountWarningOnEnable(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(EngineConfig{DebugOutput: &buf})
	for i := 0; i < debugMaxBodies+10; i++ {
		e.AddBody(MustFixedBody([]Position{{float64(i), 0}}))
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output before enabling debug, got %q", buf.String())
	}

	e.SetDebugMode(true)
	if got := strings.Count(buf.String(), "warning"); got != 1 {
		t.Errorf("expected 1 warning on enable, got %d in %q", got, buf.String())
	}
	e.SetDebugMode(true)
	if got := strings.Count(buf.String(), "warning"); got != 1 {
		t.Errorf("re-enabling should not warn again, got %d", got)
	}
}

func TestDebugDisabledWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	e := NewEngine(EngineConfig{DebugOutput: &buf})
	for i := 0; i <= debugMaxBodies; i++ {
		e.AddBody(MustFixedBody([]Position{{float64(i), 0}}))
	}
	e.Tick(1)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
