package lander

import "testing"

func TestInjectTap(t *testing.T) {
	e := pointEngine(10)

	e.InjectTap(KeyMainThruster)
	if e.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", e.Pending())
	}

	// Frame 1: press. Thrust cancels gravity.
	e.Update(1)
	if e.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", e.Pending())
	}
	if got := e.Body(0).Mesh()[0]; got != (Position{100, 100}) {
		t.Errorf("after press frame: %v, want (100,100)", got)
	}

	// Frame 2: release. Free fall resumes.
	e.Update(1)
	if e.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", e.Pending())
	}
	if got := e.Body(0).Mesh()[0]; got != (Position{100, 95}) {
		t.Errorf("after release frame: %v, want (100,95)", got)
	}
}

func TestInjectTargetsReportingBody(t *testing.T) {
	e := NewEngine(EngineConfig{})
	e.AddBody(MustFixedBody(square(0, 0, 1)))
	ship := MustStillBody(10, square(5, 5, 1), WithReportCollision())
	e.AddBody(ship)

	e.InjectPress(KeyLeft)
	e.Update(0)
	if got := ship.Acceleration(); got != (Vector{10, 0}) {
		t.Errorf("ship Acceleration = %v, want (10,0)", got)
	}
}

func TestInjectEmptyEngine(t *testing.T) {
	e := NewEngine(EngineConfig{})
	e.InjectPress(KeyMainThruster)
	e.Update(1) // must not panic
	if e.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", e.Pending())
	}
}

func TestHandleKeyImmediate(t *testing.T) {
	e := pointEngine(0)
	e.HandleKey(KeyEvent{Key: KeyRight, Pressed: true})
	if got := e.Body(0).Acceleration(); got != (Vector{-10, 0}) {
		t.Errorf("Acceleration = %v, want (-10,0)", got)
	}
}

func TestEngineCustomThrust(t *testing.T) {
	e := NewEngine(EngineConfig{Controls: Controls{Thrust: 50}})
	e.AddBody(MustStillBody(10, square(0, 0, 1)))
	e.HandleKey(KeyEvent{Key: KeyMainThruster, Pressed: true})
	if got := e.Body(0).Acceleration(); got != (Vector{0, 5}) {
		t.Errorf("Acceleration = %v, want (0,5)", got)
	}
}
