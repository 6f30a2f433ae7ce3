package lander

import (
	"math"
	"testing"
)

const epsTest = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// --- Position ---

func TestPositionString(t *testing.T) {
	tests := []struct {
		p    Position
		want string
	}{
		{Pos(0, 0), "(0,0)"},
		{Pos(1.5, -2), "(1.5,-2)"},
		{Pos(99.1875, 100), "(99.1875,100)"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPositionExactEquality(t *testing.T) {
	// Variables, not constants: constant arithmetic is exact.
	a, b := 0.1, 0.2
	if Pos(a+b, 0) == Pos(0.3, 0) {
		t.Error("positions must compare without epsilon")
	}
	if Pos(1, 2) != Pos(1, 2) {
		t.Error("identical positions must be equal")
	}
}

// --- Enum constant values (catch accidental iota drift) ---

func TestEnumValues(t *testing.T) {
	if OverlapProjected != 0 || OverlapScalar != 1 {
		t.Errorf("OverlapMode values drifted: %d %d", OverlapProjected, OverlapScalar)
	}
	if KeyOther != 0 || KeyMainThruster != 1 || KeyLeft != 2 || KeyRight != 3 {
		t.Errorf("Key values drifted: %d %d %d %d", KeyOther, KeyMainThruster, KeyLeft, KeyRight)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{OverlapProjected.String(), "projected"},
		{OverlapScalar.String(), "scalar"},
		{OverlapMode(7).String(), "OverlapMode(7)"},
		{KeyMainThruster.String(), "main"},
		{KeyLeft.String(), "left"},
		{KeyRight.String(), "right"},
		{KeyOther.String(), "other"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

// --- meshBounds ---

func TestMeshBounds(t *testing.T) {
	r := meshBounds([]Position{{1, 1}, {3, 1}, {2, 3}})
	if r.X.Lo != 1 || r.X.Hi != 3 || r.Y.Lo != 1 || r.Y.Hi != 3 {
		t.Errorf("meshBounds = %v, want [1,3]x[1,3]", r)
	}
	if !meshBounds(nil).IsEmpty() {
		t.Error("meshBounds(nil) should be empty")
	}
}
