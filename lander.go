package lander

import (
	"strconv"

	"github.com/golang/geo/r2"
)

// Position is a point in world space, in meters. Y increases upward.
// Positions compare with == (exact floating-point equality).
type Position struct {
	X, Y float64
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y float64) Position {
	return Position{X: x, Y: y}
}

// String renders the position as (x,y).
func (p Position) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + "," + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Vector is a 2D velocity (m/s) or acceleration (m/s²).
type Vector struct {
	X, Y float64
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// OverlapMode selects how the separating axis test compares projections.
type OverlapMode uint8

const (
	// OverlapProjected projects vertices onto the axis line and compares the
	// x and y extents of the projected points independently.
	OverlapProjected OverlapMode = iota
	// OverlapScalar reduces every vertex to its signed distance along the axis
	// and compares the resulting 1D intervals.
	OverlapScalar
)

// String returns the mode name.
func (m OverlapMode) String() string {
	switch m {
	case OverlapProjected:
		return "projected"
	case OverlapScalar:
		return "scalar"
	default:
		return "OverlapMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Key identifies a control input understood by Controls.
type Key uint8

const (
	KeyOther        Key = iota // anything not mapped to a thruster; resets the net force
	KeyMainThruster            // main (downward-facing) thruster
	KeyLeft                    // left thruster, pushes the body right
	KeyRight                   // right thruster, pushes the body left
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyMainThruster:
		return "main"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "other"
	}
}

// KeyEvent is a discrete press or release of a control key.
type KeyEvent struct {
	Key     Key
	Pressed bool
}

// meshBounds returns the axis-aligned box around the given vertices.
func meshBounds(mesh []Position) r2.Rect {
	if len(mesh) == 0 {
		return r2.EmptyRect()
	}
	pts := make([]r2.Point, len(mesh))
	for i, p := range mesh {
		pts[i] = r2.Point{X: p.X, Y: p.Y}
	}
	return r2.RectFromPoints(pts...)
}
