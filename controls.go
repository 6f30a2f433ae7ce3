package lander

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultThrust is the force in newtons each thruster applies.
const DefaultThrust = 100.0

// Controls translates discrete key events into thruster forces on a body.
// Press adds a force and release subtracts the same force, so the net force
// is zero when no key is held. The zero value uses DefaultThrust.
type Controls struct {
	// Thrust is the force magnitude per thruster in newtons.
	Thrust float64
}

func (c Controls) thrust() float64 {
	if c.Thrust == 0 {
		return DefaultThrust
	}
	return c.Thrust
}

// Handle applies ev to body. Keys without a thruster reset the body's net
// force to zero. A nil body is ignored.
func (c Controls) Handle(body *RigidBody, ev KeyEvent) {
	if body == nil {
		return
	}
	f := c.thrust()
	if !ev.Pressed {
		f = -f
	}
	switch ev.Key {
	case KeyMainThruster:
		body.ApplyForce(0, f)
	case KeyRight:
		body.ApplyForce(-f, 0)
	case KeyLeft:
		body.ApplyForce(f, 0)
	default:
		body.SetResultingForce(0, 0)
	}
}

// ParseKey maps a key name ("main", "left", "right", "other") to a Key.
// The empty name is an error.
func ParseKey(name string) (Key, error) {
	switch strings.ToLower(name) {
	case "main":
		return KeyMainThruster, nil
	case "left":
		return KeyLeft, nil
	case "right":
		return KeyRight, nil
	case "other":
		return KeyOther, nil
	case "":
		return KeyOther, errors.New("missing key name")
	}
	return KeyOther, fmt.Errorf("unknown key %q", name)
}
