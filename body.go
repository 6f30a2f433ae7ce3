package lander

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

var (
	// ErrInvalidMass is returned when a dynamic body is given a mass that is
	// not a positive finite number.
	ErrInvalidMass = errors.New("lander: mass must be positive and finite")
	// ErrEmptyMesh is returned when a body is constructed without vertices.
	ErrEmptyMesh = errors.New("lander: mesh has no vertices")
	// ErrInvalidVertex is returned when a mesh vertex is NaN or infinite.
	ErrInvalidVertex = errors.New("lander: mesh vertex is not finite")
)

// RigidBody is a convex polygon that translates under gravity and applied
// forces. It never rotates.
//
// Mesh vertices are stored in world space in a consistent winding order; the
// last vertex implicitly connects back to the first.
type RigidBody struct {
	mass         float64
	mesh         []Position
	acceleration Vector
	velocity     Vector

	fixed           bool
	reportCollision bool
}

// BodyOption configures a body at construction time.
type BodyOption func(*RigidBody)

// WithReportCollision marks the body for collision reporting. The engine
// emits a CollisionEvent for every pair that starts with such a body.
func WithReportCollision() BodyOption {
	return func(b *RigidBody) {
		b.reportCollision = true
	}
}

// StillBody returns a dynamic body at rest with the given mass and mesh.
// The mesh is copied.
func StillBody(mass float64, mesh []Position, opts ...BodyOption) (*RigidBody, error) {
	if mass <= 0 || math.IsNaN(mass) || math.IsInf(mass, 0) {
		return nil, fmt.Errorf("still body mass %v: %w", mass, ErrInvalidMass)
	}
	if err := validateMesh(mesh); err != nil {
		return nil, fmt.Errorf("still body: %w", err)
	}
	b := &RigidBody{
		mass: mass,
		mesh: append([]Position(nil), mesh...),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// FixedBody returns an immovable body. Gravity and forces never apply to it.
// The mesh is copied.
func FixedBody(mesh []Position, opts ...BodyOption) (*RigidBody, error) {
	if err := validateMesh(mesh); err != nil {
		return nil, fmt.Errorf("fixed body: %w", err)
	}
	b := &RigidBody{
		mesh:  append([]Position(nil), mesh...),
		fixed: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// MustStillBody is like StillBody but panics on invalid input.
func MustStillBody(mass float64, mesh []Position, opts ...BodyOption) *RigidBody {
	b, err := StillBody(mass, mesh, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// MustFixedBody is like FixedBody but panics on invalid input.
func MustFixedBody(mesh []Position, opts ...BodyOption) *RigidBody {
	b, err := FixedBody(mesh, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func validateMesh(mesh []Position) error {
	if len(mesh) == 0 {
		return ErrEmptyMesh
	}
	for i, p := range mesh {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("vertex %d %v: %w", i, p, ErrInvalidVertex)
		}
	}
	return nil
}

// ApplyForce adds f/mass to the body's acceleration. Forces persist until
// an opposite force is applied, so a key press adds a force and the matching
// release subtracts it. No-op on fixed bodies.
func (b *RigidBody) ApplyForce(fx, fy float64) {
	if b.fixed {
		return
	}
	b.acceleration.X += fx / b.mass
	b.acceleration.Y += fy / b.mass
}

// SetResultingForce replaces the body's acceleration with f/mass, discarding
// every force applied so far. No-op on fixed bodies.
func (b *RigidBody) SetResultingForce(fx, fy float64) {
	if b.fixed {
		return
	}
	b.acceleration.X = fx / b.mass
	b.acceleration.Y = fy / b.mass
}

// Translate moves every vertex by (dx, dy). No-op on fixed bodies.
func (b *RigidBody) Translate(dx, dy float64) {
	if b.fixed {
		return
	}
	b.translate(dx, dy)
}

func (b *RigidBody) translate(dx, dy float64) {
	for i := range b.mesh {
		b.mesh[i].X += dx
		b.mesh[i].Y += dy
	}
}

// SetReportCollision sets whether the engine reports this body's collisions.
func (b *RigidBody) SetReportCollision(report bool) {
	b.reportCollision = report
}

// Mass returns the body's mass. Fixed bodies report 0.
func (b *RigidBody) Mass() float64 { return b.mass }

// Mesh returns the body's vertices. The returned slice is the body's own
// storage and MUST NOT be mutated; use Translate to move the body.
func (b *RigidBody) Mesh() []Position { return b.mesh }

// Velocity returns the current velocity.
func (b *RigidBody) Velocity() Vector { return b.velocity }

// Acceleration returns the acceleration from applied forces, excluding gravity.
func (b *RigidBody) Acceleration() Vector { return b.acceleration }

// Fixed reports whether the body is immovable.
func (b *RigidBody) Fixed() bool { return b.fixed }

// ReportsCollision reports whether the body is marked for collision reporting.
func (b *RigidBody) ReportsCollision() bool { return b.reportCollision }

// Centroid returns the mean of the body's vertices.
func (b *RigidBody) Centroid() Position {
	var c Position
	for _, p := range b.mesh {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(b.mesh))
	return Position{X: c.X / n, Y: c.Y / n}
}

// Bounds returns the axis-aligned box around the body's mesh.
func (b *RigidBody) Bounds() r2.Rect {
	return meshBounds(b.mesh)
}

// integrate advances the body by dt under gravity ga using the trapezoidal
// rule: v1 = v0 + a*dt, s = dt/2 * (v0 + v1). Reports whether the body moved.
func (b *RigidBody) integrate(ga, dt float64) bool {
	if b.fixed {
		return false
	}
	ax := b.acceleration.X
	ay := b.acceleration.Y - ga
	vx := b.velocity.X + ax*dt
	vy := b.velocity.Y + ay*dt
	sx := (dt / 2) * (vx + b.velocity.X)
	sy := (dt / 2) * (vy + b.velocity.Y)
	b.velocity = Vector{X: vx, Y: vy}
	b.translate(sx, sy)
	return sx != 0 || sy != 0
}
