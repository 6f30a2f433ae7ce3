package lander

import (
	"io"
	"os"
	"time"
)

// CollisionSink is the interface for optional collision reporting. When set
// on an Engine, a CollisionEvent is emitted for every colliding pair whose
// first body is marked with WithReportCollision.
type CollisionSink interface {
	EmitCollision(event CollisionEvent)
}

// CollisionEvent carries collision data for reporting consumers.
type CollisionEvent struct {
	// Tick is the number of completed ticks, counting the one that found the pair.
	Tick uint64
	// A and B are the indices of the pair in Engine.Bodies.
	A, B int
	// Centroids of both meshes after integration.
	CentroidA Position
	CentroidB Position
	// Velocity of body A after integration.
	VelocityA Vector
	// FixedB reports whether B is immovable (e.g. terrain).
	FixedB bool
}

// CollisionPair is an ordered pair of distinct overlapping bodies, by index
// into Engine.Bodies.
type CollisionPair struct {
	A, B int
}

// EngineConfig configures a new Engine. The zero value is a gravity-free
// engine using OverlapProjected.
type EngineConfig struct {
	// Gravity is the downward acceleration in m/s² applied to every dynamic
	// body on every tick. It is fixed for the engine's lifetime.
	Gravity float64
	// Overlap selects the per-axis overlap test used by the collision scan.
	Overlap OverlapMode
	// Sink receives collision events for reporting bodies. May be nil.
	Sink CollisionSink
	// Debug enables per-tick diagnostic logging.
	Debug bool
	// DebugOutput receives debug lines. Defaults to os.Stderr.
	DebugOutput io.Writer
	// Controls maps injected key events onto the player body.
	// The zero value uses DefaultThrust.
	Controls Controls
}

const defaultPairCap = 16

// Engine owns a set of rigid bodies and advances them through time.
//
// Bodies are identified by insertion order only. The engine is not safe for
// concurrent use; drive it from a single goroutine.
type Engine struct {
	bodies  []*RigidBody
	ga      float64
	overlap OverlapMode
	sink    CollisionSink

	debug            bool
	debugOut         io.Writer
	debugWarnedCount bool

	ticks      uint64
	collisions []CollisionPair
	axes       axisBuffers

	controls    Controls
	injectQueue []KeyEvent
	script      *ScriptRunner
}

// NewEngine creates an engine with no bodies.
func NewEngine(cfg EngineConfig) *Engine {
	out := cfg.DebugOutput
	if out == nil {
		out = os.Stderr
	}
	return &Engine{
		ga:         cfg.Gravity,
		overlap:    cfg.Overlap,
		sink:       cfg.Sink,
		debug:      cfg.Debug,
		debugOut:   out,
		collisions: make([]CollisionPair, 0, defaultPairCap),
		controls:   cfg.Controls,
	}
}

// Gravity returns the engine's gravitational acceleration.
func (e *Engine) Gravity() float64 {
	return e.ga
}

// AddBody appends b to the engine, which takes ownership of it.
func (e *Engine) AddBody(b *RigidBody) {
	if b == nil {
		return
	}
	e.bodies = append(e.bodies, b)
	if e.debug {
		debugCheckBodyCount(e)
	}
}

// AddBodies appends every body in bs.
func (e *Engine) AddBodies(bs ...*RigidBody) {
	for _, b := range bs {
		e.AddBody(b)
	}
}

// Bodies returns the engine's bodies in insertion order. The slice is the
// engine's own storage and MUST NOT be resliced or appended to; the bodies
// themselves may be mutated through their methods.
func (e *Engine) Bodies() []*RigidBody {
	return e.bodies
}

// Body returns the body at index i.
func (e *Engine) Body(i int) *RigidBody {
	return e.bodies[i]
}

// NumBodies returns the number of bodies.
func (e *Engine) NumBodies() int {
	return len(e.bodies)
}

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// SetCollisionSink sets the optional collision reporting sink.
func (e *Engine) SetCollisionSink(sink CollisionSink) {
	e.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, collisions of
// reporting bodies and per-tick timing stats are written to the debug output.
func (e *Engine) SetDebugMode(enabled bool) {
	wasEnabled := e.debug
	e.debug = enabled
	if enabled && !wasEnabled {
		e.debugWarnedCount = false
		debugCheckBodyCount(e)
	}
}

// Tick advances every dynamic body by dt seconds and then scans every ordered
// pair of distinct bodies for overlap. Collisions are detected only; no
// response is applied. The returned slice is reused by the next call.
func (e *Engine) Tick(dt float64) []CollisionPair {
	var stats debugStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	for _, b := range e.bodies {
		if b.integrate(e.ga, dt) {
			stats.moved++
		}
	}

	if e.debug {
		stats.integrateTime = time.Since(t0)
		t0 = time.Now()
	}

	e.scan()
	e.ticks++

	if e.debug {
		stats.scanTime = time.Since(t0)
		stats.pairCount = len(e.collisions)
	}

	e.report()

	if e.debug {
		e.debugLog(stats)
	}
	return e.collisions
}

// Collisions returns the pairs found by the most recent Tick. The slice is
// reused by the next call.
func (e *Engine) Collisions() []CollisionPair {
	return e.collisions
}

// Colliding reports whether body i took part in any pair during the most
// recent Tick.
func (e *Engine) Colliding(i int) bool {
	for _, p := range e.collisions {
		if p.A == i || p.B == i {
			return true
		}
	}
	return false
}

// scan tests the full cross product of bodies, excluding self pairs.
func (e *Engine) scan() {
	e.collisions = e.collisions[:0]
	for i, a := range e.bodies {
		for j, b := range e.bodies {
			if i == j {
				continue
			}
			if e.axes.noSeparatingAxis(a.mesh, b.mesh, e.overlap) &&
				e.axes.noSeparatingAxis(b.mesh, a.mesh, e.overlap) {
				e.collisions = append(e.collisions, CollisionPair{A: i, B: j})
			}
		}
	}
}

// report forwards pairs led by reporting bodies to the sink and debug log.
func (e *Engine) report() {
	if e.sink == nil && !e.debug {
		return
	}
	for _, p := range e.collisions {
		a := e.bodies[p.A]
		if !a.reportCollision {
			continue
		}
		b := e.bodies[p.B]
		ev := CollisionEvent{
			Tick:      e.ticks,
			A:         p.A,
			B:         p.B,
			CentroidA: a.Centroid(),
			CentroidB: b.Centroid(),
			VelocityA: a.velocity,
			FixedB:    b.fixed,
		}
		if e.sink != nil {
			e.sink.EmitCollision(ev)
		}
		if e.debug {
			e.debugCollision(ev)
		}
	}
}

// Update runs one frame for real-time hosts: it advances the attached
// script, applies at most one injected key event to the player body, and
// then ticks by dt.
func (e *Engine) Update(dt float64) []CollisionPair {
	if e.script != nil {
		e.script.step(e)
	}
	e.processInjected()
	collisions := e.Tick(dt)
	if e.script != nil {
		e.script.observe(e)
	}
	return collisions
}

// Player returns the body driven by injected input: the first body marked
// for collision reporting, or the first body if none is. Returns nil for an
// empty engine.
func (e *Engine) Player() (*RigidBody, int) {
	for i, b := range e.bodies {
		if b.reportCollision {
			return b, i
		}
	}
	if len(e.bodies) == 0 {
		return nil, -1
	}
	return e.bodies[0], 0
}
