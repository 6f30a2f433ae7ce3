package lander

import (
	"fmt"
	"time"
)

// debugStats holds per-tick timing and scan metrics.
// Only populated when the engine is in debug mode.
type debugStats struct {
	integrateTime time.Duration
	scanTime      time.Duration
	moved         int
	pairCount     int
}

// debugLog prints timing and scan stats to the debug output.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	_, _ = fmt.Fprintf(e.debugOut,
		"[lander] tick %d | integrate: %v | scan: %v | total: %v\n",
		e.ticks, stats.integrateTime, stats.scanTime, stats.integrateTime+stats.scanTime)
	_, _ = fmt.Fprintf(e.debugOut,
		"[lander] bodies: %d | moved: %d | colliding pairs: %d\n",
		len(e.bodies), stats.moved, stats.pairCount)
}

// debugCollision prints one reported collision.
func (e *Engine) debugCollision(ev CollisionEvent) {
	kind := "dynamic"
	if ev.FixedB {
		kind = "fixed"
	}
	_, _ = fmt.Fprintf(e.debugOut,
		"[lander] collision tick %d: body %d at %v (v=%.3f,%.3f) with %s body %d at %v\n",
		ev.Tick, ev.A, ev.CentroidA, ev.VelocityA.X, ev.VelocityA.Y, kind, ev.B, ev.CentroidB)
}

// debugMaxBodies is the body count above which the O(n²) scan gets a warning.
const debugMaxBodies = 500

// debugCheckBodyCount warns once per debug session when the engine holds
// more than debugMaxBodies bodies.
func debugCheckBodyCount(e *Engine) {
	if e.debugWarnedCount || len(e.bodies) <= debugMaxBodies {
		return
	}
	e.debugWarnedCount = true
	_, _ = fmt.Fprintf(e.debugOut,
		"[lander] warning: %d bodies exceeds %d; the pairwise scan is quadratic\n",
		len(e.bodies), debugMaxBodies)
}
