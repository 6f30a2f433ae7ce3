// Package lander is a small 2D physics core for convex polygon bodies: it
// integrates translation under gravity and applied forces and detects
// collisions with the separating axis theorem.
//
// # Quick start
//
//	engine := lander.NewEngine(lander.EngineConfig{Gravity: 1.625})
//	ship := lander.MustStillBody(10, []lander.Position{
//		{X: 49, Y: 100}, {X: 51, Y: 100}, {X: 51, Y: 98}, {X: 49, Y: 98},
//	}, lander.WithReportCollision())
//	engine.AddBody(ship)
//
//	surface, _ := lander.GenerateTerrain(rng, lander.TerrainConfig{})
//	ground, _ := lander.TerrainBodies(surface)
//	engine.AddBodies(ground...)
//
//	for {
//		pairs := engine.Tick(1.0 / 60)
//		// ...
//	}
//
// # Bodies
//
// A [RigidBody] is created with [StillBody] (dynamic, at rest) or [FixedBody]
// (immovable). Forces persist: [RigidBody.ApplyForce] accumulates and
// [RigidBody.SetResultingForce] replaces. Bodies translate only; there is no
// rotation, friction, or restitution.
//
// # Integration
//
// [Engine.Tick] updates velocity first and moves each body by the average of
// its old and new velocity, which is exact for uniformly accelerated motion.
//
// # Collisions
//
// After integration every ordered pair of distinct bodies is tested with
// [Collided]. Results are reported only; bodies are never pushed apart. The
// scan is O(n²). Bodies marked with [WithReportCollision] forward their pairs
// to a [CollisionSink] (see the ecs sub-package for a Donburi adapter).
//
// # Coordinates
//
// World space is meters with Y up. [Viewport] maps it to pixels with Y down
// for the render sub-package.
package lander
