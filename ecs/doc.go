// Package ecs provides ECS adapters for lander's collision reporting.
//
// The primary adapter is [NewDonburiSink], which bridges lander collision
// events into a [Donburi] world as typed events. Subscribe to
// [CollisionEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	engine.SetCollisionSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
