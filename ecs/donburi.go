// Package ecs provides ECS adapters for lander.
package ecs

import (
	"github.com/phanxgames/lander"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CollisionEventType is the Donburi event type for lander collision events.
// Subscribe to this in your ECS systems to receive collisions of bodies
// marked with lander.WithReportCollision.
var CollisionEventType = events.NewEventType[lander.CollisionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates a CollisionSink backed by a Donburi world.
// Collision events are published to CollisionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) lander.CollisionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCollision(event lander.CollisionEvent) {
	CollisionEventType.Publish(s.world, event)
}
