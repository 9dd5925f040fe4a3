// Package ecs provides ECS adapters for isometric.
package ecs

import (
	"github.com/phanxgames/isometric"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEventType is the Donburi event type for tile selection changes.
var SelectionEventType = events.NewEventType[isometric.SelectionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Selection events are published to SelectionEventType and delivered by
// ProcessEvents.
func NewDonburiStore(world donburi.World) isometric.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitSelection(event isometric.SelectionEvent) {
	SelectionEventType.Publish(s.world, event)
}
