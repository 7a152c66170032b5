package ecs

import (
	"github.com/phanxgames/bramble"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ActionEventType is the Donburi event type for resolved bramble actions.
// Subscribe to this in your ECS systems to react to confirmed player actions.
var ActionEventType = events.NewEventType[bramble.ActionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an ActionSink backed by a Donburi world. Resolved
// actions are published to ActionEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) bramble.ActionSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitAction(event bramble.ActionEvent) {
	ActionEventType.Publish(s.world, event)
}
