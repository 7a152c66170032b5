package ecs

import (
	"testing"

	"github.com/phanxgames/bramble"
	"github.com/phanxgames/willow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newOverlay() *willow.Node {
	return willow.NewContainer("overlay")
}

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitAction(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []bramble.ActionEvent
	ActionEventType.Subscribe(world, func(w donburi.World, e bramble.ActionEvent) {
		received = append(received, e)
	})

	sink.EmitAction(bramble.ActionEvent{
		Identifier: "join",
		Sender:     "p1",
		Payload:    "table-3",
	})
	sink.EmitAction(bramble.ActionEvent{
		Identifier: "ready",
		Sender:     "p1",
		Payload:    true,
	})

	// Events are queued — process them.
	ActionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Identifier != "join" || received[0].Payload != "table-3" {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Identifier != "ready" || received[1].Payload != true {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_ImplementsActionSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink bramble.ActionSink = NewDonburiSink(world)
	_ = sink // compile-time interface check
}

func TestDonburiSink_HubForwarding(t *testing.T) {
	world := donburi.NewWorld()

	wire := bramble.NewLoopback()
	hub := wire.NewHub("p1")
	hub.SetActionSink(NewDonburiSink(world))

	var count int
	ActionEventType.Subscribe(world, func(w donburi.World, e bramble.ActionEvent) {
		count++
	})

	// A delivered own-echo submit should flow through to the world.
	theme := bramble.DefaultTheme()
	overlay := newOverlay()
	cfg := bramble.Config{
		Mode:    bramble.ModeLockstep,
		Hub:     hub,
		Overlay: overlay,
	}
	btn := bramble.NewButton("ready", "Ready", "ready", 160, 44, cfg, theme)
	btn.Control().Send()
	wire.Flush()

	events.ProcessAllEvents(world)

	if count != 1 {
		t.Errorf("expected 1 forwarded action, got %d", count)
	}
}
