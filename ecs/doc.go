// Package ecs provides ECS adapters for bramble's synchronized actions.
//
// The primary adapter is [NewDonburiSink], which publishes every resolved
// control action into a [Donburi] world as a typed event. Subscribe to
// [ActionEventType] in your ECS systems to react to confirmed player
// actions without coupling game logic to the UI layer.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	hub.SetActionSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
