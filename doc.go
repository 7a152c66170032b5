// Package bramble provides lockstep-safe interactive UI controls for
// [willow] games.
//
// In a lockstep (deterministic) multiplayer game every participant's client
// executes the same globally ordered event stream, so there is no server to
// arbitrate individual taps. Bramble's core primitive, [Control], makes a
// locally triggered action behave consistently under that model: a press is
// owned by a single pointer, an accepted release dispatches the action at
// most once, and in lockstep mode the action is only confirmed when the
// client's own broadcast echoes back through the shared message stream.
// While the echo is outstanding, a full-screen [Shield] blocks further input
// on the screen.
//
// Concrete controls ([Button], [Toggle], [RadioGroup]) and the modal
// [Dialog] are built on Control and never bypass its state machine.
//
// # Quick start
//
// Local (single participant) controls resolve synchronously:
//
//	theme := bramble.DefaultTheme()
//	cfg := bramble.Config{Mode: bramble.ModeLocal}
//	btn := bramble.NewButton("play", "Play", "play", 160, 44, cfg, theme)
//	btn.Control().OnComplete(func(string) { startGame() })
//	scene.Root().AddChild(btn.Node())
//
// Lockstep controls need a [Hub] wired to the platform's ordered message
// stream, plus an overlay node for the input shield:
//
//	hub := bramble.NewHub(platformBus) // platform calls hub.Deliver in order
//	cfg := bramble.Config{
//		Mode:    bramble.ModeLockstep,
//		Hub:     hub,
//		Scene:   scene,
//		Overlay: scene.Root(),
//		Bounds:  willow.Rect{Width: 640, Height: 480},
//	}
//
// For tests and same-machine play, [Loopback] provides a deterministic
// in-process wire whose Flush delivers every raised message to every
// participant, including the sender, in a single global order.
//
// Call Update(dt) on controls each frame (there is no global animation
// manager, matching willow's tween model).
//
// [willow]: https://github.com/phanxgames/willow
package bramble
