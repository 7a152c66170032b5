package bramble

import (
	"github.com/phanxgames/willow"
)

// SyncState tracks where a control's current action sits in the
// dispatch/confirmation protocol.
type SyncState uint8

const (
	SyncIdle     SyncState = iota // ready to accept a press
	SyncSending                   // action dispatched, awaiting confirmation
	SyncReceived                  // action confirmed; terminal until Reactivate
)

// String returns the state name for debug output.
func (s SyncState) String() string {
	switch s {
	case SyncIdle:
		return "idle"
	case SyncSending:
		return "sending"
	case SyncReceived:
		return "received"
	default:
		return "unknown"
	}
}

// Mode selects how a control's action resolves. It is fixed per control at
// construction time; there is no process-wide mode flag.
type Mode uint8

const (
	// ModeLocal resolves actions synchronously inside Send. There is no other
	// participant to agree with, so no round trip occurs.
	ModeLocal Mode = iota
	// ModeLockstep broadcasts the action on the shared message stream and
	// waits for the sender's own echo before resolving.
	ModeLockstep
)

// KindSubmit is the message kind broadcast when a control dispatches its
// action.
const KindSubmit = "submit"

// Message is one entry in the platform's globally ordered message stream.
// Every participant, including the sender, receives every message in the
// same order.
type Message struct {
	Kind       string // KindSubmit for control actions
	Identifier string // control name; unique per screen
	Sender     string // participant id tagged by the transport
	Payload    any
}

// Bus is the broadcast side of the platform's lockstep transport. Raise
// publishes a message to all participants; the transport tags the sender and
// eventually delivers the echo back through [Hub.Deliver]. Delivery order is
// the platform's responsibility and is assumed to be identical everywhere.
type Bus interface {
	Raise(msg Message)
	Self() string
}

// ActionEvent describes a resolved synchronized action. Events are forwarded
// to an optional [ActionSink] (see the ecs subpackage for a donburi-backed
// sink).
type ActionEvent struct {
	Identifier string
	Sender     string
	Payload    any
}

// ActionSink receives resolved action events from a [Hub].
type ActionSink interface {
	EmitAction(event ActionEvent)
}

// Renderer is the capability contract a concrete control supplies to
// [Control]. Control owns the protocol and no visuals; the renderer owns the
// visuals and no protocol.
type Renderer interface {
	// Build constructs the control's visual sub-elements under root, once,
	// at creation time. It should also set root's HitShape.
	Build(root *willow.Node)
	// SetPressed reflects press feedback. Called on every accepted press and
	// release.
	SetPressed(pressed bool)
	// SetSyncState reflects protocol feedback. Called on every transition,
	// including the reset back to SyncIdle on reactivation.
	SetSyncState(state SyncState)
}

// Config carries the construction-time environment for a control.
type Config struct {
	Mode Mode

	// Hub correlates broadcast actions with their echoes.
	// Required in ModeLockstep.
	Hub *Hub

	// Scene, when set, lets controls capture the pressing pointer so a
	// release outside the control's bounds still terminates the press.
	Scene *willow.Scene

	// Overlay is the node the input shield is raised under while a lockstep
	// action is in flight, normally the screen root.
	// Required in ModeLockstep.
	Overlay *willow.Node

	// Bounds is the area the input shield covers, normally the full screen.
	Bounds willow.Rect
}
