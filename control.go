package bramble

import (
	"github.com/phanxgames/willow"
)

// noPointer marks a control with no owning pointer.
const noPointer = -1

// Control is the synchronized action primitive every interactive bramble
// widget is built on. It implements press tracking with exclusive pointer
// ownership, the Idle → Sending → Received sync machine, and the two-mode
// completion protocol (synchronous in ModeLocal, echo round trip in
// ModeLockstep).
//
// A Control carries a payload of type T that is delivered to the completion
// callback when the action resolves. The payload is mutable between presses
// (a Toggle flips it to represent "next state").
//
// Controls are one-shot by default: once an action resolves, further presses
// are ignored until Reactivate is called. This is what prevents double
// submission during the latency window between the optimistic Sending
// transition and its confirmation.
//
// All invalid transitions (press while not idle, release from a non-owning
// pointer, duplicate echoes, ...) are silently ignored; nothing on the hot
// path errors or panics.
type Control[T any] struct {
	name    string
	payload T
	cfg     Config

	state   SyncState
	pressed bool
	pointer int // owning pointer id; noPointer when not pressed

	renderer     Renderer
	onComplete   func(T)
	onSyncChange func(SyncState)

	root     *willow.Node
	shield   *Shield
	disposed bool
}

// NewControl creates a control named name carrying payload. The renderer
// builds the visuals once under the control's root node; name is the message
// identifier in lockstep mode and MUST be unique within the screen.
//
// Panics on an empty name, a nil renderer, or a lockstep config missing its
// hub or overlay — these are construction bugs, not runtime conditions.
func NewControl[T any](name string, payload T, r Renderer, cfg Config) *Control[T] {
	if name == "" {
		panic("bramble: control name must not be empty")
	}
	if r == nil {
		panic("bramble: control requires a renderer")
	}
	if cfg.Mode == ModeLockstep {
		if cfg.Hub == nil {
			panic("bramble: lockstep control requires a hub")
		}
		if cfg.Overlay == nil {
			panic("bramble: lockstep control requires an overlay node")
		}
	}

	c := &Control[T]{
		name:     name,
		payload:  payload,
		cfg:      cfg,
		renderer: r,
		pointer:  noPointer,
	}

	root := willow.NewContainer(name)
	root.Interactable = true
	c.root = root
	r.Build(root)

	root.OnPointerDown = func(ctx willow.PointerContext) { c.Press(ctx.PointerID) }
	root.OnPointerUp = func(ctx willow.PointerContext) { c.Release(ctx.PointerID) }

	return c
}

// Node returns the control's root scene node. Add it to a screen to make the
// control interactive.
func (c *Control[T]) Node() *willow.Node {
	return c.root
}

// Name returns the control's identifier.
func (c *Control[T]) Name() string {
	return c.name
}

// State returns the current sync state.
func (c *Control[T]) State() SyncState {
	return c.state
}

// Pressed reports whether a pointer currently holds the control pressed.
func (c *Control[T]) Pressed() bool {
	return c.pressed
}

// Payload returns the value the next resolved action will deliver.
func (c *Control[T]) Payload() T {
	return c.payload
}

// SetPayload replaces the value carried by the next action.
func (c *Control[T]) SetPayload(payload T) {
	c.payload = payload
}

// OnComplete registers the completion callback, invoked exactly once per
// resolved action with the resolved payload.
func (c *Control[T]) OnComplete(fn func(T)) {
	c.onComplete = fn
}

// OnSyncChange registers a notification fired on every sync state
// transition. Composites use this for cosmetic feedback (a Dialog dims its
// chrome while a button is Sending); it carries no protocol obligations.
func (c *Control[T]) OnSyncChange(fn func(SyncState)) {
	c.onSyncChange = fn
}

// Press begins a press owned by pointerID. Ignored unless the control is
// idle and unpressed; a second pointer's down event while pressed changes
// nothing — only the owning pointer may terminate the press.
func (c *Control[T]) Press(pointerID int) {
	if c.disposed || c.state != SyncIdle || c.pressed {
		return
	}
	c.pressed = true
	c.pointer = pointerID
	c.renderer.SetPressed(true)
	if c.cfg.Scene != nil {
		// Route the rest of this pointer's interaction to us so a release
		// outside our bounds still ends the press. Willow drops the capture
		// automatically on pointer up.
		c.cfg.Scene.CapturePointer(pointerID, c.root)
	}
}

// Release ends the press and dispatches the action. Ignored while not
// pressed, while not idle, or when pointerID is not the pointer that pressed.
func (c *Control[T]) Release(pointerID int) {
	if c.disposed || c.state != SyncIdle || !c.pressed || pointerID != c.pointer {
		return
	}
	c.pressed = false
	c.pointer = noPointer
	c.renderer.SetPressed(false)
	c.Send()
}

// Send dispatches the control's action. No-op unless idle.
//
// In ModeLocal the action resolves before Send returns. In ModeLockstep the
// control raises the input shield, registers itself with the hub, and
// broadcasts a submit message; resolution happens when the hub delivers the
// sender's own echo.
func (c *Control[T]) Send() {
	if c.disposed || c.state != SyncIdle {
		return
	}
	c.state = SyncSending
	c.renderer.SetSyncState(SyncSending)
	c.notifySync(SyncSending)

	if c.cfg.Mode == ModeLocal {
		c.resolve(c.payload)
		return
	}

	c.shield = NewShield(c.cfg.Overlay, c.cfg.Bounds)
	hub := c.cfg.Hub
	hub.track(c.name, c.resolve)
	hub.bus.Raise(Message{
		Kind:       KindSubmit,
		Identifier: c.name,
		Sender:     hub.Self(),
		Payload:    c.payload,
	})
}

// resolve is the internal completion handler. Idempotent: duplicate echoes
// after the control reached Received are ignored. The shield is always torn
// down before the state flips to Received.
func (c *Control[T]) resolve(payload any) {
	if c.disposed || c.state == SyncReceived {
		return
	}
	c.dropShield()
	c.state = SyncReceived
	c.renderer.SetSyncState(SyncReceived)
	c.notifySync(SyncReceived)

	if c.onComplete != nil {
		// A misbehaving transport could echo a foreign payload type; treat
		// it like any other invalid input and deliver the zero value rather
		// than panicking mid-frame.
		v, _ := payload.(T)
		c.onComplete(v)
	}
}

// Reactivate resets a resolved control back to idle so it can be pressed
// again. No-op from Idle or Sending — a control mid-flight must not be
// re-armed.
func (c *Control[T]) Reactivate() {
	if c.disposed || c.state != SyncReceived {
		return
	}
	c.state = SyncIdle
	c.renderer.SetSyncState(SyncIdle)
	c.notifySync(SyncIdle)
}

// settle marks a control Received without dispatching an action or firing
// callbacks. Used by coordinators that pre-resolve an option (the initially
// selected radio button must not be pressable until another is chosen).
func (c *Control[T]) settle() {
	if c.disposed || c.state != SyncIdle {
		return
	}
	c.state = SyncReceived
	c.renderer.SetSyncState(SyncReceived)
}

// Update advances per-frame work (the in-flight shield's spinner).
func (c *Control[T]) Update(dt float32) {
	if c.shield != nil {
		c.shield.Update(dt)
	}
}

// Dispose releases the control: any in-flight shield is torn down, the
// pending hub registration is dropped, and the node subtree is disposed.
// Safe to call more than once.
func (c *Control[T]) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.dropShield()
	if c.cfg.Hub != nil {
		c.cfg.Hub.untrack(c.name)
	}
	c.root.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (c *Control[T]) IsDisposed() bool {
	return c.disposed
}

func (c *Control[T]) dropShield() {
	if c.shield == nil {
		return
	}
	c.shield.Dispose()
	c.shield = nil
}

func (c *Control[T]) notifySync(state SyncState) {
	if c.onSyncChange != nil {
		c.onSyncChange(state)
	}
}
