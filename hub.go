package bramble

import "fmt"

// Hub correlates broadcast control actions with their echoes. Controls
// register a pending resolver under their identifier at Send time; the
// platform glue feeds every incoming message to Deliver in global arrival
// order, and the hub resolves the matching pending action when the message
// is the local participant's own echo.
//
// Keeping the correlation in an explicit pending map (rather than each
// control filtering the stream itself) makes the matching rule — sender is
// self AND identifier matches — testable independent of the transport.
//
// A Hub is single-threaded like everything else in bramble: Deliver must be
// called from the same tick-stepped loop that drives the controls.
type Hub struct {
	bus     Bus
	pending map[string]func(any)
	sink    ActionSink
}

// NewHub creates a hub on top of the platform's broadcast bus.
func NewHub(bus Bus) *Hub {
	if bus == nil {
		panic("bramble: hub requires a bus")
	}
	return &Hub{
		bus:     bus,
		pending: make(map[string]func(any)),
	}
}

// Self returns the local participant id.
func (h *Hub) Self() string {
	return h.bus.Self()
}

// SetActionSink registers an optional sink that receives every resolved
// action. Used by the ecs subpackage to publish actions into a donburi
// world; nil disables forwarding.
func (h *Hub) SetActionSink(sink ActionSink) {
	h.sink = sink
}

// Pending reports whether an action with the given identifier is awaiting
// its echo.
func (h *Hub) Pending(identifier string) bool {
	_, ok := h.pending[identifier]
	return ok
}

// Deliver processes one message from the platform's ordered stream. Messages
// that are not submits, that come from other participants, or that match no
// pending action are ignored.
func (h *Hub) Deliver(msg Message) {
	if msg.Kind != KindSubmit {
		return
	}
	if msg.Sender != h.bus.Self() {
		return
	}
	resolve, ok := h.pending[msg.Identifier]
	if !ok {
		return
	}
	delete(h.pending, msg.Identifier)
	if h.sink != nil {
		h.sink.EmitAction(ActionEvent{
			Identifier: msg.Identifier,
			Sender:     msg.Sender,
			Payload:    msg.Payload,
		})
	}
	resolve(msg.Payload)
}

// track registers a pending resolver. Identifiers must be unique per screen;
// a second in-flight action under the same name means two controls share a
// name and their echoes would cross-talk.
func (h *Hub) track(identifier string, resolve func(any)) {
	if _, exists := h.pending[identifier]; exists {
		panic(fmt.Sprintf("bramble: control %q already has an action in flight (duplicate name?)", identifier))
	}
	h.pending[identifier] = resolve
}

// untrack drops a pending resolver, if any. Called on control disposal.
func (h *Hub) untrack(identifier string) {
	delete(h.pending, identifier)
}
