package bramble

// Loopback is a deterministic in-process wire standing in for the platform's
// lockstep transport. Raised messages accumulate in a single FIFO; Flush
// delivers every queued message to every joined participant — including the
// sender — in raise order, which is exactly the global-order echo guarantee
// the real transport provides.
//
// Nothing is delivered until Flush is called, so the latency window between
// Send and confirmation can be held open for as many ticks as a test (or a
// same-machine demo) wants.
type Loopback struct {
	queue []Message
	hubs  []*Hub
}

// NewLoopback creates an empty wire with no participants.
func NewLoopback() *Loopback {
	return &Loopback{}
}

// NewHub joins a participant with the given id and returns its hub, already
// wired to receive deliveries from Flush.
func (l *Loopback) NewHub(self string) *Hub {
	hub := NewHub(&loopbackEndpoint{wire: l, self: self})
	l.hubs = append(l.hubs, hub)
	return hub
}

// QueueLen returns the number of undelivered messages.
func (l *Loopback) QueueLen() int {
	return len(l.queue)
}

// Flush delivers all currently queued messages to every participant in
// raise order and returns how many were delivered. Messages raised during
// delivery (from completion callbacks) stay queued for the next Flush, so
// one Flush corresponds to one deterministic delivery tick.
func (l *Loopback) Flush() int {
	batch := l.queue
	l.queue = nil
	for _, msg := range batch {
		for _, hub := range l.hubs {
			hub.Deliver(msg)
		}
	}
	return len(batch)
}

// loopbackEndpoint is one participant's Bus on a Loopback wire.
type loopbackEndpoint struct {
	wire *Loopback
	self string
}

func (e *loopbackEndpoint) Raise(msg Message) {
	msg.Sender = e.self // the transport, not the caller, tags the sender
	e.wire.queue = append(e.wire.queue, msg)
}

func (e *loopbackEndpoint) Self() string {
	return e.self
}
