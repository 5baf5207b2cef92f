// Package events implements the synchronous lifecycle notification used
// by the Slack client. Two checkpoints exist per API call: immediately
// before the request is transmitted and immediately after the response
// has been parsed. Listeners run in registration order on the calling
// goroutine; a listener error aborts the in-flight call.
package events

import "sync"

// Kind identifies a lifecycle checkpoint. The set is closed: clients
// emit exactly these two kinds.
type Kind int

const (
	// BeforeSend fires after the outgoing field mapping is complete
	// (token included) and before any network activity.
	BeforeSend Kind = iota

	// AfterReceive fires once the response body has been parsed into a
	// field mapping, before any typed deserialization.
	AfterReceive
)

// String returns the wire-style name of the kind.
func (k Kind) String() string {
	switch k {
	case BeforeSend:
		return "before_send"
	case AfterReceive:
		return "after_receive"
	default:
		return "unknown"
	}
}

// Event is the snapshot handed to listeners. Data is a copy of the
// in-flight field mapping taken at the checkpoint; mutating it does not
// affect the call.
type Event struct {
	Kind   Kind
	Method string
	Data   map[string]any
}

// Listener receives one event. Returning a non-nil error aborts the
// in-flight API call; the error propagates to the caller of Send.
type Listener func(Event) error

// Notifier dispatches events to registered listeners synchronously, in
// registration order. Registration is append-only and safe for
// concurrent use: multiple API calls may be in flight against the same
// client, all reading the same listener list.
type Notifier struct {
	mu        sync.Mutex
	listeners map[Kind][]Listener
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{
		listeners: make(map[Kind][]Listener),
	}
}

// AddListener registers a listener for one event kind. There is no
// removal; listeners live as long as the notifier.
func (n *Notifier) AddListener(kind Kind, l Listener) {
	if l == nil {
		return
	}
	n.mu.Lock()
	n.listeners[kind] = append(n.listeners[kind], l)
	n.mu.Unlock()
}

// Notify calls every listener registered for kind, in registration
// order, with a snapshot of data. The first listener error stops
// dispatch and is returned.
func (n *Notifier) Notify(kind Kind, method string, data map[string]any) error {
	n.mu.Lock()
	registered := n.listeners[kind]
	n.mu.Unlock()

	if len(registered) == 0 {
		return nil
	}

	event := Event{
		Kind:   kind,
		Method: method,
		Data:   snapshot(data),
	}

	for _, l := range registered {
		if err := l(event); err != nil {
			return err
		}
	}
	return nil
}

// snapshot copies the top level of the field mapping so listeners cannot
// alter the data still in flight.
func snapshot(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return copied
}
