// File: internal/registry/events.go
package registry

// Event names emitted by the registry.
const (
	EventOpened    = "opened"
	EventClosed    = "closed"
	EventAllClosed = "all_closed"
)

// Event describes one registry state transition. Kind is empty for
// EventAllClosed.
type Event struct {
	Name string
	Kind Kind
}

// EventPublisher receives registry events. Implementations should be
// lightweight and must not block: events are delivered synchronously, in
// transition order, on the goroutine that triggered the transition.
type EventPublisher interface {
	Publish(Event)
}

// noopPublisher is the default; it drops events.
type noopPublisher struct{}

func (noopPublisher) Publish(Event) {}

// Subscribe registers fn for all future events. Subscribers are invoked
// after the configured publisher, in subscription order, synchronously on
// the triggering goroutine. A subscriber that calls back into the
// registry is safe; no lock is held during delivery.
func (r *Registry) Subscribe(fn func(Event)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.subscribers = append(r.subscribers, fn)
	r.mu.Unlock()
}

// emit delivers ev to the publisher and all subscribers.
func (r *Registry) emit(ev Event) {
	r.mu.Lock()
	pub := r.publisher
	subs := make([]func(Event), len(r.subscribers))
	copy(subs, r.subscribers)
	r.mu.Unlock()

	pub.Publish(ev)
	for _, fn := range subs {
		fn(ev)
	}
}
