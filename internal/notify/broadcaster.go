// Package notify fans state-change events out to connected viewers.
package notify

import "sync"

// Event names delivered over the push channel.
const (
	EventInitialData = "initialData"
	EventSpotUpdated = "spotUpdated"
	EventSpotsReset  = "spotsReset"
)

// Event is one state change. Payload is the full new spot state for
// spotUpdated, or the full spot table for spotsReset and initialData.
type Event struct {
	Name    string
	Payload any
}

// subscriberBuffer bounds how far a slow subscriber may lag before events are
// dropped. Delivery is best-effort, at most once per event per subscriber.
const subscriberBuffer = 16

// Broadcaster distributes events to all current subscribers, decoupled from
// the request/response path. Events reach each subscriber in the order they
// were published; there is no cross-subscriber ordering guarantee.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

// NewBroadcaster creates a broadcaster with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]chan Event)}
}

// Subscribe registers a new observer. The returned cancel function must be
// called when the observer disconnects; it closes the channel.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber. A subscriber whose buffer is
// full misses the event; publishers never block on slow consumers.
func (b *Broadcaster) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports the number of connected observers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
