package events

import (
	"log/slog"
	"sync"
)

// Kind names the mutation that produced an event
type Kind string

const (
	KindCreated Kind = "created"
	KindUpdated Kind = "updated"
	KindDeleted Kind = "deleted"
)

// subscriberBuffer is how many events a subscriber may fall behind before drops
const subscriberBuffer = 16

// Event tells subscribers that the note set changed and should be reloaded
type Event struct {
	Kind   Kind  `json:"kind"`
	NoteID int64 `json:"note_id"`
}

// Broker fans change events out to in-process subscribers.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Broker struct {
	logger      *slog.Logger
	mu          sync.Mutex
	running     bool
	stopped     bool
	nextID      int
	subscribers map[int]chan Event
}

// NewBroker creates a broker. It accepts subscribers and events only after Start.
func NewBroker(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		logger:      logger,
		subscribers: make(map[int]chan Event),
	}
}

// Start opens the broker for publishing
func (b *Broker) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running || b.stopped {
		return
	}
	b.running = true
	b.logger.Info("change broker started")
}

// Stop closes every subscriber channel. Later Publish calls are ignored.
func (b *Broker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
	b.running = false
	b.stopped = true
	b.logger.Info("change broker stopped")
}

// Subscribe returns a channel of events and a function that cancels the
// subscription. The channel is closed on cancel or Stop.
func (b *Broker) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if !b.running {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subscribers[id]; ok {
				close(sub)
				delete(b.subscribers, id)
			}
		})
	}
	return ch, cancel
}

// Publish delivers ev to every subscriber that has room for it.
// A nil broker drops everything.
func (b *Broker) Publish(ev Event) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
			b.logger.Debug("dropping change event for slow subscriber",
				"subscriber", id,
				"kind", ev.Kind,
				"note_id", ev.NoteID,
			)
		}
	}
}

// Subscribers returns the number of active subscriptions
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
