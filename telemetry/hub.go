package telemetry

import (
	"sync"
	"time"
)

// Message is what spectators receive: one simulation event, stamped.
type Message struct {
	Session string    `json:"session"`
	Type    string    `json:"type"`
	Data    any       `json:"data,omitempty"`
	Time    time.Time `json:"time"`
}

// Broadcaster fans messages out to subscriber channels. A slow subscriber
// drops messages rather than stalling the game loop.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[string]chan Message
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan Message),
	}
}

// Register opens a channel for id, closing any previous one.
func (b *Broadcaster) Register(id string) chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan Message, 100)
	b.subscribers[id] = ch
	return ch
}

func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

func (b *Broadcaster) Broadcast(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close unregisters everyone.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		close(ch)
		delete(b.subscribers, id)
	}
}
