// Package realtime provides the serving-side plumbing for live game
// sessions: a fan-out topic broadcaster and a generic session store that
// runs a fixed-rate tick loop per session.
package realtime

import "sync"

// Broadcaster fans out lightweight topic names to stream subscribers (SSE
// or WebSocket writers). Payloads travel out of band; a topic only tells a
// subscriber that something happened and what kind of thing it was.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[chan string]struct{}
	closed bool
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subs: make(map[chan string]struct{}),
	}
}

// Subscribe registers a subscriber and returns its topic channel. After
// Close the returned channel is already closed.
func (b *Broadcaster) Subscribe() chan string {
	ch := make(chan string, 16)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}
	return ch
}

// Unsubscribe removes a subscriber and closes its channel. Safe to call
// after Close.
func (b *Broadcaster) Unsubscribe(ch chan string) {
	b.mu.Lock()
	if _, ok := b.subs[ch]; ok {
		delete(b.subs, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish delivers a topic to all subscribers.
func (b *Broadcaster) Publish(topic string) {
	b.mu.Lock()
	for ch := range b.subs {
		select {
		case ch <- topic:
		default:
			// Drop if the subscriber is lagging; the next topic catches it up.
		}
	}
	b.mu.Unlock()
}

// Close closes every subscriber channel so stream writers unblock when the
// session behind the broadcaster goes away.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// SubscriberCount reports the number of attached subscribers.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
