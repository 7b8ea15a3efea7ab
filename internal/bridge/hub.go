package bridge

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// subscriberBuffer is the per-subscriber event queue length.
const subscriberBuffer = 64

// Hub fans host events out to subscribers. Delivery is non-blocking: a
// subscriber whose buffer is full misses the event. Events emitted while
// nobody is subscribed are dropped.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]*Subscription
	seq    atomic.Uint64
	closed bool
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]*Subscription)}
}

// Subscription is one subscriber's view of the hub.
type Subscription struct {
	ID      string
	hub     *Hub
	events  chan Event
	filter  map[Channel]bool
	dropped atomic.Uint64
	once    sync.Once
}

// Subscribe registers a subscriber for the given channels, or for every
// channel when none are given.
func (h *Hub) Subscribe(channels ...Channel) *Subscription {
	sub := &Subscription{
		ID:     uuid.New().String(),
		hub:    h,
		events: make(chan Event, subscriberBuffer),
	}
	if len(channels) > 0 {
		sub.filter = make(map[Channel]bool, len(channels))
		for _, c := range channels {
			sub.filter[c] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		sub.once.Do(func() { close(sub.events) })
		return sub
	}
	h.subs[sub.ID] = sub
	return sub
}

// Events returns the subscriber's event channel. It is closed when the
// subscription or the hub is closed.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Dropped returns how many events this subscriber missed.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Close removes the subscription. Safe to call more than once.
func (s *Subscription) Close() {
	s.hub.mu.Lock()
	delete(s.hub.subs, s.ID)
	s.hub.mu.Unlock()
	s.once.Do(func() { close(s.events) })
}

func (s *Subscription) wants(c Channel) bool {
	return s.filter == nil || s.filter[c]
}

// Emit broadcasts an event. payload is JSON-encoded; nil sends no payload.
func (h *Hub) Emit(channel Channel, payload any) error {
	var raw json.RawMessage
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", channel, err)
		}
		raw = data
	}

	ev := Event{
		Channel:   channel,
		Payload:   raw,
		Seq:       h.seq.Add(1),
		EmittedAt: time.Now().UTC(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return nil
	}
	for _, sub := range h.subs {
		if !sub.wants(channel) {
			continue
		}
		select {
		case sub.events <- ev:
		default:
			// Drop if subscriber can't keep up
			sub.dropped.Add(1)
		}
	}
	return nil
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close closes every subscription. Later subscriptions are born closed and
// later emissions are discarded.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	subs := h.subs
	h.subs = make(map[string]*Subscription)
	h.mu.Unlock()

	for _, sub := range subs {
		sub.once.Do(func() { close(sub.events) })
	}
}
