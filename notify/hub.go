// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-vote/ledger"
)

const defaultBuffer = 64

// Hub fans committed records out to live subscribers. A subscriber that
// falls behind is dropped; it catches up from the persisted event log.
type Hub struct {
	mu     sync.Mutex
	subs   map[string]*Subscription
	buffer int
}

// NewHub creates a hub whose subscriptions buffer up to buffer records.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	return &Hub{
		subs:   make(map[string]*Subscription),
		buffer: buffer,
	}
}

// Subscription is a live feed of records.
type Subscription struct {
	id   string
	hub  *Hub
	ch   chan ledger.Record
	once sync.Once
}

// ID identifies the subscription in logs.
func (s *Subscription) ID() string { return s.id }

// C delivers records in sequence order. It is closed when the subscription
// is closed or dropped for falling behind.
func (s *Subscription) C() <-chan ledger.Record { return s.ch }

// Close unsubscribes. It is safe to call more than once.
func (s *Subscription) Close() {
	s.hub.remove(s)
}

// Subscribe registers a new subscription.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:  uuid.NewString(),
		hub: h,
		ch:  make(chan ledger.Record, h.buffer),
	}

	h.mu.Lock()
	h.subs[sub.id] = sub
	count := len(h.subs)
	h.mu.Unlock()

	slog.Debug("subscriber added", "subscription", sub.id, "subscribers", count)
	return sub
}

// Publish delivers r to every subscriber without blocking.
func (h *Hub) Publish(r ledger.Record) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, sub := range h.subs {
		select {
		case sub.ch <- r:
		default:
			slog.Warn("dropping slow subscriber", "subscription", id, "seq", r.Seq)
			delete(h.subs, id)
			sub.closeChannel()
		}
	}
}

// Len returns the number of live subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub.id)
	h.mu.Unlock()
	sub.closeChannel()
}

func (s *Subscription) closeChannel() {
	s.once.Do(func() { close(s.ch) })
}
