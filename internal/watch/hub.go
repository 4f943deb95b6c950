// Package watch pushes live collection snapshots to connected clients.
// A watcher follows a MongoDB change stream and on every event re-runs
// the collection query, broadcasting the full result set; subscribers
// therefore never diff events, they just replace their local state.
package watch

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Event is one snapshot broadcast to subscribers
type Event struct {
	Topic string      `json:"topic"`
	Data  interface{} `json:"data"`
}

// Hub fans snapshots out to subscribers grouped by topic.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a subscriber for a topic. The returned cancel
// function must be called when the client disconnects.
func (h *Hub) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 8)

	h.mu.Lock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[chan Event]struct{})
	}
	h.subs[topic][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if set, ok := h.subs[topic]; ok {
			delete(set, ch)
			if len(set) == 0 {
				delete(h.subs, topic)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Broadcast delivers a snapshot to every subscriber of the topic.
// Slow subscribers are skipped rather than blocking the watcher.
func (h *Hub) Broadcast(topic string, data interface{}) {
	event := Event{Topic: topic, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[topic] {
		select {
		case ch <- event:
		default:
			log.Warn().Str("topic", topic).Msg("dropping snapshot for slow subscriber")
		}
	}
}

// Subscribers returns the subscriber count for a topic
func (h *Hub) Subscribers(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[topic])
}

// Querier re-reads the full result set for a topic
type Querier func(ctx context.Context) (interface{}, error)
