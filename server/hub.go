package server

import (
	"sync"

	"github.com/lguibr/duopong/game"
)

type subscriber struct {
	frames chan game.Snapshot
}

// Hub fans snapshots out to spectators. Publish never blocks: each
// subscriber holds at most one pending frame and a newer frame replaces it.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*subscriber]struct{}
	latest      game.Snapshot
	hasLatest   bool
	closed      bool
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*subscriber]struct{}),
	}
}

// Publish records snapshot as the latest frame and offers it to every
// subscriber.
func (h *Hub) Publish(snapshot game.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.latest = snapshot
	h.hasLatest = true

	for sub := range h.subscribers {
		select {
		case sub.frames <- snapshot:
			continue
		default:
		}
		// Drop the stale frame, then retry once.
		select {
		case <-sub.frames:
		default:
		}
		select {
		case sub.frames <- snapshot:
		default:
		}
	}
}

func (h *Hub) Latest() (game.Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.hasLatest
}

func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// subscribe registers a new subscriber. It returns nil once the hub is closed.
func (h *Hub) subscribe() *subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	sub := &subscriber{frames: make(chan game.Snapshot, 1)}
	h.subscribers[sub] = struct{}{}
	return sub
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.subscribers[sub]; exists {
		delete(h.subscribers, sub)
		close(sub.frames)
	}
}

// Close ends every subscription. Later publishes are ignored.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		close(sub.frames)
	}
}
