package broadcast

import (
	"log/slog"
	"sync"
)

const defaultBuffer = 16

// Hub fans out values to every active subscriber. Publishing never blocks: a subscriber whose
// queue is full misses the value. Subscribers only see values published after they subscribed.
type Hub[T any] struct {
	name   string
	buffer int
	logger *slog.Logger

	mu     sync.RWMutex
	subs   map[*Subscription[T]]struct{}
	closed bool
}

// Subscription is a single listener on a Hub.
type Subscription[T any] struct {
	hub  *Hub[T]
	ch   chan T
	once sync.Once
}

// NewHub creates a hub whose subscribers each get a queue of the given size.
func NewHub[T any](name string, buffer int, logger *slog.Logger) *Hub[T] {
	if buffer <= 0 {
		buffer = defaultBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub[T]{
		name:   name,
		buffer: buffer,
		logger: logger,
		subs:   make(map[*Subscription[T]]struct{}),
	}
}

// Subscribe registers a new listener. Subscribing to a closed hub returns an already closed
// subscription.
func (h *Hub[T]) Subscribe() *Subscription[T] {
	sub := &Subscription[T]{hub: h, ch: make(chan T, h.buffer)}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		sub.once.Do(func() { close(sub.ch) })

		return sub
	}

	h.subs[sub] = struct{}{}

	return sub
}

// Publish delivers value to every subscriber that has room and reports how many received it.
func (h *Hub[T]) Publish(value T) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return 0
	}

	delivered := 0
	for sub := range h.subs {
		select {
		case sub.ch <- value:
			delivered++
		default:
			h.logger.Warn("[Broadcast] Subscriber queue full, dropping event",
				slog.String("hub", h.name))
		}
	}

	return delivered
}

// Len returns the number of active subscribers.
func (h *Hub[T]) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs)
}

// Close releases every subscriber. Later publishes are ignored.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true

	for sub := range h.subs {
		delete(h.subs, sub)
		sub.once.Do(func() { close(sub.ch) })
	}
}

// Events returns the receive side of the subscription. It is closed on Unsubscribe or Hub.Close.
func (s *Subscription[T]) Events() <-chan T {
	return s.ch
}

// Unsubscribe detaches the listener and closes its channel. Safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.hub.mu.Lock()
	defer s.hub.mu.Unlock()

	delete(s.hub.subs, s)
	s.once.Do(func() { close(s.ch) })
}
