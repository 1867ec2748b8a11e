// Package hub implements order fan-out to live kitchen-display subscribers
// using the actor pattern.
//
// A single goroutine owns the subscriber registry and processes commands from
// a channel (no mutexes). Transport loops drain each subscriber's buffered
// frame channel; a subscriber that cannot accept a frame is evicted so it
// never delays delivery to the others.
package hub

import (
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/domain"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/metrics"
)

// sendOutcome is the result of one delivery attempt to one subscriber.
type sendOutcome int

const (
	outcomeDelivered sendOutcome = iota
	outcomeBufferFull
	outcomeGone
)

func (o sendOutcome) String() string {
	switch o {
	case outcomeDelivered:
		return "delivered"
	case outcomeBufferFull:
		return "buffer_full"
	default:
		return "gone"
	}
}

// Subscriber is one live display connection. The hub owns it from Subscribe
// to Unsubscribe; callers only read Events and pass the handle back.
type Subscriber struct {
	id     uuid.UUID
	events chan []byte
	gone   bool // actor-owned; set once the hub has closed events
}

// ID identifies the subscriber in logs and has no other meaning.
func (s *Subscriber) ID() uuid.UUID { return s.id }

// Events delivers serialized order frames. Closed by the hub on Unsubscribe,
// eviction, or Stop.
func (s *Subscriber) Events() <-chan []byte { return s.events }

// --- Command types ---

type hubCmd interface{ hubCmd() }

type cmdSubscribe struct {
	replyCh chan *Subscriber
}

func (cmdSubscribe) hubCmd() {}

type cmdUnsubscribe struct {
	sub *Subscriber
}

func (cmdUnsubscribe) hubCmd() {}

type cmdPublish struct {
	orderID string
	data    []byte
}

func (cmdPublish) hubCmd() {}

type cmdLiveCount struct {
	replyCh chan int
}

func (cmdLiveCount) hubCmd() {}

type cmdStop struct{}

func (cmdStop) hubCmd() {}

// --- Hub ---

// Hub maintains the live subscriber set and fans every published order out to
// all of them. Registry mutation and publish enumeration are serialized by the
// actor goroutine, so a publish never iterates a set under concurrent change.
type Hub struct {
	cmdCh       chan hubCmd
	subscribers map[*Subscriber]struct{}
	bufferSize  int
	done        chan struct{}
}

func New(bufferSize int) *Hub {
	h := &Hub{
		cmdCh:       make(chan hubCmd, 256),
		subscribers: make(map[*Subscriber]struct{}),
		bufferSize:  bufferSize,
		done:        make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	defer close(h.done)
	for cmd := range h.cmdCh {
		switch c := cmd.(type) {
		case cmdSubscribe:
			h.handleSubscribe(c)
		case cmdUnsubscribe:
			h.handleUnsubscribe(c.sub)
		case cmdPublish:
			h.handlePublish(c)
		case cmdLiveCount:
			c.replyCh <- len(h.subscribers)
		case cmdStop:
			h.handleStop()
			return
		}
	}
}

func (h *Hub) handleSubscribe(c cmdSubscribe) {
	sub := &Subscriber{
		id:     uuid.New(),
		events: make(chan []byte, h.bufferSize),
	}
	h.subscribers[sub] = struct{}{}
	metrics.HubSubscribers.Set(float64(len(h.subscribers)))
	slog.Debug("Subscriber registered", "subscriber_id", sub.id.String(), "live_count", len(h.subscribers))
	c.replyCh <- sub
}

func (h *Hub) handleUnsubscribe(sub *Subscriber) {
	if _, exists := h.subscribers[sub]; !exists {
		// Unknown or already-removed handle: removing twice is a no-op.
		return
	}

	delete(h.subscribers, sub)
	sub.gone = true
	close(sub.events)
	metrics.HubSubscribers.Set(float64(len(h.subscribers)))
	slog.Debug("Subscriber unregistered", "subscriber_id", sub.id.String(), "live_count", len(h.subscribers))
}

func (h *Hub) handlePublish(c cmdPublish) {
	metrics.HubPublishedTotal.Inc()

	var failed []*Subscriber
	for sub := range h.subscribers {
		outcome := h.trySend(sub, c.data)
		metrics.HubDeliveriesTotal.WithLabelValues(outcome.String()).Inc()
		if outcome != outcomeDelivered {
			failed = append(failed, sub)
		}
	}

	for _, sub := range failed {
		slog.Warn("Evicting unresponsive subscriber", "subscriber_id", sub.id.String(), "order_id", c.orderID)
		metrics.HubEvictedTotal.Inc()
		h.handleUnsubscribe(sub)
	}
}

// trySend attempts to enqueue one frame without blocking.
func (h *Hub) trySend(sub *Subscriber, data []byte) sendOutcome {
	if sub.gone {
		return outcomeGone
	}
	select {
	case sub.events <- data:
		return outcomeDelivered
	default:
		return outcomeBufferFull
	}
}

func (h *Hub) handleStop() {
	for sub := range h.subscribers {
		sub.gone = true
		close(sub.events)
	}
	h.subscribers = make(map[*Subscriber]struct{})
	metrics.HubSubscribers.Set(0)
	slog.Info("Hub stopped")
}

// --- Public API ---

// Subscribe registers a new display connection and returns its handle.
// Always succeeds; a hub with zero subscribers is a normal state.
func (h *Hub) Subscribe() *Subscriber {
	replyCh := make(chan *Subscriber, 1)
	h.cmdCh <- cmdSubscribe{replyCh: replyCh}
	return <-replyCh
}

// Unsubscribe removes the subscriber and closes its frame channel. Idempotent.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.cmdCh <- cmdUnsubscribe{sub: sub}
}

// Publish fans the order out to every live subscriber. A subscriber whose
// buffer is full or whose channel is gone is removed as part of the same
// publish; failures never propagate to the order-submission path.
func (h *Hub) Publish(order domain.Order) {
	data, err := json.Marshal(order)
	if err != nil {
		slog.Error("Failed to marshal order frame", "order_id", order.ID, "error", err)
		return
	}
	h.cmdCh <- cmdPublish{orderID: order.ID, data: data}
}

// LiveCount returns the number of live subscribers.
func (h *Hub) LiveCount() int {
	replyCh := make(chan int, 1)
	h.cmdCh <- cmdLiveCount{replyCh: replyCh}
	return <-replyCh
}

// Stop removes all subscribers and shuts the actor goroutine down.
// Blocks until the goroutine has exited.
func (h *Hub) Stop() {
	h.cmdCh <- cmdStop{}
	<-h.done
}
