// Package app wires the order ledger and the broadcast hub behind one service.
package app

import (
	"log/slog"
	"sync"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/domain"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/hub"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/ledger"
	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/metrics"
)

// OrderService accepts orders and relays them to the kitchen displays.
//
// PlaceOrder holds one mutex across Append and Publish so publishes enter the
// hub in id order: every subscriber sees orders in the sequence the ledger
// assigned them.
type OrderService struct {
	mu     sync.Mutex
	ledger *ledger.Ledger
	hub    *hub.Hub
}

func NewOrderService(l *ledger.Ledger, h *hub.Hub) *OrderService {
	return &OrderService{ledger: l, hub: h}
}

// PlaceOrder validates and appends the order, then fans it out to all live
// displays. Validation failures reject the submission; delivery failures are
// absorbed by the hub and never surface here. Succeeds with zero displays
// connected.
func (s *OrderService) PlaceOrder(items []domain.OrderItem) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.ledger.Append(items)
	if err != nil {
		metrics.OrdersRejectedTotal.Inc()
		return domain.Order{}, err
	}

	s.hub.Publish(order)
	metrics.OrdersCreatedTotal.Inc()
	slog.Info("Order placed", "order_id", order.ID, "items", len(order.Items))
	return order, nil
}

// GetOrder returns a single order by id.
func (s *OrderService) GetOrder(id string) (domain.Order, error) {
	return s.ledger.GetByID(id)
}

// ListOrders returns all orders in submission order, for display hydration.
func (s *OrderService) ListOrders() []domain.Order {
	return s.ledger.ListAll()
}

// SubscribeDisplay registers a new kitchen-display stream.
func (s *OrderService) SubscribeDisplay() *hub.Subscriber {
	return s.hub.Subscribe()
}

// UnsubscribeDisplay removes a display stream. Idempotent.
func (s *OrderService) UnsubscribeDisplay(sub *hub.Subscriber) {
	s.hub.Unsubscribe(sub)
}

// LiveDisplays returns the number of connected display streams.
func (s *OrderService) LiveDisplays() int {
	return s.hub.LiveCount()
}

// Stop shuts down the fan-out hub.
func (s *OrderService) Stop() {
	s.hub.Stop()
}
