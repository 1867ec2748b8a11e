// Package ledger implements the in-memory append-only order store.
package ledger

import (
	"strconv"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/AbdulMannan19/Zain-Juice-Centre/internal/domain"
	apperrors "github.com/AbdulMannan19/Zain-Juice-Centre/internal/errors"
)

// Ledger stores orders in insertion order and hands out sequential ids.
// Safe for concurrent use. State lives only in memory: ids restart at "1"
// after a process restart or Clear, so they are unique per process lifetime
// only.
type Ledger struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	orders  []domain.Order
	byID    map[string]int
	counter uint64
}

func New(clock clockwork.Clock) *Ledger {
	return &Ledger{
		clock: clock,
		byID:  make(map[string]int),
	}
}

// Append validates the items, assigns the next sequential id ("1", "2", ...),
// stamps the order pending and stores it. The id counter and the stored
// sequence advance under one lock, so concurrent appends never share an id.
func (l *Ledger) Append(items []domain.OrderItem) (domain.Order, error) {
	if len(items) == 0 {
		return domain.Order{}, apperrors.ValidationError("order must contain at least one item")
	}
	for i, item := range items {
		if !item.Valid() {
			return domain.Order{}, apperrors.ValidationError("invalid item structure").WithContext("index", i)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.counter++
	order := domain.Order{
		ID:        strconv.FormatUint(l.counter, 10),
		Items:     append([]domain.OrderItem(nil), items...),
		Timestamp: float64(l.clock.Now().UnixMilli()) / 1000,
		Status:    domain.StatusPending,
	}

	l.byID[order.ID] = len(l.orders)
	l.orders = append(l.orders, order)
	return order, nil
}

// GetByID returns the order with the given id.
func (l *Ledger) GetByID(id string) (domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, ok := l.byID[id]
	if !ok {
		return domain.Order{}, apperrors.NotFoundError("order not found").WithContext("order_id", id)
	}
	return l.orders[idx], nil
}

// ListAll returns all orders in insertion order.
func (l *Ledger) ListAll() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]domain.Order, len(l.orders))
	copy(out, l.orders)
	return out
}

// Len returns the number of stored orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

// Clear drops all orders and resets the id counter. Test isolation only:
// after Clear, previously issued ids will be reissued.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.orders = nil
	l.byID = make(map[string]int)
	l.counter = 0
}
