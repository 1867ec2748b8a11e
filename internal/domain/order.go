package domain

// Status tracks an order through its lifecycle. Orders are created pending;
// further transitions happen on the kitchen side and are not modelled here.
type Status string

const StatusPending Status = "pending"

// OrderItem is a single line of an order. Immutable once constructed.
type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

// Valid reports whether the item can go into an order.
func (i OrderItem) Valid() bool {
	return i.MenuItemID != "" && i.Name != "" && i.Quantity >= 1
}

// Order is what the ledger stores and the hub fans out. Timestamp is seconds
// since epoch (display only, kitchen screens show it as a clock time).
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	Timestamp float64     `json:"timestamp"`
	Status    Status      `json:"status"`
}
