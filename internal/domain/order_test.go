package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderItem_Valid(t *testing.T) {
	assert.True(t, OrderItem{MenuItemID: "juice-001", Name: "Fresh Orange Juice", Quantity: 1}.Valid())
	assert.False(t, OrderItem{Name: "Fresh Orange Juice", Quantity: 1}.Valid())
	assert.False(t, OrderItem{MenuItemID: "juice-001", Quantity: 1}.Valid())
	assert.False(t, OrderItem{MenuItemID: "juice-001", Name: "Fresh Orange Juice", Quantity: 0}.Valid())
}

func TestOrder_JSONShape(t *testing.T) {
	order := Order{
		ID:        "1",
		Items:     []OrderItem{{MenuItemID: "juice-001", Name: "Fresh Orange Juice", Quantity: 2}},
		Timestamp: 1700000000.5,
		Status:    StatusPending,
	}

	data, err := json.Marshal(order)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "1", raw["id"])
	assert.Equal(t, "pending", raw["status"])

	item := raw["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "juice-001", item["menuItemId"])
	assert.Equal(t, "Fresh Orange Juice", item["name"])
	assert.Equal(t, float64(2), item["quantity"])
}

func TestMenu_ReturnsCopy(t *testing.T) {
	first := Menu()
	first[0].Name = "mutated"

	assert.Equal(t, "Fresh Orange Juice", Menu()[0].Name)
	assert.Len(t, Menu(), 10)
}
