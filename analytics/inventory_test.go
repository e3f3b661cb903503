package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haverststudio-backend/models"
	"haverststudio-backend/seed"
)

func TestLowStockBoundary(t *testing.T) {
	item := models.InventoryItem{ID: "i1", Name: "Tinte", Quantity: 6, MinStock: 5}

	assert.False(t, IsLowStock(item))

	item.Quantity = 5
	assert.True(t, IsLowStock(item))

	item.Quantity = 0
	assert.True(t, IsLowStock(item))
}

func TestLowStockMembershipFollowsQuantity(t *testing.T) {
	// Seed scenario: i1 starts at quantity 8, minStock 5.
	items := seed.Inventory()
	require.Equal(t, "i1", items[0].ID)
	assert.NotContains(t, LowStock(items), items[0])

	items[0].Quantity = 5
	low := LowStock(items)
	assert.Contains(t, low, items[0])

	// An item is in the set iff quantity <= minStock.
	for _, item := range items {
		if item.Quantity <= item.MinStock {
			assert.Contains(t, low, item)
		} else {
			assert.NotContains(t, low, item)
		}
	}
}

func TestSeedLowStockItems(t *testing.T) {
	low := LowStock(seed.Inventory())

	ids := make([]string, 0, len(low))
	for _, item := range low {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"i4", "i5"}, ids)
}

func TestStockFillRatioClamped(t *testing.T) {
	assert.InDelta(t, 0.5, StockFillRatio(models.InventoryItem{Quantity: 5, MinStock: 5}), 0.001)
	assert.InDelta(t, 1, StockFillRatio(models.InventoryItem{Quantity: 20, MinStock: 5}), 0.001)
	assert.InDelta(t, 0, StockFillRatio(models.InventoryItem{Quantity: 0, MinStock: 5}), 0.001)

	// Degenerate thresholds never divide by zero.
	assert.InDelta(t, 1, StockFillRatio(models.InventoryItem{Quantity: 3, MinStock: 0}), 0.001)
	assert.InDelta(t, 0, StockFillRatio(models.InventoryItem{Quantity: 0, MinStock: 0}), 0.001)
}

func TestInventoryValue(t *testing.T) {
	items := []models.InventoryItem{
		{Quantity: 2, Price: 100},
		{Quantity: 3, Price: 50},
	}
	assert.InDelta(t, 350, InventoryValue(items), 0.001)
	assert.Zero(t, InventoryValue(nil))
}
