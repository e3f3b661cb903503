package analytics

import "haverststudio-backend/models"

// IsLowStock reports whether an item has fallen to or below its minimum
// stock threshold.
func IsLowStock(item models.InventoryItem) bool {
	return item.Quantity <= item.MinStock
}

// LowStock returns the items at or below their minimum stock, in
// collection order.
func LowStock(items []models.InventoryItem) []models.InventoryItem {
	var low []models.InventoryItem
	for _, item := range items {
		if IsLowStock(item) {
			low = append(low, item)
		}
	}
	return low
}

// StockFillRatio is the display heuristic for the stock bar: quantity over
// twice the minimum, clamped to [0, 1]. A full bar means comfortably above
// the reorder point, not a storage limit.
func StockFillRatio(item models.InventoryItem) float64 {
	if item.MinStock <= 0 {
		if item.Quantity > 0 {
			return 1
		}
		return 0
	}
	ratio := float64(item.Quantity) / float64(item.MinStock*2)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// InventoryValue is the total value of stock on hand.
func InventoryValue(items []models.InventoryItem) float64 {
	total := 0.0
	for _, item := range items {
		total += float64(item.Quantity) * item.Price
	}
	return total
}
