package models

// InventoryItem tracks a stocked product. Quantity staying non-negative is a
// convention of the callers, not enforced here.
type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	Unit         string  `json:"unit"`
	MinStock     int     `json:"minStock"`
	Price        float64 `json:"price"`
	LastPurchase string  `json:"lastPurchase"`
}
