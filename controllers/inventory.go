package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/analytics"
	"haverststudio-backend/models"
	"haverststudio-backend/store"
	"haverststudio-backend/utils"
)

// CreateInventoryItemInput defines the expected JSON structure for stocking
// a product. LastPurchase defaults to today when omitted.
type CreateInventoryItemInput struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity" binding:"min=0"`
	Unit         string  `json:"unit"`
	MinStock     int     `json:"minStock" binding:"min=0"`
	Price        float64 `json:"price" binding:"min=0"`
	LastPurchase string  `json:"lastPurchase"`
}

// CreateInventoryItem adds a product to the inventory
func (ctrl *Controller) CreateInventoryItem(c *gin.Context) {
	var input CreateInventoryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lastPurchase := input.LastPurchase
	if lastPurchase == "" {
		lastPurchase = time.Now().Format(utils.DateLayout)
	} else if !utils.ValidateDate(lastPurchase) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lastPurchase format, expected yyyy-MM-dd")
		return
	}

	item := models.InventoryItem{
		Name:         input.Name,
		Category:     input.Category,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		MinStock:     input.MinStock,
		Price:        input.Price,
		LastPurchase: lastPurchase,
	}

	created, err := ctrl.Store.AddInventoryItem(item)
	if err != nil {
		respondStoreError(c, err, "Inventory item not found")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetInventory retrieves the full stock list plus its total value
func (ctrl *Controller) GetInventory(c *gin.Context) {
	items := ctrl.Store.Inventory()
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"totalValue": analytics.InventoryValue(items),
	})
}

// GetLowStock retrieves items at or below their minimum stock, each with
// the fill ratio the stock bar renders
func (ctrl *Controller) GetLowStock(c *gin.Context) {
	type lowStockItem struct {
		models.InventoryItem
		FillRatio float64 `json:"fillRatio"`
	}

	low := analytics.LowStock(ctrl.Store.Inventory())
	out := make([]lowStockItem, 0, len(low))
	for _, item := range low {
		out = append(out, lowStockItem{
			InventoryItem: item,
			FillRatio:     analytics.StockFillRatio(item),
		})
	}
	c.JSON(http.StatusOK, out)
}

// UpdateInventoryItem merges a partial update into a stocked product
func (ctrl *Controller) UpdateInventoryItem(c *gin.Context) {
	var update store.InventoryItemUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if update.LastPurchase != nil && !utils.ValidateDate(*update.LastPurchase) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lastPurchase format, expected yyyy-MM-dd")
		return
	}

	updated, err := ctrl.Store.UpdateInventoryItem(c.Param("id"), update)
	if err != nil {
		respondStoreError(c, err, "Inventory item not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}
