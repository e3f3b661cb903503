package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/models"
	"haverststudio-backend/store"
	"haverststudio-backend/utils"
)

// CreateServiceInput defines the expected JSON structure for adding a
// catalog entry. Services are created active.
type CreateServiceInput struct {
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"required,min=0"`
	Duration    int     `json:"duration" binding:"min=0"` // in minutes
	Description string  `json:"description"`
}

type SetActiveInput struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// CreateService adds a service to the catalog
func (ctrl *Controller) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	svc := models.Service{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Duration:    input.Duration,
		Description: input.Description,
		IsActive:    true,
	}

	created, err := ctrl.Store.AddService(svc)
	if err != nil {
		respondStoreError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetServices retrieves the full catalog, inactive entries included
func (ctrl *Controller) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Store.Services())
}

// UpdateService merges a partial update into a catalog entry
func (ctrl *Controller) UpdateService(c *gin.Context) {
	var update store.ServiceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updated, err := ctrl.Store.UpdateService(c.Param("id"), update)
	if err != nil {
		respondStoreError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// SetServiceActive toggles a catalog entry; services are never deleted
func (ctrl *Controller) SetServiceActive(c *gin.Context) {
	var input SetActiveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updated, err := ctrl.Store.SetServiceActive(c.Param("id"), *input.IsActive)
	if err != nil {
		respondStoreError(c, err, "Service not found")
		return
	}

	c.JSON(http.StatusOK, updated)
}
