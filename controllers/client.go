package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/models"
	"haverststudio-backend/utils"
)

// CreateClientInput defines the expected JSON structure for registering a
// client. Visit counters start at zero and are never recomputed by the
// backend.
type CreateClientInput struct {
	Name        string   `json:"name" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Email       string   `json:"email"`
	Birthday    string   `json:"birthday"`
	Notes       string   `json:"notes"`
	Preferences []string `json:"preferences"`
}

// CreateClient registers a new client
func (ctrl *Controller) CreateClient(c *gin.Context) {
	var input CreateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if input.Birthday != "" && !utils.ValidateDate(input.Birthday) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid birthday format, expected yyyy-MM-dd")
		return
	}

	preferences := input.Preferences
	if preferences == nil {
		preferences = []string{}
	}

	client := models.Client{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Birthday:    input.Birthday,
		Notes:       input.Notes,
		LastVisit:   time.Now().Format(utils.DateLayout),
		Preferences: preferences,
		History:     []models.ServiceHistory{},
	}

	created, err := ctrl.Store.AddClient(client)
	if err != nil {
		respondStoreError(c, err, "Client not found")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetClients retrieves the full client roster
func (ctrl *Controller) GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Store.Clients())
}
