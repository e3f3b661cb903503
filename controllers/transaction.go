package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/models"
	"haverststudio-backend/utils"
)

// CreateTransactionInput defines the expected JSON structure for recording
// a movement. Amounts are positive; the sign comes from the type. Category
// is free text, the frontend form constrains the vocabulary.
type CreateTransactionInput struct {
	Date          string                 `json:"date" binding:"required"`
	Type          models.TransactionType `json:"type" binding:"required"`
	Amount        float64                `json:"amount" binding:"required,gt=0"`
	Category      string                 `json:"category" binding:"required"`
	Description   string                 `json:"description"`
	ClientID      string                 `json:"clientId"`
	AppointmentID string                 `json:"appointmentId"`
}

// CreateTransaction records an income or expense
func (ctrl *Controller) CreateTransaction(c *gin.Context) {
	var input CreateTransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !input.Type.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Transaction type must be income or expense")
		return
	}
	if !utils.ValidateDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected yyyy-MM-dd")
		return
	}

	tx := models.Transaction{
		Date:          input.Date,
		Type:          input.Type,
		Amount:        input.Amount,
		Category:      input.Category,
		Description:   input.Description,
		ClientID:      input.ClientID,
		AppointmentID: input.AppointmentID,
	}

	created, err := ctrl.Store.AddTransaction(tx)
	if err != nil {
		respondStoreError(c, err, "Transaction not found")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetTransactions retrieves the full ledger in insertion order
func (ctrl *Controller) GetTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Store.Transactions())
}
