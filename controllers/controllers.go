// Package controllers exposes the studio's state over HTTP. Handlers bind
// and validate input, call into the store or analytics, and translate
// store errors to statuses; all domain rules live below this layer.
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/store"
	"haverststudio-backend/utils"
)

// Controller carries the state container into the handlers; there is no
// package-level store.
type Controller struct {
	Store *store.Store
}

func NewController(s *store.Store) *Controller {
	return &Controller{Store: s}
}

// respondStoreError maps store sentinel errors onto HTTP statuses.
func respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(c, http.StatusNotFound, notFoundMsg)
		return
	}
	utils.RespondWithError(c, http.StatusInternalServerError, "Failed to persist change")
}
