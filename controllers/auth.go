package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haverststudio-backend/config"
	"haverststudio-backend/utils"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates the studio owner against the env-configured account
// and issues a JWT.
func (ctrl *Controller) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	email := config.OwnerEmail()
	hash := config.OwnerPasswordHash()
	if email == "" || hash == "" {
		utils.RespondWithError(c, http.StatusInternalServerError, "Owner account not configured")
		return
	}

	if input.Email != email || !utils.CheckPasswordHash(input.Password, hash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    gin.H{"email": email},
	})
}

// Me confirms the caller's token is still valid.
func (ctrl *Controller) Me(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
