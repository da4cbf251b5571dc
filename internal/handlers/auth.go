package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend-go/internal/auth"
	"portfolio-backend-go/internal/models"
)

// Login checks credentials against the fixed table and returns the
// placeholder token. The token is never verified on later requests.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    models.CodeValidation,
			Message: "email and password are required",
		})
		return
	}

	user, token, err := auth.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Status:  "error",
			Code:    models.CodeAuth,
			Message: "Invalid email or password",
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Success: true,
		User:    *user,
		Token:   token,
	})
}
