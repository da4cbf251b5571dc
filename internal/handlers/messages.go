package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"portfolio-backend-go/internal/messages"
	"portfolio-backend-go/internal/models"
)

// GetMessages returns all stored contact messages. Fallback to the in-memory
// tier is invisible here: the response is a success either way.
func (h *Handlers) GetMessages(c *gin.Context) {
	msgs, tier, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  "error",
			Code:    models.CodeInternal,
			Message: "Failed to fetch messages",
		})
		return
	}

	logrus.Debugf("Serving %d messages from %s tier", len(msgs), tier)

	c.JSON(http.StatusOK, models.MessagesResponse{
		Status:   "success",
		Message:  "Messages retrieved successfully",
		Messages: msgs,
	})
}

// CreateMessage validates and stores a contact message
func (h *Handlers) CreateMessage(c *gin.Context) {
	var req models.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Status:  "error",
			Code:    models.CodeValidation,
			Message: "name, email and message are required",
		})
		return
	}

	persisted, err := h.service.Create(c.Request.Context(), models.NewMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		var verr *messages.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Status:  "error",
				Code:    models.CodeValidation,
				Message: verr.Msg,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Status:  "error",
			Code:    models.CodeInternal,
			Message: "Failed to store message",
		})
		return
	}

	c.JSON(http.StatusCreated, models.MessageCreatedResponse{
		Status:  "success",
		Message: "Message sent successfully",
		Data:    persisted.Message,
	})
}
