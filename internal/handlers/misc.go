package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/realtime"
)

// Root returns the service descriptor and endpoint map
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "portfolio-backend-go",
		"description": "Portfolio contact backend with real-time chat relay",
		"environment": h.cfg.Server.Env,
		"endpoints": gin.H{
			"health":   "/health",
			"messages": "/api/messages",
			"login":    "/api/auth/login",
			"projects": "/api/projects",
			"clients":  "/api/clients",
			"realtime": "/ws",
			"metrics":  "/metrics",
		},
	})
}

// GetProjects returns the placeholder project collection
func (h *Handlers) GetProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "success",
		"projects": []interface{}{},
	})
}

// GetClients returns the placeholder client collection
func (h *Handlers) GetClients(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"clients": []interface{}{},
	})
}

// GetNotificationStats returns the aggregate email-log counts
func (h *Handlers) GetNotificationStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"stats":  h.notifier.Stats(),
	})
}

// Websocket hands the connection over to the relay hub
func (h *Handlers) Websocket(c *gin.Context) {
	realtime.ServeWS(h.hub, h.cfg.Server.FrontendOrigin, c.Writer, c.Request)
}

// NotFound handles unmatched routes
func (h *Handlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Status:  "error",
		Code:    models.CodeNotFound,
		Message: "Route not found",
	})
}
