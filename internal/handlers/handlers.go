package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/messages"
	"portfolio-backend-go/internal/metrics"
	"portfolio-backend-go/internal/notify"
	"portfolio-backend-go/internal/realtime"
	"portfolio-backend-go/internal/storage"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	cfg      *config.Config
	service  *messages.Service
	remote   storage.Remote
	notifier *notify.Notifier
	hub      *realtime.Hub
	metrics  *metrics.Metrics
}

// NewHandlers creates new HTTP handlers
func NewHandlers(cfg *config.Config, svc *messages.Service, remote storage.Remote, notifier *notify.Notifier, hub *realtime.Hub, m *metrics.Metrics) *Handlers {
	return &Handlers{
		cfg:      cfg,
		service:  svc,
		remote:   remote,
		notifier: notifier,
		hub:      hub,
		metrics:  m,
	}
}

// SetupRoutes sets up all HTTP routes
func (h *Handlers) SetupRoutes(router *gin.Engine) {
	// Service descriptor and health
	router.GET("/", h.Root)
	router.GET("/health", h.HealthCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Real-time relay
	router.GET("/ws", h.Websocket)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		api.GET("/messages", h.GetMessages)
		api.POST("/messages", h.CreateMessage)

		api.POST("/auth/login", h.Login)

		api.GET("/projects", h.GetProjects)
		api.GET("/clients", h.GetClients)

		api.GET("/notifications/stats", h.GetNotificationStats)
	}

	// Unmatched routes
	router.NoRoute(h.NotFound)
}
