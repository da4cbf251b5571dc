package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend-go/internal/models"
)

// HealthCheck handles health check requests. Configuration absence is not an
// error condition: the service is healthy in fallback mode.
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Storage:   "fallback",
		Notifier:  "disabled",
		Metrics:   make(map[string]string),
	}

	if h.remote.Ready() {
		response.Storage = "primary"
	}
	if h.notifier.Ready() {
		response.Notifier = "enabled"
	}

	stats := h.notifier.Stats()
	response.Metrics["emails_sent"] = itoa(stats.Sent)
	response.Metrics["emails_failed"] = itoa(stats.Failed)
	response.Metrics["emails_skipped"] = itoa(stats.Skipped)

	c.JSON(http.StatusOK, response)
}

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}
