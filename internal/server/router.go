package server

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/handlers"
	"portfolio-backend-go/internal/models"
)

// SetupRouter configures routes and middleware
func SetupRouter(cfg *config.Config, h *handlers.Handlers) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(recoveryMiddleware(cfg))
	router.Use(loggerMiddleware())
	router.Use(secureMiddleware())
	router.Use(corsMiddleware(cfg))

	rateMiddleware, err := rateLimitMiddleware(cfg)
	if err != nil {
		return nil, err
	}
	router.Use(rateMiddleware)

	h.SetupRoutes(router)
	return router, nil
}

// recoveryMiddleware converts panics into INTERNAL_ERROR responses. Stack
// detail is included only outside production.
func recoveryMiddleware(cfg *config.Config) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logrus.Errorf("Unhandled panic: %v", recovered)

		response := models.ErrorResponse{
			Status:  "error",
			Code:    models.CodeInternal,
			Message: "Internal server error",
		}
		if !cfg.IsProduction() {
			response.Detail = fmt.Sprintf("%v\n%s", recovered, debug.Stack())
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, response)
	})
}

// loggerMiddleware adds logging middleware
func loggerMiddleware() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
			param.ClientIP,
			param.TimeStamp.Format(time.RFC1123),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.Latency,
			param.Request.UserAgent(),
			param.ErrorMessage,
		)
	})
}

func secureMiddleware() gin.HandlerFunc {
	return secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	})
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

// rateLimitMiddleware applies the global request limiter backed by an
// in-memory store.
func rateLimitMiddleware(cfg *config.Config) (gin.HandlerFunc, error) {
	if cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		return nil, fmt.Errorf("invalid rate limit: %d requests per %s", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	rate := limiter.Rate{
		Period: cfg.RateLimit.Window,
		Limit:  cfg.RateLimit.Requests,
	}

	return mgin.NewMiddleware(limiter.New(memory.NewStore(), rate)), nil
}
