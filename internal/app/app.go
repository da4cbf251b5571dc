package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"portfolio-backend-go/internal/config"
	"portfolio-backend-go/internal/handlers"
	"portfolio-backend-go/internal/messages"
	"portfolio-backend-go/internal/metrics"
	"portfolio-backend-go/internal/notify"
	"portfolio-backend-go/internal/realtime"
	"portfolio-backend-go/internal/server"
	"portfolio-backend-go/internal/storage"
)

// shutdownGrace bounds how long in-flight requests may run after a
// termination signal before the process is forced out.
const shutdownGrace = 10 * time.Second

// Run initializes and starts the application
func Run() error {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetLevel(logrus.InfoLevel)

	logrus.Info("Starting Portfolio Backend Service")

	// Local development keeps settings in a .env file; absence is fine.
	if err := godotenv.Load(); err == nil {
		logrus.Info("Loaded environment from .env")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m := metrics.NewMetrics()

	remote := storage.NewRemote(cfg)
	memory := storage.NewMemoryStore()

	notifier := notify.NewNotifier(cfg, remote, m)
	svc := messages.NewService(remote, memory, notifier, m)

	hub := realtime.NewHub(m)
	go hub.Run()

	h := handlers.NewHandlers(cfg, svc, remote, notifier, hub, m)
	router, err := server.SetupRouter(cfg, h)
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logrus.Infof("Starting HTTP server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("HTTP server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	hub.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown grace period exceeded, forcing exit: %w", err)
	}

	logrus.Info("Server stopped gracefully")
	return nil
}
