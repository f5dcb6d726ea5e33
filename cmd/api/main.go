package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/app"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/clock"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/config"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/logging"
	"github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/storage/memory"
	transporthttp "github.com/surajbardeAS24/skills-getting-started-with-github-copilot/internal/transport/http"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = logger.Sync() }()

	registry := memory.NewRegistry(memory.Seed())

	var opts []app.ActivityServiceOption
	if cfg.EnforceCapacity {
		opts = append(opts, app.WithCapacityEnforcement())
		logger.Info("capacity enforcement enabled")
	}
	svc := app.NewActivityService(registry, logger, opts...)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", transporthttp.HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("GET /activities", transporthttp.HandleListActivities(svc))
	mux.Handle("POST /activities/{name}/signup", transporthttp.HandleSignup(svc))
	mux.Handle("DELETE /activities/{name}/unregister", transporthttp.HandleUnregister(svc))
	mux.HandleFunc("GET /{$}", transporthttp.RootHandler)
	mux.Handle("GET /static/", transporthttp.StaticHandler(cfg.StaticDir))
	mux.Handle("/", transporthttp.NotFoundHandler())

	handler := transporthttp.RequestID(
		transporthttp.RequestLogger(
			transporthttp.CORS(cfg.CORSOriginList(), mux),
			logger,
			clock.System(),
		),
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", zap.String("port", cfg.Port))

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", zap.Error(err))
	}
	logger.Info("server stopped")
}
