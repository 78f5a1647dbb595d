// BetterRest API
//
// REST API that recommends a bedtime.
//
//	@title			BetterRest API
//	@version		1.0
//	@description	Recommend a bedtime from wake-up time, desired sleep and coffee intake.
//
//	@BasePath	/v1
//
//	@tag.name			bedtime
//	@tag.description	Bedtime calculation endpoints
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/better-rest/internal/api"
	"github.com/blaisecz/better-rest/internal/api/handler"
	"github.com/blaisecz/better-rest/internal/config"
	"github.com/blaisecz/better-rest/internal/logging"
	"github.com/blaisecz/better-rest/internal/model"
	"github.com/blaisecz/better-rest/internal/service"
	"github.com/blaisecz/better-rest/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, "better-rest-api")
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracer(shutdownCtx); err != nil {
			logger.Warn("tracer shutdown failed", "error", err)
		}
	}()

	// Sleep model is loaded on the first calculation
	predictor := model.NewCachedPredictor(
		model.NewLazyLinearModel(cfg.ModelPath, logger),
		cfg.PredictionCacheSize,
		logger,
	)

	// Initialize services
	bedtimeService := service.NewBedtimeService(predictor, service.BedtimeOptions{
		Clock:     cfg.ClockFormat,
		ErrorMode: cfg.ErrorMode,
	}, logger)

	// Initialize handlers
	bedtimeHandler := handler.NewBedtimeHandler(bedtimeService, logger)

	// Setup router
	router := api.NewRouter(bedtimeHandler, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown failed", "error", err)
		}
	}()

	// Start server
	logger.Info("starting server", "addr", srv.Addr, "error_mode", cfg.ErrorMode, "clock", cfg.ClockFormat)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
