package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emotiai/config"
	_ "emotiai/docs" // Swagger docs
	"emotiai/internal/analysis/fallback"
	"emotiai/internal/analysis/upstream"
	"emotiai/internal/analysis/usecase"
	"emotiai/internal/httpserver"
	"emotiai/pkg/log"
)

// @title       EmotiAI API
// @description Emotion detection, sentiment analysis and empathetic response generation with local fallbacks.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting EmotiAI API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Analysis domain
	adapters, err := upstream.New(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize upstream adapters: ", err)
		return
	}

	estimator := fallback.New(
		fallback.WithRand(fallback.NewRand(cfg.Fallback.Seed)),
		fallback.WithRandomBaseline(cfg.Fallback.LegacyRandomBaseline),
	)
	if cfg.Fallback.LegacyRandomBaseline {
		logger.Warn(ctx, "Fallback emotion baseline is random; results are not reproducible without fallback.seed")
	}

	analysisUC := usecase.New(logger, adapters, estimator)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		StaticDir:       cfg.HTTPServer.StaticDir,
		AnalysisUseCase: analysisUC,
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
