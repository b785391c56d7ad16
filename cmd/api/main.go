package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/reviewlens/backend/internal/api/handlers"
	"github.com/reviewlens/backend/internal/ingest"
	"github.com/reviewlens/backend/internal/metrics"
	"github.com/reviewlens/backend/internal/pipeline"
	"github.com/reviewlens/backend/pkg/config"
	appLogger "github.com/reviewlens/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting ReviewLens API server")

	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	pipe, err := pipeline.New(cfg)
	if err != nil {
		appLogger.Fatal("Failed to build pipeline", zap.Error(err))
	}

	run := func(ctx context.Context) (*pipeline.Result, error) {
		f, err := os.Open(cfg.Ingest.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input %s: %w", cfg.Ingest.Input, err)
		}
		defer f.Close()

		reviews, err := ingest.ReadCSV(f)
		if err != nil {
			return nil, err
		}
		cleaned := ingest.Clean(reviews, ingest.CleanOptions{
			MinTextLength: cfg.Ingest.MinTextLength,
			SampleSize:    cfg.Ingest.SampleSize,
		})
		return pipe.Run(ctx, cleaned)
	}

	store := handlers.NewStore()

	// Serve something immediately if the configured input is readable;
	// otherwise wait for the first POST /refresh.
	if result, err := run(context.Background()); err != nil {
		appLogger.Warn("Initial analysis run failed", zap.Error(err))
	} else {
		store.Set(result)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		BodyLimit:    cfg.Server.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, OPTIONS",
	}))

	statsHandler := handlers.NewStatsHandler(store)
	reviewHandler := handlers.NewReviewHandler(store)
	refreshHandler := handlers.NewRefreshHandler(store, run)

	api := app.Group("/api/v1")

	api.Get("/stats", statsHandler.GetStats)
	api.Get("/summary", statsHandler.GetSummary)
	api.Get("/reviews", reviewHandler.ListReviews)
	api.Post("/refresh", refreshHandler.Refresh)

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Unix(),
		})
	})

	if cfg.Metrics.Enabled {
		app.Get("/metrics", metrics.MetricsHandler())
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
