package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/reviewlens/backend/internal/export"
	"github.com/reviewlens/backend/internal/ingest"
	"github.com/reviewlens/backend/internal/metrics"
	"github.com/reviewlens/backend/internal/pipeline"
	"github.com/reviewlens/backend/pkg/config"
	appLogger "github.com/reviewlens/backend/pkg/logger"
)

func main() {
	input := flag.String("input", "", "input CSV path (overrides config)")
	outDir := flag.String("out", "", "output directory (overrides config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *input != "" {
		cfg.Ingest.Input = *input
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	pipe, err := pipeline.New(cfg)
	if err != nil {
		appLogger.Fatal("Failed to build pipeline", zap.Error(err))
	}

	f, err := os.Open(cfg.Ingest.Input)
	if err != nil {
		appLogger.Fatal("Failed to open input", zap.String("path", cfg.Ingest.Input), zap.Error(err))
	}

	reviews, err := ingest.ReadCSV(f)
	f.Close()
	if err != nil {
		appLogger.Fatal("Failed to load reviews", zap.Error(err))
	}

	cleaned := ingest.Clean(reviews, ingest.CleanOptions{
		MinTextLength: cfg.Ingest.MinTextLength,
		SampleSize:    cfg.Ingest.SampleSize,
	})

	result, err := pipe.Run(context.Background(), cleaned)
	if err != nil {
		appLogger.Fatal("Pipeline run failed", zap.Error(err))
	}

	if err := export.WriteAll(cfg.Export.Dir, result); err != nil {
		appLogger.Fatal("Failed to write artifacts", zap.Error(err))
	}

	appLogger.Info("Analysis complete",
		zap.String("run_id", result.RunID),
		zap.Int("total_reviews", result.Stats.TotalReviews),
		zap.Int("degraded_reviews", result.Stats.DegradedReviews),
		zap.Float64("average_rating", result.Stats.AverageRating),
		zap.String("output_dir", cfg.Export.Dir),
	)
}
