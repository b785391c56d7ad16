// Package pipeline orchestrates the batch run: per-review scoring and
// categorization fanned out over a worker pool, then a single aggregation
// pass, then summary rendering.
//
// Per-review computation shares no mutable state, so parallel and serial
// execution produce identical results; output order is always input order.
// Aggregation starts only after every review has been scored.
package pipeline

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/reviewlens/backend/internal/classify"
	"github.com/reviewlens/backend/internal/metrics"
	"github.com/reviewlens/backend/internal/models"
	"github.com/reviewlens/backend/internal/normalize"
	"github.com/reviewlens/backend/internal/sentiment"
	"github.com/reviewlens/backend/internal/stats"
	"github.com/reviewlens/backend/internal/summary"
	"github.com/reviewlens/backend/pkg/config"
	"github.com/reviewlens/backend/pkg/logger"
)

// Result is one completed pipeline run.
type Result struct {
	RunID         string                 `json:"run_id"`
	ScoredReviews []models.ScoredReview  `json:"scored_reviews"`
	Stats         *models.AggregateStats `json:"stats"`
	Summary       string                 `json:"summary"`
	TopicsReport  string                 `json:"topics_report"`
	CompletedAt   time.Time              `json:"completed_at"`
}

type Pipeline struct {
	analyzer    *sentiment.Analyzer
	classifier  *classify.Classifier
	granularity string
	workers     int
	embellisher summary.Embellisher
	metricsOn   bool
}

// New builds a pipeline from validated configuration. The rule table and
// thresholds are re-checked here so a caller wiring the pipeline directly
// still fails fast, before any review is touched.
func New(cfg *config.Config) (*Pipeline, error) {
	if cfg.Sentiment.PositiveThreshold <= cfg.Sentiment.NegativeThreshold {
		return nil, &models.ConfigError{
			Reason: fmt.Sprintf("positive cutoff %.3f must exceed negative cutoff %.3f",
				cfg.Sentiment.PositiveThreshold, cfg.Sentiment.NegativeThreshold),
		}
	}

	rules, err := classify.FromConfig(cfg.Categories.RulesPath)
	if err != nil {
		return nil, err
	}
	classifier, err := classify.New(rules)
	if err != nil {
		return nil, err
	}

	workers := cfg.Pipeline.Workers
	if workers < 1 {
		workers = 1
	}

	p := &Pipeline{
		analyzer: sentiment.NewDefaultAnalyzer(sentiment.Thresholds{
			Positive: cfg.Sentiment.PositiveThreshold,
			Negative: cfg.Sentiment.NegativeThreshold,
		}),
		classifier:  classifier,
		granularity: cfg.Trend.Granularity,
		workers:     workers,
		metricsOn:   cfg.Metrics.Enabled,
	}

	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		p.embellisher = summary.NewOpenAIEmbellisher(cfg.AI.APIKey, cfg.AI.Model, cfg.AI.MaxTokens)
	}

	return p, nil
}

// Run scores every review, aggregates, and renders the summary. An empty
// batch yields all-zero stats rather than an error. Recoverable per-review
// degradation never aborts the run.
func (p *Pipeline) Run(ctx context.Context, reviews []models.Review) (*Result, error) {
	start := time.Now()
	runID := uuid.NewString()

	logger.Info("pipeline run started",
		zap.String("run_id", runID),
		zap.Int("reviews", len(reviews)),
		zap.Int("workers", p.workers),
	)

	scored := p.scoreAll(reviews)

	// Barrier: every per-review computation is complete past this point.
	var degraded int64
	for _, r := range scored {
		if r.Degraded {
			degraded++
		}
	}

	agg := stats.Aggregate(scored, p.granularity)
	agg.Topics = stats.TopicPrevalence(scored, p.classifier.Matches)

	text := summary.Generate(agg)
	if p.embellisher != nil {
		embellished, err := p.embellisher.Embellish(ctx, text)
		if err != nil {
			logger.Warn("summary embellishment failed, keeping template output",
				zap.String("run_id", runID), zap.Error(err))
		} else {
			text = embellished
		}
	}

	result := &Result{
		RunID:         runID,
		ScoredReviews: scored,
		Stats:         agg,
		Summary:       text,
		TopicsReport:  summary.Topics(agg),
		CompletedAt:   time.Now().UTC(),
	}

	if p.metricsOn {
		p.recordMetrics(scored, time.Since(start))
	}

	logger.Info("pipeline run completed",
		zap.String("run_id", runID),
		zap.Int("reviews", len(scored)),
		zap.Int64("degraded", degraded),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// scoreAll fans reviews out across the worker pool. Results land at their
// input index, so ordering never depends on scheduling.
func (p *Pipeline) scoreAll(reviews []models.Review) []models.ScoredReview {
	scored := make([]models.ScoredReview, len(reviews))
	if len(reviews) == 0 {
		return scored
	}

	workers := p.workers
	if workers > len(reviews) {
		workers = len(reviews)
	}

	var progress atomic.Int64
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				scored[i] = p.scoreOne(reviews[i])
				if n := progress.Add(1); n%10000 == 0 {
					logger.Debug("scoring progress",
						zap.Int64("scored", n),
						zap.Int("total", len(reviews)),
					)
				}
			}
		}()
	}

	for i := range reviews {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return scored
}

// scoreOne derives the full ScoredReview for a single input record. Pure
// apart from degradation logging; never fails.
func (p *Pipeline) scoreOne(r models.Review) models.ScoredReview {
	norm := normalize.Normalize(r.Text)
	score := p.analyzer.Analyze(norm)

	return models.ScoredReview{
		Review:    r,
		NormText:  norm,
		Polarity:  score.Polarity,
		Sentiment: score.Label,
		Category:  p.classifier.Classify(norm),
		Degraded:  score.Degraded,
		Disagree:  score.Disagree,
	}
}

func (p *Pipeline) recordMetrics(scored []models.ScoredReview, elapsed time.Duration) {
	metrics.PipelineRuns.WithLabelValues("success").Inc()
	metrics.PipelineDuration.Observe(elapsed.Seconds())
	metrics.BatchSize.Observe(float64(len(scored)))
	for _, r := range scored {
		metrics.ReviewsProcessed.Inc()
		metrics.SentimentLabels.WithLabelValues(r.Sentiment.String()).Inc()
		metrics.Categories.WithLabelValues(r.Category).Inc()
		if r.Degraded {
			metrics.ReviewsDegraded.Inc()
		}
	}
}
