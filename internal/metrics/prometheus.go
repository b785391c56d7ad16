package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReviewsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewlens_reviews_processed_total",
			Help: "Total reviews scored across all pipeline runs",
		},
	)

	ReviewsDegraded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reviewlens_reviews_degraded_total",
			Help: "Reviews recovered as neutral after a scorer failure",
		},
	)

	SentimentLabels = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_sentiment_labels_total",
			Help: "Reviews per assigned sentiment label",
		},
		[]string{"label"},
	)

	Categories = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_categories_total",
			Help: "Reviews per assigned complaint category",
		},
		[]string{"category"},
	)

	PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reviewlens_pipeline_duration_seconds",
			Help:    "End-to-end batch pipeline duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
		},
	)

	PipelineRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviewlens_pipeline_runs_total",
			Help: "Pipeline runs by outcome",
		},
		[]string{"status"},
	)

	BatchSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "reviewlens_batch_size_reviews",
			Help:    "Reviews per pipeline run",
			Buckets: []float64{10, 100, 500, 1000, 5000, 10000, 50000},
		},
	)
)

func Init() {
	prometheus.MustRegister(ReviewsProcessed)
	prometheus.MustRegister(ReviewsDegraded)
	prometheus.MustRegister(SentimentLabels)
	prometheus.MustRegister(Categories)
	prometheus.MustRegister(PipelineDuration)
	prometheus.MustRegister(PipelineRuns)
	prometheus.MustRegister(BatchSize)
}

func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
