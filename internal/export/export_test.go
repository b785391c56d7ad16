package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/backend/internal/models"
	"github.com/reviewlens/backend/internal/pipeline"
)

func sampleScored() []models.ScoredReview {
	return []models.ScoredReview{
		{
			Review: models.Review{
				ID:        "1",
				ProductID: "B001",
				Text:      "arrived late and broken",
				Rating:    2,
				Timestamp: time.Unix(1303862400, 0).UTC(),
			},
			NormText:  "arrived late and broken",
			Polarity:  -0.7096,
			Sentiment: models.Negative,
			Category:  "Shipping/Delivery",
		},
		{
			Review: models.Review{
				ID:        "2",
				ProductID: "B002",
				Text:      "great tea, love it",
				Rating:    5,
				Timestamp: time.Unix(1306540800, 0).UTC(),
			},
			NormText:  "great tea, love it",
			Polarity:  0.7506,
			Sentiment: models.Positive,
			Category:  "Uncategorized",
		},
	}
}

func TestWriteScoredCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScoredCSV(&buf, sampleScored()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,product_id,rating,timestamp,text,polarity,sentiment,category,degraded", lines[0])
	assert.Contains(t, lines[1], "Shipping/Delivery")
	assert.Contains(t, lines[1], "-0.7096")
	assert.Contains(t, lines[1], "Negative")
	assert.Contains(t, lines[2], "Positive")
}

func TestWriteStatsJSONStable(t *testing.T) {
	stats := &models.AggregateStats{
		TotalReviews: 2,
		SentimentDistribution: []models.SentimentCount{
			{Label: models.Positive, Count: 1, Percentage: 50.0},
			{Label: models.Negative, Count: 1, Percentage: 50.0},
			{Label: models.Neutral, Count: 0, Percentage: 0},
		},
		RatingHistogram: map[int]int{1: 0, 2: 1, 3: 0, 4: 0, 5: 1},
	}

	var first, second bytes.Buffer
	require.NoError(t, WriteStatsJSON(&first, stats))
	require.NoError(t, WriteStatsJSON(&second, stats))

	// The artifact must be byte-identical across runs on identical input.
	assert.Equal(t, first.Bytes(), second.Bytes())
	assert.Contains(t, first.String(), `"sentiment_distribution"`)
	assert.Contains(t, first.String(), `"Positive"`)
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs")
	result := &pipeline.Result{
		RunID:         "test-run",
		ScoredReviews: sampleScored(),
		Stats:         &models.AggregateStats{TotalReviews: 2, RatingHistogram: map[int]int{}},
		Summary:       "summary body",
		TopicsReport:  "TOPIC 1: Shipping/Delivery",
	}

	require.NoError(t, WriteAll(dir, result))

	for _, name := range []string{
		"reviews_scored.csv", "sentiment_stats.json", "executive_summary.txt", "topics_analysis.txt",
	} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}
