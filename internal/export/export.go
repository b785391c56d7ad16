// Package export writes the three run artifacts: the scored-review table,
// the statistics JSON, and the executive summary. All three are flat
// files and byte-stable across runs on identical input.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/reviewlens/backend/internal/models"
	"github.com/reviewlens/backend/internal/pipeline"
)

var scoredHeader = []string{
	"id", "product_id", "rating", "timestamp", "text",
	"polarity", "sentiment", "category", "degraded",
}

// WriteScoredCSV writes the scored-review table: the original columns
// plus polarity, sentiment label, category, and the degraded flag.
func WriteScoredCSV(w io.Writer, reviews []models.ScoredReview) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scoredHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range reviews {
		record := []string{
			r.ID,
			r.ProductID,
			strconv.Itoa(r.Rating),
			strconv.FormatInt(r.Timestamp.Unix(), 10),
			r.Text,
			strconv.FormatFloat(r.Polarity, 'f', 4, 64),
			r.Sentiment.String(),
			r.Category,
			strconv.FormatBool(r.Degraded),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write review %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteStatsJSON writes the key-addressable statistics artifact. Struct
// marshalling fixes the field order, keeping the artifact stable under
// repeated runs.
func WriteStatsJSON(w io.Writer, stats *models.AggregateStats) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	return nil
}

// WriteSummary writes the plain-text executive summary.
func WriteSummary(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text+"\n"); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// WriteAll writes every artifact of a run into dir, creating it if needed.
func WriteAll(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"reviews_scored.csv", func(w io.Writer) error { return WriteScoredCSV(w, result.ScoredReviews) }},
		{"sentiment_stats.json", func(w io.Writer) error { return WriteStatsJSON(w, result.Stats) }},
		{"executive_summary.txt", func(w io.Writer) error { return WriteSummary(w, result.Summary) }},
		{"topics_analysis.txt", func(w io.Writer) error { return WriteSummary(w, result.TopicsReport) }},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
