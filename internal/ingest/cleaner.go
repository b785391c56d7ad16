package ingest

import (
	"go.uber.org/zap"

	"github.com/reviewlens/backend/internal/models"
	"github.com/reviewlens/backend/internal/normalize"
	"github.com/reviewlens/backend/pkg/logger"
)

// CleanOptions tune the lossy cleaning pass.
type CleanOptions struct {
	// MinTextLength drops reviews shorter than this many characters
	// after markup stripping; they carry too little signal to score.
	MinTextLength int
	// SampleSize caps the batch at the first N cleaned reviews; zero
	// means no cap. Taking a prefix keeps runs reproducible.
	SampleSize int
}

// Clean drops unusable reviews: empty text, duplicate text, and reviews
// under the length floor. Markup fragments are stripped from the text of
// every survivor. Input order is preserved.
func Clean(reviews []models.Review, opts CleanOptions) []models.Review {
	seen := make(map[string]struct{}, len(reviews))
	out := make([]models.Review, 0, len(reviews))

	var dropped, duplicates int
	for _, r := range reviews {
		text := normalize.StripHTML(r.Text)
		if len(text) == 0 || len(text) < opts.MinTextLength {
			dropped++
			continue
		}
		if _, dup := seen[text]; dup {
			duplicates++
			continue
		}
		seen[text] = struct{}{}

		r.Text = text
		out = append(out, r)

		if opts.SampleSize > 0 && len(out) == opts.SampleSize {
			break
		}
	}

	logger.Info("review batch cleaned",
		zap.Int("input", len(reviews)),
		zap.Int("kept", len(out)),
		zap.Int("dropped_short_or_empty", dropped),
		zap.Int("dropped_duplicates", duplicates),
	)
	return out
}
