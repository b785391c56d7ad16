// Package sentiment scores review text polarity and derives the discrete
// sentiment label.
//
// Two independent lexicon scorers run over the same text. The primary
// (compound) score is authoritative: it is the polarity reported on the
// record and the only input to the label thresholds. The secondary
// (pattern) score exists to surface disagreement, which is flagged on the
// record but never changes the label.
//
// All scoring is deterministic and safe for concurrent use.
package sentiment

import (
	"go.uber.org/zap"

	"github.com/reviewlens/backend/internal/models"
	"github.com/reviewlens/backend/pkg/logger"
)

// Scorer computes a polarity estimate in [-1, 1] for normalized text.
type Scorer interface {
	Name() string
	Score(text string) (float64, error)
}

// Thresholds are the fixed label cutoffs. Polarity above Positive maps to
// Positive, below Negative to Negative, and the closed band between them
// to Neutral.
type Thresholds struct {
	Positive float64
	Negative float64
}

// Score is the reconciled output for one review.
type Score struct {
	Polarity  float64
	Secondary float64
	Label     models.Label
	// Degraded is set when a scorer failed and the review was recovered
	// as Neutral/zero rather than aborting the batch.
	Degraded bool
	// Disagree is set when the two scorers produced opposite signs.
	Disagree bool
}

// Analyzer runs both scorers and reconciles their outputs.
type Analyzer struct {
	primary   Scorer
	secondary Scorer
	th        Thresholds
}

// NewAnalyzer wires the two scorers behind the reconciliation policy.
// Threshold ordering must already be validated by config.
func NewAnalyzer(primary, secondary Scorer, th Thresholds) *Analyzer {
	return &Analyzer{primary: primary, secondary: secondary, th: th}
}

// NewDefaultAnalyzer returns the stock compound-primary, pattern-secondary
// analyzer.
func NewDefaultAnalyzer(th Thresholds) *Analyzer {
	return NewAnalyzer(NewCompoundScorer(), NewPatternScorer(), th)
}

// Analyze scores normalized text. Empty text yields zero polarity and
// Neutral. A primary scorer failure degrades the review to Neutral/zero;
// a secondary failure keeps the authoritative score and only flags
// degradation. Analyze itself never fails.
func (a *Analyzer) Analyze(text string) Score {
	if text == "" {
		return Score{Label: models.Neutral}
	}

	primary, err := a.primary.Score(text)
	if err != nil {
		logger.Warn("primary scorer degraded, review recorded as neutral",
			zap.String("scorer", a.primary.Name()),
			zap.Error(err),
		)
		return Score{Label: models.Neutral, Degraded: true}
	}

	out := Score{
		Polarity: primary,
		Label:    a.LabelFor(primary),
	}

	secondary, err := a.secondary.Score(text)
	if err != nil {
		logger.Warn("secondary scorer degraded, keeping authoritative score",
			zap.String("scorer", a.secondary.Name()),
			zap.Error(err),
		)
		out.Degraded = true
		return out
	}

	out.Secondary = secondary
	out.Disagree = (primary > 0 && secondary < 0) || (primary < 0 && secondary > 0)
	return out
}

// LabelFor maps an authoritative polarity to its label. Monotonic step
// function of the score under fixed thresholds.
func (a *Analyzer) LabelFor(polarity float64) models.Label {
	switch {
	case polarity > a.th.Positive:
		return models.Positive
	case polarity < a.th.Negative:
		return models.Negative
	default:
		return models.Neutral
	}
}
