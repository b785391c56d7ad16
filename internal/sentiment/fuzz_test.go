package sentiment

import (
	"math"
	"testing"

	"github.com/reviewlens/backend/internal/models"
)

func FuzzCompoundScore(f *testing.F) {
	f.Add("great product, highly recommend")
	f.Add("arrived late and broken!!!")
	f.Add("")
	f.Add("not bad")
	f.Add("日本語 ✨ mixed テキスト")
	f.Add("very very very good")

	scorer := NewCompoundScorer()

	f.Fuzz(func(t *testing.T, s string) {
		got, err := scorer.Score(s)
		if err != nil {
			// Only oversized input may error.
			if len(s) <= maxInputBytes {
				t.Fatalf("unexpected error for %d bytes: %v", len(s), err)
			}
			return
		}

		if got < -1.0 || got > 1.0 {
			t.Errorf("score out of range: %.4f", got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("score is NaN or Inf: %v", got)
		}
	})
}

func FuzzAnalyze(f *testing.F) {
	f.Add("terrible, want a refund")
	f.Add("")
	f.Add("absolutely delicious")

	a := NewDefaultAnalyzer(testThresholds)

	f.Fuzz(func(t *testing.T, s string) {
		got := a.Analyze(s)

		switch got.Label {
		case models.Negative, models.Neutral, models.Positive:
		default:
			t.Errorf("invalid label: %d", got.Label)
		}

		if got.Label != a.LabelFor(got.Polarity) && !got.Degraded {
			t.Errorf("label %v inconsistent with polarity %.4f", got.Label, got.Polarity)
		}
	})
}
