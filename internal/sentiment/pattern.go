package sentiment

import (
	"fmt"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// PatternScorer is the secondary polarity scorer: a plain average of
// per-token valences over the tokens the lexicon knows, scaled to [-1, 1].
// It deliberately ignores punctuation emphasis so that its estimate is
// independent of the compound scorer's.
type PatternScorer struct{}

func NewPatternScorer() *PatternScorer {
	return &PatternScorer{}
}

func (s *PatternScorer) Name() string { return "pattern" }

func (s *PatternScorer) Score(text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	if len(text) > maxInputBytes {
		return 0, fmt.Errorf("input exceeds %d bytes", maxInputBytes)
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
		prose.WithSegmentation(false),
	)
	if err != nil {
		return 0, fmt.Errorf("tokenize: %w", err)
	}

	tokens := doc.Tokens()
	var sum float64
	scored := 0

	for i, t := range tokens {
		word := strings.ToLower(t.Text)
		valence, ok := valences[word]
		if !ok {
			continue
		}
		polarity := valence / maxValence

		if i > 0 {
			prev := strings.ToLower(tokens[i-1].Text)
			if inc, ok := boosters[prev]; ok {
				polarity *= 1 + inc/maxValence
			}
			if isNegation(prev) {
				polarity *= -0.5
			}
		}

		sum += polarity
		scored++
	}

	if scored == 0 {
		return 0, nil
	}
	return clamp(sum / float64(scored)), nil
}
