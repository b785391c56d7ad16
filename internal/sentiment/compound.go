package sentiment

import (
	"fmt"
	"math"
	"strings"
	"unicode"
)

// maxInputBytes bounds scorer input. Oversized reviews degrade instead of
// stalling the batch.
const maxInputBytes = 1 << 20

const (
	// compoundAlpha normalizes the valence sum into [-1, 1].
	compoundAlpha = 15.0
	// negationScalar flips and dampens a negated valence.
	negationScalar = -0.74
	// exclamationBoost is the per-'!' emphasis, capped at four marks.
	exclamationBoost = 0.292
	maxExclamations  = 4
	// negationScope is how many preceding tokens a negation reaches over.
	negationScope = 3
)

// CompoundScorer is the primary polarity scorer. It sums per-token lexicon
// valences with negation flipping, booster adjustment, and exclamation
// emphasis, then squashes the sum into [-1, 1].
type CompoundScorer struct{}

func NewCompoundScorer() *CompoundScorer {
	return &CompoundScorer{}
}

func (s *CompoundScorer) Name() string { return "compound" }

// Score returns the compound polarity of text in [-1, 1]. Text is assumed
// normalized (lowercase, trimmed). Tokens outside the lexicon, including
// any non-ASCII material, are skipped rather than failing.
func (s *CompoundScorer) Score(text string) (float64, error) {
	if text == "" {
		return 0, nil
	}
	if len(text) > maxInputBytes {
		return 0, fmt.Errorf("input exceeds %d bytes", maxInputBytes)
	}

	tokens := tokenize(text)
	var sum float64
	scored := 0

	for i, tok := range tokens {
		if isNegation(tok) {
			continue
		}
		valence, ok := valences[tok]
		if !ok {
			continue
		}

		// Boosters within scope, attenuated with distance.
		for d := 1; d <= negationScope && i-d >= 0; d++ {
			inc, ok := boosters[tokens[i-d]]
			if !ok {
				continue
			}
			if valence < 0 {
				inc = -inc
			}
			valence += inc * (1.0 - 0.05*float64(d-1))
		}

		if negatedBefore(tokens, i) {
			valence *= negationScalar
		}

		sum += valence
		scored++
	}

	if scored == 0 {
		return 0, nil
	}

	// Exclamation marks amplify whatever direction the text already leans.
	ep := float64(min(strings.Count(text, "!"), maxExclamations)) * exclamationBoost
	if sum > 0 {
		sum += ep
	} else if sum < 0 {
		sum -= ep
	}

	return clamp(sum / math.Sqrt(sum*sum+compoundAlpha)), nil
}

// negatedBefore reports whether any token within negationScope before
// position i is a negation.
func negatedBefore(tokens []string, i int) bool {
	for d := 1; d <= negationScope && i-d >= 0; d++ {
		if isNegation(tokens[i-d]) {
			return true
		}
	}
	return false
}

// tokenize splits on whitespace and strips surrounding punctuation, so
// "broken!" and "broken" hit the same lexicon entry. Interior apostrophes
// survive for contraction handling.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		})
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
