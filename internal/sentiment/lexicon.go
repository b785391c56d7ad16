package sentiment

import (
	_ "embed"
	"strconv"
	"strings"
)

// maxValence is the magnitude of the strongest lexicon entry. Per-word
// scores are scaled by it when a scorer reports in [-1, 1] directly.
const maxValence = 4.0

//go:embed lexicon.tsv
var rawLexicon string

// valences maps lowercase tokens to raw valence scores, built once at init.
var valences map[string]float64

func init() {
	valences = parseLexicon(rawLexicon)
}

// parseLexicon parses tab-separated "token\tvalence" lines, skipping
// blanks, comments, and malformed rows.
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 256)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		m[strings.TrimSpace(parts[0])] = v
	}
	return m
}

// boosters raise or dampen the valence of the word they precede. Values
// are raw valence increments, sign-aligned with the boosted word.
var boosters = map[string]float64{
	"absolutely": 0.9,
	"amazingly":  0.9,
	"completely": 0.7,
	"especially": 0.5,
	"extremely":  0.9,
	"highly":     0.7,
	"incredibly": 0.9,
	"really":     0.6,
	"remarkably": 0.7,
	"so":         0.5,
	"super":      0.7,
	"totally":    0.7,
	"truly":      0.6,
	"utterly":    0.9,
	"very":       0.7,

	"almost":     -0.5,
	"barely":     -0.8,
	"hardly":     -0.8,
	"kind":       -0.4,
	"kinda":      -0.4,
	"little":     -0.5,
	"marginally": -0.6,
	"slightly":   -0.6,
	"somewhat":   -0.5,
	"sort":       -0.4,
}

// negations flip the valence of the word they precede.
var negations = map[string]struct{}{
	"not":     {},
	"no":      {},
	"never":   {},
	"neither": {},
	"nobody":  {},
	"none":    {},
	"nothing": {},
	"nowhere": {},
	"cannot":  {},
	"cant":    {},
	"dont":    {},
	"doesnt":  {},
	"didnt":   {},
	"wont":    {},
	"wasnt":   {},
	"werent":  {},
	"isnt":    {},
	"arent":   {},
	"aint":    {},
	"without": {},
	"lack":    {},
	"lacking": {},
}

// isNegation reports whether tok negates a following sentiment word,
// covering both bare forms and n't contractions.
func isNegation(tok string) bool {
	if _, ok := negations[strings.ReplaceAll(tok, "'", "")]; ok {
		return true
	}
	return strings.HasSuffix(tok, "n't")
}
