package stats

// stopwords excluded from the negative-review word frequency list. Only
// words of four letters or more can match wordPattern, but the full set is
// kept so the pattern can be tuned without touching this table.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"is": {}, "was": {}, "are": {}, "were": {}, "been": {}, "be": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "it": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "i": {}, "you": {},
	"he": {}, "she": {}, "we": {}, "they": {}, "with": {}, "from": {},
	"when": {}, "what": {}, "there": {}, "their": {}, "them": {},
	"then": {}, "than": {}, "just": {}, "very": {}, "much": {},
	"some": {}, "only": {}, "also": {}, "about": {}, "because": {},
	"after": {}, "before": {}, "into": {}, "over": {}, "under": {},
	"again": {}, "more": {}, "most": {}, "other": {}, "such": {},
	"even": {}, "still": {}, "being": {}, "really": {}, "which": {},
	"while": {}, "where": {}, "your": {}, "like": {},
}
