package models

import "time"

// Review is one cleaned input record. Immutable once loaded.
type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

// ScoredReview is a Review plus everything the pipeline derives from it.
// Created once per review and never mutated; downstream stages only read it.
type ScoredReview struct {
	Review
	NormText  string  `json:"norm_text"`
	Polarity  float64 `json:"polarity"`
	Sentiment Label   `json:"sentiment"`
	Category  string  `json:"category"`
	// Degraded marks reviews whose sentiment scoring failed and was
	// recovered as Neutral/zero. They stay in every denominator.
	Degraded bool `json:"degraded,omitempty"`
	// Disagree marks reviews where the two polarity scorers produced
	// opposite signs. The primary score remains authoritative.
	Disagree bool `json:"disagree,omitempty"`
}

// SentimentCount is the per-label slice of the sentiment distribution.
type SentimentCount struct {
	Label      Label   `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// CategoryCount is one row of the negative-review category breakdown.
// Percentage is relative to the number of negative reviews.
type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TrendBucket is one time bucket of the rating trend series. HasData
// distinguishes an observed-empty bucket from one with reviews; when it is
// false AverageRating is meaningless and serialized as null.
type TrendBucket struct {
	Period        string    `json:"period"`
	Start         time.Time `json:"start"`
	ReviewCount   int       `json:"review_count"`
	AverageRating *float64  `json:"average_rating"`
	HasData       bool      `json:"has_data"`
}

// RatingBySentiment reports the mean star rating among reviews with a
// given sentiment label.
type RatingBySentiment struct {
	Label         Label   `json:"label"`
	AverageRating float64 `json:"average_rating"`
}

// WordCount is one entry of the negative-review word frequency list.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// AggregateStats is the corpus-wide reduction over all scored reviews.
// Recomputed from scratch on every run; stable for identical input.
type AggregateStats struct {
	TotalReviews    int     `json:"total_reviews"`
	DegradedReviews int     `json:"degraded_reviews"`
	AverageRating   float64 `json:"average_rating"`

	SentimentDistribution []SentimentCount `json:"sentiment_distribution"`
	NegativeCategories    []CategoryCount  `json:"negative_categories"`
	// Topics counts overlapping category mentions across negative
	// reviews: unlike NegativeCategories, one review can feed several
	// topics.
	Topics            []CategoryCount     `json:"topics"`
	RatingHistogram   map[int]int         `json:"rating_histogram"`
	RatingBySentiment []RatingBySentiment `json:"rating_by_sentiment"`
	Trend             []TrendBucket       `json:"trend"`
	TopNegativeWords  []WordCount         `json:"top_negative_words"`
	TrendGranularity  string              `json:"trend_granularity"`
}
