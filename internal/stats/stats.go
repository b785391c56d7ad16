// Package stats reduces the full scored-review set into corpus-level
// aggregates. Aggregation is a single pass over a completed batch: it
// never updates incrementally, and identical input always produces an
// identical AggregateStats value.
package stats

import (
	"math"
	"regexp"
	"sort"
	"time"

	"github.com/reviewlens/backend/internal/models"
)

const topWordLimit = 20

// wordPattern extracts candidate complaint words: lowercase, four letters
// or more. Text is already normalized.
var wordPattern = regexp.MustCompile(`\b[a-z]{4,}\b`)

// Aggregate computes AggregateStats over reviews with trend buckets at the
// given granularity ("month", "week", or "day"). An empty input yields
// all-zero stats, never an error.
func Aggregate(reviews []models.ScoredReview, granularity string) *models.AggregateStats {
	out := &models.AggregateStats{
		TotalReviews:     len(reviews),
		RatingHistogram:  emptyHistogram(),
		TrendGranularity: granularity,
	}

	counts := map[models.Label]int{}
	ratingSums := map[models.Label]int{}
	var ratingTotal int

	for _, r := range reviews {
		counts[r.Sentiment]++
		ratingSums[r.Sentiment] += r.Rating
		ratingTotal += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			out.RatingHistogram[r.Rating]++
		}
		if r.Degraded {
			out.DegradedReviews++
		}
	}

	for _, label := range models.Labels() {
		out.SentimentDistribution = append(out.SentimentDistribution, models.SentimentCount{
			Label:      label,
			Count:      counts[label],
			Percentage: percent(counts[label], len(reviews)),
		})
		if counts[label] > 0 {
			out.RatingBySentiment = append(out.RatingBySentiment, models.RatingBySentiment{
				Label:         label,
				AverageRating: round2(float64(ratingSums[label]) / float64(counts[label])),
			})
		}
	}

	if len(reviews) > 0 {
		out.AverageRating = round2(float64(ratingTotal) / float64(len(reviews)))
	}

	negatives := make([]models.ScoredReview, 0, counts[models.Negative])
	for _, r := range reviews {
		if r.Sentiment == models.Negative {
			negatives = append(negatives, r)
		}
	}

	out.NegativeCategories = categoryBreakdown(negatives)
	out.TopNegativeWords = topWords(negatives)
	out.Trend = trendSeries(reviews, granularity)

	return out
}

// categoryBreakdown counts categories over negative reviews only. The
// percentage denominator is the negative-review count. Sorted by count
// descending, ties by name ascending.
func categoryBreakdown(negatives []models.ScoredReview) []models.CategoryCount {
	counts := map[string]int{}
	for _, r := range negatives {
		counts[r.Category]++
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, models.CategoryCount{
			Category:   cat,
			Count:      n,
			Percentage: percent(n, len(negatives)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TopicPrevalence counts how many negative reviews mention each category,
// using matcher to list every category a text touches. A review feeds all
// its topics, so percentages can sum past 100. Sorted like the category
// breakdown for determinism.
func TopicPrevalence(reviews []models.ScoredReview, matcher func(string) []string) []models.CategoryCount {
	counts := map[string]int{}
	negatives := 0
	for _, r := range reviews {
		if r.Sentiment != models.Negative {
			continue
		}
		negatives++
		for _, topic := range matcher(r.NormText) {
			counts[topic]++
		}
	}

	out := make([]models.CategoryCount, 0, len(counts))
	for topic, n := range counts {
		out = append(out, models.CategoryCount{
			Category:   topic,
			Count:      n,
			Percentage: percent(n, negatives),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// topWords ranks stopword-filtered words across negative review text.
func topWords(negatives []models.ScoredReview) []models.WordCount {
	freq := map[string]int{}
	for _, r := range negatives {
		for _, w := range wordPattern.FindAllString(r.NormText, -1) {
			if _, stop := stopwords[w]; stop {
				continue
			}
			freq[w]++
		}
	}

	out := make([]models.WordCount, 0, len(freq))
	for w, n := range freq {
		out = append(out, models.WordCount{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > topWordLimit {
		out = out[:topWordLimit]
	}
	return out
}

// trendSeries buckets reviews by timestamp and reports count plus average
// rating per bucket, chronologically. Interior buckets with no reviews are
// present with HasData=false so a gap is distinguishable from "no data".
func trendSeries(reviews []models.ScoredReview, granularity string) []models.TrendBucket {
	if len(reviews) == 0 {
		return nil
	}

	type acc struct {
		count     int
		ratingSum int
	}
	buckets := map[time.Time]*acc{}
	var first, last time.Time

	for _, r := range reviews {
		start := bucketStart(r.Timestamp, granularity)
		a := buckets[start]
		if a == nil {
			a = &acc{}
			buckets[start] = a
		}
		a.count++
		a.ratingSum += r.Rating
		if first.IsZero() || start.Before(first) {
			first = start
		}
		if last.IsZero() || start.After(last) {
			last = start
		}
	}

	var out []models.TrendBucket
	for start := first; !start.After(last); start = nextBucket(start, granularity) {
		b := models.TrendBucket{
			Period: periodLabel(start, granularity),
			Start:  start,
		}
		if a, ok := buckets[start]; ok {
			avg := round2(float64(a.ratingSum) / float64(a.count))
			b.ReviewCount = a.count
			b.AverageRating = &avg
			b.HasData = true
		}
		out = append(out, b)
	}
	return out
}

func bucketStart(t time.Time, granularity string) time.Time {
	t = t.UTC()
	switch granularity {
	case "day":
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case "week":
		// Weeks start on Monday.
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

func nextBucket(start time.Time, granularity string) time.Time {
	switch granularity {
	case "day":
		return start.AddDate(0, 0, 1)
	case "week":
		return start.AddDate(0, 0, 7)
	default:
		return start.AddDate(0, 1, 0)
	}
}

func periodLabel(start time.Time, granularity string) string {
	if granularity == "month" {
		return start.Format("2006-01")
	}
	return start.Format("2006-01-02")
}

// percent rounds to one decimal place, the precision the summary and
// dashboard report at.
func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func emptyHistogram() map[int]int {
	return map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
}
