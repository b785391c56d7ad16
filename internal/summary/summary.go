// Package summary renders aggregate statistics into a fixed-template
// executive summary. The template path is fully deterministic; the
// optional AI embellisher is an external collaborator and never part of
// the guaranteed output.
package summary

import (
	"fmt"
	"strings"

	"github.com/reviewlens/backend/internal/models"
)

const topIssueLimit = 3

// fallbackIssues is used when the corpus has no negative reviews to rank.
const fallbackIssues = "product quality, shipping, and customer service"

// Generate renders the three-paragraph executive summary from aggregate
// stats. Identical stats always produce the identical string.
func Generate(stats *models.AggregateStats) string {
	var pos, neg, neu float64
	for _, sc := range stats.SentimentDistribution {
		switch sc.Label {
		case models.Positive:
			pos = sc.Percentage
		case models.Negative:
			neg = sc.Percentage
		case models.Neutral:
			neu = sc.Percentage
		}
	}

	para1 := fmt.Sprintf(
		"Analysis of %s customer reviews reveals a rating average of %.2f out of 5 stars, "+
			"with %.0f%% expressing positive sentiment, %.0f%% negative, and %.0f%% neutral. "+
			"This distribution suggests that while the majority of customers are satisfied, "+
			"there is a significant segment experiencing issues that require attention.",
		groupDigits(stats.TotalReviews), stats.AverageRating, pos, neg, neu,
	)

	para2 := fmt.Sprintf(
		"The primary concerns identified in negative feedback center around %s. "+
			"These recurring themes represent the most critical areas for improvement and offer "+
			"clear opportunities to enhance customer satisfaction. Addressing these specific pain "+
			"points could potentially convert a substantial portion of dissatisfied customers into "+
			"brand advocates.",
		topIssues(stats),
	)

	para3 := "Moving forward, we recommend prioritizing improvements in the areas with highest " +
		"negative mention rates. Implementing targeted solutions for these top issues could result " +
		"in measurable improvements to both customer satisfaction scores and repeat purchase rates. " +
		"Regular monitoring of review sentiment will help track the effectiveness of any corrective " +
		"measures implemented."

	return para1 + "\n\n" + para2 + "\n\n" + para3
}

// Topics renders the top-5 topic prevalence report over negative reviews.
func Topics(stats *models.AggregateStats) string {
	topics := stats.Topics
	if len(topics) > 5 {
		topics = topics[:5]
	}

	var b strings.Builder
	for i, t := range topics {
		fmt.Fprintf(&b, "TOPIC %d: %s\n", i+1, t.Category)
		fmt.Fprintf(&b, "Description: Predominantly negative mentions related to %s\n", strings.ToLower(t.Category))
		b.WriteString("Sentiment: Negative\n")
		fmt.Fprintf(&b, "Prevalence: %.1f%%\n\n", t.Percentage)
	}
	return strings.TrimRight(b.String(), "\n")
}

// topIssues formats the leading negative categories, e.g.
// "Shipping/Delivery (42% of negative reviews), Product Quality (31% of
// negative reviews)".
func topIssues(stats *models.AggregateStats) string {
	cats := stats.NegativeCategories
	if len(cats) == 0 {
		return fallbackIssues
	}
	if len(cats) > topIssueLimit {
		cats = cats[:topIssueLimit]
	}

	parts := make([]string, 0, len(cats))
	for _, c := range cats {
		parts = append(parts, fmt.Sprintf("%s (%.0f%% of negative reviews)", c.Category, c.Percentage))
	}
	return strings.Join(parts, ", ")
}

// groupDigits formats n with thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
