// Package classify assigns each review to a business complaint category
// via priority-ordered keyword matching.
//
// The rule table is an ordered list and the order is the contract: when a
// review matches keywords from several categories, the earliest rule wins.
// "late and defective" is Shipping/Delivery, not Product Quality, because
// the shipping rule comes first.
package classify

import (
	"fmt"
	"strings"

	"github.com/reviewlens/backend/internal/models"
)

// Uncategorized is returned when no rule matches.
const Uncategorized = "Uncategorized"

// Rule is one ordered rule-table entry: a category name and the
// case-insensitive substrings that trigger it.
type Rule struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Classifier matches normalized text against an ordered rule list.
// Immutable after construction, safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// New validates the rule table and builds a classifier. Duplicate category
// names and empty keyword sets are configuration errors: they would make
// the published rule order ambiguous.
func New(rules []Rule) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, &models.ConfigError{Reason: "category rule list is empty"}
	}

	seen := make(map[string]struct{}, len(rules))
	owned := make([]Rule, 0, len(rules))
	for i, r := range rules {
		name := strings.TrimSpace(r.Name)
		if name == "" {
			return nil, &models.ConfigError{Reason: fmt.Sprintf("rule %d has no category name", i)}
		}
		if _, dup := seen[name]; dup {
			return nil, &models.ConfigError{Reason: fmt.Sprintf("duplicate category name %q", name)}
		}
		seen[name] = struct{}{}

		kws := make([]string, 0, len(r.Keywords))
		for _, kw := range r.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		if len(kws) == 0 {
			return nil, &models.ConfigError{Reason: fmt.Sprintf("category %q has no keywords", name)}
		}
		owned = append(owned, Rule{Name: name, Keywords: kws})
	}

	return &Classifier{rules: owned}, nil
}

// Classify returns the name of the first rule with a substring match in
// normText, or Uncategorized. Pure function of text and rule list.
func (c *Classifier) Classify(normText string) string {
	if normText == "" {
		return Uncategorized
	}
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normText, kw) {
				return rule.Name
			}
		}
	}
	return Uncategorized
}

// Matches reports every category whose keywords appear in normText, in
// rule order. The aggregator uses it for topic prevalence, where a review
// counts toward every topic it mentions.
func (c *Classifier) Matches(normText string) []string {
	if normText == "" {
		return nil
	}
	var out []string
	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(normText, kw) {
				out = append(out, rule.Name)
				break
			}
		}
	}
	return out
}

// Rules returns a copy of the validated, ordered rule table.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
