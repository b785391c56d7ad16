// Package normalize prepares raw review text for keyword matching and
// sentiment scoring. Normalization lowercases and trims but deliberately
// keeps punctuation: the sentiment scorer reads exclamation emphasis.
package normalize

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
)

// Normalize returns the matching form of raw review text: lowercased,
// surrounding whitespace trimmed. Empty or all-whitespace input yields "".
// Pure, never fails.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// brTags rewrites line-break tags as spaces so adjacent words stay
// separated once the markup is gone.
var brTags = strings.NewReplacer("<br />", " ", "<br/>", " ", "<br>", " ", "</p>", " ", "</div>", " ")

// StripHTML removes markup fragments from review text. The source dataset
// carries literal tags like "<br />" inside review bodies; plain text
// passes through with only control characters collapsed to spaces.
func StripHTML(raw string) string {
	if !strings.ContainsRune(raw, '<') {
		return collapseSpace(raw)
	}

	raw = brTags.Replace(raw)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return collapseSpace(raw)
	}
	return collapseSpace(doc.Text())
}

// collapseSpace folds runs of whitespace and control characters into a
// single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}
