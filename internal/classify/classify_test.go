package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reviewlens/backend/internal/models"
)

func TestClassifyFirstMatchWins(t *testing.T) {
	c, err := New(DefaultRules())
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want string
	}{
		// Matches both Shipping/Delivery ("late", "arrived", "package")
		// and Product Quality ("broken"); the earlier rule wins.
		{"shipping beats quality", "the package arrived late and the item was broken", "Shipping/Delivery"},
		{"quality only", "poor quality and defective", "Product Quality"},
		{"customer service", "contacted support for a refund", "Customer Service"},
		{"taste", "the flavor was bland and stale", "Taste/Flavor"},
		{"price", "way too expensive for what you get", "Price/Value"},
		{"packaging", "the box was crushed", "Packaging"},
		{"no match", "it is what it is", "Uncategorized"},
		{"empty text", "", "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.text))
		})
	}
}

func TestClassifyPriorityIndependentOfMatchCount(t *testing.T) {
	c, err := New([]Rule{
		{Name: "A", Keywords: []string{"alpha"}},
		{Name: "B", Keywords: []string{"beta", "bravo", "bingo", "bonus"}},
	})
	require.NoError(t, err)

	// One keyword from A, four from B. A still wins on order.
	got := c.Classify("alpha beta bravo bingo bonus")
	assert.Equal(t, "A", got)
}

func TestClassifySwappingNonMatchingRules(t *testing.T) {
	text := "charlie delta"

	ordered, err := New([]Rule{
		{Name: "A", Keywords: []string{"alpha"}},
		{Name: "B", Keywords: []string{"beta"}},
		{Name: "C", Keywords: []string{"charlie"}},
	})
	require.NoError(t, err)

	swapped, err := New([]Rule{
		{Name: "B", Keywords: []string{"beta"}},
		{Name: "A", Keywords: []string{"alpha"}},
		{Name: "C", Keywords: []string{"charlie"}},
	})
	require.NoError(t, err)

	// A and B match nothing in the text; swapping them changes nothing.
	assert.Equal(t, ordered.Classify(text), swapped.Classify(text))
	assert.Equal(t, "C", ordered.Classify(text))
}

func TestClassifyDeterministic(t *testing.T) {
	c, err := New(DefaultRules())
	require.NoError(t, err)

	text := "late delivery and broken seal on the box"
	first := c.Classify(text)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, c.Classify(text))
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
	}{
		{"empty list", nil},
		{"duplicate names", []Rule{
			{Name: "A", Keywords: []string{"x"}},
			{Name: "A", Keywords: []string{"y"}},
		}},
		{"empty keywords", []Rule{
			{Name: "A", Keywords: nil},
		}},
		{"blank keywords only", []Rule{
			{Name: "A", Keywords: []string{"  ", ""}},
		}},
		{"unnamed rule", []Rule{
			{Name: " ", Keywords: []string{"x"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rules)
			require.Error(t, err)
			var cfgErr *models.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestMatchesReportsAllCategories(t *testing.T) {
	c, err := New(DefaultRules())
	require.NoError(t, err)

	got := c.Matches("the package arrived late and the item was broken")
	assert.Equal(t, []string{"Shipping/Delivery", "Product Quality"}, got)

	assert.Nil(t, c.Matches(""))
	assert.Nil(t, c.Matches("nothing relevant here"))
}

func TestRulesReturnsCopy(t *testing.T) {
	c, err := New(DefaultRules())
	require.NoError(t, err)

	rules := c.Rules()
	rules[0].Name = "Mutated"

	assert.Equal(t, "Shipping/Delivery", c.Rules()[0].Name)
}
