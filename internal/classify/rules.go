package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRules is the shipped rule table, most specific first. Shipping
// complaints outrank product-quality ones so that "arrived late and
// broken" lands in Shipping/Delivery.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "Shipping/Delivery",
			Keywords: []string{"shipping", "delivery", "arrived", "package", "late", "delayed", "never received"},
		},
		{
			Name:     "Customer Service",
			Keywords: []string{"customer service", "support", "refund", "return", "customer"},
		},
		{
			Name:     "Product Quality",
			Keywords: []string{"quality", "defective", "broke", "broken", "damaged", "poor"},
		},
		{
			Name:     "Taste/Flavor",
			Keywords: []string{"taste", "flavor", "bland", "bitter", "delicious", "disgusting", "stale"},
		},
		{
			Name:     "Price/Value",
			Keywords: []string{"price", "expensive", "overpriced", "cost", "waste", "money"},
		},
		{
			Name:     "Packaging",
			Keywords: []string{"packaging", "box", "wrapped", "crushed"},
		},
	}
}

// rulesFile is the on-disk shape of a versioned rule table.
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// LoadRules reads an ordered rule table from a YAML file. The file's list
// order is preserved verbatim; validation happens in New.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return f.Categories, nil
}

// FromConfig returns the rule table for a run: the file at path when one
// is configured, the shipped defaults otherwise.
func FromConfig(path string) ([]Rule, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	return LoadRules(path)
}
