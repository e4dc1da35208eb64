package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type rulesFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadRules builds a classifier from a YAML taxonomy file, replacing
// the built-in keyword sets. Category order in the file defines the
// tie-break order.
func LoadRules(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %q: %w", path, err)
	}

	var rules rulesFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse taxonomy %q: %w", path, err)
	}
	if len(rules.Categories) == 0 {
		return nil, fmt.Errorf("taxonomy %q defines no categories", path)
	}
	for i, cat := range rules.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("taxonomy %q: categories[%d] has no name", path, i)
		}
	}

	return &Classifier{categories: rules.Categories}, nil
}
