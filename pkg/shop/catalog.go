package shop

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Item is one line of the shop's catalogue.
type Item struct {
	Name        string `yaml:"name"`
	Cost        int    `yaml:"cost"`
	SamuraiOnly bool   `yaml:"samurai_only,omitempty"`
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// ParseCatalog reads a YAML catalogue. Names are lower-cased and must be unique.
func ParseCatalog(data []byte) ([]Item, error) {
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(cf.Items) == 0 {
		return nil, fmt.Errorf("catalog has no items")
	}

	seen := make(map[string]bool, len(cf.Items))
	for i := range cf.Items {
		it := &cf.Items[i]
		it.Name = strings.ToLower(strings.TrimSpace(it.Name))
		if it.Name == "" {
			return nil, fmt.Errorf("catalog item %d has no name", i)
		}
		if it.Cost < 0 {
			return nil, fmt.Errorf("catalog item %q has negative cost", it.Name)
		}
		if seen[it.Name] {
			return nil, fmt.Errorf("catalog item %q listed twice", it.Name)
		}
		seen[it.Name] = true
	}
	return cf.Items, nil
}

// DefaultCatalog returns the built-in catalogue.
func DefaultCatalog() []Item {
	items, err := ParseCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return items
}
