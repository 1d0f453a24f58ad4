package rules

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CatalogEntry overrides a rule's error payload and enabled state. Zero-value
// fields leave the rule's own configuration untouched.
type CatalogEntry struct {
	Field   string `yaml:"field,omitempty"`
	Message string `yaml:"message,omitempty"`
	Enabled *bool  `yaml:"enabled,omitempty"`
}

// Catalog maps rule keys to metadata overrides. It lets deployments keep
// error wording and rule toggles in configuration while the predicates stay
// in code, e.g.:
//
//	first_name_required:
//	  field: FirstName
//	  message: first name is required
//	legacy_format_check:
//	  enabled: false
type Catalog map[string]CatalogEntry

// ParseCatalog parses YAML catalog content.
func ParseCatalog(data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	return c, nil
}

// LoadCatalog reads and parses YAML catalog content from r.
func LoadCatalog(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	return ParseCatalog(data)
}

// applyCatalog overrides error payloads in place and returns the rule list
// with disabled rules removed. A catalog key that matches no rule is a
// configuration error: a typo'd key would otherwise silently change nothing.
func applyCatalog[T any](list []*Rule[T], index map[string]*Rule[T], c Catalog) ([]*Rule[T], error) {
	for key := range c {
		if _, ok := index[key]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCatalogKey, key)
		}
	}

	kept := make([]*Rule[T], 0, len(list))
	for _, r := range list {
		entry, ok := c[r.key]
		if !ok {
			kept = append(kept, r)
			continue
		}
		if entry.Enabled != nil && !*entry.Enabled {
			continue
		}
		if entry.Field != "" {
			r.err.Field = entry.Field
		}
		if entry.Message != "" {
			r.err.Message = entry.Message
		}
		kept = append(kept, r)
	}
	return kept, nil
}
