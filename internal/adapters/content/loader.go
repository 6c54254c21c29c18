package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrescamacho/spacerush-go/internal/domain/catalog"
)

//go:embed default.yaml
var defaultContent []byte

// Load reads the catalog at path, or the built-in catalog when path is empty
func Load(path string) (*catalog.Catalog, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	cat, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cat, nil
}

// Default returns the built-in catalog
func Default() (*catalog.Catalog, error) {
	return Parse(defaultContent)
}

// MustDefault returns the built-in catalog and panics if it is broken
func MustDefault() *catalog.Catalog {
	cat, err := Default()
	if err != nil {
		panic(fmt.Sprintf("built-in content is invalid: %v", err))
	}
	return cat
}

// Parse decodes and validates a YAML catalog. Unknown keys are rejected so
// typos in content files surface at startup.
func Parse(raw []byte) (*catalog.Catalog, error) {
	var cat catalog.Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cat); err != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return &cat, nil
}
