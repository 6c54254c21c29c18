package ledger

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// ResourceDefinition is the static catalog entry of a resource
type ResourceDefinition struct {
	Type      shared.ResourceType `yaml:"type"`
	Name      string              `yaml:"name"`
	BaseValue float64             `yaml:"base_value"`
}

// Validate checks a catalog entry
func (d ResourceDefinition) Validate() error {
	if !d.Type.IsValid() {
		return shared.NewValidationError("type", "unknown resource type "+string(d.Type))
	}
	if d.BaseValue < 0 {
		return shared.NewValidationError("base_value", "must be non-negative")
	}
	return nil
}

// ResourceRecord is a point-in-time copy of one ledger entry
type ResourceRecord struct {
	Type        shared.ResourceType
	Name        string
	BaseValue   float64
	MarketValue float64
	Quantity    int
}
