package research

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// TechDefinition is the immutable catalog entry of a technology
type TechDefinition struct {
	ID             string          `yaml:"id"`
	Name           string          `yaml:"name"`
	Description    string          `yaml:"description"`
	Cost           float64         `yaml:"cost"`
	ResearchPoints float64         `yaml:"research_points"`
	Effects        []effect.Effect `yaml:"effects"`
}

// Validate checks a catalog entry and its effect list
func (d TechDefinition) Validate() error {
	if d.ID == "" {
		return shared.NewValidationError("id", "technology id is required")
	}
	if d.ResearchPoints < 0 || d.Cost < 0 {
		return shared.NewValidationError("research_points", "technology "+d.ID+" has a negative cost")
	}
	for _, e := range d.Effects {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// TechState pairs a technology id with its unlock flag
type TechState struct {
	ID       string
	Unlocked bool
}
