package location

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// SiteDefinition is the immutable catalog entry of a site
type SiteDefinition struct {
	ID                string                `yaml:"id"`
	Name              string                `yaml:"name"`
	TravelCost        float64               `yaml:"travel_cost"`
	Biome             shared.Biome          `yaml:"biome"`
	Resources         []shared.ResourceType `yaml:"resources"`
	RequiredTech      string                `yaml:"required_tech"`
	MinFleetLevel     int                   `yaml:"min_fleet_level"`
	SynergyResource   shared.ResourceType   `yaml:"synergy_resource"`
	SynergyMultiplier float64               `yaml:"synergy_multiplier"`
	StartsUnlocked    bool                  `yaml:"starts_unlocked"`
	InitialPhase      Phase                 `yaml:"initial_phase"`
}

// HasSynergy reports whether the site boosts production by consuming a global resource
func (d SiteDefinition) HasSynergy() bool {
	return d.SynergyResource != ""
}

// Produces reports whether t is in the site's available resource list
func (d SiteDefinition) Produces(t shared.ResourceType) bool {
	for _, r := range d.Resources {
		if r == t {
			return true
		}
	}
	return false
}

// Validate checks a catalog entry
func (d SiteDefinition) Validate() error {
	if d.ID == "" {
		return shared.NewValidationError("id", "site id is required")
	}
	if !d.Biome.IsValid() {
		return shared.NewValidationError("biome", "site "+d.ID+" has invalid biome "+string(d.Biome))
	}
	for _, r := range d.Resources {
		if !r.IsValid() {
			return shared.NewValidationError("resources", "site "+d.ID+" lists unknown resource "+string(r))
		}
	}
	if d.HasSynergy() && !d.SynergyResource.IsValid() {
		return shared.NewValidationError("synergy_resource", "site "+d.ID+" has unknown synergy resource")
	}
	if d.InitialPhase != "" && !d.InitialPhase.IsValid() {
		return shared.NewValidationError("initial_phase", "site "+d.ID+" has invalid initial phase")
	}
	if d.TravelCost < 0 || d.MinFleetLevel < 0 {
		return shared.NewValidationError("travel_cost", "site "+d.ID+" has negative travel requirements")
	}
	return nil
}
