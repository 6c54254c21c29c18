package catalog

import (
	"errors"
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/domain/civilization"
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

// Catalog is the static content the world is built from. It is read-only once loaded.
type Catalog struct {
	Resources    []ledger.ResourceDefinition       `yaml:"resources"`
	Sites        []location.SiteDefinition         `yaml:"sites"`
	Technologies []research.TechDefinition         `yaml:"technologies"`
	Recipes      []workshop.RecipeDefinition       `yaml:"recipes"`
	Upgrades     []civilization.UpgradeDefinition `yaml:"upgrades"`
}

// Validate checks every entry, id uniqueness and cross references
func (c *Catalog) Validate() error {
	var errs []error

	resources := make(map[shared.ResourceType]bool)
	for _, r := range c.Resources {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
		if resources[r.Type] {
			errs = append(errs, fmt.Errorf("duplicate resource %s", r.Type))
		}
		resources[r.Type] = true
	}

	techs := make(map[string]bool)
	for _, t := range c.Technologies {
		if err := t.Validate(); err != nil {
			errs = append(errs, err)
		}
		if techs[t.ID] {
			errs = append(errs, fmt.Errorf("duplicate technology %s", t.ID))
		}
		techs[t.ID] = true
	}

	requireTech := func(owner, id string) {
		if id != "" && !techs[id] {
			errs = append(errs, fmt.Errorf("%s requires unknown technology %s", owner, id))
		}
	}
	requireResource := func(owner string, t shared.ResourceType) {
		if t != "" && !resources[t] {
			errs = append(errs, fmt.Errorf("%s references resource %s missing from the catalog", owner, t))
		}
	}

	sites := make(map[string]bool)
	for _, s := range c.Sites {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
		if sites[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate site %s", s.ID))
		}
		sites[s.ID] = true
		requireTech("site "+s.ID, s.RequiredTech)
		requireResource("site "+s.ID, s.SynergyResource)
		for _, r := range s.Resources {
			requireResource("site "+s.ID, r)
		}
	}
	if len(c.Sites) == 0 {
		errs = append(errs, errors.New("catalog has no sites"))
	}

	recipes := make(map[string]bool)
	for _, r := range c.Recipes {
		if err := r.Validate(); err != nil {
			errs = append(errs, err)
		}
		if recipes[r.ID] {
			errs = append(errs, fmt.Errorf("duplicate recipe %s", r.ID))
		}
		recipes[r.ID] = true
		requireTech("recipe "+r.ID, r.RequiredTech)
		requireResource("recipe "+r.ID, r.Input)
		requireResource("recipe "+r.ID, r.Output)
	}

	upgrades := make(map[string]bool)
	for _, u := range c.Upgrades {
		if err := u.Validate(); err != nil {
			errs = append(errs, err)
		}
		if upgrades[u.ID] {
			errs = append(errs, fmt.Errorf("duplicate upgrade %s", u.ID))
		}
		upgrades[u.ID] = true
	}

	return errors.Join(errs...)
}
