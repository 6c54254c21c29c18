package civilization

import (
	"errors"

	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

const (
	// NanitesPerLevel scales the prestige currency earned by an ascension
	NanitesPerLevel = 100.0
	// LevelMultiplierStep is the global multiplier granted per civilization level
	LevelMultiplierStep = 0.1
)

// UpgradeDefinition is a permanent upgrade bought with nanites
type UpgradeDefinition struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Cost        float64         `yaml:"cost"`
	Effects     []effect.Effect `yaml:"effects"`
}

// Validate checks a catalog entry
func (d UpgradeDefinition) Validate() error {
	if d.ID == "" {
		return shared.NewValidationError("id", "upgrade id is required")
	}
	if d.Cost < 0 {
		return shared.NewValidationError("cost", "upgrade "+d.ID+" has a negative cost")
	}
	for _, e := range d.Effects {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Civilization is the meta-progression that survives ascension
type Civilization struct {
	definitions map[string]UpgradeDefinition
	order       []string

	level           int
	nanites         float64
	owned           map[string]bool
	multiplierBonus map[shared.Stat]float64
	retention       float64
}

var _ effect.Handler = (*Civilization)(nil)

// NewCivilization creates a level-0 civilization over the upgrade catalog
func NewCivilization(definitions []UpgradeDefinition) *Civilization {
	c := &Civilization{definitions: make(map[string]UpgradeDefinition, len(definitions))}
	for _, def := range definitions {
		c.definitions[def.ID] = def
		c.order = append(c.order, def.ID)
	}
	c.owned = make(map[string]bool)
	c.clearAccumulators()
	return c
}

func (c *Civilization) clearAccumulators() {
	c.multiplierBonus = make(map[shared.Stat]float64)
	c.retention = 0
}

func (c *Civilization) Level() int                { return c.level }
func (c *Civilization) Nanites() float64          { return c.nanites }
func (c *Civilization) RetainedFraction() float64 { return c.retention }
func (c *Civilization) Owns(id string) bool       { return c.owned[id] }

// Definitions returns the upgrade catalog in declaration order
func (c *Civilization) Definitions() []UpgradeDefinition {
	out := make([]UpgradeDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.definitions[id])
	}
	return out
}

// OwnedIDs returns owned upgrade ids in catalog order
func (c *Civilization) OwnedIDs() []string {
	var ids []string
	for _, id := range c.order {
		if c.owned[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Ascend raises the level and awards nanites; it returns the amount earned.
// Resetting the world is the caller's job.
func (c *Civilization) Ascend() float64 {
	c.level++
	earned := NanitesPerLevel * float64(c.level)
	c.nanites += earned
	return earned
}

// BuyUpgrade spends nanites on an upgrade and applies its effects once
func (c *Civilization) BuyUpgrade(id string) error {
	def, ok := c.definitions[id]
	if !ok {
		return shared.NewUnknownIDError("upgrade", id)
	}
	if c.owned[id] {
		return shared.NewPreconditionError("upgrade %s is already owned", id)
	}
	if c.nanites < def.Cost {
		return shared.NewInsufficientFundsError(def.Cost, c.nanites)
	}
	c.nanites -= def.Cost
	c.owned[id] = true
	return c.apply(def)
}

// GlobalMultiplier combines the level term and the upgrade term additively
func (c *Civilization) GlobalMultiplier(stat shared.Stat) float64 {
	return 1 + float64(c.level)*LevelMultiplierStep + c.multiplierBonus[stat]
}

// RetainedAmount is the part of a pre-ascension quantity kept through the reset
func (c *Civilization) RetainedAmount(quantity int) int {
	return utils.FloorToInt(float64(quantity) * c.retention)
}

// LoadData restores level, nanites and owned upgrades, re-applying upgrade
// effects from cleared accumulators. Unknown ids are skipped and returned.
func (c *Civilization) LoadData(level int, nanites float64, ownedIDs []string) ([]string, error) {
	c.level = max(level, 0)
	c.nanites = max(nanites, 0)
	c.owned = make(map[string]bool)
	c.clearAccumulators()

	var skipped []string
	var errs []error
	for _, id := range ownedIDs {
		def, ok := c.definitions[id]
		if !ok {
			skipped = append(skipped, id)
			continue
		}
		if c.owned[id] {
			continue
		}
		c.owned[id] = true
		if err := c.apply(def); err != nil {
			errs = append(errs, err)
		}
	}
	return skipped, errors.Join(errs...)
}

func (c *Civilization) apply(def UpgradeDefinition) error {
	var errs []error
	for _, eff := range def.Effects {
		if err := effect.Dispatch(eff, c); err != nil && !errors.Is(err, effect.ErrNotApplicable) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// AddStatMultiplier adds to the upgrade-derived multiplier of a stat
func (c *Civilization) AddStatMultiplier(stat shared.Stat, multiplier float64) error {
	c.multiplierBonus[stat] += multiplier
	return nil
}

// RegisterRetention raises the retained fraction, clamped to [0, 1]
func (c *Civilization) RegisterRetention(fraction float64) error {
	c.retention = utils.Clamp01(c.retention + fraction)
	return nil
}

func (c *Civilization) AddStatBonus(shared.Stat, float64) error   { return effect.ErrNotApplicable }
func (c *Civilization) UnlockFeature(string) error                { return effect.ErrNotApplicable }
func (c *Civilization) AddBiomeBonus(shared.Biome, float64) error { return effect.ErrNotApplicable }
