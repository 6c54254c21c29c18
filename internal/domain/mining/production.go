package mining

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

// Modifiers exposes technology bonuses
type Modifiers interface {
	BiomeBonus(biome shared.Biome) float64
	StatBonus(stat shared.Stat) float64
}

// Multipliers exposes civilization multipliers
type Multipliers interface {
	GlobalMultiplier(stat shared.Stat) float64
}

// SynergyStock is the global stock synergy resources are drawn from
type SynergyStock interface {
	Has(t shared.ResourceType, amount int) bool
	RemoveResource(t shared.ResourceType, amount int) error
}

// Production is the outcome of one production tick at a site
type Production struct {
	SiteID          string
	Resource        shared.ResourceType
	Amount          int
	SynergyConsumed bool
}

// Engine turns site infrastructure and bonuses into stockpile growth
type Engine struct {
	modifiers   Modifiers
	multipliers Multipliers
	stock       SynergyStock
	rng         shared.Random
}

// NewEngine creates a production engine
func NewEngine(modifiers Modifiers, multipliers Multipliers, stock SynergyStock, rng shared.Random) *Engine {
	return &Engine{
		modifiers:   modifiers,
		multipliers: multipliers,
		stock:       stock,
		rng:         rng,
	}
}

// ProduceTick credits one randomly chosen resource to a site's stockpile.
//
// Nothing happens unless the site is ready to mine with a positive mining level,
// or when its stockpile already fills the station capacity. The credited amount
// is floor(mining × (1 + biome bonus) × synergy × (1 + mining speed bonus) ×
// civilization multiplier), clamped to the free capacity. The synergy factor
// (1 + multiplier) applies only if one unit of the synergy resource could be
// consumed from the global stock.
func (e *Engine) ProduceTick(site *location.Site) (Production, bool) {
	def := site.Definition()
	mining := site.EffectiveMining()
	if !site.IsReadyToMine() || mining <= 0 || len(def.Resources) == 0 {
		return Production{}, false
	}

	capacity := site.Capacity()
	stored := site.StockpileTotal()
	if capacity > 0 && stored >= capacity {
		return Production{}, false
	}

	result := Production{SiteID: site.ID()}
	result.Resource = def.Resources[e.rng.IntN(len(def.Resources))]

	synergy := 1.0
	if def.HasSynergy() && e.stock.Has(def.SynergyResource, 1) {
		if err := e.stock.RemoveResource(def.SynergyResource, 1); err == nil {
			synergy = 1 + def.SynergyMultiplier
			result.SynergyConsumed = true
		}
	}

	amount := float64(mining) *
		(1 + e.modifiers.BiomeBonus(def.Biome)) *
		synergy *
		(1 + e.modifiers.StatBonus(shared.StatMiningSpeed)) *
		e.multipliers.GlobalMultiplier(shared.StatGlobalMiningSpeed)

	units := utils.FloorToInt(amount)
	if capacity > 0 {
		units = utils.Min(units, capacity-stored)
	}
	site.AddStock(result.Resource, units)
	result.Amount = units
	return result, true
}
