package shared

// Stat names a numeric modifier target shared by technologies and civilization upgrades
type Stat string

const (
	// Technology stat bonuses (additive)
	StatMiningSpeed   Stat = "MINING_SPEED"
	StatCargoCapacity Stat = "CARGO_CAPACITY"
	StatMarketPrice   Stat = "MARKET_PRICE"

	// Civilization multipliers
	StatGlobalMiningSpeed   Stat = "GLOBAL_MINING_SPEED"
	StatGlobalResearchSpeed Stat = "GLOBAL_RESEARCH_SPEED"
)

// HasFleetDependents reports whether a change to the stat requires fleet stats to be recalculated
func (s Stat) HasFleetDependents() bool {
	return s == StatMiningSpeed || s == StatCargoCapacity || s == StatGlobalMiningSpeed
}

// Feature flags granted by UNLOCK_FEATURE effects
const (
	FeatureAutoLogistics = "AUTO_LOGISTICS"
	FeatureRepairDroid   = "REPAIR_DROID"
)
