package fleet

import (
	"math"

	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

const (
	BaseCargoPerLevel   = 10
	SpeedGrowthPerLevel = 1.2
	FullRepair          = 100.0
	UpgradeCostPerLevel = 1000.0
)

// StatSource exposes additive technology bonuses
type StatSource interface {
	StatBonus(stat shared.Stat) float64
}

// MultiplierSource exposes civilization multipliers
type MultiplierSource interface {
	GlobalMultiplier(stat shared.Stat) float64
}

// Fleet is the player's mining ship. Derived stats are cached and refreshed by
// Recalculate whenever a technology or civilization modifier changes.
type Fleet struct {
	level         int
	repairStatus  float64
	miningSpeed   float64
	cargoCapacity int
}

// NewFleet returns a level-1 ship that still needs repairs
func NewFleet() *Fleet {
	f := &Fleet{}
	f.Reset()
	return f
}

// Reset restores the starting ship
func (f *Fleet) Reset() {
	f.level = 1
	f.repairStatus = 0
	f.miningSpeed = 1
	f.cargoCapacity = BaseCargoPerLevel
}

func (f *Fleet) Level() int             { return f.level }
func (f *Fleet) RepairStatus() float64  { return f.repairStatus }
func (f *Fleet) MiningSpeed() float64   { return f.miningSpeed }
func (f *Fleet) CargoCapacity() int     { return f.cargoCapacity }
func (f *Fleet) IsOperational() bool    { return f.repairStatus >= FullRepair }
func (f *Fleet) UpgradeCost() float64   { return UpgradeCostPerLevel * float64(f.level) }
func (f *Fleet) MissingRepair() float64 { return math.Max(0, FullRepair-f.repairStatus) }

// Restore overwrites level and repair status (load path) without recalculating
func (f *Fleet) Restore(level int, repairStatus float64) {
	f.level = utils.Max(level, 1)
	f.repairStatus = math.Max(0, math.Min(FullRepair, repairStatus))
}

// Repair adds repair points, capped at full repair; it returns the points applied
func (f *Fleet) Repair(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	applied := math.Min(amount, f.MissingRepair())
	f.repairStatus += applied
	return applied
}

// Upgrade raises the ship level. Paying for it and recalculating are the caller's job.
func (f *Fleet) Upgrade() error {
	if !f.IsOperational() {
		return shared.NewPreconditionError("ship must be fully repaired before upgrading (%.0f%%)", f.repairStatus)
	}
	f.level++
	return nil
}

// Recalculate refreshes mining speed and cargo capacity from level and modifiers
func (f *Fleet) Recalculate(stats StatSource, civ MultiplierSource) {
	speed := math.Pow(SpeedGrowthPerLevel, float64(f.level-1))
	speed *= 1 + stats.StatBonus(shared.StatMiningSpeed)
	speed *= civ.GlobalMultiplier(shared.StatGlobalMiningSpeed)
	f.miningSpeed = speed

	f.cargoCapacity = BaseCargoPerLevel*f.level + utils.FloorToInt(stats.StatBonus(shared.StatCargoCapacity))
}
