package fleet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/fleet"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

type stubStats map[shared.Stat]float64

func (s stubStats) StatBonus(stat shared.Stat) float64 { return s[stat] }

type stubCiv float64

func (c stubCiv) GlobalMultiplier(shared.Stat) float64 { return float64(c) }

func TestNewFleet_StartingShip(t *testing.T) {
	f := fleet.NewFleet()

	assert.Equal(t, 1, f.Level())
	assert.Equal(t, 10, f.CargoCapacity())
	assert.Equal(t, 1.0, f.MiningSpeed())
	assert.False(t, f.IsOperational())
}

func TestRepair_CapsAtFull(t *testing.T) {
	f := fleet.NewFleet()

	applied := f.Repair(60)
	applied += f.Repair(60)

	assert.Equal(t, 100.0, applied)
	assert.True(t, f.IsOperational())
	assert.Equal(t, 0.0, f.Repair(5))
}

func TestUpgrade_RequiresOperationalShip(t *testing.T) {
	// Arrange
	f := fleet.NewFleet()

	// Act & Assert
	var precondition *shared.PreconditionError
	require.ErrorAs(t, f.Upgrade(), &precondition)
	assert.Equal(t, 1, f.Level())

	f.Repair(100)
	require.NoError(t, f.Upgrade())
	f.Recalculate(stubStats{}, stubCiv(1))

	assert.Equal(t, 2, f.Level())
	assert.Equal(t, 20, f.CargoCapacity())
	assert.InDelta(t, 1.2, f.MiningSpeed(), 1e-9)
	assert.Equal(t, 2000.0, f.UpgradeCost())
}

func TestRecalculate_AppliesModifiers(t *testing.T) {
	f := fleet.NewFleet()

	f.Recalculate(stubStats{shared.StatMiningSpeed: 0.1, shared.StatCargoCapacity: 10}, stubCiv(1))
	assert.InDelta(t, 1.1, f.MiningSpeed(), 1e-9)
	assert.Equal(t, 20, f.CargoCapacity())

	f.Recalculate(stubStats{}, stubCiv(1.1))
	assert.InDelta(t, 1.1, f.MiningSpeed(), 1e-9)
}

func TestRestore_ClampsValues(t *testing.T) {
	f := fleet.NewFleet()

	f.Restore(0, 250)

	assert.Equal(t, 1, f.Level())
	assert.Equal(t, 100.0, f.RepairStatus())
}
