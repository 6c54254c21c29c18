package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

func testDefinitions() []location.SiteDefinition {
	return []location.SiteDefinition{
		{ID: "EARTH", Biome: shared.BiomeTerrestrial, StartsUnlocked: true, InitialPhase: location.PhaseInvestigated},
		{ID: "MOON", Biome: shared.BiomeBarren, TravelCost: 100, MinFleetLevel: 1, Resources: []shared.ResourceType{shared.ResourceIron}},
	}
}

func TestRegistry_StartingWorld(t *testing.T) {
	r := location.NewRegistry(testDefinitions())

	moon, err := r.Get("MOON")
	require.NoError(t, err)

	assert.Equal(t, "EARTH", r.CurrentID())
	assert.Equal(t, location.PhaseInvestigated, r.Current().Phase())
	assert.Equal(t, location.PhaseHidden, moon.Phase())
	assert.False(t, moon.IsUnlocked())
	assert.Empty(t, r.ReadyToMine())
}

func TestRegistry_UnknownSite(t *testing.T) {
	r := location.NewRegistry(testDefinitions())

	_, err := r.Get("PLUTO")
	var unknown *shared.UnknownIDError
	assert.ErrorAs(t, err, &unknown)
	assert.Error(t, r.SetCurrent("PLUTO"))
	assert.Equal(t, "EARTH", r.CurrentID())
}

func TestSite_PhaseOnlyMovesForward(t *testing.T) {
	// Arrange
	site := location.NewSite(testDefinitions()[1])

	// Act & Assert
	require.NoError(t, site.AdvanceTo(location.PhaseDiscovered))
	require.NoError(t, site.AdvanceTo(location.PhaseReadyToMine))
	assert.Error(t, site.AdvanceTo(location.PhaseInvestigated))
	assert.Error(t, site.AdvanceTo(location.PhaseReadyToMine))
	assert.Equal(t, location.PhaseReadyToMine, site.Phase())
}

func TestSite_StockpileAndMachines(t *testing.T) {
	site := location.NewSite(testDefinitions()[1])
	site.SetInfrastructure(location.Infrastructure{Mining: 2, Logistics: 1, Station: 1})

	site.AddStock(shared.ResourceIron, 30)
	site.AddStock(shared.ResourceGold, -5)
	require.NoError(t, site.InstallMachine(shared.ResourceAutoMiner))
	require.NoError(t, site.InstallMachine(shared.ResourceLogisticsBot))
	assert.Error(t, site.InstallMachine(shared.ResourceIron))

	assert.Equal(t, 30, site.StockpileTotal())
	assert.Equal(t, 100, site.Capacity())
	assert.Equal(t, 4, site.EffectiveMining())
	assert.Equal(t, 2, site.EffectiveLogistics())

	assert.Error(t, site.RemoveStock(shared.ResourceIron, 31))
	require.NoError(t, site.RemoveStock(shared.ResourceIron, 30))
	assert.Empty(t, site.Stockpile())
}

func TestSite_SnapshotRestore(t *testing.T) {
	// Arrange
	site := location.NewSite(testDefinitions()[1])
	site.Unlock()
	require.NoError(t, site.AdvanceTo(location.PhaseReadyToMine))
	site.SetInfrastructure(location.Infrastructure{Mining: 3, Logistics: 2, Station: 4, Processing: 1})
	site.AddStock(shared.ResourceIron, 12)
	require.NoError(t, site.InstallMachine(shared.ResourceMiningDrill))
	site.SetActiveRecipe("SMELT_STEEL")

	// Act
	restored := location.NewSite(testDefinitions()[1])
	restored.Restore(site.Snapshot())

	// Assert
	assert.Equal(t, site.Snapshot(), restored.Snapshot())
}

func TestSite_RestoreInvalidPhaseFallsBack(t *testing.T) {
	site := location.NewSite(testDefinitions()[1])

	site.Restore(location.SiteState{Phase: "SOMEWHERE", Infrastructure: location.Infrastructure{Mining: -2}})

	assert.Equal(t, location.PhaseHidden, site.Phase())
	assert.Equal(t, 0, site.Infrastructure().Mining)
}

func TestRegistry_ResetRebuildsSites(t *testing.T) {
	r := location.NewRegistry(testDefinitions())
	moon, _ := r.Get("MOON")
	moon.Unlock()
	require.NoError(t, r.SetCurrent("MOON"))

	r.Reset()

	moon, _ = r.Get("MOON")
	assert.False(t, moon.IsUnlocked())
	assert.Equal(t, "EARTH", r.CurrentID())
}
