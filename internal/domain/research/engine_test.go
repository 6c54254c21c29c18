package research_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

func testCatalog() []research.TechDefinition {
	return []research.TechDefinition{
		{ID: "EFFICIENCY_1", ResearchPoints: 100, Effects: []effect.Effect{effect.StatBonus(shared.StatMiningSpeed, 0.1)}},
		{ID: "ENV_SUIT_MK2", ResearchPoints: 500, Effects: []effect.Effect{effect.BiomeBonus(shared.BiomeBarren, 0.2)}},
		{ID: "AUTO_LOGISTICS", ResearchPoints: 1500, Effects: []effect.Effect{effect.UnlockFeature(shared.FeatureAutoLogistics)}},
		{ID: "ODD_TECH", ResearchPoints: 10, Effects: []effect.Effect{effect.Retention(0.5)}},
	}
}

func TestUnlock_ResearchPointThreshold(t *testing.T) {
	// Arrange
	engine := research.NewEngine(testCatalog())
	engine.AddResearchPoints(99)

	// Act
	err := engine.Unlock("EFFICIENCY_1")

	// Assert
	var insufficient *shared.InsufficientResearchPointsError
	require.ErrorAs(t, err, &insufficient)
	assert.False(t, engine.IsUnlocked("EFFICIENCY_1"))
	assert.Equal(t, 99.0, engine.ResearchPoints())

	// Act
	engine.AddResearchPoints(1)
	err = engine.Unlock("EFFICIENCY_1")

	// Assert
	require.NoError(t, err)
	assert.True(t, engine.IsUnlocked("EFFICIENCY_1"))
	assert.Equal(t, 0.0, engine.ResearchPoints())
	assert.InDelta(t, 0.1, engine.StatBonus(shared.StatMiningSpeed), 1e-9)
}

func TestUnlock_AlreadyUnlockedDoesNotReapply(t *testing.T) {
	engine := research.NewEngine(testCatalog())
	engine.AddResearchPoints(1000)
	require.NoError(t, engine.Unlock("ENV_SUIT_MK2"))

	err := engine.Unlock("ENV_SUIT_MK2")

	var precondition *shared.PreconditionError
	assert.ErrorAs(t, err, &precondition)
	assert.Equal(t, 500.0, engine.ResearchPoints())
	assert.InDelta(t, 0.2, engine.BiomeBonus(shared.BiomeBarren), 1e-9)
}

func TestUnlock_UnknownTechnology(t *testing.T) {
	engine := research.NewEngine(testCatalog())

	err := engine.Unlock("WARP_DRIVE")

	var unknown *shared.UnknownIDError
	assert.ErrorAs(t, err, &unknown)
}

func TestUnlock_IgnoresCivilizationOnlyEffects(t *testing.T) {
	engine := research.NewEngine(testCatalog())
	engine.AddResearchPoints(10)

	require.NoError(t, engine.Unlock("ODD_TECH"))
	assert.True(t, engine.IsUnlocked("ODD_TECH"))
}

func TestLoadData_IsIdempotent(t *testing.T) {
	// Arrange
	engine := research.NewEngine(testCatalog())
	ids := []string{"EFFICIENCY_1", "ENV_SUIT_MK2", "AUTO_LOGISTICS"}

	// Act
	_, err := engine.LoadData(2, 40, ids)
	require.NoError(t, err)
	stats, biomes, features := engine.StatModifiers(), engine.BiomeModifiers(), engine.Features()

	_, err = engine.LoadData(2, 40, ids)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, stats, engine.StatModifiers())
	assert.Equal(t, biomes, engine.BiomeModifiers())
	assert.Equal(t, features, engine.Features())
	assert.InDelta(t, 0.1, engine.StatBonus(shared.StatMiningSpeed), 1e-9)
	assert.True(t, engine.HasFeature(shared.FeatureAutoLogistics))
	assert.Equal(t, 2, engine.Researchers())
	assert.Equal(t, 40.0, engine.ResearchPoints())
}

func TestLoadData_ClearsPreviousSession(t *testing.T) {
	engine := research.NewEngine(testCatalog())
	engine.AddResearchPoints(100)
	require.NoError(t, engine.Unlock("EFFICIENCY_1"))

	skipped, err := engine.LoadData(0, 0, []string{"ENV_SUIT_MK2", "REMOVED_TECH", "ENV_SUIT_MK2"})

	require.NoError(t, err)
	assert.Equal(t, []string{"REMOVED_TECH"}, skipped)
	assert.False(t, engine.IsUnlocked("EFFICIENCY_1"))
	assert.Equal(t, 0.0, engine.StatBonus(shared.StatMiningSpeed))
	assert.InDelta(t, 0.2, engine.BiomeBonus(shared.BiomeBarren), 1e-9)
	assert.Equal(t, []string{"ENV_SUIT_MK2"}, engine.UnlockedIDs())
}

func TestStatChangeNotifiesDependents(t *testing.T) {
	engine := research.NewEngine(testCatalog())
	var changed []shared.Stat
	engine.OnStatChanged(func(s shared.Stat) { changed = append(changed, s) })
	engine.AddResearchPoints(100)

	require.NoError(t, engine.Unlock("EFFICIENCY_1"))

	assert.Equal(t, []shared.Stat{shared.StatMiningSpeed}, changed)
}

func TestAccrueAndInvest(t *testing.T) {
	engine := research.NewEngine(testCatalog())
	engine.HireResearcher()
	engine.HireResearcher()

	gained := engine.Accrue(5, 1.5)

	assert.Equal(t, 15.0, gained)
	assert.Equal(t, 15.0, engine.ResearchPoints())
	assert.Equal(t, 25.0, research.PointsForCredits(250))
}
