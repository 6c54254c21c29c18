package mining_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/mining"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

type stubModifiers struct {
	biome map[shared.Biome]float64
	stats map[shared.Stat]float64
}

func (m stubModifiers) BiomeBonus(b shared.Biome) float64 { return m.biome[b] }
func (m stubModifiers) StatBonus(s shared.Stat) float64   { return m.stats[s] }

type stubCiv float64

func (c stubCiv) GlobalMultiplier(shared.Stat) float64 { return float64(c) }

type techSet map[string]bool

func (t techSet) IsUnlocked(id string) bool { return t[id] }

func newLedger() *ledger.Ledger {
	return ledger.NewLedger([]ledger.ResourceDefinition{{Type: shared.ResourceIce}, {Type: shared.ResourceIron}})
}

func readySite(t *testing.T, def location.SiteDefinition, infra location.Infrastructure) *location.Site {
	t.Helper()
	site := location.NewSite(def)
	require.NoError(t, site.AdvanceTo(location.PhaseReadyToMine))
	site.SetInfrastructure(infra)
	return site
}

var moon = location.SiteDefinition{
	ID: "MOON", Biome: shared.BiomeBarren, Resources: []shared.ResourceType{shared.ResourceIron},
}

func TestProduceTick_BaseAndBonuses(t *testing.T) {
	tests := []struct {
		name     string
		mods     stubModifiers
		civ      float64
		expected int
	}{
		{name: "base", civ: 1, expected: 100},
		{name: "biome bonus", mods: stubModifiers{biome: map[shared.Biome]float64{shared.BiomeBarren: 0.2}}, civ: 1, expected: 120},
		{name: "mining speed bonus", mods: stubModifiers{stats: map[shared.Stat]float64{shared.StatMiningSpeed: 0.1}}, civ: 1, expected: 110},
		{name: "civilization multiplier", civ: 1.1, expected: 110},
		{name: "other biome ignored", mods: stubModifiers{biome: map[shared.Biome]float64{shared.BiomeIce: 0.5}}, civ: 1, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			site := readySite(t, moon, location.Infrastructure{Mining: 100})
			engine := mining.NewEngine(tt.mods, stubCiv(tt.civ), newLedger(), &shared.FixedRandom{})

			// Act
			result, produced := engine.ProduceTick(site)

			// Assert
			require.True(t, produced)
			assert.Equal(t, shared.ResourceIron, result.Resource)
			assert.Equal(t, tt.expected, site.Stock(shared.ResourceIron))
		})
	}
}

func TestProduceTick_Preconditions(t *testing.T) {
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), newLedger(), &shared.FixedRandom{})

	notReady := location.NewSite(moon)
	notReady.SetInfrastructure(location.Infrastructure{Mining: 5})
	_, produced := engine.ProduceTick(notReady)
	assert.False(t, produced)

	noMining := readySite(t, moon, location.Infrastructure{Station: 1})
	_, produced = engine.ProduceTick(noMining)
	assert.False(t, produced)
}

func TestProduceTick_StorageFull(t *testing.T) {
	// Arrange
	site := readySite(t, moon, location.Infrastructure{Mining: 10, Station: 1})
	site.AddStock(shared.ResourceIron, 100)
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), newLedger(), &shared.FixedRandom{})

	// Act
	_, produced := engine.ProduceTick(site)

	// Assert
	assert.False(t, produced)
	assert.Equal(t, 100, site.StockpileTotal())
}

func TestProduceTick_ClampsToFreeCapacity(t *testing.T) {
	site := readySite(t, moon, location.Infrastructure{Mining: 10, Station: 1})
	site.AddStock(shared.ResourceIron, 95)
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), newLedger(), &shared.FixedRandom{})

	result, produced := engine.ProduceTick(site)

	require.True(t, produced)
	assert.Equal(t, 5, result.Amount)
	assert.Equal(t, 100, site.StockpileTotal())
}

func TestProduceTick_SynergyConsumesOneUnit(t *testing.T) {
	// Arrange
	def := location.SiteDefinition{
		ID: "MERCURY", Biome: shared.BiomeVolcanic, Resources: []shared.ResourceType{shared.ResourceIron},
		SynergyResource: shared.ResourceIce, SynergyMultiplier: 1.0,
	}
	site := readySite(t, def, location.Infrastructure{Mining: 10})
	stock := newLedger()
	require.NoError(t, stock.SetResource(shared.ResourceIce, 10))
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), stock, &shared.FixedRandom{})

	// Act
	result, _ := engine.ProduceTick(site)

	// Assert
	assert.True(t, result.SynergyConsumed)
	assert.Equal(t, 20, site.Stock(shared.ResourceIron))
	assert.Equal(t, 9, stock.Quantity(shared.ResourceIce))
}

func TestProduceTick_SynergyWithoutStock(t *testing.T) {
	def := location.SiteDefinition{
		ID: "MERCURY", Biome: shared.BiomeVolcanic, Resources: []shared.ResourceType{shared.ResourceIron},
		SynergyResource: shared.ResourceIce, SynergyMultiplier: 1.0,
	}
	site := readySite(t, def, location.Infrastructure{Mining: 10})
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), newLedger(), &shared.FixedRandom{})

	result, _ := engine.ProduceTick(site)

	assert.False(t, result.SynergyConsumed)
	assert.Equal(t, 10, site.Stock(shared.ResourceIron))
}

func TestProduceTick_OneResourcePerTick(t *testing.T) {
	def := location.SiteDefinition{
		ID: "BELT", Biome: shared.BiomeAsteroidField,
		Resources: []shared.ResourceType{shared.ResourceIron, shared.ResourceGold, shared.ResourcePlatinum},
	}
	site := readySite(t, def, location.Infrastructure{Mining: 3})
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), newLedger(), &shared.FixedRandom{Ints: []int{2, 0}})

	first, _ := engine.ProduceTick(site)
	second, _ := engine.ProduceTick(site)

	assert.Equal(t, shared.ResourcePlatinum, first.Resource)
	assert.Equal(t, shared.ResourceIron, second.Resource)
	assert.Len(t, site.Stockpile(), 2)
	assert.Equal(t, 6, site.StockpileTotal())
}

func TestProduceTick_InstalledMachinesAddMining(t *testing.T) {
	site := readySite(t, moon, location.Infrastructure{Mining: 1})
	require.NoError(t, site.InstallMachine(shared.ResourceAutoMiner))
	engine := mining.NewEngine(stubModifiers{}, stubCiv(1), newLedger(), &shared.FixedRandom{})

	result, _ := engine.ProduceTick(site)

	assert.Equal(t, 3, result.Amount)
}

type recipeBook map[string]workshop.RecipeDefinition

func (b recipeBook) Recipe(id string) (workshop.RecipeDefinition, error) {
	r, ok := b[id]
	if !ok {
		return workshop.RecipeDefinition{}, shared.NewUnknownIDError("recipe", id)
	}
	return r, nil
}

func TestProcessTick(t *testing.T) {
	// Arrange
	book := recipeBook{"SMELT_STEEL": {
		ID: "SMELT_STEEL", Input: shared.ResourceIron, InputAmount: 5, Output: shared.ResourceSteel, OutputAmount: 1,
		Duration: 2, Machine: workshop.MachineBasicSmelter,
	}}
	site := readySite(t, moon, location.Infrastructure{Processing: 3})
	site.AddStock(shared.ResourceIron, 12)
	site.SetActiveRecipe("SMELT_STEEL")
	processor := mining.NewProcessor(book, techSet{}, &shared.FixedRandom{Floats: []float64{0.1}})

	// Act
	result, err := processor.ProcessTick(site)

	// Assert: rate 1.5 rounds up on a 0.1 roll but only 2 batches of input exist
	require.NoError(t, err)
	assert.Equal(t, 2, result.Operations)
	assert.Equal(t, 2, site.Stock(shared.ResourceSteel))
	assert.Equal(t, 2, site.Stock(shared.ResourceIron))
}

func TestProcessTick_Idle(t *testing.T) {
	processor := mining.NewProcessor(recipeBook{}, techSet{}, &shared.FixedRandom{})
	site := readySite(t, moon, location.Infrastructure{Processing: 1})

	result, err := processor.ProcessTick(site)
	require.NoError(t, err)
	assert.Zero(t, result.Operations)

	site.SetActiveRecipe("MISSING")
	_, err = processor.ProcessTick(site)
	assert.Error(t, err)
}
