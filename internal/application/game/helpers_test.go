package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/domain/catalog"
	"github.com/andrescamacho/spacerush-go/internal/domain/civilization"
	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/save"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Resources: []ledger.ResourceDefinition{
			{Type: shared.ResourceIron, Name: "Iron", BaseValue: 10},
			{Type: shared.ResourceGold, Name: "Gold", BaseValue: 50},
			{Type: shared.ResourceSteel, Name: "Steel", BaseValue: 80},
			{Type: shared.ResourceMiningDrill, Name: "Mining Drill", BaseValue: 500},
		},
		Sites: []location.SiteDefinition{
			{ID: "HOME", Name: "Home", Biome: shared.BiomeTerrestrial, StartsUnlocked: true, InitialPhase: location.PhaseInvestigated},
			{ID: "MOON", Name: "Moon", Biome: shared.BiomeBarren, TravelCost: 100, MinFleetLevel: 1,
				Resources: []shared.ResourceType{shared.ResourceIron, shared.ResourceGold}},
			{ID: "FAR", Name: "Far", Biome: shared.BiomeIce, TravelCost: 5000, MinFleetLevel: 3, RequiredTech: "EFF",
				Resources: []shared.ResourceType{shared.ResourceGold}},
		},
		Technologies: []research.TechDefinition{
			{ID: "EFF", Name: "Efficiency", ResearchPoints: 100, Effects: []effect.Effect{effect.StatBonus(shared.StatMiningSpeed, 0.1)}},
			{ID: "LOGI", Name: "Logistics", ResearchPoints: 10, Effects: []effect.Effect{effect.UnlockFeature(shared.FeatureAutoLogistics)}},
			{ID: "DROID", Name: "Droids", ResearchPoints: 10, Effects: []effect.Effect{effect.UnlockFeature(shared.FeatureRepairDroid)}},
		},
		Recipes: []workshop.RecipeDefinition{
			{ID: "SMELT_STEEL", Name: "Steel", Input: shared.ResourceIron, InputAmount: 5,
				Output: shared.ResourceSteel, OutputAmount: 1, Duration: 5, Machine: workshop.MachineBasicSmelter},
		},
		Upgrades: []civilization.UpgradeDefinition{
			{ID: "RETAIN", Name: "Retention", Cost: 100, Effects: []effect.Effect{effect.Retention(0.1)}},
			{ID: "SPEED", Name: "Speed", Cost: 100, Effects: []effect.Effect{effect.StatMultiplier(shared.StatGlobalMiningSpeed, 0.5)}},
		},
	}
}

type memStore struct {
	mu    sync.Mutex
	doc   *save.Document
	saves int
	err   error
}

func (s *memStore) Save(ctx context.Context, doc *save.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.doc = doc
	s.saves++
	return nil
}

func (s *memStore) Load(ctx context.Context) (*save.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if s.doc == nil {
		return nil, save.ErrNoSave
	}
	return s.doc, nil
}

var errDiskFull = errors.New("disk full")

type logEntry struct {
	level   string
	message string
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, message: message})
}

func (l *recordingLogger) has(level, message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && e.message == message {
			return true
		}
	}
	return false
}

type testEnv struct {
	clock  *shared.MockClock
	store  *memStore
	logger *recordingLogger
}

func newTestEnv() *testEnv {
	return &testEnv{
		clock:  shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		store:  &memStore{},
		logger: &recordingLogger{},
	}
}

func (e *testEnv) newGame(t *testing.T, mutate ...func(*Options, *Dependencies)) *Game {
	t.Helper()
	opts := DefaultOptions()
	opts.ManualSaveEvery = 0
	deps := Dependencies{
		Store:  e.store,
		Clock:  e.clock,
		Random: &shared.FixedRandom{},
		Logger: e.logger,
	}
	for _, m := range mutate {
		m(&opts, &deps)
	}
	g, err := New(testCatalog(), deps, opts)
	require.NoError(t, err)
	return g
}

// operationalAt repairs the ship and moves it to a site for free
func operationalAt(t *testing.T, g *Game, siteID string) {
	t.Helper()
	g.fleet.Repair(100)
	site, err := g.sites.Get(siteID)
	require.NoError(t, err)
	site.Unlock()
	require.NoError(t, g.sites.SetCurrent(siteID))
}

// readyToMine puts a site straight into production with the given levels
func readyToMine(t *testing.T, g *Game, siteID string, infra location.Infrastructure) *location.Site {
	t.Helper()
	site, err := g.sites.Get(siteID)
	require.NoError(t, err)
	site.Restore(location.SiteState{Unlocked: true, Phase: location.PhaseReadyToMine, Infrastructure: infra})
	return site
}

type grantingProvider struct{ requests []string }

func (p *grantingProvider) RequestReward(placementID string, onGranted func()) {
	p.requests = append(p.requests, placementID)
	onGranted()
}

type silentProvider struct{ requests int }

func (p *silentProvider) RequestReward(string, func()) { p.requests++ }
