package game

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

// Totals are cumulative counters since the process started
type Totals struct {
	ProducedUnits    int64
	RefinedUnits     int64
	CraftedUnits     int64
	CollectedUnits   int64
	CreditsEarned    float64
	CreditsSpent     float64
	Ascensions       int64
	Saves            int64
	SaveFailures     int64
	CommandsDeclined int64
}

// SiteStatus is a read-only view of one site
type SiteStatus struct {
	ID             string
	Name           string
	Biome          shared.Biome
	Phase          location.Phase
	Unlocked       bool
	Current        bool
	Infrastructure location.Infrastructure
	Stored         int
	Capacity       int
	Stockpile      map[shared.ResourceType]int
	Machines       map[shared.ResourceType]int
	ActiveRecipeID string
}

// Status is a consistent read-only view of the whole world
type Status struct {
	WorldID         string
	Credits         float64
	Resources       []ledger.ResourceRecord
	CurrentSiteID   string
	Sites           []SiteStatus
	FleetLevel      int
	RepairStatus    float64
	MiningSpeed     float64
	CargoCapacity   int
	Operational     bool
	ResearchPoints  float64
	Researchers     int
	Technologies    []research.TechState
	Features        []string
	Slots           []workshop.Slot
	Quotas          map[shared.ResourceType]float64
	CivLevel        int
	Nanites         float64
	RetainedPercent float64
	OwnedUpgrades   []string
	Totals          Totals
}

// Status takes a snapshot of the world for display and metrics
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := Status{
		WorldID:         g.worldID,
		Credits:         g.ledger.Credits(),
		Resources:       g.ledger.Records(),
		CurrentSiteID:   g.sites.CurrentID(),
		FleetLevel:      g.fleet.Level(),
		RepairStatus:    g.fleet.RepairStatus(),
		MiningSpeed:     g.fleet.MiningSpeed(),
		CargoCapacity:   g.fleet.CargoCapacity(),
		Operational:     g.fleet.IsOperational(),
		ResearchPoints:  g.research.ResearchPoints(),
		Researchers:     g.research.Researchers(),
		Technologies:    g.research.States(),
		Features:        g.research.Features(),
		Slots:           g.workshop.Slots(),
		Quotas:          g.quotas.Clone(),
		CivLevel:        g.civ.Level(),
		Nanites:         g.civ.Nanites(),
		RetainedPercent: g.civ.RetainedFraction() * 100,
		OwnedUpgrades:   g.civ.OwnedIDs(),
		Totals:          g.totals,
	}
	for _, site := range g.sites.Sites() {
		st.Sites = append(st.Sites, SiteStatus{
			ID:             site.ID(),
			Name:           site.Name(),
			Biome:          site.Biome(),
			Phase:          site.Phase(),
			Unlocked:       site.IsUnlocked(),
			Current:        site.ID() == st.CurrentSiteID,
			Infrastructure: site.Infrastructure(),
			Stored:         site.StockpileTotal(),
			Capacity:       site.Capacity(),
			Stockpile:      site.Stockpile(),
			Machines:       site.InstalledMachines(),
			ActiveRecipeID: site.ActiveRecipeID(),
		})
	}
	return st
}

// Quantity is a convenience read of one global stock
func (g *Game) Quantity(t shared.ResourceType) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.Quantity(t)
}

// Credits is a convenience read of the credit balance
func (g *Game) Credits() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ledger.Credits()
}
