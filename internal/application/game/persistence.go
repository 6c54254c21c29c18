package game

import (
	"context"
	"errors"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/logistics"
	"github.com/andrescamacho/spacerush-go/internal/domain/save"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

// SaveGame writes a snapshot on player request. Requests closer together than
// Options.ManualSaveEvery are declined.
func (g *Game) SaveGame(ctx context.Context) bool {
	if g.saveLimiter != nil && !g.saveLimiter.Allow() {
		g.logger.Log(common.LevelInfo, "SaveGame declined", map[string]interface{}{"reason": "saving too often"})
		return false
	}
	return g.persist(ctx, "manual")
}

// Shutdown performs the final save. It ignores the manual-save throttle and
// should be given a context that is not already cancelled.
func (g *Game) Shutdown(ctx context.Context) bool {
	return g.persist(ctx, "shutdown")
}

func (g *Game) persist(ctx context.Context, reason string) bool {
	if g.store == nil {
		g.logger.Log(common.LevelDebug, "no save store configured", map[string]interface{}{"reason": reason})
		return false
	}

	doc := g.Capture()
	err := g.store.Save(ctx, doc)

	g.mu.Lock()
	if err != nil {
		g.totals.SaveFailures++
	} else {
		g.totals.Saves++
	}
	g.mu.Unlock()

	if err != nil {
		g.logger.Log(common.LevelError, "failed to save game", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
		return false
	}
	g.logger.Log(common.LevelDebug, "game saved", map[string]interface{}{
		"reason":  reason,
		"save_id": doc.SaveID,
	})
	return true
}

// LoadGame replaces the world with the stored snapshot and credits offline
// progress. It returns false when there is nothing to load or loading failed;
// in both cases the current world is left untouched.
func (g *Game) LoadGame(ctx context.Context) bool {
	if g.store == nil {
		return false
	}
	doc, err := g.store.Load(ctx)
	if errors.Is(err, save.ErrNoSave) {
		g.logger.Log(common.LevelInfo, "no saved game, starting fresh", nil)
		return false
	}
	if err != nil {
		g.logger.Log(common.LevelError, "failed to load game, starting fresh", map[string]interface{}{"error": err.Error()})
		return false
	}

	report := g.Apply(doc)
	g.logger.Log(common.LevelInfo, "game loaded", map[string]interface{}{
		"save_id":      doc.SaveID,
		"saved_at":     doc.Timestamp.Format(time.RFC3339),
		"offline_secs": int(report.Credited.Seconds()),
		"offline_gain": report.Total(),
	})
	return true
}

// Capture snapshots the whole world
func (g *Game) Capture() *save.Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.capture()
}

func (g *Game) capture() *save.Document {
	doc := &save.Document{
		Version:           save.CurrentVersion,
		SaveID:            g.worldID,
		Timestamp:         g.now(),
		Credits:           g.ledger.Credits(),
		CurrentLocationID: g.sites.CurrentID(),
		Fleet: save.FleetData{
			Level:        g.fleet.Level(),
			RepairStatus: g.fleet.RepairStatus(),
		},
		Research: save.ResearchData{
			Researchers:     g.research.Researchers(),
			ResearchPoints:  g.research.ResearchPoints(),
			UnlockedTechIDs: nonNil(g.research.UnlockedIDs()),
		},
		Workshop: save.WorkshopData{
			SmelterCount:   g.workshop.SmelterCount(),
			AssemblerCount: g.workshop.AssemblerCount(),
		},
		Civilization: save.CivilizationData{
			Level:              g.civ.Level(),
			Nanites:            g.civ.Nanites(),
			UnlockedUpgradeIDs: nonNil(g.civ.OwnedIDs()),
		},
		Resources:            []save.ResourceEntry{},
		Locations:            []save.LocationData{},
		LogisticsAllocations: []save.AllocationEntry{},
	}

	for _, rec := range g.ledger.Records() {
		doc.Resources = append(doc.Resources, save.ResourceEntry{
			Type:        string(rec.Type),
			Quantity:    rec.Quantity,
			MarketValue: rec.MarketValue,
		})
	}

	for _, site := range g.sites.Sites() {
		state := site.Snapshot()
		doc.Locations = append(doc.Locations, save.LocationData{
			ID:                site.ID(),
			Unlocked:          state.Unlocked,
			State:             string(state.Phase),
			MiningLevel:       state.Infrastructure.Mining,
			LogisticsLevel:    state.Infrastructure.Logistics,
			StationLevel:      state.Infrastructure.Station,
			ProcessingLevel:   state.Infrastructure.Processing,
			ActiveRecipeID:    state.ActiveRecipeID,
			InstalledMachines: stockEntries(state.InstalledMachines),
			Stockpile:         stockEntries(state.Stockpile),
		})
	}

	for _, t := range shared.SortedKeys(g.quotas) {
		doc.LogisticsAllocations = append(doc.LogisticsAllocations, save.AllocationEntry{
			Type:       string(t),
			Percentage: g.quotas[t],
		})
	}

	for _, slot := range g.workshop.Slots() {
		doc.Workshop.Slots = append(doc.Workshop.Slots, save.SlotData{
			Index:          slot.Index,
			Machine:        string(slot.Machine),
			ActiveRecipeID: slot.ActiveRecipeID,
			Progress:       slot.Progress,
			Working:        slot.Working,
			Automated:      slot.Automated,
		})
	}
	return doc
}

// Apply replaces the world with doc in dependency order: resources, research,
// fleet, workshop, sites, current site, quotas, civilization, then offline
// progress. Unknown ids and malformed values are skipped or defaulted.
func (g *Game) Apply(doc *save.Document) OfflineReport {
	g.mu.Lock()
	defer g.mu.Unlock()

	if doc == nil {
		doc = &save.Document{}
	}
	var skipped []string

	g.ledger.Reset()
	g.ledger.SetCredits(doc.Credits)
	for _, entry := range doc.Resources {
		t, err := shared.ParseResourceType(entry.Type)
		if err != nil || g.ledger.SetResource(t, max(entry.Quantity, 0)) != nil {
			skipped = append(skipped, "resource:"+entry.Type)
			continue
		}
		if entry.MarketValue > 0 {
			_ = g.ledger.SetMarketValue(t, entry.MarketValue)
		}
	}

	unknownTech, err := g.research.LoadData(doc.Research.Researchers, doc.Research.ResearchPoints, doc.Research.UnlockedTechIDs)
	skipped = append(skipped, prefixed("tech:", unknownTech)...)
	if err != nil {
		g.logger.Log(common.LevelWarn, "technology effects failed to reapply", map[string]interface{}{"error": err.Error()})
	}

	g.fleet.Restore(doc.Fleet.Level, doc.Fleet.RepairStatus)
	g.fleet.Recalculate(g.research, g.civ)

	if ws := doc.Workshop; ws.SmelterCount == 0 && ws.AssemblerCount == 0 && len(ws.Slots) == 0 {
		g.workshop.Reset()
	} else {
		g.workshop.Restore(ws.SmelterCount, ws.AssemblerCount, slotsFrom(ws.Slots))
	}

	g.sites.Reset()
	for _, data := range doc.Locations {
		site, err := g.sites.Get(data.ID)
		if err != nil {
			skipped = append(skipped, "site:"+data.ID)
			continue
		}
		site.Restore(location.SiteState{
			Unlocked: data.Unlocked,
			Phase:    location.Phase(data.State),
			Infrastructure: location.Infrastructure{
				Mining:     data.MiningLevel,
				Logistics:  data.LogisticsLevel,
				Station:    data.StationLevel,
				Processing: data.ProcessingLevel,
			},
			Stockpile:         stockFrom(data.Stockpile),
			InstalledMachines: stockFrom(data.InstalledMachines),
			ActiveRecipeID:    data.ActiveRecipeID,
		})
	}

	if doc.CurrentLocationID != "" {
		if err := g.sites.SetCurrent(doc.CurrentLocationID); err != nil {
			skipped = append(skipped, "current:"+doc.CurrentLocationID)
		}
	}

	g.quotas = make(logistics.Quotas)
	for _, entry := range doc.LogisticsAllocations {
		t, err := shared.ParseResourceType(entry.Type)
		if err != nil {
			skipped = append(skipped, "quota:"+entry.Type)
			continue
		}
		g.quotas.Set(t, entry.Percentage)
	}

	unknownUpgrades, err := g.civ.LoadData(doc.Civilization.Level, doc.Civilization.Nanites, doc.Civilization.UnlockedUpgradeIDs)
	skipped = append(skipped, prefixed("upgrade:", unknownUpgrades)...)
	if err != nil {
		g.logger.Log(common.LevelWarn, "upgrade effects failed to reapply", map[string]interface{}{"error": err.Error()})
	}
	// civilization multipliers feed the fleet as well
	g.fleet.Recalculate(g.research, g.civ)

	if doc.SaveID != "" {
		g.worldID = doc.SaveID
	}
	g.miningCarry = 0

	if len(skipped) > 0 {
		g.logger.Log(common.LevelWarn, "snapshot entries skipped", map[string]interface{}{"entries": skipped})
	}

	g.offlineGeneration++
	g.offlineDoubled = false
	g.lastOffline = g.creditOffline(doc.Timestamp)
	return g.lastOffline
}

func stockEntries(m map[shared.ResourceType]int) []save.StockEntry {
	entries := []save.StockEntry{}
	for _, t := range shared.SortedKeys(m) {
		entries = append(entries, save.StockEntry{Type: string(t), Quantity: m[t]})
	}
	return entries
}

func stockFrom(entries []save.StockEntry) map[shared.ResourceType]int {
	m := make(map[shared.ResourceType]int, len(entries))
	for _, e := range entries {
		t, err := shared.ParseResourceType(e.Type)
		if err != nil || e.Quantity <= 0 {
			continue
		}
		m[t] += e.Quantity
	}
	return m
}

func slotsFrom(data []save.SlotData) []workshop.Slot {
	slots := make([]workshop.Slot, 0, len(data))
	for _, d := range data {
		slots = append(slots, workshop.Slot{
			Index:          d.Index,
			Machine:        workshop.MachineType(d.Machine),
			ActiveRecipeID: d.ActiveRecipeID,
			Progress:       d.Progress,
			Working:        d.Working,
			Automated:      d.Automated,
		})
	}
	return slots
}

func prefixed(prefix string, ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, prefix+id)
	}
	return out
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
