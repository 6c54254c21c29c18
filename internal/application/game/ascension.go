package game

import (
	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/domain/logistics"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// AscensionReport describes one completed ascension
type AscensionReport struct {
	Level         int
	NanitesEarned float64
	Retained      map[shared.ResourceType]int
}

// Ascend raises the civilization level and resets the world to its starting
// configuration. Only civilization state survives; a fraction of every held
// resource comes back if retention upgrades are owned.
func (g *Game) Ascend() bool {
	g.mu.Lock()
	report := g.ascend()
	g.mu.Unlock()

	g.logger.Log(common.LevelInfo, "civilization ascended", map[string]interface{}{
		"level":    report.Level,
		"nanites":  report.NanitesEarned,
		"retained": len(report.Retained),
	})
	return true
}

func (g *Game) ascend() AscensionReport {
	held := g.ledger.Quantities()
	earned := g.civ.Ascend()

	g.resetWorld()

	retained := make(map[shared.ResourceType]int)
	for _, t := range shared.SortedKeys(held) {
		keep := g.civ.RetainedAmount(held[t])
		if keep <= 0 {
			continue
		}
		if err := g.ledger.AddResource(t, keep); err == nil {
			retained[t] = keep
		}
	}
	g.fleet.Recalculate(g.research, g.civ)
	g.totals.Ascensions++

	return AscensionReport{Level: g.civ.Level(), NanitesEarned: earned, Retained: retained}
}

// resetWorld rebuilds every engine except the civilization
func (g *Game) resetWorld() {
	g.ledger.Reset()
	g.ledger.SetCredits(g.opts.StartingCredits)
	g.sites.Reset()
	g.fleet.Reset()
	g.research.Reset()
	g.workshop.Reset()
	g.quotas = make(logistics.Quotas)
	g.miningCarry = 0
	g.lastOffline = OfflineReport{}
	g.offlineGeneration++
	g.offlineDoubled = false
}
