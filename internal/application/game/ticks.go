package game

import (
	"context"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/scheduler"
	"github.com/andrescamacho/spacerush-go/internal/domain/logistics"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

// ProductionTick mines and then refines at every site that is ready to mine
func (g *Game) ProductionTick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, site := range g.sites.ReadyToMine() {
		if out, ok := g.production.ProduceTick(site); ok {
			g.totals.ProducedUnits += int64(out.Amount)
		}
		done, err := g.processor.ProcessTick(site)
		if err != nil {
			g.logger.Log(common.LevelDebug, "site processing skipped", map[string]interface{}{
				"site":  site.ID(),
				"error": err.Error(),
			})
			continue
		}
		g.totals.RefinedUnits += int64(done.Produced)
	}
}

// WorkshopTick advances every workshop slot by one tick
func (g *Game) WorkshopTick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	report := g.workshop.Tick(g.ledger, g.research)
	for _, c := range report.Completed {
		g.totals.CraftedUnits += int64(c.Amount)
		g.logger.Log(common.LevelDebug, "job completed", map[string]interface{}{
			"slot":   c.SlotIndex,
			"recipe": c.RecipeID,
			"output": string(c.Output),
			"amount": c.Amount,
		})
	}
	for _, err := range report.Declined {
		g.logger.Log(levelFor(err), "automated job not started", map[string]interface{}{"error": err.Error()})
	}
}

// HeartbeatTick runs the once-per-interval global systems for elapsed seconds:
// research accrual, fleet mining at the current site and droid repairs.
func (g *Game) HeartbeatTick(elapsed time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return
	}

	g.research.Accrue(seconds, g.civ.GlobalMultiplier(shared.StatGlobalResearchSpeed))
	g.fleetMine(seconds)

	if g.research.HasFeature(shared.FeatureRepairDroid) && g.fleet.MissingRepair() > 0 {
		if err := g.ledger.SpendCredits(AutoRepairSpend); err == nil {
			g.fleet.Repair(AutoRepairPoints)
		}
	}
}

// fleetMine lets an operational ship extract at its current site.
// Fractional output carries over between heartbeats.
func (g *Game) fleetMine(seconds float64) {
	site := g.sites.Current()
	if site == nil || !g.fleet.IsOperational() {
		return
	}
	resources := site.Definition().Resources
	if len(resources) == 0 {
		return
	}

	g.miningCarry += g.fleet.MiningSpeed() * seconds
	units := utils.FloorToInt(g.miningCarry)
	if units <= 0 {
		return
	}
	g.miningCarry -= float64(units)
	t := resources[g.rng.IntN(len(resources))]
	if err := g.ledger.AddResource(t, units); err == nil {
		g.totals.ProducedUnits += int64(units)
	}
}

// LogisticsTick hauls site stockpiles home once automated logistics is researched
func (g *Game) LogisticsTick() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.research.HasFeature(shared.FeatureAutoLogistics) {
		return
	}
	moved, err := logistics.AutoLogisticsTick(g.sites.ReadyToMine(), g.ledger)
	g.totals.CollectedUnits += int64(moved.Total())
	if err != nil {
		g.logger.Log(common.LevelWarn, "auto logistics incomplete", map[string]interface{}{"error": err.Error()})
	}
}

// MarketTick rerolls market values
func (g *Game) MarketTick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.market.UpdatePrices()
}

// AutosaveTick writes a snapshot without the manual-save throttle
func (g *Game) AutosaveTick(ctx context.Context) {
	g.persist(ctx, "autosave")
}

// RegisterTasks schedules every periodic system. Intervals left at zero use the defaults.
func (g *Game) RegisterTasks(ctx context.Context, s *scheduler.Scheduler) error {
	iv := g.opts.Intervals
	def := DefaultIntervals()
	pick := func(d, fallback time.Duration) time.Duration {
		if d > 0 {
			return d
		}
		return fallback
	}
	heartbeat := pick(iv.Heartbeat, def.Heartbeat)

	tasks := []scheduler.Task{
		{Name: "production", Interval: pick(iv.Production, def.Production), Run: func(time.Time) { g.ProductionTick() }},
		{Name: "workshop", Interval: pick(iv.Workshop, def.Workshop), Run: func(time.Time) { g.WorkshopTick() }},
		{Name: "heartbeat", Interval: heartbeat, Run: func(time.Time) { g.HeartbeatTick(heartbeat) }},
		{Name: "logistics", Interval: pick(iv.Logistics, def.Logistics), Run: func(time.Time) { g.LogisticsTick() }},
		{Name: "market", Interval: pick(iv.Market, def.Market), Run: func(time.Time) { g.MarketTick() }},
	}
	if g.store != nil {
		tasks = append(tasks, scheduler.Task{
			Name:     "autosave",
			Interval: pick(iv.Autosave, def.Autosave),
			Run:      func(time.Time) { g.AutosaveTick(ctx) },
		})
	}

	for _, task := range tasks {
		if err := s.Register(task); err != nil {
			return err
		}
	}
	return nil
}
