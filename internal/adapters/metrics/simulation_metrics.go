package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/spacerush-go/internal/application/game"
)

const simulationSubsystem = "simulation"

// StatusSource is anything that can report the world status
type StatusSource interface {
	Status() game.Status
}

// SimulationMetricsCollector polls the world status and exposes it as gauges
// and counters
type SimulationMetricsCollector struct {
	source   StatusSource
	interval time.Duration

	credits        prometheus.Gauge
	resourceStock  *prometheus.GaugeVec
	marketValue    *prometheus.GaugeVec
	siteStored     *prometheus.GaugeVec
	fleetLevel     prometheus.Gauge
	repairStatus   prometheus.Gauge
	miningSpeed    prometheus.Gauge
	researchPoints prometheus.Gauge
	researchers    prometheus.Gauge
	civLevel       prometheus.Gauge
	nanites        prometheus.Gauge

	unitsTotal   *prometheus.CounterVec
	creditsTotal *prometheus.CounterVec
	eventsTotal  *prometheus.CounterVec

	// last totals seen, counters advance by the difference
	last game.Totals

	// Lifecycle
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mu         sync.Mutex
}

// NewSimulationMetricsCollector creates a collector polling source every interval
func NewSimulationMetricsCollector(source StatusSource, interval time.Duration) *SimulationMetricsCollector {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: simulationSubsystem,
			Name:      name,
			Help:      help,
		})
	}

	return &SimulationMetricsCollector{
		source:   source,
		interval: interval,

		credits: gauge("credits", "Current credit balance"),
		resourceStock: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: simulationSubsystem,
				Name:      "resource_quantity",
				Help:      "Global stock per resource",
			},
			[]string{"resource"},
		),
		marketValue: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: simulationSubsystem,
				Name:      "market_value",
				Help:      "Current market value per resource",
			},
			[]string{"resource"},
		),
		siteStored: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: simulationSubsystem,
				Name:      "site_stockpile_units",
				Help:      "Units waiting in each site stockpile",
			},
			[]string{"site"},
		),
		fleetLevel:     gauge("fleet_level", "Fleet level"),
		repairStatus:   gauge("fleet_repair_status", "Fleet repair status from 0 to 100"),
		miningSpeed:    gauge("fleet_mining_speed", "Fleet mining speed in units per second"),
		researchPoints: gauge("research_points", "Unspent research points"),
		researchers:    gauge("researchers", "Hired researchers"),
		civLevel:       gauge("civilization_level", "Civilization level"),
		nanites:        gauge("nanites", "Unspent nanites"),

		unitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: simulationSubsystem,
				Name:      "units_total",
				Help:      "Units moved through the economy by stage",
			},
			[]string{"stage"},
		),
		creditsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: simulationSubsystem,
				Name:      "credits_total",
				Help:      "Credits earned and spent on the market",
			},
			[]string{"direction"},
		),
		eventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: simulationSubsystem,
				Name:      "events_total",
				Help:      "Ascensions, saves and declined commands",
			},
			[]string{"event"},
		),
	}
}

// Register registers all simulation metrics with the Prometheus registry
func (c *SimulationMetricsCollector) Register() error {
	return register(
		c.credits,
		c.resourceStock,
		c.marketValue,
		c.siteStored,
		c.fleetLevel,
		c.repairStatus,
		c.miningSpeed,
		c.researchPoints,
		c.researchers,
		c.civLevel,
		c.nanites,
		c.unitsTotal,
		c.creditsTotal,
		c.eventsTotal,
	)
}

// Start begins the status polling goroutine
func (c *SimulationMetricsCollector) Start(ctx context.Context) {
	c.ctx, c.cancelFunc = context.WithCancel(ctx)

	c.wg.Add(1)
	go c.poll()
}

// Stop gracefully stops the collector
func (c *SimulationMetricsCollector) Stop() {
	if c.cancelFunc != nil {
		c.cancelFunc()
	}
	c.wg.Wait()
}

func (c *SimulationMetricsCollector) poll() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Do initial poll immediately
	c.Update()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			c.Update()
		}
	}
}

// Update takes one status sample
func (c *SimulationMetricsCollector) Update() {
	st := c.source.Status()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.credits.Set(st.Credits)
	for _, r := range st.Resources {
		c.resourceStock.WithLabelValues(string(r.Type)).Set(float64(r.Quantity))
		c.marketValue.WithLabelValues(string(r.Type)).Set(r.MarketValue)
	}
	for _, s := range st.Sites {
		c.siteStored.WithLabelValues(s.ID).Set(float64(s.Stored))
	}
	c.fleetLevel.Set(float64(st.FleetLevel))
	c.repairStatus.Set(st.RepairStatus)
	c.miningSpeed.Set(st.MiningSpeed)
	c.researchPoints.Set(st.ResearchPoints)
	c.researchers.Set(float64(st.Researchers))
	c.civLevel.Set(float64(st.CivLevel))
	c.nanites.Set(st.Nanites)

	now, last := st.Totals, c.last
	advance(c.unitsTotal.WithLabelValues("produced"), float64(now.ProducedUnits), float64(last.ProducedUnits))
	advance(c.unitsTotal.WithLabelValues("refined"), float64(now.RefinedUnits), float64(last.RefinedUnits))
	advance(c.unitsTotal.WithLabelValues("crafted"), float64(now.CraftedUnits), float64(last.CraftedUnits))
	advance(c.unitsTotal.WithLabelValues("collected"), float64(now.CollectedUnits), float64(last.CollectedUnits))
	advance(c.creditsTotal.WithLabelValues("earned"), now.CreditsEarned, last.CreditsEarned)
	advance(c.creditsTotal.WithLabelValues("spent"), now.CreditsSpent, last.CreditsSpent)
	advance(c.eventsTotal.WithLabelValues("ascension"), float64(now.Ascensions), float64(last.Ascensions))
	advance(c.eventsTotal.WithLabelValues("save"), float64(now.Saves), float64(last.Saves))
	advance(c.eventsTotal.WithLabelValues("save_failure"), float64(now.SaveFailures), float64(last.SaveFailures))
	advance(c.eventsTotal.WithLabelValues("declined_command"), float64(now.CommandsDeclined), float64(last.CommandsDeclined))
	c.last = now
}

func advance(counter prometheus.Counter, now, last float64) {
	if now > last {
		counter.Add(now - last)
	}
}
