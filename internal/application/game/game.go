package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/domain/catalog"
	"github.com/andrescamacho/spacerush-go/internal/domain/civilization"
	"github.com/andrescamacho/spacerush-go/internal/domain/fleet"
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/logistics"
	"github.com/andrescamacho/spacerush-go/internal/domain/market"
	"github.com/andrescamacho/spacerush-go/internal/domain/mining"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/save"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

// Game is the simulation context. It owns one instance of every engine and
// serialises all access to them behind a single mutex, so commands from the
// CLI and readers such as the metrics poller can share it with the scheduler.
type Game struct {
	mu sync.Mutex

	catalog    *catalog.Catalog
	ledger     *ledger.Ledger
	sites      *location.Registry
	fleet      *fleet.Fleet
	research   *research.Engine
	workshop   *workshop.Workshop
	civ        *civilization.Civilization
	market     *market.Market
	production *mining.Engine
	processor  *mining.Processor
	quotas     logistics.Quotas

	store       save.Store
	saveLimiter *rate.Limiter
	rewards     common.RewardProvider
	clock       shared.Clock
	rng         shared.Random
	logger      common.ContainerLogger
	opts        Options

	worldID           string
	miningCarry       float64
	lastOffline       OfflineReport
	offlineGeneration int
	offlineDoubled    bool
	totals            Totals
}

// New builds a fresh world from a validated catalog
func New(cat *catalog.Catalog, deps Dependencies, opts Options) (*Game, error) {
	if cat == nil {
		return nil, fmt.Errorf("catalog cannot be nil")
	}
	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	if opts.StartingCredits < 0 {
		return nil, fmt.Errorf("starting credits cannot be negative")
	}
	if opts.OfflineEfficiency < 0 {
		return nil, fmt.Errorf("offline efficiency cannot be negative")
	}

	if deps.Clock == nil {
		deps.Clock = shared.NewRealClock()
	}
	if deps.Random == nil {
		seed := uint64(deps.Clock.Now().UnixNano())
		deps.Random = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	if deps.Logger == nil {
		deps.Logger = common.NoOpLogger()
	}

	g := &Game{
		worldID: uuid.NewString(),
		catalog: cat,
		store:   deps.Store,
		rewards: deps.Rewards,
		clock:   deps.Clock,
		rng:     deps.Random,
		logger:  deps.Logger,
		opts:    opts,
		quotas:  make(logistics.Quotas),
	}
	if opts.ManualSaveEvery > 0 {
		g.saveLimiter = rate.NewLimiter(rate.Every(opts.ManualSaveEvery), 1)
	}

	g.ledger = ledger.NewLedger(cat.Resources)
	g.sites = location.NewRegistry(cat.Sites)
	g.fleet = fleet.NewFleet()
	g.research = research.NewEngine(cat.Technologies)
	g.workshop = workshop.NewWorkshop(cat.Recipes)
	g.civ = civilization.NewCivilization(cat.Upgrades)
	g.market = market.NewMarket(g.ledger, g.rng)
	g.production = mining.NewEngine(g.research, g.civ, g.ledger, g.rng)
	g.processor = mining.NewProcessor(g.workshop, g.research, g.rng)

	g.research.OnStatChanged(func(stat shared.Stat) {
		if stat.HasFleetDependents() {
			g.fleet.Recalculate(g.research, g.civ)
		}
	})

	g.ledger.SetCredits(opts.StartingCredits)
	g.fleet.Recalculate(g.research, g.civ)
	return g, nil
}

// Catalog returns the static content the world was built from
func (g *Game) Catalog() *catalog.Catalog {
	return g.catalog
}

// do runs a command under the lock. A failure is logged and reported as false.
func (g *Game) do(command string, fields map[string]interface{}, fn func() error) bool {
	g.mu.Lock()
	err := fn()
	if err != nil {
		g.totals.CommandsDeclined++
	}
	g.mu.Unlock()

	if err != nil {
		g.logDeclined(command, err, fields)
		return false
	}
	return true
}

func (g *Game) logDeclined(command string, err error, fields map[string]interface{}) {
	metadata := map[string]interface{}{"command": command, "error": err.Error()}
	for k, v := range fields {
		metadata[k] = v
	}
	g.logger.Log(levelFor(err), command+" declined", metadata)
}

// levelFor maps the error taxonomy to log levels. Expected refusals are
// advisory; automated retries are quieter still.
func levelFor(err error) string {
	var mismatch *shared.InvalidMachineMatchError
	if errors.As(err, &mismatch) && mismatch.Automated {
		return common.LevelDebug
	}

	var (
		funds   *shared.InsufficientFundsError
		stock   *shared.InsufficientStockError
		points  *shared.InsufficientResearchPointsError
		unknown *shared.UnknownIDError
		pre     *shared.PreconditionError
		invalid *shared.ValidationError
	)
	switch {
	case errors.As(err, &funds), errors.As(err, &stock), errors.As(err, &points),
		errors.As(err, &unknown), errors.As(err, &pre), errors.As(err, &invalid), errors.As(err, &mismatch):
		return common.LevelInfo
	default:
		return common.LevelWarn
	}
}

func (g *Game) now() time.Time {
	return g.clock.Now().UTC()
}
