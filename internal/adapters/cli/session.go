package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/andrescamacho/spacerush-go/internal/adapters/content"
	"github.com/andrescamacho/spacerush-go/internal/adapters/metrics"
	"github.com/andrescamacho/spacerush-go/internal/adapters/persistence"
	"github.com/andrescamacho/spacerush-go/internal/adapters/reward"
	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
	"github.com/andrescamacho/spacerush-go/internal/domain/save"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/infrastructure/config"
	"github.com/andrescamacho/spacerush-go/internal/infrastructure/database"
	"github.com/andrescamacho/spacerush-go/internal/infrastructure/logging"
)

// session is one loaded world plus everything wired around it
type session struct {
	cfg      *config.Config
	game     *game.Game
	mediator common.Mediator
	logger   common.ContainerLogger
	store    save.Store
	history  *persistence.GormSaveStore
	offline  game.OfflineReport
	loaded   bool
	closers  []io.Closer
}

// loadConfig reads the config named by --config and applies --verbose
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// openSession builds the world from config and loads the save. commandMetrics
// may be nil.
func openSession(ctx context.Context, commandMetrics *metrics.CommandMetricsCollector) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg}
	logger, logCloser, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		return nil, err
	}
	s.logger = logger
	s.closers = append(s.closers, logCloser)

	cat, err := content.Load(cfg.Content.Path)
	if err != nil {
		s.close()
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	if err := s.openStore(); err != nil {
		s.close()
		return nil, err
	}

	deps := game.Dependencies{
		Store:   s.store,
		Clock:   shared.NewRealClock(),
		Logger:  logger,
		Rewards: reward.NewSimulatedProvider(true, 0, logger),
	}
	if seed := cfg.Simulation.Seed; seed != 0 {
		deps.Random = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	g, err := game.New(cat, deps, gameOptions(cfg.Simulation))
	if err != nil {
		s.close()
		return nil, err
	}
	s.game = g

	s.mediator = common.NewMediator()
	s.mediator.RegisterMiddleware(common.LoggingMiddleware(logger))
	if commandMetrics != nil {
		s.mediator.RegisterMiddleware(metrics.PrometheusMiddleware(commandMetrics))
	}
	if err := commands.RegisterHandlers(s.mediator, g); err != nil {
		s.close()
		return nil, err
	}

	resp, err := s.mediator.Send(ctx, &commands.LoadGameCommand{})
	if err != nil {
		s.close()
		return nil, err
	}
	loaded := resp.(*commands.LoadGameResponse)
	s.loaded, s.offline = loaded.Loaded, loaded.Offline
	return s, nil
}

func (s *session) openStore() error {
	compression, err := persistence.ParseCompression(s.cfg.Persistence.Compression)
	if err != nil {
		return err
	}
	codec := persistence.NewCodec(compression)

	switch s.cfg.Persistence.Backend {
	case "file":
		s.store = persistence.NewFileStore(s.cfg.Persistence.FilePath, codec)
	case "database":
		db, err := database.NewConnection(&s.cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		s.closers = append(s.closers, closerFunc(func() error { return database.Close(db) }))
		s.history = persistence.NewGormSaveStore(db, s.cfg.Persistence.Slot, codec).
			WithHistoryLimit(s.cfg.Persistence.HistoryLimit)
		s.store = s.history
	case "none":
	default:
		return fmt.Errorf("unknown persistence backend %q", s.cfg.Persistence.Backend)
	}
	return nil
}

// send dispatches one request through the mediator
func (s *session) send(ctx context.Context, request common.Request) (common.Response, error) {
	return s.mediator.Send(ctx, request)
}

// finish writes the final save and releases resources
func (s *session) finish() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.game != nil {
		s.game.Shutdown(ctx)
	}
	s.close()
}

func (s *session) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
	s.closers = nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func gameOptions(sim config.SimulationConfig) game.Options {
	return game.Options{
		StartingCredits:   sim.StartingCredits,
		MaxOffline:        sim.MaxOffline,
		OfflineEfficiency: sim.OfflineEfficiency,
		ManualSaveEvery:   sim.ManualSaveEvery,
		Intervals: game.Intervals{
			Production: sim.Intervals.Production,
			Workshop:   sim.Intervals.Workshop,
			Heartbeat:  sim.Intervals.Heartbeat,
			Logistics:  sim.Intervals.Logistics,
			Market:     sim.Intervals.Market,
			Autosave:   sim.Intervals.Autosave,
		},
	}
}
