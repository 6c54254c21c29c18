package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacerush-go/internal/adapters/metrics"
	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/scheduler"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/infrastructure/pidfile"
)

// NewRunCommand creates the run command that keeps the simulation ticking
func NewRunCommand() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation until interrupted",
		Long: `Load the save, credit offline progress and keep every periodic system
ticking until Ctrl+C (or --for elapses). The world is saved on exit and by
the autosave task while running.

When metrics are enabled the Prometheus endpoint is served for the whole run.

Examples:
  spacerush run
  spacerush run --for 10m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.Persistence.Backend != "none" {
				lock := pidfile.New(cfg.Persistence.LockFile)
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer lock.Release()
			}

			var commandMetrics *metrics.CommandMetricsCollector
			if cfg.Metrics.Enabled {
				metrics.InitRegistry()
				commandMetrics = metrics.NewCommandMetricsCollector()
				if err := commandMetrics.Register(); err != nil {
					return fmt.Errorf("failed to register command metrics: %w", err)
				}
			}

			s, err := openSession(ctx, commandMetrics)
			if err != nil {
				return err
			}
			defer s.finish()
			printOffline(s)

			if cfg.Metrics.Enabled {
				simMetrics := metrics.NewSimulationMetricsCollector(s.game, cfg.Metrics.PollInterval)
				if err := simMetrics.Register(); err != nil {
					return fmt.Errorf("failed to register simulation metrics: %w", err)
				}
				simMetrics.Start(ctx)
				defer simMetrics.Stop()

				server, err := metrics.NewServer(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path, s.logger)
				if err != nil {
					return err
				}
				if err := server.Start(); err != nil {
					return err
				}
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = server.Shutdown(shutdownCtx)
				}()
				fmt.Printf("Metrics served at http://%s%s\n", server.Addr(), cfg.Metrics.Path)
			}

			sched := scheduler.New(shared.NewRealClock())
			if err := s.game.RegisterTasks(ctx, sched); err != nil {
				return fmt.Errorf("failed to register tasks: %w", err)
			}

			st := s.game.Status()
			fmt.Printf("World %s running at %s (%.0f credits). Press Ctrl+C to stop.\n",
				st.WorldID, st.CurrentSiteID, st.Credits)

			err = sched.Run(ctx, cfg.Simulation.Resolution)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				return err
			}

			for _, task := range sched.Tasks() {
				s.logger.Log(common.LevelInfo, "Task summary", map[string]interface{}{
					"task": task.Name,
					"runs": task.Runs,
				})
			}
			fmt.Println("Simulation stopped, saving")
			return nil
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 0, "Stop after this long (default: run until interrupted)")

	return cmd
}
