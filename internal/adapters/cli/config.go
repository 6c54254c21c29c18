package cli

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacerush-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration settings",
		Long: `Inspect Space Rush configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (SR_* prefix)
2. Config file (config.yaml)
3. Default values

Examples:
  spacerush config show
  spacerush config show --json
  spacerush config validate --config ./configs/config.yaml`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigValidateCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			if asJSON {
				masked := *cfg
				masked.Database.Password = maskSecret(masked.Database.Password)
				masked.Database.URL = maskPassword(masked.Database.URL)
				fmt.Println(prettyPrint(masked))
				return nil
			}

			fmt.Println("Space Rush Configuration")
			fmt.Println("========================")

			sim := cfg.Simulation
			fmt.Println("Simulation:")
			fmt.Printf("  Starting Credits: %.0f\n", sim.StartingCredits)
			fmt.Printf("  Max Offline:      %s\n", sim.MaxOffline)
			fmt.Printf("  Offline Rate:     %.0f%%\n", sim.OfflineEfficiency*100)
			fmt.Printf("  Manual Save Gap:  %s\n", sim.ManualSaveEvery)
			fmt.Printf("  Resolution:       %s\n", sim.Resolution)
			if sim.Seed != 0 {
				fmt.Printf("  Seed:             %d\n", sim.Seed)
			}
			fmt.Printf("  Intervals:        production=%s workshop=%s heartbeat=%s\n",
				sim.Intervals.Production, sim.Intervals.Workshop, sim.Intervals.Heartbeat)
			fmt.Printf("                    logistics=%s market=%s autosave=%s\n",
				sim.Intervals.Logistics, sim.Intervals.Market, sim.Intervals.Autosave)

			fmt.Println("\nPersistence:")
			fmt.Printf("  Backend:          %s\n", cfg.Persistence.Backend)
			fmt.Printf("  Compression:      %s\n", cfg.Persistence.Compression)
			switch cfg.Persistence.Backend {
			case "file":
				fmt.Printf("  File:             %s\n", cfg.Persistence.FilePath)
			case "database":
				fmt.Printf("  Slot:             %s\n", cfg.Persistence.Slot)
				fmt.Printf("  History Limit:    %d\n", cfg.Persistence.HistoryLimit)
			}
			if cfg.Persistence.Backend != "none" {
				fmt.Printf("  Lock File:        %s\n", cfg.Persistence.LockFile)
			}

			if cfg.Persistence.Backend == "database" {
				fmt.Println("\nDatabase:")
				fmt.Printf("  Type:             %s\n", cfg.Database.Type)
				switch {
				case cfg.Database.URL != "":
					fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
				case cfg.Database.Type == "sqlite":
					fmt.Printf("  Path:             %s\n", cfg.Database.Path)
				default:
					fmt.Printf("  Host:             %s\n", cfg.Database.Host)
					fmt.Printf("  Port:             %d\n", cfg.Database.Port)
					fmt.Printf("  Database:         %s\n", cfg.Database.Name)
					fmt.Printf("  User:             %s\n", cfg.Database.User)
				}
				fmt.Printf("  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
				if cfg.Database.Type == "sqlite" {
					fmt.Printf("  Busy Timeout:     %s\n", cfg.Database.BusyTimeout)
				}
			}

			fmt.Println("\nContent:")
			if cfg.Content.Path == "" {
				fmt.Println("  Catalog:          (built-in)")
			} else {
				fmt.Printf("  Catalog:          %s\n", cfg.Content.Path)
			}

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			fmt.Println("\nMetrics:")
			if cfg.Metrics.Enabled {
				fmt.Printf("  Endpoint:         http://%s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
				fmt.Printf("  Poll Interval:    %s\n", cfg.Metrics.PollInterval)
			} else {
				fmt.Println("  Enabled:          false")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the resolved configuration as JSON")

	return cmd
}

// newConfigValidateCommand creates the config validate subcommand
func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration without starting a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := config.LoadConfig(configPath); err != nil {
				return err
			}
			fmt.Println("✓ Configuration is valid")
			return nil
		},
	}
}

// maskPassword masks passwords in connection strings for display
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); !ok {
		return raw
	}
	u.User = url.UserPassword(u.User.Username(), "****")
	return u.String()
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	return "****"
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
