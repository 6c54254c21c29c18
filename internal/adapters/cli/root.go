package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spacerush",
		Short: "Space Rush - idle mining and trading simulation",
		Long: `Space Rush runs the mining, logistics, workshop and research simulation
against a local save. "spacerush run" keeps the world ticking; every other
command loads the save, credits offline progress, applies one action and
saves again.

Examples:
  spacerush run
  spacerush status
  spacerush travel MOON
  spacerush site investigate MOON
  spacerush workshop craft 0 SMELT_IRON_INGOT
  spacerush market sell IRON 50
  spacerush research unlock ENV_SUIT_MK2
  spacerush ascend`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml, /etc/spacerush/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewResearchCommand())
	rootCmd.AddCommand(NewTravelCommand())
	rootCmd.AddCommand(NewSiteCommand())
	rootCmd.AddCommand(NewCollectCommand())
	rootCmd.AddCommand(NewQuotaCommand())
	rootCmd.AddCommand(NewWorkshopCommand())
	rootCmd.AddCommand(NewFleetCommand())
	rootCmd.AddCommand(NewMarketCommand())
	rootCmd.AddCommand(NewAscendCommand())
	rootCmd.AddCommand(NewUpgradeCommand())
	rootCmd.AddCommand(NewOfflineCommand())
	rootCmd.AddCommand(NewSaveCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
