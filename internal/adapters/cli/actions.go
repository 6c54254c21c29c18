package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
)

// runAction loads the world, applies one request and saves
func runAction(request common.Request, done string) error {
	ctx := context.Background()
	s, err := openSession(ctx, nil)
	if err != nil {
		return err
	}
	defer s.finish()

	printOffline(s)
	_, err = s.send(ctx, request)
	if errors.Is(err, commands.ErrDeclined) {
		return fmt.Errorf("%s was declined; run with -v for the reason", common.RequestName(request))
	}
	if err != nil {
		return err
	}
	fmt.Println("✓", done)
	return nil
}

func printOffline(s *session) {
	if total := s.offline.Total(); total > 0 {
		fmt.Printf("While you were away (%s) the fleet mined %d units\n", s.offline.Credited.Round(1e9), total)
	}
}

func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, value)
	}
	return n, nil
}

func parseFloatArg(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a number", name, value)
	}
	return f, nil
}

// NewResearchCommand creates the research command with subcommands
func NewResearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "research",
		Short: "Research technologies and grow the research team",
		Long: `Unlock technologies with research points, hire researchers and convert
credits into research points.

Examples:
  spacerush research unlock ENV_SUIT_MK2
  spacerush research hire
  spacerush research invest 500`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "unlock <tech-id>",
		Short: "Unlock a technology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.UnlockTechnologyCommand{TechID: args[0]}, "unlocked "+args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "hire",
		Short: "Hire a researcher",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.HireResearcherCommand{}, "researcher hired")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "invest <credits>",
		Short: "Convert credits into research points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credits, err := parseFloatArg("credits", args[0])
			if err != nil {
				return err
			}
			return runAction(&commands.InvestInResearchCommand{Credits: credits}, "research funded")
		},
	})

	return cmd
}

// NewTravelCommand creates the travel command
func NewTravelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "travel <site-id>",
		Short: "Move the fleet to a site",
		Long: `Move the fleet to a site. The first visit to a locked site needs an
operational ship and pays the site's travel cost; later trips are free.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.TravelCommand{SiteID: args[0]}, "arrived at "+args[0])
		},
	}
}

// NewSiteCommand creates the site command with subcommands
func NewSiteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Develop mining sites",
		Long: `Move sites through discovery and build up their infrastructure.

Examples:
  spacerush site investigate MOON
  spacerush site mine MOON
  spacerush site upgrade MOON mining
  spacerush site install MOON MINING_DRILL
  spacerush site recipe MARS SMELT_IRON_INGOT`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "investigate <site-id>",
		Short: "Survey a discovered site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.AdvanceSiteCommand{SiteID: args[0], Stage: commands.StageInvestigate}, args[0]+" investigated")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "mine <site-id>",
		Short: "Open a mine at an investigated site",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.AdvanceSiteCommand{SiteID: args[0], Stage: commands.StageStartMining}, args[0]+" is ready to mine")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "upgrade <site-id> <mining|logistics|station|processing>",
		Short: "Raise one infrastructure track",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.UpgradeInfrastructureCommand{SiteID: args[0], Kind: args[1]}, args[1]+" upgraded")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "install <site-id> <machine>",
		Short: "Install a machine from the global stock",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.InstallSiteMachineCommand{SiteID: args[0], Machine: args[1]}, args[1]+" installed")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "recipe <site-id> <recipe-id>",
		Short: "Choose what the site's processing refines",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.SetSiteRecipeCommand{SiteID: args[0], RecipeID: args[1]}, "recipe set")
		},
	})

	return cmd
}

// NewCollectCommand creates the collect command
func NewCollectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "Load the current site's stockpile into the global stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.CollectCommand{}, "cargo collected")
		},
	}
}

// NewQuotaCommand creates the quota command
func NewQuotaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quota <resource> <percent>",
		Short: "Reserve a share of each collection for a resource",
		Long: `Reserve a percentage (0-100) of the ship's cargo for a resource when
collecting. 0 removes the quota. Once any quota is set, unreserved cargo
space is left empty.

Example:
  spacerush quota IRON 60`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := parseFloatArg("percent", args[1])
			if err != nil {
				return err
			}
			if pct < 0 || pct > 100 {
				return fmt.Errorf("percent must be between 0 and 100")
			}
			return runAction(&commands.SetAllocationQuotaCommand{Resource: args[0], Percentage: pct / 100}, "quota set")
		},
	}
}

// NewWorkshopCommand creates the workshop command with subcommands
func NewWorkshopCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workshop",
		Short: "Craft goods in workshop slots",
		Long: `Start crafting jobs, automate slots and buy machines.

Examples:
  spacerush workshop craft 0 SMELT_IRON_INGOT
  spacerush workshop automate 0
  spacerush workshop buy ASSEMBLER`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "craft <slot> <recipe-id>",
		Short: "Start a crafting job",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseIntArg("slot", args[0])
			if err != nil {
				return err
			}
			return runAction(&commands.StartJobCommand{SlotIndex: slot, RecipeID: args[1]}, "job started")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "automate <slot>",
		Short: "Make a slot restart its recipe by itself",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseIntArg("slot", args[0])
			if err != nil {
				return err
			}
			return runAction(&commands.InstallAutomationCommand{SlotIndex: slot}, "automation installed")
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "buy <BASIC_SMELTER|ASSEMBLER>",
		Short: "Buy a workshop machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.BuyMachineCommand{Machine: args[0]}, args[0]+" bought")
		},
	})

	return cmd
}

// NewFleetCommand creates the fleet command with subcommands
func NewFleetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Repair and upgrade the fleet",
	}

	var amount float64
	repair := &cobra.Command{
		Use:   "repair",
		Short: "Buy repair points",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.RepairShipCommand{Amount: amount}, "ship repaired")
		},
	}
	repair.Flags().Float64Var(&amount, "amount", 0, "Repair points to buy (default: full repair)")
	cmd.AddCommand(repair)

	cmd.AddCommand(&cobra.Command{
		Use:   "upgrade",
		Short: "Raise the fleet level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.UpgradeShipCommand{}, "fleet upgraded")
		},
	})

	return cmd
}

// NewMarketCommand creates the market command with subcommands
func NewMarketCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Trade resources at the current market value",
	}

	for _, side := range []commands.TradeSide{commands.SideSell, commands.SideBuy} {
		side := side
		cmd.AddCommand(&cobra.Command{
			Use:   string(side) + " <resource> <quantity>",
			Short: fmt.Sprintf("%s resources", side),
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				qty, err := parseIntArg("quantity", args[1])
				if err != nil {
					return err
				}
				return runAction(&commands.TradeCommand{Side: side, Resource: args[0], Quantity: qty}, "trade completed")
			},
		})
	}

	return cmd
}

// NewAscendCommand creates the ascend command
func NewAscendCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ascend",
		Short: "Reset the world for nanites and a permanent bonus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.AscendCommand{}, "civilization ascended")
		},
	}
}

// NewUpgradeCommand creates the upgrade command
func NewUpgradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <upgrade-id>",
		Short: "Spend nanites on a civilization upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.BuyUpgradeCommand{UpgradeID: args[0]}, args[0]+" bought")
		},
	}
}

// NewOfflineCommand creates the offline command
func NewOfflineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "offline",
		Short: "Offline progress rewards",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "double",
		Short: "Watch a reward to double the gains of the last absence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(&commands.DoubleOfflineGainsCommand{}, "reward requested")
		},
	})
	return cmd
}
