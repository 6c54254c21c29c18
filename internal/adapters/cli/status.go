package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
)

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	var showSites bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of the world",
		Long: `Show credits, stock, fleet, research, workshop and civilization state.

Examples:
  spacerush status
  spacerush status --sites`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := openSession(ctx, nil)
			if err != nil {
				return err
			}
			defer s.finish()

			printOffline(s)
			resp, err := s.send(ctx, &commands.GetStatusQuery{})
			if err != nil {
				return err
			}
			printStatus(resp.(*commands.GetStatusResponse).Status, showSites)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSites, "sites", false, "List every site, not only the current one")

	return cmd
}

func printStatus(st game.Status, showSites bool) {
	fmt.Printf("World %s\n", st.WorldID)
	fmt.Printf("Credits: %.0f    Civilization: level %d, %.0f nanites, %.0f%% retained\n",
		st.Credits, st.CivLevel, st.Nanites, st.RetainedPercent)

	operational := "operational"
	if !st.Operational {
		operational = "grounded"
	}
	fmt.Printf("Fleet: level %d at %s, %.0f%% repaired (%s), %.1f units/s, cargo %d\n",
		st.FleetLevel, st.CurrentSiteID, st.RepairStatus, operational, st.MiningSpeed, st.CargoCapacity)
	fmt.Printf("Research: %.1f points, %d researchers, %d technologies unlocked\n",
		st.ResearchPoints, st.Researchers, countUnlocked(st))

	fmt.Println("\nResources:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  TYPE\tQUANTITY\tVALUE\tQUOTA")
	for _, r := range st.Resources {
		if r.Quantity == 0 && st.Quotas[r.Type] == 0 {
			continue
		}
		quota := "-"
		if pct := st.Quotas[r.Type]; pct > 0 {
			quota = fmt.Sprintf("%.0f%%", pct*100)
		}
		fmt.Fprintf(w, "  %s\t%d\t%.2f\t%s\n", r.Type, r.Quantity, r.MarketValue, quota)
	}
	w.Flush()

	fmt.Println("\nSites:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tPHASE\tSTOCKPILE\tINFRA (M/L/S/P)\tRECIPE")
	for _, site := range st.Sites {
		if !showSites && !site.Current {
			continue
		}
		marker := " "
		if site.Current {
			marker = "*"
		}
		recipe := site.ActiveRecipeID
		if recipe == "" {
			recipe = "-"
		}
		infra := site.Infrastructure
		fmt.Fprintf(w, "%s %s\t%s\t%d/%d\t%d/%d/%d/%d\t%s\n",
			marker, site.ID, site.Phase, site.Stored, site.Capacity,
			infra.Mining, infra.Logistics, infra.Station, infra.Processing, recipe)
	}
	w.Flush()

	fmt.Println("\nWorkshop:")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  SLOT\tMACHINE\tRECIPE\tPROGRESS\tAUTO")
	for _, slot := range st.Slots {
		recipe := slot.ActiveRecipeID
		if recipe == "" {
			recipe = "idle"
		}
		auto := ""
		if slot.Automated {
			auto = "yes"
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%.0f%%\t%s\n", slot.Index, slot.Machine, recipe, slot.Progress*100, auto)
	}
	w.Flush()

	if len(st.OwnedUpgrades) > 0 {
		owned := append([]string(nil), st.OwnedUpgrades...)
		sort.Strings(owned)
		fmt.Printf("\nUpgrades: %s\n", strings.Join(owned, ", "))
	}
}

func countUnlocked(st game.Status) int {
	n := 0
	for _, tech := range st.Technologies {
		if tech.Unlocked {
			n++
		}
	}
	return n
}
