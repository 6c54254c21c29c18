package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/spacerush-go/internal/adapters/content"
	"github.com/andrescamacho/spacerush-go/internal/domain/catalog"
	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse game content",
		Long: `List the sites, technologies, recipes and upgrades of the loaded content
and show how a resource is produced.

Examples:
  spacerush catalog sites
  spacerush catalog tech
  spacerush catalog chain MINING_DRILL --amount 2`,
	}

	cmd.AddCommand(newCatalogListCommand("sites", "List mining sites", printSites))
	cmd.AddCommand(newCatalogListCommand("tech", "List technologies", printTechnologies))
	cmd.AddCommand(newCatalogListCommand("recipes", "List workshop recipes", printRecipes))
	cmd.AddCommand(newCatalogListCommand("upgrades", "List civilization upgrades", printUpgrades))
	cmd.AddCommand(newCatalogChainCommand())

	return cmd
}

func loadCatalog() (*catalog.Catalog, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return content.Load(cfg.Content.Path)
}

func newCatalogListCommand(use, short string, print func(*tabwriter.Writer, *catalog.Catalog)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			print(w, cat)
			return w.Flush()
		},
	}
}

func printSites(w *tabwriter.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "ID\tBIOME\tTRAVEL\tRESOURCES\tREQUIRES")
	for _, s := range cat.Sites {
		requires := []string{}
		if s.RequiredTech != "" {
			requires = append(requires, s.RequiredTech)
		}
		if s.MinFleetLevel > 0 {
			requires = append(requires, fmt.Sprintf("fleet %d", s.MinFleetLevel))
		}
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%s\n",
			s.ID, s.Biome, s.TravelCost, joinResources(s.Resources), orDash(strings.Join(requires, ", ")))
	}
}

func printTechnologies(w *tabwriter.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "ID\tPOINTS\tEFFECTS")
	for _, t := range cat.Technologies {
		fmt.Fprintf(w, "%s\t%.0f\t%s\n", t.ID, t.ResearchPoints, describeEffects(t.Effects))
	}
}

func printRecipes(w *tabwriter.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "ID\tINPUT\tOUTPUT\tMACHINE\tTIME\tREQUIRES")
	for _, r := range cat.Recipes {
		fmt.Fprintf(w, "%s\t%d %s\t%d %s\t%s\t%.0fs\t%s\n",
			r.ID, r.InputAmount, r.Input, r.OutputAmount, r.Output, r.Machine, r.Duration, orDash(r.RequiredTech))
	}
}

func printUpgrades(w *tabwriter.Writer, cat *catalog.Catalog) {
	fmt.Fprintln(w, "ID\tNANITES\tEFFECTS")
	for _, u := range cat.Upgrades {
		fmt.Fprintf(w, "%s\t%.0f\t%s\n", u.ID, u.Cost, describeEffects(u.Effects))
	}
}

func newCatalogChainCommand() *cobra.Command {
	var amount int
	var noColor bool

	cmd := &cobra.Command{
		Use:   "chain <resource>",
		Short: "Show how a resource is mined or crafted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := shared.ParseResourceType(args[0])
			if err != nil {
				return err
			}
			if amount <= 0 {
				return fmt.Errorf("amount must be positive")
			}
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			root := BuildChain(cat, resource, amount)
			formatter := NewTreeFormatter(!noColor)
			fmt.Print(formatter.FormatTree(root))
			fmt.Println(formatter.FormatCompactTree(root))
			return nil
		},
	}

	cmd.Flags().IntVar(&amount, "amount", 1, "Units of the resource to produce")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable ANSI colors")

	return cmd
}

func describeEffects(effects []effect.Effect) string {
	parts := make([]string, 0, len(effects))
	for _, e := range effects {
		parts = append(parts, e.String())
	}
	return orDash(strings.Join(parts, ", "))
}

func joinResources(resources []shared.ResourceType) string {
	parts := make([]string, len(resources))
	for i, r := range resources {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
