package game

import (
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/logistics"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
	"github.com/andrescamacho/spacerush-go/pkg/utils"
)

// UnlockTechnology spends research points on a technology
func (g *Game) UnlockTechnology(id string) bool {
	return g.do("UnlockTechnology", map[string]interface{}{"tech": id}, func() error {
		return g.research.Unlock(id)
	})
}

// StartJob starts a manual crafting job in a workshop slot
func (g *Game) StartJob(slotIndex int, recipeID string) bool {
	return g.do("StartJob", map[string]interface{}{"slot": slotIndex, "recipe": recipeID}, func() error {
		return g.workshop.StartJob(slotIndex, recipeID, g.ledger, g.research, false)
	})
}

// InstallAutomation buys an AI controller for a workshop slot
func (g *Game) InstallAutomation(slotIndex int) bool {
	return g.do("InstallAutomation", map[string]interface{}{"slot": slotIndex}, func() error {
		slot, err := g.workshop.Slot(slotIndex)
		if err != nil {
			return err
		}
		if slot.Automated {
			return shared.NewPreconditionError("slot %d is already automated", slotIndex)
		}
		if err := g.ledger.SpendCredits(workshop.AutomationCost); err != nil {
			return err
		}
		return g.workshop.InstallAutomation(slotIndex)
	})
}

// BuyMachine adds a smelter or an assembler to the workshop
func (g *Game) BuyMachine(machine workshop.MachineType) bool {
	return g.do("BuyMachine", map[string]interface{}{"machine": string(machine)}, func() error {
		price, ok := workshop.MachinePrice[machine]
		if !ok {
			return shared.NewValidationError("machine", "cannot buy machine "+string(machine))
		}
		if g.workshop.MachineCount(machine) >= workshop.MaxMachinesPerType {
			return shared.NewPreconditionError("already at the maximum of %d %s machines", workshop.MaxMachinesPerType, machine)
		}
		if err := g.ledger.SpendCredits(price); err != nil {
			return err
		}
		return g.workshop.AddMachine(machine)
	})
}

// TryTravel moves the fleet to a site. Reaching a site for the first time
// requires an operational ship of the minimum level and costs its travel fee.
func (g *Game) TryTravel(siteID string) bool {
	return g.do("TryTravel", map[string]interface{}{"site": siteID}, func() error {
		site, err := g.sites.Get(siteID)
		if err != nil {
			return err
		}
		def := site.Definition()
		if g.fleet.Level() < def.MinFleetLevel {
			return shared.NewPreconditionError("site %s needs fleet level %d, have %d", siteID, def.MinFleetLevel, g.fleet.Level())
		}
		if !site.IsUnlocked() {
			if !g.fleet.IsOperational() {
				return shared.NewPreconditionError("ship is damaged (%.0f%% repaired)", g.fleet.RepairStatus())
			}
			if err := g.ledger.SpendCredits(def.TravelCost); err != nil {
				return err
			}
			site.Unlock()
			if site.Phase() == location.PhaseHidden {
				_ = site.AdvanceTo(location.PhaseDiscovered)
			}
		}
		return g.sites.SetCurrent(siteID)
	})
}

// InvestigateSite surveys a discovered site
func (g *Game) InvestigateSite(siteID string) bool {
	return g.do("InvestigateSite", map[string]interface{}{"site": siteID}, func() error {
		site, err := g.sites.Get(siteID)
		if err != nil {
			return err
		}
		if site.Phase() != location.PhaseDiscovered {
			return shared.NewPreconditionError("site %s must be discovered, is %s", siteID, site.Phase())
		}
		if err := g.ledger.SpendCredits(InvestigationCost); err != nil {
			return err
		}
		return site.AdvanceTo(location.PhaseInvestigated)
	})
}

// StartMining builds the first level of every extraction track at an investigated site
func (g *Game) StartMining(siteID string) bool {
	return g.do("StartMining", map[string]interface{}{"site": siteID}, func() error {
		site, err := g.sites.Get(siteID)
		if err != nil {
			return err
		}
		if site.Phase() != location.PhaseInvestigated {
			return shared.NewPreconditionError("site %s must be investigated, is %s", siteID, site.Phase())
		}
		if tech := site.Definition().RequiredTech; tech != "" && !g.research.IsUnlocked(tech) {
			return shared.NewPreconditionError("site %s requires technology %s", siteID, tech)
		}
		if err := g.ledger.SpendCredits(MiningSetupCost); err != nil {
			return err
		}
		infra := site.Infrastructure()
		infra.Mining = utils.Max(infra.Mining, 1)
		infra.Logistics = utils.Max(infra.Logistics, 1)
		infra.Station = utils.Max(infra.Station, 1)
		site.SetInfrastructure(infra)
		return site.AdvanceTo(location.PhaseReadyToMine)
	})
}

// UpgradeInfrastructure raises one infrastructure track at a mining site
func (g *Game) UpgradeInfrastructure(siteID string, kind location.InfrastructureKind) bool {
	return g.do("UpgradeInfrastructure", map[string]interface{}{"site": siteID, "kind": string(kind)}, func() error {
		site, err := g.sites.Get(siteID)
		if err != nil {
			return err
		}
		if !site.IsReadyToMine() {
			return shared.NewPreconditionError("site %s is not mining yet", siteID)
		}
		if _, err := location.ParseInfrastructureKind(string(kind)); err != nil {
			return err
		}
		cost := InfrastructureUpgradeCost(site.Infrastructure().Level(kind))
		if err := g.ledger.SpendCredits(cost); err != nil {
			return err
		}
		site.UpgradeInfrastructure(kind)
		return nil
	})
}

// InfrastructureUpgradeCost is the credit price of raising a track from level
func InfrastructureUpgradeCost(level int) float64 {
	return float64(utils.Max(level, 1)) * InfrastructureStepCost
}

// InstallSiteMachine moves one crafted machine from the global stock into a site
func (g *Game) InstallSiteMachine(siteID string, machine shared.ResourceType) bool {
	return g.do("InstallSiteMachine", map[string]interface{}{"site": siteID, "machine": string(machine)}, func() error {
		site, err := g.sites.Get(siteID)
		if err != nil {
			return err
		}
		if !machine.IsMachine() {
			return shared.NewValidationError("machine", string(machine)+" cannot be installed at a site")
		}
		if err := g.ledger.RemoveResource(machine, 1); err != nil {
			return err
		}
		return site.InstallMachine(machine)
	})
}

// SetSiteRecipe selects the recipe of a site's processing plant; "" stops it
func (g *Game) SetSiteRecipe(siteID, recipeID string) bool {
	return g.do("SetSiteRecipe", map[string]interface{}{"site": siteID, "recipe": recipeID}, func() error {
		site, err := g.sites.Get(siteID)
		if err != nil {
			return err
		}
		if recipeID != "" {
			recipe, err := g.workshop.Recipe(recipeID)
			if err != nil {
				return err
			}
			if recipe.RequiredTech != "" && !g.research.IsUnlocked(recipe.RequiredTech) {
				return shared.NewPreconditionError("recipe %s requires technology %s", recipeID, recipe.RequiredTech)
			}
		}
		site.SetActiveRecipe(recipeID)
		return nil
	})
}

// SetAllocationQuota sets the share of ship cargo reserved for a resource;
// pct is clamped to [0,1] and 0 removes the quota
func (g *Game) SetAllocationQuota(t shared.ResourceType, pct float64) bool {
	return g.do("SetAllocationQuota", map[string]interface{}{"resource": string(t), "pct": pct}, func() error {
		if !t.IsValid() {
			return shared.NewUnknownIDError("resource", string(t))
		}
		g.quotas.Set(t, pct)
		return nil
	})
}

// CollectFromCurrentSite loads the ship at the current site and unloads it into the global stock
func (g *Game) CollectFromCurrentSite() bool {
	return g.do("CollectFromCurrentSite", nil, func() error {
		site := g.sites.Current()
		if site == nil {
			return shared.NewPreconditionError("no current site")
		}
		if !g.fleet.IsOperational() {
			return shared.NewPreconditionError("ship is damaged (%.0f%% repaired)", g.fleet.RepairStatus())
		}
		moved, err := logistics.CollectLocalResources(site, g.fleet.CargoCapacity(), g.quotas, g.ledger)
		g.totals.CollectedUnits += int64(moved.Total())
		return err
	})
}

// SellResource sells from the global stock at the current market value
func (g *Game) SellResource(t shared.ResourceType, quantity int) bool {
	return g.do("SellResource", map[string]interface{}{"resource": string(t), "quantity": quantity}, func() error {
		earned, err := g.market.Sell(t, quantity, g.research.StatBonus(shared.StatMarketPrice))
		if err != nil {
			return err
		}
		g.totals.CreditsEarned += earned
		return nil
	})
}

// BuyResource buys into the global stock at the current market value
func (g *Game) BuyResource(t shared.ResourceType, quantity int) bool {
	return g.do("BuyResource", map[string]interface{}{"resource": string(t), "quantity": quantity}, func() error {
		spent, err := g.market.Buy(t, quantity)
		if err != nil {
			return err
		}
		g.totals.CreditsSpent += spent
		return nil
	})
}

// RepairShip buys up to amount repair points at RepairCostPerPoint each
func (g *Game) RepairShip(amount float64) bool {
	return g.do("RepairShip", map[string]interface{}{"amount": amount}, func() error {
		if amount <= 0 {
			return shared.NewValidationError("amount", "must be positive")
		}
		points := min(amount, g.fleet.MissingRepair())
		if points <= 0 {
			return shared.NewPreconditionError("ship is already fully repaired")
		}
		if err := g.ledger.SpendCredits(points * RepairCostPerPoint); err != nil {
			return err
		}
		g.fleet.Repair(points)
		return nil
	})
}

// UpgradeShip raises the fleet level
func (g *Game) UpgradeShip() bool {
	return g.do("UpgradeShip", nil, func() error {
		if !g.fleet.IsOperational() {
			return shared.NewPreconditionError("ship must be fully repaired before upgrading (%.0f%%)", g.fleet.RepairStatus())
		}
		if err := g.ledger.SpendCredits(g.fleet.UpgradeCost()); err != nil {
			return err
		}
		if err := g.fleet.Upgrade(); err != nil {
			return err
		}
		g.fleet.Recalculate(g.research, g.civ)
		return nil
	})
}

// HireResearcher adds a researcher for ResearcherCost credits
func (g *Game) HireResearcher() bool {
	return g.do("HireResearcher", nil, func() error {
		if err := g.ledger.SpendCredits(ResearcherCost); err != nil {
			return err
		}
		g.research.HireResearcher()
		return nil
	})
}

// InvestInResearch converts credits into research points
func (g *Game) InvestInResearch(credits float64) bool {
	return g.do("InvestInResearch", map[string]interface{}{"credits": credits}, func() error {
		if credits <= 0 {
			return shared.NewValidationError("credits", "must be positive")
		}
		if err := g.ledger.SpendCredits(credits); err != nil {
			return err
		}
		g.research.AddResearchPoints(research.PointsForCredits(credits))
		return nil
	})
}

// BuyUpgrade spends nanites on a civilization upgrade
func (g *Game) BuyUpgrade(id string) bool {
	return g.do("BuyUpgrade", map[string]interface{}{"upgrade": id}, func() error {
		if err := g.civ.BuyUpgrade(id); err != nil {
			return err
		}
		g.fleet.Recalculate(g.research, g.civ)
		return nil
	})
}
