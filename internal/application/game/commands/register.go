package commands

import (
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/application/mediator"
)

// RegisterHandlers wires every command and query of the game into med
func RegisterHandlers(med common.Mediator, g *game.Game) error {
	registrations := []struct {
		name     string
		register func() error
	}{
		{"UnlockTechnology", func() error {
			return mediator.RegisterHandler[*UnlockTechnologyCommand](med, NewUnlockTechnologyHandler(g))
		}},
		{"HireResearcher", func() error {
			return mediator.RegisterHandler[*HireResearcherCommand](med, NewHireResearcherHandler(g))
		}},
		{"InvestInResearch", func() error {
			return mediator.RegisterHandler[*InvestInResearchCommand](med, NewInvestInResearchHandler(g))
		}},
		{"StartJob", func() error { return mediator.RegisterHandler[*StartJobCommand](med, NewStartJobHandler(g)) }},
		{"InstallAutomation", func() error {
			return mediator.RegisterHandler[*InstallAutomationCommand](med, NewInstallAutomationHandler(g))
		}},
		{"BuyMachine", func() error { return mediator.RegisterHandler[*BuyMachineCommand](med, NewBuyMachineHandler(g)) }},
		{"Travel", func() error { return mediator.RegisterHandler[*TravelCommand](med, NewTravelHandler(g)) }},
		{"AdvanceSite", func() error { return mediator.RegisterHandler[*AdvanceSiteCommand](med, NewAdvanceSiteHandler(g)) }},
		{"UpgradeInfrastructure", func() error {
			return mediator.RegisterHandler[*UpgradeInfrastructureCommand](med, NewUpgradeInfrastructureHandler(g))
		}},
		{"InstallSiteMachine", func() error {
			return mediator.RegisterHandler[*InstallSiteMachineCommand](med, NewInstallSiteMachineHandler(g))
		}},
		{"SetSiteRecipe", func() error {
			return mediator.RegisterHandler[*SetSiteRecipeCommand](med, NewSetSiteRecipeHandler(g))
		}},
		{"SetAllocationQuota", func() error {
			return mediator.RegisterHandler[*SetAllocationQuotaCommand](med, NewSetAllocationQuotaHandler(g))
		}},
		{"Collect", func() error { return mediator.RegisterHandler[*CollectCommand](med, NewCollectHandler(g)) }},
		{"RepairShip", func() error { return mediator.RegisterHandler[*RepairShipCommand](med, NewRepairShipHandler(g)) }},
		{"UpgradeShip", func() error { return mediator.RegisterHandler[*UpgradeShipCommand](med, NewUpgradeShipHandler(g)) }},
		{"Trade", func() error { return mediator.RegisterHandler[*TradeCommand](med, NewTradeHandler(g)) }},
		{"Ascend", func() error { return mediator.RegisterHandler[*AscendCommand](med, NewAscendHandler(g)) }},
		{"BuyUpgrade", func() error { return mediator.RegisterHandler[*BuyUpgradeCommand](med, NewBuyUpgradeHandler(g)) }},
		{"SaveGame", func() error { return mediator.RegisterHandler[*SaveGameCommand](med, NewSaveGameHandler(g)) }},
		{"LoadGame", func() error { return mediator.RegisterHandler[*LoadGameCommand](med, NewLoadGameHandler(g)) }},
		{"DoubleOfflineGains", func() error {
			return mediator.RegisterHandler[*DoubleOfflineGainsCommand](med, NewDoubleOfflineGainsHandler(g))
		}},
		{"GetStatus", func() error { return mediator.RegisterHandler[*GetStatusQuery](med, NewGetStatusHandler(g)) }},
	}

	for _, r := range registrations {
		if err := r.register(); err != nil {
			return fmt.Errorf("failed to register %s handler: %w", r.name, err)
		}
	}
	return nil
}
