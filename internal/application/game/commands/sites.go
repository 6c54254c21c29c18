package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// TravelCommand moves the fleet to a site
type TravelCommand struct {
	SiteID string
}

// TravelHandler handles the Travel command
type TravelHandler struct {
	game *game.Game
}

// NewTravelHandler creates a new TravelHandler
func NewTravelHandler(g *game.Game) *TravelHandler {
	return &TravelHandler{game: g}
}

// Handle executes the Travel command
func (h *TravelHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*TravelCommand)
	if !ok {
		return nil, invalidRequest("TravelCommand")
	}
	return result("TryTravel", h.game.TryTravel(cmd.SiteID))
}

// SiteStage is the progression step requested by AdvanceSiteCommand
type SiteStage string

const (
	StageInvestigate SiteStage = "investigate"
	StageStartMining SiteStage = "mine"
)

// AdvanceSiteCommand investigates a discovered site or opens a mine at an investigated one
type AdvanceSiteCommand struct {
	SiteID string
	Stage  SiteStage
}

// AdvanceSiteHandler handles the AdvanceSite command
type AdvanceSiteHandler struct {
	game *game.Game
}

// NewAdvanceSiteHandler creates a new AdvanceSiteHandler
func NewAdvanceSiteHandler(g *game.Game) *AdvanceSiteHandler {
	return &AdvanceSiteHandler{game: g}
}

// Handle executes the AdvanceSite command
func (h *AdvanceSiteHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AdvanceSiteCommand)
	if !ok {
		return nil, invalidRequest("AdvanceSiteCommand")
	}
	switch cmd.Stage {
	case StageInvestigate:
		return result("InvestigateSite", h.game.InvestigateSite(cmd.SiteID))
	case StageStartMining:
		return result("StartMining", h.game.StartMining(cmd.SiteID))
	default:
		return nil, fmt.Errorf("unknown site stage %q", cmd.Stage)
	}
}

// UpgradeInfrastructureCommand raises one infrastructure track at a site
type UpgradeInfrastructureCommand struct {
	SiteID string
	Kind   string
}

// UpgradeInfrastructureHandler handles the UpgradeInfrastructure command
type UpgradeInfrastructureHandler struct {
	game *game.Game
}

// NewUpgradeInfrastructureHandler creates a new UpgradeInfrastructureHandler
func NewUpgradeInfrastructureHandler(g *game.Game) *UpgradeInfrastructureHandler {
	return &UpgradeInfrastructureHandler{game: g}
}

// Handle executes the UpgradeInfrastructure command
func (h *UpgradeInfrastructureHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpgradeInfrastructureCommand)
	if !ok {
		return nil, invalidRequest("UpgradeInfrastructureCommand")
	}
	kind, err := location.ParseInfrastructureKind(cmd.Kind)
	if err != nil {
		return nil, fmt.Errorf("invalid infrastructure kind: %w", err)
	}
	return result("UpgradeInfrastructure", h.game.UpgradeInfrastructure(cmd.SiteID, kind))
}

// InstallSiteMachineCommand installs a crafted machine at a site
type InstallSiteMachineCommand struct {
	SiteID  string
	Machine string
}

// InstallSiteMachineHandler handles the InstallSiteMachine command
type InstallSiteMachineHandler struct {
	game *game.Game
}

// NewInstallSiteMachineHandler creates a new InstallSiteMachineHandler
func NewInstallSiteMachineHandler(g *game.Game) *InstallSiteMachineHandler {
	return &InstallSiteMachineHandler{game: g}
}

// Handle executes the InstallSiteMachine command
func (h *InstallSiteMachineHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*InstallSiteMachineCommand)
	if !ok {
		return nil, invalidRequest("InstallSiteMachineCommand")
	}
	machine, err := shared.ParseResourceType(cmd.Machine)
	if err != nil {
		return nil, fmt.Errorf("invalid machine: %w", err)
	}
	return result("InstallSiteMachine", h.game.InstallSiteMachine(cmd.SiteID, machine))
}

// SetSiteRecipeCommand selects what a site's processing plant refines
type SetSiteRecipeCommand struct {
	SiteID   string
	RecipeID string
}

// SetSiteRecipeHandler handles the SetSiteRecipe command
type SetSiteRecipeHandler struct {
	game *game.Game
}

// NewSetSiteRecipeHandler creates a new SetSiteRecipeHandler
func NewSetSiteRecipeHandler(g *game.Game) *SetSiteRecipeHandler {
	return &SetSiteRecipeHandler{game: g}
}

// Handle executes the SetSiteRecipe command
func (h *SetSiteRecipeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetSiteRecipeCommand)
	if !ok {
		return nil, invalidRequest("SetSiteRecipeCommand")
	}
	return result("SetSiteRecipe", h.game.SetSiteRecipe(cmd.SiteID, cmd.RecipeID))
}

// SetAllocationQuotaCommand reserves a share of cargo for a resource
type SetAllocationQuotaCommand struct {
	Resource   string
	Percentage float64
}

// SetAllocationQuotaHandler handles the SetAllocationQuota command
type SetAllocationQuotaHandler struct {
	game *game.Game
}

// NewSetAllocationQuotaHandler creates a new SetAllocationQuotaHandler
func NewSetAllocationQuotaHandler(g *game.Game) *SetAllocationQuotaHandler {
	return &SetAllocationQuotaHandler{game: g}
}

// Handle executes the SetAllocationQuota command
func (h *SetAllocationQuotaHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetAllocationQuotaCommand)
	if !ok {
		return nil, invalidRequest("SetAllocationQuotaCommand")
	}
	resource, err := shared.ParseResourceType(cmd.Resource)
	if err != nil {
		return nil, fmt.Errorf("invalid resource: %w", err)
	}
	return result("SetAllocationQuota", h.game.SetAllocationQuota(resource, cmd.Percentage))
}

// CollectCommand loads the ship at the current site and brings the cargo home
type CollectCommand struct{}

// CollectHandler handles the Collect command
type CollectHandler struct {
	game *game.Game
}

// NewCollectHandler creates a new CollectHandler
func NewCollectHandler(g *game.Game) *CollectHandler {
	return &CollectHandler{game: g}
}

// Handle executes the Collect command
func (h *CollectHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*CollectCommand); !ok {
		return nil, invalidRequest("CollectCommand")
	}
	return result("CollectFromCurrentSite", h.game.CollectFromCurrentSite())
}
