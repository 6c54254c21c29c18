package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/domain/workshop"
)

// StartJobCommand starts a manual crafting job
type StartJobCommand struct {
	SlotIndex int
	RecipeID  string
}

// StartJobHandler handles the StartJob command
type StartJobHandler struct {
	game *game.Game
}

// NewStartJobHandler creates a new StartJobHandler
func NewStartJobHandler(g *game.Game) *StartJobHandler {
	return &StartJobHandler{game: g}
}

// Handle executes the StartJob command
func (h *StartJobHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*StartJobCommand)
	if !ok {
		return nil, invalidRequest("StartJobCommand")
	}
	return result("StartJob", h.game.StartJob(cmd.SlotIndex, cmd.RecipeID))
}

// InstallAutomationCommand automates a workshop slot
type InstallAutomationCommand struct {
	SlotIndex int
}

// InstallAutomationHandler handles the InstallAutomation command
type InstallAutomationHandler struct {
	game *game.Game
}

// NewInstallAutomationHandler creates a new InstallAutomationHandler
func NewInstallAutomationHandler(g *game.Game) *InstallAutomationHandler {
	return &InstallAutomationHandler{game: g}
}

// Handle executes the InstallAutomation command
func (h *InstallAutomationHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*InstallAutomationCommand)
	if !ok {
		return nil, invalidRequest("InstallAutomationCommand")
	}
	return result("InstallAutomation", h.game.InstallAutomation(cmd.SlotIndex))
}

// BuyMachineCommand buys a workshop machine
type BuyMachineCommand struct {
	Machine string
}

// BuyMachineHandler handles the BuyMachine command
type BuyMachineHandler struct {
	game *game.Game
}

// NewBuyMachineHandler creates a new BuyMachineHandler
func NewBuyMachineHandler(g *game.Game) *BuyMachineHandler {
	return &BuyMachineHandler{game: g}
}

// Handle executes the BuyMachine command
func (h *BuyMachineHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BuyMachineCommand)
	if !ok {
		return nil, invalidRequest("BuyMachineCommand")
	}
	machine, err := workshop.ParseMachineType(cmd.Machine)
	if err != nil {
		return nil, fmt.Errorf("invalid machine: %w", err)
	}
	return result("BuyMachine", h.game.BuyMachine(machine))
}
