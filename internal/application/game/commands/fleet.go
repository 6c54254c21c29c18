package commands

import (
	"context"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
)

// RepairShipCommand buys repair points; Amount <= 0 means a full repair
type RepairShipCommand struct {
	Amount float64
}

// RepairShipHandler handles the RepairShip command
type RepairShipHandler struct {
	game *game.Game
}

// NewRepairShipHandler creates a new RepairShipHandler
func NewRepairShipHandler(g *game.Game) *RepairShipHandler {
	return &RepairShipHandler{game: g}
}

// Handle executes the RepairShip command
func (h *RepairShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RepairShipCommand)
	if !ok {
		return nil, invalidRequest("RepairShipCommand")
	}
	amount := cmd.Amount
	if amount <= 0 {
		amount = 100
	}
	return result("RepairShip", h.game.RepairShip(amount))
}

// UpgradeShipCommand raises the fleet level
type UpgradeShipCommand struct{}

// UpgradeShipHandler handles the UpgradeShip command
type UpgradeShipHandler struct {
	game *game.Game
}

// NewUpgradeShipHandler creates a new UpgradeShipHandler
func NewUpgradeShipHandler(g *game.Game) *UpgradeShipHandler {
	return &UpgradeShipHandler{game: g}
}

// Handle executes the UpgradeShip command
func (h *UpgradeShipHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*UpgradeShipCommand); !ok {
		return nil, invalidRequest("UpgradeShipCommand")
	}
	return result("UpgradeShip", h.game.UpgradeShip())
}
