package commands

import (
	"context"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
)

// AscendCommand resets the world for civilization progress
type AscendCommand struct{}

// AscendHandler handles the Ascend command
type AscendHandler struct {
	game *game.Game
}

// NewAscendHandler creates a new AscendHandler
func NewAscendHandler(g *game.Game) *AscendHandler {
	return &AscendHandler{game: g}
}

// Handle executes the Ascend command
func (h *AscendHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*AscendCommand); !ok {
		return nil, invalidRequest("AscendCommand")
	}
	return result("Ascend", h.game.Ascend())
}

// BuyUpgradeCommand spends nanites on a civilization upgrade
type BuyUpgradeCommand struct {
	UpgradeID string
}

// BuyUpgradeHandler handles the BuyUpgrade command
type BuyUpgradeHandler struct {
	game *game.Game
}

// NewBuyUpgradeHandler creates a new BuyUpgradeHandler
func NewBuyUpgradeHandler(g *game.Game) *BuyUpgradeHandler {
	return &BuyUpgradeHandler{game: g}
}

// Handle executes the BuyUpgrade command
func (h *BuyUpgradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*BuyUpgradeCommand)
	if !ok {
		return nil, invalidRequest("BuyUpgradeCommand")
	}
	return result("BuyUpgrade", h.game.BuyUpgrade(cmd.UpgradeID))
}
