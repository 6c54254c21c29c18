package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// TradeSide is the direction of a market trade
type TradeSide string

const (
	SideSell TradeSide = "sell"
	SideBuy  TradeSide = "buy"
)

// TradeCommand sells or buys a resource at the current market value
type TradeCommand struct {
	Side     TradeSide
	Resource string
	Quantity int
}

// TradeHandler handles the Trade command
type TradeHandler struct {
	game *game.Game
}

// NewTradeHandler creates a new TradeHandler
func NewTradeHandler(g *game.Game) *TradeHandler {
	return &TradeHandler{game: g}
}

// Handle executes the Trade command
func (h *TradeHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*TradeCommand)
	if !ok {
		return nil, invalidRequest("TradeCommand")
	}
	resource, err := shared.ParseResourceType(cmd.Resource)
	if err != nil {
		return nil, fmt.Errorf("invalid resource: %w", err)
	}

	switch cmd.Side {
	case SideSell:
		return result("SellResource", h.game.SellResource(resource, cmd.Quantity))
	case SideBuy:
		return result("BuyResource", h.game.BuyResource(resource, cmd.Quantity))
	default:
		return nil, fmt.Errorf("unknown trade side %q", cmd.Side)
	}
}
