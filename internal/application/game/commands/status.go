package commands

import (
	"context"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
)

// GetStatusQuery reads a consistent view of the world
type GetStatusQuery struct{}

// GetStatusResponse carries the world view
type GetStatusResponse struct {
	Status game.Status
}

// GetStatusHandler handles the GetStatus query
type GetStatusHandler struct {
	game *game.Game
}

// NewGetStatusHandler creates a new GetStatusHandler
func NewGetStatusHandler(g *game.Game) *GetStatusHandler {
	return &GetStatusHandler{game: g}
}

// Handle executes the GetStatus query
func (h *GetStatusHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetStatusQuery); !ok {
		return nil, invalidRequest("GetStatusQuery")
	}
	return &GetStatusResponse{Status: h.game.Status()}, nil
}
