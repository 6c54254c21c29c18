package commands

import (
	"context"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
)

// SaveGameCommand writes a snapshot
type SaveGameCommand struct{}

// SaveGameHandler handles the SaveGame command
type SaveGameHandler struct {
	game *game.Game
}

// NewSaveGameHandler creates a new SaveGameHandler
func NewSaveGameHandler(g *game.Game) *SaveGameHandler {
	return &SaveGameHandler{game: g}
}

// Handle executes the SaveGame command
func (h *SaveGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*SaveGameCommand); !ok {
		return nil, invalidRequest("SaveGameCommand")
	}
	return result("SaveGame", h.game.SaveGame(ctx))
}

// LoadGameCommand replaces the world with the stored snapshot
type LoadGameCommand struct{}

// LoadGameResponse reports whether a snapshot was applied and what was gained offline
type LoadGameResponse struct {
	Loaded  bool
	Offline game.OfflineReport
}

// LoadGameHandler handles the LoadGame command
type LoadGameHandler struct {
	game *game.Game
}

// NewLoadGameHandler creates a new LoadGameHandler
func NewLoadGameHandler(g *game.Game) *LoadGameHandler {
	return &LoadGameHandler{game: g}
}

// Handle executes the LoadGame command. Finding no save is not an error.
func (h *LoadGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*LoadGameCommand); !ok {
		return nil, invalidRequest("LoadGameCommand")
	}
	if !h.game.LoadGame(ctx) {
		return &LoadGameResponse{}, nil
	}
	return &LoadGameResponse{Loaded: true, Offline: h.game.LastOffline()}, nil
}

// DoubleOfflineGainsCommand asks for a reward that doubles the last offline gains
type DoubleOfflineGainsCommand struct{}

// DoubleOfflineGainsHandler handles the DoubleOfflineGains command
type DoubleOfflineGainsHandler struct {
	game *game.Game
}

// NewDoubleOfflineGainsHandler creates a new DoubleOfflineGainsHandler
func NewDoubleOfflineGainsHandler(g *game.Game) *DoubleOfflineGainsHandler {
	return &DoubleOfflineGainsHandler{game: g}
}

// Handle executes the DoubleOfflineGains command
func (h *DoubleOfflineGainsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*DoubleOfflineGainsCommand); !ok {
		return nil, invalidRequest("DoubleOfflineGainsCommand")
	}
	return result("DoubleOfflineGains", h.game.DoubleOfflineGains())
}
