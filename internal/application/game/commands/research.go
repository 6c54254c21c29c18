package commands

import (
	"context"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
)

// UnlockTechnologyCommand spends research points on a technology
type UnlockTechnologyCommand struct {
	TechID string
}

// UnlockTechnologyHandler handles the UnlockTechnology command
type UnlockTechnologyHandler struct {
	game *game.Game
}

// NewUnlockTechnologyHandler creates a new UnlockTechnologyHandler
func NewUnlockTechnologyHandler(g *game.Game) *UnlockTechnologyHandler {
	return &UnlockTechnologyHandler{game: g}
}

// Handle executes the UnlockTechnology command
func (h *UnlockTechnologyHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UnlockTechnologyCommand)
	if !ok {
		return nil, invalidRequest("UnlockTechnologyCommand")
	}
	return result("UnlockTechnology", h.game.UnlockTechnology(cmd.TechID))
}

// HireResearcherCommand hires one researcher
type HireResearcherCommand struct{}

// HireResearcherHandler handles the HireResearcher command
type HireResearcherHandler struct {
	game *game.Game
}

// NewHireResearcherHandler creates a new HireResearcherHandler
func NewHireResearcherHandler(g *game.Game) *HireResearcherHandler {
	return &HireResearcherHandler{game: g}
}

// Handle executes the HireResearcher command
func (h *HireResearcherHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*HireResearcherCommand); !ok {
		return nil, invalidRequest("HireResearcherCommand")
	}
	return result("HireResearcher", h.game.HireResearcher())
}

// InvestInResearchCommand converts credits into research points
type InvestInResearchCommand struct {
	Credits float64
}

// InvestInResearchHandler handles the InvestInResearch command
type InvestInResearchHandler struct {
	game *game.Game
}

// NewInvestInResearchHandler creates a new InvestInResearchHandler
func NewInvestInResearchHandler(g *game.Game) *InvestInResearchHandler {
	return &InvestInResearchHandler{game: g}
}

// Handle executes the InvestInResearch command
func (h *InvestInResearchHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*InvestInResearchCommand)
	if !ok {
		return nil, invalidRequest("InvestInResearchCommand")
	}
	return result("InvestInResearch", h.game.InvestInResearch(cmd.Credits))
}
