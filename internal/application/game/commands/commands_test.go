package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
	"github.com/andrescamacho/spacerush-go/internal/domain/catalog"
	"github.com/andrescamacho/spacerush-go/internal/domain/effect"
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/location"
	"github.com/andrescamacho/spacerush-go/internal/domain/research"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

func newMediator(t *testing.T) (common.Mediator, *game.Game) {
	t.Helper()
	cat := &catalog.Catalog{
		Resources: []ledger.ResourceDefinition{
			{Type: shared.ResourceIron, Name: "Iron", BaseValue: 10},
		},
		Sites: []location.SiteDefinition{
			{ID: "HOME", Name: "Home", Biome: shared.BiomeTerrestrial, StartsUnlocked: true, InitialPhase: location.PhaseInvestigated},
			{ID: "MOON", Name: "Moon", Biome: shared.BiomeBarren, TravelCost: 100, MinFleetLevel: 1,
				Resources: []shared.ResourceType{shared.ResourceIron}},
		},
		Technologies: []research.TechDefinition{
			{ID: "EFF", Name: "Efficiency", ResearchPoints: 100, Effects: []effect.Effect{effect.StatBonus(shared.StatMiningSpeed, 0.1)}},
		},
	}
	g, err := game.New(cat, game.Dependencies{
		Clock:  shared.NewMockClock(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)),
		Random: &shared.FixedRandom{},
	}, game.DefaultOptions())
	require.NoError(t, err)

	med := common.NewMediator()
	require.NoError(t, commands.RegisterHandlers(med, g))
	return med, g
}

func TestRegisterHandlers_RejectsSecondRegistration(t *testing.T) {
	med, g := newMediator(t)

	err := commands.RegisterHandlers(med, g)

	assert.Error(t, err)
}

func TestGetStatusQuery(t *testing.T) {
	// Arrange
	med, _ := newMediator(t)

	// Act
	resp, err := med.Send(context.Background(), &commands.GetStatusQuery{})

	// Assert
	require.NoError(t, err)
	status := resp.(*commands.GetStatusResponse).Status
	assert.Equal(t, 1000.0, status.Credits)
	assert.Equal(t, "HOME", status.CurrentSiteID)
}

func TestDeclinedCommandReturnsErrDeclined(t *testing.T) {
	// Arrange
	med, _ := newMediator(t)

	// Act
	resp, err := med.Send(context.Background(), &commands.UnlockTechnologyCommand{TechID: "EFF"})

	// Assert
	assert.ErrorIs(t, err, commands.ErrDeclined)
	assert.False(t, resp.(*commands.CommandResponse).Accepted)
}

func TestTradeCommand(t *testing.T) {
	// Arrange
	med, g := newMediator(t)
	ctx := context.Background()

	// Act
	buy, buyErr := med.Send(ctx, &commands.TradeCommand{Side: commands.SideBuy, Resource: "IRON", Quantity: 5})
	_, sellErr := med.Send(ctx, &commands.TradeCommand{Side: commands.SideSell, Resource: "IRON", Quantity: 2})

	// Assert
	require.NoError(t, buyErr)
	require.NoError(t, sellErr)
	assert.True(t, buy.(*commands.CommandResponse).Accepted)
	assert.Equal(t, 3, g.Quantity(shared.ResourceIron))
	assert.InDelta(t, 970.0, g.Credits(), 1e-9)
}

func TestTradeCommand_InvalidInput(t *testing.T) {
	med, _ := newMediator(t)
	ctx := context.Background()

	_, unknownResource := med.Send(ctx, &commands.TradeCommand{Side: commands.SideBuy, Resource: "MITHRIL", Quantity: 1})
	_, unknownSide := med.Send(ctx, &commands.TradeCommand{Side: "barter", Resource: "IRON", Quantity: 1})

	assert.Error(t, unknownResource)
	assert.NotErrorIs(t, unknownResource, commands.ErrDeclined)
	assert.Error(t, unknownSide)
}

func TestTravelCommand_PaysTravelCostOnce(t *testing.T) {
	// Arrange
	med, g := newMediator(t)
	ctx := context.Background()
	_, err := med.Send(ctx, &commands.RepairShipCommand{})
	require.NoError(t, err)
	afterRepair := g.Credits()

	// Act
	_, outbound := med.Send(ctx, &commands.TravelCommand{SiteID: "MOON"})
	_, home := med.Send(ctx, &commands.TravelCommand{SiteID: "HOME"})
	_, back := med.Send(ctx, &commands.TravelCommand{SiteID: "MOON"})

	// Assert
	require.NoError(t, outbound)
	require.NoError(t, home)
	require.NoError(t, back)
	assert.InDelta(t, afterRepair-100, g.Credits(), 1e-9)
	assert.Equal(t, "MOON", g.Status().CurrentSiteID)
}

func TestLoadGameCommand_NoStore(t *testing.T) {
	med, _ := newMediator(t)

	resp, err := med.Send(context.Background(), &commands.LoadGameCommand{})

	require.NoError(t, err)
	assert.False(t, resp.(*commands.LoadGameResponse).Loaded)
}
