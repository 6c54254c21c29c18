package steps

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/spacerush-go/internal/adapters/content"
	"github.com/andrescamacho/spacerush-go/internal/adapters/persistence"
	"github.com/andrescamacho/spacerush-go/internal/adapters/reward"
	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

type gameContext struct {
	dir      string
	clock    *shared.MockClock
	store    *persistence.FileStore
	game     *game.Game
	mediator common.Mediator
	err      error
	loaded   *commands.LoadGameResponse
}

func (gc *gameContext) reset() error {
	dir, err := os.MkdirTemp("", "spacerush-bdd-*")
	if err != nil {
		return err
	}
	gc.dir = dir
	gc.clock = shared.NewMockClock(time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC))
	gc.store = persistence.NewFileStore(filepath.Join(dir, "save.json"), persistence.NewCodec(persistence.CompressionZstd))
	gc.game = nil
	gc.mediator = nil
	gc.err = nil
	gc.loaded = nil
	return nil
}

func (gc *gameContext) cleanup() {
	if gc.dir != "" {
		_ = os.RemoveAll(gc.dir)
	}
}

// openWorld builds a fresh world over the scenario's save file
func (gc *gameContext) openWorld() error {
	opts := game.DefaultOptions()
	opts.ManualSaveEvery = 0

	g, err := game.New(content.MustDefault(), game.Dependencies{
		Store:   gc.store,
		Clock:   gc.clock,
		Random:  &shared.FixedRandom{},
		Rewards: reward.NewSimulatedProvider(true, 0, nil),
	}, opts)
	if err != nil {
		return err
	}

	med := common.NewMediator()
	if err := commands.RegisterHandlers(med, g); err != nil {
		return err
	}
	gc.game = g
	gc.mediator = med
	return nil
}

func (gc *gameContext) send(request common.Request) error {
	_, gc.err = gc.mediator.Send(context.Background(), request)
	if gc.err != nil && !errors.Is(gc.err, commands.ErrDeclined) {
		return gc.err
	}
	return nil
}

func (gc *gameContext) mustAccept(request common.Request) error {
	if err := gc.send(request); err != nil {
		return err
	}
	if gc.err != nil {
		return fmt.Errorf("%s was declined: %w", common.RequestName(request), gc.err)
	}
	return nil
}

func (gc *gameContext) aNewWorldWithTheBuiltInContent() error {
	return gc.openWorld()
}

func (gc *gameContext) theShipIsRepairedAndParkedAt(siteID string) error {
	if err := gc.mustAccept(&commands.RepairShipCommand{Amount: 100}); err != nil {
		return err
	}
	return gc.mustAccept(&commands.TravelCommand{SiteID: siteID})
}

func (gc *gameContext) theWorldIsSaved() error {
	return gc.mustAccept(&commands.SaveGameCommand{})
}

func (gc *gameContext) hoursPassAndTheWorldIsReopened(hours int) error {
	gc.clock.Advance(time.Duration(hours) * time.Hour)
	if err := gc.openWorld(); err != nil {
		return err
	}
	resp, err := gc.mediator.Send(context.Background(), &commands.LoadGameCommand{})
	if err != nil {
		return err
	}
	gc.loaded = resp.(*commands.LoadGameResponse)
	return nil
}

func (gc *gameContext) iTravelTo(siteID string) error {
	return gc.send(&commands.TravelCommand{SiteID: siteID})
}

func (gc *gameContext) iRepairTheShipByPoints(points int) error {
	return gc.send(&commands.RepairShipCommand{Amount: float64(points)})
}

func (gc *gameContext) iInvestCreditsInResearch(credits int) error {
	return gc.send(&commands.InvestInResearchCommand{Credits: float64(credits)})
}

func (gc *gameContext) iUnlockTechnology(techID string) error {
	return gc.send(&commands.UnlockTechnologyCommand{TechID: techID})
}

func (gc *gameContext) iBuy(quantity int, resource string) error {
	return gc.send(&commands.TradeCommand{Side: commands.SideBuy, Resource: resource, Quantity: quantity})
}

func (gc *gameContext) iAscend() error {
	return gc.send(&commands.AscendCommand{})
}

func (gc *gameContext) iBuyTheUpgrade(upgradeID string) error {
	return gc.send(&commands.BuyUpgradeCommand{UpgradeID: upgradeID})
}

func (gc *gameContext) iDoubleMyOfflineGains() error {
	return gc.send(&commands.DoubleOfflineGainsCommand{})
}

func (gc *gameContext) theCommandIsAccepted() error {
	if gc.err != nil {
		return fmt.Errorf("expected the command to be accepted, got %v", gc.err)
	}
	return nil
}

func (gc *gameContext) theCommandIsDeclined() error {
	if !errors.Is(gc.err, commands.ErrDeclined) {
		return fmt.Errorf("expected the command to be declined, got %v", gc.err)
	}
	return nil
}

func (gc *gameContext) theCurrentSiteIs(siteID string) error {
	if got := gc.game.Status().CurrentSiteID; got != siteID {
		return fmt.Errorf("expected current site %s, got %s", siteID, got)
	}
	return nil
}

func (gc *gameContext) iHaveCredits(credits float64) error {
	return approx("credits", credits, gc.game.Credits())
}

func (gc *gameContext) iHaveResearchPoints(points float64) error {
	return approx("research points", points, gc.game.Status().ResearchPoints)
}

func (gc *gameContext) theFleetMinesUnitsPerSecond(speed float64) error {
	return approx("mining speed", speed, gc.game.Status().MiningSpeed)
}

func (gc *gameContext) iHold(quantity int, resource string) error {
	t, err := shared.ParseResourceType(resource)
	if err != nil {
		return err
	}
	if got := gc.game.Quantity(t); got != quantity {
		return fmt.Errorf("expected %d %s, got %d", quantity, resource, got)
	}
	return nil
}

func (gc *gameContext) theCivilizationIsLevelWithNanites(level int, nanites float64) error {
	st := gc.game.Status()
	if st.CivLevel != level {
		return fmt.Errorf("expected civilization level %d, got %d", level, st.CivLevel)
	}
	return approx("nanites", nanites, st.Nanites)
}

func (gc *gameContext) theSaveWasLoaded() error {
	if gc.loaded == nil || !gc.loaded.Loaded {
		return fmt.Errorf("expected the save to be loaded")
	}
	return nil
}

func (gc *gameContext) secondsOfOfflineTimeWereCredited(seconds int) error {
	if gc.loaded == nil {
		return fmt.Errorf("the world was not reopened")
	}
	if got := gc.loaded.Offline.Credited; got != time.Duration(seconds)*time.Second {
		return fmt.Errorf("expected %ds credited, got %s", seconds, got)
	}
	return nil
}

func approx(what string, want, got float64) error {
	if math.Abs(want-got) > 1e-6 {
		return fmt.Errorf("expected %s %.4f, got %.4f", what, want, got)
	}
	return nil
}

// InitializeGameScenario registers the world-level steps
func InitializeGameScenario(sc *godog.ScenarioContext) {
	gc := &gameContext{}

	sc.Before(func(ctx context.Context, s *godog.Scenario) (context.Context, error) {
		return ctx, gc.reset()
	})
	sc.After(func(ctx context.Context, s *godog.Scenario, err error) (context.Context, error) {
		gc.cleanup()
		return ctx, nil
	})

	sc.Step(`^a new world with the built-in content$`, gc.aNewWorldWithTheBuiltInContent)
	sc.Step(`^the ship is repaired and parked at "([^"]*)"$`, gc.theShipIsRepairedAndParkedAt)
	sc.Step(`^the world is saved$`, gc.theWorldIsSaved)
	sc.Step(`^(\d+) hours? pass(?:es)? and the world is reopened$`, gc.hoursPassAndTheWorldIsReopened)

	sc.Step(`^I travel to "([^"]*)"$`, gc.iTravelTo)
	sc.Step(`^I repair the ship by (\d+) points$`, gc.iRepairTheShipByPoints)
	sc.Step(`^I invest (\d+) credits in research$`, gc.iInvestCreditsInResearch)
	sc.Step(`^I unlock technology "([^"]*)"$`, gc.iUnlockTechnology)
	sc.Step(`^I buy (\d+) "([^"]*)"$`, gc.iBuy)
	sc.Step(`^I ascend$`, gc.iAscend)
	sc.Step(`^I buy the upgrade "([^"]*)"$`, gc.iBuyTheUpgrade)
	sc.Step(`^I double my offline gains$`, gc.iDoubleMyOfflineGains)

	sc.Step(`^the command is accepted$`, gc.theCommandIsAccepted)
	sc.Step(`^the command is declined$`, gc.theCommandIsDeclined)
	sc.Step(`^the current site is "([^"]*)"$`, gc.theCurrentSiteIs)
	sc.Step(`^I have (\d+(?:\.\d+)?) credits$`, gc.iHaveCredits)
	sc.Step(`^I have (\d+(?:\.\d+)?) research points$`, gc.iHaveResearchPoints)
	sc.Step(`^the fleet mines (\d+(?:\.\d+)?) units per second$`, gc.theFleetMinesUnitsPerSecond)
	sc.Step(`^I hold (\d+) "([^"]*)"$`, gc.iHold)
	sc.Step(`^the civilization is level (\d+) with (\d+(?:\.\d+)?) nanites$`, gc.theCivilizationIsLevelWithNanites)
	sc.Step(`^the save was loaded$`, gc.theSaveWasLoaded)
	sc.Step(`^(\d+) seconds of offline time were credited$`, gc.secondsOfOfflineTimeWereCredited)
}
