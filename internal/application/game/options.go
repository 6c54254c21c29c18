package game

import (
	"time"

	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/domain/save"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

// Intervals are the periods of the simulation's repeating tasks
type Intervals struct {
	Production time.Duration
	Workshop   time.Duration
	Heartbeat  time.Duration
	Logistics  time.Duration
	Market     time.Duration
	Autosave   time.Duration
}

// DefaultIntervals returns the periods the game was balanced for
func DefaultIntervals() Intervals {
	return Intervals{
		Production: time.Second,
		Workshop:   time.Second,
		Heartbeat:  time.Second,
		Logistics:  5 * time.Second,
		Market:     30 * time.Second,
		Autosave:   30 * time.Second,
	}
}

// Options tune the economy around the static content
type Options struct {
	StartingCredits float64
	// MaxOffline caps the absence credited on load
	MaxOffline time.Duration
	// OfflineEfficiency scales offline mining relative to live mining
	OfflineEfficiency float64
	// ManualSaveEvery is the minimum spacing of player-triggered saves; 0 disables throttling
	ManualSaveEvery time.Duration
	Intervals       Intervals
}

// DefaultOptions returns the standard economy
func DefaultOptions() Options {
	return Options{
		StartingCredits:   1000,
		MaxOffline:        8 * time.Hour,
		OfflineEfficiency: 0.5,
		ManualSaveEvery:   2 * time.Second,
		Intervals:         DefaultIntervals(),
	}
}

// Dependencies are the collaborators a Game talks to. Nil fields get defaults:
// a real clock, a time-seeded PCG source, a no-op logger, no reward provider
// and no persistence.
type Dependencies struct {
	Store   save.Store
	Clock   shared.Clock
	Random  shared.Random
	Logger  common.ContainerLogger
	Rewards common.RewardProvider
}

// Economic constants that are not part of the content catalog
const (
	RepairCostPerPoint     = 2.0
	AutoRepairSpend        = 10.0
	AutoRepairPoints       = 5.0
	InvestigationCost      = 500.0
	MiningSetupCost        = 1000.0
	InfrastructureStepCost = 500.0
	ResearcherCost         = 1000.0
	OfflineRewardPlacement = "double_offline_gains"
)
