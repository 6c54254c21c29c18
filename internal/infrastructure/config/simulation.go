package config

import "time"

// SimulationConfig holds the tuning of the running world
type SimulationConfig struct {
	// Credits granted to a fresh world and after every ascension
	StartingCredits float64 `mapstructure:"starting_credits" validate:"gte=0"`

	// Longest absence credited as offline progress
	MaxOffline time.Duration `mapstructure:"max_offline" validate:"gte=0"`

	// Share of the fleet's mining speed earned while away
	OfflineEfficiency float64 `mapstructure:"offline_efficiency" validate:"gte=0,lte=1"`

	// Minimum spacing of player-requested saves
	ManualSaveEvery time.Duration `mapstructure:"manual_save_every" validate:"gte=0"`

	// How often the scheduler checks for due tasks
	Resolution time.Duration `mapstructure:"resolution" validate:"gt=0"`

	// RNG seed; 0 picks one from the clock
	Seed uint64 `mapstructure:"seed"`

	Intervals IntervalsConfig `mapstructure:"intervals"`
}

// IntervalsConfig holds the period of every scheduled task
type IntervalsConfig struct {
	Production time.Duration `mapstructure:"production" validate:"gt=0"`
	Workshop   time.Duration `mapstructure:"workshop" validate:"gt=0"`
	Heartbeat  time.Duration `mapstructure:"heartbeat" validate:"gt=0"`
	Logistics  time.Duration `mapstructure:"logistics" validate:"gt=0"`
	Market     time.Duration `mapstructure:"market" validate:"gt=0"`
	Autosave   time.Duration `mapstructure:"autosave" validate:"gt=0"`
}
