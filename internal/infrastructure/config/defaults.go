package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Simulation defaults
	if cfg.Simulation.StartingCredits == 0 {
		cfg.Simulation.StartingCredits = 1000
	}
	if cfg.Simulation.MaxOffline == 0 {
		cfg.Simulation.MaxOffline = 8 * time.Hour
	}
	if cfg.Simulation.OfflineEfficiency == 0 {
		cfg.Simulation.OfflineEfficiency = 0.5
	}
	if cfg.Simulation.ManualSaveEvery == 0 {
		cfg.Simulation.ManualSaveEvery = 2 * time.Second
	}
	if cfg.Simulation.Resolution == 0 {
		cfg.Simulation.Resolution = 100 * time.Millisecond
	}
	intervals := &cfg.Simulation.Intervals
	if intervals.Production == 0 {
		intervals.Production = time.Second
	}
	if intervals.Workshop == 0 {
		intervals.Workshop = time.Second
	}
	if intervals.Heartbeat == 0 {
		intervals.Heartbeat = time.Second
	}
	if intervals.Logistics == 0 {
		intervals.Logistics = 5 * time.Second
	}
	if intervals.Market == 0 {
		intervals.Market = 30 * time.Second
	}
	if intervals.Autosave == 0 {
		intervals.Autosave = 30 * time.Second
	}

	// Persistence defaults
	if cfg.Persistence.Backend == "" {
		cfg.Persistence.Backend = "file"
	}
	if cfg.Persistence.FilePath == "" {
		cfg.Persistence.FilePath = "spacerush_save.json"
	}
	if cfg.Persistence.Compression == "" {
		cfg.Persistence.Compression = "none"
	}
	if cfg.Persistence.Slot == "" {
		cfg.Persistence.Slot = "default"
	}
	if cfg.Persistence.HistoryLimit == 0 {
		cfg.Persistence.HistoryLimit = 200
	}
	if cfg.Persistence.LockFile == "" {
		cfg.Persistence.LockFile = "spacerush.pid"
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "spacerush.db"
	}
	if cfg.Database.BusyTimeout == 0 {
		cfg.Database.BusyTimeout = 5 * time.Second
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "spacerush"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "spacerush"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.PollInterval == 0 {
		cfg.Metrics.PollInterval = 5 * time.Second
	}
}
