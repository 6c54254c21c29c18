package config

// PersistenceConfig selects where snapshots are stored
type PersistenceConfig struct {
	// Backend: "file", "database" or "none"
	Backend string `mapstructure:"backend" validate:"required,oneof=file database none"`

	// Save file location for the file backend
	FilePath string `mapstructure:"file_path" validate:"required_if=Backend file"`

	// Payload compression: none, zstd, lz4
	Compression string `mapstructure:"compression" validate:"required,oneof=none zstd lz4"`

	// Save slot name for the database backend
	Slot string `mapstructure:"slot" validate:"required_if=Backend database"`

	// History rows kept per slot by the database backend
	HistoryLimit int `mapstructure:"history_limit" validate:"gte=0"`

	// Lock file held by "spacerush run" so two simulations never share a save
	LockFile string `mapstructure:"lock_file"`
}

// ContentConfig points at the static game content
type ContentConfig struct {
	// YAML catalog path; empty uses the built-in content
	Path string `mapstructure:"path"`
}
