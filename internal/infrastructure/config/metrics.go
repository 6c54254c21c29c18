package config

import "time"

// MetricsConfig controls the Prometheus endpoint served by "spacerush run"
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Listen address; localhost unless the endpoint is scraped remotely
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Path string `mapstructure:"path"`

	// How often world gauges are refreshed from the simulation
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"gte=0"`
}
