// Package config loads runtime settings for the Airline Empire CLI.
package config

import "time"

// Config holds runtime settings for the CLI.
//
// Fields:
//   - DatabaseDSN: path of the local sqlite database file.
//   - StoreTimeout: upper bound for a single local store access.
//   - SessionTTL: how long a persisted session reference stays valid.
type Config struct {
	DatabaseDSN  string
	StoreTimeout time.Duration
	SessionTTL   time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "airline.db"
	c.StoreTimeout = 3 * time.Second
	c.SessionTTL = 30 * 24 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
