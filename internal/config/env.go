package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing.
type envConfig struct {
	DatabaseDSN  string        `env:"AIRLINE_DATABASE_DSN"`
	StoreTimeout time.Duration `env:"AIRLINE_STORE_TIMEOUT"`
	SessionTTL   time.Duration `env:"AIRLINE_SESSION_TTL"`
}

// parseEnv overlays Config with values from the environment. Unset variables
// leave the current values untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.DatabaseDSN != "" {
		cfg.DatabaseDSN = ec.DatabaseDSN
	}
	if ec.StoreTimeout != 0 {
		cfg.StoreTimeout = ec.StoreTimeout
	}
	if ec.SessionTTL != 0 {
		cfg.SessionTTL = ec.SessionTTL
	}
}
