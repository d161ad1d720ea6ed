package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/airlineempire/cli/internal/flagx"
	"github.com/airlineempire/cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s" or
// as integer nanoseconds. After parsing, values are copied into the runtime
// Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN  string         `json:"database_dsn"`
	StoreTimeout timex.Duration `json:"store_timeout"`
	SessionTTL   timex.Duration `json:"session_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. When no file is given the function is a no-op.
// Read or unmarshal errors panic; the intended usage is
// defaults -> parseJson -> parseEnv -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.StoreTimeout.Duration != 0 {
		cfg.StoreTimeout = time.Duration(jc.StoreTimeout.Duration)
	}
	if jc.SessionTTL.Duration != 0 {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
}
