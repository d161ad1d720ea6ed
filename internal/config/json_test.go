package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonConfig_Unmarshal(t *testing.T) {
	data := []byte(`{
		"database_dsn": "game.db",
		"store_timeout": "5s",
		"session_ttl": "720h"
	}`)

	var jc JsonConfig
	require.NoError(t, json.Unmarshal(data, &jc))

	assert.Equal(t, "game.db", jc.DatabaseDSN)
	assert.Equal(t, 5*time.Second, jc.StoreTimeout.Duration)
	assert.Equal(t, 720*time.Hour, jc.SessionTTL.Duration)
}

func TestJsonConfig_PartialOverlay(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	var jc JsonConfig
	require.NoError(t, json.Unmarshal([]byte(`{"database_dsn": "only.db"}`), &jc))

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.StoreTimeout.Duration != 0 {
		cfg.StoreTimeout = jc.StoreTimeout.Duration
	}

	assert.Equal(t, "only.db", cfg.DatabaseDSN)
	assert.Equal(t, 3*time.Second, cfg.StoreTimeout)
}
