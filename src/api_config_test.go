package main

import (
	"encoding/json"
	"testing"
	"time"

	"investments-api/src/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyConfigUsesDefaults(t *testing.T) {
	cfg := ApiConfigJson{}.ConvertToDomain()

	assert.Equal(t, defaultServiceName, cfg.GetServiceName())
	assert.Equal(t, database.DefaultOptions(), cfg.DatabaseConf.Options)
	assert.Equal(t, defaultPrewarmDelay, cfg.DatabaseConf.PrewarmDelay)
	assert.Empty(t, cfg.GetDatabaseConnectionString())
	assert.False(t, cfg.GetRabbitmqConfig().Enabled)
}

func TestDatabaseConfigOverrides(t *testing.T) {
	raw := `{
		"service_name":                        "custom",
		"rest": {"port": 9090},
		"database": {
			"default_connection": "host=db user=app password=pw",
			"max_retry_count": 0,
			"max_retry_delay_seconds": 4,
			"command_timeout_seconds": 15,
			"prewarm_mode": "inline",
			"prewarm_delay_seconds": 0
		},
		"diagnostics": {"secret": "pw", "probe_candidates": ["a", "b"]}
	}`

	var cj ApiConfigJson
	require.NoError(t, json.Unmarshal([]byte(raw), &cj))
	cfg := cj.ConvertToDomain()

	assert.Equal(t, "custom", cfg.GetServiceName())
	assert.Equal(t, uint16(9090), cfg.GetRestApiPort())
	assert.Equal(t, "host=db user=app password=pw", cfg.GetDatabaseConnectionString())
	assert.Zero(t, cfg.DatabaseConf.Options.Retry.MaxRetries)
	assert.Equal(t, 4*time.Second, cfg.DatabaseConf.Options.Retry.MaxDelay)
	assert.Equal(t, 15*time.Second, cfg.DatabaseConf.Options.CommandTimeout)
	assert.Equal(t, "inline", cfg.DatabaseConf.PrewarmMode)
	assert.Zero(t, cfg.DatabaseConf.PrewarmDelay)
	assert.Equal(t, "pw", cfg.DiagnosticsConf.Secret)
	assert.Equal(t, []string{"a", "b"}, cfg.DiagnosticsConf.ProbeCandidates)
}

func TestPublicHost(t *testing.T) {
	tests := map[string]string{
		"":                                    "",
		"investments.up.railway.app":          "investments.up.railway.app",
		"https://investments.up.railway.app":  "investments.up.railway.app",
		"http://localhost:8080/swagger":       "localhost:8080",
		"https://investments.up.railway.app/": "investments.up.railway.app",
	}

	for in, want := range tests {
		assert.Equal(t, want, publicHost(in), in)
	}
}
