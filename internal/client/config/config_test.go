package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000/api/v1", c.BaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "file:safecheck_cache.db", c.CacheDSN)
	assert.Empty(t, c.DownloadDir)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000/api/v1", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func Test_parseEnv_OverridesBaseURL(t *testing.T) {
	t.Setenv("SAFECHECK_BASE_URL", "http://inspection.example:8000/api/v1")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://inspection.example:8000/api/v1", cfg.BaseURL)
}

func Test_parseEnv_EmptyValueIgnored(t *testing.T) {
	t.Setenv("SAFECHECK_BASE_URL", "")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "http://127.0.0.1:8000/api/v1", cfg.BaseURL)
}
