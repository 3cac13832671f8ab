package config

import "time"

// Config holds runtime settings for the safety inspection CLI.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api/v1 prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DownloadDir: where exported reports are saved; empty means a
//     "downloads" directory next to the binary.
//   - CacheDSN: sqlite DSN for the local reference-data cache.
type Config struct {
	BaseURL        string
	DownloadDir    string
	CacheDSN       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000/api/v1"
	c.RequestTimeout = 10 * time.Second
	c.DownloadDir = ""
	c.CacheDSN = "file:safecheck_cache.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
