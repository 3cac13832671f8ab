// Package config loads runtime configuration for the safety inspection CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv): SAFECHECK_BASE_URL.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   directory for exported report downloads
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:8000/api/v1",
//	  "request_timeout": "10s",
//	  "download_dir": "/var/safecheck/downloads",
//	  "cache_dsn": "file:safecheck_cache.db"
//	}
//
// Primary API
//
//   - type Config                     — holds BaseURL, RequestTimeout, DownloadDir, CacheDSN
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
