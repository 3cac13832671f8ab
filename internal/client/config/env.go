package config

import "os"

// parseEnv overlays Config with environment variables. Only the base URL
// is environment-configurable; everything else goes through JSON or flags.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("SAFECHECK_BASE_URL"); ok && v != "" {
		cfg.BaseURL = v
	}
}
