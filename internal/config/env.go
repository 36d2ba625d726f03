package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config with the INVENTORY_* variables that are set.
// Malformed values panic.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
