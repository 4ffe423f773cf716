package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "AUTHBRIDGE_"

// parseEnv overlays AUTHBRIDGE_* variables that are set; unset variables
// leave the current values alone.
func parseEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
