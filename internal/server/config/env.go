package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays Config fields from environment variables using the
// envconfig tags declared on Config. Variables that are not set leave the
// current values untouched, so the overlay composes with defaults, the JSON
// file, and flags.
//
// The variable names (MONGODB_URL, DB_NAME, ...) match what the deployment
// environment already provides.
func parseEnv(config *Config) {
	if err := envconfig.Process("", config); err != nil {
		panic(err)
	}
}
