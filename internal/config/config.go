// Package config loads process configuration from the environment, with an
// optional .env file for development.
package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds the runtime settings. Variables carry the SHOPKEEPER_ prefix,
// e.g. SHOPKEEPER_LOG_LEVEL=debug.
type Config struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"` // "text" or "json"
	LogFile   string `envconfig:"LOG_FILE" default:""`       // empty = stderr
	SeedFile  string `envconfig:"SEED_FILE" default:"seed.json"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("shopkeeper", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &cfg, nil
}
