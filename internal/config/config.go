// Package config loads grocer CLI configuration from the environment, with
// optional .env file support.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Output formats for the list command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds CLI configuration. Flags override these values.
type Config struct {
	Logger LoggerConfig
	Output OutputConfig
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string `envconfig:"GROCER_LOG_LEVEL" default:"info"`
	Format string `envconfig:"GROCER_LOG_FORMAT" default:"pretty"`
}

// OutputConfig holds output configuration.
type OutputConfig struct {
	Format string `envconfig:"GROCER_OUTPUT" default:"table"`
	// NoColor disables ANSI styling in rendered lists.
	NoColor bool `envconfig:"GROCER_NO_COLOR" default:"false"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present; a missing file is not an
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.Output.Format != OutputTable && cfg.Output.Format != OutputJSON {
		return nil, fmt.Errorf("load config: unknown output format %q", cfg.Output.Format)
	}

	return &cfg, nil
}
