// Package config reads the process-wide guard settings from the environment.
//
// Variables:
//
//	STRICT_HINT_ENABLED         run conformance checks (default true)
//	STRICT_HINT_LOG_REJECTIONS  log every rejected call (default true)
//	STRICT_HINT_LOG_LEVEL       minimum log level: debug, info, warn, error (default info)
//	STRICT_HINT_LOG_JSON        log as JSON instead of text (default false)
//	STRICT_HINT_SUBSYSTEM       subsystem attached to log records (default strict-hint)
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/amp-labs/strict-hint/errors"
	"github.com/amp-labs/strict-hint/logger"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the guard settings.
type Config struct {
	Enabled       bool       `env:"STRICT_HINT_ENABLED"`
	LogRejections bool       `env:"STRICT_HINT_LOG_REJECTIONS"`
	LogLevel      slog.Level `env:"STRICT_HINT_LOG_LEVEL"`
	LogJSON       bool       `env:"STRICT_HINT_LOG_JSON"`
	Subsystem     string     `env:"STRICT_HINT_SUBSYSTEM"`
}

// Default returns the settings used when nothing is configured. Load starts
// from these and overrides what the environment sets.
func Default() Config {
	return Config{
		Enabled:       true,
		LogRejections: true,
		LogLevel:      slog.LevelInfo,
		Subsystem:     "strict-hint",
	}
}

// Load parses the settings from the process environment.
func Load() (Config, error) {
	cfg := Default()

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// LoadEnv loads dotenv files into the environment and then calls Load.
// Variables already set in the environment win over the files.
//
// With no paths it reads ./.env if present. Explicit paths must exist.
func LoadEnv(paths ...string) (Config, error) {
	if err := godotenv.Load(paths...); err != nil {
		if len(paths) > 0 || !stderrors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("%w: failed to load env files: %w", errors.ErrInvalidConfig, err)
		}
	}

	return Load()
}

// LoggingOptions translates the settings into logger options.
func (c Config) LoggingOptions() logger.Options {
	return logger.Options{
		Subsystem:   c.Subsystem,
		JSON:        c.LogJSON,
		MinLevel:    c.LogLevel,
		LegacyLevel: slog.LevelInfo,
	}
}
